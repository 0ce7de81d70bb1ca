// Package analysis summarizes time series recorded during a simulation run.
package analysis

import "math"

// SeriesStats describes one recorded observable over a whole run.
type SeriesStats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Final  float64
}

// Summarize computes descriptive statistics over a series. An empty series
// yields the zero value.
func Summarize(series []float64) SeriesStats {
	if len(series) == 0 {
		return SeriesStats{}
	}

	stats := SeriesStats{
		Min:   series[0],
		Max:   series[0],
		Final: series[len(series)-1],
	}
	sum := 0.0
	for _, v := range series {
		sum += v
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
	}
	stats.Mean = sum / float64(len(series))

	variance := 0.0
	for _, v := range series {
		d := v - stats.Mean
		variance += d * d
	}
	stats.StdDev = math.Sqrt(variance / float64(len(series)))

	return stats
}

// Drift returns the relative change between the first and last sample, or
// zero when the series is too short or starts at zero.
func Drift(series []float64) float64 {
	if len(series) < 2 || series[0] == 0 {
		return 0
	}
	return math.Abs(series[len(series)-1]-series[0]) / math.Abs(series[0])
}
