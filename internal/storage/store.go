// Package storage persists simulation runs: metadata as JSON, the recorded
// series as CSV and the final configuration as an XYZ snapshot.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/moldyn/internal/sim"
	"github.com/san-kum/moldyn/internal/system"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Species   string             `json:"species"`
	Particles int                `json:"particles"`
	Dt        float64            `json:"dt"`
	Steps     int                `json:"steps"`
	Seed      int64              `json:"seed"`
	Metrics   map[string]float64 `json:"metrics"`
}

// SaveRun writes one run under a fresh directory and returns its ID.
func (s *Store) SaveRun(meta RunMetadata, sys *system.System, result *sim.Result) (string, error) {
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("%s_%d", meta.Species, time.Now().Unix())
	}
	meta.Timestamp = time.Now()
	meta.Particles = sys.Len()
	meta.Steps = result.StepsTaken
	meta.Metrics = result.Metrics

	dir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	if err := s.writeMetadata(filepath.Join(dir, "meta.json"), meta); err != nil {
		return "", err
	}
	if err := s.writeSeries(filepath.Join(dir, "series.csv"), result); err != nil {
		return "", err
	}
	if err := s.writeXYZ(filepath.Join(dir, "final.xyz"), sys); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// LoadMetadata reads back the metadata of a stored run.
func (s *Store) LoadMetadata(runID string) (RunMetadata, error) {
	var meta RunMetadata
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "meta.json"))
	if err != nil {
		return meta, err
	}
	err = json.Unmarshal(data, &meta)
	return meta, err
}

// List returns the IDs of all stored runs.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	return ids, nil
}

func (s *Store) writeMetadata(path string, meta RunMetadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (s *Store) writeSeries(path string, result *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"time", "temperature", "kinetic", "potential"}); err != nil {
		return err
	}
	for i := range result.Times {
		row := []string{
			strconv.FormatFloat(result.Times[i], 'g', -1, 64),
			strconv.FormatFloat(result.Temperatures[i], 'g', -1, 64),
			strconv.FormatFloat(result.Kinetic[i], 'g', -1, 64),
			strconv.FormatFloat(result.Potential[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// writeXYZ stores the particle positions in the plain XYZ trajectory format.
func (s *Store) writeXYZ(path string, sys *system.System) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%d\nfinal configuration\n", sys.Len()); err != nil {
		return err
	}
	for i := 0; i < sys.Len(); i++ {
		p := sys.Particles.Positions[i]
		_, err := fmt.Fprintf(f, "%s %.10g %.10g %.10g\n", sys.Particles.Names[i], p.X, p.Y, p.Z)
		if err != nil {
			return err
		}
	}
	return nil
}
