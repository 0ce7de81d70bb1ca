package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/moldyn/internal/analysis"
	"github.com/san-kum/moldyn/internal/config"
	"github.com/san-kum/moldyn/internal/forces"
	"github.com/san-kum/moldyn/internal/integrators"
	"github.com/san-kum/moldyn/internal/metrics"
	"github.com/san-kum/moldyn/internal/sim"
	"github.com/san-kum/moldyn/internal/storage"
	"github.com/san-kum/moldyn/internal/viz"
)

var (
	configFile string
	outDir     string
	steps      int
	seed       int64
	verbose    bool
)

var logger zerolog.Logger

func main() {
	rootCmd := &cobra.Command{
		Use:   "moldyn",
		Short: "molecular dynamics simulation engine",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
			logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "", "output directory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation",
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&steps, "steps", 0, "number of steps (overrides config)")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (overrides config)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a simulation with a live terminal view",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&steps, "steps", 0, "number of steps (overrides config)")
	liveCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (overrides config)")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	rootCmd.AddCommand(runCmd, liveCmd, initCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if steps > 0 {
		cfg.Run.Steps = steps
	}
	if seed != 0 {
		cfg.System.Seed = seed
	}
	if outDir != "" {
		cfg.OutDir = outDir
	}
	return cfg, cfg.Validate()
}

func setup(cfg *config.Config) (*sim.Simulator, *forces.LennardJones, error) {
	lj := &forces.LennardJones{
		Epsilon: cfg.Forces.Epsilon,
		Sigma:   cfg.Forces.Sigma,
		Cutoff:  cfg.Forces.Cutoff,
	}
	verlet := integrators.NewVelocityVerlet(cfg.Run.Dt, lj)

	s := sim.New(verlet, lj)
	pipeline, err := sim.NewRegistry().BuildPipeline(cfg.Controls)
	if err != nil {
		return nil, nil, err
	}
	for _, c := range pipeline {
		s.AddControl(c)
	}
	return s, lj, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, lj, err := setup(cfg)
	if err != nil {
		return err
	}
	s.AddMetric(metrics.NewTemperature())
	s.AddMetric(metrics.NewEnergyDrift(lj))
	s.AddMetric(metrics.NewMomentum())

	sys := sim.BuildSystem(cfg.System)
	logger.Info().
		Int("particles", sys.Len()).
		Int("steps", cfg.Run.Steps).
		Float64("dt", cfg.Run.Dt).
		Int("controls", len(cfg.Controls)).
		Msg("starting run")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	result, err := s.Run(ctx, sys, cfg.Run.Steps)
	if result == nil {
		return err
	}
	if err != nil {
		logger.Warn().Err(err).Msg("run interrupted")
	}
	logger.Info().
		Int("steps", result.StepsTaken).
		Dur("elapsed", time.Since(start)).
		Msg("run finished")

	printReport(result)

	store := storage.New(cfg.OutDir)
	if err := store.Init(); err != nil {
		return err
	}
	id, err := store.SaveRun(storage.RunMetadata{
		Species: cfg.System.Species,
		Dt:      cfg.Run.Dt,
		Seed:    cfg.System.Seed,
	}, sys, result)
	if err != nil {
		return err
	}
	logger.Info().Str("run", id).Str("dir", cfg.OutDir).Msg("run saved")
	return nil
}

func printReport(result *sim.Result) {
	fmt.Println(asciigraph.Plot(result.Temperatures,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("temperature"),
	))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "series\tmin\tmax\tmean\tstddev\tfinal")
	for name, series := range map[string][]float64{
		"temperature": result.Temperatures,
		"kinetic":     result.Kinetic,
		"potential":   result.Potential,
	} {
		st := analysis.Summarize(series)
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			name, st.Min, st.Max, st.Mean, st.StdDev, st.Final)
	}
	w.Flush()

	for name, value := range result.Metrics {
		fmt.Printf("%s: %.6g\n", name, value)
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lj := &forces.LennardJones{
		Epsilon: cfg.Forces.Epsilon,
		Sigma:   cfg.Forces.Sigma,
		Cutoff:  cfg.Forces.Cutoff,
	}
	verlet := integrators.NewVelocityVerlet(cfg.Run.Dt, lj)
	pipeline, err := sim.NewRegistry().BuildPipeline(cfg.Controls)
	if err != nil {
		return err
	}

	sys := sim.BuildSystem(cfg.System)
	model := viz.NewModel(sys, verlet, lj, pipeline, cfg.Run.Steps)
	_, err = tea.NewProgram(model).Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := storage.New(cfg.OutDir)
	ids, err := store.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "run\tparticles\tsteps\tseed\ttimestamp")
	for _, id := range ids {
		meta, err := store.LoadMetadata(id)
		if err != nil {
			logger.Warn().Str("run", id).Err(err).Msg("unreadable metadata")
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
			meta.ID, meta.Particles, meta.Steps, meta.Seed,
			meta.Timestamp.Format(time.RFC3339))
	}
	return w.Flush()
}
