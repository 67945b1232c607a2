package cli

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/internal/config"
	"github.com/katalvlaran/percolation/internal/metrics"
	"github.com/katalvlaran/percolation/montecarlo"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [grid-size] [trials]",
		Short: "Run a Monte Carlo percolation experiment",
		Long: `Run T independent trials on fresh N×N grids. Each trial opens uniformly
random sites until the grid percolates and records the number of open sites.

Positional arguments override grid_size and trials from the configuration.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(rootOpts, cmd, args)
		},
	}

	cmd.Flags().Int("workers", 0, "concurrent trials (0 = GOMAXPROCS)")
	cmd.Flags().Int64("seed", 0, "RNG seed (0 = time based)")
	cmd.Flags().Int("max-failed", 0, "abort a trial after this many consecutive repeated selections (0 = never)")
	cmd.Flags().String("metrics-textfile", "", "write Prometheus metrics to this file")

	return cmd
}

func runSimulation(opts *RootOptions, cmd *cobra.Command, args []string) error {
	positional := []string{"grid_size", "trials"}
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid "+positional[i]+" "+strconv.Quote(arg), err)
		}
		opts.v.Set(positional[i], n)
	}

	cfg, err := config.Load(opts.v)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	runID := uuid.NewString()
	log := opts.logger(cmd, cfg).With("run_id", runID)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	collector := metrics.NewCollector()
	log.Info("starting run",
		"grid_size", cfg.GridSize,
		"trials", cfg.Trials,
		"workers", cfg.Workers,
		"seed", seed,
		"max_failed_attempts", cfg.MaxFailedAttempts,
	)

	start := time.Now()
	res, err := montecarlo.Run(cmd.Context(), cfg.GridSize, cfg.Trials,
		montecarlo.WithSeed(seed),
		montecarlo.WithWorkers(cfg.Workers),
		montecarlo.WithMaxFailedAttempts(cfg.MaxFailedAttempts),
		montecarlo.WithObserver(&trialLogger{log: log, next: collector}),
	)
	if err != nil {
		if errors.Is(err, montecarlo.ErrNoSuccessfulTrials) {
			return WrapExitError(ExitFailure, "no trial percolated", err)
		}
		return WrapExitError(ExitFailure, "simulation failed", err)
	}
	log.Info("run finished",
		"elapsed", time.Since(start),
		"successful", res.Trials,
		"failures", res.Failures,
	)

	if path := cfg.Metrics.Textfile; path != "" {
		if err := collector.WriteTextfile(path); err != nil {
			return WrapExitError(ExitFailure, "failed to write metrics", err)
		}
		log.Debug("metrics written", "path", path)
	}

	formatter := &OutputFormatter{Format: cfg.Output.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(newReport(runID, seed, cfg.Trials, res))
}

// trialLogger logs every trial and forwards it to next.
type trialLogger struct {
	log  *slog.Logger
	next montecarlo.Observer
}

func (t *trialLogger) TrialCompleted(o montecarlo.TrialOutcome) {
	if o.Err != nil {
		t.log.Warn("trial aborted", "trial", o.Trial, "error", o.Err)
	} else {
		t.log.Debug("trial percolated", "trial", o.Trial, "open_sites", o.OpenSites, "duration", o.Duration)
	}
	t.next.TrialCompleted(o)
}
