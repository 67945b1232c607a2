// Package cli implements the percolate command-line interface.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/percolation/internal/config"
	"github.com/katalvlaran/percolation/internal/logging"
)

// RootOptions holds global flags and the configuration shared by all commands.
type RootOptions struct {
	ConfigFile string
	Verbose    bool

	v *viper.Viper
}

// NewRootCommand creates the root command for the percolate CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "percolate",
		Short: "Estimate the site percolation threshold by Monte Carlo simulation",
		Long: `percolate opens random sites of an N×N grid until water can flow from
the top row to the bottom row, repeats the experiment T times, and reports
the mean threshold with a 95% confidence interval.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig(cmd)
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigFile, "config", "c", "", "config file (yaml)")
	pf.String("format", "text", "output format (text|json|yaml)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "log at DEBUG level")
	pf.String("log-level", logging.LevelInfo, "log level (DEBUG|INFO|WARN|ERROR)")
	pf.String("log-format", logging.FormatText, "log format (text|json)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// initConfig builds the viper instance: defaults, config file, environment,
// then every flag the invoked command knows about.
func (o *RootOptions) initConfig(cmd *cobra.Command) error {
	v, err := config.New(o.ConfigFile)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return WrapExitError(ExitCommandError, "failed to bind flags", err)
	}
	o.v = v
	return nil
}

// logger builds the diagnostic logger for cfg, writing to cmd's stderr.
func (o *RootOptions) logger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	level := cfg.Log.Level
	if o.Verbose {
		level = logging.LevelDebug
	}
	return logging.New(cmd.ErrOrStderr(), level, cfg.Log.Format)
}
