// Package config loads percolate settings from defaults, an optional YAML
// file, PERCOLATE_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/percolation/internal/logging"
)

// EnvPrefix is prepended to every environment variable, e.g. PERCOLATE_TRIALS.
const EnvPrefix = "PERCOLATE"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ValidOutputFormats lists the report formats the CLI can render.
var ValidOutputFormats = []string{"text", "json", "yaml"}

// Config is the complete percolate configuration.
type Config struct {
	// GridSize is the grid dimension N.
	GridSize int `mapstructure:"grid_size"`
	// Trials is the number of Monte Carlo trials T.
	Trials int `mapstructure:"trials"`
	// Workers bounds concurrent trials; 0 means GOMAXPROCS.
	Workers int `mapstructure:"workers"`
	// Seed for the trial RNG streams; 0 picks a time-based seed.
	Seed int64 `mapstructure:"seed"`
	// MaxFailedAttempts aborts a trial after this many consecutive picks of
	// already open sites; 0 disables the bound.
	MaxFailedAttempts int           `mapstructure:"max_failed_attempts"`
	Log               LogConfig     `mapstructure:"log"`
	Output            OutputConfig  `mapstructure:"output"`
	Metrics           MetricsConfig `mapstructure:"metrics"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR.
	Level string `mapstructure:"level"`
	// Format is "text" or "json".
	Format string `mapstructure:"format"`
}

// OutputConfig controls the report written to stdout.
type OutputConfig struct {
	// Format is one of ValidOutputFormats.
	Format string `mapstructure:"format"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	// Textfile, when set, receives the run's metrics in exposition format.
	Textfile string `mapstructure:"textfile"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		GridSize:          200,
		Trials:            100,
		Workers:           0,
		Seed:              0,
		MaxFailedAttempts: 0,
		Log: LogConfig{
			Level:  logging.LevelInfo,
			Format: logging.FormatText,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// SetDefaults registers every key with its default on v, so environment
// variables resolve even without a config file.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("grid_size", d.GridSize)
	v.SetDefault("trials", d.Trials)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("max_failed_attempts", d.MaxFailedAttempts)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("metrics.textfile", d.Metrics.Textfile)
}

// New returns a viper instance with defaults and environment binding.
// If configFile is non-empty it is read; a missing or malformed file is an error.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	// log.level -> PERCOLATE_LOG_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	return v, nil
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"workers":          "workers",
	"seed":             "seed",
	"max-failed":       "max_failed_attempts",
	"metrics-textfile": "metrics.textfile",
	"format":           "output.format",
	"log-level":        "log.level",
	"log-format":       "log.format",
}

// BindFlags binds every known flag present in fs to its configuration key.
// Flags absent from fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind flag %q: %w", name, err)
		}
	}
	return nil
}

// Load decodes v into a Config. It does not validate.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return &cfg, nil
}

// Validate checks ranges and enumerations. Every error wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	if c.GridSize <= 0 {
		errs = append(errs, fmt.Errorf("grid_size must be > 0, got %d", c.GridSize))
	}
	if c.Trials <= 0 {
		errs = append(errs, fmt.Errorf("trials must be > 0, got %d", c.Trials))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be >= 0, got %d", c.Workers))
	}
	if c.MaxFailedAttempts < 0 {
		errs = append(errs, fmt.Errorf("max_failed_attempts must be >= 0, got %d", c.MaxFailedAttempts))
	}
	if !IsValidOutputFormat(c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format %q must be one of %v", c.Output.Format, ValidOutputFormats))
	}
	if !logging.ValidFormat(c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format %q must be text or json", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// IsValidOutputFormat reports whether format is one of ValidOutputFormats.
func IsValidOutputFormat(format string) bool {
	for _, f := range ValidOutputFormats {
		if f == format {
			return true
		}
	}
	return false
}
