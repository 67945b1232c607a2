// Package montecarlo defines options, results and sentinel errors for
// percolation threshold estimation.
package montecarlo

import (
	"errors"
	"fmt"
	"runtime"
	"time"
)

// Sentinel errors for montecarlo operations.
var (
	// ErrInvalidArgument indicates a non-positive grid size or trial count.
	ErrInvalidArgument = errors.New("montecarlo: grid size and trial count must be > 0")
	// ErrAttemptsExceeded indicates a trial picked already open sites too many times in a row.
	ErrAttemptsExceeded = errors.New("montecarlo: too many consecutive repeated selections")
	// ErrNoSuccessfulTrials indicates that every trial of a run failed.
	ErrNoSuccessfulTrials = errors.New("montecarlo: no trial percolated")
)

// ConfidenceFactor is the z-score for a two-sided 95% confidence interval.
const ConfidenceFactor = 1.96

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// Source is the randomness a trial needs. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// TrialError reports a trial aborted by the consecutive-repeat bound.
type TrialError struct {
	Trial     int // index of the trial within the run
	Attempts  int // consecutive selections of already open sites
	OpenSites int // sites open when the trial was aborted
}

func (e *TrialError) Error() string {
	return fmt.Sprintf("montecarlo: trial %d aborted after %d repeated selections with %d open sites",
		e.Trial, e.Attempts, e.OpenSites)
}

// Unwrap lets errors.Is match ErrAttemptsExceeded.
func (e *TrialError) Unwrap() error { return ErrAttemptsExceeded }

// TrialOutcome describes one finished trial, successful or not.
type TrialOutcome struct {
	Trial     int
	GridSize  int
	OpenSites int
	Duration  time.Duration
	Err       error // nil on success; otherwise a *TrialError
}

// Observer receives every trial outcome. TrialCompleted is called from worker
// goroutines and must be safe for concurrent use.
type Observer interface {
	TrialCompleted(TrialOutcome)
}

// Summary holds the aggregate statistics of successful trials.
type Summary struct {
	GridSize       int     `json:"grid_size" yaml:"grid_size"`
	Trials         int     `json:"trials" yaml:"trials"`
	Mean           float64 `json:"mean" yaml:"mean"`
	StdDev         float64 `json:"stddev" yaml:"stddev"`
	ConfidenceLow  float64 `json:"confidence_low" yaml:"confidence_low"`
	ConfidenceHigh float64 `json:"confidence_high" yaml:"confidence_high"`
}

// Fraction returns the mean threshold as a fraction of all N² sites.
func (s Summary) Fraction() float64 {
	return s.Mean / float64(s.GridSize*s.GridSize)
}

// VacancyPercent returns the mean share of closed sites at percolation, in percent.
func (s Summary) VacancyPercent() float64 {
	total := float64(s.GridSize * s.GridSize)
	return (total - s.Mean) / total * 100.0
}

// Result is the outcome of Run.
type Result struct {
	Summary
	// Counts holds the open-site count of each successful trial, in trial order.
	Counts []int
	// Failures is the number of trials aborted by the repeat bound.
	Failures int
	// Errors holds the *TrialError of each failed trial, in trial order.
	Errors []*TrialError
}

// Options configures Run. Use DefaultOptions and the With* helpers.
type Options struct {
	// Seed selects the RNG streams; 0 means defaultRNGSeed.
	Seed int64
	// Workers bounds concurrent trials; defaults to GOMAXPROCS.
	Workers int
	// MaxFailedAttempts aborts a trial after this many consecutive picks of
	// open sites. 0 disables the bound.
	MaxFailedAttempts int
	// Observer, if non-nil, is notified after every trial.
	Observer Observer

	// trial runs a single trial; replaced in tests.
	trial func(n int, src Source, maxFailed int) (int, error)
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with the default seed, GOMAXPROCS workers,
// no repeat bound and no observer.
func DefaultOptions() Options {
	return Options{
		Seed:              0,
		Workers:           runtime.GOMAXPROCS(0),
		MaxFailedAttempts: 0,
		Observer:          nil,
		trial:             RunTrial,
	}
}

// WithSeed sets the base seed for all trial RNG streams.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers bounds the number of concurrent trials. Values <= 0 are ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithMaxFailedAttempts sets the consecutive-repeat bound. Values < 0 are ignored.
func WithMaxFailedAttempts(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxFailedAttempts = n
		}
	}
}

// WithObserver installs an Observer notified after every trial.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}
