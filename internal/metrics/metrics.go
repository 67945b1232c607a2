// Package metrics records Monte Carlo trial outcomes in a Prometheus
// registry and exports them in the node-exporter textfile format, which
// suits a batch job that exits after one run.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/percolation/montecarlo"
)

// Outcome label values for percolate_trials_total.
const (
	OutcomePercolated = "percolated"
	OutcomeAborted    = "aborted"
)

// Collector implements montecarlo.Observer on a private registry.
// Prometheus metric types are safe for concurrent use, so worker goroutines
// may report directly.
type Collector struct {
	registry  *prometheus.Registry
	trials    *prometheus.CounterVec
	threshold prometheus.Histogram
	duration  prometheus.Histogram
}

var _ montecarlo.Observer = (*Collector)(nil)

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Collector{
		registry: reg,
		trials: f.NewCounterVec(prometheus.CounterOpts{
			Name: "percolate_trials_total",
			Help: "Monte Carlo trials completed, by outcome.",
		}, []string{"outcome"}),
		threshold: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "percolate_trial_threshold_ratio",
			Help:    "Fraction of open sites when a trial first percolated.",
			Buckets: prometheus.LinearBuckets(0.40, 0.025, 17), // 0.40 .. 0.80
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "percolate_trial_duration_seconds",
			Help:    "Wall time of a single trial.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3.3s
		}),
	}
}

// TrialCompleted records one trial outcome.
func (c *Collector) TrialCompleted(o montecarlo.TrialOutcome) {
	c.duration.Observe(o.Duration.Seconds())
	if o.Err != nil {
		c.trials.WithLabelValues(OutcomeAborted).Inc()
		return
	}
	c.trials.WithLabelValues(OutcomePercolated).Inc()
	if o.GridSize > 0 {
		c.threshold.Observe(float64(o.OpenSites) / float64(o.GridSize*o.GridSize))
	}
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// WriteTextfile atomically writes all metrics to path in text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
