package metrics

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/montecarlo"
)

func TestCollector_TrialCompleted(t *testing.T) {
	c := NewCollector()

	c.TrialCompleted(montecarlo.TrialOutcome{Trial: 0, GridSize: 10, OpenSites: 60, Duration: time.Millisecond})
	c.TrialCompleted(montecarlo.TrialOutcome{Trial: 1, GridSize: 10, OpenSites: 55, Duration: time.Millisecond})
	c.TrialCompleted(montecarlo.TrialOutcome{
		Trial: 2, GridSize: 10, Duration: time.Millisecond,
		Err: &montecarlo.TrialError{Trial: 2, Attempts: 9},
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.trials.WithLabelValues(OutcomePercolated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.trials.WithLabelValues(OutcomeAborted)))
	assert.Equal(t, 1, testutil.CollectAndCount(c.threshold))
	assert.Equal(t, 1, testutil.CollectAndCount(c.duration))
}

func TestCollector_WithRun(t *testing.T) {
	c := NewCollector()
	_, err := montecarlo.Run(context.Background(), 8, 20, montecarlo.WithObserver(c), montecarlo.WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, 20.0, testutil.ToFloat64(c.trials.WithLabelValues(OutcomePercolated)))
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := NewCollector()
	c.TrialCompleted(montecarlo.TrialOutcome{GridSize: 4, OpenSites: 10, Duration: time.Millisecond})

	path := filepath.Join(t.TempDir(), "percolate.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `percolate_trials_total{outcome="percolated"} 1`)
	assert.Contains(t, out, "percolate_trial_threshold_ratio_count 1")
	assert.Contains(t, out, "percolate_trial_duration_seconds_bucket")
}
