package montecarlo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Run executes trials independent percolation trials on n×n grids and
// summarizes the successful ones.
//
// Steps:
//  1. Validate n > 0 and trials > 0.
//  2. Fan trials out over an errgroup limited to Options.Workers. Each trial
//     owns its grid and an RNG stream derived from (seed, trial index).
//  3. Record counts and failures into per-trial slots; notify the Observer.
//  4. Summarize successful counts in trial order.
//
// A failed trial does not stop the run. A cancelled ctx does: no new trials
// are started and ctx.Err() is returned.
//
// Complexity: O(T·N³) worst case, divided across workers.
func Run(ctx context.Context, n, trials int, opts ...Option) (*Result, error) {
	if n <= 0 || trials <= 0 {
		return nil, fmt.Errorf("%w: n=%d trials=%d", ErrInvalidArgument, n, trials)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	counts := make([]int, trials)
	failures := make([]*TrialError, trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for t := 0; t < trials; t++ {
		if gctx.Err() != nil {
			break
		}
		t := t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			count, err := o.trial(n, trialRNG(o.Seed, t), o.MaxFailedAttempts)
			outcome := TrialOutcome{Trial: t, GridSize: n, OpenSites: count, Duration: time.Since(start)}
			if err != nil {
				var te *TrialError
				if !errors.As(err, &te) {
					return fmt.Errorf("montecarlo: trial %d: %w", t, err)
				}
				te.Trial = t
				failures[t] = te
				outcome.Err = te
			}
			counts[t] = count
			if o.Observer != nil {
				o.Observer.TrialCompleted(outcome)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{}
	for t := 0; t < trials; t++ {
		if failures[t] != nil {
			res.Errors = append(res.Errors, failures[t])
			continue
		}
		res.Counts = append(res.Counts, counts[t])
	}
	res.Failures = len(res.Errors)
	if len(res.Counts) == 0 {
		return res, fmt.Errorf("%w: %d of %d trials failed", ErrNoSuccessfulTrials, res.Failures, trials)
	}

	summary, err := Summarize(n, res.Counts)
	if err != nil {
		return nil, err
	}
	res.Summary = summary

	return res, nil
}
