// Package montecarlo estimates the percolation threshold by repeated
// random trials over percolation.Grid.
//
// What:
//
//   - RunTrial opens uniformly random sites of a fresh N×N grid until it
//     percolates and returns the number of open sites at that moment.
//   - Run executes T independent trials on a bounded worker pool and
//     aggregates the successful ones into a Summary.
//   - Summarize computes mean, sample standard deviation and the 95%
//     confidence interval mean ± 1.96·stddev/√T for a list of counts.
//
// Determinism:
//
//   - Each trial draws from its own RNG stream derived from (seed, trial index),
//     so a given seed yields the same counts for any worker count.
//   - seed == 0 selects a fixed default seed.
//
// Failed trials:
//
//   - With WithMaxFailedAttempts(k), a trial that picks an already open site
//     more than k times in a row is aborted with a *TrialError
//     (errors.Is(err, ErrAttemptsExceeded)). Run counts it in Result.Failures
//     and keeps going with the remaining trials.
//
// Errors:
//
//   - ErrInvalidArgument:    N <= 0 or T <= 0 (or an empty count list).
//   - ErrAttemptsExceeded:   a trial exceeded the consecutive-repeat bound.
//   - ErrNoSuccessfulTrials: every trial failed.
//   - ctx.Err():             Run was cancelled.
package montecarlo
