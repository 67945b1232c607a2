package montecarlo

import (
	"fmt"
	"math"
)

// Summarize aggregates per-trial open-site counts for an n×n grid.
//
// Formulas (T = len(counts)):
//
//	mean   = Σ xᵢ / T
//	stddev = √( Σ (xᵢ − mean)² / (T − 1) )   (0 when T == 1)
//	CI     = mean ∓ ConfidenceFactor·stddev/√T
//
// Returns ErrInvalidArgument if n <= 0 or counts is empty.
// Complexity: O(T).
func Summarize(n int, counts []int) (Summary, error) {
	if n <= 0 || len(counts) == 0 {
		return Summary{}, fmt.Errorf("%w: n=%d trials=%d", ErrInvalidArgument, n, len(counts))
	}

	m := mean(counts)
	sd := sampleStdDev(counts, m)
	half := ConfidenceFactor * sd / math.Sqrt(float64(len(counts)))

	return Summary{
		GridSize:       n,
		Trials:         len(counts),
		Mean:           m,
		StdDev:         sd,
		ConfidenceLow:  m - half,
		ConfidenceHigh: m + half,
	}, nil
}

func mean(xs []int) float64 {
	var s float64
	for _, x := range xs {
		s += float64(x)
	}
	return s / float64(len(xs))
}

// sampleStdDev uses the (T−1) denominator; a single sample has no spread.
func sampleStdDev(xs []int, m float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	var ss float64
	for _, x := range xs {
		d := float64(x) - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}
