package montecarlo

import (
	"fmt"

	"github.com/katalvlaran/percolation/percolation"
)

// RunTrial builds a fresh n×n grid and opens sites drawn uniformly from src
// until the grid percolates. It returns the number of open sites at that point.
//
// Selections that land on an already open site are no-ops. If maxFailed > 0
// and more than maxFailed such selections happen in a row, the trial stops
// with a *TrialError. The streak resets after every successful open.
//
// Percolates is only polled after a successful open, since a no-op cannot
// change the answer.
//
// Complexity: O(N²·(α(N²) + N)) worst case.
func RunTrial(n int, src Source, maxFailed int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: grid size %d", ErrInvalidArgument, n)
	}
	g, err := percolation.New(n)
	if err != nil {
		return 0, err
	}

	failed := 0
	for !g.Percolates() {
		for {
			row, col := src.Intn(n), src.Intn(n)
			open, err := g.IsOpen(row, col)
			if err != nil {
				return 0, err
			}
			if !open {
				if err := g.Open(row, col); err != nil {
					return 0, err
				}
				failed = 0
				break
			}
			failed++
			if maxFailed > 0 && failed > maxFailed {
				return 0, &TrialError{Attempts: failed, OpenSites: g.NumberOfOpenSites()}
			}
		}
	}

	return g.NumberOfOpenSites(), nil
}
