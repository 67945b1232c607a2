// Package percolation defines the grid type, site coordinates and sentinel errors.
package percolation

import (
	"errors"

	"github.com/katalvlaran/percolation/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidSize indicates a grid dimension N <= 0.
	ErrInvalidSize = errors.New("percolation: grid size must be > 0")
	// ErrOutOfBounds indicates a (row, col) pair outside [0, N).
	ErrOutOfBounds = errors.New("percolation: site out of bounds")
)

// Site addresses a single grid cell.
type Site struct {
	Row, Col int
}

// neighborOffsets lists the 4-connected (row, col) deltas: up, down, left, right.
// No diagonals and no wraparound.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an N×N percolation system.
//
// open[i] records whether site i has been opened. full[r] is meaningful only
// when r is a union-find root and records whether that component contains an
// open top-row site. Both slices are indexed by index(row, col).
type Grid struct {
	n         int
	open      []bool
	full      []bool
	uf        *unionfind.UnionFind
	openCount int
}
