package percolation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/percolation/unionfind"
)

// New constructs an N×N grid with every site closed.
// Returns ErrInvalidSize if n <= 0.
// Complexity: O(N²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	uf, err := unionfind.New(n * n)
	if err != nil {
		return nil, err
	}

	return &Grid{
		n:    n,
		open: make([]bool, n*n),
		full: make([]bool, n*n),
		uf:   uf,
	}, nil
}

// Size returns the grid dimension N.
func (g *Grid) Size() int { return g.n }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// Open opens the site at (row, col) if it is not open already.
//
// Steps:
//  1. Validate bounds; return ErrOutOfBounds before touching state.
//  2. Return immediately if the site is already open.
//  3. Mark open, bump the counter, flag full when row == 0.
//  4. Union with every open 4-neighbour, carrying fullness onto the new root.
//
// Complexity: O(α(N²)) amortized.
func (g *Grid) Open(row, col int) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	i := g.index(row, col)
	if g.open[i] {
		return nil
	}

	g.open[i] = true
	g.openCount++
	// A closed site was never unioned, so i is still its own root.
	if row == 0 {
		g.full[i] = true
	}

	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if !g.InBounds(r, c) {
			continue
		}
		j := g.index(r, c)
		if g.open[j] {
			g.join(i, j)
		}
	}

	return nil
}

// IsOpen reports whether the site at (row, col) has been opened.
// Complexity: O(1).
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.check(row, col); err != nil {
		return false, err
	}

	return g.open[g.index(row, col)], nil
}

// IsFull reports whether the site at (row, col) is open and connected to an
// open top-row site. It never mutates fullness state.
// Complexity: O(α(N²)) amortized.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.check(row, col); err != nil {
		return false, err
	}

	return g.isFull(g.index(row, col)), nil
}

// Percolates reports whether some bottom-row site is full.
// The answer is recomputed on every call.
// Complexity: O(N·α(N²)).
func (g *Grid) Percolates() bool {
	bottom := g.n - 1
	for c := 0; c < g.n; c++ {
		if g.isFull(g.index(bottom, c)) {
			return true
		}
	}

	return false
}

// NumberOfOpenSites returns how many sites have been opened.
// Repeated opens of the same site count once.
func (g *Grid) NumberOfOpenSites() int { return g.openCount }

// Neighbors returns the in-bounds 4-neighbours of (row, col) in
// up, down, left, right order, regardless of their open state.
func (g *Grid) Neighbors(row, col int) ([]Site, error) {
	if err := g.check(row, col); err != nil {
		return nil, err
	}
	out := make([]Site, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if g.InBounds(r, c) {
			out = append(out, Site{Row: r, Col: c})
		}
	}

	return out, nil
}

// String renders the grid one row per line:
// '#' closed, '.' open but not full, '~' full.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.n * (g.n + 1))
	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			i := g.index(r, c)
			switch {
			case g.isFull(i):
				sb.WriteByte('~')
			case g.open[i]:
				sb.WriteByte('.')
			default:
				sb.WriteByte('#')
			}
		}
		if r < g.n-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// join unions sites a and b and stores the merged fullness on the surviving root.
func (g *Grid) join(a, b int) {
	full := g.full[g.root(a)] || g.full[g.root(b)]
	// a and b come from index(), so Union cannot fail.
	r, _ := g.uf.Union(a, b)
	g.full[r] = full
}

func (g *Grid) isFull(i int) bool {
	return g.open[i] && g.full[g.root(i)]
}

// root returns the component root of site i; i is always in range.
func (g *Grid) root(i int) int {
	r, _ := g.uf.Find(i)
	return r
}

// index maps (row, col) to a row-major element id: row*N + col.
// Complexity: O(1).
func (g *Grid) index(row, col int) int {
	return row*g.n + col
}

// check validates (row, col) and wraps ErrOutOfBounds with the offending pair.
func (g *Grid) check(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) for grid of size %d", ErrOutOfBounds, row, col, g.n)
	}

	return nil
}
