package percolation_test

import (
	"fmt"

	"github.com/katalvlaran/percolation/percolation"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Open / Percolates
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Percolates opens a bent path through a 4×4 grid.
// Scenario:
//
//   - (0,1) is full as a top-row site.
//   - (3,3) opens first and stays empty until the path reaches it.
//   - The system percolates once (2,3) joins the two pieces.
//
// Complexity: O(α(N²)) per Open, O(N·α(N²)) per Percolates.
func ExampleGrid_Percolates() {
	g, _ := percolation.New(4)

	_ = g.Open(3, 3)
	for _, s := range [][2]int{{0, 1}, {1, 1}, {1, 2}, {2, 2}} {
		_ = g.Open(s[0], s[1])
	}
	fmt.Println("percolates:", g.Percolates())

	_ = g.Open(2, 3)
	full, _ := g.IsFull(3, 3)
	fmt.Println("percolates:", g.Percolates())
	fmt.Println("(3,3) full:", full)
	fmt.Println("open sites:", g.NumberOfOpenSites())
	fmt.Println(g)

	// Output:
	// percolates: false
	// percolates: true
	// (3,3) full: true
	// open sites: 6
	// #~##
	// #~~#
	// ##~~
	// ###~
}
