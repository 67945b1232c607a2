// Package percolation models site percolation on an N×N grid.
//
// What:
//
//   - Grid holds N² sites, all closed at construction.
//   - Open(row, col) opens a site and joins it with its open 4-neighbours.
//   - IsFull(row, col) reports whether an open site is connected to the top
//     row through a chain of open sites.
//   - Percolates() reports whether some bottom-row site is full.
//
// How:
//
//   - Sites map to union-find elements via index(row, col) = row*N + col.
//   - Fullness is kept per component root in a flat []bool. A flag is set when
//     a top-row site opens, and carried onto the surviving root at every union.
//     Queries only read, so a site is never reported full from a stale cache.
//   - No virtual top/bottom elements are used, so a component touching only
//     the bottom row never reports full ("backwash").
//
// Complexity:
//
//   - New:               O(N²) time and memory.
//   - Open:              O(α(N²)) amortized (at most four unions).
//   - IsOpen:            O(1).
//   - IsFull:            O(α(N²)) amortized.
//   - Percolates:        O(N·α(N²)); evaluated fresh on every call.
//   - NumberOfOpenSites: O(1).
//
// Errors:
//
//   - ErrInvalidSize: N <= 0.
//   - ErrOutOfBounds: a coordinate outside [0, N); the grid is left untouched.
//
// Opening an already open site is not an error; it is a no-op.
//
// A Grid is not safe for concurrent use. Each Monte Carlo trial owns its own.
package percolation
