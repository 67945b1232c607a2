// Package unionfind provides a disjoint-set forest over a fixed universe of
// integer elements [0, n).
//
// What:
//
//   - New(n) allocates n singleton sets; every element is its own root.
//   - Find(id) returns the representative (root) of id's set, halving the
//     path on the way up.
//   - Union(a, b) merges the sets containing a and b and returns the
//     surviving root.
//   - Connected, Count, SetSize expose the partition for diagnostics.
//
// Why:
//
//   - Incremental connectivity: the percolation grid unions a freshly opened
//     site with its open neighbours and asks "same component?" in near
//     constant amortized time.
//
// Determinism:
//
//   - Union by size; on equal sizes the root of the first argument survives.
//     Given the same sequence of unions, the same roots survive, so callers
//     may key per-component data by root id.
//
// Complexity:
//
//   - New:   O(n) time, O(n) memory.
//   - Find:  O(α(n)) amortized.
//   - Union: O(α(n)) amortized.
//
// Errors:
//
//   - ErrInvalidSize: universe size n <= 0.
//   - ErrOutOfRange:  element id outside [0, n).
//
// A UnionFind is not safe for concurrent use; give each goroutine its own.
package unionfind
