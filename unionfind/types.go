// Package unionfind defines the disjoint-set type and its sentinel errors.
package unionfind

import "errors"

// Sentinel errors for unionfind operations.
var (
	// ErrInvalidSize indicates a non-positive universe size was requested.
	ErrInvalidSize = errors.New("unionfind: universe size must be > 0")
	// ErrOutOfRange indicates an element id outside [0, n).
	ErrOutOfRange = errors.New("unionfind: element id out of range")
)

// UnionFind is a disjoint-set forest over elements 0..n-1.
// parent[i] == i marks a root; size[r] is meaningful only for roots.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}
