package unionfind

import "fmt"

// New constructs a UnionFind of n singleton sets.
// Returns ErrInvalidSize if n <= 0.
// Complexity: O(n) time and memory.
func New(n int) (*UnionFind, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Find returns the root of the set containing id.
// Every node visited on the way up is re-pointed to its grandparent
// (path halving), which keeps trees flat across repeated calls.
// Returns ErrOutOfRange if id is not in [0, n).
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Find(id int) (int, error) {
	if err := uf.check(id); err != nil {
		return 0, err
	}

	return uf.find(id), nil
}

// Union merges the sets containing a and b and returns the surviving root.
// If a and b already share a set, nothing changes and the shared root is
// returned. The larger set's root survives; on a tie the root of a survives.
// Returns ErrOutOfRange (without mutating anything) if either id is invalid.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Union(a, b int) (int, error) {
	if err := uf.check(a); err != nil {
		return 0, err
	}
	if err := uf.check(b); err != nil {
		return 0, err
	}

	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return ra, nil
	}
	// Attach the smaller tree under the larger root.
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	uf.count--

	return ra, nil
}

// Connected reports whether a and b belong to the same set.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Connected(a, b int) (bool, error) {
	ra, err := uf.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := uf.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// SetSize returns the number of elements in the set containing id.
func (uf *UnionFind) SetSize(id int) (int, error) {
	r, err := uf.Find(id)
	if err != nil {
		return 0, err
	}

	return uf.size[r], nil
}

// Count returns the current number of disjoint sets.
func (uf *UnionFind) Count() int { return uf.count }

// Size returns the size of the universe fixed at construction.
func (uf *UnionFind) Size() int { return len(uf.parent) }

// find is the unchecked root lookup with path halving.
func (uf *UnionFind) find(id int) int {
	for uf.parent[id] != id {
		uf.parent[id] = uf.parent[uf.parent[id]]
		id = uf.parent[id]
	}

	return id
}

// check validates id against the universe.
func (uf *UnionFind) check(id int) error {
	if id < 0 || id >= len(uf.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, id, len(uf.parent))
	}

	return nil
}
