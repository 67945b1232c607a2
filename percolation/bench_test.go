package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/percolation"
)

// BenchmarkOpenUntilPercolates measures one full trial on a 200×200 grid,
// opening a fixed random permutation of sites until the system percolates.
// Complexity: O(N²·α(N²)) opens plus O(N) per Percolates poll.
func BenchmarkOpenUntilPercolates(b *testing.B) {
	const n = 200
	order := rand.New(rand.NewSource(42)).Perm(n * n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := percolation.New(n)
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		for _, idx := range order {
			_ = g.Open(idx/n, idx%n)
			if g.Percolates() {
				break
			}
		}
	}
}
