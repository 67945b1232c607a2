package montecarlo_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/percolation/montecarlo"
)

// ExampleSummarize aggregates eight per-trial open-site counts from a 3×3 grid.
//
// Complexity: O(T).
func ExampleSummarize() {
	s, _ := montecarlo.Summarize(3, []int{2, 4, 4, 4, 5, 5, 7, 9})

	fmt.Printf("mean    = %.4f\n", s.Mean)
	fmt.Printf("stddev  = %.4f\n", s.StdDev)
	fmt.Printf("95%% CI  = [%.4f, %.4f]\n", s.ConfidenceLow, s.ConfidenceHigh)
	fmt.Printf("vacancy = %.2f%%\n", s.VacancyPercent())

	// Output:
	// mean    = 5.0000
	// stddev  = 2.1381
	// 95% CI  = [3.5184, 6.4816]
	// vacancy = 44.44%
}

// ExampleRun estimates the threshold on a 1×1 grid, where every trial
// percolates after exactly one open site.
func ExampleRun() {
	res, err := montecarlo.Run(context.Background(), 1, 5, montecarlo.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("counts:", res.Counts)
	fmt.Printf("fraction: %.2f\n", res.Fraction())

	// Output:
	// counts: [1 1 1 1 1]
	// fraction: 1.00
}
