// Package percolation is a Monte Carlo estimator of the site percolation
// threshold of a square lattice.
//
// 🚀 What is inside?
//
//	• unionfind/   — disjoint-set forest: union by size, path halving
//	• percolation/ — N×N site grid: Open, IsOpen, IsFull, Percolates
//	• montecarlo/  — T independent trials on a worker pool + summary statistics
//	• cmd/percolate — CLI: `percolate run [grid-size] [trials]`
//
// Quick ASCII example ('#' closed, '.' open, '~' full):
//
//	#~##
//	#~~#
//	##~~
//	###~
//
// represents a 4×4 grid that percolates after 6 opened sites.
//
// The estimate of the threshold p* is mean/N², reported together with the
// 95% confidence interval mean ± 1.96·stddev/√T.
//
//	go install github.com/katalvlaran/percolation/cmd/percolate@latest
package percolation
