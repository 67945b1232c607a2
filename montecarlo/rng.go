package montecarlo

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id into a new seed
// with a SplitMix64 finalizer, so neighbouring trial indices get
// uncorrelated streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// trialRNG returns the RNG stream for trial t of a run seeded with seed.
// The stream depends only on (seed, t), never on scheduling order.
func trialRNG(seed int64, t int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rngFromSeed(deriveSeed(seed, uint64(t)))
}
