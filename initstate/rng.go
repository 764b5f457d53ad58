package initstate

import "math/rand"

// defaultSampleSeed seeds sampling when no seed is configured, so an
// unseeded sampled run draws the same initial states every time.
const defaultSampleSeed int64 = 1

// rngFromSeed returns the source a sample draws its indices from.
// Seed 0 means "not configured" and selects defaultSampleSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSampleSeed
	}

	return rand.New(rand.NewSource(seed))
}

// randomBits fills n booleans from r, 63 bits per draw.
// Int63 is used rather than Uint64 so every draw consumes one source step.
//
// Complexity: O(n).
func randomBits(r *rand.Rand, n int) []bool {
	out := make([]bool, n)
	var word int64
	for i := 0; i < n; i++ {
		if i%63 == 0 {
			word = r.Int63()
		}
		out[i] = word&1 == 1
		word >>= 1
	}

	return out
}
