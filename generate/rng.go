package generate

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass a nil RNG,
// so generator output is reproducible even without an explicit seed.
const defaultRNGSeed int64 = 1

// defaultRNG returns rng unchanged if non-nil, or a fresh deterministically
// seeded *rand.Rand otherwise.
func defaultRNG(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(defaultRNGSeed))
}
