package util

import "math/rand"

// New returns a seeded PRNG for reproducible layouts. Zero is remapped so
// an unset seed still yields a fixed source.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}
