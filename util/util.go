package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateBitString generates a random '1'/'0' string of the given
// length, each position holding '1' with probability p.
func (r *RNG) GenerateBitString(length int, p float64) string {
	buf := make([]byte, length)
	for i := range buf {
		if r.rand.Float64() < p {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}

	return string(buf)
}

// GenerateIndices generates n random bit indices below size.
func (r *RNG) GenerateIndices(n, size int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = r.rand.Intn(size)
	}

	return indices
}

// GenerateBlock generates a random 64-bit block value.
func (r *RNG) GenerateBlock() uint64 {
	return r.rand.Uint64()
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}
