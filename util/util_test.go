package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBitString(t *testing.T) {
	rng := NewRNG(4711)

	s := rng.GenerateBitString(256, 0.5)

	assert.Equal(t, 256, len(s))
	assert.Equal(t, 256, strings.Count(s, "0")+strings.Count(s, "1"))

	all := rng.GenerateBitString(64, 1.0)
	assert.Equal(t, strings.Repeat("1", 64), all)

	none := rng.GenerateBitString(64, 0.0)
	assert.Equal(t, strings.Repeat("0", 64), none)
}

func TestGenerateBitStringDeterministic(t *testing.T) {
	a := NewRNG(42).GenerateBitString(128, 0.5)
	b := NewRNG(42).GenerateBitString(128, 0.5)

	assert.Equal(t, a, b)
}

func TestGenerateBlockDeterministic(t *testing.T) {
	a := NewRNG(7).GenerateBlock()
	b := NewRNG(7).GenerateBlock()

	assert.Equal(t, a, b)
}

func TestGenerateIndices(t *testing.T) {
	rng := NewRNG(4711)

	indices := rng.GenerateIndices(64, 1000)

	assert.Equal(t, 64, len(indices))
	for _, i := range indices {
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 1000)
	}
}
