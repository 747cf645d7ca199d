package bitvec

import "math/bits"

// Block is the constraint for the underlying storage unit of a bit
// container. Any unsigned integer type (or named type thereof) can
// serve as a block; the choice trades per-operation granularity
// against storage compactness for small containers.
type Block interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// AllOnes returns the block value with every bit set.
func AllOnes[B Block]() B {
	return ^B(0)
}

// blockWidth returns the width of B in bits (8, 16, 32, 64, or the
// platform word size for ~uint).
func blockWidth[B Block]() int {
	return bits.OnesCount64(uint64(^B(0)))
}

// blocksFor returns the number of blocks needed to store n bits.
func blocksFor[B Block](n int) int {
	w := blockWidth[B]()
	return (n + w - 1) / w
}

// lowMask returns a block with bits [0, n) set. n must be in
// [0, blockWidth]; Go defines shifts by the full width as zero, so
// n == blockWidth wraps to the all-ones mask.
func lowMask[B Block](n int) B {
	return B(1)<<n - 1
}

func testBit[B Block](words []B, i int) bool {
	w := blockWidth[B]()
	return words[i/w]>>(i%w)&1 != 0
}

func setBit[B Block](words []B, i int) {
	w := blockWidth[B]()
	words[i/w] |= B(1) << (i % w)
}

func clearBit[B Block](words []B, i int) {
	w := blockWidth[B]()
	words[i/w] &^= B(1) << (i % w)
}

func flipBit[B Block](words []B, i int) {
	w := blockWidth[B]()
	words[i/w] ^= B(1) << (i % w)
}

func setBitTo[B Block](words []B, i int, v bool) {
	if v {
		setBit(words, i)
	} else {
		clearBit(words, i)
	}
}

// allSet reports whether every valid bit in [0, size) is one. Full
// blocks are compared whole; the trailing partial block is compared
// under its valid-bit mask.
func allSet[B Block](words []B, size int) bool {
	w := blockWidth[B]()
	full := size / w
	for i := 0; i < full; i++ {
		if words[i] != ^B(0) {
			return false
		}
	}
	if partial := size % w; partial != 0 {
		mask := lowMask[B](partial)
		return words[full]&mask == mask
	}
	return true
}

// anySet reports whether at least one valid bit in [0, size) is one.
func anySet[B Block](words []B, size int) bool {
	w := blockWidth[B]()
	full := size / w
	for i := 0; i < full; i++ {
		if words[i] != 0 {
			return true
		}
	}
	if partial := size % w; partial != 0 {
		return words[full]&lowMask[B](partial) != 0
	}
	return false
}

// countBits returns the population count of the valid bits in
// [0, size). Trailing storage bits in the last block are masked out
// before counting.
func countBits[B Block](words []B, size int) int {
	w := blockWidth[B]()
	full := size / w
	n := 0
	for i := 0; i < full; i++ {
		n += bits.OnesCount64(uint64(words[i]))
	}
	if partial := size % w; partial != 0 {
		n += bits.OnesCount64(uint64(words[full] & lowMask[B](partial)))
	}
	return n
}

// equalWords compares two word slices holding size valid bits each.
// Full blocks are compared raw; the trailing partial block only on
// its valid bits.
func equalWords[B Block](a, b []B, size int) bool {
	w := blockWidth[B]()
	full := size / w
	for i := 0; i < full; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	if partial := size % w; partial != 0 {
		mask := lowMask[B](partial)
		return a[full]&mask == b[full]&mask
	}
	return true
}

// nextSet returns the index of the first set bit at or after from,
// or false if no valid bit at or after from is set.
func nextSet[B Block](words []B, size, from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	if from >= size {
		return 0, false
	}
	w := blockWidth[B]()
	last := (size - 1) / w
	partial := size % w

	i := from / w
	cur := words[i] >> (from % w) << (from % w)
	for {
		if i == last && partial != 0 {
			cur &= lowMask[B](partial)
		}
		if cur != 0 {
			return i*w + bits.TrailingZeros64(uint64(cur)), true
		}
		i++
		if i > last {
			return 0, false
		}
		cur = words[i]
	}
}
