package bitvec

// Shift engines shared by both containers. A shift by n decomposes
// into a whole-block displacement n/W and an intra-block shift n%W;
// each destination block combines its displaced source block with the
// carry bits of the adjacent one. Vacated blocks zero-fill. dst and
// src may alias: shiftLeft writes high to low, shiftRight low to
// high, so in-place use never reads an overwritten block.
//
// Callers handle n >= size (full clear) before dispatching here; the
// engines only rely on Go's defined zero result for over-width
// intra-block shifts.
//
// shiftLeft needs no size: it moves bits toward higher indices, so
// trailing storage bits can only travel further into the trailing
// region. shiftRight moves them down into the valid range, so it
// masks the last source block to honor zero-fill from above size.

func shiftLeft[B Block](dst, src []B, n int) {
	w := blockWidth[B]()
	blockShift, bitShift := n/w, n%w
	for i := len(dst) - 1; i >= 0; i-- {
		var x B
		if j := i - blockShift; j >= 0 {
			x = src[j] << bitShift
			if bitShift > 0 && j > 0 {
				x |= src[j-1] >> (w - bitShift)
			}
		}
		dst[i] = x
	}
}

func shiftRight[B Block](dst, src []B, size, n int) {
	w := blockWidth[B]()
	blockShift, bitShift := n/w, n%w
	last := len(src) - 1
	top := AllOnes[B]()
	if r := size % w; r != 0 {
		top = lowMask[B](r)
	}
	for i := 0; i < len(dst); i++ {
		var x B
		if j := i + blockShift; j < len(src) {
			v := src[j]
			if j == last {
				v &= top
			}
			x = v >> bitShift
			if bitShift > 0 && j+1 < len(src) {
				c := src[j+1]
				if j+1 == last {
					c &= top
				}
				x |= c << (w - bitShift)
			}
		}
		dst[i] = x
	}
}

// reverseBits swaps bit i with bit size-1-i across the valid range.
func reverseBits[B Block](words []B, size int) {
	for i, j := 0, size-1; i < j; i, j = i+1, j-1 {
		bi, bj := testBit(words, i), testBit(words, j)
		setBitTo(words, i, bj)
		setBitTo(words, j, bi)
	}
}

// rotateBits rotates left by n: bit i of the result is bit
// (i+n) mod size of the input. Works from a snapshot of the words.
func rotateBits[B Block](words []B, size, n int) {
	if size == 0 {
		return
	}
	n %= size
	if n < 0 {
		n += size
	}
	if n == 0 {
		return
	}
	orig := make([]B, len(words))
	copy(orig, words)
	for i := 0; i < size; i++ {
		setBitTo(words, i, testBit(orig, (i+n)%size))
	}
}
