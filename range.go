package bitvec

// Range mutation engine shared by both containers.
//
// Contiguous ranges split into three phases: a possibly partial head
// block, a run of fully covered blocks written whole, and a possibly
// partial tail block. Partial blocks are updated under a mask built
// from the in-block offsets, full blocks with single stores. Strided
// ranges take the per-bit path.

// rangeMasks returns the block span [first, last] of the bit range
// [begin, end) together with the head and tail masks. For a range
// confined to one block, head already carries the combined mask.
func rangeMasks[B Block](begin, end int) (first, last int, head, tail B) {
	w := blockWidth[B]()
	first = begin / w
	last = (end - 1) / w
	head = ^lowMask[B](begin % w)
	tail = lowMask[B]((end-1)%w + 1)
	if first == last {
		head &= tail
	}
	return first, last, head, tail
}

func setRange[B Block](words []B, begin, end int) {
	if begin >= end {
		return
	}
	first, last, head, tail := rangeMasks[B](begin, end)
	if first == last {
		words[first] |= head
		return
	}
	words[first] |= head
	for i := first + 1; i < last; i++ {
		words[i] = ^B(0)
	}
	words[last] |= tail
}

func clearRange[B Block](words []B, begin, end int) {
	if begin >= end {
		return
	}
	first, last, head, tail := rangeMasks[B](begin, end)
	if first == last {
		words[first] &^= head
		return
	}
	words[first] &^= head
	for i := first + 1; i < last; i++ {
		words[i] = 0
	}
	words[last] &^= tail
}

func flipRange[B Block](words []B, begin, end int) {
	if begin >= end {
		return
	}
	first, last, head, tail := rangeMasks[B](begin, end)
	if first == last {
		words[first] ^= head
		return
	}
	words[first] ^= head
	for i := first + 1; i < last; i++ {
		words[i] = ^words[i]
	}
	words[last] ^= tail
}

func fillRange[B Block](words []B, begin, end int, v bool) {
	if v {
		setRange(words, begin, end)
	} else {
		clearRange(words, begin, end)
	}
}

// Strided variants. step must be positive; the range walks begin,
// begin+step, ... strictly below end, one bit at a time.

func setRangeStep[B Block](words []B, begin, end, step int) {
	for i := begin; i < end; i += step {
		setBit(words, i)
	}
}

func clearRangeStep[B Block](words []B, begin, end, step int) {
	for i := begin; i < end; i += step {
		clearBit(words, i)
	}
}

func flipRangeStep[B Block](words []B, begin, end, step int) {
	for i := begin; i < end; i += step {
		flipBit(words, i)
	}
}

func fillRangeStep[B Block](words []B, begin, end int, v bool, step int) {
	if v {
		setRangeStep(words, begin, end, step)
	} else {
		clearRangeStep(words, begin, end, step)
	}
}
