package bitvec

// Fixed is a bit container whose length is set at construction and
// never changes. Bits are addressed least-significant-first: bit i
// lives in block i/W at offset i%W, where W is the width of B.
//
// Indices passed to any method must lie in [0, Len()) (block indices
// in [0, Blocks())); no validation beyond Go's native slice bounds
// check is performed. Bulk fills and block-granularity writes may set
// storage bits at positions >= Len() in the trailing block; aggregate
// queries, comparisons, conversions, and iterators mask those bits
// out.
//
// A Fixed value is not safe for concurrent mutation. Concurrent
// readers are fine as long as no writer runs.
type Fixed[B Block] struct {
	words []B
	size  int
}

// NewFixed returns a zeroed container of the given length in bits.
func NewFixed[B Block](size int) *Fixed[B] {
	return &Fixed[B]{
		words: make([]B, blocksFor[B](size)),
		size:  size,
	}
}

// NewFixedFilled returns a container of the given length with every
// bit set to v.
func NewFixedFilled[B Block](size int, v bool) *Fixed[B] {
	f := NewFixed[B](size)
	f.Fill(v)
	return f
}

// FixedFromBlock returns a container of the given length with every
// storage block set to b, including trailing storage bits past size.
func FixedFromBlock[B Block](size int, b B) *Fixed[B] {
	f := NewFixed[B](size)
	f.FillBlocks(b)
	return f
}

// Len returns the length of the container in bits.
func (f *Fixed[B]) Len() int { return f.size }

// Blocks returns the number of storage blocks.
func (f *Fixed[B]) Blocks() int { return len(f.words) }

// Empty reports whether the container has zero length.
func (f *Fixed[B]) Empty() bool { return f.size == 0 }

// Clone returns a deep copy sharing no storage with f.
func (f *Fixed[B]) Clone() *Fixed[B] {
	words := make([]B, len(f.words))
	copy(words, f.words)
	return &Fixed[B]{words: words, size: f.size}
}

// Resized returns a new container of the given length. Storage blocks
// common to both lengths are copied raw; blocks present only in the
// longer result are zero.
func (f *Fixed[B]) Resized(size int) *Fixed[B] {
	r := NewFixed[B](size)
	copy(r.words, f.words)
	return r
}

// ToDynamic returns a resizable deep copy of f.
func (f *Fixed[B]) ToDynamic() *Dynamic[B] {
	words := make([]B, len(f.words))
	copy(words, f.words)
	return &Dynamic[B]{words: words, size: f.size}
}

// Test reports whether bit i is set.
func (f *Fixed[B]) Test(i int) bool { return testBit(f.words, i) }

// Set sets bit i.
func (f *Fixed[B]) Set(i int) { setBit(f.words, i) }

// SetTo sets bit i to v.
func (f *Fixed[B]) SetTo(i int, v bool) { setBitTo(f.words, i, v) }

// Clear clears bit i.
func (f *Fixed[B]) Clear(i int) { clearBit(f.words, i) }

// Flip complements bit i.
func (f *Fixed[B]) Flip(i int) { flipBit(f.words, i) }

// Swap exchanges bits i and j.
func (f *Fixed[B]) Swap(i, j int) {
	bi, bj := testBit(f.words, i), testBit(f.words, j)
	setBitTo(f.words, i, bj)
	setBitTo(f.words, j, bi)
}

// SetAll sets every storage block to all ones.
func (f *Fixed[B]) SetAll() {
	for i := range f.words {
		f.words[i] = ^B(0)
	}
}

// ClearAll zeroes every storage block.
func (f *Fixed[B]) ClearAll() {
	clear(f.words)
}

// FlipAll complements every storage block.
func (f *Fixed[B]) FlipAll() {
	for i := range f.words {
		f.words[i] = ^f.words[i]
	}
}

// Fill sets every bit to v.
func (f *Fixed[B]) Fill(v bool) {
	if v {
		f.SetAll()
	} else {
		f.ClearAll()
	}
}

// SetRange sets the bits in [begin, end). An empty range is a no-op.
func (f *Fixed[B]) SetRange(begin, end int) { setRange(f.words, begin, end) }

// ClearRange clears the bits in [begin, end). An empty range is a
// no-op.
func (f *Fixed[B]) ClearRange(begin, end int) { clearRange(f.words, begin, end) }

// FlipRange complements the bits in [begin, end). An empty range is a
// no-op.
func (f *Fixed[B]) FlipRange(begin, end int) { flipRange(f.words, begin, end) }

// FillRange sets the bits in [begin, end) to v.
func (f *Fixed[B]) FillRange(begin, end int, v bool) { fillRange(f.words, begin, end, v) }

// SetRangeStep sets bits begin, begin+step, ... below end. step must
// be positive.
func (f *Fixed[B]) SetRangeStep(begin, end, step int) { setRangeStep(f.words, begin, end, step) }

// ClearRangeStep clears bits begin, begin+step, ... below end. step
// must be positive.
func (f *Fixed[B]) ClearRangeStep(begin, end, step int) { clearRangeStep(f.words, begin, end, step) }

// FlipRangeStep complements bits begin, begin+step, ... below end.
// step must be positive.
func (f *Fixed[B]) FlipRangeStep(begin, end, step int) { flipRangeStep(f.words, begin, end, step) }

// FillRangeStep sets bits begin, begin+step, ... below end to v. step
// must be positive.
func (f *Fixed[B]) FillRangeStep(begin, end int, v bool, step int) {
	fillRangeStep(f.words, begin, end, v, step)
}

// GetBlock returns storage block i.
func (f *Fixed[B]) GetBlock(i int) B { return f.words[i] }

// SetBlock stores b into storage block i.
func (f *Fixed[B]) SetBlock(i int, b B) { f.words[i] = b }

// ClearBlock zeroes storage block i.
func (f *Fixed[B]) ClearBlock(i int) { f.words[i] = 0 }

// FlipBlock complements storage block i.
func (f *Fixed[B]) FlipBlock(i int) { f.words[i] = ^f.words[i] }

// FillBlocks stores b into every storage block.
func (f *Fixed[B]) FillBlocks(b B) {
	for i := range f.words {
		f.words[i] = b
	}
}

// FillBlockRange stores b into storage blocks [begin, end).
func (f *Fixed[B]) FillBlockRange(begin, end int, b B) {
	for i := begin; i < end; i++ {
		f.words[i] = b
	}
}

// ClearBlockRange zeroes storage blocks [begin, end).
func (f *Fixed[B]) ClearBlockRange(begin, end int) {
	for i := begin; i < end; i++ {
		f.words[i] = 0
	}
}

// FlipBlockRange complements storage blocks [begin, end).
func (f *Fixed[B]) FlipBlockRange(begin, end int) {
	for i := begin; i < end; i++ {
		f.words[i] = ^f.words[i]
	}
}

// FillBlockRangeStep stores b into blocks begin, begin+step, ...
// below end. step must be positive.
func (f *Fixed[B]) FillBlockRangeStep(begin, end int, b B, step int) {
	for i := begin; i < end; i += step {
		f.words[i] = b
	}
}

// ClearBlockRangeStep zeroes blocks begin, begin+step, ... below end.
// step must be positive.
func (f *Fixed[B]) ClearBlockRangeStep(begin, end, step int) {
	for i := begin; i < end; i += step {
		f.words[i] = 0
	}
}

// FlipBlockRangeStep complements blocks begin, begin+step, ... below
// end. step must be positive.
func (f *Fixed[B]) FlipBlockRangeStep(begin, end, step int) {
	for i := begin; i < end; i += step {
		f.words[i] = ^f.words[i]
	}
}

// All reports whether every valid bit is set. An empty container
// reports true.
func (f *Fixed[B]) All() bool { return allSet(f.words, f.size) }

// Any reports whether at least one valid bit is set.
func (f *Fixed[B]) Any() bool { return anySet(f.words, f.size) }

// None reports whether no valid bit is set.
func (f *Fixed[B]) None() bool { return !anySet(f.words, f.size) }

// Count returns the number of set valid bits.
func (f *Fixed[B]) Count() int { return countBits(f.words, f.size) }

// NextSet returns the index of the first set bit at or after from,
// or false if there is none.
func (f *Fixed[B]) NextSet(from int) (int, bool) { return nextSet(f.words, f.size, from) }

// Equal reports whether o has the same length and the same valid
// bits. Containers of different lengths are never equal; trailing
// storage bits do not participate.
func (f *Fixed[B]) Equal(o *Fixed[B]) bool {
	if f.size != o.size {
		return false
	}
	return equalWords(f.words, o.words, f.size)
}

// And returns a new container holding the blockwise conjunction
// f & o. Both operands must have the same length; trailing storage
// bits are combined raw.
func (f *Fixed[B]) And(o *Fixed[B]) *Fixed[B] {
	r := &Fixed[B]{words: make([]B, len(f.words)), size: f.size}
	for i := range f.words {
		r.words[i] = f.words[i] & o.words[i]
	}
	return r
}

// Or returns a new container holding the blockwise disjunction f | o.
// Both operands must have the same length.
func (f *Fixed[B]) Or(o *Fixed[B]) *Fixed[B] {
	r := &Fixed[B]{words: make([]B, len(f.words)), size: f.size}
	for i := range f.words {
		r.words[i] = f.words[i] | o.words[i]
	}
	return r
}

// Xor returns a new container holding the blockwise exclusive
// disjunction f ^ o. Both operands must have the same length.
func (f *Fixed[B]) Xor(o *Fixed[B]) *Fixed[B] {
	r := &Fixed[B]{words: make([]B, len(f.words)), size: f.size}
	for i := range f.words {
		r.words[i] = f.words[i] ^ o.words[i]
	}
	return r
}

// AndNot returns a new container holding the blockwise set difference
// f &^ o. Both operands must have the same length.
func (f *Fixed[B]) AndNot(o *Fixed[B]) *Fixed[B] {
	r := &Fixed[B]{words: make([]B, len(f.words)), size: f.size}
	for i := range f.words {
		r.words[i] = f.words[i] &^ o.words[i]
	}
	return r
}

// Not returns a new container holding the blockwise complement of f.
func (f *Fixed[B]) Not() *Fixed[B] {
	r := &Fixed[B]{words: make([]B, len(f.words)), size: f.size}
	for i := range f.words {
		r.words[i] = ^f.words[i]
	}
	return r
}

// InPlaceAnd replaces f with f & o blockwise. Both operands must have
// the same length.
func (f *Fixed[B]) InPlaceAnd(o *Fixed[B]) {
	for i := range f.words {
		f.words[i] &= o.words[i]
	}
}

// InPlaceOr replaces f with f | o blockwise. Both operands must have
// the same length.
func (f *Fixed[B]) InPlaceOr(o *Fixed[B]) {
	for i := range f.words {
		f.words[i] |= o.words[i]
	}
}

// InPlaceXor replaces f with f ^ o blockwise. Both operands must have
// the same length.
func (f *Fixed[B]) InPlaceXor(o *Fixed[B]) {
	for i := range f.words {
		f.words[i] ^= o.words[i]
	}
}

// InPlaceAndNot replaces f with f &^ o blockwise. Both operands must
// have the same length.
func (f *Fixed[B]) InPlaceAndNot(o *Fixed[B]) {
	for i := range f.words {
		f.words[i] &^= o.words[i]
	}
}

// Lsh returns a new container holding f shifted left (towards higher
// indices) by n bits, zero-filling from the low end. Shifts of
// n >= Len() produce an all-zero container.
func (f *Fixed[B]) Lsh(n int) *Fixed[B] {
	r := &Fixed[B]{words: make([]B, len(f.words)), size: f.size}
	if n < f.size {
		shiftLeft(r.words, f.words, n)
	}
	return r
}

// Rsh returns a new container holding f shifted right (towards lower
// indices) by n bits, zero-filling from the high end. Shifts of
// n >= Len() produce an all-zero container.
func (f *Fixed[B]) Rsh(n int) *Fixed[B] {
	r := &Fixed[B]{words: make([]B, len(f.words)), size: f.size}
	if n < f.size {
		shiftRight(r.words, f.words, f.size, n)
	}
	return r
}

// InPlaceLsh shifts f left by n bits in place.
func (f *Fixed[B]) InPlaceLsh(n int) {
	if n >= f.size {
		clear(f.words)
		return
	}
	shiftLeft(f.words, f.words, n)
}

// InPlaceRsh shifts f right by n bits in place.
func (f *Fixed[B]) InPlaceRsh(n int) {
	if n >= f.size {
		clear(f.words)
		return
	}
	shiftRight(f.words, f.words, f.size, n)
}

// Reverse mirrors the container in place: bit i exchanges with bit
// Len()-1-i.
func (f *Fixed[B]) Reverse() { reverseBits(f.words, f.size) }

// Rotate rotates the container left by n bits in place: bit i of the
// result is bit (i+n) mod Len() of the input. Negative n rotates
// right.
func (f *Fixed[B]) Rotate(n int) { rotateBits(f.words, f.size, n) }
