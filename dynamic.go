package bitvec

// Dynamic is a resizable bit container. It maintains exactly
// ceil(Len()/W) storage blocks at all times: push and pop reallocate
// only when the last block fills or empties, resize and the block
// mutators reallocate to the exact new block count. Growth is one
// block per W pushes, not geometric; callers appending large runs
// should batch through Resize or PushBackBlock.
//
// Bit addressing, index contracts, and the trailing-storage-bit
// caveat match Fixed: indices are unvalidated, bulk and block writes
// may touch storage bits past Len(), and all masked reads ignore
// them. Resizing within the trailing block exposes those bits, so
// their values are unspecified unless previously cleared.
//
// A Dynamic value is not safe for concurrent mutation. Concurrent
// readers are fine as long as no writer runs.
type Dynamic[B Block] struct {
	words []B
	size  int
}

// NewDynamic returns a zeroed container of the given length in bits.
func NewDynamic[B Block](size int) *Dynamic[B] {
	return &Dynamic[B]{
		words: make([]B, blocksFor[B](size)),
		size:  size,
	}
}

// NewDynamicFilled returns a container of the given length with every
// bit set to v.
func NewDynamicFilled[B Block](size int, v bool) *Dynamic[B] {
	d := NewDynamic[B](size)
	d.Fill(v)
	return d
}

// DynamicFromBlock returns a container of the given length with every
// storage block set to b, including trailing storage bits past size.
func DynamicFromBlock[B Block](size int, b B) *Dynamic[B] {
	d := NewDynamic[B](size)
	d.FillBlocks(b)
	return d
}

// Len returns the length of the container in bits.
func (d *Dynamic[B]) Len() int { return d.size }

// Blocks returns the number of storage blocks.
func (d *Dynamic[B]) Blocks() int { return len(d.words) }

// Capacity returns the number of bits the current storage can hold
// without reallocating, always Blocks() times the block width.
func (d *Dynamic[B]) Capacity() int { return len(d.words) * blockWidth[B]() }

// Empty reports whether the container has zero length.
func (d *Dynamic[B]) Empty() bool { return d.size == 0 }

// Clone returns a deep copy sharing no storage with d.
func (d *Dynamic[B]) Clone() *Dynamic[B] {
	words := make([]B, len(d.words))
	copy(words, d.words)
	return &Dynamic[B]{words: words, size: d.size}
}

// ToFixed returns a non-resizable deep copy of d.
func (d *Dynamic[B]) ToFixed() *Fixed[B] {
	words := make([]B, len(d.words))
	copy(words, d.words)
	return &Fixed[B]{words: words, size: d.size}
}

// Resize changes the length to size bits. Growing zeroes every newly
// allocated block; bits gained inside a previously partial trailing
// block keep their unspecified storage values. Shrinking retains the
// block prefix, releasing storage entirely at size zero. Resizing to
// the current length is a no-op.
func (d *Dynamic[B]) Resize(size int) {
	if size == d.size {
		return
	}
	if size == 0 {
		d.words, d.size = nil, 0
		return
	}
	words := make([]B, blocksFor[B](size))
	copy(words, d.words)
	d.words, d.size = words, size
}

// PushBack appends one bit. Storage reallocates only when the current
// length already fills every block.
func (d *Dynamic[B]) PushBack(v bool) {
	if d.size == d.Capacity() {
		words := make([]B, len(d.words)+1)
		copy(words, d.words)
		d.words = words
	}
	d.size++
	setBitTo(d.words, d.size-1, v)
}

// PopBack removes the last bit, releasing the trailing block when it
// empties. Popping an empty container is undefined.
func (d *Dynamic[B]) PopBack() {
	d.size--
	if d.size%blockWidth[B]() != 0 {
		return
	}
	if d.size == 0 {
		d.words = nil
		return
	}
	words := make([]B, blocksFor[B](d.size))
	copy(words, d.words)
	d.words = words
}

// Insert inserts one bit at index i, shifting the bits at [i, Len())
// up by one. i == Len() appends.
func (d *Dynamic[B]) Insert(i int, v bool) {
	d.PushBack(false)
	for j := d.size - 1; j > i; j-- {
		setBitTo(d.words, j, testBit(d.words, j-1))
	}
	setBitTo(d.words, i, v)
}

// PushBackBlock appends one whole block. An unaligned length first
// rounds up to a full block, turning its unspecified trailing storage
// bits into valid bits; the appended block then holds b.
func (d *Dynamic[B]) PushBackBlock(b B) {
	words := make([]B, len(d.words)+1)
	copy(words, d.words)
	words[len(words)-1] = b
	d.words = words
	d.size = len(words) * blockWidth[B]()
}

// PopBackBlock removes the trailing block, whether partial or full;
// the length becomes a whole-block multiple. Popping a container
// without blocks is undefined.
func (d *Dynamic[B]) PopBackBlock() {
	storage := len(d.words) - 1
	if storage == 0 {
		d.words, d.size = nil, 0
		return
	}
	words := make([]B, storage)
	copy(words, d.words)
	d.words = words
	d.size = storage * blockWidth[B]()
}

// InsertBlock inserts one block at block index i, shifting blocks
// [i, Blocks()) up and growing the length by one block width.
// i == Blocks() degenerates to PushBackBlock.
func (d *Dynamic[B]) InsertBlock(i int, b B) {
	if i == len(d.words) {
		d.PushBackBlock(b)
		return
	}
	words := make([]B, len(d.words)+1)
	copy(words, d.words[:i])
	words[i] = b
	copy(words[i+1:], d.words[i:])
	d.words = words
	d.size += blockWidth[B]()
}

// Test reports whether bit i is set.
func (d *Dynamic[B]) Test(i int) bool { return testBit(d.words, i) }

// Set sets bit i.
func (d *Dynamic[B]) Set(i int) { setBit(d.words, i) }

// SetTo sets bit i to v.
func (d *Dynamic[B]) SetTo(i int, v bool) { setBitTo(d.words, i, v) }

// Clear clears bit i.
func (d *Dynamic[B]) Clear(i int) { clearBit(d.words, i) }

// Flip complements bit i.
func (d *Dynamic[B]) Flip(i int) { flipBit(d.words, i) }

// Swap exchanges bits i and j.
func (d *Dynamic[B]) Swap(i, j int) {
	bi, bj := testBit(d.words, i), testBit(d.words, j)
	setBitTo(d.words, i, bj)
	setBitTo(d.words, j, bi)
}

// SetAll sets every storage block to all ones.
func (d *Dynamic[B]) SetAll() {
	for i := range d.words {
		d.words[i] = ^B(0)
	}
}

// ClearAll zeroes every storage block.
func (d *Dynamic[B]) ClearAll() {
	clear(d.words)
}

// FlipAll complements every storage block.
func (d *Dynamic[B]) FlipAll() {
	for i := range d.words {
		d.words[i] = ^d.words[i]
	}
}

// Fill sets every bit to v.
func (d *Dynamic[B]) Fill(v bool) {
	if v {
		d.SetAll()
	} else {
		d.ClearAll()
	}
}

// SetRange sets the bits in [begin, end). An empty range is a no-op.
func (d *Dynamic[B]) SetRange(begin, end int) { setRange(d.words, begin, end) }

// ClearRange clears the bits in [begin, end). An empty range is a
// no-op.
func (d *Dynamic[B]) ClearRange(begin, end int) { clearRange(d.words, begin, end) }

// FlipRange complements the bits in [begin, end). An empty range is a
// no-op.
func (d *Dynamic[B]) FlipRange(begin, end int) { flipRange(d.words, begin, end) }

// FillRange sets the bits in [begin, end) to v.
func (d *Dynamic[B]) FillRange(begin, end int, v bool) { fillRange(d.words, begin, end, v) }

// SetRangeStep sets bits begin, begin+step, ... below end. step must
// be positive.
func (d *Dynamic[B]) SetRangeStep(begin, end, step int) { setRangeStep(d.words, begin, end, step) }

// ClearRangeStep clears bits begin, begin+step, ... below end. step
// must be positive.
func (d *Dynamic[B]) ClearRangeStep(begin, end, step int) { clearRangeStep(d.words, begin, end, step) }

// FlipRangeStep complements bits begin, begin+step, ... below end.
// step must be positive.
func (d *Dynamic[B]) FlipRangeStep(begin, end, step int) { flipRangeStep(d.words, begin, end, step) }

// FillRangeStep sets bits begin, begin+step, ... below end to v. step
// must be positive.
func (d *Dynamic[B]) FillRangeStep(begin, end int, v bool, step int) {
	fillRangeStep(d.words, begin, end, v, step)
}

// GetBlock returns storage block i.
func (d *Dynamic[B]) GetBlock(i int) B { return d.words[i] }

// SetBlock stores b into storage block i.
func (d *Dynamic[B]) SetBlock(i int, b B) { d.words[i] = b }

// ClearBlock zeroes storage block i.
func (d *Dynamic[B]) ClearBlock(i int) { d.words[i] = 0 }

// FlipBlock complements storage block i.
func (d *Dynamic[B]) FlipBlock(i int) { d.words[i] = ^d.words[i] }

// FillBlocks stores b into every storage block.
func (d *Dynamic[B]) FillBlocks(b B) {
	for i := range d.words {
		d.words[i] = b
	}
}

// FillBlockRange stores b into storage blocks [begin, end).
func (d *Dynamic[B]) FillBlockRange(begin, end int, b B) {
	for i := begin; i < end; i++ {
		d.words[i] = b
	}
}

// ClearBlockRange zeroes storage blocks [begin, end).
func (d *Dynamic[B]) ClearBlockRange(begin, end int) {
	for i := begin; i < end; i++ {
		d.words[i] = 0
	}
}

// FlipBlockRange complements storage blocks [begin, end).
func (d *Dynamic[B]) FlipBlockRange(begin, end int) {
	for i := begin; i < end; i++ {
		d.words[i] = ^d.words[i]
	}
}

// FillBlockRangeStep stores b into blocks begin, begin+step, ...
// below end. step must be positive.
func (d *Dynamic[B]) FillBlockRangeStep(begin, end int, b B, step int) {
	for i := begin; i < end; i += step {
		d.words[i] = b
	}
}

// ClearBlockRangeStep zeroes blocks begin, begin+step, ... below end.
// step must be positive.
func (d *Dynamic[B]) ClearBlockRangeStep(begin, end, step int) {
	for i := begin; i < end; i += step {
		d.words[i] = 0
	}
}

// FlipBlockRangeStep complements blocks begin, begin+step, ... below
// end. step must be positive.
func (d *Dynamic[B]) FlipBlockRangeStep(begin, end, step int) {
	for i := begin; i < end; i += step {
		d.words[i] = ^d.words[i]
	}
}

// All reports whether every valid bit is set. An empty container
// reports true.
func (d *Dynamic[B]) All() bool { return allSet(d.words, d.size) }

// Any reports whether at least one valid bit is set.
func (d *Dynamic[B]) Any() bool { return anySet(d.words, d.size) }

// None reports whether no valid bit is set.
func (d *Dynamic[B]) None() bool { return !anySet(d.words, d.size) }

// Count returns the number of set valid bits.
func (d *Dynamic[B]) Count() int { return countBits(d.words, d.size) }

// NextSet returns the index of the first set bit at or after from,
// or false if there is none.
func (d *Dynamic[B]) NextSet(from int) (int, bool) { return nextSet(d.words, d.size, from) }

// Equal reports whether o has the same length and the same valid
// bits. Containers of different lengths are never equal; trailing
// storage bits do not participate.
func (d *Dynamic[B]) Equal(o *Dynamic[B]) bool {
	if d.size != o.size {
		return false
	}
	return equalWords(d.words, o.words, d.size)
}

// And returns a new container holding the blockwise conjunction
// d & o. Both operands must have the same length; trailing storage
// bits are combined raw.
func (d *Dynamic[B]) And(o *Dynamic[B]) *Dynamic[B] {
	r := &Dynamic[B]{words: make([]B, len(d.words)), size: d.size}
	for i := range d.words {
		r.words[i] = d.words[i] & o.words[i]
	}
	return r
}

// Or returns a new container holding the blockwise disjunction d | o.
// Both operands must have the same length.
func (d *Dynamic[B]) Or(o *Dynamic[B]) *Dynamic[B] {
	r := &Dynamic[B]{words: make([]B, len(d.words)), size: d.size}
	for i := range d.words {
		r.words[i] = d.words[i] | o.words[i]
	}
	return r
}

// Xor returns a new container holding the blockwise exclusive
// disjunction d ^ o. Both operands must have the same length.
func (d *Dynamic[B]) Xor(o *Dynamic[B]) *Dynamic[B] {
	r := &Dynamic[B]{words: make([]B, len(d.words)), size: d.size}
	for i := range d.words {
		r.words[i] = d.words[i] ^ o.words[i]
	}
	return r
}

// AndNot returns a new container holding the blockwise set difference
// d &^ o. Both operands must have the same length.
func (d *Dynamic[B]) AndNot(o *Dynamic[B]) *Dynamic[B] {
	r := &Dynamic[B]{words: make([]B, len(d.words)), size: d.size}
	for i := range d.words {
		r.words[i] = d.words[i] &^ o.words[i]
	}
	return r
}

// Not returns a new container holding the blockwise complement of d.
func (d *Dynamic[B]) Not() *Dynamic[B] {
	r := &Dynamic[B]{words: make([]B, len(d.words)), size: d.size}
	for i := range d.words {
		r.words[i] = ^d.words[i]
	}
	return r
}

// InPlaceAnd replaces d with d & o blockwise. Both operands must have
// the same length.
func (d *Dynamic[B]) InPlaceAnd(o *Dynamic[B]) {
	for i := range d.words {
		d.words[i] &= o.words[i]
	}
}

// InPlaceOr replaces d with d | o blockwise. Both operands must have
// the same length.
func (d *Dynamic[B]) InPlaceOr(o *Dynamic[B]) {
	for i := range d.words {
		d.words[i] |= o.words[i]
	}
}

// InPlaceXor replaces d with d ^ o blockwise. Both operands must have
// the same length.
func (d *Dynamic[B]) InPlaceXor(o *Dynamic[B]) {
	for i := range d.words {
		d.words[i] ^= o.words[i]
	}
}

// InPlaceAndNot replaces d with d &^ o blockwise. Both operands must
// have the same length.
func (d *Dynamic[B]) InPlaceAndNot(o *Dynamic[B]) {
	for i := range d.words {
		d.words[i] &^= o.words[i]
	}
}

// Lsh returns a new container holding d shifted left (towards higher
// indices) by n bits, zero-filling from the low end. Shifts of
// n >= Len() produce an all-zero container.
func (d *Dynamic[B]) Lsh(n int) *Dynamic[B] {
	r := &Dynamic[B]{words: make([]B, len(d.words)), size: d.size}
	if n < d.size {
		shiftLeft(r.words, d.words, n)
	}
	return r
}

// Rsh returns a new container holding d shifted right (towards lower
// indices) by n bits, zero-filling from the high end. Shifts of
// n >= Len() produce an all-zero container.
func (d *Dynamic[B]) Rsh(n int) *Dynamic[B] {
	r := &Dynamic[B]{words: make([]B, len(d.words)), size: d.size}
	if n < d.size {
		shiftRight(r.words, d.words, d.size, n)
	}
	return r
}

// InPlaceLsh shifts d left by n bits in place.
func (d *Dynamic[B]) InPlaceLsh(n int) {
	if n >= d.size {
		clear(d.words)
		return
	}
	shiftLeft(d.words, d.words, n)
}

// InPlaceRsh shifts d right by n bits in place.
func (d *Dynamic[B]) InPlaceRsh(n int) {
	if n >= d.size {
		clear(d.words)
		return
	}
	shiftRight(d.words, d.words, d.size, n)
}

// Reverse mirrors the container in place: bit i exchanges with bit
// Len()-1-i.
func (d *Dynamic[B]) Reverse() { reverseBits(d.words, d.size) }

// Rotate rotates the container left by n bits in place: bit i of the
// result is bit (i+n) mod Len() of the input. Negative n rotates
// right.
func (d *Dynamic[B]) Rotate(n int) { rotateBits(d.words, d.size, n) }
