package bitvec

import "iter"

// Ref is a handle to a single bit: a storage reference paired with a
// bit index. It stands in where a conventional container would hand
// out an element reference. A Ref obtained from a Dynamic is
// invalidated by any size-changing operation on it.
type Ref[B Block] struct {
	words []B
	i     int
}

// Get returns the referenced bit.
func (r Ref[B]) Get() bool { return testBit(r.words, r.i) }

// Set sets the referenced bit to v.
func (r Ref[B]) Set(v bool) { setBitTo(r.words, r.i, v) }

// Flip complements the referenced bit.
func (r Ref[B]) Flip() { flipBit(r.words, r.i) }

// Index returns the bit index the handle refers to.
func (r Ref[B]) Index() int { return r.i }

// At returns a handle to bit i.
func (f *Fixed[B]) At(i int) Ref[B] { return Ref[B]{words: f.words, i: i} }

// At returns a handle to bit i.
func (d *Dynamic[B]) At(i int) Ref[B] { return Ref[B]{words: d.words, i: i} }

// Bits iterates over every (index, value) pair in ascending index
// order.
func (f *Fixed[B]) Bits() iter.Seq2[int, bool] { return bitsSeq(f.words, f.size) }

// Ones iterates over the indices of the set valid bits in ascending
// order.
func (f *Fixed[B]) Ones() iter.Seq[int] { return onesSeq(f.words, f.size) }

// Bits iterates over every (index, value) pair in ascending index
// order.
func (d *Dynamic[B]) Bits() iter.Seq2[int, bool] { return bitsSeq(d.words, d.size) }

// Ones iterates over the indices of the set valid bits in ascending
// order.
func (d *Dynamic[B]) Ones() iter.Seq[int] { return onesSeq(d.words, d.size) }

func bitsSeq[B Block](words []B, size int) iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < size; i++ {
			if !yield(i, testBit(words, i)) {
				return
			}
		}
	}
}

func onesSeq[B Block](words []B, size int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := nextSet(words, size, 0); ok; i, ok = nextSet(words, size, i+1) {
			if !yield(i) {
				return
			}
		}
	}
}
