package bitvec

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/prysmaticlabs/go-bitfield"

	"github.com/hupe1980/bitvec/internal/conv"
)

// Bridges to the bit containers commonly used alongside this package.
// All bridges preserve bit indices; Fixed converts through ToDynamic
// first.

// ToRoaring copies the set valid bits into a roaring bitmap, bit
// index becoming the 32-bit member value. Returns ErrTooManyBits when
// an index does not fit uint32.
func (d *Dynamic[B]) ToRoaring() (*roaring.Bitmap, error) {
	if d.size > 0 {
		if _, err := conv.IntToUint32(d.size - 1); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTooManyBits, err)
		}
	}
	rb := roaring.New()
	for i := range d.Ones() {
		rb.Add(uint32(i))
	}
	return rb, nil
}

// DynamicFromRoaring returns a container sized to the largest member
// of rb plus one, with exactly the members of rb set. An empty bitmap
// yields an empty container.
func DynamicFromRoaring[B Block](rb *roaring.Bitmap) (*Dynamic[B], error) {
	if rb.IsEmpty() {
		return NewDynamic[B](0), nil
	}
	size, err := conv.Uint64ToInt(uint64(rb.Maximum()) + 1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTooManyBits, err)
	}
	d := NewDynamic[B](size)
	it := rb.Iterator()
	for it.HasNext() {
		d.Set(int(it.Next()))
	}
	return d, nil
}

// ToBitSet copies the valid bits into a bits-and-blooms bitset of the
// same length.
func (d *Dynamic[B]) ToBitSet() *bitset.BitSet {
	bs := bitset.New(uint(d.size))
	for i := range d.Ones() {
		bs.Set(uint(i))
	}
	return bs
}

// DynamicFromBitSet returns a container with the length and set bits
// of bs.
func DynamicFromBitSet[B Block](bs *bitset.BitSet) *Dynamic[B] {
	d := NewDynamic[B](int(bs.Len()))
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		d.Set(int(i))
	}
	return d
}

// ToBitlist copies the valid bits into an SSZ-style bitlist of the
// same length.
func (d *Dynamic[B]) ToBitlist() bitfield.Bitlist {
	bl := bitfield.NewBitlist(uint64(d.size))
	for i := range d.Ones() {
		bl.SetBitAt(uint64(i), true)
	}
	return bl
}

// DynamicFromBitlist returns a container with the length and set bits
// of bl. Returns ErrTooManyBits when the bitlist length does not fit
// the platform int.
func DynamicFromBitlist[B Block](bl bitfield.Bitlist) (*Dynamic[B], error) {
	size, err := conv.Uint64ToInt(bl.Len())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTooManyBits, err)
	}
	d := NewDynamic[B](size)
	for i := 0; i < size; i++ {
		if bl.BitAt(uint64(i)) {
			d.Set(i)
		}
	}
	return d, nil
}
