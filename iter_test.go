package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitsYieldsEveryPosition(t *testing.T) {
	t.Run("uint8", testBitsYieldsEveryPosition[uint8])
	t.Run("uint64", testBitsYieldsEveryPosition[uint64])
}

func testBitsYieldsEveryPosition[B Block](t *testing.T) {
	const s = "110010100110001"
	f := FixedFromString[B](s)

	var idx int
	for i, v := range f.Bits() {
		require.Equal(t, idx, i)
		require.Equal(t, s[i] == '1', v, "bit %d", i)
		idx++
	}
	assert.Equal(t, len(s), idx)
}

func TestBitsEarlyBreak(t *testing.T) {
	f := NewFixedFilled[uint32](100, true)

	var seen int
	for i := range f.Bits() {
		if i == 9 {
			break
		}
		seen++
	}
	assert.Equal(t, 9, seen)
}

func TestOnes(t *testing.T) {
	t.Run("uint8", testOnes[uint8])
	t.Run("uint64", testOnes[uint64])
}

func testOnes[B Block](t *testing.T) {
	w := blockWidth[B]()
	d := NewDynamic[B](3 * w)
	want := []int{0, 1, w - 1, w, 2*w + 3, 3*w - 1}
	for _, i := range want {
		d.Set(i)
	}

	var got []int
	for i := range d.Ones() {
		got = append(got, i)
	}
	assert.Equal(t, want, got)
}

func TestOnesMasksTrailingStorage(t *testing.T) {
	f := NewFixed[uint8](5)
	f.SetBlock(0, 0xE4)

	var got []int
	for i := range f.Ones() {
		got = append(got, i)
	}
	assert.Equal(t, []int{2}, got)
}

func TestOnesEmpty(t *testing.T) {
	d := NewDynamic[uint64](100)
	for range d.Ones() {
		t.Fatal("no index expected")
	}
}

func TestRef(t *testing.T) {
	t.Run("uint8", testRef[uint8])
	t.Run("uint64", testRef[uint64])
}

func testRef[B Block](t *testing.T) {
	w := blockWidth[B]()
	f := NewFixed[B](w + 5)

	r := f.At(w + 1)
	assert.Equal(t, w+1, r.Index())
	assert.False(t, r.Get())

	r.Set(true)
	assert.True(t, f.Test(w+1))
	assert.True(t, r.Get())

	r.Flip()
	assert.False(t, f.Test(w+1))

	r.Set(true)
	r.Set(false)
	assert.False(t, f.Test(w+1))
}

func TestRefSharesStorage(t *testing.T) {
	d := DynamicFromString[uint16]("0000")
	r := d.At(2)

	d.Set(2)
	assert.True(t, r.Get())

	r.Set(false)
	assert.False(t, d.Test(2))
}
