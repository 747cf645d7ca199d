package bitvec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/bitvec/testutil"
	"github.com/hupe1980/bitvec/util"
)

func TestStringRendersLSBFirst(t *testing.T) {
	f := NewFixed[uint8](8)
	f.SetBlock(0, 0x1C)
	assert.Equal(t, "00111000", f.String())

	d := NewDynamic[uint16](4)
	d.Set(0)
	d.Set(3)
	assert.Equal(t, "1001", d.String())

	assert.Equal(t, "", NewFixed[uint64](0).String())
}

func TestText(t *testing.T) {
	f := FixedFromString[uint8]("10110")
	assert.Equal(t, "X.XX.", f.Text('X', '.'))
	assert.Equal(t, "10110", f.Text('1', '0'))

	d := DynamicFromString[uint32]("0101")
	assert.Equal(t, "#*#*", d.Text('*', '#'))
}

func TestSetString(t *testing.T) {
	t.Run("uint8", testSetString[uint8])
	t.Run("uint64", testSetString[uint64])
}

func testSetString[B Block](t *testing.T) {
	f := NewFixedFilled[B](10, true)

	t.Run("shorter string zeroes the rest", func(t *testing.T) {
		f.SetString("101")
		assert.Equal(t, "1010000000", f.String())
		assert.Equal(t, 2, f.Count())
	})

	t.Run("longer string truncates silently", func(t *testing.T) {
		f.SetString("01" + strings.Repeat("1", 50))
		assert.Equal(t, "0111111111", f.String())
	})

	t.Run("exact length round trips", func(t *testing.T) {
		const s = "1100100101"
		f.SetString(s)
		assert.Equal(t, s, f.String())
	})
}

func TestSetText(t *testing.T) {
	d := NewDynamic[uint8](6)
	d.SetText("XX..X.", 'X')
	assert.Equal(t, "110010", d.String())

	// Every non-set character reads as zero, '1' included.
	d.SetText("1X1X1X", 'X')
	assert.Equal(t, "010101", d.String())
}

func TestFromText(t *testing.T) {
	f := FixedFromText[uint16]("X.X.", 'X')
	assert.Equal(t, 4, f.Len())
	assert.Equal(t, "1010", f.String())

	d := DynamicFromText[uint8]("..XX..XX", 'X')
	assert.Equal(t, 8, d.Len())
	assert.Equal(t, "00110011", d.String())
}

func TestFromStringSizesToInput(t *testing.T) {
	t.Run("uint8", testFromStringSizesToInput[uint8])
	t.Run("uint16", testFromStringSizesToInput[uint16])
	t.Run("uint32", testFromStringSizesToInput[uint32])
	t.Run("uint64", testFromStringSizesToInput[uint64])
	t.Run("uint", testFromStringSizesToInput[uint])
}

func testFromStringSizesToInput[B Block](t *testing.T) {
	w := blockWidth[B]()
	rng := util.NewRNG(3)

	for _, n := range []int{0, 1, w - 1, w, w + 1, 3*w + 2} {
		s := rng.GenerateBitString(n, 0.5)

		f := FixedFromString[B](s)
		assert.Equal(t, n, f.Len())
		assert.Equal(t, blocksFor[B](n), f.Blocks())
		assert.Equal(t, s, f.String())

		d := DynamicFromString[B](s)
		assert.Equal(t, n, d.Len())
		assert.Equal(t, s, d.String())
	}
}

func TestStringMatchesModel(t *testing.T) {
	rng := util.NewRNG(8)
	for i := 0; i < 20; i++ {
		s := rng.GenerateBitString(1+rng.Intn(300), 0.5)
		f := FixedFromString[uint32](s)
		m := testutil.ModelFromString(s)
		assert.Equal(t, m.String(), f.String())
		assert.Equal(t, m.Count(), f.Count())
	}
}
