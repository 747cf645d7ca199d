package bitvec

import "fmt"

// Textual form: one character per bit, character k of the string
// corresponding to bit k of the container, so the least significant
// bit prints first. An 8-bit container holding block value 0x1C
// renders as "00111000".

var (
	_ fmt.Stringer = (*Fixed[uint64])(nil)
	_ fmt.Stringer = (*Dynamic[uint64])(nil)
)

// String renders the valid bits as '1' and '0' characters, least
// significant bit first.
func (f *Fixed[B]) String() string {
	return string(appendBits(nil, f.words, f.size, '1', '0'))
}

// Text renders the valid bits with caller-chosen characters for set
// and unset bits, least significant bit first.
func (f *Fixed[B]) Text(set, unset byte) string {
	return string(appendBits(nil, f.words, f.size, set, unset))
}

// SetString replaces the container content with bits parsed from s:
// bit k is set iff s[k] == '1'. Parsing stops silently at the shorter
// of the string and the container; remaining bits are zero.
func (f *Fixed[B]) SetString(s string) { f.SetText(s, '1') }

// SetText is SetString with a caller-chosen set character; any other
// character reads as zero.
func (f *Fixed[B]) SetText(s string, set byte) {
	clear(f.words)
	parseBits(f.words, f.size, s, set)
}

// String renders the valid bits as '1' and '0' characters, least
// significant bit first.
func (d *Dynamic[B]) String() string {
	return string(appendBits(nil, d.words, d.size, '1', '0'))
}

// Text renders the valid bits with caller-chosen characters for set
// and unset bits, least significant bit first.
func (d *Dynamic[B]) Text(set, unset byte) string {
	return string(appendBits(nil, d.words, d.size, set, unset))
}

// SetString replaces the container content with bits parsed from s:
// bit k is set iff s[k] == '1'. Parsing stops silently at the shorter
// of the string and the container; remaining bits are zero.
func (d *Dynamic[B]) SetString(s string) { d.SetText(s, '1') }

// SetText is SetString with a caller-chosen set character; any other
// character reads as zero.
func (d *Dynamic[B]) SetText(s string, set byte) {
	clear(d.words)
	parseBits(d.words, d.size, s, set)
}

// FixedFromString returns a container of length len(s) with bit k set
// iff s[k] == '1'.
func FixedFromString[B Block](s string) *Fixed[B] {
	return FixedFromText[B](s, '1')
}

// FixedFromText is FixedFromString with a caller-chosen set
// character; any other character reads as zero.
func FixedFromText[B Block](s string, set byte) *Fixed[B] {
	f := NewFixed[B](len(s))
	parseBits(f.words, f.size, s, set)
	return f
}

// DynamicFromString returns a container of length len(s) with bit k
// set iff s[k] == '1'.
func DynamicFromString[B Block](s string) *Dynamic[B] {
	return DynamicFromText[B](s, '1')
}

// DynamicFromText is DynamicFromString with a caller-chosen set
// character; any other character reads as zero.
func DynamicFromText[B Block](s string, set byte) *Dynamic[B] {
	d := NewDynamic[B](len(s))
	parseBits(d.words, d.size, s, set)
	return d
}

func appendBits[B Block](dst []byte, words []B, size int, set, unset byte) []byte {
	for i := 0; i < size; i++ {
		if testBit(words, i) {
			dst = append(dst, set)
		} else {
			dst = append(dst, unset)
		}
	}
	return dst
}

func parseBits[B Block](words []B, size int, s string, set byte) {
	n := min(size, len(s))
	for i := 0; i < n; i++ {
		if s[i] == set {
			setBit(words, i)
		}
	}
}
