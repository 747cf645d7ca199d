package testutil

// Model is a naive reference bit container backed by one bool per
// bit. It mirrors the semantics of the packed containers for every
// operation it implements and exists solely as ground truth in
// differential tests.
type Model struct {
	bits []bool
}

// NewModel returns a zeroed model of the given length.
func NewModel(size int) *Model {
	return &Model{bits: make([]bool, size)}
}

// ModelFromString parses one bit per character, bit k set iff
// s[k] == '1'.
func ModelFromString(s string) *Model {
	m := NewModel(len(s))
	for i := 0; i < len(s); i++ {
		m.bits[i] = s[i] == '1'
	}
	return m
}

// Len returns the length in bits.
func (m *Model) Len() int { return len(m.bits) }

// Test reports whether bit i is set.
func (m *Model) Test(i int) bool { return m.bits[i] }

// Set sets bit i.
func (m *Model) Set(i int) { m.bits[i] = true }

// SetTo sets bit i to v.
func (m *Model) SetTo(i int, v bool) { m.bits[i] = v }

// Clear clears bit i.
func (m *Model) Clear(i int) { m.bits[i] = false }

// Flip complements bit i.
func (m *Model) Flip(i int) { m.bits[i] = !m.bits[i] }

// Swap exchanges bits i and j.
func (m *Model) Swap(i, j int) { m.bits[i], m.bits[j] = m.bits[j], m.bits[i] }

// Fill sets every bit to v.
func (m *Model) Fill(v bool) {
	for i := range m.bits {
		m.bits[i] = v
	}
}

// FillRange sets the bits in [begin, end) to v.
func (m *Model) FillRange(begin, end int, v bool) {
	for i := begin; i < end; i++ {
		m.bits[i] = v
	}
}

// SetRange sets the bits in [begin, end).
func (m *Model) SetRange(begin, end int) { m.FillRange(begin, end, true) }

// ClearRange clears the bits in [begin, end).
func (m *Model) ClearRange(begin, end int) { m.FillRange(begin, end, false) }

// FlipRange complements the bits in [begin, end).
func (m *Model) FlipRange(begin, end int) {
	for i := begin; i < end; i++ {
		m.bits[i] = !m.bits[i]
	}
}

// FillRangeStep sets bits begin, begin+step, ... below end to v.
func (m *Model) FillRangeStep(begin, end int, v bool, step int) {
	for i := begin; i < end; i += step {
		m.bits[i] = v
	}
}

// FlipRangeStep complements bits begin, begin+step, ... below end.
func (m *Model) FlipRangeStep(begin, end, step int) {
	for i := begin; i < end; i += step {
		m.bits[i] = !m.bits[i]
	}
}

// Count returns the number of set bits.
func (m *Model) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// All reports whether every bit is set; true when empty.
func (m *Model) All() bool {
	for _, b := range m.bits {
		if !b {
			return false
		}
	}
	return true
}

// Any reports whether at least one bit is set.
func (m *Model) Any() bool {
	for _, b := range m.bits {
		if b {
			return true
		}
	}
	return false
}

// None reports whether no bit is set.
func (m *Model) None() bool { return !m.Any() }

// Equal reports whether o has the same length and bits.
func (m *Model) Equal(o *Model) bool {
	if len(m.bits) != len(o.bits) {
		return false
	}
	for i, b := range m.bits {
		if b != o.bits[i] {
			return false
		}
	}
	return true
}

// And returns the bitwise conjunction of equal-length models.
func (m *Model) And(o *Model) *Model {
	r := NewModel(len(m.bits))
	for i := range m.bits {
		r.bits[i] = m.bits[i] && o.bits[i]
	}
	return r
}

// Or returns the bitwise disjunction of equal-length models.
func (m *Model) Or(o *Model) *Model {
	r := NewModel(len(m.bits))
	for i := range m.bits {
		r.bits[i] = m.bits[i] || o.bits[i]
	}
	return r
}

// Xor returns the bitwise exclusive disjunction of equal-length
// models.
func (m *Model) Xor(o *Model) *Model {
	r := NewModel(len(m.bits))
	for i := range m.bits {
		r.bits[i] = m.bits[i] != o.bits[i]
	}
	return r
}

// AndNot returns the set difference of equal-length models.
func (m *Model) AndNot(o *Model) *Model {
	r := NewModel(len(m.bits))
	for i := range m.bits {
		r.bits[i] = m.bits[i] && !o.bits[i]
	}
	return r
}

// Not returns the complement.
func (m *Model) Not() *Model {
	r := NewModel(len(m.bits))
	for i := range m.bits {
		r.bits[i] = !m.bits[i]
	}
	return r
}

// Lsh returns the model shifted left by n, zero-filling low indices.
func (m *Model) Lsh(n int) *Model {
	r := NewModel(len(m.bits))
	for i := n; i < len(m.bits); i++ {
		r.bits[i] = m.bits[i-n]
	}
	return r
}

// Rsh returns the model shifted right by n, zero-filling high
// indices.
func (m *Model) Rsh(n int) *Model {
	r := NewModel(len(m.bits))
	for i := 0; i+n < len(m.bits); i++ {
		r.bits[i] = m.bits[i+n]
	}
	return r
}

// Reverse mirrors the model in place.
func (m *Model) Reverse() {
	for i, j := 0, len(m.bits)-1; i < j; i, j = i+1, j-1 {
		m.bits[i], m.bits[j] = m.bits[j], m.bits[i]
	}
}

// Rotate rotates left by n in place: bit i of the result is bit
// (i+n) mod Len() of the input.
func (m *Model) Rotate(n int) {
	size := len(m.bits)
	if size == 0 {
		return
	}
	n %= size
	if n < 0 {
		n += size
	}
	orig := append([]bool(nil), m.bits...)
	for i := range m.bits {
		m.bits[i] = orig[(i+n)%size]
	}
}

// Resize changes the length, zero-filling grown space.
func (m *Model) Resize(size int) {
	if size <= len(m.bits) {
		m.bits = m.bits[:size]
		return
	}
	grown := make([]bool, size)
	copy(grown, m.bits)
	m.bits = grown
}

// PushBack appends one bit.
func (m *Model) PushBack(v bool) { m.bits = append(m.bits, v) }

// PopBack removes the last bit.
func (m *Model) PopBack() { m.bits = m.bits[:len(m.bits)-1] }

// Insert inserts one bit at index i, shifting later bits up.
func (m *Model) Insert(i int, v bool) {
	m.bits = append(m.bits, false)
	copy(m.bits[i+1:], m.bits[i:])
	m.bits[i] = v
}

// String renders the bits as '1'/'0' characters, least significant
// first.
func (m *Model) String() string {
	buf := make([]byte, len(m.bits))
	for i, b := range m.bits {
		if b {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}
