package bitvec

// repackWords copies the flat bit sequence of src into dst across
// possibly differing block widths. dst must be zeroed. Packing is
// little-endian: consecutive narrow blocks fill one wide block from
// its least significant end, so uint8 blocks {0x01, 0x02} become the
// uint16 block 0x0201. Copying stops silently when either side runs
// out of blocks; untouched destination blocks keep their prior value.
func repackWords[Dst, Src Block](dst []Dst, src []Src) {
	wd, ws := blockWidth[Dst](), blockWidth[Src]()
	if wd >= ws {
		diff := wd / ws
		for i := range dst {
			for j := 0; j < diff; j++ {
				si := i*diff + j
				if si >= len(src) {
					return
				}
				dst[i] |= Dst(src[si]) << (j * ws)
			}
		}
		return
	}
	diff := ws / wd
	for i := range src {
		for j := 0; j < diff; j++ {
			di := i*diff + j
			if di >= len(dst) {
				return
			}
			dst[di] = Dst(src[i] >> (j * wd))
		}
	}
}

// ConvertFixed re-packs src into a container backed by a different
// block type. The length in bits is preserved; bit i of the result
// equals bit i of src, including the unspecified trailing storage
// bits, which land on trailing storage positions again.
func ConvertFixed[Dst, Src Block](src *Fixed[Src]) *Fixed[Dst] {
	r := NewFixed[Dst](src.size)
	repackWords(r.words, src.words)
	return r
}

// ConvertDynamic re-packs src into a container backed by a different
// block type, preserving the length in bits.
func ConvertDynamic[Dst, Src Block](src *Dynamic[Src]) *Dynamic[Dst] {
	r := NewDynamic[Dst](src.size)
	repackWords(r.words, src.words)
	return r
}

// FixedFromUint64 returns a container of the given length holding the
// low min(size, 64) bits of v, least significant bit first.
func FixedFromUint64[B Block](size int, v uint64) *Fixed[B] {
	f := NewFixed[B](size)
	f.SetUint64(v)
	return f
}

// DynamicFromUint64 returns a container of the given length holding
// the low min(size, 64) bits of v, least significant bit first.
func DynamicFromUint64[B Block](size int, v uint64) *Dynamic[B] {
	d := NewDynamic[B](size)
	d.SetUint64(v)
	return d
}

// Uint64 returns the low min(Len(), 64) valid bits packed into an
// integer, bit i of the container at bit i of the result.
func (f *Fixed[B]) Uint64() uint64 { return wordsUint64(f.words, f.size) }

// SetUint64 replaces the container content with the low
// min(Len(), 64) bits of v; all other bits become zero.
func (f *Fixed[B]) SetUint64(v uint64) { setWordsUint64(f.words, f.size, v) }

// Uint64 returns the low min(Len(), 64) valid bits packed into an
// integer, bit i of the container at bit i of the result.
func (d *Dynamic[B]) Uint64() uint64 { return wordsUint64(d.words, d.size) }

// SetUint64 replaces the container content with the low
// min(Len(), 64) bits of v; all other bits become zero.
func (d *Dynamic[B]) SetUint64(v uint64) { setWordsUint64(d.words, d.size, v) }

func wordsUint64[B Block](words []B, size int) uint64 {
	var out [1]uint64
	repackWords(out[:], words)
	if size < 64 {
		out[0] &= uint64(1)<<size - 1
	}
	return out[0]
}

func setWordsUint64[B Block](words []B, size int, v uint64) {
	clear(words)
	if size < 64 {
		v &= uint64(1)<<size - 1
	}
	src := [1]uint64{v}
	repackWords(words, src[:])
}
