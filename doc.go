// Package bitvec provides generic bit containers for Go.
//
// Bitvec implements two containers parameterized over their storage
// unit: Fixed, whose length is set at construction, and Dynamic,
// which resizes at bit and block granularity. Any unsigned integer
// type can serve as the block, trading per-operation granularity
// against storage compactness.
//
// # Quick Start
//
// Fixed-length container:
//
//	f := bitvec.NewFixed[uint64](1024)
//	f.SetRange(10, 20)
//	n := f.Count()  // 10
//
// Resizable container:
//
//	d := bitvec.DynamicFromString[uint8]("00111000")
//	b := d.GetBlock(0)  // 0x1C
//	d.PushBack(true)
//	d.Resize(4096)
//
// # Bit Addressing
//
// Bits are addressed least-significant-first: bit i lives in storage
// block i/W at offset i%W, where W is the block width in bits. The
// textual form follows the same order, character k of a bit string
// corresponding to bit k, so the 8-bit container holding block value
// 0x1C reads "00111000".
//
// # Storage Contract
//
// Containers keep exactly ceil(Len()/W) blocks. Bulk fills and
// block-granularity writes may touch storage bits at positions past
// Len() in the trailing block; every masked read (aggregates,
// comparison, iteration, conversion, text) ignores them. Bit and
// block indices are not validated; out-of-range access fails the way
// Go slice indexing fails.
//
// # Changing Block Types
//
// Conversion preserves the flat bit sequence across block widths,
// packing little-endian:
//
//	d8 := bitvec.NewDynamic[uint8](16)
//	d8.SetBlock(0, 0x01)
//	d8.SetBlock(1, 0x02)
//	d16 := bitvec.ConvertDynamic[uint16](d8)  // one block, 0x0201
//
// # Interop
//
// Dynamic bridges to the bit containers commonly used alongside this
// package:
//
//	rb, _ := d.ToRoaring()  // RoaringBitmap/roaring
//	bs := d.ToBitSet()      // bits-and-blooms/bitset
//	bl := d.ToBitlist()     // prysmaticlabs/go-bitfield
//
// # Key Features
//
//   - Generic over uint8/uint16/uint32/uint64/uint storage blocks
//   - Three-phase range fills (masked head and tail, whole-block runs)
//   - Strided range variants at bit and block granularity
//   - Shifts, rotation, reversal, and full bitwise algebra
//   - Cross-block-width conversion and uint64 views
//   - Round-trippable textual form with caller-chosen characters
//   - iter.Seq iteration and single-bit handles
package bitvec
