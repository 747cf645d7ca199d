// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a naive reference bit container that serves as ground
// truth for differential tests against the block-packed containers.
//
// # Reference Model
//
//	m := testutil.NewModel(64)
//	m.SetRange(2, 5)
//	s := m.String() // ground-truth text form
//
// Every Model operation runs bit-by-bit over a plain bool slice,
// trading all performance for obviousness. Results match the packed
// containers whenever their trailing storage bits are zero, which
// holds for containers built through bit-level operations on zeroed
// storage.
package testutil
