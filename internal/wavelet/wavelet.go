// Package wavelet implements a fixed-height wavelet matrix over byte
// sequences: 8 layers (one per bit position, most significant first), each
// backed by a bitvec.BitVec, giving alphabet-general rank(c, i) queries in
// O(8) bit-vector rank operations regardless of alphabet size.
package wavelet

import "github.com/ext-sakamoro/alice-search/internal/bitvec"

const numLayers = 8

// Matrix is a reordering of an input byte sequence, stable within each of
// its 8 layers, that answers Rank(c, i) — the number of occurrences of
// byte c in positions [0,i) of the original sequence — and Access(i), the
// original byte at position i.
type Matrix struct {
	layers    [numLayers]*bitvec.BitVec
	zeroCount [numLayers]int
	length    int
}

// Build constructs a Matrix over seq using the double-buffered stable
// partition described by the wavelet-matrix build algorithm: for each bit
// level from the MSB down to the LSB, record the bit for every symbol into
// that level's BitVec, then stable-partition the working buffer so that
// zero-bit symbols precede one-bit symbols, preserving relative order
// within each group.
func Build(seq []byte) *Matrix {
	m := len(seq)
	mat := &Matrix{length: m}

	bufA := make([]byte, m)
	copy(bufA, seq)
	bufB := make([]byte, m)

	for level := 7; level >= 0; level-- {
		layerIdx := 7 - level
		bv := bitvec.New(m)
		zeros := 0

		for i, s := range bufA {
			if (s>>uint(level))&1 == 1 {
				bv.Set(i)
			} else {
				zeros++
			}
		}

		bv.Finalize()
		mat.layers[layerIdx] = bv
		mat.zeroCount[layerIdx] = zeros

		zi, oi := 0, zeros

		for _, s := range bufA {
			if (s>>uint(level))&1 == 0 {
				bufB[zi] = s
				zi++
			} else {
				bufB[oi] = s
				oi++
			}
		}

		bufA, bufB = bufB, bufA
	}

	return mat
}

// Len returns the number of symbols represented by the matrix.
func (m *Matrix) Len() int {
	return m.length
}

// SizeBytes returns the approximate number of bytes occupied by the matrix's
// eight underlying bit-vectors.
func (m *Matrix) SizeBytes() int {
	total := 0

	for _, bv := range m.layers {
		total += bv.SizeBytes()
	}

	return total
}

// Rank returns the number of occurrences of byte c in positions [0, i) of
// the original sequence.
func (m *Matrix) Rank(c byte, i int) int {
	lo, hi := 0, i

	for level := 7; level >= 0; level-- {
		layerIdx := 7 - level
		bv := m.layers[layerIdx]
		bit := (c >> uint(level)) & 1

		if bit == 0 {
			lo = bv.Rank0(lo)
			hi = bv.Rank0(hi)
		} else {
			z := m.zeroCount[layerIdx]
			lo = z + bv.Rank1(lo)
			hi = z + bv.Rank1(hi)
		}
	}

	return hi - lo
}

// Access reconstructs and returns the original byte at position i by
// descending through the layers, mirroring Rank's bit-by-bit walk.
func (m *Matrix) Access(i int) byte {
	pos := i
	var c byte

	for level := 7; level >= 0; level-- {
		layerIdx := 7 - level
		bv := m.layers[layerIdx]

		if bv.Get(pos) {
			c |= 1 << uint(level)
			pos = m.zeroCount[layerIdx] + bv.Rank1(pos)
		} else {
			pos = bv.Rank0(pos)
		}
	}

	return c
}
