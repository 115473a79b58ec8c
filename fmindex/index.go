// Package fmindex composes a BWT built via induced suffix-array sorting, an
// interleaved rank/select bit-vector and a wavelet matrix into an FM-Index:
// a compact full-text index answering count/contains/locate queries in time
// proportional to the pattern length, independent of corpus size.
package fmindex

import (
	"errors"

	"github.com/ext-sakamoro/alice-search/internal/bitvec"
	"github.com/ext-sakamoro/alice-search/internal/sais"
	"github.com/ext-sakamoro/alice-search/internal/wavelet"
)

// ErrInvalidStep is returned by Build when step is less than 1.
var ErrInvalidStep = errors.New("fmindex: step must be >= 1")

// placeholder is the byte value substituted for the sentinel $ at the
// primary row of L before handing L to the (fixed 256-symbol) wavelet
// matrix. Its collisions with genuine byte-0 occurrences are corrected for
// in rankL.
const placeholder = 0

// Index owns a wavelet matrix over the BWT string L, a C-table of
// cumulative byte counts, a sampled suffix array and the text length. It is
// built once and is immutable and safe for concurrent read-only use after
// Build returns.
type Index struct {
	textLen int
	wm      *wavelet.Matrix
	cTable  [256]int32
	primary int
	step    int
	sampled *bitvec.BitVec
	samples []int32
}

// Build constructs an Index over text, sampling every step-th suffix-array
// entry for position recovery. step must be >= 1.
func Build(text []byte, step int) (*Index, error) {
	if step < 1 {
		return nil, ErrInvalidStep
	}

	n := len(text)
	sa := sais.Build(text)

	var hist [256]int32
	for _, b := range text {
		hist[b]++
	}

	var cTable [256]int32
	cum := int32(1) // the $ row always sorts before every real byte

	for c := 0; c < 256; c++ {
		cTable[c] = cum
		cum += hist[c]
	}

	l := make([]byte, n+1)
	primary := -1

	for i, s := range sa {
		if s == 0 {
			l[i] = placeholder
			primary = i
		} else {
			l[i] = text[s-1]
		}
	}

	wm := wavelet.Build(l)

	sampledIdx := make([]int, 0, n/step+2)
	samples := make([]int32, 0, n/step+2)

	for i, s := range sa {
		if int(s)%step == 0 {
			sampledIdx = append(sampledIdx, i)
			samples = append(samples, s)
		}
	}

	sampled := bitvec.NewFromIndices(n+1, sampledIdx)

	return &Index{
		textLen: n,
		wm:      wm,
		cTable:  cTable,
		primary: primary,
		step:    step,
		sampled: sampled,
		samples: samples,
	}, nil
}

// rankL returns the number of occurrences of byte c in L[0,i), correcting
// for the sentinel placeholder substituted at the primary row.
func (idx *Index) rankL(c byte, i int) int {
	r := idx.wm.Rank(c, i)

	if c == placeholder && idx.primary < i {
		r--
	}

	return r
}

// lf is the last-to-first column mapping. The row where L[i] = $ has no
// defined C-table entry and is handled by the primary shortcut instead.
func (idx *Index) lf(i int) int {
	if i == idx.primary {
		return 0
	}

	c := idx.wm.Access(i)
	return int(idx.cTable[c]) + idx.rankL(c, i)
}

// SearchRange runs backward search over pattern and returns the half-open
// SA interval [lo, hi) of suffixes prefixed by pattern. The empty pattern
// matches the convention [1, n+1), excluding the $ row at SA index 0.
func (idx *Index) SearchRange(pattern []byte) (int, int) {
	if len(pattern) == 0 {
		return 1, idx.textLen + 1
	}

	lo, hi := 0, idx.textLen+1

	for i := len(pattern) - 1; i >= 0; i-- {
		c := pattern[i]
		newLo := int(idx.cTable[c]) + idx.rankL(c, lo)
		newHi := int(idx.cTable[c]) + idx.rankL(c, hi)

		if newLo >= newHi {
			return newLo, newLo
		}

		lo, hi = newLo, newHi
	}

	return lo, hi
}

// Count returns the number of occurrences of pattern in the indexed text.
func (idx *Index) Count(pattern []byte) int {
	lo, hi := idx.SearchRange(pattern)
	return hi - lo
}

// Contains reports whether pattern occurs at least once in the indexed text.
func (idx *Index) Contains(pattern []byte) bool {
	lo, hi := idx.SearchRange(pattern)
	return hi > lo
}

// locatePosition recovers the text position SA[i] by walking LF until a
// sampled SA entry is reached, taking at most step steps.
func (idx *Index) locatePosition(i int) int {
	k := 0
	j := i

	for !idx.sampled.Get(j) {
		j = idx.lf(j)
		k++
	}

	pos := int(idx.samples[idx.sampled.Rank1(j)])
	return (pos + k) % (idx.textLen + 1)
}

// Locate returns a zero-allocation cursor over the occurrences of pattern.
// The empty pattern yields an empty cursor.
func (idx *Index) Locate(pattern []byte) *LocateIter {
	if len(pattern) == 0 {
		return &LocateIter{idx: idx}
	}

	lo, hi := idx.SearchRange(pattern)
	return &LocateIter{idx: idx, cur: lo, hi: hi}
}

// LocateAll returns every occurrence of pattern as an owned slice of text
// positions, in SA order (not sorted by position). The empty pattern yields
// no positions.
func (idx *Index) LocateAll(pattern []byte) []int {
	lo, hi := idx.SearchRange(pattern)

	if len(pattern) == 0 || hi <= lo {
		return nil
	}

	out := make([]int, 0, hi-lo)

	for i := lo; i < hi; i++ {
		out = append(out, idx.locatePosition(i))
	}

	return out
}

// SizeBytes returns the approximate number of bytes owned by the index:
// the wavelet matrix over L, the sampled bitmap, the dense samples slice and
// the C-table.
func (idx *Index) SizeBytes() int {
	return idx.wm.SizeBytes() + idx.sampled.SizeBytes() + len(idx.samples)*4 + len(idx.cTable)*4
}

// TextLen returns the length of the indexed text.
func (idx *Index) TextLen() int {
	return idx.textLen
}

// CompressionRatio returns SizeBytes() / TextLen() as a fraction. Returns 0
// for an empty text.
func (idx *Index) CompressionRatio() float64 {
	if idx.textLen == 0 {
		return 0
	}

	return float64(idx.SizeBytes()) / float64(idx.textLen)
}
