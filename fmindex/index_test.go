package fmindex

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func bruteForceLocate(text, pattern []byte) []int {
	if len(pattern) == 0 {
		return nil
	}

	var out []int

	for i := 0; i+len(pattern) <= len(text); i++ {
		if bytes.Equal(text[i:i+len(pattern)], pattern) {
			out = append(out, i)
		}
	}

	return out
}

func asSortedSet(positions []int) []int {
	out := append([]int(nil), positions...)
	sort.Ints(out)
	return out
}

func TestBuildRejectsInvalidStep(t *testing.T) {
	_, err := Build([]byte("abc"), 0)
	require.ErrorIs(t, err, ErrInvalidStep)

	_, err = Build([]byte("abc"), -1)
	require.ErrorIs(t, err, ErrInvalidStep)
}

func TestConcreteScenarios(t *testing.T) {
	cases := []struct {
		text    string
		pattern string
		count   int
		locate  []int
	}{
		{"abracadabra", "abra", 2, []int{0, 7}},
		{"abracadabra", "a", 5, []int{0, 3, 5, 7, 10}},
		{"abracadabra", "cadabra", 1, []int{4}},
		{"abracadabra", "xyz", 0, []int{}},
		{"mississippi", "iss", 2, []int{1, 4}},
		{"aaaaa", "aa", 4, []int{0, 1, 2, 3}},
		{"the quick brown fox jumps over the lazy dog", "the", 2, []int{0, 31}},
	}

	for _, tc := range cases {
		for _, step := range []int{1, 2, 4, 7} {
			idx, err := Build([]byte(tc.text), step)
			require.NoError(t, err)

			require.Equal(t, tc.count, idx.Count([]byte(tc.pattern)), "text=%q pattern=%q step=%d", tc.text, tc.pattern, step)
			require.Equal(t, tc.count > 0, idx.Contains([]byte(tc.pattern)))

			got := asSortedSet(idx.LocateAll([]byte(tc.pattern)))
			want := asSortedSet(tc.locate)
			require.Equal(t, want, got, "text=%q pattern=%q step=%d", tc.text, tc.pattern, step)
		}
	}
}

func TestCountContainsLocateAgreeWithBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	alphabets := []int{2, 4, 26}

	for trial := 0; trial < 40; trial++ {
		alphaSize := alphabets[trial%len(alphabets)]
		n := 1 + rnd.Intn(120)
		text := make([]byte, n)

		for i := range text {
			text[i] = byte('a' + rnd.Intn(alphaSize))
		}

		idx, err := Build(text, 1+rnd.Intn(5))
		require.NoError(t, err)

		for patLen := 1; patLen <= 4; patLen++ {
			start := rnd.Intn(n)
			end := start + patLen

			if end > n {
				end = n
			}

			pattern := text[start:end]
			wantCount := len(bruteForceLocate(text, pattern))

			require.Equal(t, wantCount, idx.Count(pattern))
			require.Equal(t, wantCount > 0, idx.Contains(pattern))

			gotLocate := asSortedSet(idx.LocateAll(pattern))
			wantLocate := asSortedSet(bruteForceLocate(text, pattern))
			require.Equal(t, wantLocate, gotLocate)
			require.Equal(t, wantCount, len(gotLocate))
		}
	}
}

func TestLocateIndependentOfStep(t *testing.T) {
	text := []byte("the quick brown fox jumps over the lazy dog the quick fox")
	pattern := []byte("the")

	var reference []int

	for _, step := range []int{1, 2, 3, 5, 8, 13} {
		idx, err := Build(text, step)
		require.NoError(t, err)

		got := asSortedSet(idx.LocateAll(pattern))

		if reference == nil {
			reference = got
		} else {
			require.Equal(t, reference, got, "step=%d", step)
		}
	}
}

func TestEmptyPatternConvention(t *testing.T) {
	text := []byte("abracadabra")
	idx, err := Build(text, 3)
	require.NoError(t, err)

	require.Equal(t, len(text), idx.Count(nil))
	require.True(t, idx.Contains(nil) == (len(text) > 0))
	require.Empty(t, idx.LocateAll(nil))

	lo, hi := idx.SearchRange(nil)
	require.Equal(t, 1, lo)
	require.Equal(t, len(text)+1, hi)
}

func TestPatternLongerThanTextIsEmpty(t *testing.T) {
	idx, err := Build([]byte("abra"), 1)
	require.NoError(t, err)

	require.Equal(t, 0, idx.Count([]byte("abracadabra")))
	require.False(t, idx.Contains([]byte("abracadabra")))
}

func TestByteAbsentFromTextIsEmptyImmediately(t *testing.T) {
	idx, err := Build([]byte("aaaa"), 1)
	require.NoError(t, err)

	require.Equal(t, 0, idx.Count([]byte("z")))
	require.Equal(t, 0, idx.Count([]byte("az")))
}

func TestLFRoundTrip(t *testing.T) {
	idx, err := Build([]byte("mississippi"), 2)
	require.NoError(t, err)

	n := idx.textLen

	for start := 0; start <= n; start++ {
		j := start

		for k := 0; k < n+1; k++ {
			j = idx.lf(j)
		}

		require.Equal(t, start, j, "LF round trip failed for start=%d", start)
	}
}

func TestLocateIterMatchesLocateAll(t *testing.T) {
	text := []byte("abracadabra")
	idx, err := Build(text, 3)
	require.NoError(t, err)

	pattern := []byte("abra")
	want := asSortedSet(idx.LocateAll(pattern))

	it := idx.Locate(pattern)
	var got []int

	for {
		remainingBefore := it.Remaining()
		pos, ok := it.Next()

		if !ok {
			require.Equal(t, 0, remainingBefore)
			break
		}

		got = append(got, pos)
	}

	require.Equal(t, want, asSortedSet(got))
}

func TestCompressionRatioAndSizeBytes(t *testing.T) {
	idx, err := Build([]byte("abracadabra"), 2)
	require.NoError(t, err)

	require.Positive(t, idx.SizeBytes())
	require.InDelta(t, float64(idx.SizeBytes())/float64(idx.TextLen()), idx.CompressionRatio(), 1e-9)

	empty, err := Build(nil, 1)
	require.NoError(t, err)
	require.Zero(t, empty.CompressionRatio())
}
