package cache

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ext-sakamoro/alice-search/fmindex"
)

func buildIndex(t *testing.T, text string) *fmindex.Index {
	t.Helper()
	idx, err := fmindex.Build([]byte(text), 2)
	require.NoError(t, err)
	return idx
}

func TestCountCacheMatchesIndex(t *testing.T) {
	idx := buildIndex(t, "abracadabra")
	rc := New(8)

	require.Equal(t, idx.Count([]byte("abra")), rc.Count(idx, []byte("abra")))
	require.Equal(t, 1, rc.Len())

	rc.Count(idx, []byte("abra"))
	require.Equal(t, 1, rc.Len())

	// Later calls for the same pattern must hit the cache and agree.
	require.Equal(t, idx.Count([]byte("abra")), rc.Count(idx, []byte("abra")))
	require.Equal(t, 1, rc.Len())
}

func TestLocateCacheMatchesIndex(t *testing.T) {
	idx := buildIndex(t, "mississippi")
	rc := New(8)

	want := idx.LocateAll([]byte("iss"))
	got := rc.LocateAll(idx, []byte("iss"))
	require.ElementsMatch(t, want, got)

	// Repeated call returns the same memoized slice.
	again := rc.LocateAll(idx, []byte("iss"))
	require.ElementsMatch(t, want, again)
}

func TestPurgeClearsBothTables(t *testing.T) {
	idx := buildIndex(t, "banana")
	rc := New(8)

	rc.Count(idx, []byte("an"))
	rc.LocateAll(idx, []byte("an"))
	require.Equal(t, 2, rc.Len())

	rc.Purge()
	require.Equal(t, 0, rc.Len())
}

func TestDistinctPatternsGetDistinctEntries(t *testing.T) {
	idx := buildIndex(t, "abracadabra")
	rc := New(8)

	rc.Count(idx, []byte("a"))
	rc.Count(idx, []byte("b"))
	rc.Count(idx, []byte("c"))
	require.Equal(t, 3, rc.Len())
}

func TestDistinctIndexesDoNotCollide(t *testing.T) {
	idxA := buildIndex(t, "abracadabra")
	idxB := buildIndex(t, "bananarama")
	rc := New(8)

	countA := rc.Count(idxA, []byte("a"))
	countB := rc.Count(idxB, []byte("a"))

	require.Equal(t, idxA.Count([]byte("a")), countA)
	require.Equal(t, idxB.Count([]byte("a")), countB)
	require.Equal(t, 2, rc.Len())
}
