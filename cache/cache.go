// Package cache is the result-memoization bridge referenced, but not
// specified, by the core: a key-value mapping from (index identity,
// pattern hash) to a previously materialized Count/LocateAll result. It is
// an external collaborator — fmindex.Index has no knowledge of it.
package cache

import (
	"hash/fnv"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ext-sakamoro/alice-search/fmindex"
)

// DefaultSize is the default number of entries retained per query kind.
const DefaultSize = 1024

// cacheKey pairs the identity of the Index a result was computed against
// with the FNV-1a hash of the query pattern, so one ResultCache can safely
// memoize results for several distinct indexes without collisions.
type cacheKey struct {
	idx  *fmindex.Index
	hash uint64
}

// ResultCache is a pair of LRU memoization tables, one for Count and one
// for LocateAll, shared across any number of built indexes.
type ResultCache struct {
	counts  *lru.Cache[cacheKey, int]
	locates *lru.Cache[cacheKey, []int]
	mu      sync.RWMutex
}

// New returns a ResultCache holding up to capacity entries per query kind.
// capacity is clamped to at least 1.
func New(capacity int) *ResultCache {
	if capacity < 1 {
		capacity = 1
	}

	// lru.New only errors when capacity <= 0, which is ruled out above.
	counts, _ := lru.New[cacheKey, int](capacity)
	locates, _ := lru.New[cacheKey, []int](capacity)

	return &ResultCache{counts: counts, locates: locates}
}

// NewDefault returns a ResultCache with DefaultSize capacity per query kind.
func NewDefault() *ResultCache {
	return New(DefaultSize)
}

func hashPattern(pattern []byte) uint64 {
	h := fnv.New64a()
	h.Write(pattern)
	return h.Sum64()
}

// Count returns idx.Count(pattern), serving from cache on a hit.
func (c *ResultCache) Count(idx *fmindex.Index, pattern []byte) int {
	key := cacheKey{idx, hashPattern(pattern)}

	c.mu.RLock()
	if v, ok := c.counts.Get(key); ok {
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	v := idx.Count(pattern)

	c.mu.Lock()
	c.counts.Add(key, v)
	c.mu.Unlock()

	return v
}

// LocateAll returns idx.LocateAll(pattern), serving from cache on a hit.
// The returned slice is shared across callers and must not be mutated.
func (c *ResultCache) LocateAll(idx *fmindex.Index, pattern []byte) []int {
	key := cacheKey{idx, hashPattern(pattern)}

	c.mu.RLock()
	if v, ok := c.locates.Get(key); ok {
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	v := idx.LocateAll(pattern)

	c.mu.Lock()
	c.locates.Add(key, v)
	c.mu.Unlock()

	return v
}

// Purge drops every cached entry.
func (c *ResultCache) Purge() {
	c.mu.Lock()
	c.counts.Purge()
	c.locates.Purge()
	c.mu.Unlock()
}

// Len returns the total number of entries held across both cache tables.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts.Len() + c.locates.Len()
}
