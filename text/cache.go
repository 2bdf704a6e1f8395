package text

import (
	"cmp"
	"slices"
	"sync"
)

// Cache is a thread-safe LRU cache with a soft limit. When it grows past
// the limit the least recently used quarter is evicted.
//
// Cache must not be copied after creation.
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*cacheEntry[V]
	softLimit int
	tick      int64
}

type cacheEntry[V any] struct {
	value V
	atime int64
}

// NewCache creates a cache holding about softLimit entries.
// A softLimit of 0 means unlimited.
func NewCache[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: softLimit,
	}
}

// Get returns the value stored under key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	e.atime = c.tick
	return e.value, true
}

// GetOrCreate returns the cached value for key, calling create under the
// lock when it is missing.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		return e.value
	}
	v := create()
	c.entries[key] = &cacheEntry[V]{value: v, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evict()
	}
	return v
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.tick = 0
}

// evict shrinks the cache to three quarters of its limit. Caller holds mu.
func (c *Cache[K, V]) evict() {
	target := max(c.softLimit*3/4, 1)
	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.atime})
	}
	slices.SortFunc(all, func(a, b aged) int { return cmp.Compare(a.atime, b.atime) })
	for _, a := range all[:len(all)-target] {
		delete(c.entries, a.key)
	}
}

// RunKey identifies a laid out run.
type RunKey struct {
	Text string
	Size float64
}

// RunCache memoizes LayoutRun for one face source and shaper.
type RunCache struct {
	source *FontSource
	shaper Shaper
	runs   *Cache[RunKey, *Run]
}

// NewRunCache creates a cache of runs laid out from source with shaper
// (nil for the global shaper), holding about limit runs.
func NewRunCache(source *FontSource, shaper Shaper, limit int) *RunCache {
	return &RunCache{source: source, shaper: shaper, runs: NewCache[RunKey, *Run](limit)}
}

// Layout returns the run for s at size, placed at (x, baseline).
// Cached runs are reused only when placed at the same origin.
func (rc *RunCache) Layout(s string, size, x, baseline float64) *Run {
	r := rc.runs.GetOrCreate(RunKey{s, size}, func() *Run {
		return LayoutRun(s, rc.source.Face(size), rc.shaper, x, baseline)
	})
	if ox, ob := r.Origin(); ox != x || ob != baseline {
		return r.At(x, baseline)
	}
	return r
}

// Len returns the number of cached runs.
func (rc *RunCache) Len() int {
	return rc.runs.Len()
}
