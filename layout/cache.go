// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"hash/fnv"
	"math"
	"sync"
	"sync/atomic"
)

// Cache configuration constants.
const (
	// cacheShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	cacheShardCount = 16

	// defaultCacheCapacity is the default maximum entries per shard.
	defaultCacheCapacity = 256

	// cacheShardMask is used for fast shard selection.
	cacheShardMask = cacheShardCount - 1
)

// measureKey identifies a measurement result. All parameters that affect
// the result must be included.
type measureKey struct {
	// textHash is the FNV-1a hash of the paragraph text.
	textHash uint64

	// fontID is the parsed font identifier.
	fontID uint64

	// sizeBits is the IEEE 754 bit pattern of the font size.
	// Using bit patterns ensures exact matching without floating-point
	// comparison issues.
	sizeBits uint64

	// maxWidthBits is the bit pattern of the wrap width.
	maxWidthBits uint64

	// direction is the resolved base direction.
	direction Direction
}

// newMeasureKey creates a measureKey from measurement parameters.
func newMeasureKey(text string, fontID uint64, size, maxWidth float64, dir Direction) measureKey {
	return measureKey{
		textHash:     hashString(text),
		fontID:       fontID,
		sizeBits:     math.Float64bits(size),
		maxWidthBits: math.Float64bits(maxWidth),
		direction:    dir,
	}
}

// hashString computes the FNV-1a hash of a string.
func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// shard selects the cache shard for this key.
func (k measureKey) shard() uint64 {
	return (k.textHash ^ k.fontID ^ k.sizeBits ^ k.maxWidthBits) & cacheShardMask
}

// measureCache memoizes measurement extents.
//
// It is sharded to keep lock contention low when many goroutines measure
// concurrently. Eviction is generational: a shard that reaches capacity is
// reset wholesale, which is cheap and good enough for a memoization cache.
type measureCache struct {
	shards   [cacheShardCount]measureCacheShard
	capacity int

	hits   atomic.Uint64
	misses atomic.Uint64
}

type measureCacheShard struct {
	mu      sync.RWMutex
	entries map[measureKey]Extent
}

func newMeasureCache(capacity int) *measureCache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	c := &measureCache{capacity: capacity}
	for i := range c.shards {
		c.shards[i].entries = make(map[measureKey]Extent)
	}
	return c
}

func (c *measureCache) get(key measureKey) (Extent, bool) {
	shard := &c.shards[key.shard()]
	shard.mu.RLock()
	ext, ok := shard.entries[key]
	shard.mu.RUnlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return ext, ok
}

func (c *measureCache) set(key measureKey, ext Extent) {
	shard := &c.shards[key.shard()]
	shard.mu.Lock()
	if len(shard.entries) >= c.capacity {
		shard.entries = make(map[measureKey]Extent)
	}
	shard.entries[key] = ext
	shard.mu.Unlock()
}

func (c *measureCache) stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
