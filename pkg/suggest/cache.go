package suggest

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
)

// CachedFetcher memoizes Fetch results per (query, region) pair so repeated
// seeds and overlapping variants don't hit the upstream twice. Eviction is
// LRU by a monotonic access counter. Negative results are cached too: the
// upstream treats "no suggestions" and "failed" identically, so we do as well.
type CachedFetcher struct {
	fetcher     Fetcher
	entries     map[cacheKey][]string
	accessTime  map[cacheKey]int64
	accessCount int64
	hits        int64
	maxEntries  int
	mu          sync.Mutex
}

type cacheKey struct {
	query  string
	region string
}

// NewCachedFetcher wraps fetcher with an LRU cache holding up to maxEntries
// query results.
func NewCachedFetcher(fetcher Fetcher, maxEntries int) *CachedFetcher {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &CachedFetcher{
		fetcher:    fetcher,
		entries:    make(map[cacheKey][]string, maxEntries),
		accessTime: make(map[cacheKey]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// Fetch returns the cached suggestions for (query, region) or delegates to
// the wrapped fetcher and stores the result.
func (cf *CachedFetcher) Fetch(ctx context.Context, query, region string) []string {
	key := cacheKey{query: query, region: region}

	cf.mu.Lock()
	if cached, ok := cf.entries[key]; ok {
		cf.markAccessed(key)
		cf.hits++
		cf.mu.Unlock()
		return cached
	}
	cf.mu.Unlock()

	// Fetch outside the lock; concurrent misses for the same key may race,
	// the last writer wins and results are identical anyway.
	suggestions := cf.fetcher.Fetch(ctx, query, region)

	cf.mu.Lock()
	defer cf.mu.Unlock()
	if len(cf.entries) >= cf.maxEntries {
		cf.evictLRU()
	}
	cf.entries[key] = suggestions
	cf.markAccessed(key)
	return suggestions
}

// Stats returns cache counters for debugging.
func (cf *CachedFetcher) Stats() map[string]int {
	cf.mu.Lock()
	defer cf.mu.Unlock()

	return map[string]int{
		"cachedQueries": len(cf.entries),
		"maxEntries":    cf.maxEntries,
		"cacheHits":     int(cf.hits),
	}
}

func (cf *CachedFetcher) markAccessed(key cacheKey) {
	cf.accessCount++
	cf.accessTime[key] = cf.accessCount
}

func (cf *CachedFetcher) evictLRU() {
	var oldestKey cacheKey
	var oldestTime int64 = 9223372036854775807

	for key, accessTime := range cf.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestKey = key
		}
	}

	if oldestTime != 9223372036854775807 {
		delete(cf.entries, oldestKey)
		delete(cf.accessTime, oldestKey)
		log.Debugf("Evicted query %q (%s) from suggest cache", oldestKey.query, oldestKey.region)
	}
}
