package cache

import (
	"sync"
	"time"
)

// entry is a stored value with the metadata freshness checks need. Owned
// by its shard; only clones of value ever leave the lock.
type entry struct {
	value    Value
	category Category
	storedAt time.Time
}

// shard holds one category's entries and its hit/miss counters. Keeping
// the counters under the same mutex as the map makes a lookup's outcome
// and its accounting a single atomic step; categories are independent
// partitions, so there is one lock per category rather than one global
// lock.
type shard struct {
	mu      sync.Mutex
	entries map[string]entry
	hits    uint64
	misses  uint64
}

func newShard() *shard {
	return &shard{entries: make(map[string]entry)}
}

// evictOldestLocked removes the entry with the earliest storedAt. Called
// with sh.mu held, only when a per-category bound is configured.
func (sh *shard) evictOldestLocked() {
	var (
		oldestKey string
		oldestAt  time.Time
		found     bool
	)
	for k, e := range sh.entries {
		if !found || e.storedAt.Before(oldestAt) {
			oldestKey, oldestAt, found = k, e.storedAt, true
		}
	}
	if found {
		delete(sh.entries, oldestKey)
	}
}
