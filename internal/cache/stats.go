package cache

import "math"

// CategoryStats is the per-category slice of a statistics snapshot.
type CategoryStats struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Entries int    `json:"entries"`
}

// Statistics is a point-in-time snapshot of cache performance.
//
// APICallsSaved equals Hits by definition: every hit is exactly one
// upstream call that did not happen. It is a derived figure, not
// telemetry reported by the provider.
type Statistics struct {
	Hits           uint64                     `json:"hits"`
	Misses         uint64                     `json:"misses"`
	APICallsSaved  uint64                     `json:"apiCallsSaved"`
	HitRatePercent float64                    `json:"hitRatePercent"`
	Categories     map[Category]CategoryStats `json:"categories"`
}

// Stats returns a consistent snapshot. Each shard is read under its own
// lock; the work is proportional to the number of categories, not the
// number of entries, so lookups are never blocked for long.
func (c *Cache) Stats() Statistics {
	s := Statistics{Categories: make(map[Category]CategoryStats, len(c.shards))}
	for _, cat := range Categories() {
		sh := c.shards[cat]
		sh.mu.Lock()
		cs := CategoryStats{Hits: sh.hits, Misses: sh.misses, Entries: len(sh.entries)}
		sh.mu.Unlock()
		s.Categories[cat] = cs
		s.Hits += cs.Hits
		s.Misses += cs.Misses
	}
	s.APICallsSaved = s.Hits
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRatePercent = math.Round(float64(s.Hits)/float64(total)*1000) / 10
	}
	return s
}

// ResetStats zeroes all counters. Counters otherwise grow monotonically
// for the life of the process; this exists for explicit operator action
// only, entries are untouched.
func (c *Cache) ResetStats() {
	for _, sh := range c.shards {
		sh.mu.Lock()
		sh.hits = 0
		sh.misses = 0
		sh.mu.Unlock()
	}
}
