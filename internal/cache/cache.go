package cache

import (
	"fmt"
	"maps"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"
)

// Cache is the shared statistics cache. Construct one instance at process
// start and pass it to every component that needs it; there is no global
// instance.
type Cache struct {
	policy Policy
	clock  clockwork.Clock
	shards map[Category]*shard

	maxPerCategory int
	dedupe         bool
	sweepEvery     time.Duration

	group     singleflight.Group
	stopSweep chan struct{}
	closed    bool
}

// Option configures a Cache at construction time.
type Option func(*Cache)

// WithClock substitutes the time source used for storedAt stamps and
// freshness checks. Tests pass a clockwork fake clock to exercise expiry
// without sleeping.
func WithClock(clk clockwork.Clock) Option {
	return func(c *Cache) { c.clock = clk }
}

// WithSweepInterval starts a background sweeper that physically removes
// expired entries every d. Without it, expired entries linger until they
// are overwritten, invalidated, or swept manually.
func WithSweepInterval(d time.Duration) Option {
	return func(c *Cache) { c.sweepEvery = d }
}

// WithMaxEntriesPerCategory bounds each category at n entries, evicting
// the oldest-stored entry on overflow. Zero (the default) leaves growth
// unbounded.
func WithMaxEntriesPerCategory(n int) Option {
	return func(c *Cache) { c.maxPerCategory = n }
}

// WithSingleFlight collapses concurrent computes for the same missing key
// onto one upstream fetch; late arrivals wait for the first caller's
// result. Off by default: the baseline contract allows duplicate fetches
// under contention, with the last write winning.
func WithSingleFlight() Option {
	return func(c *Cache) { c.dedupe = true }
}

// New validates policy and builds the cache. A category without a TTL, or
// a negative TTL, fails here so a bad policy can never serve a request.
func New(policy Policy, opts ...Option) (*Cache, error) {
	if err := policy.validate(); err != nil {
		return nil, err
	}
	c := &Cache{
		policy:    maps.Clone(policy),
		clock:     clockwork.NewRealClock(),
		shards:    make(map[Category]*shard, len(Categories())),
		stopSweep: make(chan struct{}),
	}
	for _, cat := range Categories() {
		c.shards[cat] = newShard()
	}
	for _, opt := range opts {
		opt(c)
	}
	c.startSweeper()
	return c, nil
}

// GetOrCompute is the primary lookup path. A present, fresh entry is a
// hit: its clone is returned and compute never runs. Otherwise the miss
// is recorded, compute performs the upstream fetch outside any lock, and
// a successful result is stored and returned. A compute error propagates
// unchanged and nothing is stored. A compute that returns neither a value
// nor an error violates its contract and is rejected with an error rather
// than stored.
//
// A stale entry stays in the store until the recompute overwrites it (or
// a sweep removes it); staleness alone never deletes.
func (c *Cache) GetOrCompute(cat Category, sport, identifier string, compute func() (Value, error)) (Value, error) {
	sh, ok := c.shards[cat]
	if !ok {
		return nil, fmt.Errorf("cache: unknown category %q", cat)
	}
	key := entryKey(sport, identifier)

	sh.mu.Lock()
	if e, found := sh.entries[key]; found && c.policy.fresh(e, c.clock.Now()) {
		sh.hits++
		v := e.value.clone()
		sh.mu.Unlock()
		return v, nil
	}
	sh.misses++
	sh.mu.Unlock()

	if c.dedupe {
		v, err, _ := c.group.Do(string(cat)+"\x00"+key, func() (any, error) {
			v, err := compute()
			if err != nil {
				return nil, err
			}
			if v == nil {
				return nil, fmt.Errorf("cache: compute for category %q returned no value", cat)
			}
			c.put(sh, cat, key, v)
			return v, nil
		})
		if err != nil {
			return nil, err
		}
		return v.(Value).clone(), nil
	}

	v, err := compute()
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("cache: compute for category %q returned no value", cat)
	}
	c.put(sh, cat, key, v)
	return v, nil
}

// put stores a clone of v, stamping storedAt while the shard lock is held
// so TTL measurement reflects actual storage time under contention.
func (c *Cache) put(sh *shard, cat Category, key string, v Value) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if _, exists := sh.entries[key]; !exists && c.maxPerCategory > 0 && len(sh.entries) >= c.maxPerCategory {
		sh.evictOldestLocked()
	}
	sh.entries[key] = entry{value: v.clone(), category: cat, storedAt: c.clock.Now()}
}

// Invalidate evicts one key, for when upstream data is known to have
// changed (a trade, a roster cut). Idempotent on absent keys.
func (c *Cache) Invalidate(cat Category, sport, identifier string) {
	sh, ok := c.shards[cat]
	if !ok {
		return
	}
	key := entryKey(sport, identifier)
	sh.mu.Lock()
	delete(sh.entries, key)
	sh.mu.Unlock()
}

// SweepExpired physically removes every expired entry and reports how
// many were dropped. The background sweeper calls this on its interval;
// it is also safe to call directly.
func (c *Cache) SweepExpired() int {
	removed := 0
	for _, cat := range Categories() {
		sh := c.shards[cat]
		sh.mu.Lock()
		now := c.clock.Now()
		for key, e := range sh.entries {
			if !c.policy.fresh(e, now) {
				delete(sh.entries, key)
				removed++
			}
		}
		sh.mu.Unlock()
	}
	return removed
}

// Clear drops every entry and resets the counters. Intended for tests and
// operational resets; a cleared cache behaves like a cold start.
func (c *Cache) Clear() {
	for _, sh := range c.shards {
		sh.mu.Lock()
		clear(sh.entries)
		sh.hits = 0
		sh.misses = 0
		sh.mu.Unlock()
	}
}

// Close stops the background sweeper, if one was configured. Safe to call
// once per cache.
func (c *Cache) Close() {
	if c.closed {
		return
	}
	c.closed = true
	close(c.stopSweep)
}
