package cache

import (
	"fmt"
	"time"
)

// Policy maps each category to its TTL. A TTL of zero means "never cache":
// every lookup for that category misses, which lets tests exercise
// cache-aware code paths without caching. Negative TTLs are invalid.
type Policy map[Category]time.Duration

// DefaultPolicy returns the production TTL tiers: player identities and
// team lists change rarely, rosters change during a season, stat lines
// change during games.
func DefaultPolicy() Policy {
	return Policy{
		CategoryPlayerID:    24 * time.Hour,
		CategoryRoster:      6 * time.Hour,
		CategoryPlayerStats: 1 * time.Hour,
		CategoryTeamList:    24 * time.Hour,
	}
}

// validate enforces the startup invariant: every category has a policy
// entry and none is negative. A cache is never constructed from a policy
// that fails here.
func (p Policy) validate() error {
	for _, cat := range Categories() {
		ttl, ok := p[cat]
		if !ok {
			return fmt.Errorf("ttl policy: no TTL configured for category %q", cat)
		}
		if ttl < 0 {
			return fmt.Errorf("ttl policy: negative TTL %s for category %q", ttl, cat)
		}
	}
	for cat := range p {
		if !validCategory(cat) {
			return fmt.Errorf("ttl policy: unknown category %q", cat)
		}
	}
	return nil
}

// ttlFor returns the TTL for cat. Unknown categories are unreachable once
// validate has passed; if it happens anyway, fall back to the shortest
// configured TTL rather than fail a live request.
func (p Policy) ttlFor(cat Category) time.Duration {
	if ttl, ok := p[cat]; ok {
		return ttl
	}
	shortest := time.Duration(-1)
	for _, ttl := range p {
		if shortest < 0 || ttl < shortest {
			shortest = ttl
		}
	}
	if shortest < 0 {
		return 0
	}
	return shortest
}

// fresh reports whether e is still valid at now. Pure: no side effects,
// no clock reads.
func (p Policy) fresh(e entry, now time.Time) bool {
	ttl := p.ttlFor(e.category)
	if ttl == 0 {
		return false
	}
	return now.Sub(e.storedAt) < ttl
}
