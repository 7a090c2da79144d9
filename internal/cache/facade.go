package cache

// Typed entry points for the cache's callers. Each wraps GetOrCompute for
// one category so the player resolver, roster fetcher, and stats fetcher
// get back the concrete payload type without asserting on Value.

func fetch[T Value](c *Cache, cat Category, sport, identifier string, compute func() (T, error)) (T, error) {
	v, err := c.GetOrCompute(cat, sport, identifier, func() (Value, error) {
		t, err := compute()
		if err != nil {
			var zero T
			return zero, err
		}
		return t, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// PlayerIdentityFor resolves a player name to an identity, fetching via
// compute on a miss.
func (c *Cache) PlayerIdentityFor(sport, playerName string, compute func() (PlayerIdentity, error)) (PlayerIdentity, error) {
	return fetch(c, CategoryPlayerID, sport, playerName, compute)
}

// RosterFor returns a team's roster, keyed by team ID.
func (c *Cache) RosterFor(sport, teamID string, compute func() (Roster, error)) (Roster, error) {
	return fetch(c, CategoryRoster, sport, teamID, compute)
}

// PlayerStatsFor returns a stat line. Use StatLineKey to build the
// identifier from player ID, season, and requested metrics.
func (c *Cache) PlayerStatsFor(sport, identifier string, compute func() (PlayerStats, error)) (PlayerStats, error) {
	return fetch(c, CategoryPlayerStats, sport, identifier, compute)
}

// TeamListFor returns the teams for a sport. The sport itself is the
// whole key, so the identifier is fixed.
func (c *Cache) TeamListFor(sport string, compute func() (TeamList, error)) (TeamList, error) {
	return fetch(c, CategoryTeamList, sport, "teams", compute)
}
