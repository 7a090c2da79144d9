package cache

import (
	"slices"
	"strings"
)

// normalize lowercases, trims, and collapses interior whitespace so that
// "Josh Allen" and "  josh allen " land on the same entry.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// entryKey builds the within-category key. Category is not part of the key
// because each category has its own shard.
func entryKey(sport, identifier string) string {
	return normalize(sport) + ":" + normalize(identifier)
}

// StatLineKey composes the identifier for a PlayerStats lookup. Metric
// names are sorted so that equivalent requests share one cache entry; an
// empty metric list means the full stat line.
func StatLineKey(playerID, season string, metrics []string) string {
	if len(metrics) == 0 {
		return playerID + ":" + season + ":all"
	}
	ms := slices.Clone(metrics)
	slices.Sort(ms)
	return playerID + ":" + season + ":" + strings.Join(ms, ",")
}
