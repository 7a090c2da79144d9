package cache

// Category partitions the cache by the kind of data stored. Each category
// has its own TTL policy and its own hit/miss counters.
type Category string

const (
	CategoryPlayerID    Category = "player_id"
	CategoryRoster      Category = "roster"
	CategoryPlayerStats Category = "player_stats"
	CategoryTeamList    Category = "team_list"
)

// Categories returns every known category in a stable order.
func Categories() []Category {
	return []Category{
		CategoryPlayerID,
		CategoryRoster,
		CategoryPlayerStats,
		CategoryTeamList,
	}
}

func validCategory(cat Category) bool {
	switch cat {
	case CategoryPlayerID, CategoryRoster, CategoryPlayerStats, CategoryTeamList:
		return true
	}
	return false
}
