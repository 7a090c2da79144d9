package cache

import (
	"maps"
	"slices"
)

// Value is the closed set of payloads the cache stores, one concrete type
// per category. The store never hands out its own reference: values are
// cloned on the way in and on the way out, so a caller mutating a returned
// slice or map cannot corrupt the cached copy.
type Value interface {
	Category() Category

	// clone returns a deep copy. Unexported so the union stays closed.
	clone() Value
}

// PlayerIdentity is a resolved player: the upstream provider ID plus the
// roster context the resolution ran against.
type PlayerIdentity struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	TeamID   string `json:"teamId"`
	Position string `json:"position"`
}

func (PlayerIdentity) Category() Category { return CategoryPlayerID }

func (v PlayerIdentity) clone() Value { return v }

// RosterSpot is one player on a team roster.
type RosterSpot struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Jersey   string `json:"jersey,omitempty"`
}

// Roster is a team's player list for a season.
type Roster struct {
	TeamID  string       `json:"teamId"`
	Season  string       `json:"season"`
	Players []RosterSpot `json:"players"`
}

func (Roster) Category() Category { return CategoryRoster }

func (v Roster) clone() Value {
	v.Players = slices.Clone(v.Players)
	return v
}

// PlayerStats holds computed statistic lines for one player and season,
// keyed by metric name (e.g. "sacks", "receiving_yards").
type PlayerStats struct {
	PlayerID string             `json:"playerId"`
	Season   string             `json:"season"`
	Lines    map[string]float64 `json:"lines"`
}

func (PlayerStats) Category() Category { return CategoryPlayerStats }

func (v PlayerStats) clone() Value {
	v.Lines = maps.Clone(v.Lines)
	return v
}

// TeamInfo identifies one team in a league.
type TeamInfo struct {
	TeamID string `json:"teamId"`
	Name   string `json:"name"`
	Abbrev string `json:"abbrev,omitempty"`
}

// TeamList is the full set of teams for a sport.
type TeamList struct {
	Teams []TeamInfo `json:"teams"`
}

func (TeamList) Category() Category { return CategoryTeamList }

func (v TeamList) clone() Value {
	v.Teams = slices.Clone(v.Teams)
	return v
}
