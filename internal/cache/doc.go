// Package cache implements the process-wide sports statistics cache.
//
// A single Cache instance is shared by every component that resolves player
// identities, fetches rosters, or computes statistics. Entries are
// partitioned by category (player identity, roster, player stats, team
// list), each category carrying its own TTL, so that hot lookups from
// concurrent user sessions collapse onto one upstream fetch instead of one
// per user.
//
// The cache performs no I/O of its own. Callers supply a compute callback
// that performs the upstream fetch on a miss; its errors pass through
// unchanged and nothing is stored when it fails. Hit, miss, and
// calls-saved counters are tracked per category and exposed as consistent
// snapshots for the telemetry layer.
package cache
