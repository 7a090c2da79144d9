// Package cli wires together the Cobra command tree for the statcache
// binary.
//
// It defines the root command and subcommands (config init/set/show,
// version) for inspecting and tuning the cache's TTL policy without a
// rebuild of the host application.
package cli
