// Statcache is the operator tooling for the shared sports-statistics
// cache.
//
// The cache itself is embedded in the assistant process; this binary
// manages the TTL policy and tuning knobs it is built from.
//
// Usage:
//
//	statcache config init              # create a default config file
//	statcache config show              # print the effective configuration
//	statcache config set <key> <value> # update one setting
//	statcache serve [--listen addr]    # expose /metrics and /stats for a cache built from the config
//	statcache version
package main
