// Package config loads the statcache TTL policy and tuning knobs.
//
// The effective configuration merges, in order of increasing precedence:
// built-in defaults, the JSON config file ($XDG_CONFIG_HOME/statcache or
// the OS-appropriate equivalent), STATCACHE_* environment variables, and
// CLI flag overrides. Validation runs before the merged config is handed
// out, so an invalid TTL policy stops the process at startup rather than
// surfacing mid-request.
package config
