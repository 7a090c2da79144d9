package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/sportsbot/statcache/internal/cache"
)

// Config represents the statcache configuration.
type Config struct {
	TTL                   TTLConfig `json:"ttl"`
	SweepIntervalSeconds  int       `json:"sweepIntervalSeconds"`
	MaxEntriesPerCategory int       `json:"maxEntriesPerCategory"`
	DedupeInFlight        bool      `json:"dedupeInFlight"`
	StatsListen           string    `json:"statsListen,omitempty"`
}

// TTLConfig holds the per-category TTL tiers, in seconds. The fields are
// pointers so an explicit zero survives the merge chain: nil means "use
// the default", 0 means "never cache" for that category.
type TTLConfig struct {
	PlayerIDSeconds    *int `json:"playerIdSeconds,omitempty"`
	RosterSeconds      *int `json:"rosterSeconds,omitempty"`
	PlayerStatsSeconds *int `json:"playerStatsSeconds,omitempty"`
	TeamListSeconds    *int `json:"teamListSeconds,omitempty"`
}

func intPtr(n int) *int { return &n }

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		TTL: TTLConfig{
			PlayerIDSeconds:    intPtr(86400), // players rarely change identity
			RosterSeconds:      intPtr(21600), // rosters move during a season
			PlayerStatsSeconds: intPtr(3600),  // stat lines move during games
			TeamListSeconds:    intPtr(86400),
		},
		SweepIntervalSeconds:  0, // lazy expiration only
		MaxEntriesPerCategory: 0, // unbounded
		DedupeInFlight:        false,
	}
}

// ConfigDir returns the platform-appropriate config directory for statcache.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "statcache"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "statcache"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "statcache"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "statcache"), nil
	default:
		return filepath.Join(home, ".config", "statcache"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides, then validates. The overrides map comes from CLI flags (only
// non-empty values should be set); an unknown or unparsable override is an
// error, not a silent no-op. A config that fails validation is never
// returned: the process must not build a cache from a broken TTL policy.
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.TTL.PlayerIDSeconds != nil {
		dst.TTL.PlayerIDSeconds = src.TTL.PlayerIDSeconds
	}
	if src.TTL.RosterSeconds != nil {
		dst.TTL.RosterSeconds = src.TTL.RosterSeconds
	}
	if src.TTL.PlayerStatsSeconds != nil {
		dst.TTL.PlayerStatsSeconds = src.TTL.PlayerStatsSeconds
	}
	if src.TTL.TeamListSeconds != nil {
		dst.TTL.TeamListSeconds = src.TTL.TeamListSeconds
	}
	if src.SweepIntervalSeconds > 0 {
		dst.SweepIntervalSeconds = src.SweepIntervalSeconds
	}
	if src.MaxEntriesPerCategory > 0 {
		dst.MaxEntriesPerCategory = src.MaxEntriesPerCategory
	}
	if src.StatsListen != "" {
		dst.StatsListen = src.StatsListen
	}
	// JSON zero value for bool can't be told apart from unset; trust the
	// file value once the struct was loaded.
	dst.DedupeInFlight = src.DedupeInFlight || dst.DedupeInFlight
}

func mergeEnv(cfg *Config) {
	// TTLs accept an explicit 0 ("never cache").
	ttlEnv := func(name string, dst **int) {
		if v := os.Getenv(name); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				*dst = &n
			}
		}
	}
	intEnv := func(name string, dst *int) {
		if v := os.Getenv(name); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				*dst = n
			}
		}
	}
	ttlEnv("STATCACHE_TTL_PLAYER_ID", &cfg.TTL.PlayerIDSeconds)
	ttlEnv("STATCACHE_TTL_ROSTER", &cfg.TTL.RosterSeconds)
	ttlEnv("STATCACHE_TTL_PLAYER_STATS", &cfg.TTL.PlayerStatsSeconds)
	ttlEnv("STATCACHE_TTL_TEAM_LIST", &cfg.TTL.TeamListSeconds)
	intEnv("STATCACHE_SWEEP_INTERVAL", &cfg.SweepIntervalSeconds)
	intEnv("STATCACHE_MAX_ENTRIES", &cfg.MaxEntriesPerCategory)
	if v := os.Getenv("STATCACHE_DEDUPE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.DedupeInFlight = b
		}
	}
	if v := os.Getenv("STATCACHE_STATS_LISTEN"); v != "" {
		cfg.StatsListen = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := SetField(cfg, key, value); err != nil {
			return err
		}
	}
	return nil
}

// SetField sets a single config field by key name. Returns an error if the
// key is unknown or the value doesn't parse.
func SetField(cfg *Config, key, value string) error {
	ttlField := func(dst **int) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		*dst = &n
		return nil
	}
	intField := func(dst *int) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		*dst = n
		return nil
	}
	switch key {
	case "ttl.playerId":
		return ttlField(&cfg.TTL.PlayerIDSeconds)
	case "ttl.roster":
		return ttlField(&cfg.TTL.RosterSeconds)
	case "ttl.playerStats":
		return ttlField(&cfg.TTL.PlayerStatsSeconds)
	case "ttl.teamList":
		return ttlField(&cfg.TTL.TeamListSeconds)
	case "sweepInterval":
		return intField(&cfg.SweepIntervalSeconds)
	case "maxEntries":
		return intField(&cfg.MaxEntriesPerCategory)
	case "dedupe":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("dedupe must be a boolean: %w", err)
		}
		cfg.DedupeInFlight = b
		return nil
	case "statsListen":
		cfg.StatsListen = value
		return nil
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}

// Validate rejects configurations the cache must never be built from.
func (c Config) Validate() error {
	ttls := []struct {
		name    string
		seconds *int
	}{
		{"ttl.playerId", c.TTL.PlayerIDSeconds},
		{"ttl.roster", c.TTL.RosterSeconds},
		{"ttl.playerStats", c.TTL.PlayerStatsSeconds},
		{"ttl.teamList", c.TTL.TeamListSeconds},
	}
	for _, ttl := range ttls {
		if ttl.seconds != nil && *ttl.seconds < 0 {
			return fmt.Errorf("config: %s is negative (%d)", ttl.name, *ttl.seconds)
		}
	}
	if c.SweepIntervalSeconds < 0 {
		return fmt.Errorf("config: sweepInterval is negative (%d)", c.SweepIntervalSeconds)
	}
	if c.MaxEntriesPerCategory < 0 {
		return fmt.Errorf("config: maxEntries is negative (%d)", c.MaxEntriesPerCategory)
	}
	return nil
}

// Policy converts the TTL tiers into the cache's policy table. Unset
// fields fall back to the defaults; an explicit zero flows through and
// disables caching for that category.
func (c Config) Policy() cache.Policy {
	def := Default().TTL
	sec := func(v, fallback *int) time.Duration {
		if v == nil {
			v = fallback
		}
		return time.Duration(*v) * time.Second
	}
	return cache.Policy{
		cache.CategoryPlayerID:    sec(c.TTL.PlayerIDSeconds, def.PlayerIDSeconds),
		cache.CategoryRoster:      sec(c.TTL.RosterSeconds, def.RosterSeconds),
		cache.CategoryPlayerStats: sec(c.TTL.PlayerStatsSeconds, def.PlayerStatsSeconds),
		cache.CategoryTeamList:    sec(c.TTL.TeamListSeconds, def.TeamListSeconds),
	}
}

// CacheOptions translates the tuning knobs into cache construction options.
func (c Config) CacheOptions() []cache.Option {
	var opts []cache.Option
	if c.SweepIntervalSeconds > 0 {
		opts = append(opts, cache.WithSweepInterval(time.Duration(c.SweepIntervalSeconds)*time.Second))
	}
	if c.MaxEntriesPerCategory > 0 {
		opts = append(opts, cache.WithMaxEntriesPerCategory(c.MaxEntriesPerCategory))
	}
	if c.DedupeInFlight {
		opts = append(opts, cache.WithSingleFlight())
	}
	return opts
}
