// Package config loads runtime settings for the repeatermap CLI:
// defaults first, then an optional JSON file, then command-line flags.
// Later sources take precedence over earlier ones.
package config

// Config holds runtime settings for the repeatermap CLI.
//
// Fields:
//   - DatabasePath: path of the local SQLite database file.
//   - SeedDisabled: when true, an empty store is not initialized with
//     the bootstrap repeater records.
type Config struct {
	DatabasePath string
	SeedDisabled bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "repeatermap.db"
	c.SeedDisabled = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
