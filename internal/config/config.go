// filepath: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"watchlist/internal/shared"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// Defaults applied by ParseAndValidate when a value is missing.
const (
	DefaultDatabasePath  = "watchlist.db"
	DefaultBusyTimeoutMs = 5000
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "text"
	DefaultLogMaxSize    = "10MB"
	DefaultLogMaxBackups = 3
	DefaultLogMaxAge     = "28d"
	DefaultLookupTTL     = "5m"
)

// Config holds the application's configuration.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
	Cache    CacheConfig    `toml:"cache"`

	LookupTTL     time.Duration `toml:"-"` // Runtime computed value
	LogMaxSizeMB  int           `toml:"-"` // Runtime computed value
	LogMaxAgeDays int           `toml:"-"` // Runtime computed value
}

// DatabaseConfig holds the SQLite store settings.
type DatabaseConfig struct {
	Path          string `toml:"path"`
	BusyTimeoutMs int    `toml:"busy_timeout_ms"`
}

// LoggingConfig holds the logging configuration.
// An empty File means logs go to stderr.
type LoggingConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"` // "text" or "json"
	File       string `toml:"file"`
	MaxSize    string `toml:"max_size"` // e.g. "10MB"
	MaxBackups int    `toml:"max_backups"`
	MaxAge     string `toml:"max_age"` // e.g. "28d"

	AuditEnabled bool `toml:"audit_enabled"` // Log every create/delete at INFO
}

// CacheConfig holds settings for the lookup cache of the repository.
type CacheConfig struct {
	LookupTTL string `toml:"lookup_ttl"` // e.g. "5m", "0" disables expiry
}

// Default returns a configuration with every default filled in.
func Default() *Config {
	c := &Config{}
	// The defaults are valid by construction.
	_ = c.ParseAndValidate()
	return c
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the configuration to a TOML file.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorCreateFile)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorEncodeFile)
	}
	return nil
}

// ParseAndValidate fills in defaults and processes configuration strings
// into runtime values.
func (c *Config) ParseAndValidate() error {
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath
	}
	if c.Database.BusyTimeoutMs == 0 {
		c.Database.BusyTimeoutMs = DefaultBusyTimeoutMs
	}
	if c.Database.BusyTimeoutMs < 0 {
		return fmt.Errorf("invalid busy_timeout_ms: %d", c.Database.BusyTimeoutMs)
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging level: %w", err)
	}

	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	c.Logging.Format = strings.ToLower(c.Logging.Format)
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}

	if c.Logging.MaxSize == "" {
		c.Logging.MaxSize = DefaultLogMaxSize
	}
	sizeBytes, err := shared.ParseSize(c.Logging.MaxSize)
	if err != nil {
		return fmt.Errorf("invalid logging max_size: %w", err)
	}
	if sizeBytes < 1<<20 {
		return fmt.Errorf("invalid logging max_size: %s is below 1MB", c.Logging.MaxSize)
	}
	c.LogMaxSizeMB = int(sizeBytes >> 20)

	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = DefaultLogMaxBackups
	}

	if c.Logging.MaxAge == "" {
		c.Logging.MaxAge = DefaultLogMaxAge
	}
	maxAge, err := shared.ParseDuration(c.Logging.MaxAge)
	if err != nil {
		return fmt.Errorf("invalid logging max_age: %w", err)
	}
	c.LogMaxAgeDays = int(maxAge / (24 * time.Hour))

	if c.Cache.LookupTTL == "" {
		c.Cache.LookupTTL = DefaultLookupTTL
	}
	ttl, err := shared.ParseDuration(c.Cache.LookupTTL)
	if err != nil {
		return fmt.Errorf("invalid cache lookup_ttl: %w", err)
	}
	c.LookupTTL = ttl

	return nil
}
