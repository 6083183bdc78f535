package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

const defaultTokenSecret = "homefinder-local-secret"

// Config holds runtime settings for the HomeFinder CLI.
//
// Units: SimulatedLatency, ResetLatency and TokenValidity are durations;
// a zero TokenValidity issues tokens that never expire.
type Config struct {
	DatabasePath  string
	StorageDriver string
	RedisURL      string

	SimulatedLatency time.Duration
	ResetLatency     time.Duration
	StrictAuth       bool

	TokenSecret   string
	TokenValidity time.Duration

	LogLevel  string
	LogFormat string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = defaultDatabasePath()
	c.StorageDriver = StorageSQLite
	c.RedisURL = ""
	c.SimulatedLatency = time.Second
	c.ResetLatency = 1500 * time.Millisecond
	c.StrictAuth = false
	c.TokenSecret = defaultTokenSecret
	c.TokenValidity = 0
	c.LogLevel = "info"
	c.LogFormat = "text"
}

func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "homefinder.db"
	}
	return filepath.Join(dir, "homefinder", "client.db")
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageSQLite, StorageMemory:
	case StorageRedis:
		if c.RedisURL == "" {
			return errors.New("redis storage requires a redis url")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	if c.SimulatedLatency < 0 || c.ResetLatency < 0 || c.TokenValidity < 0 {
		return errors.New("durations must not be negative")
	}
	if c.TokenSecret == "" {
		return errors.New("token secret is empty")
	}
	if c.DatabasePath == "" {
		return errors.New("database path is empty")
	}
	return nil
}

// Load builds a Config from defaults, environment, JSON and flags found in
// args (without the program name). Later sources take precedence.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, args); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load applied to the process arguments.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}
