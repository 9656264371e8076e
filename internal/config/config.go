// Package config resolves the default database path for the CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the optional config file looked up in the working directory.
const File = "traindb.yaml"

// EnvDatabase overrides any configured database path when set.
const EnvDatabase = "TRAINDB_DB"

// DefaultDatabaseFile is the fallback when nothing else is configured.
const DefaultDatabaseFile = "trains.db"

// Config holds the settings the config file may carry.
type Config struct {
	// Database is the path to the DuckDB file.
	Database string `yaml:"database"`
}

// Load reads a config file. The caller decides whether a missing file
// matters; Load just returns the os error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// DefaultDatabase returns the database path used when --db is not given.
//
// Precedence: the TRAINDB_DB environment variable, then the database key
// of ./traindb.yaml, then trains.db in the working directory. A missing or
// unreadable config file silently falls through to the default.
func DefaultDatabase() string {
	if path := os.Getenv(EnvDatabase); path != "" {
		return path
	}
	if cfg, err := Load(File); err == nil && cfg.Database != "" {
		return cfg.Database
	}
	return DefaultDatabaseFile
}
