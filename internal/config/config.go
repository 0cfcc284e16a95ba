// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the engine configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Sheet     string `json:"sheet,omitempty"`     // Path to a pliego JSON document (offline runs)
	Inventory string `json:"inventory,omitempty"` // Path to an inventory CSV export

	// Behavior
	Workers int  `json:"workers,omitempty"` // Batch evaluation worker count
	Verbose bool `json:"verbose,omitempty"` // Print per-record verdict detail

	// Server
	Port        int    `json:"port,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides config values from environment variables. DATABASE_URL
// and PORT are the ones deployments set.
func (c *Config) ApplyEnv() {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		c.DatabaseURL = url
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Port = p
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.Sheet != "" {
		if _, err := os.Stat(c.Sheet); os.IsNotExist(err) {
			return fmt.Errorf("config error: sheet file not found: %s", c.Sheet)
		}
	}
	if c.Inventory != "" {
		if _, err := os.Stat(c.Inventory); os.IsNotExist(err) {
			return fmt.Errorf("config error: inventory file not found: %s", c.Inventory)
		}
	}

	return nil
}
