package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Durable tier backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the application configuration stored at ~/.worktime/config.yaml.
type Config struct {
	// DataDir overrides the durable-tier location; empty means
	// ~/.worktime/data.
	DataDir string `yaml:"data_dir"`
	// Backend selects the durable tier implementation: "file" or "sqlite".
	Backend string `yaml:"backend"`
	// Holidays toggles the Japanese public-holiday labels in calendar
	// views and CSV exports.
	Holidays bool `yaml:"holidays"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{Backend: BackendFile, Holidays: true}
}

// LoadFrom reads a config file from an explicit path, falling back to
// defaults when it is absent. Fields missing from the file keep their
// default values.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Backend != BackendFile && cfg.Backend != BackendSQLite {
		return nil, fmt.Errorf("unknown backend %q (expected %q or %q)", cfg.Backend, BackendFile, BackendSQLite)
	}
	return cfg, nil
}

// Init loads the config and, on first run, writes the defaults to disk so
// users have a file to edit.
func Init() (*Config, error) {
	path, err := File()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Save writes the config file, creating its directory if needed.
func Save(cfg *Config) error {
	path, err := File()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes a config file to an explicit path.
func SaveTo(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ResolvedDataDir returns the durable-tier directory, applying the default
// when no override is configured.
func (c *Config) ResolvedDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	return DefaultDataDir()
}

// DBFile returns the SQLite database path for the sqlite backend.
func (c *Config) DBFile() (string, error) {
	dir, err := c.ResolvedDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DBFileName), nil
}
