// Package config handles application configuration and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// DirName is the name of the worktime directory under the home dir.
	DirName = ".worktime"

	// DataDirName is the durable-tier directory within the worktime dir.
	DataDirName = "data"

	// ConfigFileName is the application config file.
	ConfigFileName = "config.yaml"

	// DBFileName is the SQLite database used by the sqlite backend.
	DBFileName = "worktime.db"
)

// Dir returns the path to the worktime directory (~/.worktime).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DirName), nil
}

// File returns the path to the config.yaml file.
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// DefaultDataDir returns the default durable-tier directory.
func DefaultDataDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DataDirName), nil
}
