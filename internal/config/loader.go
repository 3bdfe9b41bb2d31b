package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".crawlctl"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .crawlctl configuration file.
// Every field is optional; unset fields keep their built-in defaults.
type File struct {
	// Python overrides the interpreter command.
	Python string `yaml:"python,omitempty"`

	// Pip overrides the package manager command.
	Pip string `yaml:"pip,omitempty"`

	// Manifest overrides the dependency manifest path.
	Manifest string `yaml:"manifest,omitempty"`

	// Schema overrides the schema file path.
	Schema string `yaml:"schema,omitempty"`

	// TestScript overrides the test script path.
	TestScript string `yaml:"testScript,omitempty"`

	// ProbeTimeout overrides the connectivity probe timeout.
	// Uses Go duration syntax (e.g. "10s", "1m").
	ProbeTimeout string `yaml:"probeTimeout,omitempty"`

	// DataDir overrides the history database directory.
	DataDir string `yaml:"dataDir,omitempty"`
}

// Apply copies the file's non-empty values onto the config.
// Flag values are applied after the file by the commands, so the effective
// precedence is flags over file over defaults.
func (f *File) Apply(cfg *Config) error {
	if f.Python != "" {
		cfg.PythonCommand = f.Python
	}
	if f.Pip != "" {
		cfg.PipCommand = f.Pip
	}
	if f.Manifest != "" {
		cfg.ManifestPath = f.Manifest
	}
	if f.Schema != "" {
		cfg.SchemaPath = f.Schema
	}
	if f.TestScript != "" {
		cfg.TestScript = f.TestScript
	}
	if f.ProbeTimeout != "" {
		d, err := time.ParseDuration(f.ProbeTimeout)
		if err != nil {
			return fmt.Errorf("invalid probeTimeout %q: %w", f.ProbeTimeout, err)
		}
		cfg.ProbeTimeout = d
	}
	if f.DataDir != "" {
		cfg.DBDir = f.DataDir
	}
	return nil
}

// LoadConfigFile loads overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .crawlctl in the current directory
// 3. Look for .crawlctl in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
