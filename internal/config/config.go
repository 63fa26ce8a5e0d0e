// Package config provides configuration management.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"margin-optimizer/internal/errors"
	"margin-optimizer/internal/logging"
)

// EnvBackendURL overrides the configured backend URL when set.
const EnvBackendURL = "MARGIN_OPTIMIZER_BACKEND"

// Config is the main application configuration
type Config struct {
	// Backend contains backend API settings
	Backend BackendConfig

	// Output contains output configuration
	Output OutputConfig

	// Autocomplete contains vendor-autocomplete settings
	Autocomplete AutocompleteConfig

	// Logging contains logging configuration
	Logging logging.Config
}

// BackendConfig contains backend API settings
type BackendConfig struct {
	// URL is the base URL of the margin-optimizer backend
	URL string `hcl:"url,optional"`

	// TimeoutSeconds bounds each API call
	TimeoutSeconds int `hcl:"timeout_seconds,optional"`
}

// Timeout returns the request timeout as a duration
func (b BackendConfig) Timeout() time.Duration {
	if b.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// NoColor disables ANSI colors
	NoColor bool `hcl:"no_color,optional"`

	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `hcl:"format,optional"`
}

// AutocompleteConfig contains vendor-autocomplete settings
type AutocompleteConfig struct {
	// DebounceMS is the trailing-edge debounce delay in milliseconds
	DebounceMS int `hcl:"debounce_ms,optional"`

	// MinChars is the minimum trimmed input length before lookups fire
	MinChars int `hcl:"min_chars,optional"`
}

// Debounce returns the debounce delay as a duration
func (a AutocompleteConfig) Debounce() time.Duration {
	if a.DebounceMS <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(a.DebounceMS) * time.Millisecond
}

// fileConfig is the HCL file schema; blocks are optional overlays on Default.
type fileConfig struct {
	Backend      *BackendConfig      `hcl:"backend,block"`
	Output       *OutputConfig       `hcl:"output,block"`
	Autocomplete *AutocompleteConfig `hcl:"autocomplete,block"`
	Logging      *logging.Config     `hcl:"logging,block"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			URL:            "http://localhost:5000",
			TimeoutSeconds: 30,
		},
		Output: OutputConfig{
			NoColor:       false,
			DefaultFormat: "cli",
		},
		Autocomplete: AutocompleteConfig{
			DebounceMS: 300,
			MinChars:   2,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".margin-optimizer", "config.hcl")
}

// Load loads configuration from an HCL file, falling back to defaults when
// the file does not exist. The backend URL env override applies last.
func Load(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); err == nil {
		var file fileConfig
		if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
			return nil, errors.Config("failed to parse config file", err).WithContext("path", path)
		}
		if file.Backend != nil {
			if file.Backend.URL != "" {
				config.Backend.URL = file.Backend.URL
			}
			if file.Backend.TimeoutSeconds > 0 {
				config.Backend.TimeoutSeconds = file.Backend.TimeoutSeconds
			}
		}
		if file.Output != nil {
			config.Output = *file.Output
			if config.Output.DefaultFormat == "" {
				config.Output.DefaultFormat = "cli"
			}
		}
		if file.Autocomplete != nil {
			if file.Autocomplete.DebounceMS > 0 {
				config.Autocomplete.DebounceMS = file.Autocomplete.DebounceMS
			}
			if file.Autocomplete.MinChars > 0 {
				config.Autocomplete.MinChars = file.Autocomplete.MinChars
			}
		}
		if file.Logging != nil {
			if file.Logging.Level != "" {
				config.Logging.Level = file.Logging.Level
			}
			if file.Logging.Format != "" {
				config.Logging.Format = file.Logging.Format
			}
			config.Logging.Development = file.Logging.Development
		}
	}

	if url := os.Getenv(EnvBackendURL); url != "" {
		config.Backend.URL = url
	}

	return config, nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
