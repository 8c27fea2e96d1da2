// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the ellie TUI.
//
// The backend base address is resolved once at startup and is fixed for the
// process lifetime (no hot-reload). Resolution order, highest priority
// first:
//   - ELLIE_BACKEND_URL environment variable
//   - a config value injected via SetGlobal (or found in the config file)
//   - the built-in default
//
// Config file locations (in order of precedence):
//   - ~/.ellie/config.toml
//   - ~/.ellie/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// DefaultBackendURL is the hardcoded fallback backend address.
const DefaultBackendURL = "http://localhost:8000"

// DefaultRequestTimeoutSecs bounds each backend call. The client makes a
// single attempt per user action, so this is the only knob.
const DefaultRequestTimeoutSecs = 30

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete ellie TUI configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Backend configuration
	Backend BackendConfig `toml:"backend" json:"backend"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`
}

// BackendConfig describes how to reach the Ellie backend service.
type BackendConfig struct {
	// BaseURL is the backend base address, e.g. "http://localhost:8000".
	// All calls go to {BaseURL}/api/...
	BaseURL string `toml:"base_url" json:"base_url"`
	// RequestTimeoutSecs is the per-request timeout in seconds.
	RequestTimeoutSecs int `toml:"request_timeout_secs" json:"request_timeout_secs"`
}

// UIConfig contains presentation knobs.
type UIConfig struct {
	// ShowTypingTimer displays elapsed seconds next to the typing indicator.
	ShowTypingTimer bool `toml:"show_typing_timer" json:"show_typing_timer"`
	// Greeting overrides the opening message shown when there is no
	// history. Empty means the built-in greeting.
	Greeting string `toml:"greeting" json:"greeting"`
}

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Backend: BackendConfig{
			BaseURL:            DefaultBackendURL,
			RequestTimeoutSecs: DefaultRequestTimeoutSecs,
		},
		UI: UIConfig{
			ShowTypingTimer: true,
		},
	}
}

// =============================================================================
// FILE LOCATIONS
// =============================================================================

// ConfigDir returns the ellie configuration directory (~/.ellie).
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".ellie"), nil
}

// ConfigPathTOML returns the TOML config file path.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the JSON config file path.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last, then the result is validated.
func Load() (*Config, error) {
	cfg := Default()

	if path, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
			return finish(cfg)
		}
	}

	if path, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadJSON(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load JSON config: %w", err)
			}
			return finish(cfg)
		}
	}

	return finish(cfg)
}

// finish applies env overrides, fills defaults, and validates.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - ELLIE_BACKEND_URL: overrides backend.base_url
//   - ELLIE_TIMEOUT_SECS: overrides backend.request_timeout_secs
func (c *Config) ApplyEnvOverrides() {
	if base := os.Getenv("ELLIE_BACKEND_URL"); base != "" {
		c.Backend.BaseURL = base
	}

	if timeout := os.Getenv("ELLIE_TIMEOUT_SECS"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil && secs > 0 {
			c.Backend.RequestTimeoutSecs = secs
		}
	}
}

// =============================================================================
// DEFAULTS AND VALIDATION
// =============================================================================

// SetDefaults fills in zero-valued fields with built-in defaults.
func (c *Config) SetDefaults() {
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = DefaultBackendURL
	}
	if c.Backend.RequestTimeoutSecs <= 0 {
		c.Backend.RequestTimeoutSecs = DefaultRequestTimeoutSecs
	}
	// Trailing slashes would double up against /api/... paths.
	c.Backend.BaseURL = strings.TrimSuffix(c.Backend.BaseURL, "/")
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil {
		return fmt.Errorf("backend.base_url is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend.base_url must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("backend.base_url has no host: %q", c.Backend.BaseURL)
	}
	return nil
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig   *Config
	globalConfigMu sync.RWMutex
)

// Global returns the global configuration instance, loading it on first
// access. A configuration injected earlier via SetGlobal wins over file and
// default resolution. Thread-safe.
func Global() *Config {
	globalConfigMu.RLock()
	cfg := globalConfig
	globalConfigMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// SetGlobal injects a configuration instance, overriding file and default
// resolution. Env vars still win: Load applies them before the composition
// root calls this. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
}
