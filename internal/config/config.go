// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for mentionctx.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jdarrow/mentionctx/internal/mention"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete mentionctx configuration.
type Config struct {
	// Workspace settings
	Workspace WorkspaceConfig `toml:"workspace"`

	// Mentions holds the engine budget knobs
	Mentions MentionsConfig `toml:"mentions"`

	// Output controls CLI presentation
	Output OutputConfig `toml:"output"`
}

// WorkspaceConfig contains workspace root configuration.
type WorkspaceConfig struct {
	// Root is the default workspace root for mention resolution.
	// Empty means the current working directory.
	Root string `toml:"root"`
}

// MentionsConfig contains the engine budget configuration.
//
// The defaults are load-bearing: existing callers depend on the exact cap
// values and on the skip-reason wording derived from them. Change them only
// for deployments that own both ends.
type MentionsConfig struct {
	// MaxFiles is the maximum number of @file references loaded per message.
	MaxFiles int `toml:"max_files"`
	// MaxFileBytes is the largest single file that will be read.
	MaxFileBytes int64 `toml:"max_file_bytes"`
	// MaxFileChars is the per-file retained character cap.
	MaxFileChars int `toml:"max_file_chars"`
	// MaxTotalChars is the cumulative retained character cap per message.
	MaxTotalChars int `toml:"max_total_chars"`
}

// OutputConfig contains CLI output configuration.
type OutputConfig struct {
	// Color controls colored output: "auto", "always", or "never".
	Color string `toml:"color"`
	// Preview renders the composed message as markdown when stdout is a TTY.
	Preview bool `toml:"preview"`
	// Wrap is the preview word-wrap column (0 = terminal width).
	Wrap int `toml:"wrap"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Workspace: WorkspaceConfig{
			Root: "",
		},
		Mentions: MentionsConfig{
			MaxFiles:      mention.DefaultMaxFiles,
			MaxFileBytes:  mention.DefaultMaxFileBytes,
			MaxFileChars:  mention.DefaultMaxFileChars,
			MaxTotalChars: mention.DefaultMaxTotalChars,
		},
		Output: OutputConfig{
			Color:   "auto",
			Preview: false,
			Wrap:    0,
		},
	}
}

// Limits converts the mention configuration into engine limits.
func (c *Config) Limits() mention.Limits {
	return mention.Limits{
		MaxFiles:      c.Mentions.MaxFiles,
		MaxFileBytes:  c.Mentions.MaxFileBytes,
		MaxFileChars:  c.Mentions.MaxFileChars,
		MaxTotalChars: c.Mentions.MaxTotalChars,
	}
}

// =============================================================================
// FILE LOCATIONS
// =============================================================================

// ConfigDir returns the mentionctx configuration directory (~/.mentionctx).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".mentionctx"), nil
}

// ConfigPath returns the path of the TOML configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir creates the configuration directory if needed.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration file (when present), applies environment
// overrides, validates, and returns the result. A missing file is not an
// error; defaults apply.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if _, decErr := toml.DecodeFile(path, cfg); decErr != nil {
				return nil, fmt.Errorf("parse %s: %w", path, decErr)
			}
		}
	}

	applyEnvOverrides(cfg)
	cfg.Validate()
	return cfg, nil
}

// LoadFile reads configuration from an explicit file path, applying env
// overrides and validation the same way Load does.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyEnvOverrides(cfg)
	cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to ~/.mentionctx/config.toml with owner-only
// permissions.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// applyEnvOverrides applies MENTIONCTX_* environment variables on top of the
// loaded configuration. Unparseable numeric values are ignored.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MENTIONCTX_WORKSPACE_ROOT"); v != "" {
		cfg.Workspace.Root = v
	}
	if v := os.Getenv("MENTIONCTX_COLOR"); v != "" {
		cfg.Output.Color = v
	}
	if v, ok := envInt("MENTIONCTX_MAX_FILES"); ok {
		cfg.Mentions.MaxFiles = v
	}
	if v, ok := envInt64("MENTIONCTX_MAX_FILE_BYTES"); ok {
		cfg.Mentions.MaxFileBytes = v
	}
	if v, ok := envInt("MENTIONCTX_MAX_FILE_CHARS"); ok {
		cfg.Mentions.MaxFileChars = v
	}
	if v, ok := envInt("MENTIONCTX_MAX_TOTAL_CHARS"); ok {
		cfg.Mentions.MaxTotalChars = v
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envInt64(key string) (int64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate clamps out-of-range values back to their defaults and returns a
// description of each correction.
func (c *Config) Validate() []string {
	var fixes []string
	def := Default()

	if c.Mentions.MaxFiles <= 0 {
		c.Mentions.MaxFiles = def.Mentions.MaxFiles
		fixes = append(fixes, "mentions.max_files reset to default")
	}
	if c.Mentions.MaxFileBytes <= 0 {
		c.Mentions.MaxFileBytes = def.Mentions.MaxFileBytes
		fixes = append(fixes, "mentions.max_file_bytes reset to default")
	}
	if c.Mentions.MaxFileChars <= 0 {
		c.Mentions.MaxFileChars = def.Mentions.MaxFileChars
		fixes = append(fixes, "mentions.max_file_chars reset to default")
	}
	if c.Mentions.MaxTotalChars <= 0 {
		c.Mentions.MaxTotalChars = def.Mentions.MaxTotalChars
		fixes = append(fixes, "mentions.max_total_chars reset to default")
	}

	switch strings.ToLower(c.Output.Color) {
	case "auto", "always", "never":
		c.Output.Color = strings.ToLower(c.Output.Color)
	default:
		c.Output.Color = "auto"
		fixes = append(fixes, "output.color reset to auto")
	}
	if c.Output.Wrap < 0 {
		c.Output.Wrap = 0
		fixes = append(fixes, "output.wrap reset to 0")
	}

	return fixes
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	current   *Config
	currentMu sync.RWMutex
)

// Current returns the process-wide configuration, loading it on first use.
func Current() *Config {
	currentMu.RLock()
	if current != nil {
		defer currentMu.RUnlock()
		return current
	}
	currentMu.RUnlock()

	cfg, err := Load()
	if err != nil {
		cfg = Default()
	}
	SetCurrent(cfg)
	return cfg
}

// SetCurrent replaces the process-wide configuration.
func SetCurrent(cfg *Config) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = cfg
}
