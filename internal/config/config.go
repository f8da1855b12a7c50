package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Warm   WarmConfig   `json:"warm"`
	Launch LaunchConfig `json:"launch"`
	Keymap KeymapConfig `json:"keymap"`
	UI     UIConfig     `json:"ui"`
}

// WarmConfig configures warm sessions.
type WarmConfig struct {
	// BudgetGB caps how much a session may read, in gigabytes.
	// Fractional values are allowed.
	BudgetGB float64 `json:"budgetGB"`
	// ChunkSizeMiB is the per-read buffer size.
	ChunkSizeMiB int `json:"chunkSizeMiB"`
	// Patterns overrides the default glob set when non-empty.
	Patterns []string `json:"patterns,omitempty"`
	DryRun   bool     `json:"dryRun"`
	// ExtraRoots are user-added scan roots shown alongside detected
	// launcher roots.
	ExtraRoots []string `json:"extraRoots,omitempty"`
}

// LaunchConfig configures the post-warm launch action.
type LaunchConfig struct {
	AfterWarm bool `json:"afterWarm"`
	// Command overrides the detected launcher command. {instance} is
	// replaced with the instance directory name.
	Command string `json:"command,omitempty"`
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter bool        `json:"showFooter"`
	IntroSeen  bool        `json:"introSeen"`
	Theme      ThemeConfig `json:"theme"`
}

// ThemeConfig configures the color theme.
type ThemeConfig struct {
	Name      string            `json:"name"`
	Overrides map[string]string `json:"overrides"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Warm: WarmConfig{
			BudgetGB:     8.0,
			ChunkSizeMiB: 16,
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		UI: UIConfig{
			ShowFooter: true,
			Theme: ThemeConfig{
				Name:      "default",
				Overrides: make(map[string]string),
			},
		},
	}
}

// Validate normalizes out-of-range values back to their defaults.
func (c *Config) Validate() error {
	if c.Warm.BudgetGB < 0 {
		c.Warm.BudgetGB = 8.0
	}
	if c.Warm.ChunkSizeMiB <= 0 {
		c.Warm.ChunkSizeMiB = 16
	}
	if c.UI.Theme.Name == "" {
		c.UI.Theme.Name = "default"
	}
	if c.Keymap.Overrides == nil {
		c.Keymap.Overrides = make(map[string]string)
	}
	return nil
}

// ConfigDir returns the directory holding mcwarm's config files.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "mcwarm")
}

// ConfigPath returns the path of the main config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// Load reads the config from the default location. A missing file
// yields the defaults.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config from path. Defaults fill any fields the
// file does not set.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
