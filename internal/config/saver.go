package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Save writes the config to ~/.config/mcwarm/config.json
func Save(cfg *Config) error {
	return SaveTo(cfg, ConfigPath())
}

// SaveTo writes the config to path, creating parent directories.
func SaveTo(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SaveTheme updates only the theme name in config and saves.
func SaveTheme(themeName string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.UI.Theme.Name = themeName
	cfg.UI.Theme.Overrides = make(map[string]string)
	return Save(cfg)
}

// SaveThemeWithOverrides saves a theme name and full overrides map to config.
func SaveThemeWithOverrides(themeName string, overrides map[string]string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.UI.Theme.Name = themeName
	cfg.UI.Theme.Overrides = overrides
	return Save(cfg)
}

// SaveWarmOptions persists the warm options the user last used.
func SaveWarmOptions(budgetGB float64, dryRun, afterWarm bool) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.Warm.BudgetGB = budgetGB
	cfg.Warm.DryRun = dryRun
	cfg.Launch.AfterWarm = afterWarm
	return Save(cfg)
}

// SaveExtraRoots persists the user-added scan roots.
func SaveExtraRoots(roots []string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.Warm.ExtraRoots = roots
	return Save(cfg)
}

// SaveIntroSeen records that the first-run intro was shown.
func SaveIntroSeen() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.UI.IntroSeen = true
	return Save(cfg)
}
