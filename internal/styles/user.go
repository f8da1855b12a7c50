package styles

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// LoadUserThemes registers every *.json theme found in dir. Palette
// fields a file omits keep the default theme's colors. Files that fail
// to parse are skipped with a warning so one bad theme cannot keep the
// app from starting.
func LoadUserThemes(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return // no user themes
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("failed to read theme file", "path", path, "error", err)
			continue
		}
		// Unmarshal over the default palette so partial themes stay usable.
		theme := Theme{Colors: DefaultTheme.Colors}
		if err := json.Unmarshal(data, &theme); err != nil {
			slog.Warn("failed to parse theme file", "path", path, "error", err)
			continue
		}
		if theme.Name == "" {
			theme.Name = strings.TrimSuffix(entry.Name(), ".json")
		}
		if theme.DisplayName == "" {
			theme.DisplayName = theme.Name
		}
		RegisterTheme(theme)
	}
}
