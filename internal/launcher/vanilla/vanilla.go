// Package vanilla covers the stock Minecraft launcher's .minecraft
// directory. It contributes instance roots only; the vanilla launcher
// has no instance-targeting command line worth automating.
package vanilla

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/wilbur182/mcwarm/internal/launcher"
)

func init() {
	launcher.RegisterFactory(func() launcher.Launcher { return New() })
}

// Launcher locates the default .minecraft data directory.
type Launcher struct{}

func New() *Launcher {
	return &Launcher{}
}

func (l *Launcher) ID() string          { return "vanilla" }
func (l *Launcher) DisplayName() string { return "Minecraft" }

func (l *Launcher) Roots() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	switch runtime.GOOS {
	case "windows":
		appdata := envOr("APPDATA", filepath.Join(home, "AppData", "Roaming"))
		return []string{filepath.Join(appdata, ".minecraft")}
	case "darwin":
		return []string{filepath.Join(home, "Library", "Application Support", "minecraft")}
	}
	return []string{filepath.Join(home, ".minecraft")}
}

func (l *Launcher) DetectExecutable() (string, error) {
	return "", launcher.ErrNotFound
}

func (l *Launcher) LaunchCommand(exe, instance string) []string {
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
