// Package multimc integrates with MultiMC.
package multimc

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/wilbur182/mcwarm/internal/launcher"
)

func init() {
	launcher.RegisterFactory(func() launcher.Launcher { return New() })
}

// Launcher locates MultiMC installs and instances.
type Launcher struct{}

func New() *Launcher {
	return &Launcher{}
}

func (l *Launcher) ID() string          { return "multimc" }
func (l *Launcher) DisplayName() string { return "MultiMC" }

func (l *Launcher) Roots() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	switch runtime.GOOS {
	case "windows":
		appdata := envOr("APPDATA", filepath.Join(home, "AppData", "Roaming"))
		return []string{filepath.Join(appdata, "MultiMC", "instances")}
	case "darwin":
		return []string{filepath.Join(home, "Library", "Application Support", "MultiMC", "instances")}
	}
	return []string{
		filepath.Join(home, ".local", "share", "MultiMC", "instances"),
		filepath.Join(home, "MultiMC", "instances"),
	}
}

func (l *Launcher) DetectExecutable() (string, error) {
	for _, name := range []string{"MultiMC", "multimc"} {
		if exe, err := exec.LookPath(name); err == nil {
			return exe, nil
		}
	}
	return "", launcher.ErrNotFound
}

// LaunchCommand starts the named instance directly.
func (l *Launcher) LaunchCommand(exe, instance string) []string {
	return []string{exe, "-l", instance}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
