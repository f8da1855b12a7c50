// Package prism integrates with Prism Launcher.
package prism

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

// Launcher locates Prism Launcher installs and instances.
type Launcher struct{}

func New() *Launcher {
	return &Launcher{}
}

func (l *Launcher) ID() string          { return "prism" }
func (l *Launcher) DisplayName() string { return "Prism Launcher" }

func (l *Launcher) Roots() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	switch runtime.GOOS {
	case "windows":
		appdata := envOr("APPDATA", filepath.Join(home, "AppData", "Roaming"))
		return []string{filepath.Join(appdata, "PrismLauncher", "instances")}
	case "darwin":
		return []string{filepath.Join(home, "Library", "Application Support", "PrismLauncher", "instances")}
	}
	return []string{
		filepath.Join(home, ".local", "share", "PrismLauncher", "instances"),
		filepath.Join(home, "PrismLauncher", "instances"),
	}
}

func (l *Launcher) DetectExecutable() (string, error) {
	if exe, err := exec.LookPath("prismlauncher"); err == nil {
		return exe, nil
	}
	if runtime.GOOS == "darwin" {
		bundle := "/Applications/PrismLauncher.app/Contents/MacOS/prismlauncher"
		if info, err := os.Stat(bundle); err == nil && !info.IsDir() {
			return bundle, nil
		}
	}
	return "", launcher.ErrNotFound
}

// LaunchCommand starts the named instance directly.
func (l *Launcher) LaunchCommand(exe, instance string) []string {
	return []string{exe, "--launch", instance}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
