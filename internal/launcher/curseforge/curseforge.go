// Package curseforge integrates with the CurseForge launcher (and the
// legacy Twitch app layout it inherited).
package curseforge

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

// Launcher locates CurseForge installs and instances.
type Launcher struct{}

func New() *Launcher {
	return &Launcher{}
}

func (l *Launcher) ID() string          { return "curseforge" }
func (l *Launcher) DisplayName() string { return "CurseForge" }

func (l *Launcher) Roots() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	switch runtime.GOOS {
	case "windows":
		profile := envOr("USERPROFILE", home)
		return []string{
			filepath.Join(profile, "Documents", "CurseForge", "Minecraft", "Instances"),
			filepath.Join(profile, "CurseForge", "Minecraft", "Instances"),
			filepath.Join(profile, "Twitch", "Minecraft", "Instances"),
		}
	case "darwin":
		return []string{
			filepath.Join(home, "Library", "Application Support", "CurseForge", "Minecraft", "Instances"),
			filepath.Join(home, "Documents", "CurseForge", "Minecraft", "Instances"),
		}
	}
	// No official CurseForge app on Linux; no conventional roots.
	return nil
}

func (l *Launcher) DetectExecutable() (string, error) {
	switch runtime.GOOS {
	case "windows":
		candidates := []string{
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Programs", "CurseForge", "CurseForge.exe"),
			filepath.Join(os.Getenv("PROGRAMFILES"), "CurseForge", "CurseForge.exe"),
		}
		for _, c := range candidates {
			if fileExists(c) {
				return c, nil
			}
		}
	case "darwin":
		home, _ := os.UserHomeDir()
		candidates := []string{
			"/Applications/CurseForge.app/Contents/MacOS/CurseForge",
			filepath.Join(home, "Applications", "CurseForge.app", "Contents", "MacOS", "CurseForge"),
		}
		for _, c := range candidates {
			if fileExists(c) {
				return c, nil
			}
		}
	default:
		// Some Linux users run it via wine wrappers under either name.
		for _, name := range []string{"curseforge", "CurseForge"} {
			if exe, err := exec.LookPath(name); err == nil {
				return exe, nil
			}
		}
	}
	return "", launcher.ErrNotFound
}

// LaunchCommand opens the CurseForge app; it cannot target a specific
// instance from the command line.
func (l *Launcher) LaunchCommand(exe, instance string) []string {
	return []string{exe}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
