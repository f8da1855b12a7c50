package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/wilbur182/mcwarm/internal/app"
	"github.com/wilbur182/mcwarm/internal/config"
	"github.com/wilbur182/mcwarm/internal/keymap"
	_ "github.com/wilbur182/mcwarm/internal/launcher/curseforge"
	_ "github.com/wilbur182/mcwarm/internal/launcher/multimc"
	_ "github.com/wilbur182/mcwarm/internal/launcher/prism"
	_ "github.com/wilbur182/mcwarm/internal/launcher/vanilla"
	"github.com/wilbur182/mcwarm/internal/styles"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	extraRoot    = flag.String("root", "", "extra instance root to scan")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("mcwarm version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	// Logging goes to stderr; the alternate screen owns stdout.
	logLevel := slog.LevelWarn
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "mcwarm needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *extraRoot != "" {
		root, err := filepath.Abs(*extraRoot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to resolve root: %v\n", err)
			os.Exit(1)
		}
		cfg.Warm.ExtraRoots = append(cfg.Warm.ExtraRoots, root)
	}

	// Themes before any styled output: user theme files first, then the
	// configured theme with its color overrides.
	styles.LoadUserThemes(filepath.Join(config.ConfigDir(), "themes"))
	styles.ApplyThemeWithOverrides(cfg.UI.Theme.Name, cfg.UI.Theme.Overrides)

	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)
	for key, cmdID := range cfg.Keymap.Overrides {
		km.SetUserOverride(key, cmdID)
	}

	model := app.New(cfg, km, effectiveVersion(Version))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}

	return "devel"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mcwarm [options]\n\n")
		fmt.Fprintf(os.Stderr, "A TUI that pre-warms the OS file cache for modded Minecraft instances.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
