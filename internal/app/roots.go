package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wilbur182/mcwarm/internal/launcher"
	"github.com/wilbur182/mcwarm/internal/scan"
)

// instanceEntry is one selectable warm target in the instances pane.
type instanceEntry struct {
	Name     string // display name; "." when the root itself is the instance
	Path     string
	Selected bool
}

// collectRoots merges detected launcher roots with user-added extras,
// deduplicated by resolved identity. Extras keep their position after
// the detected roots and are included even when currently missing, so
// a remembered root on an unplugged drive still shows up.
func collectRoots(extras []string) []string {
	roots := launcher.InstanceRoots()
	seen := make(map[string]bool, len(roots))
	for _, r := range roots {
		seen[r] = true
	}
	for _, extra := range extras {
		resolved, err := filepath.EvalSymlinks(extra)
		if err != nil {
			resolved = filepath.Clean(extra)
		}
		if seen[resolved] {
			continue
		}
		seen[resolved] = true
		roots = append(roots, resolved)
	}
	return roots
}

// buildInstanceEntries lists the warm targets under root: the root
// itself (as ".") when it looks like an instance, then its instance
// subdirectories in name order.
func buildInstanceEntries(root string) []instanceEntry {
	var entries []instanceEntry
	if scan.LooksLikeInstance(root) {
		entries = append(entries, instanceEntry{Name: ".", Path: root})
	}
	for _, dir := range scan.ListInstances(root) {
		entries = append(entries, instanceEntry{Name: instanceDisplayName(dir), Path: dir})
	}
	return entries
}

// instanceDisplayName returns the name shown in the instances pane.
// Bare ".minecraft" directories are ambiguous across launchers, so
// those get the full path appended.
func instanceDisplayName(dir string) string {
	name := filepath.Base(dir)
	switch strings.ToLower(name) {
	case ".minecraft", "minecraft":
		return fmt.Sprintf("%s  %s", name, dir)
	}
	return name
}

// rootMissing reports whether a remembered root is not currently an
// existing directory.
func rootMissing(root string) bool {
	info, err := os.Stat(root)
	return err != nil || !info.IsDir()
}

// selectedPaths returns the paths of all selected entries in order.
func selectedPaths(entries []instanceEntry) []string {
	var out []string
	for _, e := range entries {
		if e.Selected {
			out = append(out, e.Path)
		}
	}
	return out
}

// keepSelections carries selection state from old entries to new ones
// after a refresh, matched by path.
func keepSelections(old, fresh []instanceEntry) []instanceEntry {
	selected := make(map[string]bool, len(old))
	for _, e := range old {
		if e.Selected {
			selected[e.Path] = true
		}
	}
	for i := range fresh {
		fresh[i].Selected = selected[fresh[i].Path]
	}
	return fresh
}
