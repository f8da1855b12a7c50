// Package scan discovers warmable files inside modded-Minecraft
// instance directories: it classifies noise directories, enumerates
// files matching a pattern set, and lists instance folders under a
// launcher root.
package scan

import (
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DefaultPatterns covers the file types that dominate modded-game
// startup: mod archives, structured configs, and the assets referenced
// first.
var DefaultPatterns = []string{
	"*.jar", "*.zip", "*.json", "*.cfg", "*.toml", "*.ini",
	"*.mixins.json", "*.mcmeta", "*.png", "*.jpg", "*.ogg", "*.wav", "*.txt",
}

// Candidate is a file discovered under an instance root. Size is
// filled in at rank time and re-checked at warm time; it may go stale
// between discovery and read, which is an accepted race.
type Candidate struct {
	Path string
	Size int64
}

// Enumerate walks root once and returns every regular file matching
// any of the patterns, excluding anything under a skip directory and
// collapsing duplicate resolved paths to a single candidate. Matching
// is against the base name, case-insensitive. Unreadable entries are
// dropped individually; Enumerate itself never fails.
func Enumerate(root string, patterns []string) []Candidate {
	abs, err := filepath.Abs(root)
	if err != nil {
		slog.Debug("enumerate: unusable root", "root", root, "error", err)
		return nil
	}
	if hasSkipSegment(abs) {
		// A root inside a skip directory can never yield candidates.
		return nil
	}

	lowered := make([]string, len(patterns))
	for i, pat := range patterns {
		lowered[i] = strings.ToLower(pat)
	}

	seen := make(map[string]bool)
	var out []Candidate
	_ = filepath.WalkDir(abs, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil // skip unreadable entries, keep walking
		}
		if d.IsDir() {
			if p != abs && IsSkipDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if !matchAny(lowered, d.Name()) {
			return nil
		}
		if !d.Type().IsRegular() {
			// Follow symlinks so a linked jar still counts as a file.
			info, err := os.Stat(p)
			if err != nil || !info.Mode().IsRegular() {
				return nil
			}
		}
		key := identity(p)
		if seen[key] {
			return nil
		}
		seen[key] = true
		out = append(out, Candidate{Path: p})
		return nil
	})
	return out
}

// ListInstances returns root's immediate subdirectories that look like
// game instances, in name order. An unreadable root degrades to an
// empty list rather than an error.
func ListInstances(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		slog.Warn("cannot list instances", "root", root, "error", err)
		return nil
	}
	var out []string
	for _, entry := range entries {
		p := filepath.Join(root, entry.Name())
		if !entry.IsDir() {
			if entry.Type()&fs.ModeSymlink == 0 {
				continue
			}
			info, err := os.Stat(p)
			if err != nil || !info.IsDir() {
				continue
			}
		}
		if LooksLikeInstance(p) {
			out = append(out, p)
		}
	}
	return out
}

// identity is the deduplication key for a candidate: the
// symlink-resolved path when resolvable, otherwise the cleaned path.
func identity(p string) string {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	return filepath.Clean(p)
}

func matchAny(lowered []string, name string) bool {
	n := strings.ToLower(name)
	for _, pat := range lowered {
		if ok, _ := path.Match(pat, n); ok {
			return true
		}
	}
	return false
}

func hasSkipSegment(p string) bool {
	for _, seg := range strings.Split(p, string(os.PathSeparator)) {
		if IsSkipDir(seg) {
			return true
		}
	}
	return false
}
