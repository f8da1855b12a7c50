package scan

import (
	"os"
	"path/filepath"
)

// skipDirNames are directory names whose contents never matter for
// startup: VCS metadata, build caches, editor state, logs, crash
// reports, screenshots, shader caches.
var skipDirNames = map[string]bool{
	".git":          true,
	".gradle":       true,
	".idea":         true,
	"logs":          true,
	"crash-reports": true,
	"screenshots":   true,
	"shaderpacks":   true,
}

// instanceMarkers identify a directory as a game instance when any of
// them exists directly inside it.
var instanceMarkers = []string{"mods", "config", "resourcepacks", ".minecraft"}

// IsSkipDir reports whether name is a known noise directory.
func IsSkipDir(name string) bool {
	return skipDirNames[name]
}

// LooksLikeInstance reports whether dir directly contains at least one
// recognized instance marker entry. Existence checks only, no content
// inspection.
func LooksLikeInstance(dir string) bool {
	for _, marker := range instanceMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
