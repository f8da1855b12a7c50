package launcher

import (
	"os"
	"path/filepath"
)

// InstanceRoots returns every registered launcher root that exists as
// a directory, resolved and deduplicated by resolved identity, in
// registration order.
func InstanceRoots() []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range All() {
		for _, root := range l.Roots() {
			info, err := os.Stat(root)
			if err != nil || !info.IsDir() {
				continue
			}
			resolved, err := filepath.EvalSymlinks(root)
			if err != nil {
				resolved = filepath.Clean(root)
			}
			if seen[resolved] {
				continue
			}
			seen[resolved] = true
			out = append(out, resolved)
		}
	}
	return out
}
