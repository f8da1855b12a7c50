package warm

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wilbur182/mcwarm/internal/scan"
)

// class buckets a file by how much warming it helps startup: bulk code
// archives first, then secondary archives, structured config, media,
// everything else. Suffix match is case-insensitive.
func class(name string) int {
	n := strings.ToLower(name)
	switch {
	case strings.HasSuffix(n, ".jar"):
		return 0
	case strings.HasSuffix(n, ".zip"):
		return 1
	case strings.HasSuffix(n, ".json"), strings.HasSuffix(n, ".toml"),
		strings.HasSuffix(n, ".cfg"), strings.HasSuffix(n, ".ini"):
		return 2
	case strings.HasSuffix(n, ".png"), strings.HasSuffix(n, ".ogg"),
		strings.HasSuffix(n, ".wav"):
		return 3
	default:
		return 4
	}
}

// Rank orders candidates for warming: class ascending, size descending
// within a class. The sort is stable, so candidates with equal keys
// keep their input order. Sizes are stat'ed here; a file that cannot
// be stat'ed ranks as empty and stays in the list so the warm loop can
// report it.
func Rank(candidates []scan.Candidate) []scan.Candidate {
	ranked := make([]scan.Candidate, len(candidates))
	copy(ranked, candidates)
	for i := range ranked {
		if info, err := os.Stat(ranked[i].Path); err == nil {
			ranked[i].Size = info.Size()
		} else {
			ranked[i].Size = 0
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		ci := class(filepath.Base(ranked[i].Path))
		cj := class(filepath.Base(ranked[j].Path))
		if ci != cj {
			return ci < cj
		}
		return ranked[i].Size > ranked[j].Size
	})
	return ranked
}
