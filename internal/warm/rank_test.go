package warm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wilbur182/mcwarm/internal/scan"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestClass(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"mod.jar", 0},
		{"MOD.JAR", 0},
		{"pack.zip", 1},
		{"settings.json", 2},
		{"mod.mixins.json", 2},
		{"server.toml", 2},
		{"legacy.cfg", 2},
		{"options.ini", 2},
		{"texture.png", 3},
		{"music.ogg", 3},
		{"click.wav", 3},
		{"readme.txt", 4},
		{"pack.mcmeta", 4},
		{"photo.jpg", 4},
	}
	for _, tt := range tests {
		if got := class(tt.name); got != tt.want {
			t.Errorf("class(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestRank_ClassBeforeSize(t *testing.T) {
	// A huge texture still warms after a tiny jar.
	root := t.TempDir()
	jar := filepath.Join(root, "tiny.jar")
	png := filepath.Join(root, "huge.png")
	writeFile(t, jar, 10)
	writeFile(t, png, 10000)

	ranked := Rank([]scan.Candidate{{Path: png}, {Path: jar}})
	if ranked[0].Path != jar || ranked[1].Path != png {
		t.Errorf("Rank order = %v, want jar before png", ranked)
	}
}

func TestRank_SizeDescendingWithinClass(t *testing.T) {
	root := t.TempDir()
	small := filepath.Join(root, "small.jar")
	big := filepath.Join(root, "big.jar")
	mid := filepath.Join(root, "mid.jar")
	writeFile(t, small, 10)
	writeFile(t, big, 300)
	writeFile(t, mid, 100)

	ranked := Rank([]scan.Candidate{{Path: small}, {Path: big}, {Path: mid}})
	want := []string{big, mid, small}
	for i := range want {
		if ranked[i].Path != want[i] {
			t.Errorf("Rank[%d] = %q, want %q", i, ranked[i].Path, want[i])
		}
	}
}

func TestRank_StableOnEqualKeys(t *testing.T) {
	root := t.TempDir()
	var cands []scan.Candidate
	names := []string{"a.jar", "b.jar", "c.jar", "d.jar"}
	for _, n := range names {
		p := filepath.Join(root, n)
		writeFile(t, p, 42)
		cands = append(cands, scan.Candidate{Path: p})
	}

	once := Rank(cands)
	twice := Rank(once)
	for i := range once {
		if filepath.Base(once[i].Path) != names[i] {
			t.Errorf("Rank[%d] = %q, want input order preserved", i, once[i].Path)
		}
		if twice[i].Path != once[i].Path {
			t.Errorf("re-rank changed order at %d: %q vs %q", i, twice[i].Path, once[i].Path)
		}
	}
}

func TestRank_ScenarioJarThenToml(t *testing.T) {
	root := t.TempDir()
	jar := filepath.Join(root, "mods", "A.jar")
	toml := filepath.Join(root, "config", "b.toml")
	writeFile(t, jar, 10*1024*1024)
	writeFile(t, toml, 1024)

	ranked := Rank([]scan.Candidate{{Path: toml}, {Path: jar}})
	if ranked[0].Path != jar || ranked[1].Path != toml {
		t.Errorf("Rank = %v, want [A.jar, b.toml]", ranked)
	}
	if ranked[0].Size != 10*1024*1024 {
		t.Errorf("ranked jar size = %d, want stat'ed size", ranked[0].Size)
	}
}

func TestRank_MissingFileRanksEmpty(t *testing.T) {
	root := t.TempDir()
	present := filepath.Join(root, "real.jar")
	writeFile(t, present, 100)
	gone := filepath.Join(root, "gone.jar")

	ranked := Rank([]scan.Candidate{{Path: gone}, {Path: present}})
	if len(ranked) != 2 {
		t.Fatalf("Rank dropped a candidate: %v", ranked)
	}
	if ranked[0].Path != present {
		t.Errorf("Rank[0] = %q, want the stat-able file first (size 100 > 0)", ranked[0].Path)
	}
	if ranked[1].Size != 0 {
		t.Errorf("missing file size = %d, want 0", ranked[1].Size)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a.png")
	b := filepath.Join(root, "b.jar")
	writeFile(t, a, 10)
	writeFile(t, b, 10)

	in := []scan.Candidate{{Path: a}, {Path: b}}
	Rank(in)
	if in[0].Path != a || in[1].Path != b {
		t.Error("Rank reordered its input slice")
	}
}
