package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuildInstanceEntries(t *testing.T) {
	root := t.TempDir()

	// The root itself looks like an instance and holds two more.
	if err := os.MkdirAll(filepath.Join(root, "config"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"PackA", "PackB"} {
		if err := os.MkdirAll(filepath.Join(root, name, "mods"), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	// A directory without markers is not an instance.
	if err := os.MkdirAll(filepath.Join(root, "downloads"), 0o755); err != nil {
		t.Fatal(err)
	}

	entries := buildInstanceEntries(root)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3: %+v", len(entries), entries)
	}
	if entries[0].Name != "." || entries[0].Path != root {
		t.Errorf("first entry should be the root itself, got %+v", entries[0])
	}
	if entries[1].Name != "PackA" || entries[2].Name != "PackB" {
		t.Errorf("instance entries out of order: %+v", entries[1:])
	}
}

func TestBuildInstanceEntries_PlainRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "OnlyPack", "resourcepacks"), 0o755); err != nil {
		t.Fatal(err)
	}

	entries := buildInstanceEntries(root)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Name == "." {
		t.Error("a root without markers should not list itself")
	}
}

func TestInstanceDisplayName(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{"/roots/prism/AllTheMods", "AllTheMods"},
		{"/launcher/.minecraft", ".minecraft  /launcher/.minecraft"},
		{"/launcher/Minecraft", "Minecraft  /launcher/Minecraft"},
	}
	for _, tt := range tests {
		if got := instanceDisplayName(tt.dir); got != tt.want {
			t.Errorf("instanceDisplayName(%q) = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestCollectRoots_Extras(t *testing.T) {
	tmp := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmp)
	if err != nil {
		resolved = filepath.Clean(tmp)
	}

	roots := collectRoots([]string{tmp, tmp, "/no/such/mcwarm/root"})

	count := 0
	for _, r := range roots {
		if r == resolved {
			count++
		}
	}
	if count != 1 {
		t.Errorf("extra root appears %d times, want once", count)
	}

	found := false
	for _, r := range roots {
		if r == "/no/such/mcwarm/root" {
			found = true
		}
	}
	if !found {
		t.Error("a remembered root that is currently missing should still be listed")
	}
}

func TestRootMissing(t *testing.T) {
	if rootMissing(t.TempDir()) {
		t.Error("an existing directory is not missing")
	}
	if !rootMissing("/no/such/mcwarm/root") {
		t.Error("a nonexistent path is missing")
	}
}

func TestKeepSelections(t *testing.T) {
	old := []instanceEntry{
		{Name: "a", Path: "/r/a", Selected: true},
		{Name: "b", Path: "/r/b"},
		{Name: "gone", Path: "/r/gone", Selected: true},
	}
	fresh := []instanceEntry{
		{Name: "a", Path: "/r/a"},
		{Name: "b", Path: "/r/b"},
		{Name: "new", Path: "/r/new"},
	}

	merged := keepSelections(old, fresh)
	if !merged[0].Selected {
		t.Error("selection on a surviving entry should carry over")
	}
	if merged[1].Selected || merged[2].Selected {
		t.Error("unselected and new entries should stay unselected")
	}
}

func TestSelectedPaths(t *testing.T) {
	entries := []instanceEntry{
		{Path: "/r/a", Selected: true},
		{Path: "/r/b"},
		{Path: "/r/c", Selected: true},
	}
	got := selectedPaths(entries)
	if len(got) != 2 || got[0] != "/r/a" || got[1] != "/r/c" {
		t.Errorf("selectedPaths = %v", got)
	}
}
