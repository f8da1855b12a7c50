package launcher

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestInstanceRoots_FiltersAndDeduplicates(t *testing.T) {
	base := t.TempDir()
	existing := filepath.Join(base, "instances")
	if err := os.Mkdir(existing, 0o755); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(base, "never-installed")
	file := filepath.Join(base, "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	withFactories(t,
		&fakeLauncher{id: "a", roots: []string{existing, missing}},
		&fakeLauncher{id: "b", roots: []string{existing, file}},
	)

	roots := InstanceRoots()
	if len(roots) != 1 {
		t.Fatalf("InstanceRoots() = %v, want just the one existing dir", roots)
	}
	resolved, err := filepath.EvalSymlinks(existing)
	if err != nil {
		t.Fatal(err)
	}
	if roots[0] != resolved {
		t.Errorf("InstanceRoots()[0] = %q, want resolved %q", roots[0], resolved)
	}
}

func TestInstanceRoots_DeduplicatesSymlinkedAliases(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks not reliable on windows")
	}
	base := t.TempDir()
	real := filepath.Join(base, "real")
	if err := os.Mkdir(real, 0o755); err != nil {
		t.Fatal(err)
	}
	alias := filepath.Join(base, "alias")
	if err := os.Symlink(real, alias); err != nil {
		t.Fatal(err)
	}

	withFactories(t,
		&fakeLauncher{id: "a", roots: []string{real}},
		&fakeLauncher{id: "b", roots: []string{alias}},
	)

	roots := InstanceRoots()
	if len(roots) != 1 {
		t.Errorf("InstanceRoots() = %v, want one root for two aliases", roots)
	}
}

func TestInstanceRoots_PreservesRegistrationOrder(t *testing.T) {
	base := t.TempDir()
	first := filepath.Join(base, "first")
	second := filepath.Join(base, "second")
	for _, d := range []string{first, second} {
		if err := os.Mkdir(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	withFactories(t,
		&fakeLauncher{id: "a", roots: []string{first}},
		&fakeLauncher{id: "b", roots: []string{second}},
	)

	roots := InstanceRoots()
	if len(roots) != 2 {
		t.Fatalf("InstanceRoots() = %v, want 2 roots", roots)
	}
	r0, _ := filepath.EvalSymlinks(first)
	if roots[0] != r0 {
		t.Errorf("InstanceRoots()[0] = %q, want first-registered root %q", roots[0], r0)
	}
}
