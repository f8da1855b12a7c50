package vanilla

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/wilbur182/mcwarm/internal/launcher"
)

func TestRoots_DefaultPlatform(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("covers the default platform branch")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)

	roots := New().Roots()
	if len(roots) != 1 || roots[0] != filepath.Join(home, ".minecraft") {
		t.Errorf("Roots() = %v, want ~/.minecraft", roots)
	}
}

func TestDetectExecutable_AlwaysNotFound(t *testing.T) {
	_, err := New().DetectExecutable()
	if !errors.Is(err, launcher.ErrNotFound) {
		t.Errorf("DetectExecutable error = %v, want ErrNotFound", err)
	}
}

func TestLaunchCommand_Unsupported(t *testing.T) {
	if cmd := New().LaunchCommand("", "any"); cmd != nil {
		t.Errorf("LaunchCommand = %v, want nil", cmd)
	}
}
