package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewRootWatcher(t *testing.T) {
	tmpDir := t.TempDir()

	w, err := newRootWatcher(tmpDir)
	if err != nil {
		t.Fatalf("newRootWatcher() failed: %v", err)
	}
	defer w.Stop()

	if w.root != tmpDir {
		t.Errorf("root = %q, want %q", w.root, tmpDir)
	}
	if w.events == nil {
		t.Error("events channel not initialized")
	}
}

func TestNewRootWatcher_MissingDirectory(t *testing.T) {
	w, err := newRootWatcher("/no/such/mcwarm/root")
	if err == nil {
		t.Error("newRootWatcher() should fail for a missing directory")
		w.Stop()
	}
}

func TestRootWatcher_SignalsOnNewInstance(t *testing.T) {
	tmpDir := t.TempDir()

	w, err := newRootWatcher(tmpDir)
	if err != nil {
		t.Fatalf("newRootWatcher() failed: %v", err)
	}
	defer w.Stop()

	if err := os.Mkdir(filepath.Join(tmpDir, "NewPack"), 0o755); err != nil {
		t.Fatalf("failed to create instance dir: %v", err)
	}

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for the change signal")
	}
}

func TestRootWatcher_DebouncesBursts(t *testing.T) {
	tmpDir := t.TempDir()

	w, err := newRootWatcher(tmpDir)
	if err != nil {
		t.Fatalf("newRootWatcher() failed: %v", err)
	}
	defer w.Stop()

	// A pack install creates many entries back to back.
	for i := 0; i < 5; i++ {
		name := filepath.Join(tmpDir, "entry"+string(rune('0'+i)))
		if err := os.WriteFile(name, []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}

	signals := 0
	timeout := time.After(1500 * time.Millisecond)
	for {
		select {
		case <-w.Events():
			signals++
		case <-timeout:
			if signals == 0 {
				t.Error("no signal for the burst")
			}
			if signals > 2 {
				t.Errorf("got %d signals for one burst, want it debounced", signals)
			}
			return
		}
	}
}

func TestRootWatcher_StopClosesEvents(t *testing.T) {
	tmpDir := t.TempDir()

	w, err := newRootWatcher(tmpDir)
	if err != nil {
		t.Fatalf("newRootWatcher() failed: %v", err)
	}

	w.Stop()

	select {
	case _, ok := <-w.Events():
		if ok {
			t.Error("received a signal after Stop")
		}
	case <-time.After(time.Second):
		t.Error("events channel should close after Stop")
	}
}

func TestUpdate_WatchStartedForStaleRoot(t *testing.T) {
	tmpDir := t.TempDir()
	w, err := newRootWatcher(tmpDir)
	if err != nil {
		t.Fatalf("newRootWatcher() failed: %v", err)
	}

	m := testModel()
	m.instancesRoot = "/roots/other"

	newModel, _ := m.Update(watchStartedMsg{Watcher: w})
	updated := newModel.(Model)

	if updated.watcher != nil {
		t.Error("a watcher for a root the user already left should be dropped")
	}

	// The stale watcher was stopped, so its channel closes.
	select {
	case _, ok := <-w.Events():
		if ok {
			t.Error("stale watcher should not signal")
		}
	case <-time.After(time.Second):
		t.Error("stale watcher should have been stopped")
	}
}

func TestUpdate_WatchStartedReplacesWatcher(t *testing.T) {
	tmpDir := t.TempDir()
	w, err := newRootWatcher(tmpDir)
	if err != nil {
		t.Fatalf("newRootWatcher() failed: %v", err)
	}

	m := testModel()
	m.instancesRoot = tmpDir

	newModel, cmd := m.Update(watchStartedMsg{Watcher: w})
	updated := newModel.(Model)

	if updated.watcher != w {
		t.Error("the new watcher should be installed")
	}
	if cmd == nil {
		t.Error("installing a watcher should start listening on it")
	}

	w.Stop()
}
