package launcher

import (
	"testing"
)

// fakeLauncher is a minimal Launcher for registry tests.
type fakeLauncher struct {
	id    string
	roots []string
	exe   string
	err   error
}

func (f *fakeLauncher) ID() string          { return f.id }
func (f *fakeLauncher) DisplayName() string { return f.id }
func (f *fakeLauncher) Roots() []string     { return f.roots }
func (f *fakeLauncher) DetectExecutable() (string, error) {
	return f.exe, f.err
}
func (f *fakeLauncher) LaunchCommand(exe, instance string) []string {
	return []string{exe, instance}
}

// withFactories swaps in a clean factory list for the duration of a
// test.
func withFactories(t *testing.T, launchers ...Launcher) {
	t.Helper()
	saved := launcherFactories
	launcherFactories = nil
	for _, l := range launchers {
		l := l
		RegisterFactory(func() Launcher { return l })
	}
	t.Cleanup(func() { launcherFactories = saved })
}

func TestAll_RegistrationOrder(t *testing.T) {
	withFactories(t,
		&fakeLauncher{id: "one"},
		&fakeLauncher{id: "two"},
		&fakeLauncher{id: "three"},
	)

	all := All()
	if len(all) != 3 {
		t.Fatalf("All() returned %d launchers, want 3", len(all))
	}
	for i, want := range []string{"one", "two", "three"} {
		if all[i].ID() != want {
			t.Errorf("All()[%d] = %q, want %q", i, all[i].ID(), want)
		}
	}
}

func TestDetect_KeepsOnlyFoundExecutables(t *testing.T) {
	withFactories(t,
		&fakeLauncher{id: "found", exe: "/usr/bin/found"},
		&fakeLauncher{id: "missing", err: ErrNotFound},
		&fakeLauncher{id: "also-found", exe: "/opt/also"},
	)

	detected := Detect()
	if len(detected) != 2 {
		t.Fatalf("Detect() returned %d launchers, want 2", len(detected))
	}
	if detected[0].Launcher.ID() != "found" || detected[0].Exe != "/usr/bin/found" {
		t.Errorf("Detect()[0] = %s/%s, want found", detected[0].Launcher.ID(), detected[0].Exe)
	}
	if detected[1].Launcher.ID() != "also-found" {
		t.Errorf("Detect()[1] = %s, want also-found", detected[1].Launcher.ID())
	}
}
