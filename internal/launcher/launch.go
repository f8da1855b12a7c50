package launcher

import (
	"errors"
	"os/exec"
)

// Spawn starts a launch command without waiting for it; the launcher
// process outlives this one.
func Spawn(argv []string) error {
	if len(argv) == 0 {
		return errors.New("empty launch command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child in the background so it never zombies while the
	// app is still running.
	go func() { _ = cmd.Wait() }()
	return nil
}
