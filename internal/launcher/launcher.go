// Package launcher integrates with modded-Minecraft launchers: the
// instance roots each one keeps on disk, detection of its executable,
// and the command line that starts an instance. Launchers register
// themselves via RegisterFactory from their package init, wired up by
// blank imports in main.
package launcher

import "errors"

// ErrNotFound reports that a launcher executable could not be located.
var ErrNotFound = errors.New("launcher executable not found")

// Launcher describes one launcher integration.
type Launcher interface {
	ID() string
	DisplayName() string

	// Roots returns the instance root directories this launcher uses
	// on the current platform, whether or not they exist.
	Roots() []string

	// DetectExecutable locates the launcher binary, returning
	// ErrNotFound when it is not installed.
	DetectExecutable() (string, error)

	// LaunchCommand builds the argv that starts the named instance.
	// Launchers that cannot target an instance return just the
	// executable; a nil result means launching is unsupported.
	LaunchCommand(exe, instance string) []string
}
