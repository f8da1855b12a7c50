package app

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/mcwarm/internal/launcher"
	"github.com/wilbur182/mcwarm/internal/version"
	"github.com/wilbur182/mcwarm/internal/warm"
)

// tickMsg drives the once-a-second housekeeping (toast expiry).
type tickMsg time.Time

// commandMsg carries a keymap command through the update loop.
type commandMsg struct {
	ID string
}

// rootsDetectedMsg delivers the scan roots and detected launchers.
type rootsDetectedMsg struct {
	Roots    []string
	Detected []launcher.Detected
}

// instancesLoadedMsg delivers the instance entries of one root.
type instancesLoadedMsg struct {
	Root    string
	Entries []instanceEntry
}

// watchStartedMsg delivers a running root watcher.
type watchStartedMsg struct {
	Watcher *rootWatcher
}

// watchEventMsg signals that the watched root's entries changed.
type watchEventMsg struct{}

// sessionEventMsg carries one warm session event. OK is false once the
// event channel closed, which is the session's completion signal.
type sessionEventMsg struct {
	Event warm.Event
	OK    bool
}

// toastMsg shows a temporary status message.
type toastMsg struct {
	Text     string
	IsError  bool
	Duration time.Duration
}

// clipboardMsg reports a transcript copy attempt.
type clipboardMsg struct {
	Lines int
	Err   error
}

// revealDoneMsg reports a file manager reveal attempt.
type revealDoneMsg struct {
	Path string
	Err  error
}

// launchDoneMsg reports a launcher spawn attempt.
type launchDoneMsg struct {
	Command string
	Err     error
}

// versionCheckedMsg delivers the release check result.
type versionCheckedMsg struct {
	Result version.CheckResult
}

// tickCmd schedules the next housekeeping tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// toastCmd emits a toast message.
func toastCmd(text string, isError bool, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return toastMsg{Text: text, IsError: isError, Duration: duration}
	}
}

// detectRoots discovers launcher roots and installed launchers off the
// update loop; root detection stats a fixed set of paths, launcher
// detection probes PATH.
func detectRoots(extras []string) tea.Cmd {
	return func() tea.Msg {
		return rootsDetectedMsg{
			Roots:    collectRoots(extras),
			Detected: launcher.Detect(),
		}
	}
}

// loadInstances lists the warm targets under root.
func loadInstances(root string) tea.Cmd {
	return func() tea.Msg {
		return instancesLoadedMsg{Root: root, Entries: buildInstanceEntries(root)}
	}
}

// startWatcher begins watching root for instance changes. Watch setup
// failure is not fatal; the user still has manual refresh.
func startWatcher(root string) tea.Cmd {
	return func() tea.Msg {
		w, err := newRootWatcher(root)
		if err != nil {
			return nil
		}
		return watchStartedMsg{Watcher: w}
	}
}

// listenWatcher waits for the next change signal from the watcher.
func listenWatcher(w *rootWatcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-w.Events(); !ok {
			return nil
		}
		return watchEventMsg{}
	}
}

// listenSession waits for the next warm session event.
func listenSession(s *warm.Session) tea.Cmd {
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-s.Events()
		return sessionEventMsg{Event: ev, OK: ok}
	}
}

// copyTranscript copies the log transcript to the system clipboard.
func copyTranscript(lines []string) tea.Cmd {
	text := strings.Join(lines, "\n")
	return func() tea.Msg {
		return clipboardMsg{Lines: len(lines), Err: clipboard.WriteAll(text)}
	}
}

// revealDir opens a directory in the platform file manager.
func revealDir(path string) tea.Cmd {
	return func() tea.Msg {
		return revealDoneMsg{Path: path, Err: launcher.Reveal(path)}
	}
}

// spawnLaunch starts the launcher command without waiting for it.
func spawnLaunch(argv []string) tea.Cmd {
	return func() tea.Msg {
		return launchDoneMsg{Command: strings.Join(argv, " "), Err: launcher.Spawn(argv)}
	}
}

// checkVersion looks up the latest release, using the on-disk cache
// when it is still fresh.
func checkVersion(current string) tea.Cmd {
	return func() tea.Msg {
		if entry, err := version.LoadCache(); err == nil && version.IsCacheValid(entry, current) {
			return versionCheckedMsg{Result: version.CheckResult{
				CurrentVersion: current,
				LatestVersion:  entry.LatestVersion,
				HasUpdate:      entry.HasUpdate,
			}}
		}
		result := version.Check(current)
		if result.Error == nil {
			_ = version.SaveCache(&version.CacheEntry{
				LatestVersion:  result.LatestVersion,
				CurrentVersion: current,
				CheckedAt:      time.Now(),
				HasUpdate:      result.HasUpdate,
			})
		}
		return versionCheckedMsg{Result: result}
	}
}
