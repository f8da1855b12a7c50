package app

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/mcwarm/internal/config"
	"github.com/wilbur182/mcwarm/internal/ui"
	"github.com/wilbur182/mcwarm/internal/warm"
)

// parseBudget parses a warm budget in GB. Fractional values are fine,
// negative or non-finite ones are not.
func parseBudget(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty budget")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse budget %q: %w", s, err)
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("budget out of range: %v", v)
	}
	return v, nil
}

// startWarm kicks off a session over the given targets with the
// current options. Returns nil when nothing can start.
func (m *Model) startWarm(targets []string) tea.Cmd {
	if m.sessionRunning {
		m.showToast("A warm session is already running", true, 2*time.Second)
		return nil
	}
	if len(targets) == 0 {
		m.showToast("Select at least one instance", true, 2*time.Second)
		return nil
	}

	budget, err := parseBudget(m.budgetInput.Value())
	if err != nil {
		m.showToast("Invalid budget, enter GB as a number", true, 3*time.Second)
		m.setFocus(paneOptions)
		return nil
	}

	s := warm.New(warm.Options{
		Targets:   targets,
		Patterns:  m.cfg.Warm.Patterns,
		Budget:    warm.BudgetBytes(budget),
		ChunkSize: m.chunkMiB << 20,
		DryRun:    m.dryRun,
	})
	m.session = s
	m.sessionRunning = true
	m.sessionTargets = targets
	m.warmedTotal = 0
	m.progressRatio = 0
	m.currentTarget = ""
	m.lastSummary = ""
	m.spinner.Start()
	s.Start()

	return tea.Batch(
		listenSession(s),
		ui.SkeletonTick(),
		persistWarmOptions(budget, m.dryRun, m.launchAfter),
	)
}

// cancelWarm requests a cooperative stop; the file being read finishes.
func (m *Model) cancelWarm() {
	if m.session != nil && m.sessionRunning {
		m.session.Cancel()
		m.showToast("Stopping after the current file", false, 2*time.Second)
	}
}

// handleSessionEvent folds one session event into the model. A closed
// channel (ok=false) is the completion signal.
func (m *Model) handleSessionEvent(ev warm.Event, ok bool) tea.Cmd {
	if !ok {
		return m.finishSession()
	}

	if line := ev.Line(); line != "" {
		m.appendLog(line)
	}

	switch ev.Kind {
	case warm.EventTargetStart:
		m.currentTarget = ev.Target
		m.progressRatio = 0
	case warm.EventFilePlanned, warm.EventFileWarmed, warm.EventFileError:
		if r := ev.Ratio(); r >= 0 {
			m.progressRatio = r
		}
		m.warmedTotal = ev.Total
	case warm.EventTargetDone:
		m.progressRatio = 1
		m.warmedTotal = ev.Total
	case warm.EventSessionDone:
		m.warmedTotal = ev.Total
		m.lastSummary = ev.Line()
	}

	return listenSession(m.session)
}

// finishSession runs once the event channel closes.
func (m *Model) finishSession() tea.Cmd {
	cancelled := m.session != nil && m.session.Cancelled()
	m.sessionRunning = false
	m.session = nil
	m.spinner.Stop()

	if cancelled {
		m.showToast("Warm cancelled", false, 3*time.Second)
		return nil
	}

	summary := m.lastSummary
	if summary == "" {
		summary = "Warm finished"
	}
	m.showToast(summary, false, 5*time.Second)

	if m.launchAfter && len(m.sessionTargets) > 0 {
		return m.launchAfterWarm(m.sessionTargets)
	}
	return nil
}

// launchAfterWarm builds and spawns the launcher command. A configured
// command template wins over the detected launcher; {instance} in the
// template is replaced with the first target's directory name, since
// most launchers cannot take multiple instances.
func (m *Model) launchAfterWarm(targets []string) tea.Cmd {
	name := filepath.Base(targets[0])

	if tpl := strings.TrimSpace(m.cfg.Launch.Command); tpl != "" {
		cmdline := strings.ReplaceAll(tpl, "{instance}", name)
		argv := strings.Fields(cmdline)
		if len(argv) == 0 {
			m.appendLog("Launch requested but no command template set")
			return nil
		}
		m.appendLog("Launching: " + cmdline)
		return spawnLaunch(argv)
	}

	if len(m.detected) == 0 {
		m.appendLog("Launch requested but no launcher detected")
		return nil
	}
	d := m.detected[0]
	argv := d.Launcher.LaunchCommand(d.Exe, name)
	if len(argv) == 0 {
		m.appendLog(fmt.Sprintf("%s does not support launching", d.Launcher.DisplayName()))
		return nil
	}
	m.appendLog("Launching: " + strings.Join(argv, " "))
	return spawnLaunch(argv)
}

// persistWarmOptions saves the options the session ran with so the next
// start uses them as defaults.
func persistWarmOptions(budgetGB float64, dryRun, afterWarm bool) tea.Cmd {
	return func() tea.Msg {
		if err := config.SaveWarmOptions(budgetGB, dryRun, afterWarm); err != nil {
			return toastMsg{Text: "Saving options failed: " + err.Error(), IsError: true, Duration: 3 * time.Second}
		}
		return nil
	}
}
