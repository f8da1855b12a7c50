package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/mcwarm/internal/keymap"
	"github.com/wilbur182/mcwarm/internal/mouse"
	"github.com/wilbur182/mcwarm/internal/ui"
)

// Update is the root message handler.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layoutPanes()
		m.rebuildLog()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tickMsg:
		m.clearExpiredToast()
		return m, tickCmd()

	case IntroTickMsg:
		if !m.intro.Active {
			return m, nil
		}
		m.intro.Update(introFrame)
		if m.intro.Done && m.intro.TaglineOpacity >= 1.0 {
			m.intro.Active = false
			return m, nil
		}
		return m, IntroTick()

	case ui.SkeletonTickMsg:
		skCmd := m.skeleton.Update(msg)
		if m.sessionRunning {
			m.spinner.Tick()
			if skCmd == nil {
				skCmd = ui.SkeletonTick()
			}
		}
		return m, skCmd

	case commandMsg:
		return m.handleCommand(msg.ID)

	case rootsDetectedMsg:
		m.detecting = false
		if !m.refreshing {
			m.skeleton.Stop()
		}
		m.roots = msg.Roots
		m.detected = msg.Detected
		if m.rootCursor >= len(m.roots) {
			m.rootCursor = 0
		}
		if len(m.roots) == 0 {
			m.refreshing = false
			m.skeleton.Stop()
			m.showToast("No launcher folders found, add one with 'a'", false, 5*time.Second)
			return m, nil
		}
		return m, m.selectRoot(m.rootCursor)

	case instancesLoadedMsg:
		if msg.Root != m.instancesRoot {
			// A stale load finishing after the user switched roots.
			return m, nil
		}
		m.refreshing = false
		if !m.detecting {
			m.skeleton.Stop()
		}
		m.instances = keepSelections(m.instances, msg.Entries)
		if m.instCursor >= len(m.instances) {
			m.instCursor = max(0, len(m.instances)-1)
		}
		m.appendLog(fmt.Sprintf("Found %d instance folder(s) under %s", len(msg.Entries), msg.Root))
		return m, nil

	case watchStartedMsg:
		if msg.Watcher.root != m.instancesRoot {
			msg.Watcher.Stop()
			return m, nil
		}
		if m.watcher != nil {
			m.watcher.Stop()
		}
		m.watcher = msg.Watcher
		return m, listenWatcher(m.watcher)

	case watchEventMsg:
		// Refresh quietly; no skeleton for background updates.
		return m, tea.Batch(loadInstances(m.instancesRoot), listenWatcher(m.watcher))

	case sessionEventMsg:
		return m, m.handleSessionEvent(msg.Event, msg.OK)

	case toastMsg:
		m.showToast(msg.Text, msg.IsError, msg.Duration)
		return m, nil

	case clipboardMsg:
		if msg.Err != nil {
			m.showToast("Copy failed: "+msg.Err.Error(), true, 3*time.Second)
		} else {
			m.showToast(fmt.Sprintf("Copied %d log lines", msg.Lines), false, 2*time.Second)
		}
		return m, nil

	case revealDoneMsg:
		if msg.Err != nil {
			m.showToast("Reveal failed: "+msg.Err.Error(), true, 3*time.Second)
		}
		return m, nil

	case launchDoneMsg:
		if msg.Err != nil {
			m.appendLog(fmt.Sprintf("Launch failed: %v", msg.Err))
			m.showToast("Launch failed", true, 3*time.Second)
		}
		return m, nil

	case versionCheckedMsg:
		if msg.Result.HasUpdate {
			m.showToast(fmt.Sprintf("Update available: %s", msg.Result.LatestVersion), false, 5*time.Second)
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes key input by capture priority: modal, overlays,
// budget editing, keymap commands, then per-pane navigation.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.activeModal != nil {
		action, cmd := m.activeModal.Update(msg)
		if action != "" {
			return m, tea.Batch(cmd, m.handleModalAction(action))
		}
		return m, cmd
	}

	if m.themeSwitch != nil {
		return m.updateThemeSwitcher(msg)
	}

	if m.showHelp {
		return m.updateHelp(msg)
	}

	if m.editingBudget {
		return m.updateBudgetInput(msg)
	}

	if cmd := m.keymap.Handle(msg, m.activeContext()); cmd != nil {
		return m, cmd
	}
	if m.keymap.HasPending() {
		return m, nil
	}

	return m.handlePaneKey(msg)
}

// updateBudgetInput handles keys while the budget field is focused.
func (m Model) updateBudgetInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v, err := parseBudget(m.budgetInput.Value())
		if err != nil {
			m.showToast("Enter the budget in GB, e.g. 8 or 1.5", true, 3*time.Second)
			return m, nil
		}
		m.editingBudget = false
		m.budgetInput.Blur()
		m.budgetInput.SetValue(formatBudget(v))
		m.cfg.Warm.BudgetGB = v
		return m, persistWarmOptions(v, m.dryRun, m.launchAfter)
	case "esc":
		m.editingBudget = false
		m.budgetInput.Blur()
		m.budgetInput.SetValue(formatBudget(m.cfg.Warm.BudgetGB))
		return m, nil
	}
	var cmd tea.Cmd
	m.budgetInput, cmd = m.budgetInput.Update(msg)
	return m, cmd
}

// handleCommand executes a keymap command.
func (m Model) handleCommand(id string) (tea.Model, tea.Cmd) {
	switch id {
	case keymap.CmdQuit:
		if m.sessionRunning {
			m.openQuitModal()
			return m, nil
		}
		return m, tea.Quit

	case keymap.CmdForceQuit:
		return m, tea.Quit

	case keymap.CmdHelp:
		m.showHelp = true
		m.helpScroll = 0
		return m, nil

	case keymap.CmdThemes:
		m.openThemeSwitcher()
		return m, nil

	case keymap.CmdNextPane:
		m.nextPane()
		return m, nil

	case keymap.CmdPrevPane:
		m.prevPane()
		return m, nil

	case keymap.CmdRefresh:
		m.refreshing = true
		m.detecting = true
		m.skeleton = ui.NewSkeleton(6, nil)
		return m, tea.Batch(detectRoots(m.cfg.Warm.ExtraRoots), ui.SkeletonTick())

	case keymap.CmdWarm:
		return m, m.startWarm(selectedPaths(m.instances))

	case keymap.CmdCancel:
		m.cancelWarm()
		return m, nil

	case keymap.CmdAddRoot:
		m.openAddRootModal()
		return m, nil

	case keymap.CmdToggleSelect:
		if e := m.currentInstance(); e != nil {
			e.Selected = !e.Selected
			if m.instCursor < len(m.instances)-1 {
				m.instCursor++
			}
		}
		return m, nil

	case keymap.CmdSelectAll:
		for i := range m.instances {
			m.instances[i].Selected = true
		}
		return m, nil

	case keymap.CmdSelectNone:
		for i := range m.instances {
			m.instances[i].Selected = false
		}
		return m, nil

	case keymap.CmdReveal:
		if e := m.currentInstance(); e != nil {
			return m, revealDir(e.Path)
		}
		return m, nil

	case keymap.CmdToggleDry:
		m.dryRun = !m.dryRun
		return m, persistWarmOptions(m.budgetGB(), m.dryRun, m.launchAfter)

	case keymap.CmdToggleAfter:
		if len(m.detected) > 0 || strings.TrimSpace(m.cfg.Launch.Command) != "" {
			m.launchAfter = !m.launchAfter
			return m, persistWarmOptions(m.budgetGB(), m.dryRun, m.launchAfter)
		}
		return m, nil

	case keymap.CmdEditBudget:
		m.editingBudget = true
		m.setFocus(paneOptions)
		m.budgetInput.Focus()
		return m, nil

	case keymap.CmdCopyLog:
		if len(m.transcript) == 0 {
			m.showToast("Log is empty", false, 2*time.Second)
			return m, nil
		}
		return m, copyTranscript(m.transcript)
	}

	return m, nil
}

// handlePaneKey covers cursor movement and per-pane actions that are
// not routed through the keymap.
func (m Model) handlePaneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch m.focus {
	case paneRoots:
		switch key {
		case "up", "k":
			if m.rootCursor > 0 {
				m.rootCursor--
			}
		case "down", "j":
			if m.rootCursor < len(m.roots)-1 {
				m.rootCursor++
			}
		case "enter":
			return m, m.selectRoot(m.rootCursor)
		}

	case paneInstances:
		switch key {
		case "up", "k":
			if m.instCursor > 0 {
				m.instCursor--
			}
		case "down", "j":
			if m.instCursor < len(m.instances)-1 {
				m.instCursor++
			}
		case "g", "home":
			m.instCursor = 0
		case "G", "end":
			m.instCursor = max(0, len(m.instances)-1)
		case "enter":
			if e := m.currentInstance(); e != nil {
				e.Selected = !e.Selected
			}
		}

	case paneLog:
		switch key {
		case "g", "home":
			m.logView.GotoTop()
			m.autoScroll = false
		case "G", "end":
			m.logView.GotoBottom()
			m.autoScroll = true
		default:
			// The viewport's own keymap covers line and page scrolling.
			var cmd tea.Cmd
			m.logView, cmd = m.logView.Update(msg)
			m.autoScroll = m.logView.AtBottom()
			return m, cmd
		}
	}

	return m, nil
}

// handleMouse routes mouse input: the active modal first, then the
// main screen hit regions View registered.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.activeModal != nil {
		action, cmd := m.activeModal.HandleMouse(msg, m.modalHandler)
		if action != "" {
			return m, tea.Batch(cmd, m.handleModalAction(action))
		}
		return m, cmd
	}
	if m.themeSwitch != nil || m.showHelp {
		// Overlays are keyboard-driven; swallow mouse input.
		return m, nil
	}

	action := m.handler.HandleMouse(msg)
	switch action.Type {
	case mouse.ActionHover:
		m.hoverID = ""
		if action.Region != nil {
			m.hoverID = action.Region.ID
		}
		return m, nil

	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		if action.Region == nil {
			return m, nil
		}
		switch {
		case action.Region.ID == "pane-log":
			var cmd tea.Cmd
			m.logView, cmd = m.logView.Update(msg)
			m.autoScroll = m.logView.AtBottom()
			return m, cmd
		case action.Region.ID == "pane-instances" || strings.HasPrefix(action.Region.ID, "inst-"):
			if action.Delta < 0 {
				m.instCursor = max(0, m.instCursor+action.Delta)
			} else {
				m.instCursor = min(max(0, len(m.instances)-1), m.instCursor+action.Delta)
			}
		}
		return m, nil

	case mouse.ActionClick, mouse.ActionDoubleClick:
		if action.Region == nil {
			return m, nil
		}
		return m.handleRegionClick(action.Region.ID, action.Type == mouse.ActionDoubleClick)
	}

	return m, nil
}

// handleRegionClick resolves a click on a named main-screen region.
func (m Model) handleRegionClick(id string, double bool) (tea.Model, tea.Cmd) {
	switch {
	case id == "pane-roots":
		m.setFocus(paneRoots)
	case id == "pane-instances":
		m.setFocus(paneInstances)
	case id == "pane-options":
		m.setFocus(paneOptions)
	case id == "pane-log":
		m.setFocus(paneLog)

	case strings.HasPrefix(id, "root-"):
		m.setFocus(paneRoots)
		if idx, err := strconv.Atoi(strings.TrimPrefix(id, "root-")); err == nil {
			return m, m.selectRoot(idx)
		}

	case strings.HasPrefix(id, "inst-"):
		m.setFocus(paneInstances)
		idx, err := strconv.Atoi(strings.TrimPrefix(id, "inst-"))
		if err != nil || idx >= len(m.instances) {
			return m, nil
		}
		m.instCursor = idx
		if double {
			// Double-click warms just this instance right away.
			return m, m.startWarm([]string{m.instances[idx].Path})
		}
		m.instances[idx].Selected = !m.instances[idx].Selected

	case id == "opt-budget":
		m.setFocus(paneOptions)
		m.editingBudget = true
		m.budgetInput.Focus()
	case id == "opt-dry":
		m.setFocus(paneOptions)
		m.dryRun = !m.dryRun
		return m, persistWarmOptions(m.budgetGB(), m.dryRun, m.launchAfter)
	case id == "opt-launch":
		m.setFocus(paneOptions)
		if len(m.detected) > 0 || strings.TrimSpace(m.cfg.Launch.Command) != "" {
			m.launchAfter = !m.launchAfter
			return m, persistWarmOptions(m.budgetGB(), m.dryRun, m.launchAfter)
		}

	case id == "btn-warm":
		return m, m.startWarm(selectedPaths(m.instances))
	case id == "btn-stop":
		m.cancelWarm()
	}

	return m, nil
}

// selectRoot points the instances pane at the root with the given
// index and restarts the watcher for it.
func (m *Model) selectRoot(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.roots) {
		return nil
	}
	m.rootCursor = idx
	root := m.roots[idx]
	if m.watcher != nil {
		m.watcher.Stop()
		m.watcher = nil
	}
	m.instancesRoot = root
	m.refreshing = true
	m.skeleton = ui.NewSkeleton(6, nil)
	return tea.Batch(loadInstances(root), startWatcher(root), ui.SkeletonTick())
}
