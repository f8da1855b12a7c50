package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/mcwarm/internal/keymap"
	"github.com/wilbur182/mcwarm/internal/warm"
)

func TestUpdate_ToggleSelectAdvancesCursor(t *testing.T) {
	m := testModel()
	m.instances = []instanceEntry{
		{Name: "a", Path: "/r/a"},
		{Name: "b", Path: "/r/b"},
	}

	newModel, _ := m.Update(commandMsg{ID: keymap.CmdToggleSelect})
	updated := newModel.(Model)

	if !updated.instances[0].Selected {
		t.Error("toggle should select the entry under the cursor")
	}
	if updated.instCursor != 1 {
		t.Errorf("instCursor = %d, want 1 after toggling", updated.instCursor)
	}

	// Toggling the same entry again deselects it.
	updated.instCursor = 0
	newModel, _ = updated.Update(commandMsg{ID: keymap.CmdToggleSelect})
	updated = newModel.(Model)
	if updated.instances[0].Selected {
		t.Error("second toggle should deselect the entry")
	}
}

func TestUpdate_SelectAllAndNone(t *testing.T) {
	m := testModel()
	m.instances = []instanceEntry{
		{Name: "a", Path: "/r/a"},
		{Name: "b", Path: "/r/b"},
		{Name: "c", Path: "/r/c", Selected: true},
	}

	newModel, _ := m.Update(commandMsg{ID: keymap.CmdSelectAll})
	updated := newModel.(Model)
	if got := len(selectedPaths(updated.instances)); got != 3 {
		t.Errorf("after select-all %d entries selected, want 3", got)
	}

	newModel, _ = updated.Update(commandMsg{ID: keymap.CmdSelectNone})
	updated = newModel.(Model)
	if got := len(selectedPaths(updated.instances)); got != 0 {
		t.Errorf("after select-none %d entries selected, want 0", got)
	}
}

func TestUpdate_QuitConfirmsWhileSessionRuns(t *testing.T) {
	m := testModel()
	m.sessionRunning = true

	newModel, cmd := m.Update(commandMsg{ID: keymap.CmdQuit})
	updated := newModel.(Model)

	if updated.activeModal == nil {
		t.Fatal("quit during a session should open the confirm modal")
	}
	if cmd != nil {
		t.Error("quit during a session should not quit immediately")
	}

	// Idle quit goes straight out.
	m = testModel()
	_, cmd = m.Update(commandMsg{ID: keymap.CmdQuit})
	if cmd == nil {
		t.Fatal("idle quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("idle quit should emit tea.QuitMsg")
	}
}

func TestUpdate_InstancesLoaded(t *testing.T) {
	m := testModel()
	m.instancesRoot = "/roots/prism"
	m.instances = []instanceEntry{
		{Name: "a", Path: "/roots/prism/a", Selected: true},
		{Name: "b", Path: "/roots/prism/b"},
	}

	msg := instancesLoadedMsg{
		Root: "/roots/prism",
		Entries: []instanceEntry{
			{Name: "a", Path: "/roots/prism/a"},
			{Name: "b", Path: "/roots/prism/b"},
			{Name: "c", Path: "/roots/prism/c"},
		},
	}
	newModel, _ := m.Update(msg)
	updated := newModel.(Model)

	if !updated.instances[0].Selected {
		t.Error("refresh should keep the existing selection")
	}
	if updated.instances[2].Selected {
		t.Error("new entries should start unselected")
	}
	if len(updated.transcript) == 0 ||
		!strings.Contains(updated.transcript[len(updated.transcript)-1], "Found 3 instance folder(s) under /roots/prism") {
		t.Errorf("transcript = %v, want a Found line", updated.transcript)
	}
}

func TestUpdate_InstancesLoadedStaleRootIgnored(t *testing.T) {
	m := testModel()
	m.instancesRoot = "/roots/prism"
	m.instances = []instanceEntry{{Name: "a", Path: "/roots/prism/a"}}

	msg := instancesLoadedMsg{
		Root:    "/roots/curse",
		Entries: []instanceEntry{{Name: "x", Path: "/roots/curse/x"}},
	}
	newModel, _ := m.Update(msg)
	updated := newModel.(Model)

	if len(updated.instances) != 1 || updated.instances[0].Path != "/roots/prism/a" {
		t.Error("a load for a root the user already left should be dropped")
	}
}

func TestUpdate_BudgetEdit(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		m := testModel()
		m.editingBudget = true
		m.budgetInput.SetValue("2.5")

		newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		updated := newModel.(Model)

		if updated.editingBudget {
			t.Error("enter should leave budget editing")
		}
		if updated.cfg.Warm.BudgetGB != 2.5 {
			t.Errorf("BudgetGB = %v, want 2.5", updated.cfg.Warm.BudgetGB)
		}
		if cmd == nil {
			t.Error("committing the budget should persist the options")
		}
	})

	t.Run("invalid input keeps editing", func(t *testing.T) {
		m := testModel()
		m.editingBudget = true
		m.budgetInput.SetValue("lots")

		newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		updated := newModel.(Model)

		if !updated.editingBudget {
			t.Error("invalid budget should keep the field focused")
		}
		if updated.statusMsg == "" || !updated.statusIsError {
			t.Error("invalid budget should show an error toast")
		}
	})

	t.Run("esc reverts", func(t *testing.T) {
		m := testModel()
		m.editingBudget = true
		m.budgetInput.SetValue("99")

		newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		updated := newModel.(Model)

		if updated.editingBudget {
			t.Error("esc should leave budget editing")
		}
		if got := updated.budgetInput.Value(); got != "8" {
			t.Errorf("budget input = %q, want the configured 8 back", got)
		}
	})
}

func TestUpdate_SessionEventsFold(t *testing.T) {
	m := testModel()
	m.sessionRunning = true

	events := []warm.Event{
		{Kind: warm.EventTargetStart, Target: "/roots/prism/pack"},
		{Kind: warm.EventFileWarmed, Index: 5, Count: 10, Path: "mods/a.jar", Size: 100, Total: 1 << 20},
		{Kind: warm.EventSessionDone, Total: 1 << 20, Elapsed: 1200 * time.Millisecond},
	}

	updated := m
	for _, ev := range events {
		newModel, _ := updated.Update(sessionEventMsg{Event: ev, OK: true})
		updated = newModel.(Model)
	}

	if updated.currentTarget != "/roots/prism/pack" {
		t.Errorf("currentTarget = %q", updated.currentTarget)
	}
	if updated.progressRatio != 0.5 {
		t.Errorf("progressRatio = %v, want 0.5", updated.progressRatio)
	}
	if updated.warmedTotal != 1<<20 {
		t.Errorf("warmedTotal = %d, want %d", updated.warmedTotal, 1<<20)
	}
	if !strings.Contains(updated.lastSummary, "All done") {
		t.Errorf("lastSummary = %q, want the session summary", updated.lastSummary)
	}
	if len(updated.transcript) != 3 {
		t.Errorf("transcript has %d lines, want 3", len(updated.transcript))
	}

	// Channel close ends the session.
	newModel, _ := updated.Update(sessionEventMsg{OK: false})
	updated = newModel.(Model)
	if updated.sessionRunning {
		t.Error("closed event channel should end the session")
	}
}

func TestUpdate_SessionEndSkipsLaunchWhenCancelled(t *testing.T) {
	m := testModel()
	m.sessionRunning = true
	m.launchAfter = true
	m.sessionTargets = []string{"/roots/prism/pack"}
	m.cfg.Launch.Command = "prismlauncher -l {instance}"
	m.session = warm.New(warm.Options{Targets: m.sessionTargets})
	m.session.Cancel()

	newModel, cmd := m.Update(sessionEventMsg{OK: false})
	updated := newModel.(Model)

	if updated.sessionRunning {
		t.Error("session should be over")
	}
	if cmd != nil {
		t.Error("a cancelled session should not launch the game")
	}
	if !strings.Contains(updated.statusMsg, "cancelled") {
		t.Errorf("statusMsg = %q, want a cancelled toast", updated.statusMsg)
	}
}

func TestUpdate_SessionEndLaunchesViaTemplate(t *testing.T) {
	m := testModel()
	m.sessionRunning = true
	m.launchAfter = true
	m.sessionTargets = []string{"/roots/prism/pack"}
	m.cfg.Launch.Command = "prismlauncher -l {instance}"

	newModel, cmd := m.Update(sessionEventMsg{OK: false})
	updated := newModel.(Model)

	if cmd == nil {
		t.Fatal("a finished session with launch-after enabled should spawn the launcher")
	}
	last := updated.transcript[len(updated.transcript)-1]
	if last != "Launching: prismlauncher -l pack" {
		t.Errorf("transcript line = %q", last)
	}
}

func TestUpdate_RootsDetected(t *testing.T) {
	t.Run("empty result shows a hint", func(t *testing.T) {
		m := testModel()
		newModel, _ := m.Update(rootsDetectedMsg{})
		updated := newModel.(Model)

		if updated.detecting {
			t.Error("detection should be over")
		}
		if !strings.Contains(updated.statusMsg, "No launcher folders found") {
			t.Errorf("statusMsg = %q", updated.statusMsg)
		}
	})

	t.Run("first root gets selected", func(t *testing.T) {
		m := testModel()
		newModel, cmd := m.Update(rootsDetectedMsg{Roots: []string{"/roots/prism"}})
		updated := newModel.(Model)

		if updated.instancesRoot != "/roots/prism" {
			t.Errorf("instancesRoot = %q", updated.instancesRoot)
		}
		if cmd == nil {
			t.Error("selecting a root should load its instances")
		}
	})
}

func TestUpdate_ToastExpiresOnTick(t *testing.T) {
	m := testModel()
	m.statusMsg = "old news"
	m.statusExpiry = time.Now().Add(-time.Second)

	newModel, _ := m.Update(tickMsg(time.Now()))
	updated := newModel.(Model)

	if updated.statusMsg != "" {
		t.Errorf("statusMsg = %q, want it cleared", updated.statusMsg)
	}
}

func TestUpdate_WarmWithoutSelection(t *testing.T) {
	m := testModel()

	newModel, cmd := m.Update(commandMsg{ID: keymap.CmdWarm})
	updated := newModel.(Model)

	if cmd != nil {
		t.Error("warm with nothing selected should not start")
	}
	if updated.sessionRunning {
		t.Error("no session should be running")
	}
	if !strings.Contains(updated.statusMsg, "Select at least one instance") {
		t.Errorf("statusMsg = %q", updated.statusMsg)
	}
}

func TestUpdate_CopyEmptyLog(t *testing.T) {
	m := testModel()

	newModel, cmd := m.Update(commandMsg{ID: keymap.CmdCopyLog})
	updated := newModel.(Model)

	if cmd != nil {
		t.Error("an empty transcript should not reach the clipboard")
	}
	if !strings.Contains(updated.statusMsg, "Log is empty") {
		t.Errorf("statusMsg = %q", updated.statusMsg)
	}
}

func TestUpdate_HelpOverlayOpensAndCloses(t *testing.T) {
	m := testModel()

	newModel, _ := m.Update(commandMsg{ID: keymap.CmdHelp})
	updated := newModel.(Model)
	if !updated.showHelp {
		t.Fatal("help command should open the overlay")
	}

	newModel, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated = newModel.(Model)
	if updated.showHelp {
		t.Error("esc should close the help overlay")
	}
}

func TestKeyDispatch_WarmKey(t *testing.T) {
	m := testModel()

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	if cmd == nil {
		t.Fatal("the w key should dispatch through the keymap")
	}
	msg, ok := cmd().(commandMsg)
	if !ok || msg.ID != keymap.CmdWarm {
		t.Fatalf("dispatched %#v, want commandMsg{%s}", msg, keymap.CmdWarm)
	}

	// Feeding the command back completes the round trip.
	updated := newModel.(Model)
	newModel, _ = updated.Update(msg)
	updated = newModel.(Model)
	if !strings.Contains(updated.statusMsg, "Select at least one instance") {
		t.Errorf("statusMsg = %q after warm with no selection", updated.statusMsg)
	}
}

func TestUpdate_ToggleDryRunPersists(t *testing.T) {
	m := testModel()

	newModel, cmd := m.Update(commandMsg{ID: keymap.CmdToggleDry})
	updated := newModel.(Model)

	if !updated.dryRun {
		t.Error("toggle should enable dry run")
	}
	if cmd == nil {
		t.Error("toggling dry run should persist the options")
	}
}

func TestUpdate_ToggleLaunchNeedsLauncher(t *testing.T) {
	m := testModel()

	newModel, _ := m.Update(commandMsg{ID: keymap.CmdToggleAfter})
	updated := newModel.(Model)
	if updated.launchAfter {
		t.Error("launch-after should stay off with no launcher and no command template")
	}

	m = testModel()
	m.cfg.Launch.Command = "prismlauncher -l {instance}"
	newModel, _ = m.Update(commandMsg{ID: keymap.CmdToggleAfter})
	updated = newModel.(Model)
	if !updated.launchAfter {
		t.Error("a command template makes launch-after available")
	}
}
