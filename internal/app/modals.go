package app

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/mcwarm/internal/config"
	"github.com/wilbur182/mcwarm/internal/modal"
	"github.com/wilbur182/mcwarm/internal/mouse"
)

const (
	modalKindQuit    = "quit"
	modalKindAddRoot = "add-root"
)

// openQuitModal asks for confirmation while a session is running.
func (m *Model) openQuitModal() {
	m.activeModal = modal.New("Warm in progress",
		modal.WithVariant(modal.VariantDanger),
		modal.WithWidth(52),
		modal.WithSections(
			modal.Text("A warm session is still running. Quit anyway?"),
			modal.Spacer(),
			modal.Buttons(
				modal.Btn("Quit", "btn-quit", modal.BtnDanger()),
				modal.Btn("Keep running", "btn-keep"),
			),
		),
		modal.WithInitialFocus("btn-keep"),
	)
	m.modalKind = modalKindQuit
	m.modalHandler = mouse.NewHandler()
}

// openAddRootModal opens the add-a-scan-root dialog.
func (m *Model) openAddRootModal() {
	ti := textinput.New()
	ti.Placeholder = "/path/to/instances"
	ti.CharLimit = 256
	m.addRootInput = &ti
	remember := true
	m.rememberRoot = &remember

	m.activeModal = modal.New("Add root",
		modal.WithWidth(64),
		modal.WithSections(
			modal.InputWithLabel("input-root", "Folder to scan for instances", m.addRootInput,
				modal.WithSubmitAction("btn-add")),
			modal.Spacer(),
			modal.Checkbox("check-remember", "Remember this folder", m.rememberRoot),
			modal.Spacer(),
			modal.Buttons(
				modal.Btn("Add", "btn-add"),
				modal.Btn("Cancel", "btn-cancel"),
			),
		),
		modal.WithInitialFocus("input-root"),
	)
	m.modalKind = modalKindAddRoot
	m.modalHandler = mouse.NewHandler()
}

// closeModal dismisses the active modal.
func (m *Model) closeModal() {
	m.activeModal = nil
	m.modalKind = ""
	m.modalHandler = nil
	m.addRootInput = nil
	m.rememberRoot = nil
}

// handleModalAction resolves a modal action string into app behavior.
func (m *Model) handleModalAction(action string) tea.Cmd {
	switch m.modalKind {
	case modalKindQuit:
		switch action {
		case "btn-quit":
			m.cancelWarm()
			return tea.Quit
		case "btn-keep", modal.ActionCancel:
			m.closeModal()
		}

	case modalKindAddRoot:
		switch action {
		case "btn-add":
			return m.submitAddRoot()
		case "btn-cancel", modal.ActionCancel:
			m.closeModal()
		case "check-remember":
			// A click toggles; keyboard toggling happens in the section.
			if m.rememberRoot != nil {
				*m.rememberRoot = !*m.rememberRoot
			}
		case "input-root":
			// Mouse focus change, nothing to resolve.
		}
	}
	return nil
}

// submitAddRoot validates the entered path and adds it as a scan root.
func (m *Model) submitAddRoot() tea.Cmd {
	raw := strings.TrimSpace(m.addRootInput.Value())
	if raw == "" {
		m.showToast("Enter a folder path", true, 2*time.Second)
		return nil
	}
	if strings.HasPrefix(raw, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			raw = filepath.Join(home, raw[2:])
		}
	}
	path := filepath.Clean(raw)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		m.showToast("Not a directory: "+path, true, 3*time.Second)
		return nil
	}

	remember := m.rememberRoot != nil && *m.rememberRoot
	m.closeModal()

	var cmds []tea.Cmd
	if remember {
		m.cfg.Warm.ExtraRoots = appendRootOnce(m.cfg.Warm.ExtraRoots, path)
		extras := m.cfg.Warm.ExtraRoots
		cmds = append(cmds, func() tea.Msg {
			if err := config.SaveExtraRoots(extras); err != nil {
				return toastMsg{Text: "Saving roots failed: " + err.Error(), IsError: true, Duration: 3 * time.Second}
			}
			return nil
		})
	}

	m.roots = append(m.roots, path)
	m.rootCursor = len(m.roots) - 1
	m.setFocus(paneRoots)
	cmds = append(cmds, m.selectRoot(m.rootCursor))
	return tea.Batch(cmds...)
}

// appendRootOnce appends path unless it is already present.
func appendRootOnce(roots []string, path string) []string {
	for _, r := range roots {
		if r == path {
			return roots
		}
	}
	return append(roots, path)
}
