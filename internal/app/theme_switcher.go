package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wilbur182/mcwarm/internal/config"
	"github.com/wilbur182/mcwarm/internal/styles"
)

// themeSwitcherState tracks the open theme picker. Moving the cursor
// applies the highlighted theme immediately; esc restores the theme
// that was active when the picker opened.
type themeSwitcherState struct {
	names    []string
	cursor   int
	original string
}

func (m *Model) openThemeSwitcher() {
	names := styles.ListThemes()
	current := styles.GetCurrentThemeName()
	idx := 0
	for i, n := range names {
		if n == current {
			idx = i
			break
		}
	}
	m.themeSwitch = &themeSwitcherState{names: names, cursor: idx, original: current}
}

func (m Model) updateThemeSwitcher(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ts := m.themeSwitch
	switch msg.String() {
	case "up", "k":
		if ts.cursor > 0 {
			ts.cursor--
			m.applyTheme(ts.names[ts.cursor])
		}
	case "down", "j":
		if ts.cursor < len(ts.names)-1 {
			ts.cursor++
			m.applyTheme(ts.names[ts.cursor])
		}
	case "enter":
		name := ts.names[ts.cursor]
		m.applyTheme(name)
		m.cfg.UI.Theme.Name = name
		m.themeSwitch = nil
		return m, saveTheme(name)
	case "esc", "q", "t":
		m.applyTheme(ts.original)
		m.themeSwitch = nil
	}
	return m, nil
}

// applyTheme switches the palette and restyles everything that bakes
// colors into cached state.
func (m *Model) applyTheme(name string) {
	styles.ApplyThemeWithOverrides(name, m.cfg.UI.Theme.Overrides)
	w := m.progressBar.Width
	m.progressBar = newProgressBar()
	m.progressBar.Width = w
	m.rebuildLog()
}

func saveTheme(name string) tea.Cmd {
	return func() tea.Msg {
		if err := config.SaveTheme(name); err != nil {
			return toastMsg{Text: "Saving theme failed: " + err.Error(), IsError: true, Duration: 3 * time.Second}
		}
		return toastMsg{Text: "Theme: " + name, Duration: 2 * time.Second}
	}
}

func (m Model) renderThemeSwitcher() string {
	ts := m.themeSwitch
	var sb strings.Builder
	sb.WriteString(styles.ModalTitle.Render("Themes"))
	sb.WriteString("\n\n")

	for i, name := range ts.names {
		t := styles.GetTheme(name)
		display := t.DisplayName
		if name == m.cfg.UI.Theme.Name {
			display += " *"
		}
		namePart := fmt.Sprintf("%-20s", display)
		if i == ts.cursor {
			namePart = styles.ListItemSelected.Render("> " + namePart)
		} else {
			namePart = "  " + styles.Body.Render(namePart)
		}
		sb.WriteString(namePart + " " + themeSwatch(t))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Muted.Render("enter apply · esc cancel"))
	return styles.ModalBox.Width(40).Render(sb.String())
}

// themeSwatch previews a theme's brand colors as a row of dots.
func themeSwatch(t styles.Theme) string {
	var sb strings.Builder
	for _, hex := range []string{t.Colors.Primary, t.Colors.Secondary, t.Colors.Accent, t.Colors.Success} {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●"))
	}
	return sb.String()
}
