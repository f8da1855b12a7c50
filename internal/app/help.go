package app

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/mcwarm/internal/config"
	"github.com/wilbur182/mcwarm/internal/styles"
)

// helpText is the quick reference behind the ? overlay.
const helpText = `# mcwarm

Reads the mod, config, and asset files of the selected instances into
the OS file cache so the next launch pulls them from memory instead of
disk.

## Keys

| Key | Action |
| --- | --- |
| tab / shift+tab | switch pane |
| w | warm selected instances |
| c / esc | cancel the running warm |
| space | toggle instance |
| A / N | select all / none |
| o | reveal instance folder |
| a | add a root folder |
| d | toggle dry run |
| l | toggle launch after warm |
| enter | edit the budget |
| y | copy log |
| r | refresh |
| t | themes |
| ? | this help |
| q | quit |

Dry run plans the read order without touching file contents. The
budget caps how many bytes one session reads; warming stops at the
limit and can be rerun.
`

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?":
		m.showHelp = false
		m.helpScroll = 0
	case "up", "k":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	case "down", "j":
		m.helpScroll = min(m.helpScroll+1, strings.Count(helpText, "\n"))
	case "pgup":
		m.helpScroll = max(0, m.helpScroll-10)
	case "pgdown":
		m.helpScroll = min(m.helpScroll+10, strings.Count(helpText, "\n"))
	case "g", "home":
		m.helpScroll = 0
	}
	return m, nil
}

func (m Model) renderHelp() string {
	w := min(64, m.width-8)
	if w < 24 {
		w = 24
	}

	var lines []string
	if m.helpRend != nil {
		lines = m.helpRend.RenderContent(helpText, w-4)
	} else {
		lines = strings.Split(helpText, "\n")
	}

	maxRows := m.height - 8
	if maxRows < 5 {
		maxRows = 5
	}
	scroll := m.helpScroll
	if scroll > len(lines)-maxRows {
		scroll = max(0, len(lines)-maxRows)
	}
	end := min(scroll+maxRows, len(lines))

	body := strings.Join(lines[scroll:end], "\n")
	if end < len(lines) {
		body += "\n" + styles.Muted.Render("↓ more")
	}
	return styles.ModalBox.Width(w).Render(body)
}

// markIntroSeen records that the first-run help was shown.
func markIntroSeen() tea.Cmd {
	return func() tea.Msg {
		if err := config.SaveIntroSeen(); err != nil {
			slog.Debug("saving intro seen failed", "error", err)
		}
		return nil
	}
}
