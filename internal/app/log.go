package app

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/wilbur182/mcwarm/internal/styles"
)

// appendLog adds one line to the transcript and the log viewport.
func (m *Model) appendLog(line string) {
	m.transcript = append(m.transcript, line)
	m.styledLog = append(m.styledLog, m.styleLogLine(line))
	m.logView.SetContent(strings.Join(m.styledLog, "\n"))
	if m.autoScroll {
		m.logView.GotoBottom()
	}
}

// rebuildLog re-styles the whole transcript. Needed after a resize or
// theme switch, since styled lines bake in width and colors.
func (m *Model) rebuildLog() {
	m.styledLog = make([]string, len(m.transcript))
	for i, line := range m.transcript {
		m.styledLog[i] = m.styleLogLine(line)
	}
	m.logView.SetContent(strings.Join(m.styledLog, "\n"))
	if m.autoScroll {
		m.logView.GotoBottom()
	}
}

// styleLogLine colors a log line by what it reports and truncates it
// to the viewport width; the raw transcript keeps the full text.
func (m *Model) styleLogLine(line string) string {
	if w := m.logView.Width; w > 0 {
		line = ansi.Truncate(line, w, "…")
	}
	switch {
	case strings.Contains(line, "] plan "):
		return styles.LogPlan.Render(line)
	case strings.Contains(line, "] warmed "):
		return styles.LogWarmed.Render(line)
	case strings.Contains(line, "] error ") || strings.HasPrefix(line, "Launch failed"):
		return styles.LogError.Render(line)
	case strings.HasPrefix(line, "Hit limit"):
		return styles.LogLimit.Render(line)
	case strings.HasPrefix(line, "Start "), strings.HasPrefix(line, "Done "),
		strings.HasPrefix(line, "All done"):
		return styles.Body.Render(line)
	}
	return styles.Muted.Render(line)
}
