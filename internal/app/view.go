package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/wilbur182/mcwarm/internal/keymap"
	"github.com/wilbur182/mcwarm/internal/styles"
	"github.com/wilbur182/mcwarm/internal/ui"
)

// optionsContentH is the fixed content height of the options pane.
const optionsContentH = 9

// paneLayout carries the computed pane sizes for one frame. Widths and
// heights are content sizes; each pane adds 2 for its border.
type paneLayout struct {
	leftW, rightW int
	rootsH, instH int
	optsH, logH   int
}

func (m Model) layout() paneLayout {
	available := m.width - 4
	leftW := available * 34 / 100
	if leftW < 24 {
		leftW = 24
	}
	rightW := available - leftW
	if rightW < 20 {
		rightW = 20
	}

	// Header and footer take a row each, pane borders four more per column.
	column := m.height - 2 - 4

	rootsH := column * 35 / 100
	if rootsH < 3 {
		rootsH = 3
	}
	instH := column - rootsH
	if instH < 3 {
		instH = 3
	}

	optsH := optionsContentH
	if optsH > column-3 {
		optsH = max(1, column-3)
	}
	logH := column - optsH
	if logH < 3 {
		logH = 3
	}

	return paneLayout{
		leftW: leftW, rightW: rightW,
		rootsH: rootsH, instH: instH,
		optsH: optsH, logH: logH,
	}
}

// layoutPanes resizes the stateful widgets after a terminal resize.
func (m *Model) layoutPanes() {
	ly := m.layout()
	m.logView.Width = max(1, ly.rightW-2)
	m.logView.Height = max(1, ly.logH-2)
	m.progressBar.Width = max(10, ly.rightW-2)
}

// View renders the full screen.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	m.handler.Clear()

	base := lipgloss.JoinVertical(lipgloss.Top,
		m.renderHeader(),
		m.renderPanes(),
		m.renderFooter(),
	)

	switch {
	case m.activeModal != nil:
		box := m.activeModal.View(m.width, m.height, m.modalHandler)
		// The modal registered its hit regions against this position.
		x := (m.width - lipgloss.Width(box) + 2) / 2
		y := (m.height - lipgloss.Height(box)) / 2
		return ui.OverlayAt(base, box, x, y)
	case m.themeSwitch != nil:
		return ui.OverlayModal(base, m.renderThemeSwitcher(), m.width, m.height)
	case m.showHelp:
		return ui.OverlayModal(base, m.renderHelp(), m.width, m.height)
	}
	return base
}

func (m Model) renderHeader() string {
	var left string
	if m.intro.Active {
		left = " " + m.intro.View() + m.intro.TaglineView()
	} else {
		left = " " + LogoView() + styles.Muted.Render(" / "+introTagline)
	}

	right := m.renderStatusChip()
	if m.currentVersion != "" {
		right += " " + styles.Subtle.Render(m.currentVersion)
	}
	right += " "

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := ansi.Truncate(left+strings.Repeat(" ", gap)+right, m.width, "")
	return styles.Header.Width(m.width).Render(line)
}

func (m Model) renderStatusChip() string {
	switch {
	case m.sessionRunning:
		label := "warming"
		if m.dryRun {
			label = "planning"
		}
		return styles.StatusWarming.Render(fmt.Sprintf("%s %s %s",
			m.spinner.View(), label, humanize.IBytes(uint64(m.warmedTotal))))
	case m.lastSummary != "":
		return styles.StatusDone.Render("done")
	default:
		return styles.StatusIdle.Render("idle")
	}
}

func (m Model) renderPanes() string {
	ly := m.layout()

	// Pane rects first so row regions registered later sit on top.
	rightX := ly.leftW + 2
	m.handler.HitMap.AddRect("pane-roots", 0, 1, ly.leftW+2, ly.rootsH+2, nil)
	m.handler.HitMap.AddRect("pane-instances", 0, ly.rootsH+3, ly.leftW+2, ly.instH+2, nil)
	m.handler.HitMap.AddRect("pane-options", rightX, 1, ly.rightW+2, ly.optsH+2, nil)
	m.handler.HitMap.AddRect("pane-log", rightX, ly.optsH+3, ly.rightW+2, ly.logH+2, nil)

	roots := m.paneStyle(paneRoots).Width(ly.leftW).Height(ly.rootsH).Render(m.renderRootsPane(ly))
	insts := m.paneStyle(paneInstances).Width(ly.leftW).Height(ly.instH).Render(m.renderInstancesPane(ly))
	opts := m.paneStyle(paneOptions).Width(ly.rightW).Height(ly.optsH).Render(m.renderOptionsPane(ly))
	logp := m.paneStyle(paneLog).Width(ly.rightW).Height(ly.logH).Render(m.renderLogPane())

	left := lipgloss.JoinVertical(lipgloss.Top, roots, insts)
	right := lipgloss.JoinVertical(lipgloss.Top, opts, logp)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) paneStyle(p pane) lipgloss.Style {
	if m.focus == p && m.activeModal == nil {
		return styles.PanelActive
	}
	return styles.PanelInactive
}

func (m Model) renderRootsPane(ly paneLayout) string {
	cw := ly.leftW - 2
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(paneRoots.title()))
	sb.WriteString("\n\n")

	if m.detecting {
		sb.WriteString(m.skeleton.View(cw))
		return sb.String()
	}
	if len(m.roots) == 0 {
		sb.WriteString(styles.Muted.Render("No roots. Press a to add one."))
		return sb.String()
	}

	visible := ly.rootsH - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.rootCursor >= visible {
		start = m.rootCursor - visible + 1
	}
	end := min(start+visible, len(m.roots))

	for i := start; i < end; i++ {
		root := m.roots[i]
		marker := "  "
		if root == m.instancesRoot {
			marker = "* "
		}
		id := fmt.Sprintf("root-%d", i)
		m.handler.HitMap.AddRect(id, 2, 4+(i-start), cw, 1, nil)

		line := marker + truncatePath(root, cw-2)
		switch {
		case (i == m.rootCursor && m.focus == paneRoots) || m.hoverID == id:
			line = styles.ListItemSelected.Render(line)
		case root == m.instancesRoot:
			line = styles.Body.Render(line)
		default:
			line = styles.Muted.Render(line)
		}

		sb.WriteString(line)
		if i < end-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (m Model) renderInstancesPane(ly paneLayout) string {
	cw := ly.leftW - 2
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(paneInstances.title()))
	if sel := len(selectedPaths(m.instances)); sel > 0 {
		sb.WriteString(styles.Muted.Render(fmt.Sprintf("  %d selected", sel)))
	}
	sb.WriteString("\n\n")

	if m.refreshing {
		sb.WriteString(m.skeleton.View(cw))
		return sb.String()
	}
	if len(m.instances) == 0 {
		sb.WriteString(styles.Muted.Render("No instances under this root"))
		return sb.String()
	}

	visible := ly.instH - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.instCursor >= visible {
		start = m.instCursor - visible + 1
	}
	end := min(start+visible, len(m.instances))

	// One column for the scrollbar, one for the gap before it.
	rowW := max(1, cw-2)
	bar := ui.RenderScrollbar(ui.ScrollbarParams{
		TotalItems:   len(m.instances),
		ScrollOffset: start,
		VisibleItems: visible,
		TrackHeight:  end - start,
	})
	barLines := strings.Split(bar, "\n")

	top := ly.rootsH + 6
	for i := start; i < end; i++ {
		e := m.instances[i]
		id := fmt.Sprintf("inst-%d", i)
		m.handler.HitMap.AddRect(id, 2, top+(i-start), rowW, 1, nil)

		mark := " "
		if e.Selected {
			mark = "x"
		}
		line := ansi.Truncate(fmt.Sprintf("[%s] %s", mark, e.Name), rowW, "…")
		switch {
		case (i == m.instCursor && m.focus == paneInstances) || m.hoverID == id:
			line = styles.ListItemSelected.Render(line)
		case e.Selected:
			line = styles.Body.Render(line)
		default:
			line = styles.Muted.Render(line)
		}

		sb.WriteString(lipgloss.NewStyle().Width(rowW).Render(line))
		sb.WriteString(" ")
		sb.WriteString(barLines[i-start])
		if i < end-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (m Model) renderOptionsPane(ly paneLayout) string {
	cw := ly.rightW - 2
	cx := ly.leftW + 4

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(paneOptions.title()))
	sb.WriteString("\n\n")

	m.handler.HitMap.AddRect("opt-budget", cx, 4, cw, 1, nil)
	m.handler.HitMap.AddRect("opt-dry", cx, 5, cw, 1, nil)
	m.handler.HitMap.AddRect("opt-launch", cx, 6, cw, 1, nil)

	if m.editingBudget {
		sb.WriteString("Budget   " + m.budgetInput.View() + " GB")
	} else {
		row := fmt.Sprintf("Budget   %s GB", formatBudget(m.budgetGB()))
		sb.WriteString(m.optionRow(row, "opt-budget"))
	}
	sb.WriteString("\n")

	sb.WriteString(m.optionRow(fmt.Sprintf("%s Dry run (plan only)", checkbox(m.dryRun)), "opt-dry"))
	sb.WriteString("\n")

	launchAvailable := len(m.detected) > 0 || strings.TrimSpace(m.cfg.Launch.Command) != ""
	launchRow := fmt.Sprintf("%s Launch after warm", checkbox(m.launchAfter))
	if !launchAvailable {
		sb.WriteString(styles.Subtle.Render(launchRow + " (no launcher)"))
	} else {
		sb.WriteString(m.optionRow(launchRow, "opt-launch"))
	}
	sb.WriteString("\n")

	sb.WriteString(styles.Muted.Render(fmt.Sprintf("Chunk    %d MiB", m.chunkMiB)))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderWarmButton(cx, cw))
	sb.WriteString("\n")
	sb.WriteString(m.renderProgressRow(cw))

	return sb.String()
}

func (m Model) optionRow(text, id string) string {
	if m.hoverID == id {
		return styles.ListItemSelected.Render(text)
	}
	return styles.Body.Render(text)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// renderWarmButton renders the Warm/Stop button with its hit region and
// a short status blurb beside it.
func (m Model) renderWarmButton(cx, cw int) string {
	var btn, id, blurb string
	if m.sessionRunning {
		id = "btn-stop"
		style := styles.ButtonDanger
		if m.hoverID == id {
			style = styles.ButtonDangerHover
		}
		btn = style.Render("Stop")
		blurb = truncatePath(m.currentTarget, cw-lipgloss.Width(btn)-2)
	} else {
		id = "btn-warm"
		style := styles.Button
		if m.hoverID == id {
			style = styles.ButtonHover
		}
		btn = style.Render("Warm")
		if n := len(selectedPaths(m.instances)); n > 0 {
			blurb = fmt.Sprintf("%d instance(s)", n)
		} else {
			blurb = "nothing selected"
		}
	}
	m.handler.HitMap.AddRect(id, cx, 9, lipgloss.Width(btn), 1, nil)
	return btn + " " + styles.Muted.Render(blurb)
}

func (m Model) renderProgressRow(cw int) string {
	switch {
	case m.sessionRunning:
		return m.progressBar.ViewAs(m.progressRatio)
	case m.lastSummary != "":
		return styles.Muted.Render(ansi.Truncate(m.lastSummary, cw, "…"))
	default:
		return styles.Muted.Render("Ready")
	}
}

func (m Model) renderLogPane() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(paneLog.title()))
	if !m.autoScroll {
		sb.WriteString(styles.Muted.Render("  (scrolled)"))
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.logView.View())
	return sb.String()
}

func (m Model) renderFooter() string {
	if m.statusMsg != "" {
		style := styles.ToastSuccess
		if m.statusIsError {
			style = styles.ToastError
		}
		toast := style.Render(ansi.Truncate(m.statusMsg, m.width-2, "…"))
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Right).Render(toast)
	}
	if !m.cfg.UI.ShowFooter {
		return ""
	}
	return styles.Footer.Width(m.width).Render(" " + m.footerHints())
}

// footerHints builds the key hint line for the focused pane, context
// bindings first, then the globals that still fit.
func (m Model) footerHints() string {
	seen := make(map[string]bool)
	var parts []string
	add := func(b keymap.Binding) {
		cmd, ok := m.keymap.GetCommand(b.Command)
		if !ok || seen[b.Command] {
			return
		}
		seen[b.Command] = true
		parts = append(parts, styles.Code.Render(b.Key)+" "+styles.Muted.Render(strings.ToLower(cmd.Name)))
	}
	for _, b := range m.keymap.BindingsForContext(m.activeContext()) {
		add(b)
	}
	for _, b := range m.keymap.BindingsForContext(keymap.ContextGlobal) {
		add(b)
	}
	line := strings.Join(parts, styles.Subtle.Render(" · "))
	return ansi.Truncate(line, max(0, m.width-2), "…")
}

// truncatePath shortens a path to fit width, keeping the end.
func truncatePath(path string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	w := runewidth.StringWidth(path)
	if w <= maxWidth {
		return path
	}
	if maxWidth < 10 {
		return runewidth.Truncate(path, maxWidth, "")
	}
	return runewidth.TruncateLeft(path, w-maxWidth+3, "...")
}
