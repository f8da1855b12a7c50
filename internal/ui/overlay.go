package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// OverlayModal composites a modal box over base content, centered in
// the given screen dimensions. The base shows through around the modal.
func OverlayModal(base, overlay string, width, height int) string {
	ow := lipgloss.Width(overlay)
	oh := lipgloss.Height(overlay)
	x := (width - ow) / 2
	y := (height - oh) / 2
	return OverlayAt(base, overlay, x, y)
}

// OverlayAt composites overlay onto base with its top-left corner at
// cell (x, y). Base lines under the overlay are cut ANSI-aware so the
// surrounding content keeps its styling.
func OverlayAt(base, overlay string, x, y int) string {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")
	ow := lipgloss.Width(overlay)

	for len(baseLines) < y+len(overlayLines) {
		baseLines = append(baseLines, "")
	}

	for i, oline := range overlayLines {
		row := y + i
		bline := baseLines[row]

		left := ansi.Truncate(bline, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}

		// Pad short overlay lines to the overlay's full width so the
		// base never peeks through inside the box.
		if pad := ow - ansi.StringWidth(oline); pad > 0 {
			oline += strings.Repeat(" ", pad)
		}

		right := ansi.TruncateLeft(bline, x+ow, "")

		baseLines[row] = left + oline + right
	}

	return strings.Join(baseLines, "\n")
}
