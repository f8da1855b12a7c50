package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func scrollbarLines(t *testing.T, params ScrollbarParams) []string {
	t.Helper()
	out := RenderScrollbar(params)
	if out == "" {
		t.Fatal("empty scrollbar output")
	}
	return strings.Split(out, "\n")
}

func TestRenderScrollbar_AllVisibleReturnsSpacer(t *testing.T) {
	lines := scrollbarLines(t, ScrollbarParams{
		TotalItems: 5, ScrollOffset: 0, VisibleItems: 10, TrackHeight: 4,
	})
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	for _, line := range lines {
		if line != " " {
			t.Errorf("spacer line = %q, want single space", line)
		}
	}
}

func TestRenderScrollbar_ThumbAtTopWhenUnscrolled(t *testing.T) {
	lines := scrollbarLines(t, ScrollbarParams{
		TotalItems: 100, ScrollOffset: 0, VisibleItems: 10, TrackHeight: 10,
	})
	if !strings.Contains(ansi.Strip(lines[0]), "┃") {
		t.Errorf("first line = %q, want thumb at top", lines[0])
	}
	if !strings.Contains(ansi.Strip(lines[9]), "│") {
		t.Errorf("last line = %q, want track at bottom", lines[9])
	}
}

func TestRenderScrollbar_ThumbAtBottomWhenFullyScrolled(t *testing.T) {
	lines := scrollbarLines(t, ScrollbarParams{
		TotalItems: 100, ScrollOffset: 90, VisibleItems: 10, TrackHeight: 10,
	})
	if !strings.Contains(ansi.Strip(lines[9]), "┃") {
		t.Errorf("last line = %q, want thumb at bottom", lines[9])
	}
}

func TestRenderScrollbar_ExactHeight(t *testing.T) {
	for _, h := range []int{1, 3, 17} {
		lines := scrollbarLines(t, ScrollbarParams{
			TotalItems: 50, ScrollOffset: 5, VisibleItems: 10, TrackHeight: h,
		})
		if len(lines) != h {
			t.Errorf("TrackHeight %d rendered %d lines", h, len(lines))
		}
	}
}

func TestRenderScrollbar_ZeroHeight(t *testing.T) {
	if out := RenderScrollbar(ScrollbarParams{TotalItems: 10, VisibleItems: 5}); out != "" {
		t.Errorf("zero-height scrollbar = %q, want empty", out)
	}
}
