package ui

import (
	"strings"
	"testing"
)

func plainGrid(w, h int, fill string) string {
	row := strings.Repeat(fill, w)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func TestOverlayAt_ReplacesCoveredCells(t *testing.T) {
	base := plainGrid(10, 4, ".")
	out := OverlayAt(base, "XX\nXX", 3, 1)

	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want 4", len(lines))
	}
	if lines[0] != ".........." {
		t.Errorf("row 0 modified: %q", lines[0])
	}
	if lines[1] != "...XX....." {
		t.Errorf("row 1 = %q, want %q", lines[1], "...XX.....")
	}
	if lines[2] != "...XX....." {
		t.Errorf("row 2 = %q, want %q", lines[2], "...XX.....")
	}
	if lines[3] != ".........." {
		t.Errorf("row 3 modified: %q", lines[3])
	}
}

func TestOverlayAt_ExtendsShortBase(t *testing.T) {
	out := OverlayAt("ab", "XYZ\nXYZ", 1, 1)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	if lines[1] != " XYZ" {
		t.Errorf("row 1 = %q, want %q", lines[1], " XYZ")
	}
}

func TestOverlayAt_PadsShortOverlayLines(t *testing.T) {
	base := plainGrid(8, 2, "#")
	out := OverlayAt(base, "AAAA\nB", 2, 0)
	lines := strings.Split(out, "\n")
	// The short overlay line covers the overlay's full width.
	if lines[1] != "##B   ##" {
		t.Errorf("row 1 = %q, want %q", lines[1], "##B   ##")
	}
}

func TestOverlayModal_Centers(t *testing.T) {
	base := plainGrid(11, 5, "-")
	out := OverlayModal(base, "XXX", 11, 5)
	lines := strings.Split(out, "\n")
	if lines[2] != "----XXX----" {
		t.Errorf("centered row = %q, want %q", lines[2], "----XXX----")
	}
}

func TestOverlayAt_NegativePositionClamped(t *testing.T) {
	base := plainGrid(6, 2, ".")
	out := OverlayAt(base, "ZZ", -3, -3)
	lines := strings.Split(out, "\n")
	if lines[0] != "ZZ...." {
		t.Errorf("row 0 = %q, want %q", lines[0], "ZZ....")
	}
}
