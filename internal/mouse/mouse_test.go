package mouse

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},  // top-left corner
		{5, 4, true},  // bottom-right inside
		{6, 3, false}, // one past right edge
		{2, 5, false}, // one past bottom edge
		{1, 3, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestHitMap_TopmostRegionWins(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("backdrop", 0, 0, 80, 24, nil)
	hm.AddRect("panel", 10, 5, 30, 10, nil)
	hm.AddRect("button", 12, 6, 8, 1, nil)

	if got := hm.Test(13, 6); got == nil || got.ID != "button" {
		t.Errorf("Test over button = %v, want button", got)
	}
	if got := hm.Test(11, 5); got == nil || got.ID != "panel" {
		t.Errorf("Test over panel = %v, want panel", got)
	}
	if got := hm.Test(0, 0); got == nil || got.ID != "backdrop" {
		t.Errorf("Test over backdrop = %v, want backdrop", got)
	}
	if got := hm.Test(200, 200); got != nil {
		t.Errorf("Test outside all = %v, want nil", got)
	}
}

func TestHitMap_ClearRemovesRegions(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("a", 0, 0, 5, 5, nil)
	hm.Clear()
	if got := hm.Test(1, 1); got != nil {
		t.Errorf("Test after Clear = %v, want nil", got)
	}
}

func TestHandler_DoubleClickSameRegion(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("item", 0, 0, 10, 1, nil)

	first := h.HandleClick(1, 0)
	if first.IsDoubleClick {
		t.Error("first click should not be a double-click")
	}
	second := h.HandleClick(2, 0)
	if !second.IsDoubleClick {
		t.Error("rapid second click on same region should be a double-click")
	}
	// A third rapid click starts over rather than chaining.
	third := h.HandleClick(1, 0)
	if third.IsDoubleClick {
		t.Error("triple click should not count as another double-click")
	}
}

func TestHandler_DoubleClickExpires(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("item", 0, 0, 10, 1, nil)

	h.HandleClick(1, 0)
	h.lastClickTime = time.Now().Add(-2 * doubleClickWindow)
	if h.HandleClick(1, 0).IsDoubleClick {
		t.Error("slow second click should not be a double-click")
	}
}

func TestHandler_DifferentRegionsNoDoubleClick(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("a", 0, 0, 5, 1, nil)
	h.HitMap.AddRect("b", 5, 0, 5, 1, nil)

	h.HandleClick(1, 0)
	if h.HandleClick(6, 0).IsDoubleClick {
		t.Error("clicks on different regions should not double-click")
	}
}

func TestHandleMouse_WheelScroll(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("log", 0, 0, 40, 20, nil)

	up := h.HandleMouse(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if up.Type != ActionScrollUp || up.Delta != -3 {
		t.Errorf("wheel up = %+v", up)
	}
	if up.Region == nil || up.Region.ID != "log" {
		t.Error("wheel up should carry the hovered region")
	}

	down := h.HandleMouse(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if down.Type != ActionScrollDown || down.Delta != 3 {
		t.Errorf("wheel down = %+v", down)
	}
}

func TestHandleMouse_HoverAndMiss(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("chip", 0, 0, 6, 1, nil)

	hover := h.HandleMouse(tea.MouseMsg{X: 2, Y: 0, Action: tea.MouseActionMotion})
	if hover.Type != ActionHover || hover.Region == nil || hover.Region.ID != "chip" {
		t.Errorf("hover = %+v", hover)
	}

	miss := h.HandleMouse(tea.MouseMsg{X: 30, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if miss.Type != ActionNone {
		t.Errorf("click on empty space = %+v, want ActionNone", miss)
	}
}
