package app

import (
	"testing"
	"time"
)

func TestIntroModel_Update(t *testing.T) {
	m := NewIntroModel()

	if !m.Active {
		t.Error("NewIntroModel should be active")
	}

	// Letter delays gate on the wall clock, so drive the animation with
	// fixed frame steps until it settles.
	const dt = 16 * time.Millisecond
	timeout := 5 * time.Second
	start := time.Now()

	for !m.Done {
		m.Update(dt)
		if time.Since(start) > timeout {
			t.Fatal("Intro animation timed out")
		}
	}

	for i, l := range m.Letters {
		targetX := float64(i)
		if l.CurrentX < targetX-0.1 || l.CurrentX > targetX+0.1 {
			t.Errorf("Letter %d not at target X. Got %f, want %f", i, l.CurrentX, targetX)
		}
	}
}

func TestIntroModel_TaglineFade(t *testing.T) {
	m := NewIntroModel()

	const dt = 16 * time.Millisecond
	timeout := 6 * time.Second
	start := time.Now()

	for m.TaglineOpacity < 1.0 {
		m.Update(dt)
		if time.Since(start) > timeout {
			t.Fatal("Tagline fade timed out")
		}
	}

	if !m.Done {
		t.Error("Done should be set before the tagline finishes fading")
	}
	if m.TaglineView() == "" {
		t.Error("TaglineView should render once opacity is positive")
	}
}

func TestIntroModel_ViewClipsToSettledWidth(t *testing.T) {
	m := NewIntroModel()

	const dt = 16 * time.Millisecond
	start := time.Now()
	for !m.Done {
		m.Update(dt)
		if time.Since(start) > 5*time.Second {
			t.Fatal("Intro animation timed out")
		}
	}

	if v := m.View(); v == "" {
		t.Error("View should render while active")
	}

	m.Active = false
	if v := m.View(); v != "" {
		t.Errorf("View should be empty once inactive, got %q", v)
	}
}
