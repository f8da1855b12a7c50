// Package modal renders centered dialog boxes composed of stacked
// sections (text, inputs, buttons). Sections report their focusable
// elements; the modal owns focus order, scrolling, and mouse hit
// regions.
package modal

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/mcwarm/internal/mouse"
)

// Variant selects the modal's border and title accent.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDanger
	VariantWarning
	VariantInfo
)

const (
	// MinModalWidth is the narrowest a modal box will render.
	MinModalWidth = 40
	// ModalPadding is the horizontal overhead of border plus padding.
	ModalPadding = 6
)

// ActionCancel is returned from Update when the modal is dismissed.
const ActionCancel = "cancel"

// Modal is a centered dialog composed of sections.
type Modal struct {
	title     string
	variant   Variant
	width     int
	sections  []Section
	showHints bool

	focusIdx     int
	focusIDs     []string
	pendingFocus string
	hoverID      string
	scrollOffset int
}

// Option configures a Modal.
type Option func(*Modal)

// New creates a modal with the given title and options.
func New(title string, opts ...Option) *Modal {
	m := &Modal{
		title:     title,
		width:     60,
		showHints: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithSections sets the modal's content sections.
func WithSections(sections ...Section) Option {
	return func(m *Modal) {
		m.sections = sections
	}
}

// WithWidth sets the desired modal width (clamped to the screen).
func WithWidth(width int) Option {
	return func(m *Modal) {
		m.width = width
	}
}

// WithVariant sets the border/title accent.
func WithVariant(v Variant) Option {
	return func(m *Modal) {
		m.variant = v
	}
}

// WithoutHints hides the keyboard hint line.
func WithoutHints() Option {
	return func(m *Modal) {
		m.showHints = false
	}
}

// WithInitialFocus focuses the element with the given ID on first render.
func WithInitialFocus(id string) Option {
	return func(m *Modal) {
		m.pendingFocus = id
	}
}

// currentFocusID returns the ID of the focused element, or "".
func (m *Modal) currentFocusID() string {
	if m.focusIdx >= 0 && m.focusIdx < len(m.focusIDs) {
		return m.focusIDs[m.focusIdx]
	}
	return ""
}

// FocusNext moves focus to the next focusable element.
func (m *Modal) FocusNext() {
	if len(m.focusIDs) == 0 {
		return
	}
	m.focusIdx = (m.focusIdx + 1) % len(m.focusIDs)
}

// FocusPrev moves focus to the previous focusable element.
func (m *Modal) FocusPrev() {
	if len(m.focusIDs) == 0 {
		return
	}
	m.focusIdx = (m.focusIdx - 1 + len(m.focusIDs)) % len(m.focusIDs)
}

// Focus moves focus to the element with the given ID. Before the first
// render the request is deferred until focus IDs exist.
func (m *Modal) Focus(id string) {
	for i, fid := range m.focusIDs {
		if fid == id {
			m.focusIdx = i
			return
		}
	}
	m.pendingFocus = id
}

// Update processes a message. It returns a non-empty action when the
// modal resolved (a button was activated, an input submitted, or the
// modal was cancelled); the caller decides what the action means.
func (m *Modal) Update(msg tea.Msg) (string, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			return ActionCancel, nil
		case "tab":
			m.FocusNext()
			return "", nil
		case "shift+tab":
			m.FocusPrev()
			return "", nil
		case "pgup":
			m.scrollOffset -= 3
			return "", nil
		case "pgdown":
			m.scrollOffset += 3
			return "", nil
		}
	}

	// Forward to sections; the focused section may emit an action.
	focusID := m.currentFocusID()
	var cmds []tea.Cmd
	for _, s := range m.sections {
		action, cmd := s.Update(msg, focusID)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if action != "" {
			return action, tea.Batch(cmds...)
		}
	}
	return "", tea.Batch(cmds...)
}

// HandleMouse processes a mouse event against the hit regions the last
// View registered. Clicking a focusable element focuses it and returns
// its ID as the action; clicks elsewhere are absorbed.
func (m *Modal) HandleMouse(msg tea.MouseMsg, handler *mouse.Handler) (string, tea.Cmd) {
	if handler == nil {
		return "", nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.hoverID = ""
		if region := handler.HitMap.Test(msg.X, msg.Y); region != nil && isFocusableRegion(region.ID) {
			m.hoverID = region.ID
		}
		return "", nil

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollOffset--
			return "", nil
		case tea.MouseButtonWheelDown:
			m.scrollOffset++
			return "", nil
		case tea.MouseButtonLeft:
			result := handler.HandleClick(msg.X, msg.Y)
			if result.Region == nil || !isFocusableRegion(result.Region.ID) {
				return "", nil
			}
			m.Focus(result.Region.ID)
			return result.Region.ID, nil
		}
	}
	return "", nil
}

// isFocusableRegion filters out the absorber regions buildLayout adds.
func isFocusableRegion(id string) bool {
	return id != "modal-backdrop" && id != "modal-body"
}

// View renders the modal box for the given screen size, registering
// mouse hit regions on handler when it is non-nil. The caller centers
// the returned box on screen.
func (m *Modal) View(screenW, screenH int, handler *mouse.Handler) string {
	out := m.buildLayout(screenW, screenH, handler)
	if m.pendingFocus != "" {
		for i, fid := range m.focusIDs {
			if fid == m.pendingFocus {
				m.focusIdx = i
				break
			}
		}
		m.pendingFocus = ""
	}
	return out
}
