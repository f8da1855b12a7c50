package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wilbur182/mcwarm/internal/styles"
)

// --- Input Section ---

// InputOption is a functional option for Input sections.
type InputOption func(*inputSection)

// inputSection wraps a bubbles textinput.Model.
type inputSection struct {
	id            string
	label         string
	model         *textinput.Model
	submitOnEnter bool
	submitAction  string // Action ID to return on submit
}

// Input creates an input section wrapping a textinput.Model.
func Input(id string, model *textinput.Model, opts ...InputOption) Section {
	s := &inputSection{
		id:            id,
		model:         model,
		submitOnEnter: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InputWithLabel creates an input section with a label.
func InputWithLabel(id, label string, model *textinput.Model, opts ...InputOption) Section {
	s := &inputSection{
		id:            id,
		label:         label,
		model:         model,
		submitOnEnter: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithSubmitOnEnter enables or disables submit-on-enter behavior.
func WithSubmitOnEnter(submit bool) InputOption {
	return func(s *inputSection) {
		s.submitOnEnter = submit
	}
}

// WithSubmitAction sets the action ID returned on submit.
func WithSubmitAction(actionID string) InputOption {
	return func(s *inputSection) {
		s.submitAction = actionID
	}
}

func (s *inputSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	isFocused := s.id == focusID

	var sb strings.Builder
	labelLines := 0

	if s.label != "" {
		sb.WriteString(styles.Body.Render(s.label))
		sb.WriteString("\n")
		labelLines = 1
	}

	// Update model width and focus state
	if s.model != nil {
		s.model.Width = contentWidth - 4 // Account for input padding/border
		if isFocused {
			s.model.Focus()
		} else {
			s.model.Blur()
		}
	}

	// Border color follows focus/hover
	borderColor := styles.BorderNormal
	if isFocused {
		borderColor = styles.Primary
	} else if s.id == hoverID {
		borderColor = styles.TextMuted
	}
	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Width(contentWidth - 2)

	inputView := ""
	if s.model != nil {
		inputView = s.model.View()
	}
	sb.WriteString(inputStyle.Render(inputView))

	return RenderedSection{
		Content: sb.String(),
		Focusables: []FocusableInfo{{
			ID:      s.id,
			OffsetX: 0,
			OffsetY: labelLines,
			Width:   contentWidth,
			Height:  2, // bordered input: border rows plus content
		}},
	}
}

func (s *inputSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if s.id != focusID || s.model == nil {
		return "", nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Forward non-key messages (cursor blink) to the model
		var cmd tea.Cmd
		*s.model, cmd = s.model.Update(msg)
		return "", cmd
	}

	// Handle enter for submit
	if keyMsg.String() == "enter" && s.submitOnEnter {
		if s.submitAction != "" {
			return s.submitAction, nil
		}
		return "", nil
	}

	// Forward to textinput model
	var cmd tea.Cmd
	*s.model, cmd = s.model.Update(msg)
	return "", cmd
}
