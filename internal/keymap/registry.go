// Package keymap maps keys and key sequences to named commands, with
// per-context bindings and user overrides layered on top of defaults.
package keymap

import (
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const sequenceTimeout = 500 * time.Millisecond

// Command represents a registered command handler.
type Command struct {
	ID      string
	Name    string
	Handler func() tea.Cmd
	Context string
}

// Binding maps a key or key sequence to a command.
type Binding struct {
	Key     string // e.g. "tab", "ctrl+s", "g g"
	Command string // Command ID
	Context string // "global" or a pane context
}

// Registry manages key bindings and command dispatch.
type Registry struct {
	mu            sync.RWMutex
	commands      map[string]Command   // ID -> Command
	bindings      map[string][]Binding // context -> bindings
	userOverrides map[string]string    // key -> command ID
	pendingKey    string
	pendingTime   time.Time
}

// NewRegistry creates a new keymap registry.
func NewRegistry() *Registry {
	return &Registry{
		commands:      make(map[string]Command),
		bindings:      make(map[string][]Binding),
		userOverrides: make(map[string]string),
	}
}

// RegisterCommand adds a command to the registry.
func (r *Registry) RegisterCommand(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[cmd.ID] = cmd
}

// RegisterBinding adds a key binding.
func (r *Registry) RegisterBinding(b Binding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings[b.Context] = append(r.bindings[b.Context], b)
}

// SetUserOverride sets a user-configured key override. Overrides win
// over every context binding.
func (r *Registry) SetUserOverride(key, commandID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.userOverrides[key] = commandID
}

// Handle dispatches a key event to the matching command handler, or
// returns nil when nothing is bound. Keys that prefix a multi-key
// sequence are held back until the sequence resolves or times out.
func (r *Registry) Handle(key tea.KeyMsg, activeContext string) tea.Cmd {
	r.mu.Lock()
	defer r.mu.Unlock()

	keyStr := keyToString(key)

	if r.pendingKey != "" {
		if time.Since(r.pendingTime) < sequenceTimeout {
			seq := r.pendingKey + " " + keyStr
			r.pendingKey = ""
			if cmd := r.findCommand(seq, activeContext); cmd != nil {
				return cmd
			}
			// Sequence missed; fall through to the bare key.
		} else {
			r.pendingKey = ""
		}
	}

	if r.isSequenceStart(keyStr, activeContext) {
		r.pendingKey = keyStr
		r.pendingTime = time.Now()
		return nil
	}

	return r.findCommand(keyStr, activeContext)
}

// findCommand resolves a key with the precedence user override, active
// context, global.
func (r *Registry) findCommand(key, activeContext string) tea.Cmd {
	if cmdID, ok := r.userOverrides[key]; ok {
		if cmd, ok := r.commands[cmdID]; ok && cmd.Handler != nil {
			return cmd.Handler()
		}
	}
	if activeContext != "" && activeContext != ContextGlobal {
		if cmd, found := r.findInContext(key, activeContext); found {
			return cmd
		}
	}
	cmd, _ := r.findInContext(key, ContextGlobal)
	return cmd
}

func (r *Registry) findInContext(key, context string) (tea.Cmd, bool) {
	for _, b := range r.bindings[context] {
		if b.Key == key {
			if cmd, ok := r.commands[b.Command]; ok && cmd.Handler != nil {
				return cmd.Handler(), true
			}
		}
	}
	return nil, false
}

// isSequenceStart reports whether key prefixes any bound sequence in
// the contexts that could fire.
func (r *Registry) isSequenceStart(key, activeContext string) bool {
	prefix := key + " "

	contexts := []string{ContextGlobal}
	if activeContext != "" && activeContext != ContextGlobal {
		contexts = append(contexts, activeContext)
	}
	for _, ctx := range contexts {
		for _, b := range r.bindings[ctx] {
			if strings.HasPrefix(b.Key, prefix) {
				return true
			}
		}
	}
	for k := range r.userOverrides {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// ResetPending clears any pending key sequence.
func (r *Registry) ResetPending() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pendingKey = ""
}

// HasPending reports whether a key sequence is waiting for its next
// key.
func (r *Registry) HasPending() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pendingKey != "" && time.Since(r.pendingTime) < sequenceTimeout
}

// GetCommand retrieves a command by ID.
func (r *Registry) GetCommand(id string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[id]
	return cmd, ok
}

// BindingsForContext returns all bindings for a given context.
func (r *Registry) BindingsForContext(context string) []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bindings[context]
}

// keyToString normalizes a key event to the binding notation.
// bubbletea's own String covers the named keys ("esc", "ctrl+s",
// "shift+tab"); the space key alone needs renaming to stay visible in
// config files.
func keyToString(key tea.KeyMsg) string {
	if key.Type == tea.KeyRunes && !key.Alt {
		return string(key.Runes)
	}
	s := key.String()
	if s == " " {
		return "space"
	}
	return s
}
