package keymap

// Context names used by the app surface.
const (
	ContextGlobal    = "global"
	ContextRoots     = "roots"
	ContextInstances = "instances"
	ContextOptions   = "options"
	ContextLog       = "log"
	ContextModal     = "modal"
)

// Command IDs dispatched through the registry.
const (
	CmdQuit         = "app.quit"
	CmdForceQuit    = "app.force-quit"
	CmdHelp         = "app.help"
	CmdThemes       = "app.themes"
	CmdNextPane     = "app.next-pane"
	CmdPrevPane     = "app.prev-pane"
	CmdRefresh      = "app.refresh"
	CmdWarm         = "warm.start"
	CmdCancel       = "warm.cancel"
	CmdAddRoot      = "roots.add"
	CmdToggleSelect = "instances.toggle"
	CmdSelectAll    = "instances.select-all"
	CmdSelectNone   = "instances.select-none"
	CmdReveal       = "instances.reveal"
	CmdToggleDry    = "options.toggle-dry"
	CmdToggleAfter  = "options.toggle-launch"
	CmdEditBudget   = "options.edit-budget"
	CmdCopyLog      = "log.copy"
)

// RegisterDefaults installs the default key bindings.
func RegisterDefaults(r *Registry) {
	defaults := []Binding{
		{Key: "q", Command: CmdQuit, Context: ContextGlobal},
		{Key: "ctrl+c", Command: CmdForceQuit, Context: ContextGlobal},
		{Key: "?", Command: CmdHelp, Context: ContextGlobal},
		{Key: "t", Command: CmdThemes, Context: ContextGlobal},
		{Key: "tab", Command: CmdNextPane, Context: ContextGlobal},
		{Key: "shift+tab", Command: CmdPrevPane, Context: ContextGlobal},
		{Key: "r", Command: CmdRefresh, Context: ContextGlobal},
		{Key: "w", Command: CmdWarm, Context: ContextGlobal},
		{Key: "c", Command: CmdCancel, Context: ContextGlobal},
		{Key: "esc", Command: CmdCancel, Context: ContextGlobal},

		{Key: "a", Command: CmdAddRoot, Context: ContextRoots},

		{Key: "space", Command: CmdToggleSelect, Context: ContextInstances},
		{Key: "A", Command: CmdSelectAll, Context: ContextInstances},
		{Key: "N", Command: CmdSelectNone, Context: ContextInstances},
		{Key: "o", Command: CmdReveal, Context: ContextInstances},

		{Key: "d", Command: CmdToggleDry, Context: ContextOptions},
		{Key: "l", Command: CmdToggleAfter, Context: ContextOptions},
		{Key: "enter", Command: CmdEditBudget, Context: ContextOptions},

		{Key: "y", Command: CmdCopyLog, Context: ContextLog},
	}
	for _, b := range defaults {
		r.RegisterBinding(b)
	}
}
