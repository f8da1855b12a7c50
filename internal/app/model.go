package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/mcwarm/internal/config"
	"github.com/wilbur182/mcwarm/internal/keymap"
	"github.com/wilbur182/mcwarm/internal/launcher"
	"github.com/wilbur182/mcwarm/internal/markdown"
	"github.com/wilbur182/mcwarm/internal/modal"
	"github.com/wilbur182/mcwarm/internal/mouse"
	"github.com/wilbur182/mcwarm/internal/styles"
	"github.com/wilbur182/mcwarm/internal/ui"
	"github.com/wilbur182/mcwarm/internal/warm"
)

// pane identifies one of the four fixed panes.
type pane int

const (
	paneRoots pane = iota
	paneInstances
	paneOptions
	paneLog
	paneCount
)

// context returns the keymap context for the pane.
func (p pane) context() string {
	switch p {
	case paneRoots:
		return keymap.ContextRoots
	case paneInstances:
		return keymap.ContextInstances
	case paneOptions:
		return keymap.ContextOptions
	case paneLog:
		return keymap.ContextLog
	}
	return keymap.ContextGlobal
}

func (p pane) title() string {
	switch p {
	case paneRoots:
		return "Roots"
	case paneInstances:
		return "Instances"
	case paneOptions:
		return "Options"
	case paneLog:
		return "Log"
	}
	return ""
}

// Model is the root Bubble Tea model for the mcwarm application.
type Model struct {
	cfg            *config.Config
	keymap         *keymap.Registry
	currentVersion string

	// UI state
	width, height int
	ready         bool
	focus         pane
	handler       *mouse.Handler
	hoverID       string

	// Roots pane
	roots      []string
	rootCursor int
	detected   []launcher.Detected
	detecting  bool

	// Instances pane
	instances     []instanceEntry
	instancesRoot string
	instCursor    int
	refreshing    bool
	skeleton      ui.Skeleton

	// Root watcher
	watcher *rootWatcher

	// Options pane
	budgetInput   textinput.Model
	editingBudget bool
	dryRun        bool
	launchAfter   bool
	chunkMiB      int

	// Log pane
	logView       viewport.Model
	transcript    []string
	styledLog     []string
	autoScroll    bool
	progressBar   progress.Model
	progressRatio float64

	// Warm session
	session        *warm.Session
	sessionRunning bool
	sessionTargets []string
	warmedTotal    int64
	currentTarget  string
	lastSummary    string
	spinner        ui.BrailleSpinner

	// Toast
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool

	// Modals. The input and checkbox binding live behind pointers so
	// the modal sections keep working across model copies.
	activeModal  *modal.Modal
	modalKind    string // "quit", "add-root"
	modalHandler *mouse.Handler
	addRootInput *textinput.Model
	rememberRoot *bool

	// Overlays
	showHelp    bool
	helpScroll  int
	helpRend    *markdown.Renderer
	themeSwitch *themeSwitcherState

	// Intro animation
	intro IntroModel
}

// New creates the application model.
func New(cfg *config.Config, km *keymap.Registry, currentVersion string) Model {
	bi := textinput.New()
	bi.Placeholder = "8.0"
	bi.CharLimit = 8
	bi.Width = 8
	bi.SetValue(formatBudget(cfg.Warm.BudgetGB))

	lv := viewport.New(0, 0)

	m := Model{
		cfg:            cfg,
		keymap:         km,
		currentVersion: currentVersion,
		focus:          paneInstances,
		handler:        mouse.NewHandler(),
		detecting:      true,
		refreshing:     true,
		skeleton:       ui.NewSkeleton(6, nil),
		budgetInput:    bi,
		dryRun:         cfg.Warm.DryRun,
		launchAfter:    cfg.Launch.AfterWarm,
		chunkMiB:       cfg.Warm.ChunkSizeMiB,
		logView:        lv,
		autoScroll:     true,
		progressBar:    newProgressBar(),
		spinner:        ui.NewBrailleSpinner(),
		showHelp:       !cfg.UI.IntroSeen,
		intro:          NewIntroModel(),
	}
	m.helpRend, _ = markdown.NewRenderer()
	registerCommands(km)
	return m
}

// newProgressBar builds the warm progress bar in the current theme.
func newProgressBar() progress.Model {
	p := progress.New(
		progress.WithGradient(string(styles.Primary), string(styles.Accent)),
		progress.WithoutPercentage(),
	)
	return p
}

// Init starts detection, the intro animation, and the housekeeping tick.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(),
		IntroTick(),
		ui.SkeletonTick(),
		detectRoots(m.cfg.Warm.ExtraRoots),
		checkVersion(m.currentVersion),
	}
	if !m.cfg.UI.IntroSeen {
		cmds = append(cmds, markIntroSeen())
	}
	return tea.Batch(cmds...)
}

// activeContext is the keymap context of the current focus state.
func (m Model) activeContext() string {
	if m.activeModal != nil {
		return keymap.ContextModal
	}
	return m.focus.context()
}

// currentRoot returns the highlighted root, or "".
func (m Model) currentRoot() string {
	if m.rootCursor >= 0 && m.rootCursor < len(m.roots) {
		return m.roots[m.rootCursor]
	}
	return ""
}

// currentInstance returns the highlighted instance entry, or nil.
func (m *Model) currentInstance() *instanceEntry {
	if m.instCursor >= 0 && m.instCursor < len(m.instances) {
		return &m.instances[m.instCursor]
	}
	return nil
}

// setFocus moves pane focus and resets any pending key sequence.
func (m *Model) setFocus(p pane) {
	m.focus = p
	m.keymap.ResetPending()
}

// nextPane cycles focus forward.
func (m *Model) nextPane() {
	m.setFocus((m.focus + 1) % paneCount)
}

// prevPane cycles focus backward.
func (m *Model) prevPane() {
	m.setFocus((m.focus - 1 + paneCount) % paneCount)
}

// showToast displays a temporary status message.
func (m *Model) showToast(msg string, isError bool, duration time.Duration) {
	m.statusMsg = msg
	m.statusIsError = isError
	m.statusExpiry = time.Now().Add(duration)
}

// clearExpiredToast clears the toast once its time is up.
func (m *Model) clearExpiredToast() {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsError = false
	}
}

// budgetGB parses the budget input, falling back to the configured
// value when the field does not hold a valid non-negative number.
func (m Model) budgetGB() float64 {
	if v, err := parseBudget(m.budgetInput.Value()); err == nil {
		return v
	}
	return m.cfg.Warm.BudgetGB
}

// formatBudget renders a budget for the input field.
func formatBudget(gb float64) string {
	return fmt.Sprintf("%g", gb)
}

// registerCommands installs the command handlers the key bindings
// dispatch to. Each handler routes back through the update loop as a
// commandMsg so all state changes happen in one place.
func registerCommands(km *keymap.Registry) {
	commands := []keymap.Command{
		{ID: keymap.CmdQuit, Name: "Quit"},
		{ID: keymap.CmdForceQuit, Name: "Force quit"},
		{ID: keymap.CmdHelp, Name: "Help"},
		{ID: keymap.CmdThemes, Name: "Themes"},
		{ID: keymap.CmdNextPane, Name: "Next pane"},
		{ID: keymap.CmdPrevPane, Name: "Previous pane"},
		{ID: keymap.CmdRefresh, Name: "Refresh"},
		{ID: keymap.CmdWarm, Name: "Warm"},
		{ID: keymap.CmdCancel, Name: "Cancel"},
		{ID: keymap.CmdAddRoot, Name: "Add root"},
		{ID: keymap.CmdToggleSelect, Name: "Toggle"},
		{ID: keymap.CmdSelectAll, Name: "All"},
		{ID: keymap.CmdSelectNone, Name: "None"},
		{ID: keymap.CmdReveal, Name: "Reveal"},
		{ID: keymap.CmdToggleDry, Name: "Dry run"},
		{ID: keymap.CmdToggleAfter, Name: "Launch after"},
		{ID: keymap.CmdEditBudget, Name: "Edit budget"},
		{ID: keymap.CmdCopyLog, Name: "Copy log"},
	}
	for _, c := range commands {
		id := c.ID
		c.Handler = func() tea.Cmd {
			return func() tea.Msg { return commandMsg{ID: id} }
		}
		km.RegisterCommand(c)
	}
}
