// Package styles holds the shared color palette and lipgloss styles for
// the TUI. Themes reassign the package variables; views read them on
// every render, so a theme switch takes effect on the next frame.
package styles

import "github.com/charmbracelet/lipgloss"

// Color variables reassigned by ApplyThemeColors.
var (
	// Brand colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Text colors
	TextPrimary        lipgloss.Color
	TextSecondary      lipgloss.Color
	TextMuted          lipgloss.Color
	TextSubtle         lipgloss.Color
	TextSelectionColor lipgloss.Color
	TextHighlight      lipgloss.Color
	TextInverse        lipgloss.Color

	// Background colors
	BgPrimary   lipgloss.Color
	BgSecondary lipgloss.Color
	BgTertiary  lipgloss.Color
	BgOverlay   lipgloss.Color

	// Border colors
	BorderNormal lipgloss.Color
	BorderActive lipgloss.Color
	BorderMuted  lipgloss.Color

	// Widget colors
	ButtonHoverColor      lipgloss.Color
	LinkColor             lipgloss.Color
	ToastSuccessTextColor lipgloss.Color
	ToastErrorTextColor   lipgloss.Color
	ScrollbarTrackColor   lipgloss.Color
	ScrollbarThumbColor   lipgloss.Color

	// Danger button colors
	DangerLight  lipgloss.Color
	DangerDark   lipgloss.Color
	DangerBright lipgloss.Color
	DangerHover  lipgloss.Color
)

// CurrentMarkdownTheme is the glamour style name of the active theme.
var CurrentMarkdownTheme string

// Style variables rebuilt by rebuildStyles whenever a theme is applied.
var (
	// Panels
	PanelActive   lipgloss.Style
	PanelInactive lipgloss.Style
	PanelHeader   lipgloss.Style
	PanelNoBorder lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Code     lipgloss.Style
	Link     lipgloss.Style
	KeyHint  lipgloss.Style
	Logo     lipgloss.Style

	// Warm status
	StatusWarming lipgloss.Style
	StatusDone    lipgloss.Style
	StatusError   lipgloss.Style
	StatusIdle    lipgloss.Style

	// Toasts
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style

	// Log lines
	LogPlan   lipgloss.Style
	LogWarmed lipgloss.Style
	LogError  lipgloss.Style
	LogLimit  lipgloss.Style

	// Lists
	ListItemNormal   lipgloss.Style
	ListItemSelected lipgloss.Style
	ListItemFocused  lipgloss.Style
	ListCursor       lipgloss.Style

	// Bars
	BarTitle      lipgloss.Style
	BarText       lipgloss.Style
	BarChip       lipgloss.Style
	BarChipActive lipgloss.Style

	// Chrome
	Footer lipgloss.Style
	Header lipgloss.Style

	// Modals
	ModalOverlay lipgloss.Style
	ModalBox     lipgloss.Style
	ModalTitle   lipgloss.Style

	// Buttons
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonHover   lipgloss.Style

	ButtonDanger        lipgloss.Style
	ButtonDangerFocused lipgloss.Style
	ButtonDangerHover   lipgloss.Style
)

func init() {
	ApplyThemeColors(DefaultTheme)
}
