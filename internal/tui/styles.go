package tui

import "github.com/charmbracelet/lipgloss"

// One Dark Pro color palette
var (
	ColorBgPrimary = lipgloss.Color("#282C34")
	ColorFgMuted   = lipgloss.Color("#636B78")
	ColorBorder    = lipgloss.Color("#3F4451")

	ColorRed     = lipgloss.Color("#E06C75")
	ColorGreen   = lipgloss.Color("#98C379")
	ColorYellow  = lipgloss.Color("#E5C07B")
	ColorMagenta = lipgloss.Color("#C678DD")
	ColorCyan    = lipgloss.Color("#56B6C2")
)

// Component styles
var (
	// Cursor cell in the editor
	CursorStyle = lipgloss.NewStyle().
			Background(ColorYellow).
			Foreground(ColorBgPrimary)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted)

	ModeMenuStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	ModeAutoRunStyle = lipgloss.NewStyle().
				Foreground(ColorYellow).
				Bold(true)

	ModeEditorStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta).
			Bold(true)

	// Transient save/load messages
	MessageStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	// Debug panel
	DebugPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorYellow).
			Padding(0, 1)

	DebugTitleStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)
)
