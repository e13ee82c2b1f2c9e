package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the application
type KeyMap struct {
	// Menu
	Quit    key.Binding
	Step    key.Binding
	AutoRun key.Binding
	Editor  key.Binding
	Save    key.Binding
	Help    key.Binding

	// Editor
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding

	// Editor and auto-run
	Exit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Step: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "step"),
		),
		AutoRun: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto run"),
		),
		Editor: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "editor"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "toggle"),
		),
		Exit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "menu"),
		),
	}
}

// modeKeys adapts the KeyMap to bubbles/help for the current mode, so the
// footer only shows the bindings that are live.
type modeKeys struct {
	keys KeyMap
	mode Mode
}

// ShortHelp returns the condensed help line for the mode
func (h modeKeys) ShortHelp() []key.Binding {
	switch h.mode {
	case ModeAutoRun:
		return []key.Binding{h.keys.Exit}
	case ModeEditor:
		return []key.Binding{h.keys.Up, h.keys.Down, h.keys.Left, h.keys.Right, h.keys.Toggle, h.keys.Exit}
	default:
		return []key.Binding{h.keys.Step, h.keys.AutoRun, h.keys.Editor, h.keys.Save, h.keys.Help, h.keys.Quit}
	}
}

// FullHelp returns the expanded help for the mode
func (h modeKeys) FullHelp() [][]key.Binding {
	switch h.mode {
	case ModeAutoRun:
		return [][]key.Binding{{h.keys.Exit}}
	case ModeEditor:
		return [][]key.Binding{
			{h.keys.Up, h.keys.Down, h.keys.Left, h.keys.Right},
			{h.keys.Toggle, h.keys.Exit},
		}
	default:
		return [][]key.Binding{
			{h.keys.Step, h.keys.AutoRun, h.keys.Editor},
			{h.keys.Save, h.keys.Help, h.keys.Quit},
		}
	}
}
