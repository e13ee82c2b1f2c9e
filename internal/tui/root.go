// Package tui drives the interactive session: a Bubble Tea model that
// turns key and tick messages into board operations across three modes
// (menu, auto-run, editor) and renders the board, a status line, and a
// help footer.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridlife/tui-go/internal/board"
	"github.com/gridlife/tui-go/internal/codec"
	"github.com/gridlife/tui-go/internal/config"
)

// Mode identifies the interactive mode
type Mode int

const (
	ModeMenu Mode = iota // initial mode: inspect, single-step, dispatch
	ModeAutoRun          // tick-driven free run
	ModeEditor           // cursor-based cell editing
)

func (m Mode) String() string {
	switch m {
	case ModeAutoRun:
		return "AUTO"
	case ModeEditor:
		return "EDIT"
	default:
		return "MENU"
	}
}

// tickMsg drives one auto-run generation
type tickMsg time.Time

// savedMsg reports the outcome of an asynchronous save
type savedMsg struct {
	info string
	err  error
}

// tickCmd schedules the next auto-run tick
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the root Bubble Tea model. It is the single owner of the
// board and the cursor; all mutation happens on the Update goroutine.
type Model struct {
	cfg config.Config

	// board is nil until the first WindowSizeMsg when sizing from the
	// terminal (-max)
	board      *board.Board
	generation int

	mode             Mode
	cursorX, cursorY uint16

	// message holds the last save outcome; cleared on the next menu
	// interaction so it survives exactly one display cycle
	message string

	width, height int
	ready         bool
	err           error // fatal startup error, reported after Run

	keys  KeyMap
	help  help.Model
	debug DebugPanel
	seed  int64
}

// NewModel returns the initial model. b may be nil when the
// configuration defers sizing to the terminal.
func NewModel(cfg config.Config, b *board.Board) Model {
	return Model{
		cfg:   cfg,
		board: b,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		debug: NewDebugPanel(cfg.Debug),
		seed:  time.Now().UnixNano(),
	}
}

// Err returns the fatal startup error, if any, once the program has
// finished.
func (m Model) Err() error { return m.err }

// Generation returns the number of completed steps.
func (m Model) Generation() int { return m.generation }

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		if m.board == nil {
			size, err := config.SizeFromTerminal(msg.Width, msg.Height)
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			if m.cfg.Random {
				m.board = board.NewRandom(size, m.seed)
			} else {
				m.board = board.New(size)
			}
			m.debug.AddEvent("board", "sized from terminal: "+size.String())
		}
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.message = "save failed: " + msg.err.Error()
		} else {
			m.message = msg.info
		}
		m.debug.AddEvent("save", m.message)
		return m, nil

	case tickMsg:
		// a tick left over from before an interrupt is dropped
		if m.mode != ModeAutoRun || m.board == nil {
			return m, nil
		}
		m.step()
		return m, tickCmd(m.cfg.Interval)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.board == nil {
			return m, nil
		}
		switch m.mode {
		case ModeAutoRun:
			return m.updateAutoRun(msg)
		case ModeEditor:
			return m.updateEditor(msg)
		default:
			return m.updateMenu(msg)
		}
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Step):
		m.step()
	case key.Matches(msg, m.keys.AutoRun):
		m.setMode(ModeAutoRun)
		return m, tickCmd(m.cfg.Interval)
	case key.Matches(msg, m.keys.Editor):
		m.setMode(ModeEditor)
		m.cursorX, m.cursorY = 0, 0
	case key.Matches(msg, m.keys.Save):
		return m, m.saveCmd()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateAutoRun(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Exit) {
		m.setMode(ModeMenu)
	}
	return m, nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Exit):
		m.setMode(ModeMenu)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Toggle):
		// cursor wrap keeps the position in range, so this cannot fail
		if err := m.board.Toggle(m.cursorX, m.cursorY); err != nil {
			m.message = err.Error()
		}
	}
	return m, nil
}

// step advances one generation and bumps the monotonic counter.
func (m *Model) step() {
	start := time.Now()
	m.board.Step()
	m.generation++
	if m.debug.IsEnabled() {
		m.debug.AddEvent("step", fmt.Sprintf("gen %d in %s", m.generation, time.Since(start).Round(time.Microsecond)))
	}
}

func (m *Model) setMode(mode Mode) {
	m.debug.AddEvent("mode", m.mode.String()+" -> "+mode.String())
	m.mode = mode
}

func (m *Model) moveCursor(dx, dy int) {
	m.cursorX, m.cursorY = m.board.Size().Wrap(m.cursorX, m.cursorY, dx, dy)
}

// saveCmd snapshots the board synchronously and writes it off the
// Update goroutine, so a step cannot race the encode.
func (m Model) saveCmd() tea.Cmd {
	snap, err := board.FromData(m.board.Size(), m.board.Cells())
	if err != nil {
		return func() tea.Msg { return savedMsg{err: err} }
	}
	dir := m.cfg.SaveDir
	return func() tea.Msg {
		info, err := codec.SaveTo(dir, snap)
		return savedMsg{info: info, err: err}
	}
}

// View renders the UI
func (m Model) View() string {
	if m.err != nil {
		return ""
	}
	if !m.ready || m.board == nil {
		return "Loading..."
	}

	var sb strings.Builder
	sb.WriteString(m.renderBoard())
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	sb.WriteString("\n")
	if m.message != "" {
		style := MessageStyle
		if strings.HasPrefix(m.message, "save failed") {
			style = ErrorStyle
		}
		sb.WriteString(style.Render(m.message))
	}
	sb.WriteString("\n")
	sb.WriteString(m.help.View(modeKeys{keys: m.keys, mode: m.mode}))
	if m.debug.IsEnabled() {
		sb.WriteString("\n")
		sb.WriteString(m.debug.Render(m.width))
	}
	return sb.String()
}

// renderBoard renders the cell grid, highlighting the cursor in editor
// mode.
func (m Model) renderBoard() string {
	if m.mode != ModeEditor {
		return strings.TrimSuffix(m.board.RenderText(), "\n")
	}

	size := m.board.Size()
	cells := m.board.Cells()
	rows := make([]string, 0, size.Height)
	var row strings.Builder
	for y := uint16(0); y < size.Height; y++ {
		row.Reset()
		for x := uint16(0); x < size.Width; x++ {
			glyph := board.DeadGlyph
			if cells[size.Index(x, y)] {
				glyph = board.AliveGlyph
			}
			if x == m.cursorX && y == m.cursorY {
				row.WriteString(CursorStyle.Render(string(glyph)))
			} else {
				row.WriteRune(glyph)
			}
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

// renderStatus renders the mode, size, generation and live-cell counts.
func (m Model) renderStatus() string {
	modeStyle := ModeMenuStyle
	switch m.mode {
	case ModeAutoRun:
		modeStyle = ModeAutoRunStyle
	case ModeEditor:
		modeStyle = ModeEditorStyle
	}
	status := fmt.Sprintf(" %v · gen %d · alive %d", m.board.Size(), m.generation, m.board.Alive())
	return modeStyle.Render(m.mode.String()) + StatusBarStyle.Render(status)
}
