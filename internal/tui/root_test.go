package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridlife/tui-go/internal/board"
	"github.com/gridlife/tui-go/internal/config"
	"github.com/gridlife/tui-go/internal/grid"
)

func testConfig(t *testing.T, w, h uint16) config.Config {
	t.Helper()
	size, err := grid.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return config.Config{
		Size:     size,
		Interval: config.DefaultInterval,
		SaveDir:  t.TempDir(),
	}
}

func newTestModel(t *testing.T, w, h uint16) Model {
	t.Helper()
	cfg := testConfig(t, w, h)
	m := NewModel(cfg, board.New(cfg.Size))
	return apply(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func apply(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyEsc() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEsc} }

func TestModeTransitions(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
		want Mode
	}{
		{"starts in menu", nil, ModeMenu},
		{"menu to editor", []tea.Msg{keyRune('e')}, ModeEditor},
		{"editor back to menu", []tea.Msg{keyRune('e'), keyEsc()}, ModeMenu},
		{"editor q to menu", []tea.Msg{keyRune('e'), keyRune('q')}, ModeMenu},
		{"menu to auto run", []tea.Msg{keyRune('a')}, ModeAutoRun},
		{"auto run interrupt", []tea.Msg{keyRune('a'), keyRune('q')}, ModeMenu},
		{"auto run ignores other keys", []tea.Msg{keyRune('a'), keyRune('e')}, ModeAutoRun},
		{"unknown key stays in menu", []tea.Msg{keyRune('x')}, ModeMenu},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := apply(t, newTestModel(t, 5, 5), tt.msgs...)
			if m.mode != tt.want {
				t.Errorf("mode = %v, want %v", m.mode, tt.want)
			}
		})
	}
}

func TestMenuStepIncrementsGeneration(t *testing.T) {
	m := apply(t, newTestModel(t, 5, 5), keyEnter(), keyEnter())
	if m.Generation() != 2 {
		t.Errorf("Generation = %d, want 2", m.Generation())
	}
}

func TestQuitKeys(t *testing.T) {
	wantQuit := func(t *testing.T, m Model, msg tea.Msg) {
		t.Helper()
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatal("expected a command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatal("expected tea.Quit")
		}
	}
	wantQuit(t, newTestModel(t, 5, 5), keyRune('q'))
	wantQuit(t, newTestModel(t, 5, 5), tea.KeyMsg{Type: tea.KeyCtrlC})
	// ctrl+c quits from any mode
	wantQuit(t, apply(t, newTestModel(t, 5, 5), keyRune('a')), tea.KeyMsg{Type: tea.KeyCtrlC})
}

func TestAutoRunTicks(t *testing.T) {
	m := newTestModel(t, 5, 5)

	next, cmd := m.Update(keyRune('a'))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("entering auto run must schedule a tick")
	}

	next, cmd = m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if m.Generation() != 1 {
		t.Errorf("Generation after tick = %d, want 1", m.Generation())
	}
	if cmd == nil {
		t.Error("auto run must reschedule the next tick")
	}

	// after an interrupt, a stale tick neither steps nor reschedules
	m = apply(t, m, keyRune('q'))
	next, cmd = m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if m.Generation() != 1 {
		t.Errorf("stale tick stepped the board: generation %d", m.Generation())
	}
	if cmd != nil {
		t.Error("stale tick must not reschedule")
	}
}

func TestEditorCursorWrap(t *testing.T) {
	m := apply(t, newTestModel(t, 5, 3), keyRune('e'))

	m = apply(t, m, keyRune('h'))
	if m.cursorX != 4 || m.cursorY != 0 {
		t.Errorf("left from origin = (%d, %d), want (4, 0)", m.cursorX, m.cursorY)
	}
	m = apply(t, m, keyRune('k'))
	if m.cursorX != 4 || m.cursorY != 2 {
		t.Errorf("up from top = (%d, %d), want (4, 2)", m.cursorX, m.cursorY)
	}

	// any sequence of moves keeps the cursor on the grid
	seq := "hjklhhjjkkllhjkl"
	for i, r := range seq {
		m = apply(t, m, keyRune(r))
		if !m.board.Size().Contains(m.cursorX, m.cursorY) {
			t.Fatalf("move %d (%c): cursor (%d, %d) left the grid", i, r, m.cursorX, m.cursorY)
		}
	}
}

func TestEditorToggle(t *testing.T) {
	m := apply(t, newTestModel(t, 5, 5), keyRune('e'), keyRune('l'), keyRune('j'), keyEnter())
	if v, err := m.board.Get(1, 1); err != nil || !v {
		t.Errorf("Get(1, 1) = %v, %v, want alive after toggle", v, err)
	}
	m = apply(t, m, keyEnter())
	if v, _ := m.board.Get(1, 1); v {
		t.Error("second toggle should clear the cell")
	}
}

func TestSaveMessageLifecycle(t *testing.T) {
	m := newTestModel(t, 5, 5)

	_, cmd := m.Update(keyRune('s'))
	if cmd == nil {
		t.Fatal("save must return a command")
	}
	msg, ok := cmd().(savedMsg)
	if !ok {
		t.Fatalf("save command returned %T, want savedMsg", cmd())
	}
	if msg.err != nil {
		t.Fatalf("save failed: %v", msg.err)
	}

	m = apply(t, m, msg)
	if m.message == "" || !strings.Contains(m.View(), msg.info) {
		t.Error("save confirmation should appear in the next render")
	}

	// cleared by the next menu interaction
	m = apply(t, m, keyRune('x'))
	if m.message != "" {
		t.Errorf("message survived a display cycle: %q", m.message)
	}
}

func TestSaveFailureIsTransient(t *testing.T) {
	cfg := testConfig(t, 5, 5)
	cfg.SaveDir = cfg.SaveDir + "/does-not-exist"
	m := apply(t, NewModel(cfg, board.New(cfg.Size)), tea.WindowSizeMsg{Width: 80, Height: 24})

	_, cmd := m.Update(keyRune('s'))
	msg, ok := cmd().(savedMsg)
	if !ok || msg.err == nil {
		t.Fatalf("expected a failed save, got %+v", msg)
	}
	m = apply(t, m, msg)
	if m.mode != ModeMenu {
		t.Error("a failed save must leave the session in the menu")
	}
	if !strings.Contains(m.message, "save failed") {
		t.Errorf("message = %q, want a save failure report", m.message)
	}
}

func TestTerminalMaxDefersBoard(t *testing.T) {
	cfg := testConfig(t, 5, 5)
	cfg.TerminalMax = true

	m := NewModel(cfg, nil)
	if m.board != nil {
		t.Fatal("board must not exist before the first window size")
	}
	m = apply(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.board == nil {
		t.Fatal("board missing after window size")
	}
	size := m.board.Size()
	if size.Width != 80 || size.Height != 24-config.FooterReserve {
		t.Errorf("board size = %v, want 80x%d", size, 24-config.FooterReserve)
	}

	// a terminal with no usable rows is fatal
	m2 := NewModel(cfg, nil)
	next, cmd := m2.Update(tea.WindowSizeMsg{Width: 80, Height: config.FooterReserve})
	m2 = next.(Model)
	if m2.Err() == nil {
		t.Error("expected a fatal sizing error")
	}
	if cmd == nil {
		t.Fatal("fatal sizing must quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("fatal sizing must quit the program")
	}
}

func TestViewShowsStatus(t *testing.T) {
	m := apply(t, newTestModel(t, 5, 5), keyEnter())
	view := m.View()
	if !strings.Contains(view, "MENU") {
		t.Error("view missing mode name")
	}
	if !strings.Contains(view, "gen 1") {
		t.Error("view missing generation count")
	}
	// rendering twice without mutation is identical
	if m.View() != view {
		t.Error("View is not idempotent")
	}
}
