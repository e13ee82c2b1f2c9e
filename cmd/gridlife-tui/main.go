package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridlife/tui-go/internal/board"
	"github.com/gridlife/tui-go/internal/codec"
	"github.com/gridlife/tui-go/internal/config"
	"github.com/gridlife/tui-go/internal/tui"
)

func main() {
	var (
		sizeFlag     = flag.String("size", "", "board size as <width>:<height> (default "+config.DefaultSize+")")
		randomFlag   = flag.Bool("random", false, "randomize the starting board")
		fileFlag     = flag.String("file", "", "load a saved board (conflicts with -size, -random and -max)")
		intervalFlag = flag.Int("interval", 0, "auto-run tick interval in milliseconds (minimum 15, default 100)")
		maxFlag      = flag.Bool("max", false, "size the board from the terminal")
		debugFlag    = flag.Bool("debug", false, "show the debug panel")
	)
	flag.Parse()

	fileCfg, err := config.LoadFile()
	if err != nil {
		fatal(err)
	}
	cfg, err := config.Resolve(config.Options{
		Size:        *sizeFlag,
		Random:      *randomFlag,
		LoadPath:    *fileFlag,
		IntervalMS:  *intervalFlag,
		TerminalMax: *maxFlag,
		Debug:       *debugFlag,
	}, fileCfg)
	if err != nil {
		fatal(err)
	}

	// With -max the board is built on the first window-size message;
	// otherwise it exists before the program starts, and a bad save
	// file is fatal here.
	var b *board.Board
	switch {
	case cfg.LoadPath != "":
		b, err = codec.Load(cfg.LoadPath)
		if err != nil {
			fatal(err)
		}
	case cfg.TerminalMax:
	case cfg.Random:
		b = board.NewRandom(cfg.Size, time.Now().UnixNano())
	default:
		b = board.New(cfg.Size)
	}

	p := tea.NewProgram(tui.NewModel(cfg, b), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fatal(fmt.Errorf("error running program: %w", err))
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		fatal(m.Err())
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
