// Package config resolves the startup configuration from command-line
// options layered over an optional YAML defaults file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gridlife/tui-go/internal/grid"
)

// ErrConfig reports an unusable startup configuration: bad size grammar,
// conflicting options, an interval below the floor, or a terminal too
// small for -max. Always fatal at startup.
var ErrConfig = errors.New("config: invalid configuration")

const (
	// DefaultSize matches the original 160:32 board.
	DefaultSize = "160:32"
	// DefaultInterval is the auto-run tick interval.
	DefaultInterval = 100 * time.Millisecond
	// MinInterval is the floor on the tick interval.
	MinInterval = 15 * time.Millisecond
	// FooterReserve is the number of rows kept free for the status and
	// help lines when sizing the board from the terminal.
	FooterReserve = 5
)

// sizeRE validates the <width>:<height> grammar. Read-only after
// construction.
var sizeRE = regexp.MustCompile(`^(\d+):(\d+)$`)

// Options carries the raw command-line values before validation. Zero
// values mean "not set on the command line".
type Options struct {
	Size        string
	Random      bool
	LoadPath    string
	IntervalMS  int
	TerminalMax bool
	Debug       bool
}

// FileConfig mirrors the optional defaults file at
// ~/.gridlife/config.yaml. Flags override anything set here.
type FileConfig struct {
	Size       string `yaml:"size"`
	IntervalMS int    `yaml:"interval_ms"`
	SaveDir    string `yaml:"save_dir"`
}

// Config is the validated result handed to the rest of the program.
type Config struct {
	Size        grid.Size
	Random      bool
	LoadPath    string
	Interval    time.Duration
	TerminalMax bool
	Debug       bool
	SaveDir     string
}

// LoadFile reads the defaults file. A missing file yields a zero
// FileConfig; a malformed one is an ErrConfig.
func LoadFile() (FileConfig, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileConfig{}, nil
	}
	data, err := os.ReadFile(filepath.Join(home, ".gridlife", "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return parseFileConfig(data)
}

func parseFileConfig(data []byte) (FileConfig, error) {
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("%w: defaults file: %v", ErrConfig, err)
	}
	return fc, nil
}

// ParseSize parses the <width>:<height> grammar into a validated size.
func ParseSize(s string) (grid.Size, error) {
	m := sizeRE.FindStringSubmatch(s)
	if m == nil {
		return grid.Size{}, fmt.Errorf("%w: size %q must be <width>:<height>", ErrConfig, s)
	}
	width, err := strconv.ParseUint(m[1], 10, 16)
	if err != nil {
		return grid.Size{}, fmt.Errorf("%w: width %q out of range", ErrConfig, m[1])
	}
	height, err := strconv.ParseUint(m[2], 10, 16)
	if err != nil {
		return grid.Size{}, fmt.Errorf("%w: height %q out of range", ErrConfig, m[2])
	}
	return grid.New(uint16(width), uint16(height))
}

// SizeFromTerminal derives a board size from the terminal dimensions,
// reserving FooterReserve rows for status text.
func SizeFromTerminal(cols, rows int) (grid.Size, error) {
	rows -= FooterReserve
	if cols <= 0 || rows <= 0 {
		return grid.Size{}, fmt.Errorf("%w: terminal too small (%d columns, %d usable rows)", ErrConfig, cols, rows)
	}
	if cols > 0xFFFF {
		cols = 0xFFFF
	}
	if rows > 0xFFFF {
		rows = 0xFFFF
	}
	return grid.New(uint16(cols), uint16(rows))
}

// Resolve validates the options over the file defaults.
func Resolve(opts Options, file FileConfig) (Config, error) {
	if opts.LoadPath != "" {
		if opts.Size != "" {
			return Config{}, fmt.Errorf("%w: -file conflicts with -size", ErrConfig)
		}
		if opts.Random {
			return Config{}, fmt.Errorf("%w: -file conflicts with -random", ErrConfig)
		}
		if opts.TerminalMax {
			return Config{}, fmt.Errorf("%w: -file conflicts with -max", ErrConfig)
		}
	}
	if opts.TerminalMax && opts.Size != "" {
		return Config{}, fmt.Errorf("%w: -max conflicts with -size", ErrConfig)
	}

	sizeSpec := opts.Size
	if sizeSpec == "" {
		sizeSpec = file.Size
	}
	if sizeSpec == "" {
		sizeSpec = DefaultSize
	}
	size, err := ParseSize(sizeSpec)
	if err != nil {
		return Config{}, err
	}

	intervalMS := opts.IntervalMS
	if intervalMS == 0 {
		intervalMS = file.IntervalMS
	}
	interval := DefaultInterval
	if intervalMS != 0 {
		interval = time.Duration(intervalMS) * time.Millisecond
		if interval < MinInterval {
			return Config{}, fmt.Errorf("%w: interval %dms is below the %dms minimum",
				ErrConfig, intervalMS, MinInterval/time.Millisecond)
		}
	}

	saveDir := file.SaveDir
	if saveDir == "" {
		saveDir = "."
	}

	return Config{
		Size:        size,
		Random:      opts.Random,
		LoadPath:    opts.LoadPath,
		Interval:    interval,
		TerminalMax: opts.TerminalMax,
		Debug:       opts.Debug,
		SaveDir:     saveDir,
	}, nil
}
