// Package codec serializes boards to and from the plain-text save
// format:
//
//	<width>:<height>
//	<row0><row1>...
//
// where each row is width characters of '0' or '1', newline-separated.
// Newlines inside the data region carry no meaning and are skipped when
// decoding.
package codec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gridlife/tui-go/internal/board"
	"github.com/gridlife/tui-go/internal/grid"
)

var (
	// ErrFormat reports a file that does not follow the save format:
	// a bad header line or a stray character in the data region.
	ErrFormat = errors.New("codec: invalid file format")

	// ErrDataShape reports a decodable file whose cell count does not
	// match its header.
	ErrDataShape = errors.New("codec: cell data does not match header")

	// ErrIO reports a path that cannot be read: missing, unreadable, or
	// not a regular file.
	ErrIO = errors.New("codec: cannot read file")
)

// headerRE validates the first line. Read-only after construction.
var headerRE = regexp.MustCompile(`^(\d+):(\d+)$`)

// Encode renders the board in the save format. A newline precedes each
// row, so the output carries no trailing newline.
func Encode(b *board.Board) []byte {
	size := b.Size()
	var sb strings.Builder
	sb.Grow(size.Cells() + int(size.Height) + 12)
	fmt.Fprintf(&sb, "%d:%d", size.Width, size.Height)
	w := int(size.Width)
	for i, v := range b.Cells() {
		if i%w == 0 {
			sb.WriteByte('\n')
		}
		if v {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return []byte(sb.String())
}

// Decode parses the save format into a board.
func Decode(data []byte) (*board.Board, error) {
	text := string(data)
	header, rest, ok := strings.Cut(text, "\n")
	if !ok {
		return nil, fmt.Errorf("%w: missing data after header", ErrFormat)
	}

	m := headerRE.FindStringSubmatch(strings.TrimSuffix(header, "\r"))
	if m == nil {
		return nil, fmt.Errorf("%w: header %q is not <width>:<height>", ErrFormat, header)
	}
	width, err := strconv.ParseUint(m[1], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: width %q out of range", ErrFormat, m[1])
	}
	height, err := strconv.ParseUint(m[2], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: height %q out of range", ErrFormat, m[2])
	}
	size, err := grid.New(uint16(width), uint16(height))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	cells := make([]bool, 0, size.Cells())
	for _, c := range rest {
		switch c {
		case '\n', '\r':
			// row breaks are cosmetic
		case '0':
			cells = append(cells, false)
		case '1':
			cells = append(cells, true)
		default:
			return nil, fmt.Errorf("%w: unexpected character %q in data", ErrFormat, c)
		}
	}
	if len(cells) != size.Cells() {
		return nil, fmt.Errorf("%w: got %d cells, header says %v", ErrDataShape, len(cells), size)
	}
	return board.FromData(size, cells)
}

// Load reads and decodes the board at path.
func Load(path string) (*board.Board, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrIO, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return Decode(data)
}

// SaveTo encodes the board into a fresh file under dir and returns a
// confirmation string naming the path. The name combines the local
// timestamp with a short random suffix so that saves within the same
// second cannot collide.
func SaveTo(dir string, b *board.Board) (string, error) {
	name := fmt.Sprintf("%s_%s.txt",
		time.Now().Format("2006-01-02_15.04.05"),
		uuid.NewString()[:8])
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, Encode(b), 0o644); err != nil {
		return "", err
	}
	return fmt.Sprintf("saved to %s", path), nil
}
