// Package board owns the cell array for a single toroidal Game of Life
// board and the generational update rule.
package board

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/gridlife/tui-go/internal/grid"
)

// Glyphs used by RenderText. Presentation detail only; the persisted
// format uses '0'/'1' instead.
const (
	AliveGlyph = '@'
	DeadGlyph  = '-'
)

var (
	// ErrShapeMismatch reports cell data whose length does not match the
	// board size.
	ErrShapeMismatch = errors.New("board: cell data does not match size")

	// ErrOutOfBounds reports a coordinate access outside the board. The
	// cursor and the step rule guarantee range by construction, so
	// hitting this from the UI is an invariant violation.
	ErrOutOfBounds = errors.New("board: position out of bounds")
)

// Board is a flat row-major cell array plus its geometry. It is owned by
// a single goroutine; none of its methods are safe for concurrent use.
type Board struct {
	size  grid.Size
	cells []bool
	next  []bool // scratch buffer reused across steps
}

// New returns a blank board.
func New(size grid.Size) *Board {
	n := size.Cells()
	return &Board{
		size:  size,
		cells: make([]bool, n),
		next:  make([]bool, n),
	}
}

// NewRandom returns a board with every cell drawn from a seeded source,
// so tests can reproduce a fill.
func NewRandom(size grid.Size, seed int64) *Board {
	b := New(size)
	rng := rand.New(rand.NewSource(seed))
	for i := range b.cells {
		b.cells[i] = rng.Intn(2) == 1
	}
	return b
}

// FromData returns a board backed by a copy of the supplied cells.
func FromData(size grid.Size, cells []bool) (*Board, error) {
	if len(cells) != size.Cells() {
		return nil, fmt.Errorf("%w: got %d cells for %v", ErrShapeMismatch, len(cells), size)
	}
	b := New(size)
	copy(b.cells, cells)
	return b, nil
}

// Size returns the board dimensions.
func (b *Board) Size() grid.Size { return b.size }

// Cells exposes the current generation's cell values.
func (b *Board) Cells() []bool { return b.cells }

// Get reports whether the cell at (x, y) is alive.
func (b *Board) Get(x, y uint16) (bool, error) {
	if !b.size.Contains(x, y) {
		return false, fmt.Errorf("%w: (%d, %d) on %v", ErrOutOfBounds, x, y, b.size)
	}
	return b.cells[b.size.Index(x, y)], nil
}

// Toggle flips the cell at (x, y) in place.
func (b *Board) Toggle(x, y uint16) error {
	if !b.size.Contains(x, y) {
		return fmt.Errorf("%w: (%d, %d) on %v", ErrOutOfBounds, x, y, b.size)
	}
	i := b.size.Index(x, y)
	b.cells[i] = !b.cells[i]
	return nil
}

// Alive returns the live cell count.
func (b *Board) Alive() int {
	n := 0
	for _, v := range b.cells {
		if v {
			n++
		}
	}
	return n
}

// Step advances the board one generation. Every cell is decided from the
// snapshot taken at step start: the rule writes into a second buffer and
// the buffers swap at the end, so a neighbor lookup never observes a
// half-updated generation.
func (b *Board) Step() {
	for i, alive := range b.cells {
		count := 0
		for _, n := range b.size.Neighbors(i) {
			if b.cells[n] {
				count++
			}
		}
		if alive {
			b.next[i] = count == 2 || count == 3
		} else {
			b.next[i] = count == 3
		}
	}
	b.cells, b.next = b.next, b.cells
}

// RenderText returns the board as Height lines of Width glyphs. Purely a
// view; calling it twice without mutation yields identical output.
func (b *Board) RenderText() string {
	var sb strings.Builder
	sb.Grow(b.size.Cells() + int(b.size.Height))
	w := int(b.size.Width)
	for i, v := range b.cells {
		if v {
			sb.WriteRune(AliveGlyph)
		} else {
			sb.WriteRune(DeadGlyph)
		}
		if i%w == w-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
