// Package grid provides the toroidal geometry shared by the board and the
// editor cursor: mapping between (x, y) positions and flat row-major
// indices, and the eight-neighbor lookup with wrap-around at every edge.
package grid

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOverflow reports a width/height pair whose cell count cannot be
	// represented in 16 bits.
	ErrOverflow = errors.New("grid: cell count overflows uint16")

	// ErrEmpty reports a size with a zero dimension.
	ErrEmpty = errors.New("grid: size has no cells")
)

// Size holds validated board dimensions. A Size obtained from New always
// has a positive area that fits in a uint16, so flat-index arithmetic in
// Neighbors never overflows.
type Size struct {
	Width  uint16
	Height uint16
}

// New validates the dimensions once, at construction. Every later lookup
// relies on this check instead of repeating it per call.
func New(width, height uint16) (Size, error) {
	if width == 0 || height == 0 {
		return Size{}, fmt.Errorf("%w: %dx%d", ErrEmpty, width, height)
	}
	if uint32(width)*uint32(height) > math.MaxUint16 {
		return Size{}, fmt.Errorf("%w: %dx%d", ErrOverflow, width, height)
	}
	return Size{Width: width, Height: height}, nil
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Cells returns the total cell count.
func (s Size) Cells() int {
	return int(s.Width) * int(s.Height)
}

// Index maps a position to its flat row-major index.
func (s Size) Index(x, y uint16) int {
	return int(y)*int(s.Width) + int(x)
}

// Coords maps a flat index back to its position.
func (s Size) Coords(i int) (x, y uint16) {
	return uint16(i % int(s.Width)), uint16(i / int(s.Width))
}

// Contains reports whether (x, y) is a valid position.
func (s Size) Contains(x, y uint16) bool {
	return x < s.Width && y < s.Height
}

// Wrap moves (x, y) by (dx, dy) with toroidal wrap on both axes. The
// result is always a valid position, whatever the offsets.
func (s Size) Wrap(x, y uint16, dx, dy int) (uint16, uint16) {
	w, h := int(s.Width), int(s.Height)
	nx := ((int(x)+dx)%w + w) % w
	ny := ((int(y)+dy)%h + h) % h
	return uint16(nx), uint16(ny)
}

// Neighbors returns the eight toroidal neighbors of flat index i, in the
// fixed order: up, upper-right, right, lower-right, down, lower-left,
// left, upper-left.
//
// Vertical wrap falls out of taking the flat index modulo the cell count:
// stepping a row off the top lands on the same column of the bottom row.
// Horizontal wrap is handled by an edge weight of one full row width,
// subtracted when stepping right off the right edge and added when
// stepping left off the left edge. Adding n before each modulo keeps
// every intermediate value non-negative. On a grid narrower or shorter
// than three cells the wrap degenerates and a cell can be its own
// neighbor; that is expected.
func (s Size) Neighbors(i int) [8]int {
	w := int(s.Width)
	n := s.Cells()

	var lw, rw int
	if i%w == 0 {
		lw = w
	}
	if i%w == w-1 {
		rw = w
	}

	up := (n + i - w) % n
	down := (n + i + w) % n

	ur := (n + i + 1 - rw - w) % n
	right := (n + i + 1 - rw) % n
	lr := (n + i + 1 - rw + w) % n

	ul := (n + i - 1 + lw - w) % n
	left := (n + i - 1 + lw) % n
	ll := (n + i - 1 + lw + w) % n

	return [8]int{up, ur, right, lr, down, ll, left, ul}
}
