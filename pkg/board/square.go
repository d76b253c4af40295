// Package board implements the geometry, piece model and immutable position
// representation of the analysis core: square indexing, move templates, and
// the Position Factory.
package board

import "fmt"

// Square identifies a cell on the board by its row-major index. The value
// equal to the current board's cell count is a valid sentinel meaning "no
// square" (used for en-passant targets and absent castling rooks).
type Square uint16

// Params describes the board's dimensions. Process-wide; set once via
// Configure before any position is constructed.
type Params struct {
	Width  int
	Height int
}

// Count returns the total number of cells, W*H.
func (p Params) Count() int { return p.Width * p.Height }

var current = Params{Width: 8, Height: 8}

// Configure sets the process-wide board dimensions. Must be called, if at
// all, before any position is constructed; positions and move templates
// assume a fixed geometry for their lifetime.
func Configure(p Params) {
	current = p
}

// Current returns the process-wide board dimensions.
func Current() Params {
	return current
}

// NoSquare is the sentinel square value, valid relative to the current
// board parameters (equal to Current().Count()).
func NoSquare() Square {
	return Square(current.Count())
}

// NewSquare builds a Square from zero-based file and rank. Returns NoSquare
// if either coordinate is off-board.
func NewSquare(file, rank int) Square {
	if file < 0 || rank < 0 || file >= current.Width || rank >= current.Height {
		return NoSquare()
	}
	return Square(rank*current.Width + file)
}

// Valid reports whether s addresses an actual cell (not the sentinel and not
// out of range).
func (s Square) Valid() bool {
	return int(s) < current.Count()
}

// File returns the zero-based file (column) of s.
func (s Square) File() int {
	return int(s) % current.Width
}

// Rank returns the zero-based rank (row) of s.
func (s Square) Rank() int {
	return int(s) / current.Width
}

// Offset returns the square reached by stepping (dx, dy) from s in
// file/rank terms, and whether that destination is on-board. dy is
// rank-increasing (toward higher ranks, i.e. toward black's back rank).
func (s Square) Offset(dx, dy int) (Square, bool) {
	f, r := s.File()+dx, s.Rank()+dy
	if f < 0 || r < 0 || f >= current.Width || r >= current.Height {
		return 0, false
	}
	return NewSquare(f, r), true
}

// String renders s in algebraic notation (a1, e4, ...), or "-" for the
// sentinel.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+rune(s.File()), s.Rank()+1)
}

// ParseSquare parses algebraic notation ("e4") into a Square. Returns
// NoSquare and true for "-", and NoSquare and false for malformed input.
func ParseSquare(text string) (Square, bool) {
	if text == "-" || len(text) != 2 {
		return NoSquare(), text == "-"
	}
	file := int(text[0] - 'a')
	rank := int(text[1] - '1')
	sq := NewSquare(file, rank)
	if !sq.Valid() {
		return NoSquare(), false
	}
	return sq, true
}
