// FILE: reversi/internal/reversi/board.go
// Package reversi implements the 8x8 disc-flipping game engine: board and
// move model, heuristic evaluation, and depth-limited alpha-beta search.
// Every operation is a pure function over value-typed inputs; a Board is
// never mutated in place.
package reversi

import "strings"

// Size is the board edge length.
const Size = 8

// Disc is the content of a single board cell.
type Disc int8

const (
	Empty Disc = iota
	Black
	White
)

// Opponent returns the other color. Empty maps to itself.
func (d Disc) Opponent() Disc {
	switch d {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (d Disc) String() string {
	switch d {
	case Black:
		return "b"
	case White:
		return "w"
	}
	return "."
}

// Move is a board coordinate, row and column in [0,7].
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a fixed 8x8 grid of cells with value semantics. Copying a
// Board copies all 64 cells, so transformations return new values and
// leave their input untouched.
type Board [Size][Size]Disc

// New returns the standard starting position: White on (3,3) and (4,4),
// Black on (3,4) and (4,3).
func New() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1] = White
	b[mid][mid] = White
	b[mid-1][mid] = Black
	b[mid][mid-1] = Black
	return b
}

// At returns the cell content, or Empty for out-of-range coordinates.
func (b Board) At(row, col int) Disc {
	if !inBounds(row, col) {
		return Empty
	}
	return b[row][col]
}

// Score tallies the discs of both colors.
func (b Board) Score() (black, white int) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white
}

// ToASCII creates a text representation of the board with file letters
// and rank numbers on the borders.
func (b Board) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for r := 0; r < Size; r++ {
		sb.WriteByte(byte('1' + r))
		sb.WriteByte(' ')
		for c := 0; c < Size; c++ {
			sb.WriteString(b[r][c].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('1' + r))
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
