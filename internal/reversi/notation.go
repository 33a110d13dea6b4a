// FILE: reversi/internal/reversi/notation.go
package reversi

import (
	"fmt"
	"strings"
)

// StartingNotation is the standard opening position with Black to move.
const StartingNotation = "8/8/8/3wb3/3bw3/8/8/8 b"

// Notation renders the board and side to move in a FEN-like text form:
// eight '/'-separated rows of 'b', 'w', and empty-run digits, then a
// space and the side to move.
func Notation(b Board, toMove Disc) string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		run := 0
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				run++
				continue
			}
			if run > 0 {
				sb.WriteByte(byte('0' + run))
				run = 0
			}
			sb.WriteString(b[r][c].String())
		}
		if run > 0 {
			sb.WriteByte(byte('0' + run))
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(toMove.String())
	return sb.String()
}

// ParseNotation parses the text form produced by Notation.
func ParseNotation(s string) (Board, Disc, error) {
	var b Board

	parts := strings.Fields(s)
	if len(parts) != 2 {
		return b, Empty, fmt.Errorf("invalid notation: expected 2 parts, got %d", len(parts))
	}

	rows := strings.Split(parts[0], "/")
	if len(rows) != Size {
		return b, Empty, fmt.Errorf("invalid notation: expected %d rows, got %d", Size, len(rows))
	}

	for r, row := range rows {
		col := 0
		for _, ch := range row {
			switch {
			case ch >= '1' && ch <= '8':
				col += int(ch - '0')
			case ch == 'b' || ch == 'w':
				if col >= Size {
					return b, Empty, fmt.Errorf("invalid notation: too many cells in row %d", r+1)
				}
				if ch == 'b' {
					b[r][col] = Black
				} else {
					b[r][col] = White
				}
				col++
			default:
				return b, Empty, fmt.Errorf("invalid notation: unexpected character %q in row %d", ch, r+1)
			}
		}
		if col != Size {
			return b, Empty, fmt.Errorf("invalid notation: row %d has %d cells", r+1, col)
		}
	}

	var toMove Disc
	switch parts[1] {
	case "b":
		toMove = Black
	case "w":
		toMove = White
	default:
		return b, Empty, fmt.Errorf("invalid notation: side to move must be 'b' or 'w'")
	}

	return b, toMove, nil
}

// FormatMove renders a move in algebraic form, file letter then rank
// digit, e.g. "d3" for (2,3).
func FormatMove(m Move) string {
	return fmt.Sprintf("%c%c", 'a'+m.Col, '1'+m.Row)
}

// ParseMove parses the algebraic form produced by FormatMove.
func ParseMove(s string) (Move, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Move{}, fmt.Errorf("invalid move %q: expected file a-h and rank 1-8", s)
	}
	return Move{Row: int(s[1] - '1'), Col: int(s[0] - 'a')}, nil
}
