// FILE: reversi/internal/reversi/moves.go
package reversi

import "errors"

// ErrInvalidMove reports a placement on an occupied cell, an out-of-range
// coordinate, or a placement that would flip nothing.
var ErrInvalidMove = errors.New("invalid move")

// directions are the 8 unit vectors used for line scanning.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// FlipsForMove returns the opponent cells captured by player placing at
// (row, col). It is total: out-of-range coordinates and occupied cells
// yield nil rather than an error. A non-empty result on an empty cell is
// the single source of truth for move legality.
func FlipsForMove(b Board, player Disc, row, col int) []Move {
	if !inBounds(row, col) || b[row][col] != Empty {
		return nil
	}

	opponent := player.Opponent()
	var flips []Move
	for _, d := range directions {
		// Collect the run of opponent discs in this direction.
		r, c := row+d[0], col+d[1]
		start := len(flips)
		for inBounds(r, c) && b[r][c] == opponent {
			flips = append(flips, Move{Row: r, Col: c})
			r += d[0]
			c += d[1]
		}
		// The run only counts if it terminates on the player's own disc.
		if !inBounds(r, c) || b[r][c] != player {
			flips = flips[:start]
		}
	}
	return flips
}

// IsValidMove reports whether placing at (row, col) captures at least one
// opponent disc.
func IsValidMove(b Board, player Disc, row, col int) bool {
	return len(FlipsForMove(b, player, row, col)) > 0
}

// ValidMoves returns all legal moves for player in row-major scan order.
// The order is load-bearing: the search engine breaks ties by first-found
// move. Returns an empty slice when no legal move exists.
func ValidMoves(b Board, player Disc) []Move {
	var moves []Move
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if IsValidMove(b, player, r, c) {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// Apply places player's disc at m and flips the captured discs, returning
// the new board. The input board is never modified. Illegal placements
// (occupied cell or no captures) return ErrInvalidMove.
func Apply(b Board, player Disc, m Move) (Board, error) {
	flips := FlipsForMove(b, player, m.Row, m.Col)
	if len(flips) == 0 {
		return b, ErrInvalidMove
	}
	return apply(b, player, m, flips), nil
}

// apply performs the placement without legality checks. Callers must pass
// flips obtained from FlipsForMove for the same board, player, and move.
func apply(b Board, player Disc, m Move, flips []Move) Board {
	b[m.Row][m.Col] = player
	for _, f := range flips {
		b[f.Row][f.Col] = player
	}
	return b
}
