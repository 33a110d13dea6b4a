// FILE: reversi/internal/reversi/eval.go
package reversi

// Evaluation weights. Positive terms favor the evaluated player.
const (
	cornerWeight   = 50
	mobilityWeight = 5
	edgeWeight     = 5
	xSquareWeight  = 30
)

var corners = [4]Move{
	{Row: 0, Col: 0}, {Row: 0, Col: Size - 1},
	{Row: Size - 1, Col: 0}, {Row: Size - 1, Col: Size - 1},
}

// xSquares are the cells diagonally adjacent to each corner, paired with
// the corner they expose.
var xSquares = [4]struct{ square, corner Move }{
	{Move{1, 1}, Move{0, 0}},
	{Move{1, Size - 2}, Move{0, Size - 1}},
	{Move{Size - 2, 1}, Move{Size - 1, 0}},
	{Move{Size - 2, Size - 2}, Move{Size - 1, Size - 1}},
}

// Evaluate scores the board from player's point of view. It is a heuristic
// estimate combining disc difference, corner control, mobility, edge
// control, and an X-square penalty; it makes no claim of optimal play
// beyond the search horizon.
func Evaluate(b Board, player Disc) int {
	opponent := player.Opponent()

	black, white := b.Score()
	score := black - white
	if player == White {
		score = white - black
	}

	for _, corner := range corners {
		switch b[corner.Row][corner.Col] {
		case player:
			score += cornerWeight
		case opponent:
			score -= cornerWeight
		}
	}

	score += mobilityWeight * (len(ValidMoves(b, player)) - len(ValidMoves(b, opponent)))

	score += edgeWeight * edgeBalance(b, player)

	// Occupying a cell next to an unclaimed corner hands the corner to the
	// opponent; once the corner is taken the cell is no longer risky.
	for _, x := range xSquares {
		if b[x.corner.Row][x.corner.Col] != Empty {
			continue
		}
		switch b[x.square.Row][x.square.Col] {
		case player:
			score -= xSquareWeight
		case opponent:
			score += xSquareWeight
		}
	}

	return score
}

// edgeBalance counts player-owned minus opponent-owned cells among the 24
// non-corner edge cells (indices 1..6 on each of the four edges).
func edgeBalance(b Board, player Disc) int {
	opponent := player.Opponent()
	balance := 0
	tally := func(d Disc) {
		switch d {
		case player:
			balance++
		case opponent:
			balance--
		}
	}
	for i := 1; i < Size-1; i++ {
		tally(b[0][i])
		tally(b[Size-1][i])
		tally(b[i][0])
		tally(b[i][Size-1])
	}
	return balance
}
