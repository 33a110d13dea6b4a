// FILE: reversi/internal/reversi/search.go
package reversi

import "math"

// Alpha-beta window bounds. Heuristic scores are tiny compared to these,
// so they act as infinities.
const (
	scoreNegInf = math.MinInt32
	scorePosInf = math.MaxInt32
)

// SearchResult pairs the best reachable score with the move achieving it.
// Move is nil only when the mover has no legal move at the root (or the
// depth budget is already exhausted).
type SearchResult struct {
	Score int
	Move  *Move
}

// Search runs a depth-limited minimax with alpha-beta pruning and a full
// initial window.
//
// The scoring convention is a fixed perspective, not negamax: the returned
// score is always measured for the perspective player, regardless of which
// side moves at a given node. maximizing selects whose moves are expanded
// at this node — true for perspective's own moves, false for the
// opponent's — and flips on each recursion level. Callers, in particular
// the move-rating helper, depend on this exact asymmetric convention.
//
// Search is deterministic and raises no errors: zero and negative depths
// degrade to a terminal evaluation, as does a node whose mover is out of
// moves.
func Search(b Board, depth int, maximizing bool, perspective Disc) SearchResult {
	return search(b, depth, maximizing, perspective, scoreNegInf, scorePosInf)
}

func search(b Board, depth int, maximizing bool, perspective Disc, alpha, beta int) SearchResult {
	mover := perspective
	if !maximizing {
		mover = perspective.Opponent()
	}

	moves := ValidMoves(b, mover)
	if depth <= 0 || len(moves) == 0 {
		return SearchResult{Score: Evaluate(b, perspective)}
	}

	// Seed the first move before visiting any child so a move is returned
	// even if every child scores at the window bound.
	bestMove := moves[0]
	bestValue := scoreNegInf
	if !maximizing {
		bestValue = scorePosInf
	}

	for i := range moves {
		m := moves[i]
		child := apply(b, mover, m, FlipsForMove(b, mover, m.Row, m.Col))
		childScore := search(child, depth-1, !maximizing, perspective, alpha, beta).Score

		if maximizing {
			if childScore > bestValue {
				bestValue = childScore
				bestMove = m
			}
			if bestValue > alpha {
				alpha = bestValue
			}
		} else {
			if childScore < bestValue {
				bestValue = childScore
				bestMove = m
			}
			if bestValue < beta {
				beta = bestValue
			}
		}

		if beta <= alpha {
			break
		}
	}

	return SearchResult{Score: bestValue, Move: &bestMove}
}
