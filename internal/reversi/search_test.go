package reversi

import (
	"math/rand"
	"testing"
)

// plainMinimax is a full-width reference without pruning, used to verify
// that alpha-beta is strictly an optimization.
func plainMinimax(b Board, depth int, maximizing bool, perspective Disc) int {
	mover := perspective
	if !maximizing {
		mover = perspective.Opponent()
	}

	moves := ValidMoves(b, mover)
	if depth <= 0 || len(moves) == 0 {
		return Evaluate(b, perspective)
	}

	best := scoreNegInf
	if !maximizing {
		best = scorePosInf
	}
	for _, m := range moves {
		child := apply(b, mover, m, FlipsForMove(b, mover, m.Row, m.Col))
		score := plainMinimax(child, depth-1, !maximizing, perspective)
		if maximizing && score > best {
			best = score
		}
		if !maximizing && score < best {
			best = score
		}
	}
	return best
}

// randomPosition plays n random legal moves from the start.
func randomPosition(rng *rand.Rand, n int) Board {
	b := New()
	player := Black
	for i := 0; i < n; i++ {
		moves := ValidMoves(b, player)
		if len(moves) == 0 {
			player = player.Opponent()
			moves = ValidMoves(b, player)
			if len(moves) == 0 {
				break
			}
		}
		m := moves[rng.Intn(len(moves))]
		b = apply(b, player, m, FlipsForMove(b, player, m.Row, m.Col))
		player = player.Opponent()
	}
	return b
}

func TestSearchDepthZeroReturnsEvaluation(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 10; i++ {
		b := randomPosition(rng, i*3)
		for _, p := range []Disc{Black, White} {
			res := Search(b, 0, true, p)
			if res.Move != nil {
				t.Fatalf("depth 0 must not return a move, got %v", *res.Move)
			}
			if res.Score != Evaluate(b, p) {
				t.Fatalf("depth 0 score %d != evaluation %d", res.Score, Evaluate(b, p))
			}
		}
	}
}

func TestSearchNegativeDepthClampedToZero(t *testing.T) {
	b := New()
	got := Search(b, -3, true, Black)
	want := Search(b, 0, true, Black)
	if got.Score != want.Score || got.Move != nil {
		t.Fatalf("negative depth must behave like depth 0")
	}
}

func TestSearchReturnsMoveWheneverMovesExist(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for i := 0; i < 20; i++ {
		b := randomPosition(rng, rng.Intn(40))
		for _, p := range []Disc{Black, White} {
			res := Search(b, 3, true, p)
			if len(ValidMoves(b, p)) > 0 {
				if res.Move == nil {
					t.Fatalf("search dropped the move in a position with legal moves")
				}
				if !IsValidMove(b, p, res.Move.Row, res.Move.Col) {
					t.Fatalf("search returned illegal move %v", *res.Move)
				}
			} else if res.Move != nil {
				t.Fatalf("search invented a move in a dead position")
			}
		}
	}
}

func TestSearchPrunedEqualsFullWidth(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 12; i++ {
		b := randomPosition(rng, rng.Intn(30))
		for depth := 1; depth <= 4; depth++ {
			for _, maximizing := range []bool{true, false} {
				got := Search(b, depth, maximizing, Black).Score
				want := plainMinimax(b, depth, maximizing, Black)
				if got != want {
					t.Fatalf("pruned score %d != full-width score %d (depth %d, maximizing %v)",
						got, want, depth, maximizing)
				}
			}
		}
	}
}

func TestSearchDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	b := randomPosition(rng, 12)

	first := Search(b, 4, true, White)
	second := Search(b, 4, true, White)
	if first.Score != second.Score {
		t.Fatalf("scores differ across identical calls: %d vs %d", first.Score, second.Score)
	}
	if (first.Move == nil) != (second.Move == nil) {
		t.Fatalf("move presence differs across identical calls")
	}
	if first.Move != nil && *first.Move != *second.Move {
		t.Fatalf("moves differ across identical calls: %v vs %v", *first.Move, *second.Move)
	}
}

func TestSearchFirstFoundWinsTies(t *testing.T) {
	// Depth 1 from the start: all four openings are symmetric and score
	// identically, so the row-major first move must win the tie.
	res := Search(New(), 1, true, Black)
	if res.Move == nil {
		t.Fatalf("expected a move")
	}
	if *res.Move != (Move{Row: 2, Col: 3}) {
		t.Fatalf("tie must resolve to the first row-major move, got %v", *res.Move)
	}
}
