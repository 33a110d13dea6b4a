package reversi

import "testing"

func TestEvaluateStartingBoardIsBalanced(t *testing.T) {
	b := New()
	if score := Evaluate(b, Black); score != 0 {
		t.Fatalf("starting position should evaluate to 0 for Black, got %d", score)
	}
	if score := Evaluate(b, White); score != 0 {
		t.Fatalf("starting position should evaluate to 0 for White, got %d", score)
	}
}

func TestEvaluateLoneCornerDisc(t *testing.T) {
	// Single Black disc at (0,0): piece diff 1, corner +50, no mobility
	// for either side, no edge cells occupied, X-square rule inactive
	// because the corner is taken.
	var b Board
	b[0][0] = Black

	if score := Evaluate(b, Black); score != 51 {
		t.Fatalf("expected 51 for lone corner disc, got %d", score)
	}
	if score := Evaluate(b, White); score != -51 {
		t.Fatalf("expected -51 from White's perspective, got %d", score)
	}
}

func TestEvaluateXSquarePenaltyGatedOnEmptyCorner(t *testing.T) {
	// Black on the X-square next to an empty corner: 1 (piece) - 30 (X).
	var b Board
	b[1][1] = Black
	if score := Evaluate(b, Black); score != 1-30 {
		t.Fatalf("expected %d with empty corner, got %d", 1-30, score)
	}

	// Claiming the corner deactivates the penalty: 2 + 50.
	b[0][0] = Black
	if score := Evaluate(b, Black); score != 2+50 {
		t.Fatalf("expected %d with owned corner, got %d", 2+50, score)
	}
}

func TestEvaluateEdgeControl(t *testing.T) {
	// A non-corner edge cell is worth 5, plus 1 for the disc itself.
	var b Board
	b[0][3] = Black
	if score := Evaluate(b, Black); score != 1+5 {
		t.Fatalf("expected %d for lone edge disc, got %d", 1+5, score)
	}
}

func TestEvaluateMobilityTerm(t *testing.T) {
	// Black's edge disc blocks the only flanking line White could use, so
	// Black can capture at c4 while White has no legal move at all.
	var b Board
	b[3][0] = Black
	b[3][1] = White

	blackMoves := ValidMoves(b, Black)
	whiteMoves := ValidMoves(b, White)
	if len(blackMoves) != 1 || blackMoves[0] != (Move{Row: 3, Col: 2}) {
		t.Fatalf("expected black's only move at (3,2), got %v", blackMoves)
	}
	if len(whiteMoves) != 0 {
		t.Fatalf("expected no white moves, got %v", whiteMoves)
	}

	// Pieces cancel (1-1), black's non-corner edge disc adds 5, mobility
	// adds 5*(1-0).
	want := edgeWeight + mobilityWeight*1
	if score := Evaluate(b, Black); score != want {
		t.Fatalf("expected %d, got %d", want, score)
	}
	if score := Evaluate(b, White); score != -want {
		t.Fatalf("expected %d from white's side, got %d", -want, score)
	}
}
