package reversi

import (
	"errors"
	"testing"
)

func TestRateMoveNoLegalMoves(t *testing.T) {
	// A lone Black disc can capture nothing, so Black has no legal moves.
	var b Board
	b[0][0] = Black

	rating, err := RateMove(b, Black, Move{Row: 4, Col: 4}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rating.Stars != 0 {
		t.Fatalf("expected inapplicable rating 0, got %d", rating.Stars)
	}
	if rating.Feedback != "no moves available" {
		t.Fatalf("unexpected feedback %q", rating.Feedback)
	}
}

func TestRateMoveRejectsIllegalMove(t *testing.T) {
	_, err := RateMove(New(), Black, Move{Row: 0, Col: 0}, 2)
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove for a move outside the legal set, got %v", err)
	}
}

func TestRateMoveSingleOutcomeIsOptimal(t *testing.T) {
	// Black's only legal move is (0,2): one achievable outcome, so the
	// move is rated optimal by definition.
	var b Board
	b[0][0] = Black
	b[0][1] = White

	legal := ValidMoves(b, Black)
	if len(legal) != 1 || legal[0] != (Move{Row: 0, Col: 2}) {
		t.Fatalf("test position expects exactly one legal move, got %v", legal)
	}

	rating, err := RateMove(b, Black, Move{Row: 0, Col: 2}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rating.Stars != 5 {
		t.Fatalf("expected 5 stars for only available move, got %d", rating.Stars)
	}
	if rating.Feedback != "optimal" {
		t.Fatalf("unexpected feedback %q", rating.Feedback)
	}
}

func TestRateMoveStaysOnScale(t *testing.T) {
	b := New()
	for _, m := range ValidMoves(b, Black) {
		rating, err := RateMove(b, Black, m, 3)
		if err != nil {
			t.Fatalf("legal move %v rejected: %v", m, err)
		}
		if rating.Stars < 1 || rating.Stars > 5 {
			t.Fatalf("rating %d out of 1-5 range for move %v", rating.Stars, m)
		}
		if rating.Feedback == "" {
			t.Fatalf("missing feedback for move %v", m)
		}
		// worst is the minimum over all reply values, so every played
		// value sits at or above it.
		if rating.PlayedScore < rating.WorstScore {
			t.Fatalf("played value %d below worst bound %d", rating.PlayedScore, rating.WorstScore)
		}
	}
}

func TestRateMoveDeterministic(t *testing.T) {
	b := New()
	m := Move{Row: 2, Col: 3}
	first, err := RateMove(b, Black, m, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := RateMove(b, Black, m, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("rating not deterministic: %+v vs %+v", first, second)
	}
}
