package reversi

import (
	"errors"
	"testing"
)

func TestValidMovesStartingPositionBlack(t *testing.T) {
	moves := ValidMoves(New(), Black)

	want := map[Move]bool{
		{2, 3}: true,
		{3, 2}: true,
		{4, 5}: true,
		{5, 4}: true,
	}
	if len(moves) != len(want) {
		t.Fatalf("expected %d moves, got %v", len(want), moves)
	}
	for _, m := range moves {
		if !want[m] {
			t.Errorf("unexpected move %v", m)
		}
	}
}

func TestValidMovesRowMajorOrder(t *testing.T) {
	moves := ValidMoves(New(), Black)
	for i := 1; i < len(moves); i++ {
		prev, cur := moves[i-1], moves[i]
		if cur.Row < prev.Row || (cur.Row == prev.Row && cur.Col <= prev.Col) {
			t.Fatalf("moves not in row-major order: %v", moves)
		}
	}
}

func TestFlipsForMoveTotalOverAllCoordinates(t *testing.T) {
	b := New()
	cases := [][2]int{{-1, 0}, {0, -1}, {8, 8}, {3, 3}, {0, 0}, {-5, 42}}
	for _, pos := range cases {
		if flips := FlipsForMove(b, Black, pos[0], pos[1]); len(flips) != 0 {
			t.Errorf("FlipsForMove(%d,%d) = %v, want empty", pos[0], pos[1], flips)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	b := New()
	before := b

	if _, err := Apply(b, Black, Move{Row: 2, Col: 3}); err != nil {
		t.Fatalf("legal move rejected: %v", err)
	}
	if b != before {
		t.Fatalf("Apply mutated its input board")
	}
}

func TestApplyStartingMoveFlips(t *testing.T) {
	next, err := Apply(New(), Black, Move{Row: 2, Col: 3})
	if err != nil {
		t.Fatalf("legal move rejected: %v", err)
	}

	black, white := next.Score()
	if black != 4 || white != 1 {
		t.Fatalf("expected score 4/1 after d3, got black=%d white=%d", black, white)
	}
	if next.At(3, 3) != Black {
		t.Fatalf("expected (3,3) flipped to Black, got %v", next.At(3, 3))
	}
	if next.At(2, 3) != Black {
		t.Fatalf("expected disc placed at (2,3)")
	}
}

func TestApplyRejectsIllegalMoves(t *testing.T) {
	b := New()
	cases := []struct {
		name string
		move Move
	}{
		{"occupied cell", Move{Row: 3, Col: 3}},
		{"no flips", Move{Row: 0, Col: 0}},
		{"out of range", Move{Row: -1, Col: 9}},
	}
	for _, tc := range cases {
		got, err := Apply(b, Black, tc.move)
		if !errors.Is(err, ErrInvalidMove) {
			t.Errorf("%s: expected ErrInvalidMove, got %v", tc.name, err)
		}
		if got != b {
			t.Errorf("%s: rejected move must return the board unchanged", tc.name)
		}
	}
}

func TestIsValidMove(t *testing.T) {
	b := New()
	if !IsValidMove(b, Black, 2, 3) {
		t.Errorf("expected (2,3) legal for Black")
	}
	if IsValidMove(b, White, 2, 3) {
		t.Errorf("expected (2,3) illegal for White")
	}
	if IsValidMove(b, Black, 3, 3) {
		t.Errorf("occupied cell cannot be legal")
	}
}

func TestFlipsForMoveMultipleDirections(t *testing.T) {
	// White discs flanked both horizontally and vertically by the same
	// placement at (3,5).
	var b Board
	b[3][3] = Black
	b[3][4] = White
	b[4][5] = White
	b[5][5] = Black
	b[3][6] = Black

	flips := FlipsForMove(b, Black, 3, 5)
	want := map[Move]bool{{3, 4}: true, {4, 5}: true}
	if len(flips) != len(want) {
		t.Fatalf("expected flips in two directions, got %v", flips)
	}
	for _, f := range flips {
		if !want[f] {
			t.Errorf("unexpected flip %v", f)
		}
	}
}
