package reversi

import (
	"math/rand"
	"testing"
)

func TestNewBoardStartingPosition(t *testing.T) {
	b := New()

	black, white := b.Score()
	if black != 2 || white != 2 {
		t.Fatalf("expected 2/2 starting score, got black=%d white=%d", black, white)
	}

	wants := []struct {
		row, col int
		disc     Disc
	}{
		{3, 3, White},
		{4, 4, White},
		{3, 4, Black},
		{4, 3, Black},
	}
	for _, w := range wants {
		if got := b.At(w.row, w.col); got != w.disc {
			t.Errorf("cell (%d,%d) = %v, want %v", w.row, w.col, got, w.disc)
		}
	}

	occupied := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != Empty {
				occupied++
			}
		}
	}
	if occupied != 4 {
		t.Fatalf("expected 4 occupied cells, got %d", occupied)
	}
}

func TestOpponentInvolutive(t *testing.T) {
	if Black.Opponent() != White || White.Opponent() != Black {
		t.Fatalf("opponent mapping broken")
	}
	if Black.Opponent().Opponent() != Black {
		t.Fatalf("opponent must be involutive")
	}
	if Empty.Opponent() != Empty {
		t.Fatalf("empty has no opponent")
	}
}

func TestAtOutOfRange(t *testing.T) {
	b := New()
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {100, 100}} {
		if got := b.At(pos[0], pos[1]); got != Empty {
			t.Errorf("At(%d,%d) = %v, want Empty", pos[0], pos[1], got)
		}
	}
}

// cellCountInvariant checks count(Black)+count(White)+count(Empty) == 64.
func cellCountInvariant(t *testing.T, b Board) {
	t.Helper()
	black, white := b.Score()
	empty := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				empty++
			}
		}
	}
	if black+white+empty != Size*Size {
		t.Fatalf("cell count invariant violated: black=%d white=%d empty=%d", black, white, empty)
	}
}

func TestCellCountInvariantDuringRandomPlayout(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := New()
	player := Black
	for i := 0; i < 60; i++ {
		moves := ValidMoves(b, player)
		if len(moves) == 0 {
			player = player.Opponent()
			if len(ValidMoves(b, player)) == 0 {
				break
			}
			continue
		}
		m := moves[rng.Intn(len(moves))]
		next, err := Apply(b, player, m)
		if err != nil {
			t.Fatalf("legal move (%d,%d) rejected: %v", m.Row, m.Col, err)
		}
		b = next
		cellCountInvariant(t, b)
		player = player.Opponent()
	}
}

func TestToASCIIStartingBoard(t *testing.T) {
	got := New().ToASCII()
	want := "  a b c d e f g h\n" +
		"1 . . . . . . . . 1\n" +
		"2 . . . . . . . . 2\n" +
		"3 . . . . . . . . 3\n" +
		"4 . . . w b . . . 4\n" +
		"5 . . . b w . . . 5\n" +
		"6 . . . . . . . . 6\n" +
		"7 . . . . . . . . 7\n" +
		"8 . . . . . . . . 8\n" +
		"  a b c d e f g h"
	if got != want {
		t.Fatalf("ASCII board mismatch:\n%s\nwant:\n%s", got, want)
	}
}
