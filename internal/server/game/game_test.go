package game

import (
	"testing"

	"reversi/internal/reversi"
	"reversi/internal/server/core"
)

func newTestGame() *Game {
	black := core.NewPlayer(core.PlayerConfig{Type: core.PlayerHuman}, core.ColorBlack)
	white := core.NewPlayer(core.PlayerConfig{Type: core.PlayerComputer, Depth: 3}, core.ColorWhite)
	return New(reversi.StartingNotation, black, white, core.ColorBlack)
}

func TestNewGameInitialSnapshot(t *testing.T) {
	g := newTestGame()

	if g.CurrentBoard() != reversi.StartingNotation {
		t.Fatalf("unexpected initial board %q", g.CurrentBoard())
	}
	if g.NextTurnColor() != core.ColorBlack {
		t.Fatalf("black moves first, got %v", g.NextTurnColor())
	}
	if g.State() != core.StateOngoing {
		t.Fatalf("new game must be ongoing")
	}
	if len(g.Moves()) != 0 {
		t.Fatalf("new game has no moves, got %v", g.Moves())
	}
}

func TestAddSnapshotAndUndo(t *testing.T) {
	g := newTestGame()

	b, _, err := reversi.ParseNotation(g.CurrentBoard())
	if err != nil {
		t.Fatalf("parse board: %v", err)
	}
	next, err := reversi.Apply(b, reversi.Black, reversi.Move{Row: 2, Col: 3})
	if err != nil {
		t.Fatalf("apply move: %v", err)
	}
	g.AddSnapshot(reversi.Notation(next, reversi.White), "d3", core.ColorWhite)

	if len(g.Moves()) != 1 || g.Moves()[0] != "d3" {
		t.Fatalf("expected one move d3, got %v", g.Moves())
	}
	if g.NextTurnColor() != core.ColorWhite {
		t.Fatalf("turn should pass to white")
	}

	if err := g.UndoMoves(1); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if g.CurrentBoard() != reversi.StartingNotation {
		t.Fatalf("undo did not restore the starting position")
	}
	if err := g.UndoMoves(1); err == nil {
		t.Fatalf("undo past the start must fail")
	}
	if err := g.UndoMoves(0); err == nil {
		t.Fatalf("undo count below 1 must fail")
	}
}

func TestNextTurnAfterPassRule(t *testing.T) {
	// After black's opening move white can reply: normal alternation.
	b, _, _ := reversi.ParseNotation(reversi.StartingNotation)
	next, _ := reversi.Apply(b, reversi.Black, reversi.Move{Row: 2, Col: 3})

	turn, ongoing := NextTurnAfter(next, core.ColorBlack)
	if !ongoing || turn != core.ColorWhite {
		t.Fatalf("expected white to move, got %v ongoing=%v", turn, ongoing)
	}

	// Only black can move: black at (0,0), white at (0,1), empty beyond.
	// White just moved, has no reply, so black plays again.
	var pass reversi.Board
	pass[0][0] = reversi.Black
	pass[0][1] = reversi.White

	turn, ongoing = NextTurnAfter(pass, core.ColorWhite)
	if !ongoing || turn != core.ColorBlack {
		t.Fatalf("expected black to move after white, got %v ongoing=%v", turn, ongoing)
	}

	// Neither side can move: game over.
	var dead reversi.Board
	dead[0][0] = reversi.Black
	turn, ongoing = NextTurnAfter(dead, core.ColorBlack)
	if ongoing {
		t.Fatalf("expected game over, got turn %v", turn)
	}
}

func TestFinalState(t *testing.T) {
	var b reversi.Board
	b[0][0] = reversi.Black
	b[0][1] = reversi.Black
	b[0][2] = reversi.White
	if s := FinalState(b); s != core.StateBlackWins {
		t.Fatalf("expected black wins, got %v", s)
	}

	b[0][3] = reversi.White
	if s := FinalState(b); s != core.StateDraw {
		t.Fatalf("expected draw, got %v", s)
	}

	b[0][4] = reversi.White
	if s := FinalState(b); s != core.StateWhiteWins {
		t.Fatalf("expected white wins, got %v", s)
	}
}

func TestUpdatePlayersRebindsSnapshot(t *testing.T) {
	g := newTestGame()

	black := core.NewPlayer(core.PlayerConfig{Type: core.PlayerComputer, Depth: 2}, core.ColorBlack)
	white := core.NewPlayer(core.PlayerConfig{Type: core.PlayerHuman}, core.ColorWhite)
	g.UpdatePlayers(black, white)

	if g.NextPlayer().ID != black.ID {
		t.Fatalf("current snapshot must point at the replacement player")
	}
	if g.GetPlayer(core.ColorWhite).ID != white.ID {
		t.Fatalf("white player not replaced")
	}
}
