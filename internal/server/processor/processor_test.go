// FILE: reversi/internal/server/processor/processor_test.go
package processor

import (
	"fmt"
	"testing"

	"reversi/internal/reversi"
	"reversi/internal/server/core"
	"reversi/internal/server/service"
)

func newTestProcessor() (*Processor, *service.Service) {
	svc := service.New(nil, []byte("test-secret-minimum-32-characters-ok"))
	return New(svc), svc
}

func newComputerGame(t *testing.T, svc *service.Service) string {
	t.Helper()
	black := core.NewPlayer(core.PlayerConfig{Type: core.PlayerComputer, Depth: 2}, core.ColorBlack)
	white := core.NewPlayer(core.PlayerConfig{Type: core.PlayerHuman}, core.ColorWhite)
	id := svc.GenerateGameID()
	if err := svc.CreateGame(id, black, white, reversi.StartingNotation, core.ColorBlack); err != nil {
		t.Fatalf("create game: %v", err)
	}
	return id
}

func TestTriggerComputerMoveSubmitFailureMarksStuck(t *testing.T) {
	p, svc := newTestProcessor()
	id := newComputerGame(t, svc)
	svc.UpdateGameState(id, core.StatePending)

	// With the queue shut down the submit is rejected and no callback will
	// ever fire, so the trigger itself must clear the pending state.
	if err := p.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	g, err := svc.GetGame(id)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	p.triggerComputerMove(id, g)

	if g.State() != core.StateStuck {
		t.Fatalf("expected stuck state after rejected submit, got %v", g.State())
	}
}

func TestApplyEngineResultSuccess(t *testing.T) {
	p, svc := newTestProcessor()
	defer p.Close()
	id := newComputerGame(t, svc)
	svc.UpdateGameState(id, core.StatePending)

	p.applyEngineResult(id, reversi.StartingNotation, core.ColorBlack, EngineResult{
		GameID: id,
		Move:   "d3",
		Score:  3,
		Depth:  2,
	})

	g, err := svc.GetGame(id)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if g.State() != core.StateOngoing {
		t.Fatalf("expected ongoing after applied move, got %v", g.State())
	}
	if g.NextTurnColor() != core.ColorWhite {
		t.Fatalf("expected white to move, got %v", g.NextTurnColor())
	}
	if moves := g.Moves(); len(moves) != 1 || moves[0] != "d3" {
		t.Fatalf("expected recorded move d3, got %v", moves)
	}
}

func TestApplyEngineResultErrorMarksStuck(t *testing.T) {
	p, svc := newTestProcessor()
	defer p.Close()
	id := newComputerGame(t, svc)
	svc.UpdateGameState(id, core.StatePending)

	p.applyEngineResult(id, reversi.StartingNotation, core.ColorBlack, EngineResult{
		GameID: id,
		Error:  fmt.Errorf("search timeout"),
	})

	g, err := svc.GetGame(id)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if g.State() != core.StateStuck {
		t.Fatalf("expected stuck state after engine error, got %v", g.State())
	}
}

func TestApplyEngineResultIllegalMoveMarksStuck(t *testing.T) {
	p, svc := newTestProcessor()
	defer p.Close()
	id := newComputerGame(t, svc)
	svc.UpdateGameState(id, core.StatePending)

	// a1 flips nothing from the opening position.
	p.applyEngineResult(id, reversi.StartingNotation, core.ColorBlack, EngineResult{
		GameID: id,
		Move:   "a1",
	})

	g, err := svc.GetGame(id)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if g.State() != core.StateStuck {
		t.Fatalf("expected stuck state after illegal move, got %v", g.State())
	}
	if len(g.Moves()) != 0 {
		t.Fatalf("expected no recorded moves, got %v", g.Moves())
	}
}

func TestApplyEngineResultIgnoresNonPendingGame(t *testing.T) {
	p, svc := newTestProcessor()
	defer p.Close()
	id := newComputerGame(t, svc)

	// A stale result must not touch a game that is no longer waiting.
	p.applyEngineResult(id, reversi.StartingNotation, core.ColorBlack, EngineResult{
		GameID: id,
		Move:   "d3",
	})

	g, err := svc.GetGame(id)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if g.State() != core.StateOngoing {
		t.Fatalf("expected untouched ongoing state, got %v", g.State())
	}
	if len(g.Moves()) != 0 {
		t.Fatalf("expected no recorded moves, got %v", g.Moves())
	}
}

func TestApplyEngineResultDeletedGame(t *testing.T) {
	p, svc := newTestProcessor()
	defer p.Close()
	id := newComputerGame(t, svc)
	svc.UpdateGameState(id, core.StatePending)
	if err := svc.DeleteGame(id); err != nil {
		t.Fatalf("delete game: %v", err)
	}

	p.applyEngineResult(id, reversi.StartingNotation, core.ColorBlack, EngineResult{
		GameID: id,
		Move:   "d3",
	})

	if _, err := svc.GetGame(id); err == nil {
		t.Fatalf("expected game to stay deleted")
	}
}
