// FILE: reversi/internal/server/game/game.go
// Package game holds the server-side game entity: a snapshot stack of
// positions plus the reversi turn rules (pass when the opponent has no
// reply, game over when neither side can move).
package game

import (
	"fmt"

	"reversi/internal/reversi"
	"reversi/internal/server/core"
)

type Snapshot struct {
	Board         string     `json:"board"` // Position notation
	PreviousMove  string     `json:"previousMove"`
	NextTurnColor core.Color `json:"nextTurnColor"`
	PlayerID      string     `json:"playerId"` // ID of the player whose turn it is
}

// MoveResult tracks the outcome of a move
type MoveResult struct {
	Move        string              `json:"move"`
	PlayerColor core.Color          `json:"playerColor"`
	GameState   core.State          `json:"gameState"`
	Score       int                 `json:"score"`
	Depth       int                 `json:"depth"`
	Rating      *reversi.MoveRating `json:"rating,omitempty"`
}

type Game struct {
	snapshots  []Snapshot
	players    map[core.Color]*core.Player
	state      core.State
	lastResult *MoveResult
}

func New(initialBoard string, blackPlayer, whitePlayer *core.Player, startingTurnColor core.Color) *Game {
	var initialPlayerID string
	if startingTurnColor == core.ColorBlack {
		initialPlayerID = blackPlayer.ID
	} else {
		initialPlayerID = whitePlayer.ID
	}

	return &Game{
		snapshots: []Snapshot{
			{
				Board:         initialBoard,
				PreviousMove:  "",
				NextTurnColor: startingTurnColor,
				PlayerID:      initialPlayerID,
			},
		},
		players: map[core.Color]*core.Player{
			core.ColorBlack: blackPlayer,
			core.ColorWhite: whitePlayer,
		},
		state: core.StateOngoing,
	}
}

func (g *Game) SetLastResult(result *MoveResult) {
	g.lastResult = result
}

func (g *Game) LastResult() *MoveResult {
	return g.lastResult
}

// CurrentSnapshot returns the latest game snapshot
func (g *Game) CurrentSnapshot() Snapshot {
	return g.snapshots[len(g.snapshots)-1]
}

// CurrentBoard returns the current position notation
func (g *Game) CurrentBoard() string {
	return g.CurrentSnapshot().Board
}

func (g *Game) NextTurnColor() core.Color {
	return g.CurrentSnapshot().NextTurnColor
}

func (g *Game) NextPlayer() *core.Player {
	return g.players[g.NextTurnColor()]
}

func (g *Game) GetPlayer(color core.Color) *core.Player {
	return g.players[color]
}

func (g *Game) AddSnapshot(board string, move string, nextTurnColor core.Color) {
	nextPlayer := g.players[nextTurnColor]
	g.snapshots = append(g.snapshots, Snapshot{
		Board:         board,
		PreviousMove:  move,
		NextTurnColor: nextTurnColor,
		PlayerID:      nextPlayer.ID,
	})
}

func (g *Game) UpdatePlayers(blackPlayer, whitePlayer *core.Player) {
	g.players[core.ColorBlack] = blackPlayer
	g.players[core.ColorWhite] = whitePlayer

	// Update current snapshot's PlayerID to reflect new player
	if len(g.snapshots) > 0 {
		currentSnap := &g.snapshots[len(g.snapshots)-1]
		currentSnap.PlayerID = g.players[currentSnap.NextTurnColor].ID
	}
}

func (g *Game) UndoMoves(count int) error {
	if count < 1 {
		return fmt.Errorf("invalid undo count: %d", count)
	}

	availableMoves := len(g.snapshots) - 1
	if availableMoves < count {
		return fmt.Errorf("cannot undo %d moves: only %d moves available", count, availableMoves)
	}

	g.snapshots = g.snapshots[:len(g.snapshots)-count]
	g.state = core.StateOngoing
	g.lastResult = nil
	return nil
}

func (g *Game) Moves() []string {
	moves := []string{}
	for i := 1; i < len(g.snapshots); i++ {
		if g.snapshots[i].PreviousMove != "" {
			moves = append(moves, g.snapshots[i].PreviousMove)
		}
	}
	return moves
}

func (g *Game) State() core.State {
	return g.state
}

func (g *Game) SetState(s core.State) {
	g.state = s
}

func (g *Game) InitialBoard() string {
	if len(g.snapshots) > 0 {
		return g.snapshots[0].Board
	}
	return reversi.StartingNotation
}

// NextTurnAfter applies the pass rule: after mover played on board b, the
// opponent moves unless they have no legal reply, in which case the turn
// stays with mover. When neither side can move the second result is false
// and the game is over.
func NextTurnAfter(b reversi.Board, mover core.Color) (core.Color, bool) {
	opponent := core.OppositeColor(mover)
	if len(reversi.ValidMoves(b, opponent.Disc())) > 0 {
		return opponent, true
	}
	if len(reversi.ValidMoves(b, mover.Disc())) > 0 {
		return mover, true
	}
	return mover, false
}

// FinalState decides the end-of-game state from the disc tally.
func FinalState(b reversi.Board) core.State {
	black, white := b.Score()
	switch {
	case black > white:
		return core.StateBlackWins
	case white > black:
		return core.StateWhiteWins
	default:
		return core.StateDraw
	}
}
