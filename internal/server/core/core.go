// FILE: reversi/internal/server/core/core.go
// Package core holds the shared types of the reversi server: colors,
// game states, player entities, API shapes, and error codes.
package core

import (
	"github.com/google/uuid"

	"reversi/internal/reversi"
)

type State int

const (
	StateOngoing State = iota
	StatePending // Computer is calculating a move
	StateStuck   // Engine task failed, game cannot continue
	StateBlackWins
	StateWhiteWins
	StateDraw
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateStuck:
		return "stuck"
	case StateBlackWins:
		return "black wins"
	case StateWhiteWins:
		return "white wins"
	case StateDraw:
		return "draw"
	default:
		return "ongoing"
	}
}

type Color int

const (
	ColorBlack Color = iota + 1
	ColorWhite
)

func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "b"
	case ColorWhite:
		return "w"
	default:
		return "-"
	}
}

// Disc maps the color onto the engine's disc type.
func (c Color) Disc() reversi.Disc {
	switch c {
	case ColorBlack:
		return reversi.Black
	case ColorWhite:
		return reversi.White
	default:
		return reversi.Empty
	}
}

// ColorOf maps an engine disc back to the server color.
func ColorOf(d reversi.Disc) Color {
	switch d {
	case reversi.Black:
		return ColorBlack
	case reversi.White:
		return ColorWhite
	default:
		return 0
	}
}

func OppositeColor(c Color) Color {
	if c == ColorBlack {
		return ColorWhite
	}
	return ColorBlack
}

type PlayerType int

const (
	PlayerHuman PlayerType = iota + 1
	PlayerComputer
)

// Player is the complete game participant with all state
type Player struct {
	ID    string     `json:"id"`
	Color Color      `json:"color"`
	Type  PlayerType `json:"type"`
	Depth int        `json:"depth,omitempty"` // Search depth, only for computer
}

// PlayerConfig for API requests and configuration
type PlayerConfig struct {
	Type  PlayerType `json:"type" validate:"required,oneof=1 2"`
	Depth int        `json:"depth,omitempty" validate:"omitempty,min=1,max=6"`
}

// PlayersResponse for API responses
type PlayersResponse struct {
	Black *Player `json:"black"`
	White *Player `json:"white"`
}

// NewPlayer creates a Player from PlayerConfig
func NewPlayer(config PlayerConfig, color Color) *Player {
	player := &Player{
		ID:    uuid.New().String(),
		Color: color,
		Type:  config.Type,
	}

	if config.Type == PlayerComputer {
		player.Depth = config.Depth
	}

	return player
}
