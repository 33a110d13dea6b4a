// FILE: reversi/internal/server/core/api.go
package core

import "reversi/internal/reversi"

// Request types

type CreateGameRequest struct {
	Black PlayerConfig `json:"black" validate:"required"`
	White PlayerConfig `json:"white" validate:"required"`
	Board string       `json:"board,omitempty" validate:"omitempty,max=80"` // Position notation, starting position if empty
}

type ConfigurePlayersRequest struct {
	Black PlayerConfig `json:"black" validate:"required"`
	White PlayerConfig `json:"white" validate:"required"`
}

type MoveRequest struct {
	Move string `json:"move" validate:"required,min=2,max=2"` // "cc" triggers the computer move, otherwise file+rank like "d3"
}

type RateMoveRequest struct {
	Move  string `json:"move" validate:"required,min=2,max=2"`
	Depth int    `json:"depth,omitempty" validate:"omitempty,min=1,max=6"`
}

type UndoRequest struct {
	Count int `json:"count" validate:"required,min=1,max=60"` // A reversi game has at most 60 placements
}

// Response types

type GameResponse struct {
	GameID   string          `json:"gameId"`
	Board    string          `json:"board"` // Position notation
	Turn     string          `json:"turn"`  // "b" or "w"
	State    string          `json:"state"` // "ongoing", "black wins", etc
	Score    ScoreResponse   `json:"score"`
	Moves    []string        `json:"moves"`
	Players  PlayersResponse `json:"players"`
	LastMove *MoveInfo       `json:"lastMove,omitempty"`
}

type ScoreResponse struct {
	Black int `json:"black"`
	White int `json:"white"`
}

type MoveInfo struct {
	Move        string              `json:"move"`
	PlayerColor string              `json:"playerColor"` // "b" or "w"
	Score       int                 `json:"score,omitempty"`
	Depth       int                 `json:"depth,omitempty"`
	Rating      *reversi.MoveRating `json:"rating,omitempty"` // Only for rated human moves
}

type HintsResponse struct {
	Turn  string   `json:"turn"`
	Moves []string `json:"moves"` // Legal moves in row-major order
}

type BoardResponse struct {
	Notation string `json:"notation"`
	Board    string `json:"board"` // ASCII representation
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
