// FILE: reversi/internal/client/api/types.go
package api

import "time"

// Request payloads

type PlayerConfig struct {
	Type  int `json:"type"` // 1 = human, 2 = computer
	Depth int `json:"depth,omitempty"`
}

type CreateGameRequest struct {
	Black PlayerConfig `json:"black"`
	White PlayerConfig `json:"white"`
	Board string       `json:"board,omitempty"`
}

type MoveRequest struct {
	Move string `json:"move"`
}

type UndoRequest struct {
	Count int `json:"count"`
}

type RateMoveRequest struct {
	Move  string `json:"move"`
	Depth int    `json:"depth,omitempty"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Response payloads

type PlayerInfo struct {
	ID    string `json:"id"`
	Color int    `json:"color"`
	Type  int    `json:"type"`
	Depth int    `json:"depth,omitempty"`
}

type PlayersInfo struct {
	Black PlayerInfo `json:"black"`
	White PlayerInfo `json:"white"`
}

type ScoreInfo struct {
	Black int `json:"black"`
	White int `json:"white"`
}

type MoveRating struct {
	Stars       int    `json:"stars"`
	Feedback    string `json:"feedback"`
	BestScore   int    `json:"bestScore"`
	WorstScore  int    `json:"worstScore"`
	PlayedScore int    `json:"playedScore"`
}

type MoveInfo struct {
	Move        string      `json:"move"`
	PlayerColor string      `json:"playerColor"`
	Score       int         `json:"score,omitempty"`
	Depth       int         `json:"depth,omitempty"`
	Rating      *MoveRating `json:"rating,omitempty"`
}

type GameResponse struct {
	GameID   string      `json:"gameId"`
	Board    string      `json:"board"`
	Turn     string      `json:"turn"`
	State    string      `json:"state"`
	Score    ScoreInfo   `json:"score"`
	Moves    []string    `json:"moves"`
	Players  PlayersInfo `json:"players"`
	LastMove *MoveInfo   `json:"lastMove,omitempty"`
}

type BoardResponse struct {
	Notation string `json:"notation"`
	Board    string `json:"board"`
}

type HintsResponse struct {
	Turn  string   `json:"turn"`
	Moves []string `json:"moves"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Time    int64  `json:"time"`
	Storage string `json:"storage,omitempty"`
}

type AuthResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type UserResponse struct {
	UserID    string     `json:"userId"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
