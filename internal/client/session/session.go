// FILE: reversi/internal/client/session/session.go
package session

import (
	"reversi/internal/client/api"
)

// Session holds the interactive client's state between commands
type Session struct {
	APIBaseURL       string
	Client           *api.Client
	AuthToken        string
	CurrentUser      string
	Username         string
	CurrentGame      string
	LastMoveCount    int
	PlayerColor      string // "b" or "w" when the logged-in user is seated
	CurrentGameState *api.GameResponse
	Verbose          bool
}

func (s *Session) GetAPIBaseURL() string       { return s.APIBaseURL }
func (s *Session) SetAPIBaseURL(url string)    { s.APIBaseURL = url }
func (s *Session) GetCurrentGame() string      { return s.CurrentGame }
func (s *Session) SetCurrentGame(id string)    { s.CurrentGame = id }
func (s *Session) GetCurrentUser() string      { return s.CurrentUser }
func (s *Session) SetCurrentUser(id string)    { s.CurrentUser = id }
func (s *Session) GetAuthToken() string        { return s.AuthToken }
func (s *Session) SetAuthToken(token string)   { s.AuthToken = token }
func (s *Session) GetUsername() string         { return s.Username }
func (s *Session) SetUsername(name string)     { s.Username = name }
func (s *Session) GetLastMoveCount() int       { return s.LastMoveCount }
func (s *Session) SetLastMoveCount(count int)  { s.LastMoveCount = count }
func (s *Session) GetClient() interface{}      { return s.Client }
func (s *Session) IsVerbose() bool             { return s.Verbose }
func (s *Session) SetPlayerColor(color string) { s.PlayerColor = color }
func (s *Session) GetPlayerColor() string      { return s.PlayerColor }

func (s *Session) SetGameState(state interface{}) {
	if gs, ok := state.(*api.GameResponse); ok {
		s.CurrentGameState = gs
	}
}
