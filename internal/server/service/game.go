// FILE: reversi/internal/server/service/game.go
package service

import (
	"fmt"
	"time"

	"reversi/internal/server/core"
	"reversi/internal/server/game"
	"reversi/internal/server/storage"

	"github.com/google/uuid"
)

// CreateGame registers a new game with pre-constructed players
func (s *Service) CreateGame(id string, blackPlayer, whitePlayer *core.Player, initialBoard string, startingTurn core.Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("game %s already exists", id)
	}

	s.games[id] = game.New(initialBoard, blackPlayer, whitePlayer, startingTurn)

	// Persist if storage enabled
	if s.store != nil {
		record := storage.GameRecord{
			GameID:        id,
			InitialBoard:  initialBoard,
			BlackPlayerID: blackPlayer.ID,
			BlackType:     int(blackPlayer.Type),
			BlackDepth:    blackPlayer.Depth,
			WhitePlayerID: whitePlayer.ID,
			WhiteType:     int(whitePlayer.Type),
			WhiteDepth:    whitePlayer.Depth,
			Result:        core.StateOngoing.String(),
			StartTimeUTC:  time.Now().UTC(),
		}
		s.store.RecordNewGame(record)
	}

	return nil
}

// UpdatePlayers replaces players in an existing game
func (s *Service) UpdatePlayers(gameID string, blackPlayer, whitePlayer *core.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}

	g.UpdatePlayers(blackPlayer, whitePlayer)

	return nil
}

// GetGame retrieves a game by ID
func (s *Service) GetGame(gameID string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	return g, nil
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Ensure UUID uniqueness (handle potential conflicts)
	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// ApplyMove adds a validated move to the game history, with optional
// search and rating metadata for persistence
func (s *Service) ApplyMove(gameID, move, newBoard string, nextTurn core.Color, result *game.MoveResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}

	currentTurn := g.NextTurnColor()

	g.AddSnapshot(newBoard, move, nextTurn)
	g.SetLastResult(result)

	// Notify waiting clients about the state change
	s.waiter.NotifyGame(gameID, len(g.Moves()))

	// Persist if storage enabled
	if s.store != nil {
		record := storage.MoveRecord{
			GameID:         gameID,
			MoveNumber:     len(g.Moves()),
			Move:           move,
			BoardAfterMove: newBoard,
			PlayerColor:    currentTurn.String(),
			MoveTimeUTC:    time.Now().UTC(),
		}
		if result != nil {
			record.Score = result.Score
			record.Depth = result.Depth
			if result.Rating != nil {
				record.Rating = result.Rating.Stars
			}
		}
		s.store.RecordMove(record)
	}

	return nil
}

// UpdateGameState sets the game's state (pending, game over, etc)
func (s *Service) UpdateGameState(gameID string, state core.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}

	g.SetState(state)

	// Notify and persist if the game ended
	if state != core.StateOngoing && state != core.StatePending {
		s.waiter.NotifyGame(gameID, len(g.Moves()))
		if s.store != nil {
			s.store.RecordGameResult(gameID, state.String())
		}
	}

	return nil
}

// UndoMoves removes the specified number of moves from game history
func (s *Service) UndoMoves(gameID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}

	originalMoveCount := len(g.Moves())

	if err := g.UndoMoves(count); err != nil {
		return err
	}

	// Notify waiting clients about the undo
	s.waiter.NotifyGame(gameID, len(g.Moves()))

	// Delete undone moves from storage if enabled
	if s.store != nil {
		s.store.DeleteUndoneMoves(gameID, originalMoveCount-count)
	}

	return nil
}

// DeleteGame removes a game from memory
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}

	// Notify and remove all waiters before deletion
	s.waiter.RemoveGame(gameID)

	delete(s.games, gameID)
	return nil
}

// QueryGameHistory returns persisted games, optionally filtered
func (s *Service) QueryGameHistory(gameID, playerID string) ([]storage.GameRecord, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage disabled")
	}
	return s.store.QueryGames(gameID, playerID)
}
