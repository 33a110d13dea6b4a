// FILE: reversi/internal/server/storage/game.go
package storage

import (
	"database/sql"
	"fmt"
)

// RecordNewGame asynchronously records a new game
func (s *Store) RecordNewGame(record GameRecord) {
	s.enqueueWrite("game record", func(tx *sql.Tx) error {
		query := `INSERT INTO games (
			game_id, initial_board,
			black_player_id, black_type, black_depth,
			white_player_id, white_type, white_depth,
			result, start_time_utc
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

		_, err := tx.Exec(query,
			record.GameID, record.InitialBoard,
			record.BlackPlayerID, record.BlackType, record.BlackDepth,
			record.WhitePlayerID, record.WhiteType, record.WhiteDepth,
			record.Result, record.StartTimeUTC,
		)
		return err
	})
}

// RecordMove asynchronously records a move with its search and rating
// metadata
func (s *Store) RecordMove(record MoveRecord) {
	s.enqueueWrite("move record", func(tx *sql.Tx) error {
		query := `INSERT INTO moves (
			game_id, move_number, move, board_after_move, player_color,
			score, depth, rating, move_time_utc
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

		_, err := tx.Exec(query,
			record.GameID, record.MoveNumber, record.Move,
			record.BoardAfterMove, record.PlayerColor,
			record.Score, record.Depth, record.Rating, record.MoveTimeUTC,
		)
		return err
	})
}

// RecordGameResult asynchronously stores the final result of a game
func (s *Store) RecordGameResult(gameID, result string) {
	s.enqueueWrite("game result", func(tx *sql.Tx) error {
		_, err := tx.Exec(`UPDATE games SET result = ? WHERE game_id = ?`, result, gameID)
		return err
	})
}

// DeleteUndoneMoves asynchronously deletes moves after undo
func (s *Store) DeleteUndoneMoves(gameID string, afterMoveNumber int) {
	s.enqueueWrite("undo operation", func(tx *sql.Tx) error {
		query := `DELETE FROM moves WHERE game_id = ? AND move_number > ?`
		_, err := tx.Exec(query, gameID, afterMoveNumber)
		return err
	})
}

// QueryGames retrieves games with optional filtering
func (s *Store) QueryGames(gameID, playerID string) ([]GameRecord, error) {
	query := `SELECT
		game_id, initial_board,
		black_player_id, black_type, black_depth,
		white_player_id, white_type, white_depth,
		result, start_time_utc
	FROM games WHERE 1=1`

	var args []interface{}

	if gameID != "" && gameID != "*" {
		query += " AND game_id = ?"
		args = append(args, gameID)
	}

	if playerID != "" && playerID != "*" {
		query += " AND (black_player_id = ? OR white_player_id = ?)"
		args = append(args, playerID, playerID)
	}

	query += " ORDER BY start_time_utc DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		err := rows.Scan(
			&g.GameID, &g.InitialBoard,
			&g.BlackPlayerID, &g.BlackType, &g.BlackDepth,
			&g.WhitePlayerID, &g.WhiteType, &g.WhiteDepth,
			&g.Result, &g.StartTimeUTC,
		)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return games, nil
}

// QueryMoves retrieves the move history of a game in play order
func (s *Store) QueryMoves(gameID string) ([]MoveRecord, error) {
	query := `SELECT
		move_id, game_id, move_number, move, board_after_move,
		player_color, score, depth, rating, move_time_utc
	FROM moves WHERE game_id = ? ORDER BY move_number ASC`

	rows, err := s.db.Query(query, gameID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(
			&m.MoveID, &m.GameID, &m.MoveNumber, &m.Move, &m.BoardAfterMove,
			&m.PlayerColor, &m.Score, &m.Depth, &m.Rating, &m.MoveTimeUTC,
		)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		moves = append(moves, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return moves, nil
}
