// FILE: reversi/internal/server/storage/user.go
package storage

import (
	"database/sql"
	"fmt"
	"time"
)

const userColumns = `user_id, username, email, password_hash, account_type, created_at, expires_at, last_login_at`

func scanUser(row *sql.Row) (*UserRecord, error) {
	var user UserRecord
	err := row.Scan(
		&user.UserID, &user.Username, &user.Email,
		&user.PasswordHash, &user.AccountType, &user.CreatedAt,
		&user.ExpiresAt, &user.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates user with transaction isolation to prevent race
// conditions on the uniqueness check
func (s *Store) CreateUser(record UserRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := s.userExists(tx, record.Username, record.Email)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("username or email already exists")
	}

	query := `INSERT INTO users (
		user_id, username, email, password_hash, account_type, created_at, expires_at
	) VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = tx.Exec(query,
		record.UserID, record.Username, record.Email,
		record.PasswordHash, record.AccountType, record.CreatedAt, record.ExpiresAt,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// userExists verifies username/email uniqueness within a transaction
func (s *Store) userExists(tx *sql.Tx, username, email string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE username = ? COLLATE NOCASE`
	args := []any{username}

	if email != "" {
		query = `SELECT COUNT(*) FROM users WHERE username = ? COLLATE NOCASE OR email = ? COLLATE NOCASE`
		args = append(args, email)
	}

	err := tx.QueryRow(query, args...).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetUserByUsername retrieves user by username with case-insensitive matching
func (s *Store) GetUserByUsername(username string) (*UserRecord, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ? COLLATE NOCASE`
	return scanUser(s.db.QueryRow(query, username))
}

// GetUserByEmail retrieves user by email with case-insensitive matching
func (s *Store) GetUserByEmail(email string) (*UserRecord, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ? COLLATE NOCASE`
	return scanUser(s.db.QueryRow(query, email))
}

// GetUserByID retrieves user by unique user ID
func (s *Store) GetUserByID(userID string) (*UserRecord, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = ?`
	return scanUser(s.db.QueryRow(query, userID))
}

// GetAllUsers retrieves all users, newest first
func (s *Store) GetAllUsers() ([]UserRecord, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []UserRecord
	for rows.Next() {
		var user UserRecord
		err := rows.Scan(
			&user.UserID, &user.Username, &user.Email,
			&user.PasswordHash, &user.AccountType, &user.CreatedAt,
			&user.ExpiresAt, &user.LastLoginAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// UpdateUserPassword updates user password hash
func (s *Store) UpdateUserPassword(userID string, passwordHash string) error {
	_, err := s.db.Exec(`UPDATE users SET password_hash = ? WHERE user_id = ?`, passwordHash, userID)
	return err
}

// UpdateUserEmail updates user email
func (s *Store) UpdateUserEmail(userID string, email string) error {
	_, err := s.db.Exec(`UPDATE users SET email = ? WHERE user_id = ?`, email, userID)
	return err
}

// UpdateUserUsername updates username
func (s *Store) UpdateUserUsername(userID string, username string) error {
	_, err := s.db.Exec(`UPDATE users SET username = ? WHERE user_id = ?`, username, userID)
	return err
}

// UpdateUserLastLoginSync updates user last login time
func (s *Store) UpdateUserLastLoginSync(userID string, loginTime time.Time) error {
	_, err := s.db.Exec(`UPDATE users SET last_login_at = ? WHERE user_id = ?`, loginTime, userID)
	if err != nil {
		return fmt.Errorf("failed to update last login for user %s: %w", userID, err)
	}
	return nil
}

// DeleteUserByID removes a user by ID (synchronous, for admin tooling)
func (s *Store) DeleteUserByID(userID string) error {
	_, err := s.db.Exec(`DELETE FROM users WHERE user_id = ?`, userID)
	return err
}

// DeleteExpiredTempUsers removes temporary users past their expiry
func (s *Store) DeleteExpiredTempUsers() (int64, error) {
	query := `DELETE FROM users WHERE account_type = 'temp' AND expires_at < ?`
	result, err := s.db.Exec(query, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
