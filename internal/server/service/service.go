// FILE: reversi/internal/server/service/service.go
// Package service coordinates game state, user accounts, and storage.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"reversi/internal/server/game"
	"reversi/internal/server/storage"
)

const (
	SessionTTL         = 7 * 24 * time.Hour
	TempUserTTL        = 24 * time.Hour
	CleanupJobInterval = 1 * time.Hour
)

// Service coordinates game state, user management, and storage
type Service struct {
	games     map[string]*game.Game
	mu        sync.RWMutex
	store     *storage.Store
	jwtSecret []byte
	waiter    *WaitRegistry
}

// New creates a new service instance with optional storage
func New(store *storage.Store, jwtSecret []byte) *Service {
	return &Service{
		games:     make(map[string]*game.Game),
		store:     store,
		jwtSecret: jwtSecret,
		waiter:    NewWaitRegistry(),
	}
}

// GetStorageHealth returns the storage component status
func (s *Service) GetStorageHealth() string {
	if s.store == nil {
		return "disabled"
	}
	if s.store.IsHealthy() {
		return "ok"
	}
	return "degraded"
}

// RegisterWait registers a client to wait for game state changes
func (s *Service) RegisterWait(gameID string, moveCount int, ctx context.Context) <-chan struct{} {
	return s.waiter.RegisterWait(gameID, moveCount, ctx)
}

// Shutdown gracefully shuts down the service
func (s *Service) Shutdown(timeout time.Duration) error {
	var errs []error

	if err := s.waiter.Shutdown(timeout); err != nil {
		errs = append(errs, fmt.Errorf("wait registry: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]*game.Game)

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	return errors.Join(errs...)
}

// RunCleanupJob runs periodic cleanup of expired users and sessions
func (s *Service) RunCleanupJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanupExpired()
		}
	}
}

func (s *Service) cleanupExpired() {
	if s.store == nil {
		return
	}

	if deleted, err := s.store.DeleteExpiredTempUsers(); err != nil {
		log.Printf("cleanup: failed to delete expired users: %v", err)
	} else if deleted > 0 {
		log.Printf("cleanup: deleted %d expired temp users", deleted)
	}

	if deleted, err := s.store.DeleteExpiredSessions(); err != nil {
		log.Printf("cleanup: failed to delete expired sessions: %v", err)
	} else if deleted > 0 {
		log.Printf("cleanup: deleted %d expired sessions", deleted)
	}
}
