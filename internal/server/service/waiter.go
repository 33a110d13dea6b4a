// FILE: reversi/internal/server/service/waiter.go
package service

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const (
	// WaitTimeout is the maximum time a client can wait for notifications
	WaitTimeout = 25 * time.Second

	// WaitChannelBuffer size for notification channels
	WaitChannelBuffer = 1
)

// WaitRegistry manages long-polling clients waiting for game state changes
type WaitRegistry struct {
	mu       sync.RWMutex
	waiters  map[string][]*WaitRequest // gameID -> waiting clients
	shutdown chan struct{}
	wg       sync.WaitGroup
}

// WaitRequest represents a single client waiting for game updates
type WaitRequest struct {
	MoveCount int             // Last known move count
	Notify    chan struct{}   // Buffered channel for notifications
	Timer     *time.Timer     // Timeout timer
	Context   context.Context // Client connection context
	GameID    string          // Game being watched
}

// NewWaitRegistry creates a new wait registry
func NewWaitRegistry() *WaitRegistry {
	return &WaitRegistry{
		waiters:  make(map[string][]*WaitRequest),
		shutdown: make(chan struct{}),
	}
}

// RegisterWait registers a client to wait for game state changes
func (w *WaitRegistry) RegisterWait(gameID string, moveCount int, ctx context.Context) <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()

	req := &WaitRequest{
		MoveCount: moveCount,
		Notify:    make(chan struct{}, WaitChannelBuffer),
		Context:   ctx,
		GameID:    gameID,
	}

	req.Timer = time.AfterFunc(WaitTimeout, func() {
		w.handleTimeout(req)
	})

	w.waiters[gameID] = append(w.waiters[gameID], req)

	// Cleanup on notification, disconnect, or shutdown
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		select {
		case <-ctx.Done():
			w.removeWaiter(gameID, req)
		case <-req.Notify:
			req.Timer.Stop()
			w.removeWaiter(gameID, req)
		case <-w.shutdown:
			req.Timer.Stop()
			close(req.Notify)
		}
	}()

	return req.Notify
}

// NotifyGame notifies all clients waiting on a game about state change
func (w *WaitRegistry) NotifyGame(gameID string, currentMoveCount int) {
	w.mu.RLock()
	waitList := w.waiters[gameID]
	w.mu.RUnlock()

	if len(waitList) == 0 {
		return
	}

	// Non-blocking notification to all waiters
	for _, req := range waitList {
		// Only notify if move count changed
		if req.MoveCount != currentMoveCount {
			select {
			case req.Notify <- struct{}{}:
			default:
				// Channel full or closed, skip slow client
			}
		}
	}
}

// RemoveGame removes all waiters for a game (called before game deletion)
func (w *WaitRegistry) RemoveGame(gameID string) {
	w.mu.Lock()
	waitList := w.waiters[gameID]
	delete(w.waiters, gameID)
	w.mu.Unlock()

	// Notify all waiters that game is gone
	for _, req := range waitList {
		select {
		case req.Notify <- struct{}{}:
		default:
		}
	}
}

// Shutdown gracefully shuts down the wait registry
func (w *WaitRegistry) Shutdown(timeout time.Duration) error {
	close(w.shutdown)

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("wait registry shutdown timed out")
	}
}

// handleTimeout wakes a waiter whose timer expired
func (w *WaitRegistry) handleTimeout(req *WaitRequest) {
	select {
	case req.Notify <- struct{}{}:
	default:
	}
}

// removeWaiter removes a specific waiter from the registry
func (w *WaitRegistry) removeWaiter(gameID string, req *WaitRequest) {
	w.mu.Lock()
	defer w.mu.Unlock()

	waitList := w.waiters[gameID]
	for i, waiter := range waitList {
		if waiter == req {
			w.waiters[gameID] = append(waitList[:i], waitList[i+1:]...)
			break
		}
	}

	if len(w.waiters[gameID]) == 0 {
		delete(w.waiters, gameID)
	}

	req.Timer.Stop()
}
