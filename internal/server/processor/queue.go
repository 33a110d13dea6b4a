// FILE: reversi/internal/server/processor/queue.go
package processor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"reversi/internal/reversi"
	"reversi/internal/server/core"
)

// EngineTask contains computer move calculation request and response channel
type EngineTask struct {
	GameID   string
	Board    string // Position notation
	Color    core.Color
	Player   *core.Player // Full player config including search depth
	Response chan<- EngineResult
}

// EngineResult contains the outcome of an engine calculation
type EngineResult struct {
	GameID string
	Move   string
	Score  int
	Depth  int
	Error  error
}

// EngineQueue manages async engine computations
type EngineQueue struct {
	tasks   chan EngineTask
	workers int
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewEngineQueue creates a queue with specified worker count
func NewEngineQueue(workerCount int) *EngineQueue {
	if workerCount < 1 {
		workerCount = 2 // Default
	}

	ctx, cancel := context.WithCancel(context.Background())

	q := &EngineQueue{
		tasks:   make(chan EngineTask, 100), // Buffered for queueing
		workers: workerCount,
		ctx:     ctx,
		cancel:  cancel,
	}

	q.start()
	return q
}

// start initializes the worker pool
func (q *EngineQueue) start() {
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
}

// worker processes engine tasks
func (q *EngineQueue) worker() {
	defer q.wg.Done()

	for {
		select {
		case task, ok := <-q.tasks:
			if !ok {
				return // Channel closed
			}

			result := q.processTask(task)

			// Send result if receiver still listening
			select {
			case task.Response <- result:
			case <-time.After(100 * time.Millisecond):
				// Receiver abandoned, discard result
			}

		case <-q.ctx.Done():
			return
		}
	}
}

// processTask executes a single search
func (q *EngineQueue) processTask(task EngineTask) EngineResult {
	result := EngineResult{
		GameID: task.GameID,
	}

	b, toMove, err := reversi.ParseNotation(task.Board)
	if err != nil {
		result.Error = fmt.Errorf("invalid position: %w", err)
		return result
	}
	if toMove != task.Color.Disc() {
		result.Error = fmt.Errorf("position is not %s to move", task.Color)
		return result
	}

	depth := defaultSearchDepth
	if task.Player.Type == core.PlayerComputer && task.Player.Depth > 0 {
		depth = task.Player.Depth
	}

	search := reversi.Search(b, depth, true, task.Color.Disc())

	// No legal moves
	if search.Move == nil {
		return result
	}

	result.Move = reversi.FormatMove(*search.Move)
	result.Score = search.Score
	result.Depth = depth

	return result
}

// Submit adds a task to the queue
func (q *EngineQueue) Submit(task EngineTask) error {
	// Sending on the closed task channel would panic, so refuse new work
	// once shutdown has begun.
	select {
	case <-q.ctx.Done():
		return fmt.Errorf("queue is shutting down")
	default:
	}

	select {
	case q.tasks <- task:
		return nil
	case <-q.ctx.Done():
		return fmt.Errorf("queue is shutting down")
	default:
		return fmt.Errorf("queue is full")
	}
}

// SubmitAsync submits a task without blocking for result
func (q *EngineQueue) SubmitAsync(gameID, board string, color core.Color, player *core.Player, callback func(EngineResult)) error {
	respChan := make(chan EngineResult, 1)

	task := EngineTask{
		GameID:   gameID,
		Board:    board,
		Color:    color,
		Player:   player,
		Response: respChan,
	}

	if err := q.Submit(task); err != nil {
		return err
	}

	// Handle result in background
	go func() {
		select {
		case result := <-respChan:
			callback(result)
		case <-time.After(30 * time.Second):
			callback(EngineResult{
				GameID: gameID,
				Error:  fmt.Errorf("search timeout"),
			})
		}
	}()

	return nil
}

// Shutdown gracefully stops the queue
func (q *EngineQueue) Shutdown(timeout time.Duration) error {
	q.cancel()
	close(q.tasks)

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timeout exceeded")
	}
}
