// FILE: reversi/internal/server/processor/processor.go

package processor

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"
	"unicode"

	"reversi/internal/reversi"
	"reversi/internal/server/core"
	"reversi/internal/server/game"
	"reversi/internal/server/service"
)

const (
	defaultSearchDepth = 4
	maxSearchDepth     = 6

	// computerMoveSentinel in a move request hands the turn to the engine
	computerMoveSentinel = "cc"
)

// Position notation validation regex
var notationPattern = regexp.MustCompile(`^[bw1-8/]+ [bw]$`)

// Processor handles command execution and coordinates between service and engine layers
type Processor struct {
	svc   *service.Service
	queue *EngineQueue
}

// New creates a processor with its own search queue
func New(svc *service.Service) *Processor {
	return &Processor{
		svc:   svc,
		queue: NewEngineQueue(2), // 2 workers for computer moves
	}
}

func (p *Processor) Execute(cmd Command) ProcessorResponse {
	switch cmd.Type {
	case CmdCreateGame:
		return p.handleCreateGame(cmd)
	case CmdConfigurePlayers:
		return p.handleConfigurePlayers(cmd)
	case CmdGetGame:
		return p.handleGetGame(cmd)
	case CmdMakeMove:
		return p.handleMakeMove(cmd)
	case CmdUndoMove:
		return p.handleUndoMove(cmd)
	case CmdDeleteGame:
		return p.handleDeleteGame(cmd)
	case CmdGetBoard:
		return p.handleGetBoard(cmd)
	case CmdGetHints:
		return p.handleGetHints(cmd)
	case CmdRateMove:
		return p.handleRateMove(cmd)
	default:
		return p.errorResponse("unknown command", core.ErrInvalidRequest)
	}
}

// isNotationSafe checks for control characters and overall notation shape
func (p *Processor) isNotationSafe(notation string) bool {
	for _, r := range notation {
		if unicode.IsControl(r) && r != ' ' {
			return false
		}
	}

	return notationPattern.MatchString(notation)
}

// isMoveSafe validates the two-character algebraic form, e.g. "d3"
func (p *Processor) isMoveSafe(move string) bool {
	for _, r := range move {
		if unicode.IsControl(r) {
			return false
		}
	}

	if len(move) != 2 {
		return false
	}

	return move[0] >= 'a' && move[0] <= 'h' && move[1] >= '1' && move[1] <= '8'
}

// clampDepth enforces search depth bounds for computer players
func clampDepth(config *core.PlayerConfig) {
	if config.Type != core.PlayerComputer {
		return
	}
	if config.Depth < 1 {
		config.Depth = defaultSearchDepth
	}
	if config.Depth > maxSearchDepth {
		config.Depth = maxSearchDepth
	}
}

// handleCreateGame creates a new game, validating any custom position
func (p *Processor) handleCreateGame(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.CreateGameRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	clampDepth(&args.Black)
	clampDepth(&args.White)

	// Generate game ID
	gameID := p.svc.GenerateGameID()

	// Validate and canonicalize position if provided
	notation := reversi.StartingNotation
	if args.Board != "" {
		if !p.isNotationSafe(args.Board) {
			return p.errorResponse("invalid board format or characters", core.ErrInvalidBoard)
		}
		notation = args.Board
	}

	b, toMove, err := reversi.ParseNotation(notation)
	if err != nil {
		return p.errorResponse(fmt.Sprintf("invalid board: %v", err), core.ErrInvalidBoard)
	}

	// The stated side may have no reply in a custom position; the pass
	// rule hands the opening turn to the opponent
	startColor := core.ColorOf(toMove)
	ended := false
	if len(reversi.ValidMoves(b, toMove)) == 0 {
		if len(reversi.ValidMoves(b, toMove.Opponent())) > 0 {
			startColor = core.OppositeColor(startColor)
		} else {
			ended = true
		}
	}
	notation = reversi.Notation(b, startColor.Disc())

	// Create players with appropriate IDs
	blackPlayer := core.NewPlayer(args.Black, core.ColorBlack)
	whitePlayer := core.NewPlayer(args.White, core.ColorWhite)

	// Override player IDs for authenticated human players
	if args.Black.Type == core.PlayerHuman && cmd.UserID != "" {
		blackPlayer.ID = cmd.UserID
	}
	if args.White.Type == core.PlayerHuman && cmd.UserID != "" {
		whitePlayer.ID = cmd.UserID
	}

	// Create game in service with fully-formed players
	if err = p.svc.CreateGame(gameID, blackPlayer, whitePlayer, notation, startColor); err != nil {
		return p.errorResponse(fmt.Sprintf("failed to create game: %v", err), core.ErrInternalError)
	}

	// A custom position may already be a finished game
	if ended {
		p.svc.UpdateGameState(gameID, game.FinalState(b))
	}

	// Get created game
	g, err := p.svc.GetGame(gameID)
	if err != nil {
		return p.errorResponse("game creation failed", core.ErrInternalError)
	}

	// Build response
	response := p.buildGameResponse(gameID, g)

	return ProcessorResponse{
		Success: true,
		Data:    response,
	}
}

// handleConfigurePlayers updates player configuration mid-game
func (p *Processor) handleConfigurePlayers(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.ConfigurePlayersRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	clampDepth(&args.Black)
	clampDepth(&args.White)

	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	// Block configuration changes during computer move
	if g.State() == core.StatePending {
		return p.errorResponse("cannot change players while computer is calculating", core.ErrInvalidRequest)
	}

	// Create new player instances
	blackPlayer := core.NewPlayer(args.Black, core.ColorBlack)
	whitePlayer := core.NewPlayer(args.White, core.ColorWhite)

	// Update players in service
	if err = p.svc.UpdatePlayers(cmd.GameID, blackPlayer, whitePlayer); err != nil {
		return p.errorResponse(fmt.Sprintf("failed to update players: %v", err), core.ErrInternalError)
	}

	// Get updated game
	g, _ = p.svc.GetGame(cmd.GameID)
	response := p.buildGameResponse(cmd.GameID, g)

	return ProcessorResponse{
		Success: true,
		Data:    response,
	}
}

// handleGetGame retrieves game state
func (p *Processor) handleGetGame(cmd Command) ProcessorResponse {
	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	response := p.buildGameResponse(cmd.GameID, g)

	return ProcessorResponse{
		Success: true,
		Data:    response,
	}
}

// handleMakeMove processes human moves and the computer move sentinel
func (p *Processor) handleMakeMove(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.MoveRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	// Validate game state
	switch g.State() {
	case core.StatePending:
		return p.errorResponse("computer move in progress", core.ErrInvalidRequest)
	case core.StateStuck:
		return p.errorResponse("game is stuck due to engine error", core.ErrGameOver)
	case core.StateBlackWins, core.StateWhiteWins, core.StateDraw:
		return p.errorResponse(fmt.Sprintf("game is over: %s", g.State()), core.ErrGameOver)
	case core.StateOngoing:
		break
	default:
		return p.errorResponse("game is in invalid state", core.ErrInvalidRequest)
	}

	move := strings.ToLower(strings.TrimSpace(args.Move))

	// Sentinel move - trigger computer move
	if move == computerMoveSentinel {
		if g.NextPlayer().Type != core.PlayerComputer {
			return p.errorResponse("not computer player's turn", core.ErrNotHumanTurn)
		}

		// Set state to pending and trigger computer move
		p.svc.UpdateGameState(cmd.GameID, core.StatePending)
		p.triggerComputerMove(cmd.GameID, g)

		// Re-fetch for updated state
		g, _ = p.svc.GetGame(cmd.GameID)
		response := p.buildGameResponse(cmd.GameID, g)
		response.LastMove = &core.MoveInfo{
			PlayerColor: g.NextTurnColor().String(),
		}

		return ProcessorResponse{
			Success: true,
			Pending: true,
			Data:    response,
		}
	}

	// Handle human move
	if g.NextPlayer().Type != core.PlayerHuman {
		return p.errorResponse("not human player's turn", core.ErrNotHumanTurn)
	}

	if !p.isMoveSafe(move) {
		return p.errorResponse("invalid move format", core.ErrInvalidMove)
	}

	b, _, err := reversi.ParseNotation(g.CurrentBoard())
	if err != nil {
		return p.errorResponse("error parsing position", core.ErrInternalError)
	}

	currentColor := g.NextTurnColor()
	mv, err := reversi.ParseMove(move)
	if err != nil {
		return p.errorResponse("invalid move format", core.ErrInvalidMove)
	}

	newBoard, err := reversi.Apply(b, currentColor.Disc(), mv)
	if err != nil {
		return p.errorResponse("illegal move", core.ErrInvalidMove)
	}

	// Rate the move against the position it was played from
	var rating *reversi.MoveRating
	if r, err := reversi.RateMove(b, currentColor.Disc(), mv, defaultSearchDepth); err == nil {
		rating = &r
	}

	nextTurn, ongoing := game.NextTurnAfter(newBoard, currentColor)
	notation := reversi.Notation(newBoard, nextTurn.Disc())

	result := &game.MoveResult{
		Move:        move,
		PlayerColor: currentColor,
		GameState:   core.StateOngoing,
		Rating:      rating,
	}

	// Apply move to game state via service
	if err = p.svc.ApplyMove(cmd.GameID, move, notation, nextTurn, result); err != nil {
		return p.errorResponse(fmt.Sprintf("failed to apply move: %v", err), core.ErrInternalError)
	}

	if !ongoing {
		p.svc.UpdateGameState(cmd.GameID, game.FinalState(newBoard))
	}

	// Get updated game
	g, _ = p.svc.GetGame(cmd.GameID)
	response := p.buildGameResponse(cmd.GameID, g)

	// Add human move info
	response.LastMove = &core.MoveInfo{
		Move:        move,
		PlayerColor: currentColor.String(),
		Rating:      rating,
	}

	return ProcessorResponse{
		Success: true,
		Data:    response,
	}
}

// handleUndoMove reverts game state
func (p *Processor) handleUndoMove(cmd Command) ProcessorResponse {
	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	// Check game state
	switch g.State() {
	case core.StatePending:
		return p.errorResponse("cannot undo while computer move is in progress", core.ErrInvalidRequest)
	case core.StateStuck:
		return p.errorResponse("cannot undo in stuck game", core.ErrInvalidRequest)
	}

	args := core.UndoRequest{Count: 1}
	if cmd.Args != nil {
		if req, ok := cmd.Args.(core.UndoRequest); ok {
			args = req
		}
	}

	if err = p.svc.UndoMoves(cmd.GameID, args.Count); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return p.errorResponse("game not found", core.ErrGameNotFound)
		}
		return p.errorResponse(err.Error(), core.ErrInvalidRequest)
	}

	// Reset game state to ongoing after undo
	p.svc.UpdateGameState(cmd.GameID, core.StateOngoing)

	g, _ = p.svc.GetGame(cmd.GameID)
	response := p.buildGameResponse(cmd.GameID, g)

	return ProcessorResponse{
		Success: true,
		Data:    response,
	}
}

// handleDeleteGame removes a game
func (p *Processor) handleDeleteGame(cmd Command) ProcessorResponse {
	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	// Only block deletion if actively computing
	if g.State() == core.StatePending {
		return p.errorResponse("cannot delete game while computer move is in progress", core.ErrInvalidRequest)
	}

	if err = p.svc.DeleteGame(cmd.GameID); err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	return ProcessorResponse{
		Success: true,
	}
}

// handleGetBoard returns board visualization
func (p *Processor) handleGetBoard(cmd Command) ProcessorResponse {
	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	b, _, err := reversi.ParseNotation(g.CurrentBoard())
	if err != nil {
		return p.errorResponse("error parsing position", core.ErrInvalidBoard)
	}

	return ProcessorResponse{
		Success: true,
		Data: core.BoardResponse{
			Notation: g.CurrentBoard(),
			Board:    b.ToASCII(),
		},
	}
}

// handleGetHints lists the legal moves for the side to move
func (p *Processor) handleGetHints(cmd Command) ProcessorResponse {
	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	b, _, err := reversi.ParseNotation(g.CurrentBoard())
	if err != nil {
		return p.errorResponse("error parsing position", core.ErrInvalidBoard)
	}

	turn := g.NextTurnColor()
	legal := reversi.ValidMoves(b, turn.Disc())
	moves := make([]string, 0, len(legal))
	for _, m := range legal {
		moves = append(moves, reversi.FormatMove(m))
	}

	return ProcessorResponse{
		Success: true,
		Data: core.HintsResponse{
			Turn:  turn.String(),
			Moves: moves,
		},
	}
}

// handleRateMove rates a candidate move for the side to move without playing it
func (p *Processor) handleRateMove(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.RateMoveRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	if g.State() == core.StatePending {
		return p.errorResponse("computer move in progress", core.ErrInvalidRequest)
	}

	move := strings.ToLower(strings.TrimSpace(args.Move))
	if !p.isMoveSafe(move) {
		return p.errorResponse("invalid move format", core.ErrInvalidMove)
	}

	mv, err := reversi.ParseMove(move)
	if err != nil {
		return p.errorResponse("invalid move format", core.ErrInvalidMove)
	}

	depth := args.Depth
	if depth < 1 {
		depth = defaultSearchDepth
	}
	if depth > maxSearchDepth {
		depth = maxSearchDepth
	}

	b, _, err := reversi.ParseNotation(g.CurrentBoard())
	if err != nil {
		return p.errorResponse("error parsing position", core.ErrInvalidBoard)
	}

	rating, err := reversi.RateMove(b, g.NextTurnColor().Disc(), mv, depth)
	if err != nil {
		return p.errorResponse("illegal move", core.ErrInvalidMove)
	}

	return ProcessorResponse{
		Success: true,
		Data:    rating,
	}
}

// triggerComputerMove initiates async engine calculation
func (p *Processor) triggerComputerMove(gameID string, g *game.Game) {
	notation := g.CurrentBoard()
	color := g.NextTurnColor()
	player := g.NextPlayer()

	// Submit to queue with callback and computer config
	err := p.queue.SubmitAsync(gameID, notation, color, player, func(result EngineResult) {
		p.applyEngineResult(gameID, notation, color, result)
	})
	if err != nil {
		// No callback will fire, so the pending state must be cleared here.
		log.Printf("Failed to queue engine move for game %s: %v", gameID, err)
		p.svc.UpdateGameState(gameID, core.StateStuck)
	}
}

// applyEngineResult commits a finished engine calculation to the game
func (p *Processor) applyEngineResult(gameID, notation string, color core.Color, result EngineResult) {
	// Check if game still exists
	currentGame, err := p.svc.GetGame(gameID)
	if err != nil {
		return // Game was deleted
	}

	// Only process if still in pending state
	if currentGame.State() != core.StatePending {
		return
	}

	if result.Error != nil {
		log.Printf("Engine error for game %s: %v", gameID, result.Error)
		p.svc.UpdateGameState(gameID, core.StateStuck)
		return
	}

	b, _, err := reversi.ParseNotation(notation)
	if err != nil {
		p.svc.UpdateGameState(gameID, core.StateStuck)
		return
	}

	// Turn tracking only hands the move to a side with a legal reply,
	// so an empty best move means the game is already decided
	if result.Move == "" {
		p.svc.UpdateGameState(gameID, game.FinalState(b))
		return
	}

	mv, err := reversi.ParseMove(result.Move)
	if err != nil {
		p.svc.UpdateGameState(gameID, core.StateStuck)
		return
	}

	newBoard, err := reversi.Apply(b, color.Disc(), mv)
	if err != nil {
		log.Printf("Engine produced illegal move %s for game %s", result.Move, gameID)
		p.svc.UpdateGameState(gameID, core.StateStuck)
		return
	}

	nextTurn, ongoing := game.NextTurnAfter(newBoard, color)
	newNotation := reversi.Notation(newBoard, nextTurn.Disc())

	if err := p.svc.ApplyMove(gameID, result.Move, newNotation, nextTurn, &game.MoveResult{
		Move:        result.Move,
		PlayerColor: color,
		GameState:   core.StateOngoing,
		Score:       result.Score,
		Depth:       result.Depth,
	}); err != nil {
		log.Printf("Failed to apply engine move %s for game %s: %v", result.Move, gameID, err)
		p.svc.UpdateGameState(gameID, core.StateStuck)
		return
	}

	// Reset to ongoing first
	p.svc.UpdateGameState(gameID, core.StateOngoing)

	if !ongoing {
		p.svc.UpdateGameState(gameID, game.FinalState(newBoard))
	}
}

// buildGameResponse constructs standard game response
func (p *Processor) buildGameResponse(gameID string, g *game.Game) core.GameResponse {
	resp := core.GameResponse{
		GameID: gameID,
		Board:  g.CurrentBoard(),
		Turn:   g.NextTurnColor().String(),
		State:  g.State().String(),
		Moves:  g.Moves(),
		Players: core.PlayersResponse{
			Black: g.GetPlayer(core.ColorBlack),
			White: g.GetPlayer(core.ColorWhite),
		},
	}

	if b, _, err := reversi.ParseNotation(g.CurrentBoard()); err == nil {
		black, white := b.Score()
		resp.Score = core.ScoreResponse{Black: black, White: white}
	}

	// Include last move if available
	if result := g.LastResult(); result != nil {
		resp.LastMove = &core.MoveInfo{
			Move:        result.Move,
			PlayerColor: result.PlayerColor.String(),
			Score:       result.Score,
			Depth:       result.Depth,
			Rating:      result.Rating,
		}
	}

	return resp
}

// errorResponse creates error response
func (p *Processor) errorResponse(message, code string) ProcessorResponse {
	return ProcessorResponse{
		Success: false,
		Error: &core.ErrorResponse{
			Error: message,
			Code:  code,
		},
	}
}

// Close cleans up resources
func (p *Processor) Close() error {
	return p.queue.Shutdown(5 * time.Second)
}
