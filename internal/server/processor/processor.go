package processor

import (
	"errors"
	"log"
	"strings"
	"unicode"

	"checkers/internal/core"
	"checkers/internal/engine"
	"checkers/internal/notation"
	"checkers/internal/server/game"
	"checkers/internal/server/service"
)

// Processor executes commands against the service and translates results
// and errors into wire responses.
type Processor struct {
	svc *service.Service
}

func New(svc *service.Service) *Processor {
	return &Processor{svc: svc}
}

func (p *Processor) Execute(cmd Command) ProcessorResponse {
	switch cmd.Type {
	case CmdCreateGame:
		return p.handleCreateGame(cmd)
	case CmdJoinGame:
		return p.handleJoinGame(cmd)
	case CmdGetGame:
		return p.handleGetGame(cmd)
	case CmdMakeMove:
		return p.handleMakeMove(cmd)
	case CmdDeleteGame:
		return p.handleDeleteGame(cmd)
	case CmdGetBoard:
		return p.handleGetBoard(cmd)
	case CmdGetDestinations:
		return p.handleGetDestinations(cmd)
	default:
		return p.errorResponse("unknown command", core.ErrInvalidRequest)
	}
}

func isMoveSafe(move string) bool {
	for _, r := range move {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

func (p *Processor) handleCreateGame(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.CreateGameRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	seat, err := p.svc.CreateGame(args.Opponent)
	if err != nil {
		return p.serviceError(err)
	}

	return ProcessorResponse{
		Success: true,
		Data:    p.seatResponse(seat),
	}
}

func (p *Processor) handleJoinGame(cmd Command) ProcessorResponse {
	seat, err := p.svc.JoinGame(cmd.GameID)
	if err != nil {
		return p.serviceError(err)
	}

	return ProcessorResponse{
		Success: true,
		Data:    p.seatResponse(seat),
	}
}

func (p *Processor) handleGetGame(cmd Command) ProcessorResponse {
	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.serviceError(err)
	}

	return ProcessorResponse{
		Success: true,
		Data:    buildGameResponse(g.View()),
	}
}

func (p *Processor) handleMakeMove(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.MoveRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	move := strings.TrimSpace(args.Move)
	if !isMoveSafe(move) {
		return p.errorResponse("invalid characters in move", core.ErrInvalidMove)
	}
	path, err := notation.ParseMove(move)
	if err != nil {
		return p.errorResponseWithDetails("invalid move format", core.ErrInvalidMove, err.Error())
	}

	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.serviceError(err)
	}

	out, err := p.svc.ApplyMove(cmd.GameID, cmd.Seat, path)
	if err != nil {
		if engine.KindOf(err) == engine.IllegalOwnership && g.View().Turn != cmd.Seat {
			return p.errorResponse("not your turn", core.ErrNotYourTurn)
		}
		return p.serviceError(err)
	}
	if out.ReplyErr != nil {
		log.Printf("Computer reply failed in game %s: %v", cmd.GameID, out.ReplyErr)
	}

	return ProcessorResponse{
		Success: true,
		Data:    buildGameResponse(g.View()),
	}
}

func (p *Processor) handleDeleteGame(cmd Command) ProcessorResponse {
	if err := p.svc.DeleteGame(cmd.GameID); err != nil {
		return p.serviceError(err)
	}

	return ProcessorResponse{
		Success: true,
	}
}

func (p *Processor) handleGetBoard(cmd Command) ProcessorResponse {
	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.serviceError(err)
	}

	v := g.View()
	return ProcessorResponse{
		Success: true,
		Data: core.BoardResponse{
			Turn:  v.Turn.String(),
			Board: v.Board.Render(),
		},
	}
}

func (p *Processor) handleGetDestinations(cmd Command) ProcessorResponse {
	from, _ := cmd.Args.(string)
	c, err := notation.ParseCoordinate(from)
	if err != nil {
		return p.errorResponseWithDetails("invalid square", core.ErrInvalidRequest, err.Error())
	}

	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.serviceError(err)
	}

	dests, captures, err := g.Destinations(c)
	if err != nil {
		return p.errorResponse("no piece on "+c.String(), core.ErrIllegalOwnership)
	}

	return ProcessorResponse{
		Success: true,
		Data: core.DestinationsResponse{
			From:         c.String(),
			Destinations: notation.FormatAll(dests),
			Captures:     notation.FormatAll(captures),
		},
	}
}

func (p *Processor) seatResponse(seat *service.Seat) core.SeatResponse {
	return core.SeatResponse{
		Game:  buildGameResponse(seat.Game.View()),
		Seat:  seat.Participant.Seat.String(),
		Token: seat.Token,
	}
}

// buildGameResponse constructs standard game response
func buildGameResponse(v game.View) core.GameResponse {
	resp := core.GameResponse{
		GameID: v.ID,
		Turn:   v.Turn.String(),
		State:  v.State.String(),
		Moves:  make([]string, len(v.Moves)),
		Pieces: core.PieceCount{
			X: v.Pieces[core.PlayerX],
			O: v.Pieces[core.PlayerO],
		},
		Players: core.ParticipantsResponse{
			X: v.Seats[core.PlayerX],
			O: v.Seats[core.PlayerO],
		},
	}
	if v.State.Finished() {
		resp.Winner = v.Winner.String()
	}
	for i, mv := range v.Moves {
		resp.Moves[i] = mv.String()
	}
	for _, mv := range v.LastMoves {
		resp.LastMoves = append(resp.LastMoves, core.MoveInfo{
			Move:     mv.String(),
			Player:   mv.Player.String(),
			Captured: notation.FormatAll(mv.Captured),
			Computer: mv.Computer,
		})
	}
	return resp
}

// serviceError maps service, session and rules errors to wire codes.
func (p *Processor) serviceError(err error) ProcessorResponse {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return p.errorResponse("game not found", core.ErrGameNotFound)
	case errors.Is(err, service.ErrSeatTaken):
		return p.errorResponse("seat already taken", core.ErrSeatTaken)
	case errors.Is(err, service.ErrUnknownOpponent):
		return p.errorResponse("opponent must be 1 (human) or 2 (computer)", core.ErrInvalidRequest)
	case errors.Is(err, service.ErrResourceLimit):
		return p.errorResponse("too many active games", core.ErrResourceLimit)
	case errors.Is(err, game.ErrNotStarted):
		return p.errorResponse("waiting for an opponent to join", core.ErrNotYourTurn)
	}

	switch engine.KindOf(err) {
	case engine.IllegalOwnership:
		return p.errorResponseWithDetails("no piece of yours on that square", core.ErrIllegalOwnership, err.Error())
	case engine.IllegalDestination:
		return p.errorResponseWithDetails("illegal destination", core.ErrIllegalDestination, err.Error())
	case engine.IllegalChain:
		return p.errorResponseWithDetails("illegal capture chain", core.ErrIllegalChain, err.Error())
	case engine.BrokenChainRollback:
		return p.errorResponseWithDetails("capture chain broken, board restored", core.ErrBrokenChain, err.Error())
	case engine.GameFinished:
		return p.errorResponse("game is over", core.ErrGameOver)
	}

	log.Printf("Unexpected processor error: %v", err)
	return p.errorResponse("internal error", core.ErrInternalError)
}

// errorResponse creates error response
func (p *Processor) errorResponse(message, code string) ProcessorResponse {
	return p.errorResponseWithDetails(message, code, "")
}

func (p *Processor) errorResponseWithDetails(message, code, details string) ProcessorResponse {
	return ProcessorResponse{
		Success: false,
		Error: &core.ErrorResponse{
			Error:   message,
			Code:    code,
			Details: details,
		},
	}
}
