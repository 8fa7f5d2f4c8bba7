package processor

import (
	"checkers/internal/core"
)

// CommandType defines the type of command being executed
type CommandType int

const (
	CmdCreateGame CommandType = iota
	CmdJoinGame
	CmdGetGame
	CmdDeleteGame
	CmdMakeMove
	CmdGetBoard
	CmdGetDestinations
)

// Command is a unified structure for all processor operations
type Command struct {
	Type   CommandType
	GameID string
	Seat   core.Player // acting seat, resolved from the seat token
	Args   any
}

// ProcessorResponse wraps the response with metadata
type ProcessorResponse struct {
	Success bool                `json:"success"`
	Data    any                 `json:"data,omitempty"`
	Error   *core.ErrorResponse `json:"error,omitempty"`
}

func NewCreateGameCommand(req core.CreateGameRequest) Command {
	return Command{
		Type: CmdCreateGame,
		Args: req,
	}
}

func NewJoinGameCommand(gameID string) Command {
	return Command{
		Type:   CmdJoinGame,
		GameID: gameID,
	}
}

func NewGetGameCommand(gameID string) Command {
	return Command{
		Type:   CmdGetGame,
		GameID: gameID,
	}
}

func NewMakeMoveCommand(gameID string, seat core.Player, req core.MoveRequest) Command {
	return Command{
		Type:   CmdMakeMove,
		GameID: gameID,
		Seat:   seat,
		Args:   req,
	}
}

func NewDeleteGameCommand(gameID string) Command {
	return Command{
		Type:   CmdDeleteGame,
		GameID: gameID,
	}
}

func NewGetBoardCommand(gameID string) Command {
	return Command{
		Type:   CmdGetBoard,
		GameID: gameID,
	}
}

// NewGetDestinationsCommand asks for the legal destinations of the piece on
// from, given in notation.
func NewGetDestinationsCommand(gameID, from string) Command {
	return Command{
		Type:   CmdGetDestinations,
		GameID: gameID,
		Args:   from,
	}
}
