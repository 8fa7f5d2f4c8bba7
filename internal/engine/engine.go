// Package engine implements the checkers turn and rules state machine. It is
// sequential and holds no lock: callers serving several connections must
// serialize access to one Engine.
package engine

import (
	"checkers/internal/board"
	"checkers/internal/core"
)

// Opponent picks a single-hop move for a computer-controlled color. It is
// constructed outside the engine and injected at game setup.
type Opponent interface {
	PickMove(color core.Color, b *board.Board) (from, to board.Coordinate, ok bool)
}

// ComputerSeat is the seat an injected Opponent plays.
const ComputerSeat = core.PlayerO

type Engine struct {
	board    *board.Board
	turn     core.Player
	active   bool
	winner   core.Player
	opponent Opponent
}

type Option func(*Engine)

// WithBoard starts the game from an existing position.
func WithBoard(b *board.Board) Option {
	return func(e *Engine) {
		e.board = b
	}
}

// WithTurn sets the seat to move first. PlayerX is the default.
func WithTurn(p core.Player) Option {
	return func(e *Engine) {
		if p == core.PlayerX || p == core.PlayerO {
			e.turn = p
		}
	}
}

// WithOpponent makes ComputerSeat computer-controlled. After every accepted
// human move the engine applies the opponent's reply before returning.
func WithOpponent(o Opponent) Option {
	return func(e *Engine) {
		e.opponent = o
	}
}

// New creates a game in progress with PlayerX to move.
func New(opts ...Option) *Engine {
	e := &Engine{
		turn:   core.PlayerX,
		active: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.board == nil {
		e.board = board.New()
	}
	return e
}

func (e *Engine) Board() *board.Board {
	return e.board
}

func (e *Engine) Turn() core.Player {
	return e.turn
}

// TurnColor is the piece color of the seat to move.
func (e *Engine) TurnColor() core.Color {
	return e.turn.Color()
}

// HasComputer reports whether ComputerSeat is played by an injected Opponent.
func (e *Engine) HasComputer() bool {
	return e.opponent != nil
}

// Finished reports whether a winner has been declared. It does not
// re-evaluate the position; see IsActive.
func (e *Engine) Finished() bool {
	return !e.active
}

// Winner returns the winning seat once the game is finished.
func (e *Engine) Winner() (core.Player, bool) {
	if e.active {
		return core.PlayerNone, false
	}
	return e.winner, true
}

// IsActive re-evaluates termination for color. If that color has no pieces
// or no legal destinations, the game finishes and the other color's seat
// wins. The first declared winner is kept.
func (e *Engine) IsActive(color core.Color) bool {
	if !e.active {
		return false
	}
	if e.board.Count(color) == 0 || len(e.board.LegalDestinationsFor(color)) == 0 {
		e.active = false
		e.winner = core.PlayerFor(color.Opposite())
	}
	return e.active
}

// HasWinner evaluates termination for the seat to move.
func (e *Engine) HasWinner() bool {
	return !e.IsActive(e.TurnColor())
}

// Destinations lists the legal destinations of the piece at from, whoever's
// turn it is.
func (e *Engine) Destinations(from board.Coordinate) ([]board.Coordinate, error) {
	p, ok := e.board.PieceAt(from)
	if !ok {
		return nil, reject(IllegalOwnership, from)
	}
	return p.Destinations(), nil
}

// Submit applies a move given as a path: two coordinates for a simple move or
// single jump, three for a capture chain.
func (e *Engine) Submit(actor core.Player, path []board.Coordinate) (*Outcome, error) {
	switch len(path) {
	case 2:
		return e.SubmitSimpleMove(actor, path[0], path[1])
	case 3:
		return e.SubmitCaptureChain(actor, path[0], path[1], path[2])
	default:
		return nil, reject(IllegalDestination, path...)
	}
}

// SubmitSimpleMove moves the piece at from to to. A row distance above one is
// treated as a jump and removes the intervening opponent piece.
func (e *Engine) SubmitSimpleMove(actor core.Player, from, to board.Coordinate) (*Outcome, error) {
	piece, err := e.authorize(actor, from, to)
	if err != nil {
		return nil, err
	}

	mv, err := e.apply(piece, from, to)
	if err != nil {
		return nil, err
	}
	mv.Player = actor

	return e.complete(mv), nil
}

// SubmitCaptureChain performs two consecutive jumps as one turn. If the second
// jump is not available once the first has been made, every change is undone
// and BrokenChainRollback is returned.
func (e *Engine) SubmitCaptureChain(actor core.Player, from, middle, last board.Coordinate) (*Outcome, error) {
	piece, err := e.authorize(actor, from, middle, last)
	if err != nil {
		return nil, err
	}

	if rowDistance(from, middle) <= 1 || rowDistance(middle, last) <= 1 || !piece.CanCaptureTo(middle) {
		return nil, reject(IllegalChain, from, middle, last)
	}

	fromSq, _ := e.board.SquareAt(from)
	midSq, _ := e.board.SquareAt(middle)
	firstSq, _ := piece.Jumped(middle)
	firstCaptured := firstSq.Occupant()

	midSq.Place(piece)
	fromSq.Clear()
	firstSq.Clear()

	if !piece.CanCaptureTo(last) {
		fromSq.Place(piece)
		midSq.Clear()
		firstSq.Place(firstCaptured)
		return nil, reject(BrokenChainRollback, from, middle, last)
	}

	lastSq, _ := e.board.SquareAt(last)
	secondSq, _ := piece.Jumped(last)

	lastSq.Place(piece)
	midSq.Clear()
	secondSq.Clear()

	return e.complete(Move{
		Player:   actor,
		Path:     []board.Coordinate{from, middle, last},
		Captured: []board.Coordinate{firstSq.Coordinate(), secondSq.Coordinate()},
	}), nil
}

// authorize checks that the game is running, that actor is the seat to move,
// and that the origin holds one of actor's pieces.
func (e *Engine) authorize(actor core.Player, path ...board.Coordinate) (*board.Piece, error) {
	if !e.active {
		return nil, reject(GameFinished, path...)
	}
	if actor != e.turn || (e.opponent != nil && actor == ComputerSeat) {
		return nil, reject(IllegalOwnership, path...)
	}
	return e.owned(path...)
}

func (e *Engine) owned(path ...board.Coordinate) (*board.Piece, error) {
	piece, ok := e.board.PieceAt(path[0])
	if !ok || piece.Color() != e.TurnColor() {
		return nil, reject(IllegalOwnership, path...)
	}
	return piece, nil
}

// apply performs a single step or a single jump without touching the turn.
func (e *Engine) apply(piece *board.Piece, from, to board.Coordinate) (Move, error) {
	mv := Move{Path: []board.Coordinate{from, to}}
	fromSq, _ := e.board.SquareAt(from)

	if rowDistance(from, to) > 1 {
		if !piece.CanCaptureTo(to) {
			return Move{}, reject(IllegalDestination, from, to)
		}
		jumped, _ := piece.Jumped(to)
		toSq, _ := e.board.SquareAt(to)

		toSq.Place(piece)
		fromSq.Clear()
		jumped.Clear()

		mv.Captured = []board.Coordinate{jumped.Coordinate()}
		return mv, nil
	}

	if !piece.CanMoveTo(to) {
		return Move{}, reject(IllegalDestination, from, to)
	}
	toSq, _ := e.board.SquareAt(to)
	toSq.Place(piece)
	fromSq.Clear()

	return mv, nil
}

// complete flips the turn after an accepted move, evaluates termination, and
// lets the computer reply when it is its turn.
func (e *Engine) complete(mv Move) *Outcome {
	out := &Outcome{Moves: []Move{mv}}
	e.flip()

	if e.opponent != nil && e.turn == ComputerSeat && e.IsActive(e.TurnColor()) {
		if reply, err := e.computerMove(); err != nil {
			out.ReplyErr = err
		} else {
			out.Moves = append(out.Moves, reply)
		}
	}

	e.IsActive(e.TurnColor())
	out.Finished = !e.active
	out.Winner = e.winner
	return out
}

// computerMove asks the opponent for one move and applies it.
func (e *Engine) computerMove() (Move, error) {
	from, to, ok := e.opponent.PickMove(e.TurnColor(), e.board)
	if !ok {
		return Move{}, reject(IllegalOwnership)
	}
	piece, err := e.owned(from, to)
	if err != nil {
		return Move{}, err
	}
	mv, err := e.apply(piece, from, to)
	if err != nil {
		return Move{}, err
	}
	mv.Player = e.turn
	mv.Computer = true
	e.flip()
	return mv, nil
}

func (e *Engine) flip() {
	e.turn = e.turn.Other()
}

func rowDistance(a, b board.Coordinate) int {
	d := a.Row - b.Row
	if d < 0 {
		return -d
	}
	return d
}
