// Package game holds one checkers session: the engine, who sits in each
// seat, and the move history. All methods are safe for concurrent use;
// moves are applied one at a time in arrival order.
package game

import (
	"errors"
	"sync"
	"time"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/engine"
)

var (
	ErrSeatTaken  = errors.New("seat already taken")
	ErrNotStarted = errors.New("waiting for an opponent")
	ErrNoSuchSeat = errors.New("no such seat")
)

// View is a consistent copy of a session taken under its lock.
type View struct {
	ID        string
	State     core.State
	Turn      core.Player
	Winner    core.Player
	Moves     []engine.Move
	LastMoves []engine.Move
	Pieces    map[core.Player]int
	Seats     map[core.Player]*core.Participant
	Board     board.Snapshot
	UpdatedAt time.Time
}

type Game struct {
	mu        sync.Mutex
	id        string
	opponent  core.PlayerType
	engine    *engine.Engine
	seats     map[core.Player]*core.Participant
	history   []engine.Move
	lastMoves []engine.Move
	createdAt time.Time
	updatedAt time.Time
}

// New creates a session with x in the X seat. In a computer game the O seat
// is filled immediately and eng must carry the opponent.
func New(id string, opponent core.PlayerType, eng *engine.Engine, x *core.Participant) *Game {
	now := time.Now().UTC()
	g := &Game{
		id:        id,
		opponent:  opponent,
		engine:    eng,
		seats:     map[core.Player]*core.Participant{core.PlayerX: x},
		createdAt: now,
		updatedAt: now,
	}
	if opponent == core.PlayerComputer {
		g.seats[core.PlayerO] = core.NewParticipant(core.PlayerO, core.PlayerComputer)
	}
	return g
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Opponent() core.PlayerType {
	return g.opponent
}

// Claim seats p in seat. Each seat can be claimed once.
func (g *Game) Claim(seat core.Player, p *core.Participant) error {
	if seat != core.PlayerX && seat != core.PlayerO {
		return ErrNoSuchSeat
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.seats[seat] != nil {
		return ErrSeatTaken
	}
	g.seats[seat] = p
	g.updatedAt = time.Now().UTC()
	return nil
}

// Seat returns the participant in seat, or nil.
func (g *Game) Seat(seat core.Player) *core.Participant {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seats[seat]
}

// Play submits a move for actor. The outcome lists the accepted move and
// any computer reply; count is the move count once they are applied.
func (g *Game) Play(actor core.Player, path []board.Coordinate) (out *engine.Outcome, count int, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.seats[core.PlayerO] == nil {
		return nil, len(g.history), ErrNotStarted
	}

	out, err = g.engine.Submit(actor, path)
	if err != nil {
		return nil, len(g.history), err
	}

	g.history = append(g.history, out.Moves...)
	g.lastMoves = out.Moves
	g.updatedAt = time.Now().UTC()
	return out, len(g.history), nil
}

// Destinations lists the legal destinations of the piece at from.
func (g *Game) Destinations(from board.Coordinate) (dests, captures []board.Coordinate, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.engine.Board().PieceAt(from)
	if !ok {
		return nil, nil, engine.ErrIllegalOwnership
	}
	return p.Destinations(), p.Captures(), nil
}

// MoveCount is the number of moves applied so far, computer replies
// included.
func (g *Game) MoveCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.history)
}

// Finished reports whether the game has a winner.
func (g *Game) Finished() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.engine.Finished()
}

// IdleSince reports whether the session has not changed since t.
func (g *Game) IdleSince(t time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.updatedAt.Before(t)
}

func (g *Game) state() core.State {
	if w, ok := g.engine.Winner(); ok {
		return core.WinState(w)
	}
	if g.seats[core.PlayerO] == nil {
		return core.StateWaiting
	}
	return core.StateOngoing
}

// View copies the session state.
func (g *Game) View() View {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := g.engine.Board()
	v := View{
		ID:        g.id,
		State:     g.state(),
		Turn:      g.engine.Turn(),
		Moves:     append([]engine.Move(nil), g.history...),
		LastMoves: append([]engine.Move(nil), g.lastMoves...),
		Pieces: map[core.Player]int{
			core.PlayerX: b.Count(core.ColorDark),
			core.PlayerO: b.Count(core.ColorLight),
		},
		Seats:     make(map[core.Player]*core.Participant, len(g.seats)),
		Board:     b.Snapshot(),
		UpdatedAt: g.updatedAt,
	}
	if w, ok := g.engine.Winner(); ok {
		v.Winner = w
	}
	for seat, p := range g.seats {
		cp := *p
		v.Seats[seat] = &cp
	}
	return v
}
