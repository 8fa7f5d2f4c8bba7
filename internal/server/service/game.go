package service

import (
	"fmt"
	"time"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/engine"
	"checkers/internal/notation"
	"checkers/internal/server/game"
	"checkers/internal/server/storage"

	"github.com/google/uuid"
)

// Seat is a claimed seat and the token that proves it.
type Seat struct {
	Game        *game.Game
	Participant *core.Participant
	Token       string
}

// CreateGame starts a game with the caller in the X seat. Against the
// computer the O seat is taken by a fresh opponent.
func (s *Service) CreateGame(opponent core.PlayerType) (*Seat, error) {
	if opponent != core.PlayerHuman && opponent != core.PlayerComputer {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOpponent, opponent)
	}

	s.mu.Lock()
	if len(s.games) >= MaxGames {
		s.mu.Unlock()
		return nil, ErrResourceLimit
	}
	if opponent == core.PlayerComputer && s.computerGames.Load() >= MaxComputerGames {
		s.mu.Unlock()
		return nil, ErrResourceLimit
	}

	id := s.generateGameID()
	x := core.NewParticipant(core.PlayerX, core.PlayerHuman)

	var opts []engine.Option
	if opponent == core.PlayerComputer {
		opts = append(opts, engine.WithOpponent(s.newOpponent()))
		s.computerGames.Add(1)
	}
	g := game.New(id, opponent, engine.New(opts...), x)
	s.games[id] = g
	s.mu.Unlock()

	token, err := s.tokens.issue(id, x)
	if err != nil {
		s.DeleteGame(id)
		return nil, err
	}

	if s.store != nil {
		record := storage.GameRecord{
			GameID:       id,
			XPlayerID:    x.ID,
			OpponentType: int(opponent),
			StartTimeUTC: time.Now().UTC(),
		}
		if o := g.Seat(core.PlayerO); o != nil {
			record.OPlayerID = o.ID
		}
		s.store.RecordNewGame(record)
	}

	return &Seat{Game: g, Participant: x, Token: token}, nil
}

// JoinGame claims the O seat of a human game.
func (s *Service) JoinGame(gameID string) (*Seat, error) {
	g, err := s.GetGame(gameID)
	if err != nil {
		return nil, err
	}

	o := core.NewParticipant(core.PlayerO, core.PlayerHuman)
	if err := g.Claim(core.PlayerO, o); err != nil {
		return nil, err
	}

	token, err := s.tokens.issue(gameID, o)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		s.store.RecordSeat(gameID, o.ID)
	}

	// Waiters see the state leave "waiting"
	s.waiter.NotifyGame(gameID, -1)

	return &Seat{Game: g, Participant: o, Token: token}, nil
}

// GetGame looks up a live game.
func (s *Service) GetGame(gameID string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return g, nil
}

// Authorize resolves a seat token to the seat it holds in gameID.
func (s *Service) Authorize(gameID, token string) (core.Player, error) {
	claims, err := s.tokens.parse(token)
	if err != nil {
		return core.PlayerNone, err
	}
	if claims.GameID != gameID {
		return core.PlayerNone, ErrNotYourSeat
	}
	seat, ok := core.ParsePlayer(claims.Seat)
	if !ok {
		return core.PlayerNone, ErrNotYourSeat
	}

	g, err := s.GetGame(gameID)
	if err != nil {
		return core.PlayerNone, err
	}
	if p := g.Seat(seat); p == nil || p.ID != claims.Subject {
		return core.PlayerNone, ErrNotYourSeat
	}
	return seat, nil
}

// ApplyMove plays path for seat, journals the applied moves and wakes
// waiters.
func (s *Service) ApplyMove(gameID string, seat core.Player, path []board.Coordinate) (*engine.Outcome, error) {
	g, err := s.GetGame(gameID)
	if err != nil {
		return nil, err
	}

	out, count, err := g.Play(seat, path)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		now := time.Now().UTC()
		first := count - len(out.Moves) + 1
		for i, mv := range out.Moves {
			s.store.RecordMove(storage.MoveRecord{
				GameID:      gameID,
				MoveNumber:  first + i,
				Notation:    notation.Format(mv.Path...),
				Player:      mv.Player.String(),
				Captured:    len(mv.Captured),
				Computer:    mv.Computer,
				MoveTimeUTC: now,
			})
		}
		if out.Finished {
			s.store.RecordResult(storage.ResultRecord{
				GameID:     gameID,
				State:      core.WinState(out.Winner).String(),
				Winner:     out.Winner.String(),
				MoveCount:  count,
				EndTimeUTC: now,
			})
		}
	}

	s.waiter.NotifyGame(gameID, count)
	return out, nil
}

// DeleteGame removes a game and wakes its waiters.
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	g, ok := s.games[gameID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	delete(s.games, gameID)
	s.mu.Unlock()

	if g.Opponent() == core.PlayerComputer {
		s.computerGames.Add(-1)
	}
	s.waiter.RemoveGame(gameID)
	return nil
}

// generateGameID must be called with s.mu held.
func (s *Service) generateGameID() string {
	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}
