// Package service keeps the registry of live games, hands out seat tokens,
// relays state changes to long-polling clients and journals games to
// storage when a store is configured.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"checkers/internal/computer"
	"checkers/internal/engine"
	"checkers/internal/server/game"
	"checkers/internal/server/storage"
)

const (
	MaxGames           = 1000
	MaxComputerGames   = 100
	DefaultIdleTimeout = 30 * time.Minute
	CleanupJobInterval = 5 * time.Minute
)

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrNotYourSeat   = errors.New("token does not hold a seat in this game")
	ErrSeatTaken     = game.ErrSeatTaken
	ErrResourceLimit = errors.New("game limit reached")

	ErrUnknownOpponent = errors.New("unknown opponent type")
)

// Service coordinates games, seats, waiters and the journal.
type Service struct {
	games         map[string]*game.Game
	mu            sync.RWMutex
	store         *storage.Store
	tokens        tokenIssuer
	waiter        *WaitRegistry
	newOpponent   func() engine.Opponent
	idleTimeout   time.Duration
	computerGames atomic.Int32
}

type Option func(*Service)

// WithTokenTTL sets the lifetime of seat tokens.
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.tokens.ttl = ttl
		}
	}
}

// WithIdleTimeout sets how long an untouched game survives cleanup.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.idleTimeout = d
		}
	}
}

// WithOpponent replaces the computer opponent factory.
func WithOpponent(newOpponent func() engine.Opponent) Option {
	return func(s *Service) {
		s.newOpponent = newOpponent
	}
}

// WithWaitTimeout sets the long-poll timeout.
func WithWaitTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.waiter = NewWaitRegistry(d)
	}
}

// New creates a service. store may be nil to run without a journal.
func New(store *storage.Store, secret []byte, opts ...Option) *Service {
	s := &Service{
		games:       make(map[string]*game.Game),
		store:       store,
		tokens:      tokenIssuer{secret: secret, ttl: DefaultTokenTTL},
		waiter:      NewWaitRegistry(WaitTimeout),
		newOpponent: func() engine.Opponent { return computer.New() },
		idleTimeout: DefaultIdleTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetStorageHealth returns "ok", "degraded" or "disabled".
func (s *Service) GetStorageHealth() string {
	if s.store == nil {
		return "disabled"
	}
	if s.store.IsHealthy() {
		return "ok"
	}
	return "degraded"
}

// GameCount returns the number of live games.
func (s *Service) GameCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// ComputerGameCount returns the number of live games against the computer.
func (s *Service) ComputerGameCount() int32 {
	return s.computerGames.Load()
}

// RegisterWait returns a channel closed when the game's move count differs
// from moveCount. It is closed at once if it already differs.
func (s *Service) RegisterWait(ctx context.Context, gameID string, moveCount int) (<-chan struct{}, error) {
	g, err := s.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	ch := s.waiter.Register(ctx, gameID, moveCount)
	// A move may have landed between the client's read and the registration
	if current := g.MoveCount(); current != moveCount {
		s.waiter.NotifyGame(gameID, current)
	}
	return ch, nil
}

// Shutdown releases waiters, drops all games and closes the store.
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

// RunCleanupJob periodically drops finished and idle games until ctx is
// done.
func (s *Service) RunCleanupJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.cleanupIdle(time.Now().Add(-s.idleTimeout)); n > 0 {
				log.Printf("cleanup: removed %d idle games", n)
			}
		}
	}
}

// cleanupIdle removes every game untouched since cutoff.
func (s *Service) cleanupIdle(cutoff time.Time) int {
	s.mu.RLock()
	var stale []string
	for id, g := range s.games {
		if g.IdleSince(cutoff) {
			stale = append(stale, id)
		}
	}
	s.mu.RUnlock()

	removed := 0
	for _, id := range stale {
		if s.DeleteGame(id) == nil {
			removed++
		}
	}
	return removed
}
