package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"checkers/internal/board"
	"checkers/internal/computer"
	"checkers/internal/core"
	"checkers/internal/engine"
	"checkers/internal/server/storage"
)

var testSecret = []byte("test-secret-minimum-32-characters-long")

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	opts = append([]Option{
		WithOpponent(func() engine.Opponent { return computer.NewRandom(11) }),
		WithWaitTimeout(2 * time.Second),
	}, opts...)
	s := New(nil, testSecret, opts...)
	t.Cleanup(func() { s.Shutdown(time.Second) })
	return s
}

func move(from, to board.Coordinate) []board.Coordinate {
	return []board.Coordinate{from, to}
}

func TestCreateAndJoin(t *testing.T) {
	s := newTestService(t)

	x, err := s.CreateGame(core.PlayerHuman)
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if x.Participant.Seat != core.PlayerX || x.Token == "" {
		t.Fatalf("creator seat = %+v", x)
	}
	gameID := x.Game.ID()

	o, err := s.JoinGame(gameID)
	if err != nil {
		t.Fatalf("JoinGame: %v", err)
	}
	if o.Participant.Seat != core.PlayerO {
		t.Errorf("joined seat = %v; want O", o.Participant.Seat)
	}
	if _, err := s.JoinGame(gameID); !errors.Is(err, ErrSeatTaken) {
		t.Errorf("second JoinGame err = %v; want ErrSeatTaken", err)
	}
	if _, err := s.JoinGame("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("JoinGame unknown err = %v; want ErrGameNotFound", err)
	}

	if seat, err := s.Authorize(gameID, x.Token); err != nil || seat != core.PlayerX {
		t.Errorf("Authorize(x) = %v, %v", seat, err)
	}
	if seat, err := s.Authorize(gameID, o.Token); err != nil || seat != core.PlayerO {
		t.Errorf("Authorize(o) = %v, %v", seat, err)
	}
}

func TestAuthorizeRejects(t *testing.T) {
	s := newTestService(t)
	a, _ := s.CreateGame(core.PlayerHuman)
	b, _ := s.CreateGame(core.PlayerHuman)

	if _, err := s.Authorize(a.Game.ID(), b.Token); !errors.Is(err, ErrNotYourSeat) {
		t.Errorf("token from another game err = %v; want ErrNotYourSeat", err)
	}
	if _, err := s.Authorize(a.Game.ID(), "garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token err = %v; want ErrInvalidToken", err)
	}

	other := New(nil, []byte("another-secret-minimum-32-characters"))
	forged, _ := other.tokens.issue(a.Game.ID(), a.Participant)
	if _, err := s.Authorize(a.Game.ID(), forged); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("foreign signature err = %v; want ErrInvalidToken", err)
	}

	expired := New(nil, testSecret, WithTokenTTL(time.Nanosecond))
	stale, _ := expired.tokens.issue(a.Game.ID(), a.Participant)
	time.Sleep(10 * time.Millisecond)
	if _, err := s.Authorize(a.Game.ID(), stale); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token err = %v; want ErrInvalidToken", err)
	}
}

func TestApplyMove(t *testing.T) {
	s := newTestService(t)
	x, _ := s.CreateGame(core.PlayerHuman)
	id := x.Game.ID()

	if _, err := s.ApplyMove(id, core.PlayerX, move(board.At(3, board.C), board.At(4, board.D))); err == nil {
		t.Fatal("move accepted before O joined")
	}
	s.JoinGame(id)

	out, err := s.ApplyMove(id, core.PlayerX, move(board.At(3, board.C), board.At(4, board.D)))
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if len(out.Moves) != 1 {
		t.Errorf("len(Moves) = %d; want 1", len(out.Moves))
	}

	_, err = s.ApplyMove(id, core.PlayerX, move(board.At(3, board.E), board.At(4, board.F)))
	if !errors.Is(err, engine.ErrIllegalOwnership) {
		t.Errorf("out of turn err = %v; want ErrIllegalOwnership", err)
	}
}

func TestComputerGame(t *testing.T) {
	s := newTestService(t)
	x, err := s.CreateGame(core.PlayerComputer)
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if s.ComputerGameCount() != 1 {
		t.Errorf("ComputerGameCount = %d; want 1", s.ComputerGameCount())
	}
	if _, err := s.JoinGame(x.Game.ID()); !errors.Is(err, ErrSeatTaken) {
		t.Errorf("JoinGame on computer game err = %v; want ErrSeatTaken", err)
	}

	out, err := s.ApplyMove(x.Game.ID(), core.PlayerX, move(board.At(3, board.C), board.At(4, board.D)))
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if len(out.Moves) != 2 || !out.Moves[1].Computer {
		t.Errorf("Moves = %+v; want human move and computer reply", out.Moves)
	}

	if err := s.DeleteGame(x.Game.ID()); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}
	if s.ComputerGameCount() != 0 {
		t.Errorf("ComputerGameCount = %d after delete; want 0", s.ComputerGameCount())
	}
}

func TestRegisterWait(t *testing.T) {
	s := newTestService(t)
	x, _ := s.CreateGame(core.PlayerHuman)
	id := x.Game.ID()
	s.JoinGame(id)

	ch, err := s.RegisterWait(context.Background(), id, 0)
	if err != nil {
		t.Fatalf("RegisterWait: %v", err)
	}
	select {
	case <-ch:
		t.Fatal("waiter released before any move")
	case <-time.After(50 * time.Millisecond):
	}

	if _, err := s.ApplyMove(id, core.PlayerX, move(board.At(3, board.C), board.At(4, board.D))); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("waiter not released by a move")
	}

	// Stale move count returns immediately
	ch, _ = s.RegisterWait(context.Background(), id, 0)
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("stale waiter not released")
	}

	if _, err := s.RegisterWait(context.Background(), "nope", 0); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("RegisterWait unknown err = %v", err)
	}
}

func TestDeleteReleasesWaiters(t *testing.T) {
	s := newTestService(t)
	x, _ := s.CreateGame(core.PlayerHuman)
	ch, _ := s.RegisterWait(context.Background(), x.Game.ID(), 0)

	if err := s.DeleteGame(x.Game.ID()); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("waiter not released by delete")
	}
	if err := s.DeleteGame(x.Game.ID()); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("second DeleteGame err = %v", err)
	}
}

func TestCleanupIdle(t *testing.T) {
	s := newTestService(t)
	s.CreateGame(core.PlayerHuman)
	s.CreateGame(core.PlayerHuman)

	if n := s.cleanupIdle(time.Now().Add(-time.Hour)); n != 0 {
		t.Errorf("removed %d fresh games", n)
	}
	if n := s.cleanupIdle(time.Now().Add(time.Second)); n != 2 {
		t.Errorf("removed %d; want 2", n)
	}
	if s.GameCount() != 0 {
		t.Errorf("GameCount = %d; want 0", s.GameCount())
	}
}

func TestJournal(t *testing.T) {
	store, err := storage.NewStore(filepath.Join(t.TempDir(), "journal.db"), false)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := store.InitDB(); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	s := New(store, testSecret, WithOpponent(func() engine.Opponent { return computer.NewRandom(5) }))
	t.Cleanup(func() { s.Shutdown(time.Second) })

	if s.GetStorageHealth() != "ok" {
		t.Fatalf("GetStorageHealth = %q", s.GetStorageHealth())
	}

	x, _ := s.CreateGame(core.PlayerComputer)
	if _, err := s.ApplyMove(x.Game.ID(), core.PlayerX, move(board.At(3, board.C), board.At(4, board.D))); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Flush(ctx); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	games, err := store.QueryGames(x.Game.ID(), "")
	if err != nil || len(games) != 1 {
		t.Fatalf("QueryGames = %v, %v", games, err)
	}
	if games[0].XPlayerID != x.Participant.ID || games[0].OPlayerID == "" {
		t.Errorf("game record = %+v", games[0])
	}

	moves, err := store.QueryMoves(x.Game.ID())
	if err != nil {
		t.Fatalf("QueryMoves: %v", err)
	}
	if len(moves) != 2 || moves[0].Notation != "3C-4D" || moves[1].MoveNumber != 2 || !moves[1].Computer {
		t.Errorf("moves = %+v", moves)
	}
}

func TestStorageDisabled(t *testing.T) {
	s := newTestService(t)
	if s.GetStorageHealth() != "disabled" {
		t.Errorf("GetStorageHealth = %q; want disabled", s.GetStorageHealth())
	}
}
