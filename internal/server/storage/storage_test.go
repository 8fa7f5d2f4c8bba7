package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.db")
	s, err := NewStore(path, false)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.InitDB(); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func flush(t *testing.T, s *Store) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Flush(ctx); err != nil {
		t.Fatalf("Flush: %v", err)
	}
}

func TestJournalRoundTrip(t *testing.T) {
	s := newTestStore(t)
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s.RecordNewGame(GameRecord{GameID: "g1", XPlayerID: "px", OpponentType: 1, StartTimeUTC: start})
	s.RecordNewGame(GameRecord{GameID: "g2", XPlayerID: "py", OPlayerID: "computer", OpponentType: 2, StartTimeUTC: start.Add(time.Minute)})
	s.RecordSeat("g1", "po")
	s.RecordMove(MoveRecord{GameID: "g1", MoveNumber: 1, Notation: "3C-4D", Player: "X", MoveTimeUTC: start})
	s.RecordMove(MoveRecord{GameID: "g1", MoveNumber: 2, Notation: "6D-5C", Player: "O", Computer: true, MoveTimeUTC: start})
	s.RecordResult(ResultRecord{GameID: "g1", State: "x_wins", Winner: "X", MoveCount: 2, EndTimeUTC: start.Add(time.Hour)})
	flush(t, s)

	if !s.IsHealthy() {
		t.Fatal("store degraded after valid writes")
	}

	games, err := s.QueryGames("", "")
	if err != nil {
		t.Fatalf("QueryGames: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("len(games) = %d; want 2", len(games))
	}
	if games[0].GameID != "g2" {
		t.Errorf("newest game = %s; want g2", games[0].GameID)
	}
	if games[0].Result != nil {
		t.Errorf("g2 result = %+v; want none", games[0].Result)
	}

	g1 := games[1]
	if g1.OPlayerID != "po" {
		t.Errorf("g1 O player = %q; want po", g1.OPlayerID)
	}
	if g1.Result == nil || g1.Result.Winner != "X" || g1.Result.MoveCount != 2 {
		t.Errorf("g1 result = %+v", g1.Result)
	}

	byPlayer, err := s.QueryGames("*", "po")
	if err != nil {
		t.Fatalf("QueryGames by player: %v", err)
	}
	if len(byPlayer) != 1 || byPlayer[0].GameID != "g1" {
		t.Errorf("QueryGames(*, po) = %+v", byPlayer)
	}

	moves, err := s.QueryMoves("g1")
	if err != nil {
		t.Fatalf("QueryMoves: %v", err)
	}
	if len(moves) != 2 {
		t.Fatalf("len(moves) = %d; want 2", len(moves))
	}
	if moves[0].Notation != "3C-4D" || moves[1].Player != "O" || !moves[1].Computer {
		t.Errorf("moves = %+v", moves)
	}
}

func TestDegradedOnFailedWrite(t *testing.T) {
	s := newTestStore(t)

	// Foreign key violation: no such game
	s.RecordMove(MoveRecord{GameID: "missing", MoveNumber: 1, Notation: "3C-4D", Player: "X", MoveTimeUTC: time.Now()})

	deadline := time.Now().Add(5 * time.Second)
	for s.IsHealthy() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if s.IsHealthy() {
		t.Fatal("store healthy after a failed write")
	}
	if err := s.Flush(context.Background()); err != ErrDegraded {
		t.Errorf("Flush = %v; want ErrDegraded", err)
	}
}

func TestDeleteDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	s, err := NewStore(path, true)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.InitDB(); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	if err := s.DeleteDB(); err != nil {
		t.Fatalf("DeleteDB: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("database file still present: %v", err)
	}
}
