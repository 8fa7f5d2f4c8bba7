package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkers/internal/core"
)

func TestMakeMoveSendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/games/g1/moves" || r.Method != http.MethodPost {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		var req core.MoveRequest
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(core.GameResponse{GameID: "g1", Moves: []string{req.Move}})
	}))
	defer srv.Close()

	c := New(srv.URL + "/")
	g, err := c.MakeMove("g1", "tok", "3C-4D")
	if err != nil {
		t.Fatalf("MakeMove: %v", err)
	}
	if len(g.Moves) != 1 || g.Moves[0] != "3C-4D" {
		t.Errorf("Moves = %v", g.Moves)
	}
}

func TestErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(core.ErrorResponse{Error: "not your turn", Code: core.ErrNotYourTurn})
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetGame("g1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v; want *APIError", err)
	}
	if apiErr.Status != http.StatusConflict || apiErr.Code != core.ErrNotYourTurn {
		t.Errorf("apiErr = %+v", apiErr)
	}
	if apiErr.Error() != "not your turn (NOT_YOUR_TURN)" {
		t.Errorf("Error() = %q", apiErr.Error())
	}
}

func TestWaitGameQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("wait") != "true" || q.Get("moveCount") != "4" {
			t.Errorf("query = %v", q)
		}
		json.NewEncoder(w).Encode(core.GameResponse{GameID: "g1"})
	}))
	defer srv.Close()

	if _, err := New(srv.URL).WaitGame("g1", 4); err != nil {
		t.Fatalf("WaitGame: %v", err)
	}
}
