// Package session holds the remote client's state between commands.
package session

import (
	"checkers/internal/client/api"
	"checkers/internal/client/display"
	"checkers/internal/core"
)

type Session struct {
	APIBaseURL string
	Client     *api.Client
	Out        *display.Display
	Verbose    bool

	CurrentGame   string
	Seat          string // "X" or "O"; empty when only watching
	Token         string
	LastMoveCount int
	State         *core.GameResponse
}

func New(baseURL string, out *display.Display) *Session {
	return &Session{
		APIBaseURL: baseURL,
		Client:     api.New(baseURL),
		Out:        out,
	}
}

// SetGame makes gameID current with the given seat credentials.
func (s *Session) SetGame(gameID, seat, token string) {
	s.CurrentGame = gameID
	s.Seat = seat
	s.Token = token
	s.LastMoveCount = 0
	s.State = nil
}

// ClearGame forgets the current game.
func (s *Session) ClearGame() {
	s.SetGame("", "", "")
}

// Update records the latest known game state.
func (s *Session) Update(g *core.GameResponse) {
	s.State = g
	s.LastMoveCount = len(g.Moves)
}

// MyTurn reports whether the held seat is the one to move.
func (s *Session) MyTurn() bool {
	return s.State != nil && s.Seat != "" && s.State.Turn == s.Seat && s.State.State == core.StateOngoing.String()
}
