package core

// Request types

type CreateGameRequest struct {
	Opponent PlayerType `json:"opponent" validate:"required,oneof=1 2"`
}

type MoveRequest struct {
	Move string `json:"move" validate:"required,min=5,max=8"` // "3C-4D" or "3C-5E-7C"
}

// Response types

type GameResponse struct {
	GameID    string               `json:"gameId"`
	Turn      string               `json:"turn"`  // "X" or "O"
	State     string               `json:"state"` // "waiting", "ongoing", "x_wins", "o_wins"
	Winner    string               `json:"winner,omitempty"`
	Moves     []string             `json:"moves"`
	Pieces    PieceCount           `json:"pieces"`
	Players   ParticipantsResponse `json:"players"`
	LastMoves []MoveInfo           `json:"lastMoves,omitempty"`
}

type PieceCount struct {
	X int `json:"x"`
	O int `json:"o"`
}

type MoveInfo struct {
	Move     string   `json:"move"`
	Player   string   `json:"player"` // "X" or "O"
	Captured []string `json:"captured,omitempty"`
	Computer bool     `json:"computer,omitempty"`
}

// SeatResponse is returned when a seat is claimed
type SeatResponse struct {
	Game  GameResponse `json:"game"`
	Seat  string       `json:"seat"`
	Token string       `json:"token"`
}

type BoardResponse struct {
	Turn  string `json:"turn"`
	Board string `json:"board"` // ASCII representation
}

type DestinationsResponse struct {
	From         string   `json:"from"`
	Destinations []string `json:"destinations"`
	Captures     []string `json:"captures,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
