package core

import (
	"github.com/google/uuid"
)

type PlayerType int

const (
	PlayerHuman PlayerType = iota + 1
	PlayerComputer
)

func (t PlayerType) String() string {
	switch t {
	case PlayerHuman:
		return "human"
	case PlayerComputer:
		return "computer"
	default:
		return "unknown"
	}
}

// Participant is the occupant of a seat in a session
type Participant struct {
	ID   string     `json:"id"`
	Seat Player     `json:"seat"`
	Type PlayerType `json:"type"`
}

// NewParticipant creates a participant with a fresh ID
func NewParticipant(seat Player, typ PlayerType) *Participant {
	return &Participant{
		ID:   uuid.New().String(),
		Seat: seat,
		Type: typ,
	}
}

// ParticipantsResponse for API responses
type ParticipantsResponse struct {
	X *Participant `json:"x"`
	O *Participant `json:"o,omitempty"`
}
