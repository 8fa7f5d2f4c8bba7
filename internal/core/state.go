package core

type State int

const (
	StateWaiting State = iota // Human seat O not yet claimed
	StateOngoing
	StateXWins
	StateOWins
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateOngoing:
		return "ongoing"
	case StateXWins:
		return "x_wins"
	case StateOWins:
		return "o_wins"
	default:
		return "unknown"
	}
}

// Finished reports whether the state is terminal.
func (s State) Finished() bool {
	return s == StateXWins || s == StateOWins
}

// WinState returns the terminal state for a winning seat.
func WinState(winner Player) State {
	if winner == PlayerX {
		return StateXWins
	}
	return StateOWins
}
