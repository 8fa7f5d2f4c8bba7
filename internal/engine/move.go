package engine

import (
	"strings"

	"checkers/internal/board"
	"checkers/internal/core"
)

// Move is one applied action: a simple step, a single jump, or a two-hop
// chain.
type Move struct {
	Player   core.Player
	Path     []board.Coordinate
	Captured []board.Coordinate
	Computer bool
}

// String renders the move in notation form, e.g. "3C-4D".
func (m Move) String() string {
	parts := make([]string, len(m.Path))
	for i, c := range m.Path {
		parts[i] = c.String()
	}
	return strings.Join(parts, "-")
}

// Outcome lists the moves applied by one submission in order: the submitted
// move, then the computer reply when one was made.
type Outcome struct {
	Moves    []Move
	Finished bool
	Winner   core.Player

	// ReplyErr is set when the computer opponent failed to produce a legal
	// reply. The submitted move still stands.
	ReplyErr error
}
