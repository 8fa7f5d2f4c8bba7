package engine

import (
	"errors"
	"fmt"
	"strings"

	"checkers/internal/board"
)

// Kind classifies a rejected move.
type Kind int

const (
	// IllegalOwnership: the origin holds no piece of the color to move.
	IllegalOwnership Kind = iota + 1
	// IllegalDestination: the destination is not in the piece's current
	// legal-destination set.
	IllegalDestination
	// IllegalChain: a two-hop request where a hop is not a jump or the first
	// hop is not a capture for the piece.
	IllegalChain
	// BrokenChainRollback: the first hop was legal but the second was not;
	// the board was restored.
	BrokenChainRollback
	// GameFinished: the game already has a winner.
	GameFinished
)

// Sentinel errors, one per kind. MoveError unwraps to these.
var (
	ErrIllegalOwnership    = errors.New("illegal ownership")
	ErrIllegalDestination  = errors.New("illegal destination")
	ErrIllegalChain        = errors.New("illegal capture chain")
	ErrBrokenChainRollback = errors.New("capture chain broken, rolled back")
	ErrGameFinished        = errors.New("game finished")
)

func (k Kind) sentinel() error {
	switch k {
	case IllegalOwnership:
		return ErrIllegalOwnership
	case IllegalDestination:
		return ErrIllegalDestination
	case IllegalChain:
		return ErrIllegalChain
	case BrokenChainRollback:
		return ErrBrokenChainRollback
	case GameFinished:
		return ErrGameFinished
	default:
		return nil
	}
}

func (k Kind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return "unknown"
}

// MoveError reports a rejected move. The board and turn are unchanged
// whenever a MoveError is returned.
type MoveError struct {
	Kind Kind
	Path []board.Coordinate
}

func (e *MoveError) Error() string {
	if len(e.Path) == 0 {
		return e.Kind.String()
	}
	parts := make([]string, len(e.Path))
	for i, c := range e.Path {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, strings.Join(parts, "-"))
}

func (e *MoveError) Unwrap() error {
	return e.Kind.sentinel()
}

func reject(kind Kind, path ...board.Coordinate) *MoveError {
	return &MoveError{Kind: kind, Path: path}
}

// KindOf extracts the rejection kind from err, or 0 when err is not a
// MoveError.
func KindOf(err error) Kind {
	var me *MoveError
	if errors.As(err, &me) {
		return me.Kind
	}
	return 0
}
