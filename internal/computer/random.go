// Package computer provides the computer opponent: a strategy that picks any
// legal single-hop move uniformly at random.
package computer

import (
	"math/rand/v2"
	"sync"
	"time"

	"checkers/internal/board"
	"checkers/internal/core"
)

// Random picks a random piece among those that can move, then a random
// destination of that piece. It never builds capture chains.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Random seeded from the clock.
func New() *Random {
	return NewRandom(uint64(time.Now().UnixNano()))
}

// NewRandom returns a Random with a fixed seed, for reproducible games.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// PickMove implements engine.Opponent.
func (r *Random) PickMove(color core.Color, b *board.Board) (from, to board.Coordinate, ok bool) {
	var movable []*board.Piece
	for _, p := range b.Pieces(color) {
		if len(p.Destinations()) > 0 {
			movable = append(movable, p)
		}
	}
	if len(movable) == 0 {
		return board.Coordinate{}, board.Coordinate{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	piece := movable[r.rng.IntN(len(movable))]
	dests := piece.Destinations()
	from, _ = piece.Position()
	return from, dests[r.rng.IntN(len(dests))], true
}
