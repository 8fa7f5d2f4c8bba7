package board

import "checkers/internal/core"

// Grid answers adjacency queries for pieces without exposing the board.
type Grid interface {
	SquareAt(c Coordinate) (*Square, bool)
}

// Piece is a checker of one color. Destinations are recomputed from the
// grid on every call; nothing is cached across board mutations.
type Piece struct {
	color  core.Color
	square *Square // last square placed on; current only while Alive
	grid   Grid
}

func NewPiece(color core.Color, grid Grid) *Piece {
	return &Piece{color: color, grid: grid}
}

func (p *Piece) Color() core.Color {
	return p.color
}

// Square returns the square the piece stands on, or nil when captured.
func (p *Piece) Square() *Square {
	if !p.Alive() {
		return nil
	}
	return p.square
}

// Alive reports whether the piece currently occupies a square.
func (p *Piece) Alive() bool {
	return p.square != nil && p.square.occupant == p
}

// Position returns the piece's coordinate while alive.
func (p *Piece) Position() (Coordinate, bool) {
	if !p.Alive() {
		return Coordinate{}, false
	}
	return p.square.coordinate, true
}

// forward is the row direction: Dark moves up the board, Light moves down.
func (p *Piece) forward() int {
	if p.color == core.ColorDark {
		return 1
	}
	return -1
}

// Destinations returns every cell the piece may reach in one action: empty
// forward diagonals and the landing cells of single jumps over an opponent.
// Forward-left comes before forward-right.
func (p *Piece) Destinations() []Coordinate {
	if !p.Alive() || p.square.color != core.ColorDark {
		return nil
	}

	origin := p.square.coordinate
	dr := p.forward()
	var out []Coordinate

	for _, dc := range [2]int{-1, 1} {
		step, ok := origin.Offset(dc, dr)
		if !ok {
			continue
		}
		target, ok := p.grid.SquareAt(step)
		if !ok {
			continue
		}

		occupant := target.Occupant()
		if occupant == nil {
			out = append(out, step)
			continue
		}
		if occupant.color == p.color {
			continue
		}

		// Opponent on the diagonal: only the cell beyond it can be a destination
		landing, ok := origin.Offset(2*dc, 2*dr)
		if !ok {
			continue
		}
		if sq, ok := p.grid.SquareAt(landing); ok && !sq.IsOccupied() {
			out = append(out, landing)
		}
	}

	return out
}

// Captures returns the jump destinations among Destinations.
func (p *Piece) Captures() []Coordinate {
	origin, ok := p.Position()
	if !ok {
		return nil
	}
	var jumps []Coordinate
	for _, c := range p.Destinations() {
		if rowDelta(origin, c) == 2 {
			jumps = append(jumps, c)
		}
	}
	return jumps
}

// HasCapture reports whether at least one destination is a jump.
func (p *Piece) HasCapture() bool {
	return len(p.Captures()) > 0
}

// IsCapture reports whether moving to c would be a jump from the current
// position.
func (p *Piece) IsCapture(c Coordinate) bool {
	origin, ok := p.Position()
	return ok && rowDelta(origin, c) == 2
}

// CanMoveTo reports whether c is a legal single-step destination.
func (p *Piece) CanMoveTo(c Coordinate) bool {
	return !p.IsCapture(c) && contains(p.Destinations(), c)
}

// CanCaptureTo reports whether c is a legal jump destination.
func (p *Piece) CanCaptureTo(c Coordinate) bool {
	return contains(p.Captures(), c)
}

// Jumped returns the square between the piece and a jump landing cell. It
// does not check legality.
func (p *Piece) Jumped(landing Coordinate) (*Square, bool) {
	origin, ok := p.Position()
	if !ok || !landing.Valid() {
		return nil, false
	}
	dr := landing.Row - origin.Row
	dc := landing.Col.Int() - origin.Col.Int()
	if (dr != 2 && dr != -2) || (dc != 2 && dc != -2) {
		return nil, false
	}
	mid, ok := origin.Offset(dc/2, dr/2)
	if !ok {
		return nil, false
	}
	return p.grid.SquareAt(mid)
}

func contains(cs []Coordinate, c Coordinate) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}
