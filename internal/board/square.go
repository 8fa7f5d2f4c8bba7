package board

import "checkers/internal/core"

// registrar tracks live pieces. Board is the only implementation.
type registrar interface {
	register(p *Piece)
	unregister(p *Piece)
}

// Square is one board cell. Its coordinate and color never change; all
// occupancy changes go through Place and Clear so the piece registries stay
// consistent.
type Square struct {
	coordinate Coordinate
	color      core.Color
	occupant   *Piece
	reg        registrar
}

// Place puts p on the square and registers it. An existing occupant is
// overwritten; callers must not place onto an occupied square.
func (s *Square) Place(p *Piece) {
	if p == nil {
		s.Clear()
		return
	}
	if old := s.occupant; old != nil && old != p && old.square == s {
		s.reg.unregister(old)
	}
	s.reg.register(p)
	p.square = s
	s.occupant = p
}

// Clear removes the occupant, if any. A piece that has already been placed
// elsewhere stays registered.
func (s *Square) Clear() {
	if s.occupant == nil {
		return
	}
	if s.occupant.square == s {
		s.reg.unregister(s.occupant)
	}
	s.occupant = nil
}

func (s *Square) IsOccupied() bool {
	return s.occupant != nil
}

func (s *Square) Occupant() *Piece {
	return s.occupant
}

func (s *Square) Coordinate() Coordinate {
	return s.coordinate
}

func (s *Square) Color() core.Color {
	return s.color
}
