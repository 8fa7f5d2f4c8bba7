package board

import (
	"fmt"
	"sort"
	"strings"

	"checkers/internal/core"
)

const (
	// StartingRows is the number of rows each side fills at the start.
	StartingRows = 3

	// PiecesPerSide is the number of pieces each color starts with.
	PiecesPerSide = 12
)

// Board owns the 8x8 grid and the registries of live pieces per color. It
// has no rule knowledge beyond what pieces ask of it.
type Board struct {
	squares [Size][Size]*Square // [row-1][column]
	dark    map[*Piece]struct{}
	light   map[*Piece]struct{}
}

// NewEmpty creates a board with no pieces.
func NewEmpty() *Board {
	b := &Board{
		dark:  make(map[*Piece]struct{}),
		light: make(map[*Piece]struct{}),
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			b.squares[r][c] = &Square{
				coordinate: Coordinate{Col: columns[c], Row: r + 1},
				color:      squareColor(r+1, c),
				reg:        b,
			}
		}
	}
	return b
}

// New creates a board in the starting position: Dark on the Dark squares of
// rows 1-3, Light on the Dark squares of rows 6-8.
func New() *Board {
	b := NewEmpty()
	for r := 1; r <= Size; r++ {
		var color core.Color
		switch {
		case r <= StartingRows:
			color = core.ColorDark
		case r > Size-StartingRows:
			color = core.ColorLight
		default:
			continue
		}
		for c := 0; c < Size; c++ {
			sq := b.squares[r-1][c]
			if sq.color == core.ColorDark {
				sq.Place(NewPiece(color, b))
			}
		}
	}
	return b
}

// squareColor makes 1A dark and 8A light.
func squareColor(row, col int) core.Color {
	if (row+col)%2 == 1 {
		return core.ColorDark
	}
	return core.ColorLight
}

// Add places a new piece of the given color, for setting up positions.
func (b *Board) Add(color core.Color, at Coordinate) (*Piece, error) {
	if color != core.ColorDark && color != core.ColorLight {
		return nil, fmt.Errorf("invalid piece color %v", color)
	}
	sq, ok := b.SquareAt(at)
	if !ok {
		return nil, fmt.Errorf("coordinate %v is off the board", at)
	}
	if sq.color != core.ColorDark {
		return nil, fmt.Errorf("square %v is not playable", at)
	}
	if sq.IsOccupied() {
		return nil, fmt.Errorf("square %v is occupied", at)
	}
	p := NewPiece(color, b)
	sq.Place(p)
	return p, nil
}

// SquareAt returns the square at c, or false when c is off the board.
func (b *Board) SquareAt(c Coordinate) (*Square, bool) {
	if !c.Valid() {
		return nil, false
	}
	return b.squares[c.Row-1][c.Col.Int()], true
}

// PieceAt returns the piece at c, if any.
func (b *Board) PieceAt(c Coordinate) (*Piece, bool) {
	sq, ok := b.SquareAt(c)
	if !ok || sq.occupant == nil {
		return nil, false
	}
	return sq.occupant, true
}

func (b *Board) registry(color core.Color) map[*Piece]struct{} {
	switch color {
	case core.ColorDark:
		return b.dark
	case core.ColorLight:
		return b.light
	default:
		return nil
	}
}

func (b *Board) register(p *Piece) {
	if reg := b.registry(p.color); reg != nil {
		reg[p] = struct{}{}
	}
}

func (b *Board) unregister(p *Piece) {
	if reg := b.registry(p.color); reg != nil {
		delete(reg, p)
	}
}

// Count returns the number of live pieces of a color.
func (b *Board) Count(color core.Color) int {
	return len(b.registry(color))
}

// Pieces returns the live pieces of a color ordered by row, then column.
func (b *Board) Pieces(color core.Color) []*Piece {
	reg := b.registry(color)
	pieces := make([]*Piece, 0, len(reg))
	for p := range reg {
		pieces = append(pieces, p)
	}
	sort.Slice(pieces, func(i, j int) bool {
		return less(pieces[i].square.coordinate, pieces[j].square.coordinate)
	})
	return pieces
}

// LegalDestinationsFor returns the de-duplicated union of every live piece's
// destinations for a color, ordered by row, then column.
func (b *Board) LegalDestinationsFor(color core.Color) []Coordinate {
	seen := make(map[Coordinate]struct{})
	var out []Coordinate
	for p := range b.registry(color) {
		for _, c := range p.Destinations() {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Snapshot is the occupant color of every square, indexed [row-1][column].
type Snapshot [Size][Size]core.Color

// Snapshot captures the current occupancy.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if p := b.squares[r][c].occupant; p != nil {
				s[r][c] = p.color
			}
		}
	}
	return s
}

// At returns the occupant color recorded for c.
func (s Snapshot) At(c Coordinate) core.Color {
	if !c.Valid() {
		return core.ColorNone
	}
	return s[c.Row-1][c.Col.Int()]
}

// Tokens used by Render
const (
	TokenDark  = 'X'
	TokenLight = 'O'
	TokenEmpty = '_'
)

// Render draws the board from row 8 down to row 1 with column letters
// underneath, e.g. "8 | _ | O | _ | O | _ | O | _ | O |".
func (b *Board) Render() string {
	return b.Snapshot().Render()
}

func (s Snapshot) Render() string {
	var sb strings.Builder
	for r := Size; r >= 1; r-- {
		sb.WriteString(fmt.Sprintf("%d |", r))
		for c := 0; c < Size; c++ {
			token := TokenEmpty
			switch s[r-1][c] {
			case core.ColorDark:
				token = TokenDark
			case core.ColorLight:
				token = TokenLight
			}
			sb.WriteString(fmt.Sprintf(" %c |", token))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for _, col := range columns {
		sb.WriteString(fmt.Sprintf(" %s  ", col))
	}
	return strings.TrimRight(sb.String(), " ")
}
