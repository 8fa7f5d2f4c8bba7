package core

import "fmt"

// Color is the color of a square or a piece. Only Dark squares are playable.
type Color uint8

const (
	ColorNone Color = iota
	ColorDark
	ColorLight
)

func (c Color) String() string {
	switch c {
	case ColorDark:
		return "dark"
	case ColorLight:
		return "light"
	default:
		return "-"
	}
}

// Opposite returns the other piece color. ColorNone maps to itself.
func (c Color) Opposite() Color {
	switch c {
	case ColorDark:
		return ColorLight
	case ColorLight:
		return ColorDark
	default:
		return ColorNone
	}
}

// Player is one of the two seats at the board. PlayerX always owns the Dark
// pieces and moves first.
type Player uint8

const (
	PlayerNone Player = iota
	PlayerX
	PlayerO
)

func (p Player) String() string {
	switch p {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "-"
	}
}

// Color returns the piece color controlled by the player.
func (p Player) Color() Color {
	switch p {
	case PlayerX:
		return ColorDark
	case PlayerO:
		return ColorLight
	default:
		return ColorNone
	}
}

// Other returns the opposing seat.
func (p Player) Other() Player {
	switch p {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return PlayerNone
	}
}

// PlayerFor returns the seat that controls pieces of color c.
func PlayerFor(c Color) Player {
	switch c {
	case ColorDark:
		return PlayerX
	case ColorLight:
		return PlayerO
	default:
		return PlayerNone
	}
}

// MarshalText encodes the seat as "X" or "O".
func (p Player) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Player) UnmarshalText(b []byte) error {
	v, ok := ParsePlayer(string(b))
	if !ok && string(b) != "-" {
		return fmt.Errorf("invalid player %q", b)
	}
	*p = v
	return nil
}

// ParsePlayer accepts "X"/"O" in either case.
func ParsePlayer(s string) (Player, bool) {
	switch s {
	case "X", "x":
		return PlayerX, true
	case "O", "o":
		return PlayerO, true
	default:
		return PlayerNone, false
	}
}
