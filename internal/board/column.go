package board

// Column labels the eight board columns. The integer value is used for
// adjacency arithmetic.
type Column uint8

const (
	A Column = iota
	B
	C
	D
	E
	F
	G
	H
)

// Size is the number of rows and columns on the board.
const Size = 8

var columns = [Size]Column{A, B, C, D, E, F, G, H}

// ColumnFromInt converts 0..7 to a column. Any other value is absent.
func ColumnFromInt(i int) (Column, bool) {
	if i < 0 || i >= Size {
		return 0, false
	}
	return columns[i], true
}

// ColumnFromLetter converts 'A'..'H' (either case) to a column.
func ColumnFromLetter(r rune) (Column, bool) {
	switch {
	case r >= 'A' && r <= 'H':
		return ColumnFromInt(int(r - 'A'))
	case r >= 'a' && r <= 'h':
		return ColumnFromInt(int(r - 'a'))
	default:
		return 0, false
	}
}

func (c Column) Int() int {
	return int(c)
}

func (c Column) Valid() bool {
	return c < Size
}

func (c Column) String() string {
	if !c.Valid() {
		return "?"
	}
	return string(rune('A' + c))
}
