package board

import "fmt"

// Coordinate identifies a cell by column and row (1..8).
type Coordinate struct {
	Col Column
	Row int
}

// At builds a coordinate from a row and column, mirroring the "3C" notation.
func At(row int, col Column) Coordinate {
	return Coordinate{Col: col, Row: row}
}

// Valid reports whether the coordinate lies on the board.
func (c Coordinate) Valid() bool {
	return c.Col.Valid() && c.Row >= 1 && c.Row <= Size
}

// Offset returns the coordinate dc columns and dr rows away, or false when
// that cell is off the board.
func (c Coordinate) Offset(dc, dr int) (Coordinate, bool) {
	if !c.Col.Valid() {
		return Coordinate{}, false
	}
	col, ok := ColumnFromInt(c.Col.Int() + dc)
	if !ok {
		return Coordinate{}, false
	}
	next := Coordinate{Col: col, Row: c.Row + dr}
	if !next.Valid() {
		return Coordinate{}, false
	}
	return next, true
}

// String renders the notation token, e.g. "3C".
func (c Coordinate) String() string {
	return fmt.Sprintf("%d%s", c.Row, c.Col)
}

func rowDelta(from, to Coordinate) int {
	d := to.Row - from.Row
	if d < 0 {
		return -d
	}
	return d
}

// less orders coordinates by row, then column.
func less(a, b Coordinate) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
