package board

import (
	"strings"
	"testing"

	"checkers/internal/core"

	"github.com/google/go-cmp/cmp"
)

func TestColumnFromInt(t *testing.T) {
	for i := 0; i < Size; i++ {
		col, ok := ColumnFromInt(i)
		if !ok {
			t.Fatalf("ColumnFromInt(%d) absent; want column", i)
		}
		if col.Int() != i {
			t.Errorf("ColumnFromInt(%d).Int() = %d", i, col.Int())
		}
	}

	for _, i := range []int{-1, 8, 100} {
		if _, ok := ColumnFromInt(i); ok {
			t.Errorf("ColumnFromInt(%d) present; want absent", i)
		}
	}

	if got := Column(9).String(); got != "?" {
		t.Errorf("Column(9).String() = %q; want \"?\"", got)
	}
}

func TestColumnFromLetter(t *testing.T) {
	tests := []struct {
		in   rune
		want Column
		ok   bool
	}{
		{'A', A, true},
		{'h', H, true},
		{'d', D, true},
		{'I', 0, false},
		{'3', 0, false},
	}
	for _, tt := range tests {
		got, ok := ColumnFromLetter(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ColumnFromLetter(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCoordinateOffset(t *testing.T) {
	tests := []struct {
		name   string
		from   Coordinate
		dc, dr int
		want   Coordinate
		ok     bool
	}{
		{"up right", At(3, C), 1, 1, At(4, D), true},
		{"down left", At(6, D), -1, -1, At(5, C), true},
		{"off left edge", At(3, A), -1, 1, Coordinate{}, false},
		{"off right edge", At(3, H), 1, 1, Coordinate{}, false},
		{"off top", At(8, B), 1, 1, Coordinate{}, false},
		{"off bottom", At(1, B), 1, -1, Coordinate{}, false},
		{"invalid column origin", Coordinate{Col: 12, Row: 3}, 1, 1, Coordinate{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.from.Offset(tt.dc, tt.dr)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Offset(%d, %d) = %v, %v; want %v, %v", tt.dc, tt.dr, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNewBoardLayout(t *testing.T) {
	b := New()

	if got := b.Count(core.ColorDark); got != PiecesPerSide {
		t.Errorf("Count(dark) = %d; want %d", got, PiecesPerSide)
	}
	if got := b.Count(core.ColorLight); got != PiecesPerSide {
		t.Errorf("Count(light) = %d; want %d", got, PiecesPerSide)
	}

	for r := 1; r <= Size; r++ {
		for c := 0; c < Size; c++ {
			col, _ := ColumnFromInt(c)
			at := At(r, col)
			sq, ok := b.SquareAt(at)
			if !ok {
				t.Fatalf("SquareAt(%v) missing", at)
			}

			p := sq.Occupant()
			if sq.Color() == core.ColorLight {
				if p != nil {
					t.Errorf("light square %v occupied", at)
				}
				continue
			}

			switch {
			case r <= 3:
				if p == nil || p.Color() != core.ColorDark {
					t.Errorf("square %v: want dark piece", at)
				}
			case r >= 6:
				if p == nil || p.Color() != core.ColorLight {
					t.Errorf("square %v: want light piece", at)
				}
			default:
				if p != nil {
					t.Errorf("square %v: want empty", at)
				}
			}
		}
	}

	if sq, _ := b.SquareAt(At(1, A)); sq.Color() != core.ColorDark {
		t.Error("1A should be a dark square")
	}
	if sq, _ := b.SquareAt(At(8, A)); sq.Color() != core.ColorLight {
		t.Error("8A should be a light square")
	}
}

func TestSquareAtOffBoard(t *testing.T) {
	b := New()
	for _, c := range []Coordinate{At(0, A), At(9, C), {Col: 8, Row: 3}, {Col: 200, Row: 1}} {
		if _, ok := b.SquareAt(c); ok {
			t.Errorf("SquareAt(%+v) found a square; want none", c)
		}
		if _, ok := b.PieceAt(c); ok {
			t.Errorf("PieceAt(%+v) found a piece; want none", c)
		}
	}
}

func TestRegistryFollowsSquares(t *testing.T) {
	b := NewEmpty()
	p, err := b.Add(core.ColorDark, At(3, C))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	from, _ := b.SquareAt(At(3, C))
	to, _ := b.SquareAt(At(4, D))

	t.Run("register is idempotent", func(t *testing.T) {
		from.Place(p)
		if got := b.Count(core.ColorDark); got != 1 {
			t.Errorf("Count = %d; want 1", got)
		}
	})

	t.Run("move keeps registration", func(t *testing.T) {
		to.Place(p)
		from.Clear()
		if got := b.Count(core.ColorDark); got != 1 {
			t.Errorf("Count = %d; want 1", got)
		}
		if p.Square() != to {
			t.Errorf("piece square = %v; want 4D", p.Square().Coordinate())
		}
		if from.IsOccupied() {
			t.Error("origin still occupied")
		}
	})

	t.Run("clear unregisters", func(t *testing.T) {
		to.Clear()
		if got := b.Count(core.ColorDark); got != 0 {
			t.Errorf("Count = %d; want 0", got)
		}
		if p.Alive() {
			t.Error("cleared piece reports alive")
		}
		to.Clear() // no-op
	})
}

func TestAddRejects(t *testing.T) {
	b := NewEmpty()
	if _, err := b.Add(core.ColorDark, At(3, C)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	tests := []struct {
		name  string
		color core.Color
		at    Coordinate
	}{
		{"light square", core.ColorDark, At(1, B)},
		{"occupied", core.ColorLight, At(3, C)},
		{"off board", core.ColorDark, At(9, A)},
		{"no color", core.ColorNone, At(5, A)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.Add(tt.color, tt.at); err == nil {
				t.Errorf("Add(%v, %v) succeeded; want error", tt.color, tt.at)
			}
		})
	}
}

func TestLegalDestinationsForInitial(t *testing.T) {
	b := New()
	got := b.LegalDestinationsFor(core.ColorDark)
	want := []Coordinate{At(4, B), At(4, D), At(4, F), At(4, H)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LegalDestinationsFor(dark) mismatch (-want +got):\n%s", diff)
	}

	got = b.LegalDestinationsFor(core.ColorLight)
	want = []Coordinate{At(5, A), At(5, C), At(5, E), At(5, G)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LegalDestinationsFor(light) mismatch (-want +got):\n%s", diff)
	}
}

func TestPiecesOrdered(t *testing.T) {
	b := New()
	pieces := b.Pieces(core.ColorDark)
	if len(pieces) != PiecesPerSide {
		t.Fatalf("len(Pieces) = %d; want %d", len(pieces), PiecesPerSide)
	}
	first, _ := pieces[0].Position()
	last, _ := pieces[len(pieces)-1].Position()
	if first != At(1, A) || last != At(3, G) {
		t.Errorf("Pieces order = %v .. %v; want 1A .. 3G", first, last)
	}
}

func TestRender(t *testing.T) {
	out := New().Render()
	lines := strings.Split(out, "\n")
	if len(lines) != Size+1 {
		t.Fatalf("Render lines = %d; want %d", len(lines), Size+1)
	}
	if lines[0] != "8 | _ | O | _ | O | _ | O | _ | O |" {
		t.Errorf("row 8 = %q", lines[0])
	}
	if lines[7] != "1 | X | _ | X | _ | X | _ | X | _ |" {
		t.Errorf("row 1 = %q", lines[7])
	}
	if lines[8] != "    A   B   C   D   E   F   G   H" {
		t.Errorf("footer = %q", lines[8])
	}
}
