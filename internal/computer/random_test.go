package computer

import (
	"testing"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/engine"
)

var _ engine.Opponent = (*Random)(nil)

func TestPickMoveIsLegal(t *testing.T) {
	b := board.New()
	r := NewRandom(7)

	for i := 0; i < 50; i++ {
		from, to, ok := r.PickMove(core.ColorLight, b)
		if !ok {
			t.Fatal("PickMove found no move in the starting position")
		}
		p, found := b.PieceAt(from)
		if !found || p.Color() != core.ColorLight {
			t.Fatalf("PickMove origin %v holds no light piece", from)
		}
		if !p.CanMoveTo(to) && !p.CanCaptureTo(to) {
			t.Fatalf("PickMove destination %v not legal for %v", to, from)
		}
	}
}

func TestPickMoveCoversAllOptions(t *testing.T) {
	b := board.New()
	r := NewRandom(42)

	seen := make(map[[2]board.Coordinate]bool)
	for i := 0; i < 500; i++ {
		from, to, _ := r.PickMove(core.ColorDark, b)
		seen[[2]board.Coordinate{from, to}] = true
	}
	// 3A-4B, 3C-4B, 3C-4D, 3E-4D, 3E-4F, 3G-4F, 3G-4H
	if len(seen) != 7 {
		t.Errorf("distinct moves = %d; want 7", len(seen))
	}
}

func TestPickMoveBlocked(t *testing.T) {
	b := board.NewEmpty()
	if _, err := b.Add(core.ColorDark, board.At(8, board.B)); err != nil {
		t.Fatal(err)
	}
	if _, _, ok := NewRandom(1).PickMove(core.ColorDark, b); ok {
		t.Error("PickMove found a move for a blocked color")
	}
	if _, _, ok := NewRandom(1).PickMove(core.ColorLight, b); ok {
		t.Error("PickMove found a move for a color with no pieces")
	}
}

func TestSameSeedSameMoves(t *testing.T) {
	a, b := NewRandom(99), NewRandom(99)
	pos := board.New()
	for i := 0; i < 10; i++ {
		f1, t1, _ := a.PickMove(core.ColorDark, pos)
		f2, t2, _ := b.PickMove(core.ColorDark, pos)
		if f1 != f2 || t1 != t2 {
			t.Fatalf("iteration %d: %v-%v vs %v-%v", i, f1, t1, f2, t2)
		}
	}
}
