package aoc

import (
	"testing"
)

func TestGridHash(t *testing.T) {
	a := NewPuzzle(2023, 3, []byte("467..\n...*.\n")).Grid()
	b := NewPuzzle(2023, 3, []byte("467..\n...*.\n")).Grid()
	c := NewPuzzle(2023, 3, []byte("467..\n..*..\n")).Grid()

	if a.Hash() != b.Hash() {
		t.Error("equal grids hash differently")
	}
	if a.Hash() == c.Hash() {
		t.Error("different grids hash the same")
	}
}

func TestGridAccess(t *testing.T) {
	g := NewPuzzle(2023, 3, []byte("467\n..*\n")).Grid()
	if got := g.At(Pt{2, 1}); got != '*' {
		t.Errorf("At = %q; want '*'", got)
	}
	if v, ok := g.AtOk(Pt{0, 0}); !ok || v != '4' {
		t.Errorf("AtOk(0,0) = %q, %v; want '4', true", v, ok)
	}
	if _, ok := g.AtOk(Pt{3, 0}); ok {
		t.Error("AtOk(3,0) reported a cell outside the grid")
	}
	if _, ok := g.AtOk(Pt{0, -1}); ok {
		t.Error("AtOk(0,-1) reported a cell outside the grid")
	}
	if got, want := g.Size(), (Pt{3, 2}); got != want {
		t.Errorf("Size = %v; want %v", got, want)
	}
}

func TestNeighbors(t *testing.T) {
	p := Pt{1, 1}
	var all []Pt
	p.ForNeighbors(func(n Pt) bool {
		all = append(all, n)
		return true
	})
	if len(all) != 8 {
		t.Fatalf("got %d neighbors; want 8", len(all))
	}
	for _, n := range all {
		if n == p || n.X < 0 || n.X > 2 || n.Y < 0 || n.Y > 2 {
			t.Errorf("unexpected neighbor %v", n)
		}
	}

	var seen int
	p.ForNeighbors(func(Pt) bool { seen++; return seen < 3 })
	if seen != 3 {
		t.Errorf("ForNeighbors kept going after false: %d calls", seen)
	}
}

func TestSetIntersect(t *testing.T) {
	a := NewSet(41, 48, 83, 86, 17)
	b := NewSet(83, 86, 6, 31, 17, 9, 48, 53)
	got := a.Intersect(b)
	if len(got) != 4 {
		t.Fatalf("Intersect = %v; want 4 values", got)
	}
	for _, v := range []int{48, 83, 86, 17} {
		if !got.Has(v) {
			t.Errorf("Intersect missing %d", v)
		}
	}
}
