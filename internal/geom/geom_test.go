package geom

import "testing"

func TestDirectionOffset(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Point
		name string
	}{
		{Up, Pt(0, -1), "up"},
		{Down, Pt(0, 1), "down"},
		{Left, Pt(-1, 0), "left"},
		{Right, Pt(1, 0), "right"},
		{Direction(42), Pt(0, 0), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dir.Offset(); got != tt.want {
			t.Errorf("%v.Offset() = %v, want %v", tt.dir, got, tt.want)
		}
		if got := tt.dir.String(); got != tt.name {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.name)
		}
	}
}

func TestPointMove(t *testing.T) {
	p := Pt(3, 3)
	if got := p.Move(Up).Move(Up).Move(Left); got != Pt(2, 1) {
		t.Errorf("Move chain = %v, want (2,1)", got)
	}
	if got := p.Add(Pt(2, -5)); got != Pt(5, -2) {
		t.Errorf("Add() = %v, want (5,-2)", got)
	}
	if got := p.Sub(Pt(3, 3)); got != Pt(0, 0) {
		t.Errorf("Sub() = %v, want (0,0)", got)
	}
	if got := p.Down(2).Right(4); got != Pt(7, 5) {
		t.Errorf("Down(2).Right(4) = %v, want (7,5)", got)
	}
}

func TestRectInner(t *testing.T) {
	r := NewRect(19, 1, 61, 35)
	in := r.Inner()

	if in.Location != Pt(20, 2) {
		t.Errorf("Inner().Location = %v, want (20,2)", in.Location)
	}
	if in.Size != Sz(59, 33) {
		t.Errorf("Inner().Size = %v, want 59x33", in.Size)
	}
	if in.Right() != r.Right()-1 || in.Bottom() != r.Bottom()-1 {
		t.Errorf("Inner() edges = (%d,%d), want (%d,%d)", in.Right(), in.Bottom(), r.Right()-1, r.Bottom()-1)
	}
}

func TestRectContainsAndIntersects(t *testing.T) {
	r := NewRect(0, 0, 10, 5)

	if !r.Contains(Pt(0, 0)) || !r.Contains(Pt(9, 4)) {
		t.Error("Contains() should include the top-left and bottom-right cells")
	}
	if r.Contains(Pt(10, 0)) || r.Contains(Pt(0, 5)) || r.Contains(Pt(-1, 0)) {
		t.Error("Contains() should exclude cells past the edges")
	}

	if !r.Intersects(NewRect(9, 4, 3, 3)) {
		t.Error("Intersects() should detect a corner overlap")
	}
	if r.Intersects(NewRect(10, 0, 3, 3)) {
		t.Error("Intersects() should not report touching edges as overlap")
	}
	if got := r.Translate(Pt(2, 3)).Resize(Sz(1, -1)); got != NewRect(2, 3, 11, 4) {
		t.Errorf("Translate().Resize() = %v, want %v", got, NewRect(2, 3, 11, 4))
	}
	if got := r.Center(); got != Pt(5, 2) {
		t.Errorf("Center() = %v, want (5,2)", got)
	}
}
