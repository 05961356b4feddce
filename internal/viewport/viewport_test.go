package viewport

import (
	"testing"

	"bounce-demo/internal/physics"

	"github.com/chewxy/math32"
)

func TestToWorld(t *testing.T) {
	v := New(800, 600)
	tests := []struct {
		p      physics.Vec2
		wx, wy float32
	}{
		{physics.V(0, 0), -10, 7.5},
		{physics.V(400, 300), 0, 0},
		{physics.V(800, 600), 10, -7.5},
		{physics.V(400, 540), 0, -6},
	}
	for _, tt := range tests {
		x, y := v.ToWorld(tt.p)
		if math32.Abs(x-tt.wx) > 1e-4 || math32.Abs(y-tt.wy) > 1e-4 {
			t.Fatalf("ToWorld(%+v) = (%v, %v), want (%v, %v)", tt.p, x, y, tt.wx, tt.wy)
		}
	}
	if x, y := New(0, 0).ToWorld(physics.V(1, 1)); x != 0 || y != 0 {
		t.Fatal("degenerate viewport should map to the origin")
	}
	if got := WorldSize(60); math32.Abs(got-0.6) > 1e-6 {
		t.Fatalf("WorldSize(60) = %v", got)
	}
}

func TestGridCell(t *testing.T) {
	g := Grid{Viewport: New(800, 600), Cols: 80, Rows: 24}
	col, row, ok := g.Cell(physics.V(400, 300))
	if !ok || col != 40 || row != 12 {
		t.Fatalf("Cell(center) = %d, %d, %v", col, row, ok)
	}
	if _, _, ok := g.Cell(physics.V(400, -10)); ok {
		t.Fatal("point above the window should be outside the grid")
	}
	if _, _, ok := g.Cell(physics.V(800, 300)); ok {
		t.Fatal("right edge should be outside the grid")
	}
	if r := g.Row(540); r != 21 {
		t.Fatalf("Row(540) = %d, want 21", r)
	}
	if c := g.Col(-5); c != 0 {
		t.Fatalf("Col(-5) = %d, want 0", c)
	}
}
