package physics

import (
	"testing"

	"github.com/chewxy/math32"
)

func approx(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}

func frameStep(gravity float32) Step {
	return Step{Gravity: gravity, Speed: 1, Dt: 1.0 / 60, Mode: PerFrame}
}

func TestBoundsFor(t *testing.T) {
	b := BoundsFor(800, 600)
	if b.Left != 40 || b.Right != 760 || b.Floor != 540 {
		t.Fatalf("BoundsFor(800, 600) = %+v", b)
	}
	if !b.Contains(V(40, 540)) {
		t.Fatal("corner on the walls should be contained")
	}
	if b.Contains(V(39, 100)) || b.Contains(V(100, 541)) {
		t.Fatal("points outside the walls or below the floor should not be contained")
	}
	// No ceiling.
	if !b.Contains(V(100, -500)) {
		t.Fatal("points above the window should be contained")
	}
}

func TestAdvanceFloorBounce(t *testing.T) {
	w := NewWorld(DefaultParams(), BoundsFor(800, 600))
	b := NewBody(V(400, 535), V(0, 10))

	c := w.Advance(&b, frameStep(0.35))
	if !c.Floor {
		t.Fatal("expected a floor contact")
	}
	pre := float32((10 + 0.35) * 0.998)
	if !approx(c.Impact, pre, 1e-4) {
		t.Fatalf("impact = %v, want %v", c.Impact, pre)
	}
	if b.Position.Y != 540 {
		t.Fatalf("y = %v, want clamped to 540", b.Position.Y)
	}
	if b.Velocity.Y > 0 {
		t.Fatalf("vy = %v, want <= 0 after bounce", b.Velocity.Y)
	}
	if !approx(b.Velocity.Y, -pre*0.92, 1e-4) {
		t.Fatalf("vy = %v, want %v", b.Velocity.Y, -pre*0.92)
	}
}

func TestAdvanceFloorSnap(t *testing.T) {
	w := NewWorld(DefaultParams(), BoundsFor(800, 600))
	b := NewBody(V(400, 539.9), V(0, 0.1))

	c := w.Advance(&b, frameStep(0.35))
	if !c.Floor {
		t.Fatal("expected a floor contact")
	}
	if b.Velocity.Y != 0 {
		t.Fatalf("vy = %v, want snapped to 0", b.Velocity.Y)
	}
}

func TestAdvanceWalls(t *testing.T) {
	tests := []struct {
		name  string
		start Body
		wantX float32
	}{
		{"left", NewBody(V(42, 100), V(-5, 0)), 40},
		{"right", NewBody(V(758, 100), V(5, 0)), 760},
	}
	w := NewWorld(DefaultParams(), BoundsFor(800, 600))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.start
			vx := tt.start.Velocity.X * 0.998
			c := w.Advance(&b, frameStep(0))
			if !c.Wall {
				t.Fatal("expected a wall contact")
			}
			if b.Position.X != tt.wantX {
				t.Fatalf("x = %v, want %v", b.Position.X, tt.wantX)
			}
			if !approx(b.Velocity.X, -vx*0.92, 1e-5) {
				t.Fatalf("vx = %v, want %v", b.Velocity.X, -vx*0.92)
			}
		})
	}
}

func TestAdvanceStaysInBounds(t *testing.T) {
	w := NewWorld(DefaultParams(), BoundsFor(800, 600))
	b := NewBody(V(40, 30), V(25, -4))
	for i := 0; i < 5000; i++ {
		w.Advance(&b, frameStep(0.35))
		if b.Position.X < w.Bounds.Left || b.Position.X > w.Bounds.Right {
			t.Fatalf("tick %d: x = %v out of [%v, %v]", i, b.Position.X, w.Bounds.Left, w.Bounds.Right)
		}
		if b.Position.Y > w.Bounds.Floor {
			t.Fatalf("tick %d: y = %v below floor", i, b.Position.Y)
		}
	}
	if !w.Resting(&b) {
		t.Fatalf("body should have settled, got %+v", b)
	}
}

func TestScenario800x600(t *testing.T) {
	const g, e, air = 0.35, 0.92, 0.998
	w := NewWorld(DefaultParams(), BoundsFor(800, 600))
	b := NewBody(V(40, 30), V(6, -2))

	for i := 0; i < 1000; i++ {
		before := b
		c := w.Advance(&b, frameStep(g))
		if !c.Floor {
			continue
		}
		pre := (before.Velocity.Y + g) * air
		if pre <= 0 {
			t.Fatalf("pre-bounce vy = %v, want positive", pre)
		}
		if b.Position.Y != 540 {
			t.Fatalf("y = %v, want 540", b.Position.Y)
		}
		if !approx(b.Velocity.Y, -pre*e, 1e-3) {
			t.Fatalf("vy = %v, want %v", b.Velocity.Y, -pre*e)
		}
		return
	}
	t.Fatal("object never reached the floor")
}

func TestTimeScaledMatchesPerFrameAtReferenceRate(t *testing.T) {
	w := NewWorld(DefaultParams(), BoundsFor(800, 600))
	a := NewBody(V(100, 100), V(6, -2))
	b := a

	for i := 0; i < 30; i++ {
		w.Advance(&a, frameStep(0.35))
		w.Advance(&b, Step{Gravity: 0.35, Speed: 1, Dt: 1.0 / ReferenceRate, Mode: TimeScaled})
	}
	if !approx(a.Position.X, b.Position.X, 1e-2) || !approx(a.Position.Y, b.Position.Y, 1e-2) {
		t.Fatalf("positions diverged: %+v vs %+v", a.Position, b.Position)
	}
}

func TestTimeScaledZeroDt(t *testing.T) {
	w := NewWorld(DefaultParams(), BoundsFor(800, 600))
	b := NewBody(V(100, 100), V(6, -2))
	w.Advance(&b, Step{Gravity: 0.35, Speed: 1, Dt: 0, Mode: TimeScaled})
	if b.Position != V(100, 100) || b.Velocity != V(6, -2) {
		t.Fatalf("zero dt moved the body: %+v", b)
	}
}

func TestParseIntegration(t *testing.T) {
	tests := []struct {
		in      string
		want    Integration
		wantErr bool
	}{
		{"", PerFrame, false},
		{"per-frame", PerFrame, false},
		{"Time-Scaled", TimeScaled, false},
		{"bogus", PerFrame, true},
	}
	for _, tt := range tests {
		got, err := ParseIntegration(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseIntegration(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseIntegration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if TimeScaled.String() != "time-scaled" {
		t.Fatalf("String() = %q", TimeScaled.String())
	}
}
