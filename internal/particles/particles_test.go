package particles

import (
	"testing"

	"bounce-demo/internal/palette"
	"bounce-demo/internal/physics"
	"bounce-demo/internal/random"
)

var red = palette.Color{R: 1, G: 0.3, B: 0.3, A: 1}

func frame(dt float32) physics.Step {
	return physics.Step{Gravity: 0.35, Speed: 1, Dt: dt, Mode: physics.PerFrame}
}

func TestEmitRanges(t *testing.T) {
	pool := NewPool(0, DefaultBurst(), random.New(1))
	for i := 0; i < 50; i++ {
		n := pool.Emit(physics.V(100, 540), red)
		if n < 5 || n > 10 {
			t.Fatalf("burst size %d out of [5, 10]", n)
		}
	}
	for _, p := range pool.Particles {
		if p.Velocity.X < -10 || p.Velocity.X > 10 {
			t.Fatalf("vx %v out of range", p.Velocity.X)
		}
		if p.Velocity.Y < -15 || p.Velocity.Y > -5 {
			t.Fatalf("vy %v out of range", p.Velocity.Y)
		}
		if p.Life < 0.5 || p.Life > 1.5 {
			t.Fatalf("life %v out of range", p.Life)
		}
		if p.Size < 3 || p.Size > 8 {
			t.Fatalf("size %v out of range", p.Size)
		}
		if p.Color.A != 0.7 || p.Color.R != 1 {
			t.Fatalf("color %+v, want base with alpha 0.7", p.Color)
		}
	}
}

func TestEmitRespectsLimit(t *testing.T) {
	pool := NewPool(12, DefaultBurst(), &random.Scripted{Ints: []int{5}, Floats: []float32{0.5}})
	if n := pool.Emit(physics.V(0, 0), red); n != 10 {
		t.Fatalf("first burst = %d, want 10", n)
	}
	if n := pool.Emit(physics.V(0, 0), red); n != 2 {
		t.Fatalf("second burst = %d, want 2 (capped)", n)
	}
	if pool.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", pool.Len())
	}
}

func TestUpdateDecaysLife(t *testing.T) {
	pool := NewPool(0, DefaultBurst(), &random.Scripted{Ints: []int{0}, Floats: []float32{0.5}})
	pool.Emit(physics.V(100, 540), red)
	start := pool.Particles[0]

	pool.Update(frame(0.1))
	got := pool.Particles[0]
	if d := start.Life - got.Life; d < 0.0999 || d > 0.1001 {
		t.Fatalf("life decreased by %v, want 0.1", d)
	}
	if got.Color.A != got.Life {
		t.Fatalf("alpha %v != life %v", got.Color.A, got.Life)
	}
	wantVY := start.Velocity.Y + 0.35*0.5
	if got.Velocity.Y != wantVY {
		t.Fatalf("vy = %v, want %v", got.Velocity.Y, wantVY)
	}
	if got.Position != start.Position.Add(physics.V(start.Velocity.X, wantVY)) {
		t.Fatalf("position = %+v", got.Position)
	}
}

func TestBurstExpiresWithinMaxLife(t *testing.T) {
	// Scripted count of 8 at (100, 540), all other draws at the top of their ranges.
	pool := NewPool(0, DefaultBurst(), &random.Scripted{Ints: []int{3}, Floats: []float32{0.999}})
	if n := pool.Emit(physics.V(100, 540), red); n != 8 {
		t.Fatalf("burst = %d, want 8", n)
	}
	const dt = float32(1.0 / 60)
	for i := 0; i < 90; i++ {
		pool.Update(frame(dt))
		for _, p := range pool.Particles {
			if p.Life <= 0 {
				t.Fatalf("tick %d: dead particle still present", i)
			}
		}
	}
	if pool.Len() != 0 {
		t.Fatalf("%d particles left after 1.5 s", pool.Len())
	}
}

func TestClear(t *testing.T) {
	pool := NewPool(0, DefaultBurst(), random.New(3))
	pool.Emit(physics.V(0, 0), red)
	pool.Clear()
	if pool.Len() != 0 {
		t.Fatalf("Len() = %d after Clear", pool.Len())
	}
}
