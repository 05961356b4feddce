package random

import "testing"

func TestNewIsDeterministicForSeed(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 16; i++ {
		if x, y := a.Float32(), b.Float32(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}

func TestRange(t *testing.T) {
	src := New(7)
	for i := 0; i < 1000; i++ {
		v := Range(src, -10, 10)
		if v < -10 || v >= 10 {
			t.Fatalf("Range out of bounds: %v", v)
		}
		n := IntRange(src, 5, 10)
		if n < 5 || n > 10 {
			t.Fatalf("IntRange out of bounds: %v", n)
		}
	}
	if got := IntRange(src, 3, 3); got != 3 {
		t.Fatalf("IntRange(3, 3) = %d", got)
	}
}

func TestScripted(t *testing.T) {
	s := &Scripted{Floats: []float32{0, 0.5}, Ints: []int{7}}
	if s.Float32() != 0 || s.Float32() != 0.5 || s.Float32() != 0 {
		t.Fatal("Scripted floats should cycle")
	}
	if got := s.IntN(5); got != 2 {
		t.Fatalf("IntN(5) = %d, want 2", got)
	}
	if got := Range(&Scripted{Floats: []float32{0.5}}, 0.5, 1.5); got != 1 {
		t.Fatalf("Range midpoint = %v", got)
	}
}
