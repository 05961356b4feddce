package trajectory

import (
	"testing"

	"bounce-demo/internal/physics"
)

func TestRecordGate(t *testing.T) {
	b := New(0, DefaultMinGap)
	if !b.Record(physics.V(0, 0), 0) {
		t.Fatal("first sample must be recorded")
	}
	if b.Record(physics.V(3, 4), 0.1) {
		t.Fatal("sample exactly 5 away should be rejected")
	}
	if !b.Record(physics.V(3, 4.1), 0.2) {
		t.Fatal("sample more than 5 away should be recorded")
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
}

func TestEvictsOldestWhenFull(t *testing.T) {
	b := New(150, 5)
	for i := 0; i < 400; i++ {
		b.Record(physics.V(float32(i)*10, 0), float32(i))
		if b.Len() > 150 {
			t.Fatalf("Len() = %d exceeds capacity", b.Len())
		}
	}
	if b.Len() != 150 {
		t.Fatalf("Len() = %d, want 150", b.Len())
	}
	if first := b.At(0); first.Time != 250 {
		t.Fatalf("oldest sample time = %v, want 250", first.Time)
	}
	last, ok := b.Last()
	if !ok || last.Time != 399 {
		t.Fatalf("Last() = %+v, %v", last, ok)
	}
	samples := b.AppendTo(nil)
	for i := 1; i < len(samples); i++ {
		if samples[i].Time <= samples[i-1].Time {
			t.Fatalf("samples not ordered oldest first at %d", i)
		}
		if samples[i].Position.Dist(samples[i-1].Position) < 5 {
			t.Fatalf("samples %d and %d closer than the gap", i-1, i)
		}
	}
}

func TestReset(t *testing.T) {
	b := New(10, 5)
	for i := 0; i < 20; i++ {
		b.Record(physics.V(float32(i)*10, 0), float32(i))
	}
	b.Reset(physics.V(40, 30), 7)
	if b.Len() != 1 {
		t.Fatalf("Len() = %d after Reset, want 1", b.Len())
	}
	if s := b.At(0); s.Position != physics.V(40, 30) || s.Time != 7 {
		t.Fatalf("seed sample = %+v", s)
	}
}

func TestEmpty(t *testing.T) {
	b := New(3, 5)
	if _, ok := b.Last(); ok {
		t.Fatal("Last() on empty buffer should report false")
	}
	if got := b.AppendTo(nil); len(got) != 0 {
		t.Fatalf("AppendTo on empty buffer = %v", got)
	}
	if b.Cap() != 3 {
		t.Fatalf("Cap() = %d", b.Cap())
	}
}

func TestGhosts(t *testing.T) {
	if g := Ghosts(2, false); g != nil {
		t.Fatalf("Ghosts(2) = %v, want nil", g)
	}

	line := Ghosts(100, false)
	if len(line) != 9 {
		t.Fatalf("len(Ghosts(100, line)) = %d, want 9", len(line))
	}
	for i, g := range line {
		if g.Index != (i+1)*10 {
			t.Fatalf("ghost %d index = %d", i, g.Index)
		}
		if i > 0 && (g.SizeFactor >= line[i-1].SizeFactor || g.Alpha <= line[i-1].Alpha) {
			t.Fatalf("ghost %d should be smaller and more opaque than ghost %d", i, i-1)
		}
	}

	strobe := Ghosts(100, true)
	if len(strobe) != 4 {
		t.Fatalf("len(Ghosts(100, strobe)) = %d, want 4", len(strobe))
	}
	for _, g := range strobe {
		if g.Index%20 != 0 {
			t.Fatalf("strobe ghost at %d", g.Index)
		}
	}

	// Short trails still step one sample at a time.
	if g := Ghosts(5, false); len(g) != 3 || g[0].Index != 1 || g[2].Index != 3 {
		t.Fatalf("Ghosts(5) = %+v", g)
	}
}
