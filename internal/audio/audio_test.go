package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone, err := Tone(rate, 10)
	if err != nil {
		t.Fatalf("Tone: %v", err)
	}
	n, peak := drain(t, tone)
	if want := rate.N(toneLength); n != want {
		t.Fatalf("tone length = %d samples, want %d", n, want)
	}
	if peak <= 0 || peak > 1 {
		t.Fatalf("peak = %v, want in (0, 1]", peak)
	}
}

func TestHarderHitsAreLouder(t *testing.T) {
	rate := beep.SampleRate(44100)
	soft, _ := Tone(rate, 1)
	hard, _ := Tone(rate, 20)
	_, softPeak := drain(t, soft)
	_, hardPeak := drain(t, hard)
	if hardPeak <= softPeak {
		t.Fatalf("hard peak %v <= soft peak %v", hardPeak, softPeak)
	}
}

func TestToneClampsFrequency(t *testing.T) {
	// A huge impact must still produce a tone below Nyquist.
	if _, err := Tone(beep.SampleRate(8000), 1e6); err != nil {
		t.Fatalf("Tone with huge impact: %v", err)
	}
}

func TestBounceBeforeInit(t *testing.T) {
	p := NewPlayer()
	if p.Bounce(10) {
		t.Fatal("Bounce should be a no-op before Init")
	}
	p.Close()
}

func TestBounceRateLimit(t *testing.T) {
	// Exercise the limiter without a device: mark initialized and stub the clock.
	p := NewPlayer()
	p.initialized = true
	now := time.Unix(0, 0)
	p.now = func() time.Time { return now }

	if !p.Bounce(5) {
		t.Fatal("first bounce should play")
	}
	now = now.Add(MinGap / 2)
	if p.Bounce(5) {
		t.Fatal("bounce within MinGap should be dropped")
	}
	now = now.Add(MinGap)
	if !p.Bounce(5) {
		t.Fatal("bounce after MinGap should play")
	}
}
