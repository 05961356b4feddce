// Package audio plays a short tick whenever an object hits the floor.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	toneLength = 60 * time.Millisecond
	// MinGap is the shortest time between two ticks; bounces closer together are dropped.
	MinGap = 40 * time.Millisecond

	baseFreq   = 220.0
	freqPerHit = 35.0
	maxFreq    = 1320.0
	// fullImpact is the impact speed that plays at full volume.
	fullImpact = 20.0
	minGain    = 0.05
)

// Tone returns the tick for a bounce with the given impact speed: faster hits are
// higher and louder.
func Tone(rate beep.SampleRate, impact float64) (beep.Streamer, error) {
	freq := math.Min(baseFreq+impact*freqPerHit, maxFreq)
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("bounce tone: %w", err)
	}
	gain := math.Max(math.Min(impact/fullImpact, 1), minGain)
	return &effects.Volume{
		Streamer: beep.Take(rate.N(toneLength), sine),
		Base:     2,
		Volume:   math.Log2(gain),
	}, nil
}

// Player mixes bounce ticks onto the speaker. The zero value is unusable; call Init.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	last        time.Time
	now         func() time.Time
}

// NewPlayer returns a player that is not yet connected to the audio device.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Init opens the audio device. Calling it twice is harmless.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Bounce queues a tick for an impact, unless another tick started less than MinGap ago.
// It reports whether a tick was queued.
func (p *Player) Bounce(impact float32) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return false
	}
	now := p.now()
	if !p.last.IsZero() && now.Sub(p.last) < MinGap {
		return false
	}
	tone, err := Tone(sampleRate, float64(impact))
	if err != nil {
		return false
	}
	p.last = now
	speaker.Lock()
	p.mixer.Add(tone)
	speaker.Unlock()
	return true
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
