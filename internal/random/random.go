// Package random provides the randomness the simulation draws from. The simulation never
// touches a global generator; it is handed a Source so tests can script every draw.
package random

import (
	"math/rand/v2"
	"time"
)

// Source is the subset of *rand.Rand the simulation uses.
type Source interface {
	// Float32 returns a value in [0, 1).
	Float32() float32
	// IntN returns a value in [0, n). n must be > 0.
	IntN(n int) int
}

// New returns a PCG-backed source. Seed 0 uses a time-based seed.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Range returns a value uniformly drawn from [lo, hi).
func Range(src Source, lo, hi float32) float32 {
	return lo + src.Float32()*(hi-lo)
}

// IntRange returns a value uniformly drawn from [lo, hi] inclusive. If hi < lo it returns lo.
func IntRange(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Span is a closed-open float interval used for randomized attributes.
type Span struct {
	Min float32 `yaml:"min" json:"min"`
	Max float32 `yaml:"max" json:"max"`
}

// Draw returns a value in [Min, Max).
func (s Span) Draw(src Source) float32 {
	return Range(src, s.Min, s.Max)
}

// Valid reports whether Min <= Max.
func (s Span) Valid() bool {
	return s.Min <= s.Max
}
