// Package trajectory records the recent path of the tracked object for trail rendering.
package trajectory

import "bounce-demo/internal/physics"

const (
	DefaultCapacity = 150
	DefaultMinGap   = 5
)

// Sample is one recorded point with the simulation time it was taken at.
type Sample struct {
	Position physics.Vec2 `json:"position"`
	Time     float32      `json:"time"`
}

// Buffer is a fixed-capacity ring of samples, oldest first. A new sample is only
// accepted when it is farther than the minimum gap from the newest one; once full,
// each accepted sample evicts the oldest.
type Buffer struct {
	samples []Sample
	head    int // index of the oldest sample
	size    int
	minGap  float32
}

// New returns an empty buffer. capacity <= 0 means DefaultCapacity, minGap < 0 means DefaultMinGap.
func New(capacity int, minGap float32) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if minGap < 0 {
		minGap = DefaultMinGap
	}
	return &Buffer{
		samples: make([]Sample, capacity),
		minGap:  minGap,
	}
}

// Record appends p if the buffer is empty or p is more than the minimum gap from the
// newest sample. It reports whether the sample was kept.
func (b *Buffer) Record(p physics.Vec2, now float32) bool {
	if b.size > 0 {
		last := b.samples[b.index(b.size-1)]
		if p.Dist(last.Position) <= b.minGap {
			return false
		}
	}
	s := Sample{Position: p, Time: now}
	if b.size < len(b.samples) {
		b.samples[b.index(b.size)] = s
		b.size++
		return true
	}
	b.samples[b.head] = s
	b.head = (b.head + 1) % len(b.samples)
	return true
}

// Reset clears the buffer and seeds it with a single sample.
func (b *Buffer) Reset(p physics.Vec2, now float32) {
	b.Clear()
	b.Record(p, now)
}

// Clear drops every sample.
func (b *Buffer) Clear() {
	b.head = 0
	b.size = 0
}

func (b *Buffer) Len() int { return b.size }
func (b *Buffer) Cap() int { return len(b.samples) }

// At returns the i-th sample, 0 being the oldest. It panics if i is out of range.
func (b *Buffer) At(i int) Sample {
	if i < 0 || i >= b.size {
		panic("trajectory: index out of range")
	}
	return b.samples[b.index(i)]
}

// Last returns the newest sample, or false if the buffer is empty.
func (b *Buffer) Last() (Sample, bool) {
	if b.size == 0 {
		return Sample{}, false
	}
	return b.samples[b.index(b.size-1)], true
}

// AppendTo appends the samples oldest first to dst and returns the extended slice.
func (b *Buffer) AppendTo(dst []Sample) []Sample {
	for i := 0; i < b.size; i++ {
		dst = append(dst, b.samples[b.index(i)])
	}
	return dst
}

func (b *Buffer) index(i int) int {
	return (b.head + i) % len(b.samples)
}
