// Package particles manages the short-lived bursts emitted when an object hits the floor.
package particles

import (
	"bounce-demo/internal/palette"
	"bounce-demo/internal/physics"
	"bounce-demo/internal/random"
)

// DefaultLimit caps how many particles may be alive at once.
const DefaultLimit = 2000

// Particle is one spark of a burst. Life is the remaining time in simulated seconds;
// Color.A tracks Life so sparks fade as they die.
type Particle struct {
	Position physics.Vec2  `json:"position"`
	Velocity physics.Vec2  `json:"velocity"`
	Color    palette.Color `json:"color"`
	Life     float32       `json:"life"`
	Size     float32       `json:"size"`
}

// Burst describes how a bounce burst is randomized.
type Burst struct {
	MinCount     int         `yaml:"min_count"`
	MaxCount     int         `yaml:"max_count"`
	VelocityX    random.Span `yaml:"velocity_x"`
	VelocityY    random.Span `yaml:"velocity_y"`
	Life         random.Span `yaml:"life"`
	Size         random.Span `yaml:"size"`
	Alpha        float32     `yaml:"alpha"`
	GravityScale float32     `yaml:"gravity_scale"`
}

// DefaultBurst returns 5 to 10 upward-spraying sparks living half a second to 1.5 seconds.
func DefaultBurst() Burst {
	return Burst{
		MinCount:     5,
		MaxCount:     10,
		VelocityX:    random.Span{Min: -10, Max: 10},
		VelocityY:    random.Span{Min: -15, Max: -5},
		Life:         random.Span{Min: 0.5, Max: 1.5},
		Size:         random.Span{Min: 3, Max: 8},
		Alpha:        0.7,
		GravityScale: 0.5,
	}
}

// Pool owns the live particles.
type Pool struct {
	Particles []Particle

	burst Burst
	limit int
	rng   random.Source
}

// NewPool returns an empty pool. limit <= 0 means DefaultLimit.
func NewPool(limit int, burst Burst, rng random.Source) *Pool {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Pool{
		Particles: make([]Particle, 0, 64),
		burst:     burst,
		limit:     limit,
		rng:       rng,
	}
}

// Emit spawns one burst at `at` tinted with base and returns how many particles were added.
// Sparks past the pool limit are dropped.
func (p *Pool) Emit(at physics.Vec2, base palette.Color) int {
	n := random.IntRange(p.rng, p.burst.MinCount, p.burst.MaxCount)
	added := 0
	for i := 0; i < n; i++ {
		if len(p.Particles) >= p.limit {
			break
		}
		p.Particles = append(p.Particles, Particle{
			Position: at,
			Velocity: physics.V(p.burst.VelocityX.Draw(p.rng), p.burst.VelocityY.Draw(p.rng)),
			Color:    base.WithAlpha(p.burst.Alpha),
			Life:     p.burst.Life.Draw(p.rng),
			Size:     p.burst.Size.Draw(p.rng),
		})
		added++
	}
	return added
}

// Update ages every particle by one tick and drops the dead ones in place.
// Particles fall at GravityScale of the object gravity and are not confined by the walls.
func (p *Pool) Update(s physics.Step) {
	gravity := s.Gravity * p.burst.GravityScale * s.Impulse()
	move := s.Displacement()
	alive := 0
	for i := range p.Particles {
		pt := &p.Particles[i]
		pt.Velocity.Y += gravity
		pt.Position = pt.Position.Add(pt.Velocity.Scale(move))
		pt.Life -= s.Dt
		pt.Color.A = pt.Life
		if pt.Life <= 0 {
			continue
		}
		p.Particles[alive] = *pt
		alive++
	}
	clear(p.Particles[alive:])
	p.Particles = p.Particles[:alive]
}

// Len returns the number of live particles.
func (p *Pool) Len() int {
	return len(p.Particles)
}

// Limit returns the pool cap.
func (p *Pool) Limit() int {
	return p.limit
}

// Clear drops every particle.
func (p *Pool) Clear() {
	p.Particles = p.Particles[:0]
}
