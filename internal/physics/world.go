package physics

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// ReferenceRate is the frame rate (Hz) the per-frame constants were tuned at.
// TimeScaled integration measures elapsed time in frames of this length.
const ReferenceRate = 60

// Integration selects how a tick's elapsed time feeds into gravity, drag, and displacement.
type Integration uint8

const (
	// PerFrame adds gravity and applies drag once per tick regardless of dt, and scales
	// displacement by the speed multiplier only. Frame-rate dependent; this is the demo's
	// historical behavior and the default.
	PerFrame Integration = iota
	// TimeScaled scales gravity, drag, and displacement by the simulated time the tick
	// covers, measured in ReferenceRate frames. At 60 FPS and speed 1 it matches PerFrame.
	TimeScaled
)

func (m Integration) String() string {
	switch m {
	case PerFrame:
		return "per-frame"
	case TimeScaled:
		return "time-scaled"
	default:
		return fmt.Sprintf("integration(%d)", m)
	}
}

// ParseIntegration accepts "per-frame" or "time-scaled" (case-insensitive). Empty means PerFrame.
func ParseIntegration(s string) (Integration, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "per-frame", "perframe", "frame":
		return PerFrame, nil
	case "time-scaled", "timescaled", "scaled", "dt":
		return TimeScaled, nil
	default:
		return PerFrame, fmt.Errorf("unknown integration mode %q", s)
	}
}

// Step describes one integration tick.
// Gravity is the per-frame velocity increment, Speed the simulation speed multiplier,
// and Dt the already speed-scaled elapsed time in seconds.
type Step struct {
	Gravity float32
	Speed   float32
	Dt      float32
	Mode    Integration
}

// frames returns how many reference frames the tick covers under TimeScaled integration.
func (s Step) frames() float32 {
	return s.Dt * ReferenceRate
}

// Impulse is the multiplier applied to per-frame accelerations (gravity) this tick.
func (s Step) Impulse() float32 {
	if s.Mode == TimeScaled {
		return s.frames()
	}
	return 1
}

// Displacement is the multiplier applied to velocity when moving a position this tick.
func (s Step) Displacement() float32 {
	if s.Mode == TimeScaled {
		return s.frames()
	}
	return s.Speed
}

// Drag returns the velocity retention factor for this tick given a per-frame factor.
func (s Step) Drag(perFrame float32) float32 {
	if s.Mode == TimeScaled {
		return math32.Pow(perFrame, s.frames())
	}
	return perFrame
}

// Bounds is the box objects are confined to, derived from the window size.
// There is no ceiling: objects may leave through the top and fall back in.
type Bounds struct {
	Left  float32 `json:"left"`
	Right float32 `json:"right"`
	Floor float32 `json:"floor"`
}

// BoundsFor returns the walls at 5% and 95% of width and the floor at 90% of height.
func BoundsFor(width, height float32) Bounds {
	return Bounds{
		Left:  width * 0.05,
		Right: width * 0.95,
		Floor: height * 0.9,
	}
}

// Contains reports whether p is inside the walls and not below the floor.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y <= b.Floor
}

// Params holds the material constants shared by every body.
type Params struct {
	AirResistance float32 `json:"air_resistance"` // per-frame velocity retention, < 1
	Restitution   float32 `json:"restitution"`    // fraction of speed kept after a bounce
	RestEpsilon   float32 `json:"rest_epsilon"`   // |vy| below this after a floor bounce snaps to 0
	RestEnergy    float32 `json:"rest_energy"`    // |vx|+|vy| below this on the floor counts as resting
}

// DefaultParams returns the demo's tuned constants.
func DefaultParams() Params {
	return Params{
		AirResistance: 0.998,
		Restitution:   0.92,
		RestEpsilon:   0.5,
		RestEnergy:    0.1,
	}
}

// floorTolerance is how far above the floor a body may be and still count as resting on it.
const floorTolerance = 1.0

// Contact reports the collisions resolved during one Advance.
// Impact is |vy| just before a floor bounce, zero when Floor is false.
type Contact struct {
	Floor  bool
	Wall   bool
	Impact float32
}

// World holds the shared parameters and the current bounds. It does not own bodies:
// callers keep their bodies in whatever collection suits them and call Advance per body.
type World struct {
	Params Params
	Bounds Bounds
}

// NewWorld returns a world with the given parameters and bounds.
func NewWorld(params Params, bounds Bounds) *World {
	return &World{
		Params: params,
		Bounds: bounds,
	}
}

// SetBounds replaces the bounds (e.g. after a window resize). Bodies outside the new bounds
// are pulled back on their next Advance.
func (w *World) SetBounds(b Bounds) {
	w.Bounds = b
}

// Advance moves b by one tick: gravity, drag, displacement, then floor and wall collision.
// Floor collision reflects vy with energy loss and snaps tiny rebounds to zero so the
// body settles instead of micro-bouncing forever. Walls reflect vx with energy loss.
func (w *World) Advance(b *Body, s Step) Contact {
	var c Contact

	b.Velocity.Y += s.Gravity * s.Impulse()
	drag := s.Drag(w.Params.AirResistance)
	b.Velocity = b.Velocity.Scale(drag)
	b.Position = b.Position.Add(b.Velocity.Scale(s.Displacement()))

	if b.Position.Y > w.Bounds.Floor {
		c.Floor = true
		c.Impact = math32.Abs(b.Velocity.Y)
		b.Velocity.Y = -b.Velocity.Y * w.Params.Restitution
		b.Position.Y = w.Bounds.Floor
		if math32.Abs(b.Velocity.Y) < w.Params.RestEpsilon {
			b.Velocity.Y = 0
		}
	}

	if b.Position.X < w.Bounds.Left {
		c.Wall = true
		b.Position.X = w.Bounds.Left
		b.Velocity.X = -b.Velocity.X * w.Params.Restitution
	}
	if b.Position.X > w.Bounds.Right {
		c.Wall = true
		b.Position.X = w.Bounds.Right
		b.Velocity.X = -b.Velocity.X * w.Params.Restitution
	}
	return c
}

// Resting reports whether b sits on the floor with almost no motion left.
func (w *World) Resting(b *Body) bool {
	return b.Position.Y >= w.Bounds.Floor-floorTolerance && b.Velocity.Manhattan() < w.Params.RestEnergy
}
