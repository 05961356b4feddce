// Package sim owns the whole simulation: the tracked object, the spawned objects,
// the particle pool and the trajectory. Hosts call Tick once per frame and read the
// state between ticks; nothing here is safe for concurrent use.
package sim

import (
	"bounce-demo/internal/palette"
	"bounce-demo/internal/particles"
	"bounce-demo/internal/physics"
	"bounce-demo/internal/random"
	"bounce-demo/internal/trajectory"

	"github.com/chewxy/math32"
)

// RainbowRate is how many hue cycles per simulated second rainbow mode runs through.
const RainbowRate = 0.3

// State is the simulation clock and mode controller.
type State struct {
	cfg     Config
	world   *physics.World
	spawner *Spawner
	pool    *particles.Pool
	trail   *trajectory.Buffer

	tracked physics.Body
	objects []SpawnedObject
	bounces []BounceEvent

	width, height float32
	multi         bool
	speed         float32
	gravity       float32
	integration   physics.Integration
	particlesOn   bool
	rainbow       bool
	colorIndex    int

	time      float32
	lastSpawn float32
	cubeSpin  float32
	bunnySpin float32
}

// New builds a simulation from cfg and resets it. cfg is assumed valid (see Config.Validate).
func New(cfg Config, rng random.Source) *State {
	s := &State{
		cfg:         cfg,
		world:       physics.NewWorld(cfg.Physics, physics.BoundsFor(cfg.Width, cfg.Height)),
		spawner:     NewSpawner(cfg.Spawn, rng),
		pool:        particles.NewPool(cfg.ParticleLimit, cfg.Burst, rng),
		trail:       trajectory.New(cfg.TrajectoryCapacity, cfg.TrajectoryMinGap),
		width:       cfg.Width,
		height:      cfg.Height,
		multi:       cfg.Multi,
		speed:       clamp(cfg.Speed, cfg.MinSpeed, cfg.MaxSpeed),
		gravity:     max(cfg.Gravity, 0),
		integration: cfg.Integration,
		particlesOn: cfg.ParticlesEnabled,
	}
	s.Reset()
	if s.multi {
		s.lastSpawn = s.time - cfg.Spawn.Interval
	}
	return s
}

// Tick advances the simulation by realDt seconds of wall time. Negative dt counts as 0.
func (s *State) Tick(realDt float32) {
	if realDt < 0 {
		realDt = 0
	}
	dt := realDt * s.speed
	s.time += dt
	s.cubeSpin = wrapDegrees(s.cubeSpin + dt*s.cfg.CubeSpin)
	s.bunnySpin = wrapDegrees(s.bunnySpin + dt*s.cfg.BunnySpin)
	s.bounces = s.bounces[:0]

	step := physics.Step{
		Gravity: s.gravity,
		Speed:   s.speed,
		Dt:      dt,
		Mode:    s.integration,
	}
	if s.multi {
		if s.spawner.Due(s.time, s.lastSpawn) {
			s.launch()
		}
		s.advanceObjects(step)
	} else {
		s.advanceTracked(step)
	}
	if s.particlesOn {
		s.pool.Update(step)
	}
}

func (s *State) advanceTracked(step physics.Step) {
	c := s.world.Advance(&s.tracked, step)
	if c.Floor {
		s.bounced(s.tracked.Position, c.Impact, s.Color(), true, Cube)
	}
	s.trail.Record(s.tracked.Position, s.time)
}

// advanceObjects integrates every spawned object and compacts out the expired and
// resting ones in the same pass, keeping the survivors in launch order.
func (s *State) advanceObjects(step physics.Step) {
	keep := 0
	for i := range s.objects {
		o := &s.objects[i]
		c := s.world.Advance(&o.Body, step)
		if c.Floor {
			s.bounced(o.Position, c.Impact, s.cfg.Palette[o.ColorIndex], false, o.Type)
		}
		if o.Age(s.time) > s.cfg.Spawn.MaxAge || s.world.Resting(&o.Body) {
			continue
		}
		s.objects[keep] = *o
		keep++
	}
	clear(s.objects[keep:])
	s.objects = s.objects[:keep]
}

func (s *State) bounced(at physics.Vec2, impact float32, c palette.Color, tracked bool, t ObjectType) {
	s.bounces = append(s.bounces, BounceEvent{Position: at, Impact: impact, Tracked: tracked, Type: t})
	if s.particlesOn {
		s.pool.Emit(at, c)
	}
}

func (s *State) launch() SpawnedObject {
	o := s.spawner.Spawn(s.width, s.height, s.cfg.InitialVelocity, len(s.cfg.Palette), s.time)
	s.objects = append(s.objects, o)
	s.lastSpawn = s.time
	return o
}

// Reset puts the tracked object back at the top-left start with the initial velocity,
// reseeds the trajectory and drops spawned objects. Particles and the clock are kept.
func (s *State) Reset() {
	start := physics.V(s.width*0.05, s.height*0.05)
	s.tracked = physics.NewBody(start, s.cfg.InitialVelocity)
	s.trail.Reset(start, s.time)
	clear(s.objects)
	s.objects = s.objects[:0]
	s.lastSpawn = s.time
}

// RestoreDefaults puts speed, gravity, mode, particles, auto-spawn and color back to the configured
// values. Positions are left alone.
func (s *State) RestoreDefaults() {
	s.speed = clamp(s.cfg.Speed, s.cfg.MinSpeed, s.cfg.MaxSpeed)
	s.gravity = max(s.cfg.Gravity, 0)
	s.integration = s.cfg.Integration
	s.SetMode(s.cfg.Multi)
	s.particlesOn = s.cfg.ParticlesEnabled
	s.spawner.SetAuto(s.cfg.Spawn.Auto)
	s.rainbow = false
	s.colorIndex = 0
}

// SetMode switches between the single tracked object and multi mode. Leaving multi mode
// discards the spawned objects; entering it owes an immediate launch. The trajectory is
// kept either way.
func (s *State) SetMode(multi bool) {
	if multi == s.multi {
		return
	}
	s.multi = multi
	if multi {
		s.lastSpawn = s.time - s.cfg.Spawn.Interval
		return
	}
	clear(s.objects)
	s.objects = s.objects[:0]
}

// Spawn launches one object now. It does nothing in single mode.
func (s *State) Spawn() (SpawnedObject, bool) {
	if !s.multi {
		return SpawnedObject{}, false
	}
	return s.launch(), true
}

// AdjustGravity adds delta to the gravity strength, never going below zero.
func (s *State) AdjustGravity(delta float32) float32 {
	s.gravity = max(s.gravity+delta, 0)
	return s.gravity
}

// SetGravity sets the gravity strength, clamped to >= 0.
func (s *State) SetGravity(g float32) {
	s.gravity = max(g, 0)
}

// SetSpeed sets the speed multiplier clamped to the configured range.
func (s *State) SetSpeed(v float32) float32 {
	s.speed = clamp(v, s.cfg.MinSpeed, s.cfg.MaxSpeed)
	return s.speed
}

// AdjustSpeed adds delta to the speed multiplier within the configured range.
func (s *State) AdjustSpeed(delta float32) float32 {
	return s.SetSpeed(s.speed + delta)
}

func (s *State) SetIntegration(m physics.Integration) { s.integration = m }

// SetParticlesEnabled turns bursts and particle aging on or off. Live particles are kept
// (and frozen) while off.
func (s *State) SetParticlesEnabled(on bool) { s.particlesOn = on }

// SetRainbow toggles hue cycling for the tracked object's color.
func (s *State) SetRainbow(on bool) { s.rainbow = on }

// SetAutoSpawn turns timed launches in multi mode on or off.
func (s *State) SetAutoSpawn(on bool) { s.spawner.SetAuto(on) }

// SetBunnyAvailable controls whether spawned objects may be bunnies.
func (s *State) SetBunnyAvailable(ok bool) { s.spawner.SetBunnyAvailable(ok) }

// SetWindowSize updates the bounds for the next tick. Non-positive sizes are ignored.
func (s *State) SetWindowSize(width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.world.SetBounds(physics.BoundsFor(width, height))
}

// SetColorIndex selects the tracked object's palette entry, wrapping out-of-range values.
func (s *State) SetColorIndex(i int) {
	n := len(s.cfg.Palette)
	s.colorIndex = ((i % n) + n) % n
}

// NextColor advances the tracked object's palette entry and returns the new index.
func (s *State) NextColor() int {
	s.SetColorIndex(s.colorIndex + 1)
	return s.colorIndex
}

// Color is the tracked object's current color, cycling hues in rainbow mode.
func (s *State) Color() palette.Color {
	if s.rainbow {
		return palette.Rainbow(s.time * RainbowRate)
	}
	return s.cfg.Palette[s.colorIndex]
}

// PaletteColor returns palette entry i, wrapping out-of-range indices.
func (s *State) PaletteColor(i int) palette.Color {
	n := len(s.cfg.Palette)
	return s.cfg.Palette[((i%n)+n)%n]
}

func (s *State) Tracked() physics.Body            { return s.tracked }
func (s *State) Position() physics.Vec2           { return s.tracked.Position }
func (s *State) Velocity() physics.Vec2           { return s.tracked.Velocity }
func (s *State) Objects() []SpawnedObject         { return s.objects }
func (s *State) Particles() []particles.Particle  { return s.pool.Particles }
func (s *State) ParticleLimit() int               { return s.pool.Limit() }
func (s *State) Bounces() []BounceEvent           { return s.bounces }
func (s *State) Trajectory() *trajectory.Buffer   { return s.trail }
func (s *State) Multi() bool                      { return s.multi }
func (s *State) Speed() float32                   { return s.speed }
func (s *State) Gravity() float32                 { return s.gravity }
func (s *State) Integration() physics.Integration { return s.integration }
func (s *State) ParticlesEnabled() bool           { return s.particlesOn }
func (s *State) Rainbow() bool                    { return s.rainbow }
func (s *State) AutoSpawn() bool                  { return s.spawner.auto }
func (s *State) ColorIndex() int                  { return s.colorIndex }
func (s *State) Time() float32                    { return s.time }
func (s *State) Bounds() physics.Bounds           { return s.world.Bounds }
func (s *State) Config() Config                   { return s.cfg }
func (s *State) BunnyAvailable() bool             { return s.spawner.bunny }

// WindowSize returns the size the bounds were derived from.
func (s *State) WindowSize() (float32, float32) { return s.width, s.height }

// Spin returns the cosmetic cube and bunny rotation angles in degrees.
func (s *State) Spin() (cube, bunny float32) { return s.cubeSpin, s.bunnySpin }

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

func wrapDegrees(a float32) float32 {
	a = math32.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
