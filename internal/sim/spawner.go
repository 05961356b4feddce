package sim

import (
	"bounce-demo/internal/physics"
	"bounce-demo/internal/random"
)

// Spawner creates multi-mode objects with randomized kinematics and looks.
type Spawner struct {
	cfg   SpawnConfig
	rng   random.Source
	bunny bool
	auto  bool
}

func NewSpawner(cfg SpawnConfig, rng random.Source) *Spawner {
	return &Spawner{cfg: cfg, rng: rng, auto: cfg.Auto}
}

// SetAuto turns timed launches on or off without touching the configured default.
func (s *Spawner) SetAuto(on bool) { s.auto = on }

// SetBunnyAvailable controls whether bunnies may be spawned. Hosts clear it when the
// mesh failed to load.
func (s *Spawner) SetBunnyAvailable(ok bool) {
	s.bunny = ok
}

// Types returns the object types Spawn may choose from.
func (s *Spawner) Types() []ObjectType {
	if s.bunny {
		return []ObjectType{Cube, Sphere, Bunny}
	}
	return []ObjectType{Cube, Sphere}
}

// Due reports whether an auto-launch is owed at now given the last launch time.
func (s *Spawner) Due(now, last float32) bool {
	return s.auto && now-last >= s.cfg.Interval
}

// Spawn returns a new object near the top-left corner of a width x height window.
func (s *Spawner) Spawn(width, height float32, velocity physics.Vec2, paletteSize int, now float32) SpawnedObject {
	mx, my := width*s.cfg.Margin, height*s.cfg.Margin
	pos := physics.V(
		mx+width*s.cfg.Jitter*s.rng.Float32(),
		my+height*s.cfg.Jitter*s.rng.Float32(),
	)
	vel := physics.V(
		velocity.X*s.cfg.VelocityScale.Draw(s.rng),
		velocity.Y*s.cfg.VelocityScale.Draw(s.rng),
	)
	color := 0
	if paletteSize > 0 {
		color = s.rng.IntN(paletteSize)
	}
	types := s.Types()
	return SpawnedObject{
		Body:       physics.NewBody(pos, vel),
		ColorIndex: color,
		Type:       types[s.rng.IntN(len(types))],
		Size:       s.cfg.BaseSize * s.cfg.SizeScale.Draw(s.rng),
		SpawnTime:  now,
	}
}
