package sim

import (
	"fmt"

	"bounce-demo/internal/particles"
	"bounce-demo/internal/physics"
	"bounce-demo/internal/trajectory"

	"github.com/jinzhu/copier"
)

// Snapshot is a self-contained copy of the simulation, safe to hand to other goroutines.
type Snapshot struct {
	Time             float32              `json:"time"`
	Multi            bool                 `json:"multi"`
	Speed            float32              `json:"speed"`
	Gravity          float32              `json:"gravity"`
	Integration      string               `json:"integration"`
	ParticlesEnabled bool                 `json:"particles_enabled"`
	ColorIndex       int                  `json:"color_index"`
	Width            float32              `json:"width"`
	Height           float32              `json:"height"`
	Bounds           physics.Bounds       `json:"bounds"`
	Tracked          physics.Body         `json:"tracked"`
	Objects          []SpawnedObject      `json:"objects"`
	Particles        []particles.Particle `json:"particles"`
	Trajectory       []trajectory.Sample  `json:"trajectory"`
	Bounces          []BounceEvent        `json:"bounces"`
}

// Snapshot deep-copies the current state. Nothing in the result aliases live slices.
func (s *State) Snapshot() (Snapshot, error) {
	view := Snapshot{
		Time:             s.time,
		Multi:            s.multi,
		Speed:            s.speed,
		Gravity:          s.gravity,
		Integration:      s.integration.String(),
		ParticlesEnabled: s.particlesOn,
		ColorIndex:       s.colorIndex,
		Width:            s.width,
		Height:           s.height,
		Bounds:           s.world.Bounds,
		Tracked:          s.tracked,
		Objects:          s.objects,
		Particles:        s.pool.Particles,
		Trajectory:       s.trail.AppendTo(nil),
		Bounces:          s.bounces,
	}
	var out Snapshot
	if err := copier.CopyWithOption(&out, &view, copier.Option{DeepCopy: true}); err != nil {
		return Snapshot{}, fmt.Errorf("copy snapshot: %w", err)
	}
	return out, nil
}
