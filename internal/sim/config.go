package sim

import (
	"errors"
	"fmt"

	"bounce-demo/internal/palette"
	"bounce-demo/internal/particles"
	"bounce-demo/internal/physics"
	"bounce-demo/internal/random"
	"bounce-demo/internal/trajectory"
)

// SpawnConfig controls how multi-mode objects are launched and retired.
type SpawnConfig struct {
	Auto          bool        `yaml:"auto"`
	Interval      float32     `yaml:"interval"`       // simulated seconds between auto-launches
	Margin        float32     `yaml:"margin"`         // fraction of width/height from the top-left corner
	Jitter        float32     `yaml:"jitter"`         // extra random fraction added to the margin
	VelocityScale random.Span `yaml:"velocity_scale"` // per-axis multiplier on the initial velocity
	SizeScale     random.Span `yaml:"size_scale"`     // multiplier on BaseSize
	BaseSize      float32     `yaml:"base_size"`
	MaxAge        float32     `yaml:"max_age"` // objects older than this are removed
}

// Config is everything the simulation needs to start. Zero values are not usable;
// start from DefaultConfig.
type Config struct {
	Width           float32
	Height          float32
	Gravity         float32
	InitialVelocity physics.Vec2
	Physics         physics.Params
	Integration     physics.Integration

	Speed    float32
	MinSpeed float32
	MaxSpeed float32

	TrajectoryCapacity int
	TrajectoryMinGap   float32

	Multi bool
	Spawn SpawnConfig

	ParticlesEnabled bool
	ParticleLimit    int
	Burst            particles.Burst

	Palette []palette.Color

	// Cosmetic spin in degrees per simulated second.
	CubeSpin  float32
	BunnySpin float32
}

// DefaultConfig returns the demo's stock settings for an 800x600 window.
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          600,
		Gravity:         0.35,
		InitialVelocity: physics.V(6, -2),
		Physics:         physics.DefaultParams(),
		Integration:     physics.PerFrame,

		Speed:    1,
		MinSpeed: 0.1,
		MaxSpeed: 3,

		TrajectoryCapacity: trajectory.DefaultCapacity,
		TrajectoryMinGap:   trajectory.DefaultMinGap,

		Spawn: SpawnConfig{
			Auto:          true,
			Interval:      1.5,
			Margin:        0.1,
			Jitter:        0.1,
			VelocityScale: random.Span{Min: 0.8, Max: 1.2},
			SizeScale:     random.Span{Min: 0.6, Max: 1.4},
			BaseSize:      60,
			MaxAge:        30,
		},

		ParticleLimit: particles.DefaultLimit,
		Burst:         particles.DefaultBurst(),

		Palette: palette.Default(),

		CubeSpin:  20,
		BunnySpin: 30,
	}
}

// Validate reports every impossible setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %vx%v", c.Width, c.Height))
	}
	if c.Gravity < 0 {
		errs = append(errs, fmt.Errorf("gravity must be >= 0, got %v", c.Gravity))
	}
	if c.Physics.AirResistance <= 0 || c.Physics.AirResistance > 1 {
		errs = append(errs, fmt.Errorf("air resistance must be in (0, 1], got %v", c.Physics.AirResistance))
	}
	if c.Physics.Restitution < 0 || c.Physics.Restitution > 1 {
		errs = append(errs, fmt.Errorf("restitution must be in [0, 1], got %v", c.Physics.Restitution))
	}
	if c.MinSpeed <= 0 || c.MinSpeed > c.MaxSpeed {
		errs = append(errs, fmt.Errorf("speed range [%v, %v] is invalid", c.MinSpeed, c.MaxSpeed))
	}
	if c.TrajectoryCapacity <= 0 {
		errs = append(errs, fmt.Errorf("trajectory capacity must be positive, got %d", c.TrajectoryCapacity))
	}
	if c.TrajectoryMinGap < 0 {
		errs = append(errs, fmt.Errorf("trajectory min gap must be >= 0, got %v", c.TrajectoryMinGap))
	}
	if c.Spawn.Interval <= 0 {
		errs = append(errs, fmt.Errorf("spawn interval must be positive, got %v", c.Spawn.Interval))
	}
	if c.Spawn.BaseSize <= 0 || c.Spawn.SizeScale.Min <= 0 || !c.Spawn.SizeScale.Valid() {
		errs = append(errs, errors.New("spawned object size must be positive"))
	}
	if !c.Spawn.VelocityScale.Valid() {
		errs = append(errs, errors.New("spawn velocity scale range is inverted"))
	}
	if c.Spawn.MaxAge <= 0 {
		errs = append(errs, fmt.Errorf("max age must be positive, got %v", c.Spawn.MaxAge))
	}
	if c.ParticleLimit <= 0 {
		errs = append(errs, fmt.Errorf("particle limit must be positive, got %d", c.ParticleLimit))
	}
	b := c.Burst
	if b.MinCount < 0 || b.MinCount > b.MaxCount {
		errs = append(errs, fmt.Errorf("burst count range [%d, %d] is invalid", b.MinCount, b.MaxCount))
	}
	if !b.VelocityX.Valid() || !b.VelocityY.Valid() || !b.Life.Valid() || !b.Size.Valid() {
		errs = append(errs, errors.New("burst ranges must not be inverted"))
	}
	if b.Life.Min <= 0 {
		errs = append(errs, fmt.Errorf("particle life must be positive, got %v", b.Life.Min))
	}
	if len(c.Palette) == 0 {
		errs = append(errs, errors.New("palette must not be empty"))
	}
	return errors.Join(errs...)
}
