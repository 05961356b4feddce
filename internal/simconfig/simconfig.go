// Package simconfig loads the simulation settings from config/bounce.yaml.
// Every key is optional; anything left out keeps the built-in default.
package simconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"bounce-demo/internal/palette"
	"bounce-demo/internal/particles"
	"bounce-demo/internal/physics"
	"bounce-demo/internal/sim"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default settings file, relative to the working directory.
const ConfigPath = "config/bounce.yaml"

type Window struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type Physics struct {
	Gravity         float32      `yaml:"gravity"`
	AirResistance   float32      `yaml:"air_resistance"`
	Restitution     float32      `yaml:"restitution"`
	RestEpsilon     float32      `yaml:"rest_epsilon"`
	RestEnergy      float32      `yaml:"rest_energy"`
	Integration     string       `yaml:"integration"`
	InitialVelocity physics.Vec2 `yaml:"initial_velocity"`
}

type Speed struct {
	Initial float32 `yaml:"initial"`
	Min     float32 `yaml:"min"`
	Max     float32 `yaml:"max"`
}

type Trajectory struct {
	Capacity int     `yaml:"capacity"`
	MinGap   float32 `yaml:"min_gap"`
}

type Objects struct {
	Multi           bool    `yaml:"multi"`
	sim.SpawnConfig `yaml:",inline"`
	CubeSpin        float32 `yaml:"cube_spin"`
	BunnySpin       float32 `yaml:"bunny_spin"`
}

type Particles struct {
	Enabled         bool `yaml:"enabled"`
	Limit           int  `yaml:"limit"`
	particles.Burst `yaml:",inline"`
}

// File mirrors the YAML document.
type File struct {
	Window     Window     `yaml:"window"`
	Physics    Physics    `yaml:"physics"`
	Speed      Speed      `yaml:"speed"`
	Trajectory Trajectory `yaml:"trajectory"`
	Objects    Objects    `yaml:"objects"`
	Particles  Particles  `yaml:"particles"`
	// Palette entries are "#rrggbb", "#rrggbbaa" or CSS color names. Omitted means the
	// built-in eight colors.
	Palette []string `yaml:"palette"`
	// Seed 0 picks a time-based seed.
	Seed uint64 `yaml:"seed"`
}

// Default returns the settings that apply when no file is present.
func Default() File {
	c := sim.DefaultConfig()
	return File{
		Window: Window{Width: c.Width, Height: c.Height},
		Physics: Physics{
			Gravity:         c.Gravity,
			AirResistance:   c.Physics.AirResistance,
			Restitution:     c.Physics.Restitution,
			RestEpsilon:     c.Physics.RestEpsilon,
			RestEnergy:      c.Physics.RestEnergy,
			Integration:     c.Integration.String(),
			InitialVelocity: c.InitialVelocity,
		},
		Speed:      Speed{Initial: c.Speed, Min: c.MinSpeed, Max: c.MaxSpeed},
		Trajectory: Trajectory{Capacity: c.TrajectoryCapacity, MinGap: c.TrajectoryMinGap},
		Objects: Objects{
			Multi:       c.Multi,
			SpawnConfig: c.Spawn,
			CubeSpin:    c.CubeSpin,
			BunnySpin:   c.BunnySpin,
		},
		Particles: Particles{
			Enabled: c.ParticlesEnabled,
			Limit:   c.ParticleLimit,
			Burst:   c.Burst,
		},
	}
}

// Parse decodes data on top of Default. Unknown keys are rejected so typos do not
// silently fall back to defaults. Empty input yields Default.
func Parse(data []byte) (File, error) {
	f := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("parse settings: %w", err)
	}
	return f, nil
}

// Load reads and parses path. A missing file is not an error: Default is returned.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read settings %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Sim converts the file into a validated simulation config.
func (f File) Sim() (sim.Config, error) {
	mode, err := physics.ParseIntegration(f.Physics.Integration)
	if err != nil {
		return sim.Config{}, err
	}
	colors := palette.Default()
	if f.Palette != nil {
		colors = make([]palette.Color, 0, len(f.Palette))
		for i, s := range f.Palette {
			c, err := palette.Parse(s)
			if err != nil {
				return sim.Config{}, fmt.Errorf("palette[%d]: %w", i, err)
			}
			colors = append(colors, c)
		}
	}
	c := sim.Config{
		Width:           f.Window.Width,
		Height:          f.Window.Height,
		Gravity:         f.Physics.Gravity,
		InitialVelocity: f.Physics.InitialVelocity,
		Physics: physics.Params{
			AirResistance: f.Physics.AirResistance,
			Restitution:   f.Physics.Restitution,
			RestEpsilon:   f.Physics.RestEpsilon,
			RestEnergy:    f.Physics.RestEnergy,
		},
		Integration:        mode,
		Speed:              f.Speed.Initial,
		MinSpeed:           f.Speed.Min,
		MaxSpeed:           f.Speed.Max,
		TrajectoryCapacity: f.Trajectory.Capacity,
		TrajectoryMinGap:   f.Trajectory.MinGap,
		Multi:              f.Objects.Multi,
		Spawn:              f.Objects.SpawnConfig,
		ParticlesEnabled:   f.Particles.Enabled,
		ParticleLimit:      f.Particles.Limit,
		Burst:              f.Particles.Burst,
		Palette:            colors,
		CubeSpin:           f.Objects.CubeSpin,
		BunnySpin:          f.Objects.BunnySpin,
	}
	if err := c.Validate(); err != nil {
		return sim.Config{}, fmt.Errorf("invalid settings: %w", err)
	}
	return c, nil
}
