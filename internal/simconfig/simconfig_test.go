package simconfig

import (
	"os"
	"path/filepath"
	"testing"

	"bounce-demo/internal/physics"
	"bounce-demo/internal/sim"
)

func TestDefaultMatchesSimDefaults(t *testing.T) {
	got, err := Default().Sim()
	if err != nil {
		t.Fatalf("Default().Sim(): %v", err)
	}
	want := sim.DefaultConfig()
	if got.Gravity != want.Gravity || got.Physics != want.Physics || got.TrajectoryCapacity != want.TrajectoryCapacity ||
		got.Spawn != want.Spawn || got.Burst != want.Burst || len(got.Palette) != len(want.Palette) {
		t.Fatalf("Default().Sim() = %+v, want %+v", got, want)
	}
}

func TestLoadMissingFileIsDefault(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Physics.Gravity != 0.35 {
		t.Fatalf("gravity = %v, want default", f.Physics.Gravity)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounce.yaml")
	doc := `
physics:
  gravity: 0.5
  integration: time-scaled
trajectory:
  capacity: 40
particles:
  enabled: true
  limit: 100
  life:
    min: 0.2
    max: 0.4
objects:
  interval: 2
palette: ["#ff0000", "teal"]
seed: 9
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c, err := f.Sim()
	if err != nil {
		t.Fatalf("Sim: %v", err)
	}
	if c.Gravity != 0.5 || c.Integration != physics.TimeScaled || c.TrajectoryCapacity != 40 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if !c.ParticlesEnabled || c.ParticleLimit != 100 || c.Burst.Life.Min != 0.2 || c.Burst.MaxCount != 10 {
		t.Fatalf("particle settings = %+v", c.Burst)
	}
	if c.Spawn.Interval != 2 || c.Spawn.BaseSize != 60 {
		t.Fatalf("spawn settings = %+v", c.Spawn)
	}
	if len(c.Palette) != 2 || c.Palette[0].R != 1 {
		t.Fatalf("palette = %+v", c.Palette)
	}
	if c.Physics.Restitution != 0.92 || c.Width != 800 {
		t.Fatal("omitted keys should keep defaults")
	}
	if f.Seed != 9 {
		t.Fatalf("seed = %d", f.Seed)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":      "physics:\n  gravty: 1\n",
		"bad yaml":         "physics: [\n",
		"bad integration":  "physics:\n  integration: euler\n",
		"empty palette":    "palette: []\n",
		"bad color":        "palette: [\"#zz\"]\n",
		"zero capacity":    "trajectory:\n  capacity: 0\n",
		"inverted speed":   "speed:\n  min: 2\n  max: 1\n",
		"negative gravity": "physics:\n  gravity: -1\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			f, err := Parse([]byte(doc))
			if err != nil {
				return
			}
			if _, err := f.Sim(); err == nil {
				t.Fatalf("expected an error for %q", doc)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if _, err := f.Sim(); err != nil {
		t.Fatalf("Sim: %v", err)
	}
}
