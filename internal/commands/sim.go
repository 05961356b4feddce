package commands

import (
	"flag"
	"fmt"
	"math"
	"strings"

	"bounce-demo/internal/controls"
	"bounce-demo/internal/physics"
	"bounce-demo/internal/sim"
)

const maxSpawnCount = 50

// RegisterSimCommands registers the simulation commands typed in the terminal as
// "cmd <name> [flags]". Every command reports what it did through log.
func RegisterSimCommands(reg *Registry, s *sim.State, d *controls.Display, log func(string)) {
	reg.RegisterFunc("gravity", func(fs *flag.FlagSet) func() error {
		delta := fs.Float64("delta", 0, "add to the gravity strength")
		set := fs.Float64("set", math.NaN(), "set the gravity strength")
		return func() error {
			if !math.IsNaN(*set) {
				s.SetGravity(float32(*set))
			}
			s.AdjustGravity(float32(*delta))
			log(fmt.Sprintf("Gravity: %.2f", s.Gravity()))
			return nil
		}
	})
	reg.RegisterFunc("speed", func(fs *flag.FlagSet) func() error {
		delta := fs.Float64("delta", 0, "add to the speed multiplier")
		set := fs.Float64("set", math.NaN(), "set the speed multiplier")
		return func() error {
			if !math.IsNaN(*set) {
				s.SetSpeed(float32(*set))
			}
			s.AdjustSpeed(float32(*delta))
			log(fmt.Sprintf("Simulation speed: %.1fx", s.Speed()))
			return nil
		}
	})
	reg.RegisterFunc("mode", func(fs *flag.FlagSet) func() error {
		multi := fs.Bool("multi", false, "multiple objects mode")
		return func() error {
			s.SetMode(*multi)
			log("Multiple objects mode " + onOff(s.Multi()))
			return nil
		}
	})
	reg.RegisterFunc("spawn", func(fs *flag.FlagSet) func() error {
		count := fs.Int("count", 1, "objects to launch")
		return func() error {
			if !s.Multi() {
				return fmt.Errorf("spawn: needs multiple objects mode (cmd mode --multi)")
			}
			n := min(max(*count, 1), maxSpawnCount)
			for i := 0; i < n; i++ {
				s.Spawn()
			}
			log(fmt.Sprintf("Launched %d object(s)", n))
			return nil
		}
	})
	reg.RegisterFunc("auto", func(fs *flag.FlagSet) func() error {
		on := fs.Bool("on", true, "launch objects on a timer in multiple objects mode")
		return func() error {
			s.SetAutoSpawn(*on)
			log("Auto launch " + onOff(s.AutoSpawn()))
			return nil
		}
	})
	reg.RegisterFunc("particles", func(fs *flag.FlagSet) func() error {
		on := fs.Bool("on", true, "particle effects")
		return func() error {
			s.SetParticlesEnabled(*on)
			log("Particle effects " + onOff(s.ParticlesEnabled()))
			return nil
		}
	})
	reg.RegisterFunc("color", func(fs *flag.FlagSet) func() error {
		index := fs.Int("index", -1, "palette index")
		rainbow := fs.Bool("rainbow", false, "cycle hues")
		return func() error {
			if *index >= 0 {
				s.SetColorIndex(*index)
			}
			s.SetRainbow(*rainbow)
			log(fmt.Sprintf("Color index: %d, rainbow %s", s.ColorIndex(), onOff(s.Rainbow())))
			return nil
		}
	})
	reg.RegisterFunc("integration", func(fs *flag.FlagSet) func() error {
		mode := fs.String("mode", "per-frame", "per-frame or time-scaled")
		return func() error {
			m, err := physics.ParseIntegration(*mode)
			if err != nil {
				return err
			}
			s.SetIntegration(m)
			log("Integration: " + m.String())
			return nil
		}
	})
	reg.RegisterFunc("reset", func(fs *flag.FlagSet) func() error {
		return func() error {
			log(controls.Apply(controls.Restart, s, d).Message)
			return nil
		}
	})
	reg.RegisterFunc("defaults", func(fs *flag.FlagSet) func() error {
		return func() error {
			log(controls.Apply(controls.RestoreDefaults, s, d).Message)
			return nil
		}
	})
	reg.RegisterFunc("status", func(fs *flag.FlagSet) func() error {
		return func() error {
			log(Status(s))
			return nil
		}
	})
	reg.RegisterFunc("help", func(fs *flag.FlagSet) func() error {
		return func() error {
			log("Commands: " + strings.Join(reg.Names(), ", "))
			return nil
		}
	})
}

// Status is a one-line summary of the simulation.
func Status(s *sim.State) string {
	mode := "single"
	if s.Multi() {
		mode = "multi"
	}
	p := s.Position()
	return fmt.Sprintf("t=%.1fs mode=%s speed=%.1fx gravity=%.2f objects=%d particles=%d/%d trail=%d pos=(%.0f, %.0f) %s",
		s.Time(), mode, s.Speed(), s.Gravity(), len(s.Objects()), len(s.Particles()), s.ParticleLimit(), s.Trajectory().Len(), p.X, p.Y, s.Integration())
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
