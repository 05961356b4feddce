// Package controls turns key presses and mouse clicks into changes on the simulation
// and the display state. Hosts translate their own key events into Actions.
package controls

import (
	"fmt"

	"bounce-demo/internal/sim"
)

// Action is one user command.
type Action uint8

const (
	None Action = iota
	Quit
	Restart
	NextColor
	ToggleRainbow
	CycleTrajectory
	GravityUp
	GravityDown
	ToggleParticles
	RestoreDefaults
	SelectCube
	SelectSphere
	SelectBunny
	Help
	ToggleShading
	CycleLighting
	ToggleLightFollow
	ToggleMaterial
	NextTexture
	CycleRenderMode
	ZoomIn
	ZoomOut
	ScaleDown
	ScaleUp
	NextBackground
	SpeedUp
	SpeedDown
	Screenshot
	ToggleMode
	Launch
	CycleGrid
	ToggleWireframe
	CycleObject
)

// GravityStep and SpeedStep are the increments the +/- style keys apply.
const (
	GravityStep = 0.1
	SpeedStep   = 0.1
)

var runeActions = map[rune]Action{
	'q': Quit,
	' ': Restart,
	'c': NextColor,
	'C': ToggleRainbow,
	'p': CycleTrajectory,
	'G': GravityUp,
	'g': GravityDown,
	'e': ToggleParticles,
	'r': RestoreDefaults,
	'1': SelectCube,
	'2': SelectSphere,
	'3': SelectBunny,
	'h': Help,
	's': ToggleShading,
	'o': CycleLighting,
	'l': ToggleLightFollow,
	'm': ToggleMaterial,
	'i': NextTexture,
	't': CycleRenderMode,
	'z': ZoomIn,
	'w': ZoomOut,
	'x': ScaleDown,
	'v': ScaleUp,
	'b': NextBackground,
	'+': SpeedUp,
	'=': SpeedUp,
	'-': SpeedDown,
	'n': ToggleMode,
	'k': Launch,
	'y': CycleGrid,
}

// ForRune maps a typed character to its action, or None.
func ForRune(r rune) Action {
	return runeActions[r]
}

// Result tells the host what to do beyond the state changes Apply already made.
type Result struct {
	// Message is the line to log; empty means nothing worth logging.
	Message    string
	Quit       bool
	Screenshot bool
	Help       bool
}

// Apply performs a on the simulation and display state.
func Apply(a Action, s *sim.State, d *Display) Result {
	switch a {
	case Quit:
		return Result{Quit: true}
	case Restart:
		s.Reset()
		return msg("Simulation restarted.")
	case NextColor:
		return msg("Color index: %d", s.NextColor())
	case ToggleRainbow:
		s.SetRainbow(!s.Rainbow())
		return msg("Rainbow mode %s", onOff(s.Rainbow()))
	case CycleTrajectory:
		d.Trajectory = (d.Trajectory + 1) % 3
		return msg("Trajectory mode: %s", Title(d.Trajectory.String()))
	case GravityUp:
		return msg("Gravity: %.2f", s.AdjustGravity(GravityStep))
	case GravityDown:
		return msg("Gravity: %.2f", s.AdjustGravity(-GravityStep))
	case ToggleParticles:
		s.SetParticlesEnabled(!s.ParticlesEnabled())
		return msg("Particle effects %s", onOff(s.ParticlesEnabled()))
	case RestoreDefaults:
		s.RestoreDefaults()
		d.Reset()
		return msg("Reset settings to defaults.")
	case SelectCube:
		d.Object = sim.Cube
		return msg("Switched to Cube")
	case SelectSphere:
		d.Object = sim.Sphere
		return msg("Switched to Sphere")
	case SelectBunny:
		if !d.BunnyAvailable {
			return msg("Bunny not loaded")
		}
		d.Object = sim.Bunny
		return msg("Switched to Bunny")
	case Help:
		return Result{Help: true}
	case ToggleShading:
		d.Gouraud = !d.Gouraud
		return msg("Shading: %s", Title(d.ShadingName()))
	case CycleLighting:
		return cycleLighting(d)
	case ToggleLightFollow:
		d.LightFollow = !d.LightFollow
		if d.LightFollow {
			return msg("Light movement: Follows object")
		}
		return msg("Light movement: Fixed")
	case ToggleMaterial:
		d.Metallic = !d.Metallic
		return msg("Material: %s", Title(d.MaterialName()))
	case NextTexture:
		if d.Textures == 0 {
			return msg("No textures loaded")
		}
		d.Texture = (d.Texture + 1) % d.Textures
		return msg("Texture: %d", d.Texture)
	case CycleRenderMode:
		d.RenderMode = (d.RenderMode + 1) % 3
		return msg("Render Mode: %s", Title(d.RenderMode.String()))
	case ZoomIn:
		d.Zoom = min(d.Zoom+step, MaxZoom)
		return msg("Zoom: %.1f", d.Zoom)
	case ZoomOut:
		d.Zoom = max(d.Zoom-step, MinZoom)
		return msg("Zoom: %.1f", d.Zoom)
	case ScaleDown:
		d.Scale = max(d.Scale-step, MinScale)
		return msg("Object scale: %.1fx", d.Scale)
	case ScaleUp:
		d.Scale = min(d.Scale+step, MaxScale)
		return msg("Object scale: %.1fx", d.Scale)
	case NextBackground:
		d.Background = (d.Background + 1) % len(Backgrounds)
		return msg("Background color changed")
	case SpeedUp:
		return msg("Simulation speed: %.1fx", s.AdjustSpeed(SpeedStep))
	case SpeedDown:
		return msg("Simulation speed: %.1fx", s.AdjustSpeed(-SpeedStep))
	case Screenshot:
		return Result{Screenshot: true}
	case ToggleMode:
		s.SetMode(!s.Multi())
		if s.Multi() {
			return msg("Multiple objects mode ON")
		}
		return msg("Multiple objects mode OFF")
	case Launch:
		o, ok := s.Spawn()
		if !ok {
			return msg("Launching needs multiple objects mode (press n)")
		}
		return msg("Launched %s at (%.0f, %.0f)", o.Type, o.Position.X, o.Position.Y)
	case CycleGrid:
		d.Grid = (d.Grid + 1) % 3
		return msg("Grid: %s", Title(d.Grid.String()))
	case ToggleWireframe:
		d.Wireframe = !d.Wireframe
		if d.Wireframe {
			return msg("Drawing mode: Wireframe")
		}
		return msg("Drawing mode: Solid")
	case CycleObject:
		switch {
		case d.Object == sim.Cube:
			d.Object = sim.Sphere
		case d.Object == sim.Sphere && d.BunnyAvailable:
			d.Object = sim.Bunny
		default:
			d.Object = sim.Cube
		}
		return msg("Object type: %s", Title(d.Object.String()))
	}
	return Result{}
}

func cycleLighting(d *Display) Result {
	var r Result
	switch d.lighting {
	case 0:
		d.Ambient = !d.Ambient
		r = msg("Ambient: %s", onOff(d.Ambient))
	case 1:
		d.Diffuse = !d.Diffuse
		r = msg("Diffuse: %s", onOff(d.Diffuse))
	default:
		d.Specular = !d.Specular
		r = msg("Specular: %s", onOff(d.Specular))
	}
	d.lighting = (d.lighting + 1) % 3
	return r
}

func msg(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
