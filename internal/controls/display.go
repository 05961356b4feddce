package controls

import (
	"strings"

	"bounce-demo/internal/engineconfig"
	"bounce-demo/internal/palette"
	"bounce-demo/internal/sim"
)

// RenderMode is how objects are drawn.
type RenderMode uint8

const (
	RenderWireframe RenderMode = iota
	RenderShading
	RenderTexture
)

var renderModeNames = [...]string{"wireframe", "shading", "texture"}

func (m RenderMode) String() string { return enumName(renderModeNames[:], int(m)) }

// TrajectoryMode is how the tracked object's trail is drawn.
type TrajectoryMode uint8

const (
	TrajectoryNone TrajectoryMode = iota
	TrajectoryLine
	TrajectoryStrobe
)

var trajectoryModeNames = [...]string{"none", "line", "strobe"}

func (m TrajectoryMode) String() string { return enumName(trajectoryModeNames[:], int(m)) }

// GridMode selects the background grid density.
type GridMode uint8

const (
	GridNone GridMode = iota
	GridBasic
	GridDetailed
)

var gridModeNames = [...]string{"none", "basic", "detailed"}

func (m GridMode) String() string { return enumName(gridModeNames[:], int(m)) }

// GridExtent is the half-size of the grid in world units.
const GridExtent = 10

// Lines returns the world coordinates of the grid lines along one axis, or nil for GridNone.
func (m GridMode) Lines() []float32 {
	spacing := 0
	switch m {
	case GridBasic:
		spacing = 2
	case GridDetailed:
		spacing = 1
	default:
		return nil
	}
	out := make([]float32, 0, 2*GridExtent/spacing+1)
	for v := -GridExtent; v <= GridExtent; v += spacing {
		out = append(out, float32(v))
	}
	return out
}

func enumName(names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return "unknown"
}

func parseEnum(names []string, s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, true
		}
	}
	return 0, false
}

// Backgrounds is the cycle of clear colors.
var Backgrounds = []palette.Color{
	{R: 0.1, G: 0.1, B: 0.1, A: 1},    // dark gray
	{R: 0.05, G: 0.05, B: 0.15, A: 1}, // dark blue
	{R: 0.15, G: 0.05, B: 0.05, A: 1}, // dark red
	{R: 0.05, G: 0.15, B: 0.05, A: 1}, // dark green
	{R: 0.15, G: 0.15, B: 0.05, A: 1}, // dark yellow
}

// Zoom and object scale limits.
const (
	MinZoom  = 0.2
	MaxZoom  = 3.0
	MinScale = 0.5
	MaxScale = 2.0
	step     = 0.1
)

// Display is the presentation state the input layer toggles. The simulation never reads it.
type Display struct {
	Object      sim.ObjectType
	Wireframe   bool
	RenderMode  RenderMode
	Trajectory  TrajectoryMode
	Gouraud     bool
	Ambient     bool
	Diffuse     bool
	Specular    bool
	LightFollow bool
	Metallic    bool
	Zoom        float32
	Scale       float32
	Background  int
	Grid        GridMode
	Texture     int

	// Textures is how many textures the host loaded; NextTexture cycles within it.
	Textures int
	// BunnyAvailable gates selecting the bunny mesh.
	BunnyAvailable bool

	lighting int // next lighting component 'o' toggles
}

// DefaultDisplay returns a sphere drawn solid with Phong shading and every light term on.
func DefaultDisplay() Display {
	return Display{
		Object:     sim.Sphere,
		RenderMode: RenderShading,
		Trajectory: TrajectoryNone,
		Ambient:    true,
		Diffuse:    true,
		Specular:   true,
		Zoom:       1,
		Scale:      1,
		Grid:       GridNone,
	}
}

// DisplayFromPrefs starts from DefaultDisplay and applies the saved preferences.
// Unknown enum names keep the default.
func DisplayFromPrefs(p engineconfig.EnginePrefs) Display {
	d := DefaultDisplay()
	if i, ok := parseEnum(gridModeNames[:], p.GridMode); ok {
		d.Grid = GridMode(i)
	}
	if i, ok := parseEnum(renderModeNames[:], p.RenderMode); ok {
		d.RenderMode = RenderMode(i)
	}
	if i, ok := parseEnum(trajectoryModeNames[:], p.Trajectory); ok {
		d.Trajectory = TrajectoryMode(i)
	}
	d.Gouraud = strings.EqualFold(p.Shading, "gouraud")
	d.Metallic = p.Metallic
	d.LightFollow = p.LightFollow
	return d
}

// ApplyTo copies the persisted display fields into p.
func (d Display) ApplyTo(p *engineconfig.EnginePrefs) {
	p.GridMode = d.Grid.String()
	p.RenderMode = d.RenderMode.String()
	p.Trajectory = d.Trajectory.String()
	p.Shading = d.ShadingName()
	p.Metallic = d.Metallic
	p.LightFollow = d.LightFollow
}

// ShadingName returns "phong" or "gouraud".
func (d Display) ShadingName() string {
	if d.Gouraud {
		return "gouraud"
	}
	return "phong"
}

// MaterialName returns "metallic" or "plastic".
func (d Display) MaterialName() string {
	if d.Metallic {
		return "metallic"
	}
	return "plastic"
}

// BackgroundColor returns the current clear color.
func (d Display) BackgroundColor() palette.Color {
	return Backgrounds[d.Background%len(Backgrounds)]
}

// Reset puts the display back to defaults, keeping what the host detected
// (texture count and bunny availability).
func (d *Display) Reset() {
	textures, bunny := d.Textures, d.BunnyAvailable
	*d = DefaultDisplay()
	d.Textures, d.BunnyAvailable = textures, bunny
}
