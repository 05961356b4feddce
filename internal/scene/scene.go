package scene

import (
	"bounce-demo/internal/controls"
	"bounce-demo/internal/palette"
	"bounce-demo/internal/physics"
	"bounce-demo/internal/primitives"
	"bounce-demo/internal/sim"
	"bounce-demo/internal/trajectory"
	"bounce-demo/internal/viewport"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridAlpha      = 90
	trailLineAlpha = 128
	// bunnyScale shrinks the bunny model to roughly the size of the other meshes.
	bunnyScale = 0.15
	// particleRings is the mesh resolution of a spark.
	particleRings = 6
)

// worldLight is the direction to the light in world space.
var worldLight = [3]float32{0.5, 1, 0.75}

var (
	gridColor  = rl.NewColor(77, 77, 77, gridAlpha)
	trailColor = rl.NewColor(179, 179, 179, trailLineAlpha)
)

// Scene holds a fixed perspective camera looking down -Z at the z=0 plane the
// objects move in, and draws the simulation with a primitives registry.
type Scene struct {
	Camera rl.Camera3D
	reg    *primitives.Registry
}

// New returns a scene with the camera at (0,0,15) looking at the origin, fovy 45°.
func New(reg *primitives.Registry) *Scene {
	s := &Scene{reg: reg}
	s.Camera.Position = rl.NewVector3(0, 0, 15)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// Draw renders one frame of the simulation. Call between BeginDrawing and EndDrawing,
// after clearing the background.
func (sc *Scene) Draw(s *sim.State, d controls.Display) {
	pos := sc.Camera.Position
	sc.reg.SetView([3]float32{pos.X, pos.Y, pos.Z}, worldLight)
	material := primitives.Plastic
	if d.Metallic {
		material = primitives.Metallic
	}
	sc.reg.SetLighting(primitives.Lighting{
		Gouraud:  d.Gouraud,
		Ambient:  d.Ambient,
		Diffuse:  d.Diffuse,
		Specular: d.Specular,
		Follow:   d.LightFollow,
		Material: material,
	})

	w, h := s.WindowSize()
	vp := viewport.New(w, h)
	cube, bunny := s.Spin()
	spin := spinAngles{cube: cube, bunny: bunny}

	rl.BeginMode3D(sc.Camera)
	drawGrid(d.Grid, d.Zoom)
	if s.Multi() {
		for _, o := range s.Objects() {
			c := s.PaletteColor(o.ColorIndex)
			sc.drawObject(vp, o.Type, o.Position, o.Size*d.Scale, c, d, spin)
		}
	} else {
		sc.drawTrajectory(s, vp, d, spin)
		size := s.Config().Spawn.BaseSize * d.Scale
		sc.drawObject(vp, d.Object, s.Position(), size, s.Color(), d, spin)
	}
	drawParticles(s, vp, d.Zoom)
	rl.EndMode3D()
}

type spinAngles struct {
	cube, bunny float32
}

// ObjectTransform builds the model matrix for an object of pixel size at world
// (x, y): spin, size, then position, all scaled by zoom.
func ObjectTransform(kind sim.ObjectType, x, y, size, zoom float32, cubeSpin, bunnySpin float32) rl.Matrix {
	s := viewport.WorldSize(size)
	var m rl.Matrix
	switch kind {
	case sim.Cube:
		m = rl.MatrixMultiply(rl.MatrixRotateZ(10*rl.Deg2rad), rl.MatrixRotateX(20*rl.Deg2rad))
		m = rl.MatrixMultiply(m, rl.MatrixRotateY(cubeSpin*rl.Deg2rad))
	case sim.Bunny:
		m = rl.MatrixMultiply(rl.MatrixRotateX(90*rl.Deg2rad), rl.MatrixRotateY(bunnySpin*rl.Deg2rad))
		s *= bunnyScale
	default:
		m = rl.MatrixIdentity()
	}
	m = rl.MatrixMultiply(m, rl.MatrixScale(s, s, s))
	m = rl.MatrixMultiply(m, rl.MatrixTranslate(x, y, 0))
	return rl.MatrixMultiply(m, rl.MatrixScale(zoom, zoom, zoom))
}

func (sc *Scene) drawObject(vp viewport.Viewport, kind sim.ObjectType, p physics.Vec2, size float32, c palette.Color, d controls.Display, spin spinAngles) {
	x, y := vp.ToWorld(p)
	m := ObjectTransform(kind, x, y, size, d.Zoom, spin.cube, spin.bunny)
	sc.reg.Draw(kind.String(), m, toRL(c), styleFor(d))
}

func styleFor(d controls.Display) primitives.Style {
	st := primitives.Style{Texture: -1}
	switch d.RenderMode {
	case controls.RenderWireframe:
		st.Wireframe = true
	case controls.RenderShading:
		st.Wireframe = d.Wireframe
	case controls.RenderTexture:
		st.Texture = d.Texture
	}
	return st
}

// drawTrajectory draws the trail line (line mode) and the faded copies along it.
func (sc *Scene) drawTrajectory(s *sim.State, vp viewport.Viewport, d controls.Display, spin spinAngles) {
	if d.Trajectory == controls.TrajectoryNone {
		return
	}
	trail := s.Trajectory()
	n := trail.Len()
	if n < 2 {
		return
	}
	if d.Trajectory == controls.TrajectoryLine {
		var prev rl.Vector3
		for i := 0; i < n; i++ {
			x, y := vp.ToWorld(trail.At(i).Position)
			cur := rl.NewVector3(x*d.Zoom, y*d.Zoom, 0)
			if i > 0 {
				rl.DrawLine3D(prev, cur, trailColor)
			}
			prev = cur
		}
	}

	base := s.Config().Spawn.BaseSize
	for _, g := range trajectory.Ghosts(n, d.Trajectory == controls.TrajectoryStrobe) {
		c := s.Color().WithAlpha(g.Alpha)
		if s.Rainbow() {
			c = palette.Rainbow(g.Age)
		}
		sc.drawObject(vp, d.Object, trail.At(g.Index).Position, base*g.SizeFactor, c, d, spin)
	}
}

func drawGrid(mode controls.GridMode, zoom float32) {
	lines := mode.Lines()
	if lines == nil {
		return
	}
	ext := float32(controls.GridExtent) * zoom
	for _, v := range lines {
		v *= zoom
		rl.DrawLine3D(rl.NewVector3(-ext, v, 0), rl.NewVector3(ext, v, 0), gridColor)
		rl.DrawLine3D(rl.NewVector3(v, -ext, 0), rl.NewVector3(v, ext, 0), gridColor)
	}
}

func drawParticles(s *sim.State, vp viewport.Viewport, zoom float32) {
	for _, p := range s.Particles() {
		x, y := vp.ToWorld(p.Position)
		r := viewport.WorldSize(p.Size) * zoom
		rl.DrawSphereEx(rl.NewVector3(x*zoom, y*zoom, 0), r, particleRings, particleRings, toRL(p.Color))
	}
}

func toRL(c palette.Color) rl.Color {
	rgba := c.RGBA8()
	return rl.NewColor(rgba.R, rgba.G, rgba.B, rgba.A)
}
