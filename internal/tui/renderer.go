// Package tui draws the simulation on a character terminal with tcell.
package tui

import (
	"fmt"

	"bounce-demo/internal/controls"
	"bounce-demo/internal/palette"
	"bounce-demo/internal/physics"
	"bounce-demo/internal/sim"
	"bounce-demo/internal/trajectory"
	"bounce-demo/internal/viewport"

	"github.com/gdamore/tcell/v2"
)

// Glyphs used for each drawable.
const (
	FloorRune    = '▁'
	WallRune     = '│'
	TrailRune    = '·'
	StrobeRune   = '∘'
	ParticleRune = '*'
)

// objectRunes maps an object type to its glyph.
var objectRunes = map[sim.ObjectType]rune{
	sim.Cube:   '■',
	sim.Sphere: '●',
	sim.Bunny:  '@',
}

// Renderer draws a State onto a tcell.Screen. The last row is the status line.
type Renderer struct {
	screen  tcell.Screen
	message string
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// SetMessage sets the text shown after the status fields until replaced.
func (r *Renderer) SetMessage(m string) { r.message = m }

// Message returns the current status message.
func (r *Renderer) Message() string { return r.message }

// Grid returns the cell mapping for the playfield: every row but the status line.
func (r *Renderer) Grid(s *sim.State) viewport.Grid {
	cols, rows := r.screen.Size()
	w, h := s.WindowSize()
	return viewport.Grid{Viewport: viewport.New(w, h), Cols: cols, Rows: max(rows-1, 0)}
}

// Draw renders one frame and shows it.
func (r *Renderer) Draw(s *sim.State, d controls.Display) {
	r.screen.Clear()
	g := r.Grid(s)
	bg := tcell.StyleDefault.Background(toTcell(d.BackgroundColor()))
	r.fill(g, bg)

	r.drawBounds(s, g, bg)
	r.drawTrajectory(s, d, g, bg)
	for _, p := range s.Particles() {
		r.put(g, p.Position, ParticleRune, bg.Foreground(toTcell(p.Color)))
	}
	if s.Multi() {
		for _, o := range s.Objects() {
			r.put(g, o.Position, objectRunes[o.Type], bg.Foreground(toTcell(s.PaletteColor(o.ColorIndex))))
		}
	} else {
		r.put(g, s.Position(), objectRunes[d.Object], bg.Foreground(toTcell(s.Color())).Bold(true))
	}
	r.drawStatus(s, d)
	r.screen.Show()
}

func (r *Renderer) fill(g viewport.Grid, style tcell.Style) {
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *Renderer) drawBounds(s *sim.State, g viewport.Grid, bg tcell.Style) {
	if g.Rows == 0 || g.Cols == 0 {
		return
	}
	b := s.Bounds()
	style := bg.Foreground(tcell.ColorGray)
	floor := g.Row(b.Floor)
	left, right := g.Col(b.Left), g.Col(b.Right)
	for x := left; x <= right; x++ {
		r.screen.SetContent(x, floor, FloorRune, nil, style)
	}
	for y := 0; y < floor; y++ {
		r.screen.SetContent(left, y, WallRune, nil, style)
		r.screen.SetContent(right, y, WallRune, nil, style)
	}
}

func (r *Renderer) drawTrajectory(s *sim.State, d controls.Display, g viewport.Grid, bg tcell.Style) {
	if d.Trajectory == controls.TrajectoryNone || s.Multi() {
		return
	}
	trail := s.Trajectory()
	n := trail.Len()
	c := s.Color()
	if d.Trajectory == controls.TrajectoryLine {
		for i := 0; i < n; i++ {
			// Older samples fade toward the background.
			fade := float32(i+1) / float32(n)
			faded := palette.Color{R: c.R * fade, G: c.G * fade, B: c.B * fade, A: 1}
			r.put(g, trail.At(i).Position, TrailRune, bg.Foreground(toTcell(faded)))
		}
		return
	}
	for _, gh := range trajectory.Ghosts(n, true) {
		faded := palette.Color{R: c.R * gh.Alpha, G: c.G * gh.Alpha, B: c.B * gh.Alpha, A: 1}
		r.put(g, trail.At(gh.Index).Position, StrobeRune, bg.Foreground(toTcell(faded)))
	}
}

func (r *Renderer) drawStatus(s *sim.State, d controls.Display) {
	cols, rows := r.screen.Size()
	if rows == 0 {
		return
	}
	line := StatusLine(s, d)
	if r.message != "" {
		line += " | " + r.message
	}
	style := tcell.StyleDefault.Reverse(true)
	y := rows - 1
	x := 0
	for _, ch := range line {
		if x >= cols {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	for ; x < cols; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (r *Renderer) put(g viewport.Grid, p physics.Vec2, ch rune, style tcell.Style) {
	col, row, ok := g.Cell(p)
	if !ok {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

// StatusLine summarizes the simulation for the bottom row.
func StatusLine(s *sim.State, d controls.Display) string {
	mode := "Single"
	count := 1
	if s.Multi() {
		mode = "Multi"
		count = len(s.Objects())
	}
	return fmt.Sprintf("%s %s x%d | t=%.1fs speed=%.1fx g=%.2f | particles %d | trail %s",
		mode, controls.Title(d.Object.String()), count, s.Time(), s.Speed(), s.Gravity(),
		len(s.Particles()), controls.Title(d.Trajectory.String()))
}

func toTcell(c palette.Color) tcell.Color {
	rgba := c.RGBA8()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
