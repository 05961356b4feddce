// Package viewport maps the simulation's window-pixel space onto render targets:
// the 3D scene plane (world units) and terminal character cells.
package viewport

import "bounce-demo/internal/physics"

// World half-extents of the z=0 plane the camera frames.
const (
	HalfWidth  = 10
	HalfHeight = 7.5
	// SizeScale converts a pixel size into world units.
	SizeScale = 0.01
)

// Viewport is a window of Width x Height pixels.
type Viewport struct {
	Width  float32
	Height float32
}

func New(width, height float32) Viewport {
	return Viewport{Width: width, Height: height}
}

// ToWorld maps a pixel position to the scene plane. Pixel (0,0) is the top-left corner
// and maps to (-HalfWidth, HalfHeight); world Y grows upward.
func (v Viewport) ToWorld(p physics.Vec2) (x, y float32) {
	if v.Width <= 0 || v.Height <= 0 {
		return 0, 0
	}
	ndcX := 2*p.X/v.Width - 1
	ndcY := 1 - 2*p.Y/v.Height
	return ndcX * HalfWidth, ndcY * HalfHeight
}

// WorldSize converts a pixel size into world units.
func WorldSize(size float32) float32 {
	return size * SizeScale
}

// Grid maps pixel space onto a cols x rows character grid.
type Grid struct {
	Viewport
	Cols, Rows int
}

// Cell returns the cell containing p and whether it lies inside the grid.
func (g Grid) Cell(p physics.Vec2) (col, row int, ok bool) {
	if g.Width <= 0 || g.Height <= 0 || g.Cols <= 0 || g.Rows <= 0 {
		return 0, 0, false
	}
	fc := p.X / g.Width * float32(g.Cols)
	fr := p.Y / g.Height * float32(g.Rows)
	if fc < 0 || fr < 0 {
		return 0, 0, false
	}
	col, row = int(fc), int(fr)
	if col >= g.Cols || row >= g.Rows {
		return col, row, false
	}
	return col, row, true
}

// Row returns the row a pixel Y coordinate falls in, clamped to the grid.
func (g Grid) Row(y float32) int {
	if g.Height <= 0 || g.Rows <= 0 {
		return 0
	}
	r := int(y / g.Height * float32(g.Rows))
	return min(max(r, 0), g.Rows-1)
}

// Col returns the column a pixel X coordinate falls in, clamped to the grid.
func (g Grid) Col(x float32) int {
	if g.Width <= 0 || g.Cols <= 0 {
		return 0
	}
	c := int(x / g.Width * float32(g.Cols))
	return min(max(c, 0), g.Cols-1)
}
