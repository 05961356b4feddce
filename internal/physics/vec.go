package physics

import "github.com/chewxy/math32"

// Vec2 is a point or direction in window-pixel space. X grows to the right, Y grows downward.
type Vec2 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length.
func (v Vec2) Len() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float32 {
	return v.Sub(o).Len()
}

// Manhattan returns |X| + |Y|. Used as the cheap "energy" measure for resting objects.
func (v Vec2) Manhattan() float32 {
	return math32.Abs(v.X) + math32.Abs(v.Y)
}
