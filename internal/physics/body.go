package physics

// Body is a point mass moving in window-pixel space.
// Used both for the single tracked object and for each spawned object; size and
// appearance live with the owner, the body only carries kinematics.
type Body struct {
	Position Vec2 `json:"position"`
	Velocity Vec2 `json:"velocity"`
}

// NewBody returns a body at position moving with velocity.
func NewBody(position, velocity Vec2) Body {
	return Body{
		Position: position,
		Velocity: velocity,
	}
}
