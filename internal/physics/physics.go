// Package physics provides kinematic bodies, rectangle overlap tests and
// play-field boundary handling.
package physics

// Body is an axis-aligned rectangle with velocity and acceleration.
// X, Y is the top-left corner; Width and Height must be positive.
type Body struct {
	X, Y          float64 // Position (top-left)
	Width, Height float64 // Size
	DX, DY        float64 // Velocity per tick
	AX, AY        float64 // Acceleration per tick
	Drag          float64 // Quadratic drag coefficient (0 = none)
}

// Right returns the x coordinate of the right edge.
func (b *Body) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (b *Body) Bottom() float64 {
	return b.Y + b.Height
}

// Integrate advances the body by one tick. Velocity is updated before
// position, vertical axis first.
func (b *Body) Integrate() {
	b.DY = Dragged(b.DY, b.AY, b.Drag)
	b.Y += b.DY
	b.DX = Dragged(b.DX, b.AX, b.Drag)
	b.X += b.DX
}

// Dragged returns the next velocity on one axis: v + a minus a drag term of
// magnitude drag*v² opposing the current direction. Zero velocity counts as
// positive.
func Dragged(v, a, drag float64) float64 {
	if v >= 0 {
		return v + a - drag*v*v
	}
	return v + a + drag*v*v
}

// Overlaps reports whether the two rectangles intersect.
// Touching edges count as overlapping.
func (b *Body) Overlaps(other *Body) bool {
	if b.Bottom() < other.Y ||
		b.Y > other.Bottom() ||
		b.Right() < other.X ||
		b.X > other.Right() {
		return false
	}
	return true
}
