package physics

import (
	"errors"
	"fmt"
)

// ErrInvalidField is returned when a play field has a non-positive dimension.
var ErrInvalidField = errors.New("invalid field dimensions")

// Edge identifies which play-field edge a body has reached.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
	EdgeTop
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Field is the rectangular play area, anchored at the origin.
type Field struct {
	Width  float64
	Height float64
}

// NewField creates a field, rejecting non-positive dimensions.
func NewField(width, height float64) (Field, error) {
	if width <= 0 || height <= 0 {
		return Field{}, fmt.Errorf("%w: %gx%g", ErrInvalidField, width, height)
	}
	return Field{Width: width, Height: height}, nil
}

// Classify reports the first edge the body touches or crosses, checking
// left, right, top and bottom in that order.
func (f Field) Classify(b *Body) Edge {
	switch {
	case b.X <= 0:
		return EdgeLeft
	case b.Right() >= f.Width:
		return EdgeRight
	case b.Y <= 0:
		return EdgeTop
	case b.Bottom() >= f.Height:
		return EdgeBottom
	default:
		return EdgeNone
	}
}

// Reflect inverts the velocity on the axis of the given edge and moves the
// body 1 unit inside that edge, so it is not reported again next tick.
func (f Field) Reflect(b *Body, e Edge) {
	switch e {
	case EdgeLeft:
		b.DX = -b.DX
		b.X = 1
	case EdgeRight:
		b.DX = -b.DX
		b.X = f.Width - b.Width - 1
	case EdgeTop:
		b.DY = -b.DY
		b.Y = 1
	case EdgeBottom:
		b.DY = -b.DY
		b.Y = f.Height - b.Height - 1
	}
}

// Bounce classifies the body against the field and reflects it off the edge
// it hit, if any. Returns the edge that was handled.
func (f Field) Bounce(b *Body) Edge {
	e := f.Classify(b)
	f.Reflect(b, e)
	return e
}

