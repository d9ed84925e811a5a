package object

import "github.com/tomz197/blimp/internal/physics"

// FloorHeight is the height of the ground strip at the bottom of the field.
const FloorHeight = 50.0

// Floor is the static ground strip. It does not collide with anything.
type Floor struct {
	body physics.Body
}

// NewFloor creates the ground strip spanning the bottom of the field.
func NewFloor(field physics.Field) *Floor {
	return &Floor{
		body: physics.Body{
			X:      0,
			Y:      field.Height - FloorHeight,
			Width:  field.Width,
			Height: FloorHeight,
		},
	}
}

// Update is a no-op; the floor is static.
func (f *Floor) Update(_ UpdateContext) Outcome {
	return OutcomeNone
}

// Draw renders the floor as a filled rectangle.
func (f *Floor) Draw(ctx DrawContext) error {
	ctx.Canvas.FillRect(f.body.X, f.body.Y, f.body.Width, f.body.Height)
	return nil
}

// Body returns the floor's body.
func (f *Floor) Body() *physics.Body {
	return &f.body
}
