package object

import "github.com/tomz197/blimp/internal/physics"

// Blimp dimensions and handling.
const (
	BlimpWidth   = 64.0
	BlimpHeight  = 32.0
	BlimpDrag    = 0.01
	BlimpThrustX = 0.1  // Horizontal acceleration per tick while a key is held
	BlimpThrustY = 0.05 // Vertical acceleration per tick; blimps climb slowly
)

// Facing is the direction the blimp's nose points.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Blimp is the player-controlled airship.
type Blimp struct {
	body    physics.Body
	ThrustX float64
	ThrustY float64
}

// NewBlimp creates a blimp at rest at the given position.
func NewBlimp(x, y float64) *Blimp {
	return &Blimp{
		body: physics.Body{
			X:      x,
			Y:      y,
			Width:  BlimpWidth,
			Height: BlimpHeight,
			Drag:   BlimpDrag,
		},
		ThrustX: BlimpThrustX,
		ThrustY: BlimpThrustY,
	}
}

// Steer clears the acceleration and sets it from the held controls.
// When opposite keys are both held, right and down win.
func (b *Blimp) Steer(c Controls) {
	b.body.AX = 0
	b.body.AY = 0
	if c.Left {
		b.body.AX = -b.ThrustX
	}
	if c.Right {
		b.body.AX = b.ThrustX
	}
	if c.Up {
		b.body.AY = -b.ThrustY
	}
	if c.Down {
		b.body.AY = b.ThrustY
	}
}

// Update integrates the blimp's motion and bounces it off the field edges.
func (b *Blimp) Update(ctx UpdateContext) Outcome {
	b.body.Integrate()
	ctx.Field.Bounce(&b.body)
	return OutcomeNone
}

// Facing returns the direction of travel; a blimp at rest faces right.
func (b *Blimp) Facing() Facing {
	if b.body.DX >= 0 {
		return FacingRight
	}
	return FacingLeft
}

// Draw renders the envelope as an ellipse with a gondola below it and a
// tail fin on the side away from the direction of travel.
func (b *Blimp) Draw(ctx DrawContext) error {
	x, y, w, h := b.body.X, b.body.Y, b.body.Width, b.body.Height

	cx := x + w/2
	cy := y + h*0.4
	rx := w / 2
	ry := h * 0.4

	ctx.Canvas.StrokeEllipse(cx, cy, rx, ry)
	ctx.Canvas.FillRect(x+w*0.35, y+h*0.8, w*0.3, h*0.2)

	tailX, finX := x, x+w*0.2
	if b.Facing() == FacingLeft {
		tailX, finX = x+w, x+w*0.8
	}
	ctx.Canvas.DrawLine(pt(tailX, y), pt(finX, cy))
	ctx.Canvas.DrawLine(pt(finX, cy), pt(tailX, y+h*0.8))

	return nil
}

// Body returns the blimp's body.
func (b *Blimp) Body() *physics.Body {
	return &b.body
}
