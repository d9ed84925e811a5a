package object

import "github.com/tomz197/blimp/internal/physics"

// Cargo dimensions and drop-zone placement.
const (
	CargoSize       = 32.0
	CargoMargin     = 32.0 // Left inset of drop points, and their height above the bottom edge
	CargoDropSpread = 0.9  // Fraction of the field width used for drops
	CargoDropDepth  = 50.0 // Vertical spread of drops above the bottom margin
)

// Cargo waits on the ground to be picked up by the player. While carried it
// is hidden and stays put until the carrier takes delivery.
type Cargo struct {
	body     physics.Body
	OnGround bool
}

// NewCargo creates a crate resting on the ground at the given position.
func NewCargo(x, y float64) *Cargo {
	return &Cargo{
		body: physics.Body{
			X:      x,
			Y:      y,
			Width:  CargoSize,
			Height: CargoSize,
		},
		OnGround: true,
	}
}

// Update picks the crate up when the player touches it on the ground and
// moves it to a fresh drop point for the next round.
func (c *Cargo) Update(ctx UpdateContext) Outcome {
	if !c.OnGround || ctx.Player == nil || !c.body.Overlaps(ctx.Player) {
		return OutcomeNone
	}

	var u, v float64
	if ctx.Rand != nil {
		u = ctx.Rand.Float64()
		v = ctx.Rand.Float64()
	}
	c.body.X = CargoMargin + u*ctx.Field.Width*CargoDropSpread
	c.body.Y = ctx.Field.Height - CargoMargin - v*CargoDropDepth
	c.OnGround = false
	return OutcomePickup
}

// Deliver puts the crate back on the ground. Returns false if it was not
// being carried.
func (c *Cargo) Deliver() bool {
	if c.OnGround {
		return false
	}
	c.OnGround = true
	return true
}

// Draw renders the crate while it is on the ground.
func (c *Cargo) Draw(ctx DrawContext) error {
	if !c.OnGround {
		return nil
	}
	b := &c.body
	ctx.Canvas.StrokeRect(b.X, b.Y, b.Width, b.Height)
	ctx.Canvas.DrawLine(pt(b.X, b.Y), pt(b.Right(), b.Bottom()))
	ctx.Canvas.DrawLine(pt(b.Right(), b.Y), pt(b.X, b.Bottom()))
	return nil
}

// Body returns the crate's body.
func (c *Cargo) Body() *physics.Body {
	return &c.body
}
