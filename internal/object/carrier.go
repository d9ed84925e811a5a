package object

import (
	"strconv"

	"github.com/tomz197/blimp/internal/physics"
)

// Carrier dimensions and score placement.
const (
	CarrierWidth  = 128.0
	CarrierHeight = 64.0

	scoreInsetX = 87.0 // Score text offset from the carrier's right edge
	scoreY      = 42.0
)

// Carrier is the flying deck that takes delivery of cargo.
type Carrier struct {
	body physics.Body
}

// NewCarrier creates a carrier at the given position.
func NewCarrier(x, y float64) *Carrier {
	return &Carrier{
		body: physics.Body{
			X:      x,
			Y:      y,
			Width:  CarrierWidth,
			Height: CarrierHeight,
		},
	}
}

// Update takes delivery when the player touches the carrier while the cargo
// is being carried.
func (c *Carrier) Update(ctx UpdateContext) Outcome {
	if ctx.Player == nil || ctx.Cargo == nil || !c.body.Overlaps(ctx.Player) {
		return OutcomeNone
	}
	if !ctx.Cargo.Deliver() {
		return OutcomeNone
	}
	return OutcomeDelivered
}

// Draw renders the carrier deck and the current score.
func (c *Carrier) Draw(ctx DrawContext) error {
	b := &c.body
	ctx.Canvas.StrokeRect(b.X, b.Y, b.Width, b.Height)
	ctx.Canvas.FillRect(b.X, b.Bottom()-b.Height/4, b.Width, b.Height/4)

	score := Text{X: b.Right() - scoreInsetX, Y: scoreY, Value: strconv.Itoa(ctx.Score)}
	return score.Draw(ctx)
}

// Body returns the carrier's body.
func (c *Carrier) Body() *physics.Body {
	return &c.body
}
