package object

import "github.com/tomz197/blimp/internal/physics"

// Drone dimensions and behaviour.
const (
	DroneWidth      = 30.0
	DroneHeight     = 10.0
	DroneSpeed      = 1.0  // Constant horizontal drift per tick
	DroneChangeProb = 0.02 // Chance per tick of picking a new vertical speed
	DroneMaxClimb   = 2.0  // Vertical speed is re-rolled within ±DroneMaxClimb
)

// Drone is an enemy that drifts sideways in a vertical random walk.
// Touching the player ends the game.
type Drone struct {
	body       physics.Body
	ChangeProb float64
}

// NewDrone creates a drone drifting right from the given position.
func NewDrone(x, y float64) *Drone {
	return &Drone{
		body: physics.Body{
			X:      x,
			Y:      y,
			Width:  DroneWidth,
			Height: DroneHeight,
			DX:     DroneSpeed,
		},
		ChangeProb: DroneChangeProb,
	}
}

// Update re-rolls the vertical speed at random, moves, bounces off the edges
// and reports a crash when overlapping the player.
func (d *Drone) Update(ctx UpdateContext) Outcome {
	if ctx.Rand != nil && ctx.Rand.Float64() < d.ChangeProb {
		d.body.DY = (ctx.Rand.Float64() - 0.5) * 2 * DroneMaxClimb
	}

	d.body.Integrate()
	ctx.Field.Bounce(&d.body)

	if ctx.Player != nil && d.body.Overlaps(ctx.Player) {
		return OutcomeCrash
	}
	return OutcomeNone
}

// Draw renders the drone as a solid block.
func (d *Drone) Draw(ctx DrawContext) error {
	ctx.Canvas.FillRect(d.body.X, d.body.Y, d.body.Width, d.body.Height)
	return nil
}

// Body returns the drone's body.
func (d *Drone) Body() *physics.Body {
	return &d.body
}
