package object

import (
	"math/rand"

	"github.com/tomz197/blimp/internal/draw"
	"github.com/tomz197/blimp/internal/input"
	"github.com/tomz197/blimp/internal/physics"
)

// Controls is an alias for the input package's directional snapshot.
type Controls = input.Controls

// Outcome is what an actor reports back to the simulation after updating.
type Outcome int

const (
	OutcomeNone      Outcome = iota
	OutcomePickup            // Cargo was picked up by the player
	OutcomeDelivered         // Cargo was delivered to the carrier
	OutcomeCrash             // A drone hit the player
)

func (o Outcome) String() string {
	switch o {
	case OutcomePickup:
		return "pickup"
	case OutcomeDelivered:
		return "delivered"
	case OutcomeCrash:
		return "crash"
	default:
		return "none"
	}
}

// UpdateContext provides all the information an actor needs during update.
// Cross-actor references are resolved once per tick by the simulation.
type UpdateContext struct {
	Field  physics.Field
	Rand   *rand.Rand
	Player *physics.Body // The blimp's body
	Cargo  *Cargo
}

// TextWriter places text at 1-based terminal coordinates.
type TextWriter interface {
	WriteAt(col, row int, s string)
}

// DrawContext provides drawing resources for actors.
type DrawContext struct {
	Canvas *draw.Canvas // Scaled half-block canvas in field coordinates
	Text   TextWriter   // Text overlay (score)
	Score  int
}

// Actor is an updatable and drawable game entity owning exactly one body.
type Actor interface {
	// Update advances the actor by one tick and reports what happened.
	Update(ctx UpdateContext) Outcome

	// Draw renders the actor. Drawing never changes simulation state.
	Draw(ctx DrawContext) error

	// Body returns the actor's body.
	Body() *physics.Body
}

func pt(x, y float64) draw.Point {
	return draw.Point{X: x, Y: y}
}
