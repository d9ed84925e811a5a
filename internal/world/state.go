// Package world holds the blimp game state and advances it one tick at a time.
package world

import (
	"math/rand"
	"time"

	"github.com/tomz197/blimp/internal/object"
	"github.com/tomz197/blimp/internal/physics"
)

// Starting positions of the fixed actors.
const (
	BlimpStartX = 220.0
	BlimpStartY = 190.0
	CargoStartX = 50.0
)

// GameOver describes a finished game.
type GameOver struct {
	Score int
	Tick  int
}

// Options configures a new game.
type Options struct {
	// Rand drives drone spawning, drone climbs and cargo drops.
	// When nil a time-seeded source is used.
	Rand *rand.Rand

	// SpawnProb overrides the per-tick drone spawn chance. Zero keeps the default;
	// pass a negative value to disable spawning.
	SpawnProb float64

	// OnGameOver is called once when the player crashes.
	OnGameOver func(GameOver)
}

// GameState is the complete state of one game. It is owned by a single
// goroutine and is not safe for concurrent use.
type GameState struct {
	Field physics.Field

	Floor   *object.Floor
	Carrier *object.Carrier
	Player  *object.Blimp
	Cargo   *object.Cargo
	Drones  []*object.Drone

	Score   int
	Tick    int
	Running bool

	rng        *rand.Rand
	spawner    *object.DroneSpawner
	onGameOver func(GameOver)
}

// New creates a running game on a field of the given size.
func New(width, height float64, opts Options) (*GameState, error) {
	field, err := physics.NewField(width, height)
	if err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	prob := opts.SpawnProb
	if prob == 0 {
		prob = object.DroneSpawnProb
	}

	g := &GameState{
		Field:      field,
		rng:        rng,
		spawner:    object.NewDroneSpawner(prob),
		onGameOver: opts.OnGameOver,
	}
	g.Reset()
	return g, nil
}

// Reset replaces every actor with a fresh one and starts a new game.
// The random source carries on from where it was.
func (g *GameState) Reset() {
	f := g.Field
	g.Floor = object.NewFloor(f)
	g.Carrier = object.NewCarrier(f.Width-object.CarrierWidth, 0)
	g.Player = object.NewBlimp(BlimpStartX, BlimpStartY)
	g.Cargo = object.NewCargo(CargoStartX, f.Height-object.FloorHeight-object.CargoSize)
	g.Drones = nil
	g.Score = 0
	g.Tick = 0
	g.Running = true
}

// Actors returns every actor in update order.
func (g *GameState) Actors() []object.Actor {
	actors := make([]object.Actor, 0, 4+len(g.Drones))
	actors = append(actors, g.Floor, g.Carrier, g.Player, g.Cargo)
	for _, d := range g.Drones {
		actors = append(actors, d)
	}
	return actors
}

// Result returns the current score and tick as a GameOver summary.
func (g *GameState) Result() GameOver {
	return GameOver{Score: g.Score, Tick: g.Tick}
}
