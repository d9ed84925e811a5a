package object

import (
	"math/rand"

	"github.com/tomz197/blimp/internal/physics"
)

// DroneSpawnProb is the default chance per tick of launching a drone.
const DroneSpawnProb = 0.001

// DroneSpawner launches drones from the left edge of the field at random
// heights above the floor.
type DroneSpawner struct {
	prob float64
}

// NewDroneSpawner creates a spawner with the given chance per tick.
func NewDroneSpawner(prob float64) *DroneSpawner {
	if prob < 0 {
		prob = 0
	}
	if prob > 1 {
		prob = 1
	}
	return &DroneSpawner{
		prob: prob,
	}
}

// Prob returns the chance per tick of launching a drone.
func (s *DroneSpawner) Prob() float64 {
	return s.prob
}

// Spawn rolls for a new drone this tick. Returns nil when none is launched.
func (s *DroneSpawner) Spawn(rng *rand.Rand, field physics.Field) *Drone {
	if s.prob == 0 || rng.Float64() >= s.prob {
		return nil
	}
	return NewDrone(0, rng.Float64()*(field.Height-FloorHeight))
}
