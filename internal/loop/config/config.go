// Package config centralizes all tunable game parameters.
package config

import "time"

// Field dimensions in logical units. Rendering scales to fit the terminal.
const (
	FieldWidth  = 720
	FieldHeight = 540
)

// Simulation tick rate
const (
	TickRate = 50
	TickTime = time.Second / TickRate
)

// Max render resolution. Larger terminals get a centred, bordered canvas.
const (
	MaxTermWidth  = 144
	MaxTermHeight = 54
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// MinTickTime bounds the tick period from below.
const MinTickTime = time.Millisecond

// TickInterval returns the tick period for rate ticks per second. Non-positive
// rates fall back to TickTime and rates above 1000 run at MinTickTime.
func TickInterval(rate int) time.Duration {
	if rate <= 0 {
		return TickTime
	}
	return max(time.Second/time.Duration(rate), MinTickTime)
}
