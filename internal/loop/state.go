package loop

// Phase is the screen a session is showing.
type Phase int

const (
	PhaseStart    Phase = iota // Title screen
	PhasePlaying               // Active gameplay
	PhaseGameOver              // Crashed, waiting for acknowledgment
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "start"
	}
}
