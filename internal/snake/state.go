package snake

// State is the lifecycle state of a round.
type State int

const (
	// StateRunning accepts input and advances on every tick.
	StateRunning State = iota
	// StateGameOver is terminal until Reset.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
