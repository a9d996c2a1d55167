// Package game provides the main game loop and state management.
package game

// Phase represents the current screen of the game.
type Phase int

const (
	// PhaseMenu shows the title and controls until the player starts a round.
	PhaseMenu Phase = iota
	// PhasePlaying advances the simulation on every tick.
	PhasePlaying
	// PhasePaused freezes the round until resumed.
	PhasePaused
	// PhaseGameOver shows the final score until the player restarts.
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
