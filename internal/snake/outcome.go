package snake

// OutcomeKind discriminates the result of a tick.
type OutcomeKind int

const (
	// OutcomeNoOp means the round was already over and nothing changed.
	OutcomeNoOp OutcomeKind = iota
	// OutcomeMoved means the snake advanced one cell without eating.
	OutcomeMoved
	// OutcomeAteFood means the snake grew by one and scored.
	OutcomeAteFood
	// OutcomeGameOver means the head ran into the body.
	OutcomeGameOver
	// OutcomeFullBoard means the snake filled every cell. This is a win.
	OutcomeFullBoard
)

// String returns a human-readable outcome name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNoOp:
		return "noop"
	case OutcomeMoved:
		return "moved"
	case OutcomeAteFood:
		return "ate_food"
	case OutcomeGameOver:
		return "game_over"
	case OutcomeFullBoard:
		return "full_board"
	default:
		return "unknown"
	}
}

// Outcome is the result of a single Tick.
type Outcome struct {
	Kind  OutcomeKind
	Score int // Score after the tick (final score for terminal outcomes)
}

// Terminal reports whether this outcome ended the round.
func (o Outcome) Terminal() bool {
	return o.Kind == OutcomeGameOver || o.Kind == OutcomeFullBoard
}
