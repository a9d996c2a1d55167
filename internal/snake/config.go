package snake

import (
	"errors"
	"fmt"

	"github.com/samdwyer/gridsnake/internal/world"
)

// Construction errors.
var (
	ErrInvalidGrid      = errors.New("grid must be at least 1x1")
	ErrInvalidLength    = errors.New("invalid start length")
	ErrInvalidReward    = errors.New("reward must not be negative")
	ErrInvalidDirection = errors.New("invalid start direction")
)

const (
	// DefaultReward is the score added per food eaten.
	DefaultReward = 1
	// DefaultStartLength is the body length at the start of a round.
	DefaultStartLength = 1
)

// DefaultStart is the head position at the start of a round.
var DefaultStart = world.Point{X: 3, Y: 3}

// Config fixes the arena and the canonical starting position of a round.
type Config struct {
	Width, Height int
	Start         world.Point // Head cell at round start; wrapped onto the grid
	Direction     Direction   // Heading at round start
	StartLength   int         // Segments laid out behind the head, opposite Direction
	Reward        int         // Points per food
}

// DefaultConfig returns a 20x20 arena with a single-segment snake at (3,3)
// heading right.
func DefaultConfig() Config {
	return Config{
		Width:       world.DefaultWidth,
		Height:      world.DefaultHeight,
		Start:       DefaultStart,
		Direction:   DirRight,
		StartLength: DefaultStartLength,
		Reward:      DefaultReward,
	}
}

// Validate checks the construction preconditions.
func (c Config) Validate() error {
	grid := world.NewGrid(c.Width, c.Height)
	if !grid.Valid() {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidGrid, c.Width, c.Height)
	}
	if !c.Direction.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, c.Direction)
	}
	if c.StartLength < 1 {
		return fmt.Errorf("%w: %d is less than 1", ErrInvalidLength, c.StartLength)
	}
	// One cell must stay free for the first food
	if c.StartLength >= grid.Cells() {
		return fmt.Errorf("%w: %d leaves no free cell on a %dx%d grid",
			ErrInvalidLength, c.StartLength, c.Width, c.Height)
	}
	// The body is laid out in a straight line and must not wrap onto itself
	axis := c.Width
	if c.Direction == DirUp || c.Direction == DirDown {
		axis = c.Height
	}
	if c.StartLength > axis {
		return fmt.Errorf("%w: %d does not fit a straight line of %d cells heading %s",
			ErrInvalidLength, c.StartLength, axis, c.Direction)
	}
	if c.Reward < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidReward, c.Reward)
	}
	return nil
}
