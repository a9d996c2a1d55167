package snake

import (
	"math/rand"
	"time"

	"github.com/samdwyer/gridsnake/internal/world"
)

// Simulation owns a single round of snake: the body, the food, the heading,
// the score and the round state. It is driven by an external loop that calls
// SetDirection on input and Tick at a fixed rate.
//
// A Simulation is not safe for concurrent use.
type Simulation struct {
	cfg      Config
	grid     world.Grid
	rng      *rand.Rand
	body     *body
	occupied *world.Occupancy

	dir     Direction
	pending Direction
	food    world.Point
	hasFood bool
	score   int
	state   State
	won     bool
	ticks   uint64
}

// New creates a simulation in its starting configuration.
// A nil rng is replaced by one seeded from the clock.
func New(cfg Config, rng *rand.Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	grid := world.NewGrid(cfg.Width, cfg.Height)
	s := &Simulation{
		cfg:      cfg,
		grid:     grid,
		rng:      rng,
		body:     newBody(grid.Cells()),
		occupied: world.NewOccupancy(grid),
	}
	s.Reset()
	return s, nil
}

// MustNew creates a simulation, panicking on an invalid config.
func MustNew(cfg Config, rng *rand.Rand) *Simulation {
	s, err := New(cfg, rng)
	if err != nil {
		panic(err)
	}
	return s
}

// Reset starts a fresh round: canonical body, default heading, new food,
// zero score.
func (s *Simulation) Reset() {
	s.body.reset()
	s.occupied.Reset()

	head := s.grid.Wrap(s.cfg.Start)
	dx, dy := s.cfg.Direction.Delta()
	for i := 0; i < s.cfg.StartLength; i++ {
		p := s.grid.Step(head, -dx*i, -dy*i)
		s.body.pushTail(p)
		s.occupied.Set(p)
	}

	s.dir = s.cfg.Direction
	s.pending = s.cfg.Direction
	s.score = 0
	s.state = StateRunning
	s.won = false
	s.ticks = 0
	s.placeFood()
}

// SetDirection buffers a heading for the next tick. Reversing straight into
// the neck is ignored while the snake is longer than one segment, as is any
// input once the round is over. The last accepted heading before a tick wins.
func (s *Simulation) SetDirection(d Direction) {
	if s.state != StateRunning || !d.Valid() {
		return
	}
	if s.body.len() > 1 && d == s.dir.Opposite() {
		return
	}
	s.pending = d
}

// Tick advances the round by one step.
//
// The tail counts as vacated: the head may move into the cell the tail is
// leaving on the same tick.
func (s *Simulation) Tick() Outcome {
	if s.state != StateRunning {
		return Outcome{Kind: OutcomeNoOp, Score: s.score}
	}
	s.ticks++
	s.dir = s.pending

	dx, dy := s.dir.Delta()
	next := s.grid.Step(s.body.headCell(), dx, dy)
	tail := s.body.tailCell()

	if s.occupied.Has(next) && next != tail {
		s.state = StateGameOver
		return Outcome{Kind: OutcomeGameOver, Score: s.score}
	}

	// Food never lies on the body, so eating never happens on the tail cell
	ate := s.hasFood && next == s.food
	if !ate {
		s.occupied.Clear(s.body.popTail())
	}
	s.body.pushHead(next)
	s.occupied.Set(next)

	if !ate {
		return Outcome{Kind: OutcomeMoved, Score: s.score}
	}

	s.score += s.cfg.Reward
	if !s.placeFood() {
		s.state = StateGameOver
		s.won = true
		return Outcome{Kind: OutcomeFullBoard, Score: s.score}
	}
	return Outcome{Kind: OutcomeAteFood, Score: s.score}
}

// placeFood moves the food to a random free cell. It returns false when the
// body covers the whole grid.
func (s *Simulation) placeFood() bool {
	p, ok := s.occupied.RandomFree(s.rng)
	s.food = p
	s.hasFood = ok
	return ok
}

// Body returns the segments, head first. The slice is a copy.
func (s *Simulation) Body() []world.Point {
	return s.body.points()
}

// Head returns the head cell.
func (s *Simulation) Head() world.Point {
	return s.body.headCell()
}

// Length returns the number of segments.
func (s *Simulation) Length() int {
	return s.body.len()
}

// Occupied reports whether a body segment covers p.
func (s *Simulation) Occupied(p world.Point) bool {
	return s.occupied.Has(p)
}

// Food returns the food cell. After a full-board win there is no food and
// HasFood reports false.
func (s *Simulation) Food() world.Point {
	return s.food
}

// HasFood reports whether a food item is on the board.
func (s *Simulation) HasFood() bool {
	return s.hasFood
}

// Score returns the current score.
func (s *Simulation) Score() int {
	return s.score
}

// State returns the round state.
func (s *Simulation) State() State {
	return s.state
}

// Won reports whether the round ended by filling the board.
func (s *Simulation) Won() bool {
	return s.won
}

// Direction returns the heading used on the last tick.
func (s *Simulation) Direction() Direction {
	return s.dir
}

// Ticks returns the number of steps taken this round.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// Grid returns the arena dimensions.
func (s *Simulation) Grid() world.Grid {
	return s.grid
}
