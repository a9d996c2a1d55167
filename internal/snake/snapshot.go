package snake

import "github.com/samdwyer/gridsnake/internal/world"

// Snapshot captures the observable round state, for determinism checks and
// telemetry.
type Snapshot struct {
	Tick      uint64
	Score     int
	Length    int
	Head      world.Point
	Direction Direction
	Food      world.Point
	HasFood   bool
	State     State
	Won       bool
}

// Snapshot returns the current round snapshot.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.ticks,
		Score:     s.score,
		Length:    s.body.len(),
		Head:      s.body.headCell(),
		Direction: s.dir,
		Food:      s.food,
		HasFood:   s.hasFood,
		State:     s.state,
		Won:       s.won,
	}
}
