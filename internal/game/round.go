package game

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/gridsnake/internal/snake"
)

// End reasons recorded on a round span.
const (
	endCollision = "collision"
	endFullBoard = "full_board"
	endQuit      = "quit"
)

// round tracks one play-through from start to game over.
type round struct {
	id      string
	span    trace.Span
	started time.Time
}

// roundMetrics holds the counters recorded across rounds.
type roundMetrics struct {
	rounds    metric.Int64Counter
	foodEaten metric.Int64Counter
	ticks     metric.Int64Counter
}

func newRoundMetrics(meter metric.Meter) (*roundMetrics, error) {
	rounds, err := meter.Int64Counter("snake.rounds",
		metric.WithDescription("Rounds started"))
	if err != nil {
		return nil, err
	}
	foodEaten, err := meter.Int64Counter("snake.food_eaten",
		metric.WithDescription("Food items eaten"))
	if err != nil {
		return nil, err
	}
	ticks, err := meter.Int64Counter("snake.ticks",
		metric.WithDescription("Simulation steps taken"))
	if err != nil {
		return nil, err
	}
	return &roundMetrics{rounds: rounds, foodEaten: foodEaten, ticks: ticks}, nil
}

// startRound opens a traced round.
func (g *Game) startRound(ctx context.Context) {
	id := uuid.NewString()
	grid := g.sim.Grid()

	_, span := g.tracer.Start(ctx, "game.round",
		trace.WithAttributes(
			attribute.String("round.id", id),
			attribute.Int("grid.width", grid.Width),
			attribute.Int("grid.height", grid.Height),
			attribute.Int64("tick.interval_ms", g.clock.Interval().Milliseconds()),
		),
	)
	g.round = &round{id: id, span: span, started: time.Now()}
	g.metrics.rounds.Add(ctx, 1)
	g.logger.Printf("round %s started", id)
}

// endRound records the final snapshot on the round span and closes it.
func (g *Game) endRound(ctx context.Context, reason string) {
	if g.round == nil {
		return
	}
	snap := g.sim.Snapshot()
	g.round.span.SetAttributes(
		attribute.String("round.end_reason", reason),
		attribute.Int("round.score", snap.Score),
		attribute.Int("round.length", snap.Length),
		attribute.Int64("round.ticks", int64(snap.Tick)),
		attribute.Bool("round.won", snap.Won),
	)
	g.round.span.End()
	g.metrics.ticks.Add(ctx, int64(snap.Tick))

	g.logger.Printf("round %s ended: %s score=%d length=%d ticks=%d after %s",
		g.round.id, reason, snap.Score, snap.Length, snap.Tick,
		time.Since(g.round.started).Round(time.Millisecond))
	g.round = nil
}

// recordOutcome feeds a tick outcome into metrics and the round span.
func (g *Game) recordOutcome(ctx context.Context, out snake.Outcome) {
	if out.Kind != snake.OutcomeAteFood && out.Kind != snake.OutcomeFullBoard {
		return
	}
	g.metrics.foodEaten.Add(ctx, 1)
	if g.round != nil {
		g.round.span.AddEvent("food.eaten", trace.WithAttributes(
			attribute.Int("score", out.Score),
			attribute.Int("length", g.sim.Length()),
		))
	}
}
