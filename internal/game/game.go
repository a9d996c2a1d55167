package game

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/gridsnake/internal/audio"
	"github.com/samdwyer/gridsnake/internal/gamedata"
	"github.com/samdwyer/gridsnake/internal/snake"
	"github.com/samdwyer/gridsnake/internal/telemetry"
	"github.com/samdwyer/gridsnake/internal/ui"
)

// frameInterval is the redraw cadence, independent of the tick rate.
const frameInterval = 33 * time.Millisecond

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	sim      *snake.Simulation
	clock    *Clock
	audio    audio.Player
	logger   *log.Logger
	tracer   trace.Tracer
	logFile  io.Closer
	metrics  *roundMetrics
	round    *round
	phase    Phase
	frame    int
	running  bool
	closed   bool
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to open screen: %w", err)
	}

	logger, logFile, err := openLog(cfg.LogFile)
	if err != nil {
		screen.Close()
		return nil, err
	}

	var player audio.Player = audio.Nop{}
	if cfg.Sound {
		sp, err := audio.NewSpeaker()
		if err != nil {
			// Not fatal - the game plays silently
			logger.Printf("audio disabled: %v", err)
		} else {
			player = sp
		}
	}

	g, err := newGame(cfg, screen, player, logger, telemetry.Tracer("game"), telemetry.Meter("game"))
	if err != nil {
		player.Close()
		screen.Close()
		if logFile != nil {
			logFile.Close()
		}
		return nil, err
	}
	g.logFile = logFile
	return g, nil
}

// newGame wires a game from already-opened collaborators.
func newGame(cfg Config, screen *ui.Screen, player audio.Player, logger *log.Logger, tracer trace.Tracer, meter metric.Meter) (*Game, error) {
	themes, err := gamedata.LoadThemeRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load themes: %w", err)
	}
	theme := themes.Resolve(cfg.Theme)
	if theme.ID != cfg.Theme {
		logger.Printf("unknown theme %q, using %q", cfg.Theme, theme.ID)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim, err := snake.New(cfg.SnakeConfig(), rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	metrics, err := newRoundMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}

	logger.Printf("game ready: %dx%d seed=%d tick=%s theme=%s (%d available)",
		cfg.Width, cfg.Height, seed, cfg.TickInterval, theme.ID, themes.Count())

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		sim:      sim,
		clock:    NewClock(cfg.TickInterval),
		audio:    player,
		logger:   logger,
		tracer:   tracer,
		metrics:  metrics,
		phase:    PhaseMenu,
		running:  true,
	}, nil
}

// openLog opens the game log. An empty path discards output.
func openLog(path string) (*log.Logger, io.Closer, error) {
	flags := log.LstdFlags | log.Lmicroseconds
	if path == "" {
		return log.New(io.Discard, "gridsnake ", flags), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return log.New(f, "gridsnake ", flags), f, nil
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(events, done)

	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	last := time.Now()
	g.render()

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false

		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ctx, ev)

		case now := <-frames.C:
			g.advance(ctx, now.Sub(last))
			last = now
			g.frame++
			g.render()
		}
	}

	g.endRound(ctx, endQuit)
	return nil
}

// pollEvents forwards terminal events until the screen is finalized.
// The simulation is only touched from the Run goroutine.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleCommand(ctx, CommandFor(ev))
	case *tcell.EventResize:
		g.screen.Sync()
		g.render()
	}
}

// handleCommand applies a decoded key press to the current phase.
func (g *Game) handleCommand(ctx context.Context, cmd Command) {
	switch cmd.Action {
	case ActionQuit:
		g.running = false

	case ActionMove:
		if g.phase == PhasePlaying {
			g.sim.SetDirection(cmd.Direction)
		}

	case ActionConfirm:
		if g.phase == PhaseMenu || g.phase == PhaseGameOver {
			g.sim.Reset()
			g.clock.Reset()
			g.phase = PhasePlaying
			g.startRound(ctx)
		}

	case ActionPause:
		switch g.phase {
		case PhasePlaying:
			g.phase = PhasePaused
		case PhasePaused:
			g.clock.Reset()
			g.phase = PhasePlaying
		}
	}
}

// advance runs the ticks due for the elapsed time.
func (g *Game) advance(ctx context.Context, elapsed time.Duration) {
	if g.phase != PhasePlaying {
		return
	}
	for range g.clock.Advance(elapsed) {
		out := g.sim.Tick()
		g.handleOutcome(ctx, out)
		if out.Terminal() {
			return
		}
	}
}

// handleOutcome reacts to the result of one tick.
func (g *Game) handleOutcome(ctx context.Context, out snake.Outcome) {
	g.recordOutcome(ctx, out)

	switch out.Kind {
	case snake.OutcomeAteFood:
		g.audio.Play(audio.CueEat)
	case snake.OutcomeGameOver:
		g.audio.Play(audio.CueCrash)
		g.phase = PhaseGameOver
		g.frame = 0
		g.endRound(ctx, endCollision)
	case snake.OutcomeFullBoard:
		g.audio.Play(audio.CueWin)
		g.phase = PhaseGameOver
		g.endRound(ctx, endFullBoard)
	}
}

// overlay picks the panel to draw over the arena.
func (g *Game) overlay() ui.Overlay {
	switch g.phase {
	case PhaseMenu:
		return ui.OverlayMenu
	case PhasePaused:
		return ui.OverlayPaused
	case PhaseGameOver:
		if g.sim.Won() {
			return ui.OverlayWin
		}
		return ui.OverlayGameOver
	default:
		return ui.OverlayNone
	}
}

// render draws the current frame, or a notice if the terminal is too small.
func (g *Game) render() {
	cols, rows := ui.ArenaSize(g.sim.Grid())
	w, h := g.screen.Size()
	if w < cols || h < rows {
		g.renderer.RenderNotice(fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", cols, rows, w, h))
		return
	}
	g.renderer.Render(g.sim, g.overlay(), g.frame)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Close cleans up game resources. It is safe to call more than once.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true

	if g.audio != nil {
		g.audio.Close()
	}
	if g.screen != nil {
		g.screen.Close()
	}
	if g.logFile != nil {
		g.logFile.Close()
	}
}
