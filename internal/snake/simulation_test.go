package snake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/samdwyer/gridsnake/internal/world"
)

// setBody replaces the body with the given cells, head first, and sets the heading.
func setBody(s *Simulation, dir Direction, cells ...world.Point) {
	s.body.reset()
	s.occupied.Reset()
	for _, p := range cells {
		s.body.pushTail(p)
		s.occupied.Set(p)
	}
	s.dir = dir
	s.pending = dir
}

// setFood moves the food to p.
func setFood(s *Simulation, p world.Point) {
	s.food = p
	s.hasFood = true
}

func newTestSim(t *testing.T, cfg Config, seed int64) *Simulation {
	t.Helper()
	s, err := New(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
		want error
	}{
		{"default", func(c *Config) {}, nil},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidGrid},
		{"negative height", func(c *Config) { c.Height = -3 }, ErrInvalidGrid},
		{"zero length", func(c *Config) { c.StartLength = 0 }, ErrInvalidLength},
		{"fills grid", func(c *Config) { c.Width, c.Height, c.StartLength = 2, 1, 2 }, ErrInvalidLength},
		{"longer than grid", func(c *Config) { c.Width, c.Height, c.StartLength = 3, 3, 10 }, ErrInvalidLength},
		{"wraps onto itself", func(c *Config) { c.Width, c.StartLength = 4, 5 }, ErrInvalidLength},
		{"vertical fits", func(c *Config) { c.Width, c.Direction, c.StartLength = 4, DirUp, 5 }, nil},
		{"negative reward", func(c *Config) { c.Reward = -1 }, ErrInvalidReward},
		{"zero reward", func(c *Config) { c.Reward = 0 }, nil},
		{"bad direction", func(c *Config) { c.Direction = Direction(9) }, ErrInvalidDirection},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mut(&cfg)
		err := cfg.Validate()
		if tt.want == nil {
			if err != nil {
				t.Errorf("%s: Validate() = %v, want nil", tt.name, err)
			}
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: Validate() = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew() with a 0x0 grid should panic")
		}
	}()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 0, 0
	MustNew(cfg, nil)
}

func TestNewInitialState(t *testing.T) {
	s := newTestSim(t, DefaultConfig(), 12345)

	body := s.Body()
	if len(body) != 1 || body[0] != (world.Point{X: 3, Y: 3}) {
		t.Errorf("Body() = %v, want [(3,3)]", body)
	}
	if s.Direction() != DirRight {
		t.Errorf("Direction() = %v, want right", s.Direction())
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, want 0", s.Score())
	}
	if s.State() != StateRunning {
		t.Errorf("State() = %v, want running", s.State())
	}
	if !s.HasFood() {
		t.Fatal("HasFood() = false, want true")
	}
	if s.Occupied(s.Food()) {
		t.Errorf("Food() = %v lies on the body", s.Food())
	}
}

func TestStartLayoutWraps(t *testing.T) {
	cfg := Config{Width: 5, Height: 5, Start: world.Point{X: 1, Y: 0}, Direction: DirRight, StartLength: 3, Reward: 1}
	s := newTestSim(t, cfg, 1)

	want := []world.Point{{X: 1, Y: 0}, {X: 0, Y: 0}, {X: 4, Y: 0}}
	got := s.Body()
	if len(got) != len(want) {
		t.Fatalf("Body() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Body()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReversalIgnored(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Start = world.Point{X: 5, Y: 5}
	cfg.StartLength = 3
	s := newTestSim(t, cfg, 7)
	setFood(s, world.Point{X: 0, Y: 0})

	s.SetDirection(DirLeft)
	out := s.Tick()

	if out.Kind != OutcomeMoved {
		t.Fatalf("Tick() = %v, want moved", out.Kind)
	}
	if got := s.Head(); got != (world.Point{X: 6, Y: 5}) {
		t.Errorf("Head() = %v, want (6,5)", got)
	}
	if s.Direction() != DirRight {
		t.Errorf("Direction() = %v, want right", s.Direction())
	}
}

func TestReversalAllowedForSingleSegment(t *testing.T) {
	s := newTestSim(t, DefaultConfig(), 7)
	setFood(s, world.Point{X: 10, Y: 10})

	s.SetDirection(DirLeft)
	s.Tick()

	if got := s.Head(); got != (world.Point{X: 2, Y: 3}) {
		t.Errorf("Head() = %v, want (2,3)", got)
	}
}

func TestLatestDirectionWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Start = world.Point{X: 5, Y: 5}
	cfg.StartLength = 3
	s := newTestSim(t, cfg, 7)
	setFood(s, world.Point{X: 0, Y: 0})

	s.SetDirection(DirUp)
	s.SetDirection(DirDown)
	s.Tick()

	if got := s.Head(); got != (world.Point{X: 5, Y: 6}) {
		t.Errorf("Head() = %v, want (5,6)", got)
	}
}

func TestUnknownDirectionIgnored(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []Direction
		wantHead world.Point
		wantDir  Direction
	}{
		{"alone", []Direction{Direction(9)}, world.Point{X: 6, Y: 5}, DirRight},
		{"max value", []Direction{Direction(255)}, world.Point{X: 6, Y: 5}, DirRight},
		{"after valid input", []Direction{DirUp, Direction(9)}, world.Point{X: 5, Y: 4}, DirUp},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Start = world.Point{X: 5, Y: 5}
		cfg.StartLength = 3
		s := newTestSim(t, cfg, 7)
		setFood(s, world.Point{X: 0, Y: 0})

		for _, d := range tt.inputs {
			s.SetDirection(d)
		}
		out := s.Tick()

		if out.Kind != OutcomeMoved {
			t.Errorf("%s: Tick() = %v, want moved", tt.name, out.Kind)
		}
		if got := s.Head(); got != tt.wantHead {
			t.Errorf("%s: Head() = %v, want %v", tt.name, got, tt.wantHead)
		}
		if got := s.Direction(); got != tt.wantDir {
			t.Errorf("%s: Direction() = %v, want %v", tt.name, got, tt.wantDir)
		}
	}
}

func TestReversalCheckedAgainstCommittedHeading(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Start = world.Point{X: 5, Y: 5}
	cfg.StartLength = 3
	s := newTestSim(t, cfg, 7)
	setFood(s, world.Point{X: 0, Y: 0})

	// Up then Left within one tick must not turn the snake back onto its neck
	s.SetDirection(DirUp)
	s.SetDirection(DirLeft)
	s.Tick()

	if got := s.Head(); got != (world.Point{X: 5, Y: 4}) {
		t.Errorf("Head() = %v, want (5,4)", got)
	}
	if s.State() != StateRunning {
		t.Errorf("State() = %v, want running", s.State())
	}
}

func TestWrapAround(t *testing.T) {
	tests := []struct {
		dir   Direction
		start world.Point
		want  world.Point
	}{
		{DirRight, world.Point{X: 9, Y: 4}, world.Point{X: 0, Y: 4}},
		{DirLeft, world.Point{X: 0, Y: 4}, world.Point{X: 9, Y: 4}},
		{DirUp, world.Point{X: 2, Y: 0}, world.Point{X: 2, Y: 7}},
		{DirDown, world.Point{X: 2, Y: 7}, world.Point{X: 2, Y: 0}},
	}

	for _, tt := range tests {
		cfg := Config{Width: 10, Height: 8, Start: tt.start, Direction: tt.dir, StartLength: 1, Reward: 1}
		s := newTestSim(t, cfg, 3)
		setFood(s, world.Point{X: 5, Y: 5})

		if out := s.Tick(); out.Kind != OutcomeMoved {
			t.Errorf("%s: Tick() = %v, want moved", tt.dir, out.Kind)
		}
		if got := s.Head(); got != tt.want {
			t.Errorf("%s: Head() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestGrowth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Start = world.Point{X: 5, Y: 5}
	cfg.StartLength = 3
	cfg.Reward = 10
	s := newTestSim(t, cfg, 42)
	setFood(s, world.Point{X: 6, Y: 5})

	out := s.Tick()

	if out.Kind != OutcomeAteFood {
		t.Fatalf("Tick() = %v, want ate_food", out.Kind)
	}
	if out.Score != 10 || s.Score() != 10 {
		t.Errorf("score = %d (outcome %d), want 10", s.Score(), out.Score)
	}
	if s.Length() != 4 {
		t.Errorf("Length() = %d, want 4", s.Length())
	}
	if s.Head() != (world.Point{X: 6, Y: 5}) {
		t.Errorf("Head() = %v, want (6,5)", s.Head())
	}
	for _, p := range s.Body() {
		if p == s.Food() {
			t.Errorf("Food() = %v lies on the new body", s.Food())
		}
	}

	// The next move keeps the new length
	setFood(s, world.Point{X: 0, Y: 0})
	s.Tick()
	if s.Length() != 4 {
		t.Errorf("Length() after move = %d, want 4", s.Length())
	}
}

func TestSelfCollision(t *testing.T) {
	s := newTestSim(t, DefaultConfig(), 5)
	// Head at (2,2) heading left into (1,2), which is not the tail
	setBody(s, DirLeft,
		world.Point{X: 2, Y: 2},
		world.Point{X: 2, Y: 3},
		world.Point{X: 1, Y: 3},
		world.Point{X: 1, Y: 2},
		world.Point{X: 0, Y: 2},
	)
	setFood(s, world.Point{X: 10, Y: 10})
	s.score = 4

	out := s.Tick()
	if out.Kind != OutcomeGameOver || out.Score != 4 {
		t.Fatalf("Tick() = %+v, want game_over with score 4", out)
	}
	if s.State() != StateGameOver {
		t.Errorf("State() = %v, want game_over", s.State())
	}
	if s.Won() {
		t.Error("Won() = true after a crash")
	}

	before := s.Snapshot()
	if out := s.Tick(); out.Kind != OutcomeNoOp {
		t.Errorf("Tick() after game over = %v, want noop", out.Kind)
	}
	if after := s.Snapshot(); after != before {
		t.Errorf("Tick() after game over changed state: %+v -> %+v", before, after)
	}

	s.SetDirection(DirUp)
	if s.pending != DirLeft {
		t.Errorf("SetDirection() after game over changed pending to %v", s.pending)
	}

	s.Reset()
	if s.State() != StateRunning {
		t.Errorf("State() after Reset = %v, want running", s.State())
	}
	if s.Score() != 0 {
		t.Errorf("Score() after Reset = %d, want 0", s.Score())
	}
	if body := s.Body(); len(body) != 1 || body[0] != DefaultStart {
		t.Errorf("Body() after Reset = %v, want [%v]", body, DefaultStart)
	}
	if !s.HasFood() || s.Occupied(s.Food()) {
		t.Errorf("Food() after Reset = %v (present %v), want a free cell", s.Food(), s.HasFood())
	}
}

func TestHeadMayEnterVacatedTail(t *testing.T) {
	s := newTestSim(t, DefaultConfig(), 5)
	// A 2x2 loop: moving right from (1,1) enters the tail cell (2,1)
	setBody(s, DirUp,
		world.Point{X: 1, Y: 1},
		world.Point{X: 1, Y: 2},
		world.Point{X: 2, Y: 2},
		world.Point{X: 2, Y: 1},
	)
	setFood(s, world.Point{X: 10, Y: 10})

	s.SetDirection(DirRight)
	out := s.Tick()

	if out.Kind != OutcomeMoved {
		t.Fatalf("Tick() = %v, want moved", out.Kind)
	}
	if s.Head() != (world.Point{X: 2, Y: 1}) {
		t.Errorf("Head() = %v, want (2,1)", s.Head())
	}
	if s.Length() != 4 {
		t.Errorf("Length() = %d, want 4", s.Length())
	}
	if !s.Occupied(world.Point{X: 2, Y: 1}) {
		t.Error("head cell should be occupied after entering the vacated tail")
	}
}

func TestFullBoardMinimalGrid(t *testing.T) {
	cfg := Config{Width: 2, Height: 1, Start: world.Point{X: 0, Y: 0}, Direction: DirRight, StartLength: 1, Reward: 1}
	s := newTestSim(t, cfg, 9)

	if s.Food() != (world.Point{X: 1, Y: 0}) {
		t.Fatalf("Food() = %v, want (1,0)", s.Food())
	}

	out := s.Tick()
	if out.Kind != OutcomeFullBoard || out.Score != 1 {
		t.Fatalf("Tick() = %+v, want full_board with score 1", out)
	}
	if !out.Terminal() {
		t.Error("full_board outcome should be terminal")
	}
	if s.State() != StateGameOver || !s.Won() {
		t.Errorf("State() = %v, Won() = %v, want game_over and won", s.State(), s.Won())
	}
	if s.HasFood() {
		t.Error("HasFood() = true on a full board")
	}
	if s.Length() != 2 {
		t.Errorf("Length() = %d, want 2", s.Length())
	}
	if out := s.Tick(); out.Kind != OutcomeNoOp {
		t.Errorf("Tick() after full board = %v, want noop", out.Kind)
	}
}

func TestFullBoardTerminates(t *testing.T) {
	cfg := Config{Width: 3, Height: 1, Start: world.Point{X: 0, Y: 0}, Direction: DirRight, StartLength: 1, Reward: 1}

	for seed := int64(0); seed < 20; seed++ {
		s := newTestSim(t, cfg, seed)
		var out Outcome
		for i := 0; i < 10 && !out.Terminal(); i++ {
			out = s.Tick()
		}
		if out.Kind != OutcomeFullBoard {
			t.Errorf("seed %d: final outcome = %v, want full_board", seed, out.Kind)
		}
		if out.Score != 2 {
			t.Errorf("seed %d: final score = %d, want 2", seed, out.Score)
		}
	}
}

func TestInvariantsRandomPlay(t *testing.T) {
	cfg := Config{Width: 6, Height: 5, Start: world.Point{X: 2, Y: 2}, Direction: DirRight, StartLength: 2, Reward: 1}
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for seed := int64(1); seed <= 25; seed++ {
		s := newTestSim(t, cfg, seed)
		input := rand.New(rand.NewSource(seed * 31))
		prevLen := s.Length()

		for i := 0; i < 2000; i++ {
			if input.Intn(3) == 0 {
				s.SetDirection(dirs[input.Intn(len(dirs))])
			}
			out := s.Tick()

			body := s.Body()
			if len(body) > cfg.Width*cfg.Height {
				t.Fatalf("seed %d tick %d: length %d exceeds grid", seed, i, len(body))
			}
			if out.Kind != OutcomeNoOp && len(body) < prevLen {
				t.Fatalf("seed %d tick %d: length shrank %d -> %d", seed, i, prevLen, len(body))
			}
			prevLen = len(body)

			seen := make(map[world.Point]bool, len(body))
			for _, p := range body {
				if p.X < 0 || p.X >= cfg.Width || p.Y < 0 || p.Y >= cfg.Height {
					t.Fatalf("seed %d tick %d: segment %v out of bounds", seed, i, p)
				}
				if seen[p] && s.State() == StateRunning {
					t.Fatalf("seed %d tick %d: segment %v repeated while running", seed, i, p)
				}
				seen[p] = true
			}
			if s.HasFood() && seen[s.Food()] {
				t.Fatalf("seed %d tick %d: food %v on body", seed, i, s.Food())
			}

			if out.Terminal() {
				s.Reset()
				prevLen = s.Length()
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := DefaultConfig()
	s1 := newTestSim(t, cfg, 12345)
	s2 := newTestSim(t, cfg, 12345)

	script := map[int]Direction{5: DirDown, 12: DirLeft, 20: DirUp, 33: DirRight, 41: DirDown}
	for i := 0; i < 100; i++ {
		if d, ok := script[i]; ok {
			s1.SetDirection(d)
			s2.SetDirection(d)
		}
		o1, o2 := s1.Tick(), s2.Tick()
		if o1 != o2 {
			t.Fatalf("tick %d: outcomes differ: %+v vs %+v", i, o1, o2)
		}
	}

	if s1.Snapshot() != s2.Snapshot() {
		t.Errorf("Snapshot mismatch: %+v vs %+v", s1.Snapshot(), s2.Snapshot())
	}
}

func TestResetIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartLength = 3
	s := newTestSim(t, cfg, 77)

	for i := 0; i < 15; i++ {
		s.Tick()
	}
	s.Reset()
	first := s.Body()
	s.Reset()
	second := s.Body()

	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("Body() lengths after Reset = %d, %d, want 3", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Body()[%d] differs across resets: %v vs %v", i, first[i], second[i])
		}
	}
	if s.Ticks() != 0 || s.Score() != 0 || s.State() != StateRunning {
		t.Errorf("Reset() left ticks=%d score=%d state=%v", s.Ticks(), s.Score(), s.State())
	}
}

func TestBodyIsCopy(t *testing.T) {
	s := newTestSim(t, DefaultConfig(), 1)
	body := s.Body()
	body[0] = world.Point{X: 99, Y: 99}

	if s.Head() == (world.Point{X: 99, Y: 99}) {
		t.Error("mutating Body() result changed the simulation")
	}
}
