package game

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/gridsnake/internal/snake"
	"github.com/samdwyer/gridsnake/internal/world"
)

// Environment variables read by LoadConfig.
const (
	EnvSeed        = "SNAKE_SEED"
	EnvWidth       = "SNAKE_WIDTH"
	EnvHeight      = "SNAKE_HEIGHT"
	EnvTickMS      = "SNAKE_TICK_MS"
	EnvStartLength = "SNAKE_START_LENGTH"
	EnvReward      = "SNAKE_REWARD"
	EnvSound       = "SNAKE_SOUND"
	EnvTheme       = "SNAKE_THEME"
	EnvLogFile     = "SNAKE_LOG_FILE"
)

// DefaultTickInterval is the time between simulation steps.
const DefaultTickInterval = 150 * time.Millisecond

// Largest arena a terminal can reasonably draw. Each cell is two columns wide.
const (
	MaxWidth  = 200
	MaxHeight = 100
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible food placement.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Width, Height int
	TickInterval  time.Duration
	StartLength   int
	Reward        int
	Sound         bool   // Play sound cues
	Theme         string // Theme ID from themes.json
	LogFile       string // Empty discards the log
}

// DefaultConfig returns the standard 20x20 game.
func DefaultConfig() Config {
	return Config{
		Width:        world.DefaultWidth,
		Height:       world.DefaultHeight,
		TickInterval: DefaultTickInterval,
		StartLength:  snake.DefaultStartLength,
		Reward:       snake.DefaultReward,
		Sound:        true,
		Theme:        "classic",
	}
}

// LoadConfig reads the configuration from SNAKE_* environment variables,
// starting from DefaultConfig.
func LoadConfig() (Config, error) {
	return loadConfig(os.LookupEnv)
}

func loadConfig(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	// A zero max leaves the value unbounded here; the simulation validates the rest.
	ints := []struct {
		key string
		dst *int
		max int
	}{
		{EnvWidth, &cfg.Width, MaxWidth},
		{EnvHeight, &cfg.Height, MaxHeight},
		{EnvStartLength, &cfg.StartLength, 0},
		{EnvReward, &cfg.Reward, 0},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", f.key, err)
		}
		if f.max > 0 && n > f.max {
			return cfg, fmt.Errorf("invalid %s: must be at most %d, got %d", f.key, f.max, n)
		}
		*f.dst = n
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if v, ok := lookup(EnvTickMS); ok && v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvTickMS, err)
		}
		if ms <= 0 {
			return cfg, fmt.Errorf("invalid %s: must be positive, got %d", EnvTickMS, ms)
		}
		cfg.TickInterval = time.Duration(ms) * time.Millisecond
	}

	if v, ok := lookup(EnvSound); ok && v != "" {
		sound, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvSound, err)
		}
		cfg.Sound = sound
	}

	if v, ok := lookup(EnvTheme); ok && v != "" {
		cfg.Theme = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}

	if err := cfg.SnakeConfig().Validate(); err != nil {
		return cfg, fmt.Errorf("invalid arena: %w", err)
	}
	return cfg, nil
}

// SnakeConfig returns the simulation settings for a round.
func (c Config) SnakeConfig() snake.Config {
	sc := snake.DefaultConfig()
	sc.Width = c.Width
	sc.Height = c.Height
	sc.StartLength = c.StartLength
	sc.Reward = c.Reward
	return sc
}
