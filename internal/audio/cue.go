// Package audio plays short synthesized sound cues for game events.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueEat Cue = iota
	CueCrash
	CueWin
)

// String returns a human-readable cue name.
func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueCrash:
		return "crash"
	case CueWin:
		return "win"
	default:
		return "unknown"
	}
}

// note is one tone of a cue. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

func cueNotes(c Cue) []note {
	switch c {
	case CueEat:
		return []note{{880, 50 * time.Millisecond}}
	case CueCrash:
		return []note{
			{220, 120 * time.Millisecond},
			{0, 40 * time.Millisecond},
			{110, 200 * time.Millisecond},
		}
	case CueWin:
		// C5 E5 G5 C6
		return []note{
			{523.25, 80 * time.Millisecond},
			{659.25, 80 * time.Millisecond},
			{783.99, 80 * time.Millisecond},
			{1046.50, 240 * time.Millisecond},
		}
	default:
		return nil
	}
}

// CueStreamer builds a finite streamer for the cue at the given sample rate.
func CueStreamer(c Cue, rate beep.SampleRate) beep.Streamer {
	notes := cueNotes(c)
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := rate.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		parts = append(parts, beep.Take(samples, tone))
	}
	return beep.Seq(parts...)
}
