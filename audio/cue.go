package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue is a one-shot sound effect
type Cue uint8

const (
	CueShift Cue = iota
	CueOverSpeed
	CueCruise
)

// Cue durations
const (
	shiftDuration     = 60 * time.Millisecond
	overSpeedDuration = 150 * time.Millisecond
	cruiseDuration    = 120 * time.Millisecond

	cruiseFreq    = 880.0
	overSpeedFreq = 120.0
)

// cueStreamer builds a finite streamer for c, nil for unknown cues
func cueStreamer(sr beep.SampleRate, c Cue) beep.Streamer {
	switch c {
	case CueShift:
		return beep.Take(sr.N(shiftDuration), NewClickGenerator(sr))
	case CueOverSpeed:
		return beep.Take(sr.N(overSpeedDuration), NewBuzzGenerator(sr, overSpeedFreq))
	case CueCruise:
		sine, err := generators.SineTone(sr, cruiseFreq)
		if err != nil {
			return nil
		}
		// Two short pips at quarter amplitude
		pip := sr.N(cruiseDuration / 2)
		return &effects.Gain{
			Streamer: beep.Seq(
				beep.Take(pip, sine),
				beep.Silence(sr.N(20*time.Millisecond)),
				beep.Take(pip, sine),
			),
			Gain: -0.75,
		}
	default:
		return nil
	}
}
