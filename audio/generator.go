package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
)

// Engine hum pitch range
const (
	engineIdleFreq  = 55.0
	engineRangeFreq = 165.0

	// engineGlide is the per-second fraction of the pitch gap closed
	engineGlide = 8.0

	engineAmplitude = 0.12
)

// EngineGenerator is an endless engine hum whose pitch follows SetLoad
// SetLoad may be called from the frame loop while the speaker goroutine streams
type EngineGenerator struct {
	sr     beep.SampleRate
	target atomic.Uint64 // float64 bits of the target frequency
	freq   float64
	phase  float64
}

// NewEngineGenerator creates a hum idling at the lowest pitch
func NewEngineGenerator(sr beep.SampleRate) *EngineGenerator {
	g := &EngineGenerator{sr: sr, freq: engineIdleFreq}
	g.target.Store(math.Float64bits(engineIdleFreq))
	return g
}

// SetLoad sets the pitch from a 0..1 load fraction, clamped
func (g *EngineGenerator) SetLoad(load float64) {
	if load < 0 || math.IsNaN(load) {
		load = 0
	}
	if load > 1 {
		load = 1
	}
	g.target.Store(math.Float64bits(engineIdleFreq + engineRangeFreq*load))
}

// Frequency returns the current (glided) pitch
func (g *EngineGenerator) Frequency() float64 {
	return g.freq
}

func (g *EngineGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	target := math.Float64frombits(g.target.Load())
	step := math.Min(engineGlide/float64(g.sr), 1)

	for i := range samples {
		g.freq += (target - g.freq) * step

		// Sine fundamental plus a softer saw an octave up
		saw := 2*math.Mod(2*g.phase, 1) - 1
		sample := engineAmplitude * (0.7*math.Sin(2*math.Pi*g.phase) + 0.3*saw)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += g.freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
	}
	return len(samples), true
}

func (g *EngineGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Harmonic stack for a harsh buzz
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// Fade in over 20ms
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// ClickGenerator generates a short mechanical clunk: decaying noise over a low thump
type ClickGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewClickGenerator creates a click generator with a time-derived noise seed
func NewClickGenerator(sr beep.SampleRate) *ClickGenerator {
	return &ClickGenerator{
		sr:   sr,
		seed: time.Now().UnixNano() & 0x7fffffff,
	}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, fast decay
		envelope := math.Exp(-t * 40)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		thump := 0.5 * math.Sin(2*math.Pi*90*t)

		sample := 0.3 * envelope * (0.4*noise + thump)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}
