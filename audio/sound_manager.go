package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager owns the speaker, the engine hum and one-shot cues
// Every method is a no-op for output until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	engine      *EngineGenerator
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager; volume is a base-2 exponent (0 = unity)
func NewSoundManager(volume float64, muted bool) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer: mixer,
		volume: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   volume,
			Silent:   muted,
		},
		engine: NewEngineGenerator(sampleRate),
		muted:  muted,
	}
}

// Initialize opens the speaker and starts the engine hum
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.mixer.Add(sm.engine)
	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play mixes a one-shot cue
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := cueStreamer(sampleRate, c)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SetEngineLoad sets hum pitch from a 0..1 load fraction
func (sm *SoundManager) SetEngineLoad(load float64) {
	sm.engine.SetLoad(load)
}

// SetMuted silences all output without stopping streams
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if !sm.initialized {
		sm.volume.Silent = muted
		return
	}
	speaker.Lock()
	sm.volume.Silent = muted
	speaker.Unlock()
}

// Muted reports mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}
