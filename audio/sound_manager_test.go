package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if math.Abs(buf[j][0]) > 1 || math.Abs(buf[j][1]) > 1 {
				t.Fatalf("sample %d out of range: %v", total+j, buf[j])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer did not finish")
	return total
}

func TestEngineGeneratorRange(t *testing.T) {
	g := NewEngineGenerator(sampleRate)
	g.SetLoad(1)

	samples := make([][2]float64, 4096)
	n, ok := g.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Expected full buffer, got n=%d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if math.Abs(samples[i][0]) > engineAmplitude+1e-9 {
			t.Fatalf("Sample %d exceeds amplitude: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Fatalf("Sample %d not mono: %v", i, samples[i])
		}
	}
	if g.Err() != nil {
		t.Errorf("Expected no error, got %v", g.Err())
	}
}

func TestEngineGeneratorGlidesToTarget(t *testing.T) {
	g := NewEngineGenerator(sampleRate)
	if g.Frequency() != engineIdleFreq {
		t.Fatalf("Expected idle %g, got %g", engineIdleFreq, g.Frequency())
	}

	g.SetLoad(0.5)
	samples := make([][2]float64, sampleRate.N(50*time.Millisecond))
	g.Stream(samples)

	mid := g.Frequency()
	want := engineIdleFreq + engineRangeFreq*0.5
	if mid <= engineIdleFreq || mid >= want {
		t.Errorf("Expected pitch between idle and target after 50ms, got %g", mid)
	}

	long := make([][2]float64, sampleRate.N(2*time.Second))
	g.Stream(long)
	if math.Abs(g.Frequency()-want) > 0.01 {
		t.Errorf("Expected pitch to settle at %g, got %g", want, g.Frequency())
	}
}

func TestEngineGeneratorClampsLoad(t *testing.T) {
	g := NewEngineGenerator(sampleRate)

	g.SetLoad(5)
	if got := math.Float64frombits(g.target.Load()); got != engineIdleFreq+engineRangeFreq {
		t.Errorf("Expected clamped max target, got %g", got)
	}
	g.SetLoad(math.NaN())
	if got := math.Float64frombits(g.target.Load()); got != engineIdleFreq {
		t.Errorf("Expected idle target for NaN load, got %g", got)
	}
}

func TestCueStreamersAreFinite(t *testing.T) {
	tests := []struct {
		cue  Cue
		want int
	}{
		{CueShift, sampleRate.N(shiftDuration)},
		{CueOverSpeed, sampleRate.N(overSpeedDuration)},
		{CueCruise, 2*sampleRate.N(cruiseDuration/2) + sampleRate.N(20*time.Millisecond)},
	}
	for _, tt := range tests {
		s := cueStreamer(sampleRate, tt.cue)
		if s == nil {
			t.Fatalf("cue %d: expected streamer", tt.cue)
		}
		if got := drain(t, s); got != tt.want {
			t.Errorf("cue %d: expected %d samples, got %d", tt.cue, tt.want, got)
		}
	}

	if cueStreamer(sampleRate, Cue(99)) != nil {
		t.Error("Expected nil streamer for unknown cue")
	}
}

func TestClickDecays(t *testing.T) {
	g := NewClickGenerator(sampleRate)
	samples := make([][2]float64, sampleRate.N(200*time.Millisecond))
	g.Stream(samples)

	tail := samples[len(samples)-100:]
	for i, s := range tail {
		if math.Abs(s[0]) > 0.01 {
			t.Fatalf("Expected decayed tail, sample %d = %f", i, s[0])
		}
	}
}

func TestSoundManagerUninitializedIsSafe(t *testing.T) {
	sm := NewSoundManager(-1, false)

	sm.Play(CueShift)
	sm.SetEngineLoad(0.7)
	sm.SetMuted(true)
	sm.Cleanup()

	if !sm.Muted() {
		t.Error("Expected mute state tracked before initialization")
	}
	if !sm.volume.Silent {
		t.Error("Expected volume silenced")
	}
	if sm.mixer.Len() != 0 {
		t.Errorf("Expected no streams mixed, got %d", sm.mixer.Len())
	}
}
