package config

import (
	"fmt"

	"github.com/lixenwraith/ngeng/input"
	"github.com/lixenwraith/ngeng/parameter"
)

// Defaults applied when neither file nor flags set a value
const (
	DefaultFPS    = 60
	DefaultVolume = -1.0

	maxFPS = 240
)

// Config is the fully resolved, validated startup configuration
type Config struct {
	Profile string
	Tuning  parameter.Tuning
	Keys    *input.KeyTable
	FPS     int

	AudioEnabled bool
	Volume       float64
	Muted        bool
}

// Overrides are command-line values; zero values defer to the file
type Overrides struct {
	Profile string
	FPS     int
	Mute    bool
}

// Resolve layers built-in profile, file, then flags, and validates the result
// f may be nil when no config file is used
func Resolve(f *File, o Overrides) (Config, error) {
	if f == nil {
		f = &File{}
	}

	name := parameter.DefaultProfile
	if f.Profile != "" {
		name = f.Profile
	}
	if o.Profile != "" {
		name = o.Profile
	}
	tuning, err := parameter.Profile(name)
	if err != nil {
		return Config{}, err
	}

	applyTuning(&tuning, f.Tuning)
	if len(f.Gears) > 0 {
		gears, err := buildGears(f.Gears)
		if err != nil {
			return Config{}, err
		}
		tuning.Gears = gears
	}
	if err := tuning.Validate(); err != nil {
		return Config{}, fmt.Errorf("profile %q: %w", name, err)
	}

	keys := input.DefaultKeyTable()
	if err := input.ApplyBindings(keys, f.Keys); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Profile:      name,
		Tuning:       tuning,
		Keys:         keys,
		FPS:          DefaultFPS,
		AudioEnabled: true,
		Volume:       DefaultVolume,
		Muted:        o.Mute,
	}
	if f.Audio.Enabled != nil {
		cfg.AudioEnabled = *f.Audio.Enabled
	}
	if f.Audio.Volume != nil {
		cfg.Volume = *f.Audio.Volume
	}
	if f.Display.FPS != 0 {
		cfg.FPS = f.Display.FPS
	}
	if o.FPS != 0 {
		cfg.FPS = o.FPS
	}
	if cfg.FPS < 1 || cfg.FPS > maxFPS {
		return Config{}, fmt.Errorf("fps: must be in [1, %d], got %d", maxFPS, cfg.FPS)
	}
	return cfg, nil
}

func applyTuning(t *parameter.Tuning, s TuningSection) {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&t.Accel, s.Accel)
	set(&t.Drag, s.Drag)
	set(&t.BrakeForce, s.BrakeForce)
	set(&t.DownshiftBrake, s.DownshiftBrake)
	set(&t.CruiseResponse, s.CruiseResponse)
	set(&t.RampSharpness, s.RampSharpness)
	set(&t.FallSharpness, s.FallSharpness)
	set(&t.UnitScaling, s.UnitScaling)
	set(&t.MaxDistance, s.MaxDistance)
	if s.HoldTimeout != nil {
		t.HoldTimeout = *s.HoldTimeout
	}
}

// buildGears converts [[gears]] entries; explicit indices must be contiguous from 0
func buildGears(sections []GearSection) (parameter.GearTable, error) {
	table := make(parameter.GearTable, len(sections))
	for i, s := range sections {
		if s.Index != nil && *s.Index != i {
			return nil, fmt.Errorf("gears[%d]: %w: index %d out of sequence", i, parameter.ErrInvalidGearTable, *s.Index)
		}
		name := s.Name
		if name == "" {
			name = defaultGearName(i)
		}
		table[i] = parameter.Gear{
			Name:               name,
			MaxSpeed:           s.MaxSpeed,
			AccelBonus:         s.AccelBonus,
			AccelMultThreshold: s.AccelMultThreshold,
			AccelDropThreshold: s.AccelDropThreshold,
		}
	}
	return table, nil
}

func defaultGearName(i int) string {
	if i == 0 {
		return "Neutral"
	}
	return fmt.Sprintf("Gear #%d", i)
}
