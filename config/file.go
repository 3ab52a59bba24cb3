package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// File mirrors the TOML config layout; every section is optional
type File struct {
	Profile string              `toml:"profile"`
	Tuning  TuningSection       `toml:"tuning"`
	Gears   []GearSection       `toml:"gears"`
	Keys    map[string][]string `toml:"keys"`
	Audio   AudioSection        `toml:"audio"`
	Display DisplaySection      `toml:"display"`
}

// TuningSection overrides scalar tuning constants; nil fields keep the profile value
type TuningSection struct {
	Accel          *float64       `toml:"accel"`
	Drag           *float64       `toml:"drag"`
	BrakeForce     *float64       `toml:"brake_force"`
	DownshiftBrake *float64       `toml:"downshift_brake"`
	CruiseResponse *float64       `toml:"cruise_response"`
	RampSharpness  *float64       `toml:"ramp_sharpness"`
	FallSharpness  *float64       `toml:"fall_sharpness"`
	UnitScaling    *float64       `toml:"unit_scaling"`
	MaxDistance    *float64       `toml:"max_distance"`
	HoldTimeout    *time.Duration `toml:"hold_timeout"`
}

// GearSection is one [[gears]] entry; a non-empty list replaces the whole table
type GearSection struct {
	Index              *int    `toml:"index"`
	Name               string  `toml:"name"`
	MaxSpeed           float64 `toml:"max_speed"`
	AccelBonus         float64 `toml:"accel_bonus"`
	AccelMultThreshold float64 `toml:"accel_mult_threshold"`
	AccelDropThreshold float64 `toml:"accel_drop_threshold"`
}

type AudioSection struct {
	Enabled *bool    `toml:"enabled"`
	Volume  *float64 `toml:"volume"`
}

type DisplaySection struct {
	FPS int `toml:"fps"`
}

// Load decodes a TOML config file
func Load(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &f, nil
}

// Parse decodes TOML config data
func Parse(data string) (*File, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &f, nil
}

// checkUndecoded rejects keys the layout does not define, catching typos
func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	sort.Strings(keys)
	return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
}
