package parameter

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Profile names
const (
	ProfileModern   = "modern"
	ProfileClassic  = "classic"
	ProfileExtended = "extended"

	DefaultProfile = ProfileModern
)

// Tuning is the complete set of constants the motion model integrates with
// Values are read-only once validated and may be shared between readers
type Tuning struct {
	Accel          float64
	Drag           float64
	BrakeForce     float64
	DownshiftBrake float64
	CruiseResponse float64
	HoldTimeout    time.Duration
	RampSharpness  float64
	FallSharpness  float64
	UnitScaling    float64
	MaxDistance    float64

	Gears GearTable
}

// Validate rejects tunings the frame loop must never start with
func (t Tuning) Validate() error {
	if err := t.Gears.Validate(); err != nil {
		return err
	}
	scalars := []struct {
		name  string
		value float64
	}{
		{"accel", t.Accel},
		{"drag", t.Drag},
		{"brake_force", t.BrakeForce},
		{"downshift_brake", t.DownshiftBrake},
		{"cruise_response", t.CruiseResponse},
		{"ramp_sharpness", t.RampSharpness},
		{"fall_sharpness", t.FallSharpness},
	}
	for _, s := range scalars {
		if s.value < 0 || !finite(s.value) {
			return fmt.Errorf("tuning %s: must be finite and non-negative, got %g", s.name, s.value)
		}
	}
	if !finite(t.UnitScaling) || t.UnitScaling <= 0 {
		return fmt.Errorf("tuning unit_scaling: must be positive, got %g", t.UnitScaling)
	}
	if !finite(t.MaxDistance) || t.MaxDistance <= 0 {
		return fmt.Errorf("tuning max_distance: must be positive, got %g", t.MaxDistance)
	}
	if t.HoldTimeout <= 0 {
		return fmt.Errorf("tuning hold_timeout: must be positive, got %s", t.HoldTimeout)
	}
	return nil
}

var errUnknownProfile = errors.New("unknown profile")

// profiles builds fresh tunings so callers never alias the built-in tables
var profiles = map[string]func() Tuning{
	ProfileModern:   modernTuning,
	ProfileClassic:  classicTuning,
	ProfileExtended: extendedTuning,
}

// Profile returns the named built-in tuning
func Profile(name string) (Tuning, error) {
	build, ok := profiles[name]
	if !ok {
		return Tuning{}, fmt.Errorf("%w %q (available: %v)", errUnknownProfile, name, ProfileNames())
	}
	return build(), nil
}

// ProfileNames lists built-in profiles in sorted order
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the default profile tuning
func Default() Tuning {
	return modernTuning()
}

func baseTuning() Tuning {
	return Tuning{
		Accel:          Accel,
		Drag:           Drag,
		BrakeForce:     BrakeForce,
		DownshiftBrake: DownshiftBrake,
		CruiseResponse: CruiseResponse,
		HoldTimeout:    HoldTimeout,
		RampSharpness:  RampSharpness,
		FallSharpness:  FallSharpness,
		UnitScaling:    UnitScaling,
		MaxDistance:    MaxDistance,
	}
}

func modernTuning() Tuning {
	t := baseTuning()
	t.Gears = GearTable{
		{Name: "Neutral", MaxSpeed: 0.00, AccelBonus: 0.00, AccelMultThreshold: 0.00, AccelDropThreshold: 0.00},
		{Name: "Gear #1", MaxSpeed: 3.00, AccelBonus: 0.02, AccelMultThreshold: 0.00, AccelDropThreshold: 1.00},
		{Name: "Gear #2", MaxSpeed: 6.00, AccelBonus: 0.05, AccelMultThreshold: 0.25, AccelDropThreshold: 1.00},
		{Name: "Gear #3", MaxSpeed: 18.0, AccelBonus: 0.25, AccelMultThreshold: 0.25, AccelDropThreshold: 1.00},
		{Name: "Gear #4", MaxSpeed: 32.0, AccelBonus: 0.50, AccelMultThreshold: 0.90, AccelDropThreshold: 1.00},
	}
	return t
}

// classicTuning is the flat-acceleration model: same ceilings, no power band
func classicTuning() Tuning {
	t := modernTuning()
	for i := range t.Gears {
		t.Gears[i].AccelBonus = 0
	}
	return t
}

func extendedTuning() Tuning {
	t := baseTuning()
	t.Gears = GearTable{
		{Name: "Neutral", MaxSpeed: 0, AccelBonus: 0, AccelMultThreshold: 0.00, AccelDropThreshold: 0.0},
		{Name: "Gear #1", MaxSpeed: 3, AccelBonus: 2.25, AccelMultThreshold: 0.00, AccelDropThreshold: 0.0},
		{Name: "Gear #2", MaxSpeed: 6, AccelBonus: 5, AccelMultThreshold: 0.25, AccelDropThreshold: 1.0},
		{Name: "Gear #3", MaxSpeed: 18, AccelBonus: 8, AccelMultThreshold: 0.25, AccelDropThreshold: 1.0},
		{Name: "Gear #4", MaxSpeed: 32, AccelBonus: 10, AccelMultThreshold: 0.50, AccelDropThreshold: 1.0},
		{Name: "Gear #5", MaxSpeed: 64, AccelBonus: 15, AccelMultThreshold: 0.60, AccelDropThreshold: 1.0},
		{Name: "Gear #6", MaxSpeed: 128, AccelBonus: 18, AccelMultThreshold: 0.65, AccelDropThreshold: 1.0},
		{Name: "Gear #7", MaxSpeed: 256, AccelBonus: 22, AccelMultThreshold: 0.75, AccelDropThreshold: 1.0},
		{Name: "Gear #8", MaxSpeed: 512, AccelBonus: 24, AccelMultThreshold: 0.75, AccelDropThreshold: 1.0},
		{Name: "Gear #9", MaxSpeed: 1024, AccelBonus: 48, AccelMultThreshold: 0.75, AccelDropThreshold: 1.0},
		{Name: "Gear #10", MaxSpeed: 2048, AccelBonus: 96, AccelMultThreshold: 0.90, AccelDropThreshold: 1.0},
		{Name: "Gear MAX", MaxSpeed: 99_999, AccelBonus: 999, AccelMultThreshold: 0.00, AccelDropThreshold: 1.0},
		{Name: "Gear ULTRA", MaxSpeed: 9_999_999, AccelBonus: 9_999, AccelMultThreshold: 0.00, AccelDropThreshold: 1.2},
		{Name: "Gear ProMAX", MaxSpeed: 99_999_999, AccelBonus: 9_999_999, AccelMultThreshold: 0.00, AccelDropThreshold: 2.0},
	}
	return t
}
