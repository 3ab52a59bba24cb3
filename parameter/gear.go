package parameter

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGearTable is wrapped by every gear table validation failure
var ErrInvalidGearTable = errors.New("invalid gear table")

// Gear holds per-gear tuning constants
type Gear struct {
	Name string

	// MaxSpeed is the gear ceiling; exceeding it triggers the over-speed penalty
	MaxSpeed float64

	// AccelBonus is the peak extra acceleration the power band adds on top of Accel
	AccelBonus float64

	// AccelMultThreshold is the speed fraction where the ramp-up gate is centered
	AccelMultThreshold float64

	// AccelDropThreshold is the speed fraction where the fall-off gate is centered
	AccelDropThreshold float64
}

// GearTable is indexed by gear number, 0 is neutral
type GearTable []Gear

// Count returns the number of gears including neutral
func (t GearTable) Count() int {
	return len(t)
}

// Top returns the highest gear index
func (t GearTable) Top() int {
	return len(t) - 1
}

// Validate checks table totality and ceiling ordering
func (t GearTable) Validate() error {
	if len(t) < 2 {
		return fmt.Errorf("%w: need neutral and at least one gear, got %d entries", ErrInvalidGearTable, len(t))
	}
	if t[0].MaxSpeed != 0 {
		return fmt.Errorf("%w: neutral max speed must be 0, got %g", ErrInvalidGearTable, t[0].MaxSpeed)
	}
	for i, g := range t {
		if !finite(g.MaxSpeed, g.AccelBonus, g.AccelMultThreshold, g.AccelDropThreshold) {
			return fmt.Errorf("%w: gear %d has a non-finite value", ErrInvalidGearTable, i)
		}
		if g.MaxSpeed < 0 || g.AccelBonus < 0 {
			return fmt.Errorf("%w: gear %d has negative max speed or bonus", ErrInvalidGearTable, i)
		}
		if i >= 2 && g.MaxSpeed <= t[i-1].MaxSpeed {
			return fmt.Errorf("%w: gear %d max speed %g not above gear %d max speed %g",
				ErrInvalidGearTable, i, g.MaxSpeed, i-1, t[i-1].MaxSpeed)
		}
	}
	if t[1].MaxSpeed <= 0 {
		return fmt.Errorf("%w: gear 1 max speed must be positive, got %g", ErrInvalidGearTable, t[1].MaxSpeed)
	}
	return nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
