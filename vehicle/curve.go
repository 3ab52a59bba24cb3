package vehicle

import (
	"math"

	"github.com/lixenwraith/ngeng/parameter"
)

// Curve is the per-gear power band: a logistic ramp-up gate times a mirrored
// logistic fall-off gate, scaled by the speed fraction of the gear ceiling
type Curve struct {
	RampSharpness float64
	FallSharpness float64
}

// NewCurve takes the gate sharpness constants from tuning
func NewCurve(t parameter.Tuning) Curve {
	return Curve{RampSharpness: t.RampSharpness, FallSharpness: t.FallSharpness}
}

// ramp is near 0 below the mult threshold and near 1 above it
func (c Curve) ramp(m, threshold float64) float64 {
	return 1 / (1 + math.Exp(-c.RampSharpness*(m-threshold)))
}

// fall is near 1 below the drop threshold and near 0 above it
func (c Curve) fall(m, threshold float64) float64 {
	return 1 / (1 + math.Exp(c.FallSharpness*2*(m-threshold)))
}

// Multiplier returns the raw power band multiplier in [0, 1]
// Zero in neutral (no ceiling) and above the gear ceiling
func (c Curve) Multiplier(speed float64, g parameter.Gear) float64 {
	if g.MaxSpeed == 0 || speed > g.MaxSpeed {
		return 0
	}
	m := speed / g.MaxSpeed
	raw := m * c.ramp(m, g.AccelMultThreshold) * c.fall(m, g.AccelDropThreshold)
	return math.Max(0, math.Min(raw, 1))
}

// Bonus returns the extra acceleration added on top of the flat base acceleration
func (c Curve) Bonus(speed float64, g parameter.Gear) float64 {
	return g.AccelBonus * c.Multiplier(speed, g)
}
