package parameter

import "time"

// Propulsion
const (
	// Accel is the flat forward acceleration applied while forward thrust is held (units/s²)
	Accel = 6.0

	// Drag is the coasting deceleration when no thrust is applied or in neutral
	Drag = 2.5

	// BrakeForce is the flat deceleration while the brake is held
	BrakeForce = 8.0

	// DownshiftBrake is the deceleration applied while speed exceeds the active gear ceiling
	DownshiftBrake = 10.0
)

// Cruise hold
const (
	// CruiseResponse is the per-second gain of the cruise convergence law
	CruiseResponse = 5.0
)

// Input hold
const (
	// HoldTimeout is how long a held input stays active after its last key event
	HoldTimeout = 150 * time.Millisecond
)

// Acceleration curve sharpness
const (
	// RampSharpness is K_up of the logistic ramp-up gate
	RampSharpness = 30.0

	// FallSharpness is K_down of the logistic fall-off gate
	FallSharpness = 30.0
)

// Display units
const (
	// UnitScaling converts internal distance/speed units to meters
	UnitScaling = 1.0

	// MaxDistance is the trip length in display units (km)
	MaxDistance = 36_000 * UnitScaling / 1000
)
