package vehicle

import "time"

// State is the full vehicle state; Model.Snapshot returns it by value
type State struct {
	Gear     int
	LastGear int // gear before the most recent shift

	Speed       float64
	Distance    float64 // non-decreasing
	ElapsedTime float64 // seconds of simulated time, non-decreasing

	ForwardActive    bool
	LastForwardEvent time.Time

	BrakeActive    bool
	LastBrakeEvent time.Time

	CruiseActive bool
	CruiseSpeed  float64 // target latched on engage

	// OverSpeed is set by the penalty step when speed exceeded the gear ceiling this frame
	OverSpeed bool

	// Downshifting is the clamped speed still above the ceiling after shifting into a lower gear
	Downshifting bool
}

// initialState is the state at simulation start
func initialState() State {
	return State{Gear: 1}
}
