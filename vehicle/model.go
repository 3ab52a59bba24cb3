package vehicle

import (
	"math"
	"time"

	"github.com/lixenwraith/ngeng/engine"
	"github.com/lixenwraith/ngeng/parameter"
)

// Model owns the single vehicle state and advances it once per frame
type Model struct {
	tuning parameter.Tuning
	curve  Curve
	clock  engine.TimeProvider
	state  State
}

// NewModel validates tuning and creates a model in gear 1 at rest
// clock must be the same monotonic source that timestamps input events
func NewModel(tuning parameter.Tuning, clock engine.TimeProvider) (*Model, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	return &Model{
		tuning: tuning,
		curve:  NewCurve(tuning),
		clock:  clock,
		state:  initialState(),
	}, nil
}

// Snapshot returns a copy of the current state
func (m *Model) Snapshot() State {
	return m.state
}

// Tuning returns the constants the model integrates with
func (m *Model) Tuning() parameter.Tuning {
	return m.tuning
}

// CurrentGear returns tuning data of the active gear
func (m *Model) CurrentGear() parameter.Gear {
	return m.tuning.Gears[m.state.Gear]
}

// AccelerationBonus returns the power band bonus for speed in gear
func (m *Model) AccelerationBonus(speed float64, gear int) float64 {
	return m.curve.Bonus(speed, m.tuning.Gears[gear])
}

// AccelerationMultiplier returns the raw power band multiplier for speed in gear
func (m *Model) AccelerationMultiplier(speed float64, gear int) float64 {
	return m.curve.Multiplier(speed, m.tuning.Gears[gear])
}

// Advance integrates one frame of dt seconds; dt is 0 on the first frame
func (m *Model) Advance(dt float64) {
	s := &m.state
	t := &m.tuning
	now := m.clock.Now()

	// Held inputs decay independently once their key stops repeating
	if s.BrakeActive && now.Sub(s.LastBrakeEvent) > t.HoldTimeout {
		s.BrakeActive = false
	}
	if s.ForwardActive && now.Sub(s.LastForwardEvent) > t.HoldTimeout {
		s.ForwardActive = false
	}

	if s.BrakeActive {
		s.Speed -= t.BrakeForce * dt
	}

	// Single Euler step toward the latched target, composes with propulsion below
	if s.CruiseActive {
		s.Speed += (s.CruiseSpeed - s.Speed) * t.CruiseResponse * dt
	}

	if s.Gear != 0 && s.ForwardActive {
		s.Speed += (t.Accel + m.curve.Bonus(s.Speed, t.Gears[s.Gear])) * dt
	} else {
		s.Speed -= t.Drag * dt
	}

	if s.Speed > t.Gears[s.Gear].MaxSpeed {
		s.Speed -= t.DownshiftBrake * dt
		if s.CruiseActive {
			s.Speed -= t.Gears[s.LastGear].MaxSpeed * t.DownshiftBrake * dt
			s.CruiseActive = false
		}
		s.OverSpeed = true
	} else {
		s.OverSpeed = false
	}

	s.Speed = math.Max(s.Speed, 0)
	s.Downshifting = s.Speed > t.Gears[s.Gear].MaxSpeed && s.Gear < s.LastGear
	s.Distance += s.Speed * dt
	s.ElapsedTime += dt
}

// SetForward records a forward thrust key event at now
func (m *Model) SetForward(now time.Time) {
	m.state.ForwardActive = true
	m.state.LastForwardEvent = now
}

// SetBrake records a brake key event at now
func (m *Model) SetBrake(now time.Time) {
	m.state.BrakeActive = true
	m.state.LastBrakeEvent = now
}

// ShiftUp moves to the next gear, wrapping from the top gear to neutral
func (m *Model) ShiftUp() {
	m.state.LastGear = m.state.Gear
	m.state.Gear = (m.state.Gear + 1) % m.tuning.Gears.Count()
}

// ShiftDown moves to the previous gear, wrapping from neutral to the top gear
func (m *Model) ShiftDown() {
	n := m.tuning.Gears.Count()
	m.state.LastGear = m.state.Gear
	m.state.Gear = (m.state.Gear - 1 + n) % n
}

// ToggleCruise flips cruise hold and reports the new state
// Engaging latches the current speed as the hold target
func (m *Model) ToggleCruise() bool {
	m.state.CruiseActive = !m.state.CruiseActive
	if m.state.CruiseActive {
		m.state.CruiseSpeed = m.state.Speed
	}
	return m.state.CruiseActive
}
