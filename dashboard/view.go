package dashboard

import (
	"fmt"
	"math"

	"github.com/lixenwraith/ngeng/parameter"
	"github.com/lixenwraith/ngeng/vehicle"
)

// Direction is the frame-over-frame speed trend
type Direction uint8

const (
	DirectionSteady Direction = iota
	DirectionUp
	DirectionDown
)

// Glyph returns the trend indicator character
func (d Direction) Glyph() string {
	switch d {
	case DirectionUp:
		return "↑"
	case DirectionDown:
		return "↓"
	default:
		return "↻"
	}
}

// Style returns the paint style for the trend indicator
func (d Direction) Style() Style {
	switch d {
	case DirectionUp:
		return StyleSpeedUp
	case DirectionDown:
		return StyleSpeedDown
	default:
		return StyleNormal
	}
}

// View holds display quantities derived from one frame's state
type View struct {
	Direction    Direction
	Downshifting bool

	Distance float64 // km
	Speed    float64 // km/h
	Elapsed  string  // HH:MM:SS
	Progress float64 // percent of trip, unclamped

	BarCurrent float64
	BarMax     float64

	GearName   string
	MaxSpeed   float64 // km/h ceiling of the active gear
	Multiplier float64 // raw power band multiplier, 0..1
	Cruise     bool
	Brake      bool
}

// Project derives the view from the current state and the previous frame's speed
// multiplier is the model's raw power band multiplier for the current speed and gear
func Project(prevSpeed float64, cur vehicle.State, tuning parameter.Tuning, multiplier float64) View {
	gear := tuning.Gears[cur.Gear]
	distance := cur.Distance * tuning.UnitScaling / 1000

	return View{
		Direction:    trend(prevSpeed, cur.Speed),
		Downshifting: cur.Downshifting,
		Distance:     distance,
		Speed:        ToKmh(cur.Speed, tuning.UnitScaling),
		Elapsed:      FormatElapsed(cur.ElapsedTime),
		Progress:     distance / tuning.MaxDistance * 100,
		BarCurrent:   math.Min(distance, tuning.MaxDistance),
		BarMax:       tuning.MaxDistance,
		GearName:     gear.Name,
		MaxSpeed:     ToKmh(gear.MaxSpeed, tuning.UnitScaling),
		Multiplier:   multiplier,
		Cruise:       cur.CruiseActive,
		Brake:        cur.BrakeActive,
	}
}

// ToKmh converts internal speed to the per-hour display unit
func ToKmh(speed, unitScaling float64) float64 {
	return speed * unitScaling * 3.6
}

// FormatElapsed renders whole seconds as zero-padded HH:MM:SS
func FormatElapsed(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// trend compares speeds at 2-decimal precision
func trend(prev, cur float64) Direction {
	p, c := round2(prev), round2(cur)
	switch {
	case c > p:
		return DirectionUp
	case c < p:
		return DirectionDown
	default:
		return DirectionSteady
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
