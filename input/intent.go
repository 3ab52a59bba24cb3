package input

// Intent is the logical action a key maps to
type Intent uint8

const (
	IntentNone Intent = iota

	// Driving
	IntentForward
	IntentBrake
	IntentShiftUp
	IntentShiftDown
	IntentToggleCruise

	// System
	IntentPause
	IntentToggleMute
	IntentQuit
)
