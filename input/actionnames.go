package input

import (
	"fmt"
	"sort"
)

// actionRegistry maps config action names to intents
var actionRegistry = map[string]Intent{
	"forward":       IntentForward,
	"brake":         IntentBrake,
	"shift_up":      IntentShiftUp,
	"shift_down":    IntentShiftDown,
	"toggle_cruise": IntentToggleCruise,
	"pause":         IntentPause,
	"toggle_mute":   IntentToggleMute,
	"quit":          IntentQuit,
}

// resolveAction looks up an action name
func resolveAction(name string) (Intent, error) {
	intent, ok := actionRegistry[name]
	if !ok {
		return IntentNone, fmt.Errorf("unknown action %q (available: %v)", name, ActionNames())
	}
	return intent, nil
}

// ActionNames lists configurable action names in sorted order
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns the action name, "none" for unbound
func (i Intent) String() string {
	for name, intent := range actionRegistry {
		if intent == i {
			return name
		}
	}
	return "none"
}
