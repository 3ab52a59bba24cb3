package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func keyEvent(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestDefaultBindings(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Intent
	}{
		{"w", runeEvent('w'), IntentForward},
		{"up", keyEvent(tcell.KeyUp), IntentForward},
		{"s", runeEvent('s'), IntentBrake},
		{"down", keyEvent(tcell.KeyDown), IntentBrake},
		{"q", runeEvent('q'), IntentShiftUp},
		{"e", runeEvent('e'), IntentShiftDown},
		{"tab", keyEvent(tcell.KeyTab), IntentToggleCruise},
		{"p", runeEvent('p'), IntentPause},
		{"m", runeEvent('m'), IntentToggleMute},
		{"esc", keyEvent(tcell.KeyEscape), IntentQuit},
		{"ctrl-c", keyEvent(tcell.KeyCtrlC), IntentQuit},
		{"shifted", runeEvent('W'), IntentForward},
		{"unbound rune", runeEvent('x'), IntentNone},
		{"unbound key", keyEvent(tcell.KeyF5), IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Resolve(tt.ev); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestApplyBindingsReplacesAction(t *testing.T) {
	kt := DefaultKeyTable()

	err := ApplyBindings(kt, map[string][]string{
		"forward": {"k", "Right"},
		"pause":   {"space"},
	})
	if err != nil {
		t.Fatalf("ApplyBindings: %v", err)
	}

	if got := kt.Resolve(runeEvent('k')); got != IntentForward {
		t.Errorf("Expected k bound to forward, got %v", got)
	}
	if got := kt.Resolve(keyEvent(tcell.KeyRight)); got != IntentForward {
		t.Errorf("Expected Right bound to forward, got %v", got)
	}
	if got := kt.Resolve(runeEvent('w')); got != IntentNone {
		t.Errorf("Expected old w binding removed, got %v", got)
	}
	if got := kt.Resolve(keyEvent(tcell.KeyUp)); got != IntentNone {
		t.Errorf("Expected old Up binding removed, got %v", got)
	}
	if got := kt.Resolve(runeEvent(' ')); got != IntentPause {
		t.Errorf("Expected space bound to pause, got %v", got)
	}
	if got := kt.Resolve(runeEvent('s')); got != IntentBrake {
		t.Errorf("Expected untouched brake binding, got %v", got)
	}
}

func TestApplyBindingsEmptyListUnbinds(t *testing.T) {
	kt := DefaultKeyTable()
	if err := ApplyBindings(kt, map[string][]string{"toggle_mute": {}}); err != nil {
		t.Fatalf("ApplyBindings: %v", err)
	}
	if got := kt.Resolve(runeEvent('m')); got != IntentNone {
		t.Errorf("Expected mute unbound, got %v", got)
	}
}

func TestApplyBindingsNamedKeysCaseInsensitive(t *testing.T) {
	kt := DefaultKeyTable()
	if err := ApplyBindings(kt, map[string][]string{"quit": {"ESC", "ctrl-q"}}); err != nil {
		t.Fatalf("ApplyBindings: %v", err)
	}
	if got := kt.Resolve(keyEvent(tcell.KeyCtrlQ)); got != IntentQuit {
		t.Errorf("Expected Ctrl-Q bound to quit, got %v", got)
	}
	if got := kt.Resolve(keyEvent(tcell.KeyEscape)); got != IntentQuit {
		t.Errorf("Expected Esc bound to quit, got %v", got)
	}
}

func TestApplyBindingsErrors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string][]string
	}{
		{"unknown action", map[string][]string{"boost": {"b"}}},
		{"unknown key", map[string][]string{"brake": {"hyperspace"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ApplyBindings(DefaultKeyTable(), tt.bindings); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestIntentString(t *testing.T) {
	if IntentToggleCruise.String() != "toggle_cruise" {
		t.Errorf("Unexpected name %q", IntentToggleCruise.String())
	}
	if IntentNone.String() != "none" {
		t.Errorf("Unexpected name %q", IntentNone.String())
	}
	if len(ActionNames()) != 8 {
		t.Errorf("Expected 8 actions, got %d", len(ActionNames()))
	}
}
