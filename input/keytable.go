package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps key events to intents; built once at startup
type KeyTable struct {
	Runes map[rune]Intent
	Keys  map[tcell.Key]Intent
}

// DefaultKeyTable returns the stock bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Intent{
			'w': IntentForward,
			's': IntentBrake,
			'q': IntentShiftUp,
			'e': IntentShiftDown,
			'p': IntentPause,
			'm': IntentToggleMute,
		},
		Keys: map[tcell.Key]Intent{
			tcell.KeyUp:     IntentForward,
			tcell.KeyDown:   IntentBrake,
			tcell.KeyTab:    IntentToggleCruise,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
	}
}

// Resolve returns the intent bound to ev, IntentNone when unbound
// Shifted letters fall back to their lowercase binding
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Intent {
	if ev.Key() != tcell.KeyRune {
		return kt.Keys[ev.Key()]
	}
	r := ev.Rune()
	if intent, ok := kt.Runes[r]; ok {
		return intent
	}
	return kt.Runes[unicode.ToLower(r)]
}

// unbind removes every binding of intent
func (kt *KeyTable) unbind(intent Intent) {
	for r, i := range kt.Runes {
		if i == intent {
			delete(kt.Runes, r)
		}
	}
	for k, i := range kt.Keys {
		if i == intent {
			delete(kt.Keys, k)
		}
	}
}
