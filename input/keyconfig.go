package input

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// keysByName is the lowercase reverse of tcell.KeyNames plus aliases
var keysByName map[string]tcell.Key

// Rune aliases for keys that can't be written as a bare character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

func init() {
	keysByName = make(map[string]tcell.Key, len(tcell.KeyNames)+2)
	for k, name := range tcell.KeyNames {
		keysByName[strings.ToLower(name)] = k
	}
	keysByName["escape"] = tcell.KeyEscape
	keysByName["return"] = tcell.KeyEnter
}

// ApplyBindings replaces the bindings of each listed action
// Actions absent from bindings keep their defaults; an empty list unbinds the action
func ApplyBindings(kt *KeyTable, bindings map[string][]string) error {
	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		intent, err := resolveAction(action)
		if err != nil {
			return fmt.Errorf("keys: %w", err)
		}
		kt.unbind(intent)

		for _, keyStr := range bindings[action] {
			if err := bind(kt, keyStr, intent); err != nil {
				return fmt.Errorf("keys.%s: %w", action, err)
			}
		}
	}
	return nil
}

func bind(kt *KeyTable, keyStr string, intent Intent) error {
	if utf8.RuneCountInString(keyStr) == 1 {
		r, _ := utf8.DecodeRuneInString(keyStr)
		kt.Runes[r] = intent
		return nil
	}

	name := strings.ToLower(keyStr)
	if r, ok := runeAliases[name]; ok {
		kt.Runes[r] = intent
		return nil
	}
	if k, ok := keysByName[name]; ok {
		kt.Keys[k] = intent
		return nil
	}
	return fmt.Errorf("unknown key %q", keyStr)
}
