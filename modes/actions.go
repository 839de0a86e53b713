package modes

import (
	"fmt"
	"strings"
)

// Action classifies what a navigation-mode key does.
type Action uint8

const (
	ActionNone Action = iota
	ActionModeInsert
	ActionModeSelect
	ActionModeCommand
	ActionScrollDown
	ActionScrollUp
	ActionEffectNext
	ActionEffectPrev
	ActionJumpTop
	ActionJumpBottom
	ActionPrefixG
)

// actionRegistry maps canonical action names to actions. Used by the
// keymap loader to resolve config strings.
var actionRegistry = map[string]Action{
	"none":         ActionNone,
	"mode_insert":  ActionModeInsert,
	"mode_select":  ActionModeSelect,
	"mode_command": ActionModeCommand,
	"scroll_down":  ActionScrollDown,
	"scroll_up":    ActionScrollUp,
	"effect_next":  ActionEffectNext,
	"effect_prev":  ActionEffectPrev,
	"jump_top":     ActionJumpTop,
	"jump_bottom":  ActionJumpBottom,
	"prefix_g":     ActionPrefixG,
}

// Rune aliases for keys that can't be bare single-char TOML keys.
var runeAliases = map[string]rune{
	"space":     ' ',
	"colon":     ':',
	"backslash": '\\',
}

// ActionByName resolves a canonical action name.
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// ActionNames returns all registered action names.
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}

// defaultBindings is the built-in navigation keymap.
func defaultBindings() map[rune]Action {
	return map[rune]Action{
		'i': ActionModeInsert,
		'v': ActionModeSelect,
		':': ActionModeCommand,
		'j': ActionScrollDown,
		'k': ActionScrollUp,
		'n': ActionEffectNext,
		'N': ActionEffectPrev,
		'G': ActionJumpBottom,
		'g': ActionPrefixG,
	}
}

// resolveRune converts a keymap key string to a rune. Accepts single
// characters and named aliases.
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid key: %q (expected single character or alias)", s)
}

// mergeBindings applies key → action-name overrides onto base. The
// "none" action deletes a binding. Returns an error on the first
// unknown key or action; base is then unchanged for the caller.
func mergeBindings(base map[rune]Action, overrides map[string]string) (map[rune]Action, error) {
	merged := make(map[rune]Action, len(base))
	for k, v := range base {
		merged[k] = v
	}
	for keyStr, actionName := range overrides {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, err
		}
		a, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("unknown action: %q", actionName)
		}
		if a == ActionNone {
			delete(merged, r)
			continue
		}
		merged[r] = a
	}
	return merged, nil
}
