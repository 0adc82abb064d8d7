package selector

import (
	"fmt"
	"strings"
)

// KeyboardSelectMode controls what arrow keys do inside a widget.
type KeyboardSelectMode int

const (
	// ModeNone leaves every option directly tabbable and ignores arrow keys.
	ModeNone KeyboardSelectMode = iota
	// ModeFocus moves a roving focus between options without selecting.
	ModeFocus
	// ModeSelect moves focus and selects the newly focused option.
	ModeSelect
)

var modeNames = map[KeyboardSelectMode]string{
	ModeNone:   "none",
	ModeFocus:  "focus",
	ModeSelect: "select",
}

// String returns the attribute spelling of the mode.
func (m KeyboardSelectMode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("KeyboardSelectMode(%d)", int(m))
}

// ParseKeyboardSelectMode parses a keyboard-select-mode attribute value.
// An empty value means ModeNone. Matching ignores case and surrounding space.
func ParseKeyboardSelectMode(s string) (KeyboardSelectMode, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return ModeNone, nil
	}
	for m, name := range modeNames {
		if name == v {
			return m, nil
		}
	}
	return ModeNone, &ConfigError{
		Attr:   AttrKeyboardSelectMode,
		Value:  s,
		Reason: "must be one of none, focus, select",
		Err:    ErrInvalidKeyboardSelectMode,
	}
}

// KeyboardSelectModes lists the valid modes in declaration order.
func KeyboardSelectModes() []KeyboardSelectMode {
	return []KeyboardSelectMode{ModeNone, ModeFocus, ModeSelect}
}
