package selector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKeyboardSelectMode is wrapped when keyboard-select-mode is unrecognized.
	ErrInvalidKeyboardSelectMode = errors.New("invalid keyboard-select-mode")
	// ErrUnsupportedCombination is wrapped when multiple is combined with keyboard-select-mode=select.
	ErrUnsupportedCombination = errors.New("unsupported attribute combination")
)

// ConfigError reports markup that cannot be turned into a widget.
// It is only returned by Build.
type ConfigError struct {
	Attr   string
	Value  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s=%q: %s", e.Attr, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Attr, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
