package cmd

import (
	"github.com/marcus/optsel/internal/selector"
	"github.com/spf13/pflag"
)

// modeFlag overrides the keyboard-select-mode attribute of the widget.
type modeFlag struct {
	mode selector.KeyboardSelectMode
	set  bool
}

var _ pflag.Value = (*modeFlag)(nil)

func (f *modeFlag) String() string {
	if !f.set {
		return ""
	}
	return f.mode.String()
}

func (f *modeFlag) Set(s string) error {
	if s == "" {
		f.mode, f.set = selector.ModeNone, false
		return nil
	}
	m, err := selector.ParseKeyboardSelectMode(s)
	if err != nil {
		return err
	}
	f.mode = m
	f.set = true
	return nil
}

func (f *modeFlag) Type() string {
	return "mode"
}
