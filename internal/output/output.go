package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/marcus/optsel/internal/selector"
)

// Stdout and Stderr are swapped out by tests.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Error prints a formatted error message to stderr
func Error(format string, args ...any) {
	fmt.Fprintf(Stderr, "ERROR: "+format+"\n", args...)
}

// Warning prints a formatted warning to stderr
func Warning(format string, args ...any) {
	fmt.Fprintf(Stderr, "WARNING: "+format+"\n", args...)
}

// JSON writes v as indented JSON to stdout
func JSON(v any) error {
	enc := json.NewEncoder(Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// JSONError writes a machine-readable error object to stdout
func JSONError(code, message string) {
	JSON(map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

// stateMark returns the selection indicator for one option
func stateMark(s selector.OptionState, multiple bool) string {
	switch {
	case multiple && s.Selected:
		return "[x]"
	case multiple:
		return "[ ]"
	case s.Selected:
		return "(*)"
	default:
		return "( )"
	}
}

// FormatState renders a widget as a human-readable option table
func FormatState(w *selector.Widget) string {
	var sb strings.Builder

	kind := "single"
	if w.Multiple() {
		kind = "multiple"
	}
	fmt.Fprintf(&sb, "selector: %s, keyboard-select-mode=%s", kind, w.Mode())
	if w.Disabled() {
		sb.WriteString(", disabled")
	}
	if w.Name() != "" {
		fmt.Fprintf(&sb, ", name=%s", w.Name())
	}
	sb.WriteString("\n")

	for _, s := range w.Snapshot() {
		cursor := "  "
		if s.Focused {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s %d %s", cursor, stateMark(s, w.Multiple()), s.Index, s.Value)
		if s.Label != "" && s.Label != s.Value {
			line += " - " + s.Label
		}
		var flags []string
		if s.Disabled {
			flags = append(flags, "disabled")
		}
		flags = append(flags, fmt.Sprintf("tabindex=%d", s.TabIndex))
		line += " (" + strings.Join(flags, ", ") + ")"
		sb.WriteString(line + "\n")
	}

	if len(w.Snapshot()) == 0 {
		sb.WriteString("  (no options)\n")
	}
	fmt.Fprintf(&sb, "selected: [%s]\n", strings.Join(w.Selected(), ", "))
	if w.Name() != "" {
		fmt.Fprintf(&sb, "form values: [%s]\n", strings.Join(w.EmittedValues(), ", "))
	}
	return sb.String()
}

// StateJSON is the machine-readable form of a widget
type StateJSON struct {
	Multiple     bool                   `json:"multiple"`
	Disabled     bool                   `json:"disabled"`
	Mode         string                 `json:"keyboard_select_mode"`
	Name         string                 `json:"name,omitempty"`
	FocusedIndex int                    `json:"focused_index"`
	Selected     []string               `json:"selected"`
	FormValues   []string               `json:"form_values"`
	Options      []selector.OptionState `json:"options"`
}

// WidgetJSON builds the machine-readable form of a widget
func WidgetJSON(w *selector.Widget) StateJSON {
	return StateJSON{
		Multiple:     w.Multiple(),
		Disabled:     w.Disabled(),
		Mode:         w.Mode().String(),
		Name:         w.Name(),
		FocusedIndex: w.FocusedIndex(),
		Selected:     w.Selected(),
		FormValues:   w.EmittedValues(),
		Options:      w.Snapshot(),
	}
}
