package selector

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SetSelected replaces the selection from outside the widget, for example
// when a bound "selected" attribute changes. v may be nil, a string, a
// number, or a slice of those. nil clears the selection. Single-select
// widgets keep only the first requested value. No select event is fired.
func (w *Widget) SetSelected(v any) {
	values, ok := normalizeSelection(v)
	w.batch(func() {
		if !ok {
			w.deselectAll()
		} else {
			if !w.multiple && len(values) > 1 {
				values = values[:1]
			}
			requested := make(map[string]struct{}, len(values))
			for _, val := range values {
				requested[val] = struct{}{}
			}
			for _, o := range w.options {
				if _, want := requested[o.value]; want {
					w.selectOption(o)
				} else {
					w.deselectOption(o)
				}
			}
		}
		w.recomputeFocus()
		w.syncInputs()
	})
	w.log.Debug("selector selection pushed", "requested", values, "selected", w.Selected())
}

// AttributeChanged handles a raw attribute mutation on the host element.
// Only "selected" is observed; its value is decoded as JSON when possible
// ("null", "\"a\"", "[\"a\",\"b\"]", "3") and used verbatim otherwise. An
// empty value clears the selection.
func (w *Widget) AttributeChanged(name, value string) {
	if name != AttrSelected {
		return
	}
	raw := strings.TrimSpace(value)
	if raw == "" {
		w.SetSelected(nil)
		return
	}
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		w.SetSelected(value)
		return
	}
	w.SetSelected(decoded)
}

// normalizeSelection turns an external selection into an ordered list of
// values. The boolean is false when v is absent.
func normalizeSelection(v any) ([]string, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case []string:
		return append([]string(nil), t...), true
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if e == nil {
				continue
			}
			out = append(out, scalarString(e))
		}
		return out, true
	case []int:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, strconv.Itoa(e))
		}
		return out, true
	default:
		return []string{scalarString(t)}, true
	}
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
