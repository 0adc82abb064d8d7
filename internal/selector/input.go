package selector

import "github.com/marcus/optsel/internal/dom"

func (w *Widget) onClick(e *dom.Event) {
	n := dom.Closest(e.Target, optionSelector)
	if n == nil {
		return
	}
	o, ok := w.byNode[n]
	if !ok {
		return
	}
	w.optionPicked(o)
}

// optionPicked toggles o in response to user input and fires EventSelect
// when the selection changed. Clicking the selected option of a
// single-select widget does nothing.
func (w *Widget) optionPicked(o *Option) {
	if o.disabled {
		return
	}
	w.batch(func() {
		switch {
		case !w.isSelected(o):
			w.selectOption(o)
		case w.multiple:
			w.deselectOption(o)
		default:
			return
		}
		w.syncInputs()
		w.recomputeFocus()
		w.fireSelect(o.value)
	})
}

// navDirection maps a key to -1 (previous), 1 (next) or 0 (not a
// navigation key). Left and Right follow the document's text direction.
func navDirection(key string, rtl bool) int {
	switch key {
	case dom.KeyArrowUp:
		return -1
	case dom.KeyArrowDown:
		return 1
	case dom.KeyArrowLeft:
		if rtl {
			return 1
		}
		return -1
	case dom.KeyArrowRight:
		if rtl {
			return -1
		}
		return 1
	}
	return 0
}

func (w *Widget) onKeyDown(e *dom.Event) {
	dir := navDirection(e.Key, dom.IsRTL(w.element))
	if dir == 0 {
		return
	}
	e.PreventDefault()
	w.navigate(dir)
}

// wrapIndex normalizes i into [0, n). n must be positive.
func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

// navigate moves the roving focus by dir with wraparound. In select mode the
// newly focused option is also picked.
func (w *Widget) navigate(dir int) {
	if len(w.options) == 0 {
		return
	}
	w.batch(func() {
		w.setTabIndex(w.options[w.focused], -1)
		w.focused = wrapIndex(w.focused+dir, len(w.options))
		next := w.options[w.focused]
		w.setTabIndex(next, 0)
		w.write(func() { w.host.Focus(next.node) })
		if w.mode == ModeSelect {
			w.optionPicked(next)
		}
	})
}
