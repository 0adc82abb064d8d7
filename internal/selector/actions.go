package selector

// Clear deselects every option. Like SetSelected it reflects a host
// action rather than user input, so no select event is fired.
func (w *Widget) Clear() {
	if w.disabled {
		return
	}
	w.batch(func() {
		if !w.deselectAll() {
			return
		}
		w.syncInputs()
		w.recomputeFocus()
	})
}

// SelectDown moves the selection delta options forward, wrapping at the end.
func (w *Widget) SelectDown(delta int) {
	w.selectByDelta(delta)
}

// SelectUp moves the selection delta options backward, wrapping at the start.
func (w *Widget) SelectUp(delta int) {
	w.selectByDelta(-delta)
}

// selectByDelta replaces the selection with the option delta positions away
// from the first selected one. With nothing selected, forward steps start
// before the first option and backward steps start at it.
func (w *Widget) selectByDelta(delta int) {
	n := len(w.options)
	if w.disabled || n == 0 || delta == 0 {
		return
	}
	base := -1
	if delta < 0 {
		base = 0
	}
	if len(w.selected) > 0 {
		base = w.selected[0].index
	}
	target := w.options[wrapIndex(base+delta, n)]

	w.batch(func() {
		if len(w.selected) == 1 && w.selected[0] == target {
			return
		}
		w.deselectAll()
		w.selectOption(target)
		w.syncInputs()
		w.recomputeFocus()
		w.fireSelect(target.value)
	})
}

// Toggle flips the option at index. When force is non-nil the option ends
// up selected exactly when *force is true. Disabled options and indexes out
// of range are ignored. It reports whether the selection changed.
func (w *Widget) Toggle(index int, force *bool) bool {
	if w.disabled || index < 0 || index >= len(w.options) {
		return false
	}
	o := w.options[index]
	if o.disabled {
		return false
	}
	want := !w.isSelected(o)
	if force != nil {
		want = *force
	}
	if want == w.isSelected(o) {
		return false
	}
	w.batch(func() {
		if want {
			w.selectOption(o)
		} else {
			w.deselectOption(o)
		}
		w.syncInputs()
		w.recomputeFocus()
		w.fireSelect(o.value)
	})
	return true
}
