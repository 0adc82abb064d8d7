// Package selector implements a selectable-options widget over an HTML
// element tree.
//
// A widget is built from a host element whose descendants carry an
// "option" attribute. It keeps the canonical selection, the roving focus
// cursor and the hidden form inputs in its own state and pushes the
// matching attributes (selected, aria-selected, tabindex, ...) to the
// document through the host's Mutator.
//
// # Host attributes
//
//   - multiple: allow more than one selected option
//   - disabled: no listeners are attached and no form inputs are emitted
//   - keyboard-select-mode: none (default), focus or select
//   - name: form field name for the hidden inputs; without it form sync is inert
//   - form: optional form association id copied onto each hidden input
//
// # Option attributes
//
//   - option: the value, required for the element to be recognized
//   - disabled: the option cannot be picked and is never emitted
//   - selected: initial selection, read once at build time
package selector

import (
	"log/slog"
	"slices"

	"github.com/marcus/optsel/internal/dom"
	"golang.org/x/net/html"
)

// Attribute names read from the host element and its options.
const (
	AttrOption             = "option"
	AttrSelected           = "selected"
	AttrDisabled           = "disabled"
	AttrMultiple           = "multiple"
	AttrKeyboardSelectMode = "keyboard-select-mode"
	AttrName               = "name"
	AttrForm               = "form"
)

// EventSelect is the action fired after a user-driven selection change.
const EventSelect = "select"

const optionSelector = "[" + AttrOption + "]"

// SelectEvent is the detail carried by EventSelect.
type SelectEvent struct {
	TargetOption    string   `json:"targetOption"`
	SelectedOptions []string `json:"selectedOptions"`
}

// BuildOption configures Build.
type BuildOption func(*Widget)

// WithLogger sets the logger used for debug tracing. Defaults to slog.Default().
func WithLogger(l *slog.Logger) BuildOption {
	return func(w *Widget) {
		if l != nil {
			w.log = l
		}
	}
}

// Widget is a selector bound to one host element.
type Widget struct {
	element *html.Node
	host    Host
	log     *slog.Logger

	multiple bool
	disabled bool
	mode     KeyboardSelectMode
	name     string
	form     string

	options  []*Option
	byNode   map[*html.Node]*Option
	selected []*Option
	focused  int
	inputs   []*html.Node

	unlisten []func()

	batching bool
	pending  []func()
}

// Build validates the host attributes of element, initializes every option
// and attaches input listeners. It fails only with a *ConfigError.
func Build(element *html.Node, host Host, opts ...BuildOption) (*Widget, error) {
	modeAttr, _ := dom.Attr(element, AttrKeyboardSelectMode)
	mode, err := ParseKeyboardSelectMode(modeAttr)
	if err != nil {
		return nil, err
	}

	w := &Widget{
		element:  element,
		host:     host,
		log:      slog.Default(),
		multiple: dom.HasAttr(element, AttrMultiple),
		disabled: dom.HasAttr(element, AttrDisabled),
		mode:     mode,
		byNode:   make(map[*html.Node]*Option),
	}
	w.name, _ = dom.Attr(element, AttrName)
	w.form, _ = dom.Attr(element, AttrForm)
	for _, opt := range opts {
		opt(w)
	}

	if w.multiple && w.mode == ModeSelect {
		return nil, &ConfigError{
			Attr:   AttrKeyboardSelectMode,
			Value:  modeAttr,
			Reason: "select mode cannot be combined with multiple",
			Err:    ErrUnsupportedCombination,
		}
	}

	w.batch(w.init)

	if !w.disabled {
		w.unlisten = append(w.unlisten, host.Listen(element, dom.Click, w.onClick))
		if w.mode != ModeNone {
			w.unlisten = append(w.unlisten, host.Listen(element, dom.KeyDown, w.onKeyDown))
		}
	}

	w.log.Debug("selector built",
		"options", len(w.options),
		"multiple", w.multiple,
		"disabled", w.disabled,
		"mode", w.mode.String(),
		"name", w.name)
	return w, nil
}

func (w *Widget) init() {
	multiselectable := "false"
	if w.multiple {
		multiselectable = "true"
	}
	w.write(func() {
		dom.SetAttr(w.element, "role", "listbox")
		dom.SetAttr(w.element, "aria-multiselectable", multiselectable)
		if w.disabled {
			dom.SetAttr(w.element, "aria-disabled", "true")
		}
	})

	for i, n := range dom.FindAll(w.element, optionSelector) {
		n := n // per-iteration copy for the deferred write below (go 1.21 loop semantics)
		value, _ := dom.Attr(n, AttrOption)
		o := &Option{
			index:    i,
			value:    value,
			label:    dom.Text(n),
			disabled: dom.HasAttr(n, AttrDisabled),
			node:     n,
		}
		if o.label == "" {
			o.label = value
		}
		w.options = append(w.options, o)
		w.byNode[n] = o

		w.write(func() {
			dom.SetAttr(n, "role", "option")
			if o.disabled {
				dom.SetAttr(n, "aria-disabled", "true")
			}
		})
		if dom.HasAttr(n, AttrSelected) {
			w.selectOption(o)
		} else {
			w.deselectOption(o)
		}
		w.setTabIndex(o, 0)
	}

	w.adoptInputs()
	w.recomputeFocus()
	w.syncInputs()
}

// adoptInputs claims hidden inputs a previous build left in the container
// so the next sync replaces them instead of duplicating them.
func (w *Widget) adoptInputs() {
	if w.name == "" {
		return
	}
	for _, n := range dom.FindAll(w.element, `input[type="hidden"]`) {
		if n.Parent != w.element {
			continue
		}
		if name, _ := dom.Attr(n, "name"); name == w.name {
			w.inputs = append(w.inputs, n)
		}
	}
}

// Destroy detaches every listener registered by Build.
func (w *Widget) Destroy() {
	for _, fn := range w.unlisten {
		fn()
	}
	w.unlisten = nil
}

// write submits a DOM write, joining the current batch if one is open.
func (w *Widget) write(fn func()) {
	if w.batching {
		w.pending = append(w.pending, fn)
		return
	}
	w.host.Mutate(fn)
}

// batch runs fn and hands every write it produced to the host as a single
// mutation. Nested calls join the outer batch.
func (w *Widget) batch(fn func()) {
	if w.batching {
		fn()
		return
	}
	w.batching = true
	fn()
	writes := w.pending
	w.pending = nil
	w.batching = false
	if len(writes) == 0 {
		return
	}
	w.host.Mutate(func() {
		for _, wr := range writes {
			wr()
		}
	})
}

func (w *Widget) isSelected(o *Option) bool {
	return slices.Contains(w.selected, o)
}

// selectOption adds o to the selection. In single-select mode every other
// option is deselected first. Selection order is preserved.
func (w *Widget) selectOption(o *Option) {
	if w.isSelected(o) {
		return
	}
	if !w.multiple {
		for _, s := range slices.Clone(w.selected) {
			w.deselectOption(s)
		}
	}
	n := o.node
	w.write(func() {
		dom.SetAttr(n, AttrSelected, "")
		dom.SetAttr(n, "aria-selected", "true")
	})
	w.selected = append(w.selected, o)
}

func (w *Widget) deselectOption(o *Option) {
	n := o.node
	w.write(func() {
		dom.RemoveAttr(n, AttrSelected)
		dom.SetAttr(n, "aria-selected", "false")
	})
	if i := slices.Index(w.selected, o); i >= 0 {
		w.selected = slices.Delete(w.selected, i, i+1)
	}
}

func (w *Widget) deselectAll() bool {
	if len(w.selected) == 0 {
		return false
	}
	for _, s := range slices.Clone(w.selected) {
		w.deselectOption(s)
	}
	return true
}

func (w *Widget) setTabIndex(o *Option, i int) {
	o.tabIndex = i
	n := o.node
	w.write(func() { dom.SetTabIndex(n, i) })
}

// recomputeFocus applies the roving tabindex: one option gets tabindex 0,
// the rest -1. Multi-select always roots focus at the first option;
// single-select at the selected option, or the first one.
func (w *Widget) recomputeFocus() {
	if w.mode == ModeNone {
		return
	}
	for _, o := range w.options {
		w.setTabIndex(o, -1)
	}

	var candidate *Option
	switch {
	case len(w.options) == 0:
	case w.multiple:
		candidate = w.options[0]
	case len(w.selected) > 0:
		candidate = w.selected[0]
	default:
		candidate = w.options[0]
	}
	if candidate == nil {
		return
	}
	w.setTabIndex(candidate, 0)
	w.focused = candidate.index
}

// fireSelect queues the select action behind the writes of the current batch.
func (w *Widget) fireSelect(target string) {
	ev := SelectEvent{TargetOption: target, SelectedOptions: w.EmittedValues()}
	w.log.Debug("selector select", "target", ev.TargetOption, "selected", ev.SelectedOptions)
	w.write(func() {
		w.host.Trigger(w.element, EventSelect, ev)
	})
}

// Element returns the host element.
func (w *Widget) Element() *html.Node { return w.element }

// Multiple reports whether more than one option may be selected.
func (w *Widget) Multiple() bool { return w.multiple }

// Disabled reports whether the whole widget is disabled.
func (w *Widget) Disabled() bool { return w.disabled }

// Mode returns the keyboard select mode.
func (w *Widget) Mode() KeyboardSelectMode { return w.mode }

// Name returns the form field name, empty when form sync is inert.
func (w *Widget) Name() string { return w.name }

// FocusedIndex returns the index of the option holding the roving focus.
func (w *Widget) FocusedIndex() int { return w.focused }

// Options returns the options in document order.
func (w *Widget) Options() []*Option { return slices.Clone(w.options) }

// Inputs returns the hidden inputs from the last form sync.
func (w *Widget) Inputs() []*html.Node { return slices.Clone(w.inputs) }

// IsSelected reports whether the option at index i is selected.
func (w *Widget) IsSelected(i int) bool {
	if i < 0 || i >= len(w.options) {
		return false
	}
	return w.isSelected(w.options[i])
}

// Selected returns the values of all selected options in selection order,
// disabled ones included.
func (w *Widget) Selected() []string {
	values := make([]string, 0, len(w.selected))
	for _, o := range w.selected {
		values = append(values, o.value)
	}
	return values
}

// EmittedValues returns the selected values that are not disabled, in
// selection order.
func (w *Widget) EmittedValues() []string {
	values := make([]string, 0, len(w.selected))
	for _, o := range w.selected {
		if !o.disabled {
			values = append(values, o.value)
		}
	}
	return values
}

// Snapshot returns the state of every option in document order.
func (w *Widget) Snapshot() []OptionState {
	states := make([]OptionState, len(w.options))
	for i, o := range w.options {
		states[i] = OptionState{
			Index:    o.index,
			Value:    o.value,
			Label:    o.label,
			Selected: w.isSelected(o),
			Disabled: o.disabled,
			TabIndex: o.tabIndex,
			Focused:  w.mode != ModeNone && i == w.focused,
		}
	}
	return states
}
