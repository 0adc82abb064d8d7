package selector

import (
	"github.com/marcus/optsel/internal/dom"
	"golang.org/x/net/html"
)

// syncInputs regenerates the hidden inputs mirroring the selection and
// returns the values it emitted. It is inert without a field name or when
// the widget is disabled.
func (w *Widget) syncInputs() []string {
	if w.name == "" || w.disabled {
		return []string{}
	}

	values := w.EmittedValues()
	stale := w.inputs
	fresh := make([]*html.Node, 0, len(values))
	for _, v := range values {
		attrs := []html.Attribute{
			{Key: "type", Val: "hidden"},
			{Key: "name", Val: w.name},
			{Key: "value", Val: v},
		}
		if w.form != "" {
			attrs = append(attrs, html.Attribute{Key: "form", Val: w.form})
		}
		fresh = append(fresh, dom.NewElement("input", attrs...))
	}
	w.inputs = fresh

	w.write(func() {
		for _, n := range stale {
			dom.Detach(n)
		}
		dom.AppendChildren(w.element, fresh...)
	})
	return values
}
