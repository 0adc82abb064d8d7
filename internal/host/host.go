// Package host provides an in-process document environment for widgets:
// bubbling event dispatch, batched DOM mutation, keyboard focus and an
// action service that delivers custom events to subscribers.
package host

import (
	"log/slog"
	"slices"

	"github.com/marcus/optsel/internal/dom"
	"golang.org/x/net/html"
)

type registration struct {
	typ      dom.EventType
	listener dom.Listener
}

// Document routes input events to listeners registered on nodes of one
// parsed HTML tree.
type Document struct {
	root      *html.Node
	log       *slog.Logger
	listeners map[*html.Node][]*registration
	focused   *html.Node

	*Batcher
	*Actions
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.log = l
		}
	}
}

// WithDeferredMutations queues writes until Flush instead of applying them
// immediately.
func WithDeferredMutations(deferred bool) Option {
	return func(d *Document) {
		d.Batcher.deferred = deferred
	}
}

// New wraps a parsed document.
func New(root *html.Node, opts ...Option) *Document {
	d := &Document{
		root:      root,
		log:       slog.Default(),
		listeners: make(map[*html.Node][]*registration),
		Batcher:   &Batcher{},
		Actions:   &Actions{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Root returns the document node.
func (d *Document) Root() *html.Node { return d.root }

// Listen registers l for events of typ reaching n, either as target or
// while bubbling.
func (d *Document) Listen(n *html.Node, typ dom.EventType, l dom.Listener) func() {
	reg := &registration{typ: typ, listener: l}
	d.listeners[n] = append(d.listeners[n], reg)
	return func() {
		regs := d.listeners[n]
		if i := slices.Index(regs, reg); i >= 0 {
			regs = slices.Delete(regs, i, i+1)
		}
		if len(regs) == 0 {
			delete(d.listeners, n)
			return
		}
		d.listeners[n] = regs
	}
}

// ListenerCount returns the number of listeners registered on n.
func (d *Document) ListenerCount(n *html.Node) int {
	return len(d.listeners[n])
}

// Dispatch delivers e to listeners on its target and then on each ancestor
// until a listener stops propagation.
func (d *Document) Dispatch(e *dom.Event) *dom.Event {
	for n := e.Target; n != nil; n = n.Parent {
		for _, reg := range slices.Clone(d.listeners[n]) {
			if reg.typ == e.Type {
				reg.listener(e)
			}
		}
		if e.Stopped() {
			break
		}
	}
	return e
}

// Click dispatches a click on target.
func (d *Document) Click(target *html.Node) *dom.Event {
	d.log.Debug("dispatch click", "target", describe(target))
	return d.Dispatch(dom.NewClick(target))
}

// KeyDown dispatches a keydown to the focused element, or to the document
// root when nothing has focus.
func (d *Document) KeyDown(key string) *dom.Event {
	target := d.focused
	if target == nil {
		target = d.root
	}
	d.log.Debug("dispatch keydown", "key", key, "target", describe(target))
	return d.Dispatch(dom.NewKeyDown(target, key))
}

// Focus moves keyboard focus to n.
func (d *Document) Focus(n *html.Node) {
	d.focused = n
}

// Focused returns the element holding keyboard focus, or nil.
func (d *Document) Focused() *html.Node { return d.focused }

// FocusWithin focuses the first descendant of container with tabindex 0,
// falling back to container itself.
func (d *Document) FocusWithin(container *html.Node) *html.Node {
	target := container
	for _, n := range dom.FindAll(container, "[tabindex]") {
		if dom.TabIndex(n, -1) == 0 {
			target = n
			break
		}
	}
	d.Focus(target)
	return target
}

func describe(n *html.Node) string {
	if n == nil {
		return "<nil>"
	}
	if n.Type != html.ElementNode {
		return "#document"
	}
	if v, ok := dom.Attr(n, "option"); ok {
		return n.Data + "[option=" + v + "]"
	}
	if id, ok := dom.Attr(n, "id"); ok {
		return n.Data + "#" + id
	}
	return n.Data
}
