package selector

import (
	"github.com/marcus/optsel/internal/dom"
	"golang.org/x/net/html"
)

// Mutator applies DOM writes. Implementations may run fn immediately or
// queue it and coalesce several calls into one pass; queued writes must run
// in submission order.
type Mutator interface {
	Mutate(fn func())
}

// Focuser moves keyboard focus to an element.
type Focuser interface {
	Focus(n *html.Node)
}

// ActionDispatcher delivers a named custom event fired by target.
type ActionDispatcher interface {
	Trigger(target *html.Node, event string, detail any)
}

// EventSource registers input listeners on a node. The returned function
// removes the listener.
type EventSource interface {
	Listen(n *html.Node, typ dom.EventType, l dom.Listener) (unlisten func())
}

// Host is everything a widget needs from the document it lives in.
type Host interface {
	Mutator
	Focuser
	ActionDispatcher
	EventSource
}
