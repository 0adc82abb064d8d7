package dom

import "golang.org/x/net/html"

// EventType names an event a host can deliver to listeners.
type EventType string

const (
	Click   EventType = "click"
	KeyDown EventType = "keydown"
)

// Key names, following the DOM KeyboardEvent.key values.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyEnter      = "Enter"
	KeySpace      = " "
)

// Event is a user input event travelling from Target up to the document root.
type Event struct {
	Type   EventType
	Target *html.Node
	Key    string

	defaultPrevented bool
	stopped          bool
}

// NewClick builds a click event aimed at target.
func NewClick(target *html.Node) *Event {
	return &Event{Type: Click, Target: target}
}

// NewKeyDown builds a keydown event aimed at target.
func NewKeyDown(target *html.Node, key string) *Event {
	return &Event{Type: KeyDown, Target: target, Key: key}
}

// PreventDefault marks the host's default action for the event as suppressed.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation stops the event from reaching further ancestors.
func (e *Event) StopPropagation() { e.stopped = true }

// Stopped reports whether propagation was stopped.
func (e *Event) Stopped() bool { return e.stopped }

// Listener handles an event delivered to the node it was registered on.
type Listener func(*Event)
