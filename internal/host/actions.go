package host

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// Action is one custom event delivered through the action service.
type Action struct {
	ID     string
	Event  string
	Target *html.Node
	Detail any
	Time   time.Time
}

// Actions records triggered actions and fans them out to subscribers.
type Actions struct {
	subs    []*func(Action)
	history []Action
}

// Trigger records an action fired by target and notifies subscribers.
func (a *Actions) Trigger(target *html.Node, event string, detail any) {
	act := Action{
		ID:     uuid.NewString(),
		Event:  event,
		Target: target,
		Detail: detail,
		Time:   time.Now(),
	}
	a.history = append(a.history, act)
	for _, fn := range slices.Clone(a.subs) {
		(*fn)(act)
	}
}

// Subscribe registers fn for every future action. The returned function
// unsubscribes it.
func (a *Actions) Subscribe(fn func(Action)) func() {
	p := &fn
	a.subs = append(a.subs, p)
	return func() {
		if i := slices.Index(a.subs, p); i >= 0 {
			a.subs = slices.Delete(a.subs, i, i+1)
		}
	}
}

// History returns every action triggered so far, oldest first.
func (a *Actions) History() []Action {
	return slices.Clone(a.history)
}
