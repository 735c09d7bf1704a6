package eventbus

import "github.com/dshills/eventbus/topic"

// Event is one published occurrence. It carries a name, an arbitrary
// payload, a cooperative cancellation flag, and the accumulated return
// values of the subscribers that have already run in the current
// dispatch.
//
// An Event belongs to exactly one publish call for the duration of its
// dispatch; it must not be shared between concurrent dispatches.
type Event struct {
	name      topic.Name
	payload   any
	cancelled bool
	previous  []any
}

// NewEvent creates an event with the given name and payload.
func NewEvent(name string, payload any) *Event {
	return &Event{name: topic.Name(name), payload: payload}
}

// Name returns the event's name.
func (e *Event) Name() topic.Name {
	return e.name
}

// Payload returns the data the event was published with.
func (e *Event) Payload() any {
	return e.payload
}

// Cancel marks the event cancelled. Cancellation is cooperative: it
// does not stop the current callback, it suppresses subsequent
// non-forced subscribers for the remainder of the dispatch. Cancelled
// is a terminal state; there is no un-cancel.
func (e *Event) Cancel() {
	e.cancelled = true
}

// IsCancelled returns true once Cancel has been called.
func (e *Event) IsCancelled() bool {
	return e.cancelled
}

// PreviousResults returns the ordered return values of the subscribers
// that ran before the current one in this dispatch. The returned slice
// is a copy.
func (e *Event) PreviousResults() []any {
	if len(e.previous) == 0 {
		return nil
	}
	out := make([]any, len(e.previous))
	copy(out, e.previous)
	return out
}

// record appends a completed callback's return value for the next
// subscriber to observe.
func (e *Event) record(v any) {
	e.previous = append(e.previous, v)
}
