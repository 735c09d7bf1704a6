package eventbus

// Priority determines dispatch order. Lower values dispatch first.
type Priority int

const (
	// PriorityUrgent dispatches before every other level.
	PriorityUrgent Priority = iota

	// PriorityHighest dispatches after Urgent.
	PriorityHighest

	// PriorityHigh dispatches after Highest.
	PriorityHigh

	// PriorityNormal is the default priority.
	PriorityNormal

	// PriorityLow dispatches after Normal.
	PriorityLow

	// PriorityLowest dispatches last.
	PriorityLowest
)

// numPriorities is the number of priority levels.
const numPriorities = int(PriorityLowest) + 1

// String returns a human-readable priority name.
func (p Priority) String() string {
	switch p {
	case PriorityUrgent:
		return "urgent"
	case PriorityHighest:
		return "highest"
	case PriorityHigh:
		return "high"
	case PriorityNormal:
		return "normal"
	case PriorityLow:
		return "low"
	case PriorityLowest:
		return "lowest"
	default:
		return "unknown"
	}
}

// valid returns true if p is one of the six defined levels.
func (p Priority) valid() bool {
	return p >= PriorityUrgent && p <= PriorityLowest
}

// Callback is the interface for event subscribers.
type Callback interface {
	// Handle processes an event and returns an arbitrary result. The
	// result is visible to later subscribers in the same dispatch via
	// Event.PreviousResults. A non-nil error aborts the dispatch and
	// propagates to the publisher unmodified.
	Handle(e *Event) (any, error)
}

// CallbackFunc is a function adapter for Callback.
type CallbackFunc func(e *Event) (any, error)

// Handle implements the Callback interface.
func (f CallbackFunc) Handle(e *Event) (any, error) {
	return f(e)
}

// Result is the outcome of a publish call or a single timer fire.
type Result struct {
	// Value is the return value of the last callback that ran.
	Value any

	// Dispatched is false if no callback ran. A zero Result is the
	// "no result" sentinel, distinct from a callback legitimately
	// returning nil.
	Dispatched bool
}

// IsNoResult returns true if no callback produced this result.
func (r Result) IsNoResult() bool {
	return !r.Dispatched
}

// Stats contains event bus statistics.
type Stats struct {
	// Published is the total number of publish calls.
	Published uint64

	// Delivered is the total number of callback invocations.
	Delivered uint64

	// Held is the number of events moved into the pending queue.
	Held uint64

	// Replayed is the number of held events replayed by subscribe calls.
	Replayed uint64

	// TimerFires is the number of timer subscriber fires.
	TimerFires uint64

	// Subscribers is the current number of registered subscribers.
	Subscribers int
}
