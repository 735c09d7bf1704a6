package eventbus

import "errors"

// Sentinel errors for the event bus.
var (
	// ErrNilCallback is returned when Subscribe or Unsubscribe is given
	// a callback that cannot be invoked.
	ErrNilCallback = errors.New("callback cannot be nil")

	// ErrNilEvent is returned when Publish or Tick is given a nil event.
	ErrNilEvent = errors.New("event cannot be nil")

	// ErrMissingInterval is returned when subscribing to the bare timer
	// name without an interval. A timer subscriber with no interval
	// could never fire, so registering one silently would only hide a
	// caller bug.
	ErrMissingInterval = errors.New("timer subscription requires an interval")

	// ErrCorruptSubscriber is returned when a stored callback is found
	// non-invocable at dispatch time. This indicates registry
	// corruption and is fatal for that publish call.
	ErrCorruptSubscriber = errors.New("registered callback is no longer invocable")
)

// CorruptSubscriberError reports which subscriber broke a dispatch.
type CorruptSubscriberError struct {
	// SubscriptionID is the ID of the corrupt registry entry.
	SubscriptionID string

	// Name is the event name the entry was registered under.
	Name string
}

// Error implements the error interface.
func (e *CorruptSubscriberError) Error() string {
	return "corrupt subscriber " + e.SubscriptionID + " on event " + e.Name
}

// Is allows errors.Is to match CorruptSubscriberError with
// ErrCorruptSubscriber.
func (e *CorruptSubscriberError) Is(target error) bool {
	return target == ErrCorruptSubscriber
}
