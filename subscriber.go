package eventbus

import (
	"reflect"
	"time"

	"github.com/dshills/eventbus/topic"
)

// subscriber is one registry entry.
type subscriber struct {
	id       string
	callback Callback
	priority Priority
	force    bool

	// interval > 0 marks a timer subscriber; nextFire is its next
	// eligible fire time. nextFire advances by interval on each fire
	// (fixed cadence, no resync to now) so scheduling jitter does not
	// accumulate into drift.
	interval time.Duration
	nextFire time.Time
}

// isTimer returns true if this entry fires on an interval instead of
// on explicit publish.
func (s *subscriber) isTimer() bool {
	return s.interval > 0
}

// matches reports whether this entry is the one described by cb and
// interval. Callbacks compare by identity; when either side carries an
// interval, the intervals must also be equal, so two timer
// subscriptions sharing a callback but not an interval stay distinct.
func (s *subscriber) matches(cb Callback, interval time.Duration) bool {
	if !sameCallback(s.callback, cb) {
		return false
	}
	if s.interval > 0 || interval > 0 {
		return s.interval == interval
	}
	return true
}

// sameCallback compares two callbacks by identity. Function values are
// not comparable in Go, so funcs compare by code pointer; callers that
// need per-instance identity (several handlers sharing one method)
// should implement Callback on a comparable type, which compares by
// value.
func sameCallback(a, b Callback) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() == reflect.Func || bv.Kind() == reflect.Func {
		return av.Kind() == bv.Kind() && av.Pointer() == bv.Pointer()
	}
	if av.Type() != bv.Type() || !av.Type().Comparable() {
		return false
	}
	return a == b
}

// invocable reports whether cb can actually be called. A typed nil
// (e.g. CallbackFunc(nil)) is not invocable even though the interface
// value is non-nil.
func invocable(cb Callback) bool {
	if cb == nil {
		return false
	}
	v := reflect.ValueOf(cb)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return !v.IsNil()
	}
	return true
}

// Subscription is the handle returned by Subscribe. It identifies the
// exact registry entry for later removal via Bus.Remove and carries
// the results of any pending events replayed by the Subscribe call
// that created it.
type Subscription struct {
	id       string
	name     topic.Name
	callback Callback
	priority Priority
	force    bool
	interval time.Duration
	replayed []Result
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Name returns the bucket name the entry is registered under. Timer
// subscriptions report the normalized timer bucket name.
func (s *Subscription) Name() topic.Name {
	return s.name
}

// Priority returns the dispatch priority.
func (s *Subscription) Priority() Priority {
	return s.priority
}

// Force returns true if the subscriber runs even after the event is
// cancelled.
func (s *Subscription) Force() bool {
	return s.force
}

// Interval returns the timer recurrence, or zero for a named
// subscription.
func (s *Subscription) Interval() time.Duration {
	return s.interval
}

// Replayed returns the results of the pending events replayed when
// this subscription was created, in replay order. The returned slice
// is a copy.
func (s *Subscription) Replayed() []Result {
	if len(s.replayed) == 0 {
		return nil
	}
	out := make([]Result, len(s.replayed))
	copy(out, s.replayed)
	return out
}

// subscribeConfig contains configuration for a subscription.
type subscribeConfig struct {
	priority Priority
	force    bool
}

// defaultSubscribeConfig returns the default subscription configuration.
func defaultSubscribeConfig() subscribeConfig {
	return subscribeConfig{priority: PriorityNormal}
}

// SubscribeOption is a function that configures a subscription.
type SubscribeOption func(*subscribeConfig)

// WithPriority sets the dispatch priority. Values outside the six
// defined levels are ignored.
func WithPriority(p Priority) SubscribeOption {
	return func(c *subscribeConfig) {
		if p.valid() {
			c.priority = p
		}
	}
}

// WithForce marks the subscriber to run even when the event has been
// cancelled by an earlier subscriber.
func WithForce() SubscribeOption {
	return func(c *subscribeConfig) {
		c.force = true
	}
}
