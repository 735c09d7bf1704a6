package eventbus

import (
	"sync"
	"sync/atomic"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/eventbus/topic"
)

// Bus routes published events to registered subscribers in priority
// order. One bus instance is created at application start and passed
// explicitly to every collaborator; there is no package-level
// singleton.
//
// All operations share a single mutex, so subscribe, unsubscribe,
// publish, and tick are mutually exclusive as a whole and no
// subscriber can be removed mid-dispatch. Callbacks run while the
// mutex is held and must not call back into the bus.
type Bus struct {
	mu      sync.Mutex
	clock   clock.Clock
	logger  *zap.Logger
	reg     *registry
	pending *pendingQueue

	// Stats
	published  atomic.Uint64
	delivered  atomic.Uint64
	held       atomic.Uint64
	replayed   atomic.Uint64
	timerFires atomic.Uint64
}

// New creates an event bus with the given options.
func New(opts ...Option) *Bus {
	cfg := defaultBusConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Bus{
		clock:   cfg.clock,
		logger:  cfg.logger,
		reg:     newRegistry(),
		pending: &pendingQueue{enabled: cfg.hold},
	}
}

// Registration describes one subscription for SubscribeMany.
type Registration struct {
	// Name is the event name or timer spec to subscribe to.
	Name string

	// Callback handles the event.
	Callback Callback

	// Options configure priority and force.
	Options []SubscribeOption
}

// Target describes one removal for UnsubscribeMany. A nil Callback
// removes every subscriber registered under Name.
type Target struct {
	Name     string
	Callback Callback
}

// Subscribe registers cb for events named name at the configured
// priority. Timer specs ("timer:<ms>") register a timer subscriber
// that fires once its interval has elapsed, checked on each publish of
// the timer name or on Tick.
//
// If the pending queue holds events matching name, they are replayed
// immediately, restricted to the new subscriber's priority level; the
// replay results are available via Subscription.Replayed.
func (b *Bus) Subscribe(name string, cb Callback, opts ...SubscribeOption) (*Subscription, error) {
	if !invocable(cb) {
		return nil, ErrNilCallback
	}
	spec, err := topic.Parse(name)
	if err != nil {
		return nil, err
	}
	if spec.Kind == topic.KindTimer && spec.Interval <= 0 {
		return nil, ErrMissingInterval
	}

	cfg := defaultSubscribeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &subscriber{
		id:       uuid.NewString(),
		callback: cb,
		priority: cfg.priority,
		force:    cfg.force,
	}
	if spec.Kind == topic.KindTimer {
		sub.interval = spec.Interval
		sub.nextFire = b.clock.Now().Add(spec.Interval)
	}
	b.reg.add(spec.Name, sub)

	handle := &Subscription{
		id:       sub.id,
		name:     spec.Name,
		callback: cb,
		priority: sub.priority,
		force:    sub.force,
		interval: sub.interval,
	}

	b.logger.Debug("subscribed",
		zap.String("event", spec.Name.String()),
		zap.Stringer("priority", sub.priority),
		zap.Bool("force", sub.force),
		zap.Duration("interval", sub.interval))

	// Replay happens inside the same critical section, so nothing can
	// publish between registration and replay.
	if spec.Kind != topic.KindTimer && b.pending.enabled {
		for _, heldEvent := range b.pending.takeMatching(spec.Name) {
			res, err := b.dispatch(heldEvent, &sub.priority)
			if err != nil {
				return handle, err
			}
			handle.replayed = append(handle.replayed, res)
			b.replayed.Add(1)
			b.logger.Debug("replayed held event", zap.String("event", heldEvent.name.String()))
		}
	}

	return handle, nil
}

// SubscribeMany registers a batch of subscriptions in order. The first
// failure aborts the batch; the handles registered before the failure
// are returned alongside the error.
func (b *Bus) SubscribeMany(regs []Registration) ([]*Subscription, error) {
	subs := make([]*Subscription, 0, len(regs))
	for _, reg := range regs {
		sub, err := b.Subscribe(reg.Name, reg.Callback, reg.Options...)
		if err != nil {
			return subs, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// Unsubscribe removes every entry under name whose callback matches cb
// by identity. For timer specs the interval is part of the match key,
// so two timer subscriptions sharing a callback but not an interval
// are removed independently. Unsubscribing a name with no subscribers
// is a no-op.
func (b *Bus) Unsubscribe(name string, cb Callback) error {
	if !invocable(cb) {
		return ErrNilCallback
	}
	spec, err := topic.Parse(name)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if n := b.reg.remove(spec.Name, cb, spec.Interval); n > 0 {
		b.logger.Debug("unsubscribed",
			zap.String("event", spec.Name.String()),
			zap.Int("removed", n))
	}
	return nil
}

// UnsubscribeMany applies a batch of removals in order. A Target with
// a nil Callback removes everything registered under its name.
func (b *Bus) UnsubscribeMany(targets []Target) error {
	for _, t := range targets {
		if t.Callback == nil {
			b.UnsubscribeAll(t.Name)
			continue
		}
		if err := b.Unsubscribe(t.Name, t.Callback); err != nil {
			return err
		}
	}
	return nil
}

// UnsubscribeAll removes every subscriber registered under name.
// Unknown or malformed names are a no-op.
func (b *Bus) UnsubscribeAll(name string) {
	spec, err := topic.Parse(name)
	if err != nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if n := b.reg.removeAll(spec.Name); n > 0 {
		b.logger.Debug("unsubscribed all",
			zap.String("event", spec.Name.String()),
			zap.Int("removed", n))
	}
}

// Remove deletes the exact registry entry sub refers to. Returns false
// if the entry was already gone.
func (b *Bus) Remove(sub *Subscription) bool {
	if sub == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.reg.removeID(sub.name, sub.id)
}

// HasSubscribers returns true if name has at least one subscriber.
func (b *Bus) HasSubscribers(name string) bool {
	spec, err := topic.Parse(name)
	if err != nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.reg.has(spec.Name)
}

// IsSubscribed returns the priority cb is registered at for name,
// scanning levels in ascending order and reporting the first match. A
// callback registered at several priorities for one name is unusual
// but permitted; only the first is reported.
func (b *Bus) IsSubscribed(name string, cb Callback) (Priority, bool) {
	if !invocable(cb) {
		return 0, false
	}
	spec, err := topic.Parse(name)
	if err != nil {
		return 0, false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.reg.priorityOf(spec.Name, cb, spec.Interval)
}

// SetHoldUnheardEvents enables or disables the pending queue.
// Disabling clears any held events in the same step.
func (b *Bus) SetHoldUnheardEvents(hold bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending.setEnabled(hold)
}

// WillHoldUnheardEvents returns true if events published with no
// subscriber are being held for replay.
func (b *Bus) WillHoldUnheardEvents() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.pending.enabled
}

// Publish routes e synchronously to every eligible subscriber and
// returns the last callback's result. Broadcast subscribers ("any",
// then "all") run ahead of the event's own subscribers.
//
// If the event's name has no subscribers, the event is held for replay
// when holding is enabled (reserved names are never held) and the
// NoResult sentinel is returned.
//
// A callback error aborts the rest of the dispatch and is returned
// unmodified along with the result accumulated so far.
func (b *Bus) Publish(e *Event, opts ...PublishOption) (Result, error) {
	if e == nil {
		return Result{}, ErrNilEvent
	}
	if !e.name.IsValid() {
		return Result{}, topic.ErrEmptyName
	}

	var cfg publishConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.published.Add(1)

	if !b.reg.has(e.name) {
		if b.pending.push(e) {
			b.held.Add(1)
			b.logger.Debug("holding unheard event", zap.String("event", e.name.String()))
		}
		return Result{}, nil
	}

	return b.dispatch(e, cfg.filter)
}

// Tick evaluates only the timer subscribers, firing every one whose
// interval has elapsed and returning each fired callback's result in
// dispatch order. The same cancellation, force, and interval rules
// apply as during a publish. Results are not folded because several
// independent timers may fire in one tick.
func (b *Bus) Tick(e *Event) ([]Result, error) {
	if e == nil {
		return nil, ErrNilEvent
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	bkt := b.reg.get(topic.Timer)
	if bkt == nil {
		return nil, nil
	}

	now := b.clock.Now()
	var results []Result
	for p := 0; p < numPriorities; p++ {
		for _, sub := range bkt.levels[p] {
			if e.cancelled && !sub.force {
				continue
			}
			if now.Before(sub.nextFire) {
				continue
			}
			if !invocable(sub.callback) {
				return results, &CorruptSubscriberError{SubscriptionID: sub.id, Name: topic.Timer.String()}
			}

			sub.nextFire = sub.nextFire.Add(sub.interval)
			b.timerFires.Add(1)
			if len(results) > 0 {
				e.record(results[len(results)-1].Value)
			}

			v, err := sub.callback.Handle(e)
			if err != nil {
				return results, err
			}
			results = append(results, Result{Value: v, Dispatched: true})
			b.delivered.Add(1)
			b.logger.Debug("timer fired", zap.Duration("interval", sub.interval))
		}
	}
	return results, nil
}

// Stats returns a snapshot of bus statistics.
func (b *Bus) Stats() Stats {
	b.mu.Lock()
	subscribers := b.reg.size()
	b.mu.Unlock()

	return Stats{
		Published:   b.published.Load(),
		Delivered:   b.delivered.Load(),
		Held:        b.held.Load(),
		Replayed:    b.replayed.Load(),
		TimerFires:  b.timerFires.Load(),
		Subscribers: subscribers,
	}
}

// dispatch walks every eligible subscriber for e: broadcast buckets
// first, then the event's own bucket, priorities ascending, insertion
// order within a level. Each callback's return value is threaded to
// the next via the event's previous-results sequence. The caller holds
// b.mu.
func (b *Bus) dispatch(e *Event, filter *Priority) (Result, error) {
	names := make([]topic.Name, 0, 3)
	for _, bc := range []topic.Name{topic.Any, topic.All} {
		if bc != e.name && b.reg.has(bc) {
			names = append(names, bc)
		}
	}
	names = append(names, e.name)

	now := b.clock.Now()
	var result Result

	for _, name := range names {
		bkt := b.reg.get(name)
		if bkt == nil {
			continue
		}
		for p := 0; p < numPriorities; p++ {
			if filter != nil && Priority(p) != *filter {
				continue
			}
			for _, sub := range bkt.levels[p] {
				if e.cancelled && !sub.force {
					continue
				}
				if sub.isTimer() && now.Before(sub.nextFire) {
					continue
				}
				if !invocable(sub.callback) {
					return result, &CorruptSubscriberError{SubscriptionID: sub.id, Name: name.String()}
				}
				if sub.isTimer() {
					sub.nextFire = sub.nextFire.Add(sub.interval)
					b.timerFires.Add(1)
				}

				if result.Dispatched {
					e.record(result.Value)
				}
				v, err := sub.callback.Handle(e)
				if err != nil {
					return result, err
				}
				result = Result{Value: v, Dispatched: true}
				b.delivered.Add(1)
			}
		}
	}
	return result, nil
}
