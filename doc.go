// Package eventbus provides an in-process publish/subscribe event
// dispatcher with priority-ordered synchronous fan-out.
//
// Callers register callbacks ("subscribers") against named events at
// one of six priority levels, then publish event instances that are
// routed synchronously to matching subscribers in priority order.
//
// # Architecture
//
//	                 ┌─────────────────────────────────────┐
//	                 │                Bus                   │
//	                 │  - Subscription registry             │
//	                 │  - Priority-ordered sync dispatch    │
//	                 │  - Timer subscribers                 │
//	                 │  - Pending (unheard) event queue     │
//	                 └─────────────────────────────────────┘
//
// # Dispatch Order
//
// A publish visits the broadcast buckets "any" then "all" (when
// subscribed), then the event's own bucket. Within each bucket the six
// priority levels run in ascending order, Urgent first, Lowest last,
// and subscribers within one level run in registration order. Each
// callback's return value is visible to the callbacks that follow via
// Event.PreviousResults, and the last return value becomes the publish
// result.
//
// # Cancellation
//
// Any callback may call Cancel on the event. Cancellation is
// cooperative: it does not stop iteration, it suppresses the remaining
// non-forced subscribers for that dispatch. Subscribers registered
// with WithForce still run.
//
// # Timers
//
// Subscribing to "timer:<ms>" registers a timer subscriber that fires
// once its interval has elapsed instead of on an explicit event. The
// bus never spawns background goroutines; the host drives timers by
// publishing the reserved "timer" event or calling Tick on a cadence
// of its choosing. A timer checked late fires once per check, and its
// schedule advances by whole intervals so jitter never accumulates
// into drift.
//
// # Pending Events
//
// With SetHoldUnheardEvents(true), an event published while its name
// has no subscribers is held instead of dropped. The next Subscribe
// call for that name replays the held events immediately, restricted
// to the new subscriber's priority level; the replay results are
// available on the returned Subscription handle.
//
// # Concurrency
//
// A single mutex covers subscribe, unsubscribe, publish, and tick, so
// a dispatch always sees a stable registry. Callbacks execute
// synchronously on the calling goroutine while that mutex is held:
// they must not call back into the bus, and a slow callback stalls the
// publisher. The bus never recovers panics and never applies timeouts;
// both are the caller's responsibility.
//
// # Basic Usage
//
//	bus := eventbus.New()
//
//	bus.Subscribe("greet", eventbus.CallbackFunc(func(e *eventbus.Event) (any, error) {
//	    return "hello, " + e.Payload().(string), nil
//	}), eventbus.WithPriority(eventbus.PriorityHighest))
//
//	res, err := bus.Publish(eventbus.NewEvent("greet", "world"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Value) // hello, world
package eventbus
