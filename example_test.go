package eventbus_test

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/dshills/eventbus"
)

// Example_priorityOrdering demonstrates priority-ordered dispatch with
// result threading.
func Example_priorityOrdering() {
	bus := eventbus.New()

	bus.Subscribe("greet", eventbus.CallbackFunc(func(e *eventbus.Event) (any, error) {
		fmt.Printf("normal sees %v\n", e.PreviousResults())
		return "hello from normal", nil
	}))
	bus.Subscribe("greet", eventbus.CallbackFunc(func(e *eventbus.Event) (any, error) {
		return "hello from highest", nil
	}), eventbus.WithPriority(eventbus.PriorityHighest))

	res, err := bus.Publish(eventbus.NewEvent("greet", "hi"))
	if err != nil {
		fmt.Printf("publish failed: %v\n", err)
		return
	}
	fmt.Println(res.Value)

	// Output:
	// normal sees [hello from highest]
	// hello from normal
}

// Example_cancellation shows cooperative cancellation with a forced
// subscriber overriding it.
func Example_cancellation() {
	bus := eventbus.New()

	bus.Subscribe("save", eventbus.CallbackFunc(func(e *eventbus.Event) (any, error) {
		fmt.Println("validator: rejecting")
		e.Cancel()
		return nil, nil
	}), eventbus.WithPriority(eventbus.PriorityUrgent))
	bus.Subscribe("save", eventbus.CallbackFunc(func(e *eventbus.Event) (any, error) {
		fmt.Println("writer: never runs")
		return nil, nil
	}))
	bus.Subscribe("save", eventbus.CallbackFunc(func(e *eventbus.Event) (any, error) {
		fmt.Println("audit: runs anyway")
		return nil, nil
	}), eventbus.WithPriority(eventbus.PriorityLowest), eventbus.WithForce())

	bus.Publish(eventbus.NewEvent("save", nil))

	// Output:
	// validator: rejecting
	// audit: runs anyway
}

// Example_pendingReplay shows an event published before any subscriber
// existed being replayed on subscribe.
func Example_pendingReplay() {
	bus := eventbus.New(eventbus.WithHoldUnheardEvents(true))

	res, _ := bus.Publish(eventbus.NewEvent("greet", "early bird"))
	fmt.Println("dispatched:", !res.IsNoResult())

	sub, _ := bus.Subscribe("greet", eventbus.CallbackFunc(func(e *eventbus.Event) (any, error) {
		return fmt.Sprintf("heard %q late", e.Payload()), nil
	}))
	for _, r := range sub.Replayed() {
		fmt.Println(r.Value)
	}

	// Output:
	// dispatched: false
	// heard "early bird" late
}

// Example_timer drives a timer subscriber from a mock clock.
func Example_timer() {
	mock := clock.NewMock()
	bus := eventbus.New(eventbus.WithClock(mock))

	bus.Subscribe("timer:100", eventbus.CallbackFunc(func(e *eventbus.Event) (any, error) {
		fmt.Println("tick")
		return nil, nil
	}))

	mock.Add(100 * time.Millisecond)
	results, _ := bus.Tick(eventbus.NewEvent("timer", nil))
	fmt.Println("fired:", len(results))

	// Output:
	// tick
	// fired: 1
}
