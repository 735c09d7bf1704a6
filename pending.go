package eventbus

import "github.com/dshills/eventbus/topic"

// pendingQueue buffers events published while no subscriber existed,
// oldest first. Bounded only by memory; replay scans are O(n), which
// is fine for the small queues this exists for.
//
// Not safe for concurrent use on its own; the Bus serializes access.
type pendingQueue struct {
	enabled bool
	events  []*Event
}

// push appends e to the queue. Returns false when holding is disabled
// or e carries a reserved name; reserved-name events are never held.
func (q *pendingQueue) push(e *Event) bool {
	if !q.enabled || e.name.IsReserved() {
		return false
	}
	q.events = append(q.events, e)
	return true
}

// takeMatching removes and returns, in publish order, every queued
// event named name. The order of the remainder is preserved.
func (q *pendingQueue) takeMatching(name topic.Name) []*Event {
	if len(q.events) == 0 {
		return nil
	}

	var taken []*Event
	kept := q.events[:0]
	for _, e := range q.events {
		if e.name == name {
			taken = append(taken, e)
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(q.events); i++ {
		q.events[i] = nil
	}
	q.events = kept
	return taken
}

// setEnabled toggles holding. Disabling clears the queue in the same
// step; there is no partial drain.
func (q *pendingQueue) setEnabled(on bool) {
	q.enabled = on
	if !on {
		q.events = nil
	}
}

// len returns the number of held events.
func (q *pendingQueue) len() int {
	return len(q.events)
}
