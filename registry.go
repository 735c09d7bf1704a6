package eventbus

import (
	"time"

	"github.com/dshills/eventbus/topic"
)

// bucket holds the subscribers for one event name, partitioned by
// priority level. Insertion order within a level is preserved and is
// the dispatch tie-break.
type bucket struct {
	count  int
	levels [numPriorities][]*subscriber
}

// registry maps event names to buckets. A bucket exists in the map iff
// it holds at least one subscriber; empty buckets are deleted
// immediately.
//
// The registry is not safe for concurrent use on its own; the Bus
// serializes all access under one mutex.
type registry struct {
	buckets map[topic.Name]*bucket
}

// newRegistry creates an empty registry.
func newRegistry() *registry {
	return &registry{buckets: make(map[topic.Name]*bucket)}
}

// add appends sub under name at its priority level, creating the
// bucket if needed.
func (r *registry) add(name topic.Name, sub *subscriber) {
	b := r.buckets[name]
	if b == nil {
		b = &bucket{}
		r.buckets[name] = b
	}
	b.levels[sub.priority] = append(b.levels[sub.priority], sub)
	b.count++
}

// remove deletes every entry under name matching cb and interval.
// Returns the number of entries removed.
func (r *registry) remove(name topic.Name, cb Callback, interval time.Duration) int {
	b := r.buckets[name]
	if b == nil {
		return 0
	}

	removed := 0
	for p := range b.levels {
		subs := b.levels[p]
		kept := subs[:0]
		for _, s := range subs {
			if s.matches(cb, interval) {
				removed++
				continue
			}
			kept = append(kept, s)
		}
		for i := len(kept); i < len(subs); i++ {
			subs[i] = nil
		}
		b.levels[p] = kept
	}

	b.count -= removed
	if b.count == 0 {
		delete(r.buckets, name)
	}
	return removed
}

// removeAll drops the entire bucket for name. Returns the number of
// entries removed.
func (r *registry) removeAll(name topic.Name) int {
	b := r.buckets[name]
	if b == nil {
		return 0
	}
	delete(r.buckets, name)
	return b.count
}

// removeID deletes the single entry carrying id under name.
func (r *registry) removeID(name topic.Name, id string) bool {
	b := r.buckets[name]
	if b == nil {
		return false
	}
	for p := range b.levels {
		for i, s := range b.levels[p] {
			if s.id == id {
				b.levels[p] = append(b.levels[p][:i], b.levels[p][i+1:]...)
				b.count--
				if b.count == 0 {
					delete(r.buckets, name)
				}
				return true
			}
		}
	}
	return false
}

// get returns the bucket for name, or nil.
func (r *registry) get(name topic.Name) *bucket {
	return r.buckets[name]
}

// has returns true if name has at least one subscriber.
func (r *registry) has(name topic.Name) bool {
	return r.buckets[name] != nil
}

// priorityOf returns the priority of the first entry under name
// matching cb and interval, scanning levels in ascending order.
func (r *registry) priorityOf(name topic.Name, cb Callback, interval time.Duration) (Priority, bool) {
	b := r.buckets[name]
	if b == nil {
		return 0, false
	}
	for p := range b.levels {
		for _, s := range b.levels[p] {
			if s.matches(cb, interval) {
				return Priority(p), true
			}
		}
	}
	return 0, false
}

// size returns the total number of registered subscribers.
func (r *registry) size() int {
	n := 0
	for _, b := range r.buckets {
		n += b.count
	}
	return n
}
