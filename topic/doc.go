// Package topic provides typed event names for the event bus.
//
// Event names are opaque strings with three reserved forms:
//
//	any          - broadcast; receives every published event
//	all          - broadcast; receives every published event
//	timer:<ms>   - timer spec; subscribes on an interval instead of a name
//
// Timer specs only exist at the subscribe/unsubscribe boundary. Parse
// converts them into a Spec carrying the interval and the normalized
// bucket name "timer", so no string-prefix checks leak into dispatch.
package topic
