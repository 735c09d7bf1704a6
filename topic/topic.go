package topic

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Name identifies an event. Names are matched exactly; there is no
// pattern syntax beyond the reserved forms documented in this package.
type Name string

// Reserved names.
const (
	// Any is a broadcast name. Subscribers to Any receive every
	// published event ahead of the event's own subscribers.
	Any Name = "any"

	// All is a broadcast name equivalent to Any, visited after it.
	All Name = "all"

	// Timer is the bucket name all timer-spec subscriptions are
	// normalized into.
	Timer Name = "timer"
)

// timerPrefix introduces an interval-bearing timer spec, e.g. "timer:500".
const timerPrefix = "timer:"

// Parse errors.
var (
	// ErrEmptyName is returned when a name is the empty string.
	ErrEmptyName = errors.New("event name is empty")

	// ErrInvalidInterval is returned when a timer spec does not carry a
	// positive integer number of milliseconds.
	ErrInvalidInterval = errors.New("timer interval must be a positive number of milliseconds")
)

// Kind classifies a parsed event name.
type Kind int

const (
	// KindNamed is an ordinary event name.
	KindNamed Kind = iota

	// KindBroadcast is one of the reserved broadcast names.
	KindBroadcast

	// KindTimer is the reserved timer name or an interval-bearing
	// timer spec.
	KindTimer
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindNamed:
		return "named"
	case KindBroadcast:
		return "broadcast"
	case KindTimer:
		return "timer"
	default:
		return "unknown"
	}
}

// Spec is the typed form of an event name, parsed once at the boundary.
type Spec struct {
	// Kind classifies the name.
	Kind Kind

	// Name is the normalized bucket name. For timer specs this is
	// always Timer regardless of the interval.
	Name Name

	// Interval is the timer recurrence. Zero for everything except an
	// interval-bearing timer spec.
	Interval time.Duration
}

// Parse converts a raw event name into its typed form.
//
//	"greet"     -> {KindNamed, "greet", 0}
//	"any"       -> {KindBroadcast, "any", 0}
//	"timer:500" -> {KindTimer, "timer", 500ms}
//	"timer"     -> {KindTimer, "timer", 0}
func Parse(s string) (Spec, error) {
	switch {
	case s == "":
		return Spec{}, ErrEmptyName
	case Name(s) == Any || Name(s) == All:
		return Spec{Kind: KindBroadcast, Name: Name(s)}, nil
	case Name(s) == Timer:
		return Spec{Kind: KindTimer, Name: Timer}, nil
	case strings.HasPrefix(s, timerPrefix):
		ms, err := strconv.Atoi(s[len(timerPrefix):])
		if err != nil || ms <= 0 {
			return Spec{}, ErrInvalidInterval
		}
		return Spec{Kind: KindTimer, Name: Timer, Interval: time.Duration(ms) * time.Millisecond}, nil
	default:
		return Spec{Kind: KindNamed, Name: Name(s)}, nil
	}
}

// String returns the name as a string.
func (n Name) String() string {
	return string(n)
}

// IsBroadcast returns true for the reserved broadcast names.
func (n Name) IsBroadcast() bool {
	return n == Any || n == All
}

// IsReserved returns true for the broadcast names and the timer bucket.
func (n Name) IsReserved() bool {
	return n.IsBroadcast() || n == Timer
}

// IsValid returns true if the name is non-empty.
func (n Name) IsValid() bool {
	return n != ""
}
