package eventbus

import (
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// Option configures a Bus.
type Option func(*busConfig)

// busConfig contains configuration for the event bus.
type busConfig struct {
	// clock is the time source for timer subscribers.
	clock clock.Clock

	// logger receives debug-level dispatch events.
	logger *zap.Logger

	// hold enables the pending queue from construction.
	hold bool
}

// defaultBusConfig returns sensible default configuration.
func defaultBusConfig() busConfig {
	return busConfig{
		clock:  clock.New(),
		logger: zap.NewNop(),
	}
}

// WithClock sets the time source used by timer subscribers. Tests pass
// a mock clock to drive timers without sleeping.
func WithClock(c clock.Clock) Option {
	return func(cfg *busConfig) {
		if c != nil {
			cfg.clock = c
		}
	}
}

// WithLogger sets the logger for debug-level dispatch events. The bus
// is silent by default.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *busConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithHoldUnheardEvents enables or disables the pending queue at
// construction time. Equivalent to calling SetHoldUnheardEvents on the
// new bus.
func WithHoldUnheardEvents(hold bool) Option {
	return func(cfg *busConfig) {
		cfg.hold = hold
	}
}

// PublishOption configures a single publish call.
type PublishOption func(*publishConfig)

// publishConfig contains configuration for one publish call.
type publishConfig struct {
	// filter, when set, restricts dispatch to one priority level.
	filter *Priority
}

// WithPriorityFilter restricts the publish to subscribers at exactly
// the given priority level. Values outside the six defined levels are
// ignored.
func WithPriorityFilter(p Priority) PublishOption {
	return func(cfg *publishConfig) {
		if p.valid() {
			level := p
			cfg.filter = &level
		}
	}
}
