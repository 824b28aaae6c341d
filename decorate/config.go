package decorate

import (
	"go.uber.org/zap"

	"github.com/arkadyp/underbar/clock"
)

// Config holds the capabilities used by the time-based decorators.
type Config struct {
	// Clock supplies the current time. Defaults to [clock.Real].
	Clock clock.Clock

	// Scheduler runs deferred invocations. Defaults to [clock.Real].
	Scheduler clock.Scheduler

	// Logger receives debug events. Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultConfig returns a [Config] backed by real time and a no-op logger.
func DefaultConfig() Config {
	rt := clock.Real()
	return Config{
		Clock:     rt,
		Scheduler: rt,
		Logger:    zap.NewNop(),
	}
}

// Option customises a [Config].
type Option func(*Config)

// WithClock sets the time source.
func WithClock(c clock.Clock) Option {
	return func(cfg *Config) { cfg.Clock = c }
}

// WithScheduler sets the scheduler for deferred invocations.
func WithScheduler(s clock.Scheduler) Option {
	return func(cfg *Config) { cfg.Scheduler = s }
}

// WithClockScheduler sets both the time source and the scheduler, typically
// to a single [clock.Fake].
func WithClockScheduler(cs clock.ClockScheduler) Option {
	return func(cfg *Config) {
		cfg.Clock = cs
		cfg.Scheduler = cs
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *Config) { cfg.Logger = l }
}

func newConfig(opts []Option) Config {
	def := DefaultConfig()
	cfg := def
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Clock == nil {
		cfg.Clock = def.Clock
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = def.Scheduler
	}
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}
	return cfg
}
