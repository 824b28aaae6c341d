package decorate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arkadyp/underbar/clock"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := newConfig(nil)
	require.NotNil(t, cfg.Clock)
	require.NotNil(t, cfg.Scheduler)
	require.NotNil(t, cfg.Logger)
}

func TestNewConfigNilOptionsFallBack(t *testing.T) {
	cfg := newConfig([]Option{WithClock(nil), WithScheduler(nil), WithLogger(nil)})
	require.NotNil(t, cfg.Clock)
	require.NotNil(t, cfg.Scheduler)
	require.NotNil(t, cfg.Logger)
}

func TestWithClockScheduler(t *testing.T) {
	fake := clock.NewFake(time.Unix(0, 0))
	cfg := newConfig([]Option{WithClockScheduler(fake)})
	require.Same(t, fake, cfg.Clock)
	require.Same(t, fake, cfg.Scheduler)
}
