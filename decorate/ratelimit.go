package decorate

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/arkadyp/underbar/clock"
)

// RateLimited is a function guarded by a token bucket: it holds up to burst
// tokens, refilled at one token per every, and each execution spends one.
// Calls without a token are dropped rather than deferred.
type RateLimited[A, R any] struct {
	fn      func(A) R
	limiter *rate.Limiter
	clock   clock.Clock
	logger  *zap.Logger

	mu   sync.Mutex
	last R
}

// NewRateLimited returns fn limited to burst executions at once, refilled at
// one execution per every. A non-positive every removes the refill limit.
func NewRateLimited[A, R any](fn func(A) R, every time.Duration, burst int, opts ...Option) (*RateLimited[A, R], error) {
	if burst < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBurst, burst)
	}
	limit := rate.Inf
	if every > 0 {
		limit = rate.Every(every)
	}
	cfg := newConfig(opts)
	return &RateLimited[A, R]{
		fn:      fn,
		limiter: rate.NewLimiter(limit, burst),
		clock:   cfg.Clock,
		logger:  cfg.Logger.With(zap.String("decorator", "ratelimit"), zap.Duration("every", every), zap.Int("burst", burst)),
	}, nil
}

// Call runs fn if a token is available and reports whether it did. A dropped
// call returns the result of the last execution.
func (r *RateLimited[A, R]) Call(arg A) (R, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.limiter.AllowN(r.clock.Now(), 1) {
		r.logger.Debug("call dropped by rate limit")
		return r.last, false
	}
	r.last = r.fn(arg)
	return r.last, true
}
