package decorate

import "errors"

var (
	// ErrInvalidCapacity is returned by [MemoizeBounded] for a capacity below 1.
	ErrInvalidCapacity = errors.New("decorate: capacity must be greater than 0")

	// ErrInvalidBurst is returned by [NewRateLimited] for a burst below 1.
	ErrInvalidBurst = errors.New("decorate: burst must be greater than 0")
)
