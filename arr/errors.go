package arr

import "errors"

// ErrInvalidArgument is returned when an operation that needs at least one
// input sequence is called without any.
var ErrInvalidArgument = errors.New("arr: invalid argument")
