package collections

import "errors"

// ErrInvalidArgument is returned when an operation receives a value of the
// wrong shape, such as an [Invoke] method name that the element lacks.
var ErrInvalidArgument = errors.New("collections: invalid argument")
