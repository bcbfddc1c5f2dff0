package vec

import "errors"

var (
	// ErrCapacity is returned (or panicked, for Push) when a requested
	// capacity is negative or exceeds what the runtime can allocate.
	ErrCapacity = errors.New("vec: capacity out of range")

	// ErrVersion is returned by CheckVersion when the library does not
	// satisfy a required version.
	ErrVersion = errors.New("vec: version requirement not met")
)
