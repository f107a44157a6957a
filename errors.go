package region

import "github.com/pkg/errors"

// Errors returned by the allocator. Every operation fails synchronously
// with one of these (possibly wrapped with context) and leaves the region's
// state untouched.
var (
	// ErrBlockCapacity is returned when a block is constructed with a
	// zero or negative capacity.
	ErrBlockCapacity = errors.New("region: block capacity must be positive")

	// ErrConfig is returned by New when the configuration is invalid.
	ErrConfig = errors.New("region: invalid configuration")

	// ErrRegionDisposed is returned by any operation on a region that has
	// already been disposed.
	ErrRegionDisposed = errors.New("region: use after Dispose")

	// ErrEmptyRequest is returned by Request when the requested size is
	// zero or negative.
	ErrEmptyRequest = errors.New("region: request size must be positive")

	// ErrRequestTooLarge is returned by Request when the requested size
	// exceeds what a single fresh block can supply.
	ErrRequestTooLarge = errors.New("region: request exceeds block capacity")
)
