package cache

import "errors"

var (
	// ErrNotFound is returned by Load when no entry exists under the name.
	ErrNotFound = errors.New("cache: entry not found")

	// ErrExists is returned by Save when an entry already exists; entries are
	// written once and never overwritten.
	ErrExists = errors.New("cache: entry already exists")

	// ErrInvalidName is returned for empty names or names containing a path separator.
	ErrInvalidName = errors.New("cache: invalid entry name")

	// ErrInvalidDim is returned when Decode is asked for a dimension below 1.
	ErrInvalidDim = errors.New("cache: dimension must be positive")

	// ErrMalformedToken is returned by a strict Decode for a token that is not
	// a finite floating-point number.
	ErrMalformedToken = errors.New("cache: malformed token")

	// ErrTruncatedRecord is returned by a strict Decode when the stream ends in
	// the middle of a flag.
	ErrTruncatedRecord = errors.New("cache: truncated record")
)
