package flag

import "errors"

var (
	// ErrDimensionMismatch is returned when vectors or flags of different
	// dimensions are combined, or a flag is not D points of dimension D.
	ErrDimensionMismatch = errors.New("flag: dimension mismatch")

	// ErrZeroVector is returned when reflecting across, or normalizing, a
	// vector of zero length.
	ErrZeroVector = errors.New("flag: zero-length vector")

	// ErrEmpty is returned for a flag with no vertices.
	ErrEmpty = errors.New("flag: no vertices")
)
