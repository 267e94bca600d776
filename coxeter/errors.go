package coxeter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMatrix is the parent of every structural validation failure,
	// so callers can match any of them with a single errors.Is.
	ErrInvalidMatrix = errors.New("coxeter: invalid Coxeter matrix")

	// ErrEmpty is returned for a matrix with no rows.
	ErrEmpty = fmt.Errorf("%w: empty", ErrInvalidMatrix)

	// ErrNonSquare is returned when a row length differs from the row count.
	ErrNonSquare = fmt.Errorf("%w: not square", ErrInvalidMatrix)

	// ErrDiagonal is returned when a diagonal entry is not 1.
	ErrDiagonal = fmt.Errorf("%w: diagonal entry must be 1", ErrInvalidMatrix)

	// ErrOffDiagonal is returned when an off-diagonal entry is below 2.
	ErrOffDiagonal = fmt.Errorf("%w: off-diagonal entry must be >= 2", ErrInvalidMatrix)

	// ErrAsymmetric is returned when m[i][j] != m[j][i].
	ErrAsymmetric = fmt.Errorf("%w: not symmetric", ErrInvalidMatrix)

	// ErrEntryTooLarge is returned when an entry does not fit a single base-36
	// digit, which the cache name encoding requires.
	ErrEntryTooLarge = fmt.Errorf("%w: entry exceeds %d", ErrInvalidMatrix, MaxEntry)

	// ErrNotSpherical is returned when the Gram matrix is not positive definite:
	// the diagram is affine or hyperbolic and no finite mirror arrangement exists.
	ErrNotSpherical = errors.New("coxeter: Gram matrix is not positive definite (diagram is not spherical)")

	// ErrUnknownPreset is returned by Preset for an unregistered name.
	ErrUnknownPreset = errors.New("coxeter: unknown preset")
)
