// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
package matrix

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// such as ValidateSymmetric.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultPivotTolerance is the smallest diagonal pivot Cholesky accepts.
	// Singular (positive semi-definite) inputs produce round-off pivots near
	// zero of either sign; anything at or below this bound is rejected.
	DefaultPivotTolerance = 1e-10
)
