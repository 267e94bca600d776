// Package matrix provides the small dense linear-algebra layer used to turn a
// Coxeter matrix into mirror normals and a starting fundamental simplex.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     finite-only numeric policy.
//   - Central validators (nil, square, symmetric) returning
//     package sentinels.
//   - Kernels: Transpose, Mul, Cholesky, Determinant, Minor, Cofactor.
//
// Every kernel is deterministic (fixed loop orders), never mutates its inputs
// and wraps failures as "<Op>: <sentinel>" so callers can match with errors.Is.
//
// Matrices here are tiny (D×D with D the rank of the reflection group), so the
// kernels favour clarity and reproducibility over blocking or SIMD tricks.
package matrix
