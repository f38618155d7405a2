// Package matrix offers dense float64 matrices with cofactor-based linear algebra.
//
// The matrix package provides:
//
//   - Dense: row-major storage with bounds-checked At/Set, Clone, resize
//     (SetRows/SetCols) and an optional finite-only numeric policy.
//   - Elementwise and structural kernels: Add, Sub, Scale, Transpose, Mul and
//     tolerant Equal (|a-b| < 1e-7 per cell).
//   - The cofactor expansion engine: Minor, Determinant (recursive Laplace
//     expansion along the first row), CalcComplements, Adjugate and Inverse
//     (adjugate scaled by 1/det).
//
// Every kernel accepts the Matrix interface, validates its input fail-fast
// (nil → shape → squareness/compatibility) and returns a freshly allocated
// *Dense; inputs are never mutated. Errors are package sentinels matched with
// errors.Is.
//
// Cofactor expansion costs O(n!) and does no pivoting: the package targets
// small matrices where exact, reproducible results on integer inputs matter
// more than speed.
//
// See the examples in this package for usage patterns.
package matrix
