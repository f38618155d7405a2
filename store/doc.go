// SPDX-License-Identifier: MIT

// Package store persists dense float64 matrices in memory-mapped files.
//
// What:
//   - Create writes any matrix.Matrix into a fixed binary layout and keeps it mapped read-write.
//   - Open and OpenRW validate and map an existing file.
//   - *File implements matrix.Matrix, so every kernel of package matrix
//     (Determinant, Inverse, Mul, ...) runs directly on mapped data.
//   - Save and Load are one-shot helpers around Create/Open.
//
// Layout (little endian):
//
//	offset  size  field
//	0       8     magic "DENSEMAT"
//	8       4     version (uint32, currently 1)
//	12      4     reserved (zero)
//	16      8     rows (int64, > 0)
//	24      8     cols (int64, > 0)
//	32      8*n   cells, row-major IEEE-754 bit patterns, n = rows*cols
//
// Errors:
//   - ErrCorrupt: bad magic, unknown version, non-positive shape or a size that does not match the shape.
//   - ErrReadOnly: Set on a file opened with Open.
//   - ErrClosed: any access after Close.
//   - matrix.ErrOutOfRange, matrix.ErrNaNInf, matrix.ErrNilMatrix, matrix.ErrInvalidDimensions pass through.
//
// Concurrency:
//   - A *File is not safe for concurrent mutation. Callers own the handle and must Close it.
package store
