// Package densela is a small dense linear-algebra toolkit for float64
// matrices, built around cofactor (Laplace) expansion.
//
// 🚀 What is densela?
//
//	A pure-Go library that brings together:
//		• Dense storage: row-major *matrix.Dense with explicit error returns
//		• Algebra: Add, Sub, Scale, Transpose, Mul, tolerant Equal
//		• Cofactor kernels: Minor, Determinant, CalcComplements, Adjugate, Inverse
//		• Persistence: memory-mapped matrix files (store)
//		• Presentation: locale-aware aligned text (render)
//
// ✨ Why choose densela?
//
//   - Beginner-friendly: every kernel is a short, readable recursion or loop
//   - Deterministic: fixed loop orders, no hidden parallelism
//   - Safe: no panics on user input, sentinel errors matched with errors.Is
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/  Matrix interface, Dense, validators, algebra and cofactor kernels
//	store/   mmap-backed File implementing matrix.Matrix, Save/Load
//	render/  text rendering through golang.org/x/text
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}})
//	d, _ := matrix.Determinant(a) // 4
//	inv, _ := matrix.Inverse(a)   // adjugate / 4
//
// Cofactor expansion costs O(n!) and is meant for small matrices.
//
//	go get github.com/katalvlaran/densela
package densela
