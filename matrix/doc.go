// SPDX-License-Identifier: MIT

// Package matrix provides a dense, row-major, mutable matrix of float64
// values together with pure arithmetic operators.
//
// 🚀 What is matrix?
//
//	A minimal linear-algebra core built around two pieces:
//	  • the Matrix interface — Rows/Cols/At/Set/Clone over any 2D storage
//	  • Dense — the concrete row-major implementation on a flat []float64
//
// ✨ Key features:
//   - construction from dimensions (zeroed or uniformly filled) or from a
//     rectangular [][]float64 snapshot (validated, copied, never aliased)
//   - element-wise kernels: Add, Sub, Scale, Hadamard
//   - linear-algebra kernels: Mul (matrix product), MatVec, Transpose
//   - exact structural equality via Equal (IEEE-754 ==, no epsilon)
//   - sentinel errors matched with errors.Is; no panics on user input
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numkit/matrix"
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})
//
//	c, err := matrix.Mul(a, b) // 2×2 product, freshly allocated
//	if err != nil {
//	    // errors.Is(err, matrix.ErrDimensionMismatch) on shape problems
//	}
//	fmt.Print(c) // Dense implements fmt.Stringer, one row per line
//
// Error policy:
//
//	All user-triggered failures return sentinel errors (ErrInvalidDimensions,
//	ErrDimensionMismatch, ErrOutOfRange, ErrNilMatrix) wrapped with the
//	failing operation's tag. Out-of-bounds At/Set is a checked error rather
//	than an abort: callers that treat an invalid index as a programmer error
//	should fail hard on the returned ErrOutOfRange themselves.
//
// Concurrency:
//
//	Dense is a plain value type with no internal synchronization. Operators
//	never mutate their operands and always allocate fresh result storage, so
//	read-only sharing of operands is safe; concurrent mutation is not.
//
// Performance:
//
//   - At/Set/Rows/Cols: O(1)
//   - Add/Sub/Scale/Hadamard/Transpose/Clone/Equal: O(r·c)
//   - Mul: O(r·n·c); MatVec: O(r·c)
//
// See examples in example_test.go.
package matrix
