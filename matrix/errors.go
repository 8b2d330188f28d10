// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Validators return the plain sentinels; facades
// wrap them once with an operation tag via fmt.Errorf("%s: %w", op, err), so
// callers always match with errors.Is.

var (
	// ErrInvalidDimensions indicates that a requested shape is unusable:
	// non-positive dimensions in NewDense/NewDenseFilled, or an empty/ragged
	// [][]float64 in NewDenseFromRows.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add/Sub/Hadamard on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix operand was passed to a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
