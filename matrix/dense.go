// Package matrix: Dense is the concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The shape is fixed for the lifetime of the value; there is no resize.
// Each Dense exclusively owns its backing slice — constructors copy input
// data and kernels allocate fresh results, so no two instances ever alias.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	// Allocate flat slice (zero-initialized by the runtime)
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFilled creates an r×c Dense matrix with every element set to fill.
// Stage 1 (Validate): delegate dimension checks to NewDense.
// Stage 2 (Execute): write fill into each slot in a single flat loop.
// Complexity: O(r*c) time and memory.
func NewDenseFilled(rows, cols int, fill float64) (*Dense, error) {
	// Reuse the canonical constructor for validation and allocation.
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	// Fast exit: a zero fill is already the allocated state.
	if fill == 0 {
		return m, nil
	}
	// Flat deterministic fill 0..n-1.
	for idx := range m.data {
		m.data[idx] = fill
	}

	return m, nil
}

// NewDenseFromRows builds a Dense from a rectangular [][]float64 snapshot.
// Stage 1 (Validate): reject empty input and empty first row; reject any row
// whose length differs from the first (ragged input).
// Stage 2 (Execute): copy every row into fresh flat storage — the input
// slices are never retained, so later mutation of rows cannot alias m.
// Errors: ErrInvalidDimensions on empty or ragged input.
// Complexity: O(r*c) time and memory.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	// Reject an empty outer slice: dimensions cannot be inferred.
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: empty input: %w", ErrInvalidDimensions)
	}
	// The first row fixes the column count; it must be non-empty.
	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: empty row 0: %w", ErrInvalidDimensions)
	}

	// Allocate once, then copy row by row in fixed order.
	m := &Dense{r: len(rows), c: cols, data: make([]float64, len(rows)*cols)}
	for i, row := range rows {
		// Every row must match the width established by row 0.
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d columns, want %d: %w",
				i, len(row), cols, ErrInvalidDimensions)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Out-of-range indices are reported as ErrOutOfRange rather than a panic;
// treating them as fatal is the caller's decision.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Out-of-range indices are reported as ErrOutOfRange rather than a panic.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging: one row per line,
// rendered as "[a, b, c]". The format is diagnostic only and carries no
// compatibility contract.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[')         // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
