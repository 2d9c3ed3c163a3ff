// SPDX-License-Identifier: MIT
// Package matrix: CDense is the complex counterpart of Dense, used for SL(2,C) images.

package matrix

import (
	"fmt"
	"math/cmplx"
	"strings"
)

// CDense is a row-major matrix of complex128 values.
type CDense struct {
	r, c int
	data []complex128
}

// NewCDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled row-major buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewCDense(rows, cols int) (*CDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &CDense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// NewCDenseFrom builds an r×c matrix from row-major values; len(values) must be r*c.
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewCDenseFrom(rows, cols int, values []complex128) (*CDense, error) {
	m, err := NewCDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("NewCDenseFrom: %d values for %dx%d: %w", len(values), rows, cols, ErrDimensionMismatch)
	}
	copy(m.data, values)

	return m, nil
}

// CIdentity returns the n×n complex identity.
// Complexity: O(n²).
func CIdentity(n int) (*CDense, error) {
	m, err := NewCDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *CDense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *CDense) Cols() int { return m.c }

// At retrieves the element at (row, col), or ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *CDense) At(row, col int) (complex128, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("CDense.At(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns v at (row, col), or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *CDense) Set(row, col int, v complex128) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return fmt.Errorf("CDense.Set(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Clone returns a deep copy sharing no storage with m.
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *CDense) Clone() *CDense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &CDense{r: m.r, c: m.c, data: cp}
}

// Trace returns the sum of the diagonal, or ErrDimensionMismatch for a non-square matrix.
// Complexity: O(n).
func (m *CDense) Trace() (complex128, error) {
	if m.r != m.c {
		return 0, fmt.Errorf("Trace: %dx%d: %w", m.r, m.c, ErrDimensionMismatch)
	}
	var tr complex128
	for i := 0; i < m.r; i++ {
		tr += m.data[i*m.c+i]
	}

	return tr, nil
}

// CMul returns a·b, or ErrDimensionMismatch when a.Cols() != b.Rows().
//
// Implementation:
//   - Stage 1 (Validate): a.Cols() == b.Rows().
//   - Stage 2 (Execute): i-k-j accumulation into a fresh result.
//
// Complexity:
//   - Time O(a.Rows()·a.Cols()·b.Cols()), Space O(a.Rows()·b.Cols()).
func CMul(a, b *CDense) (*CDense, error) {
	if a.c != b.r {
		return nil, fmt.Errorf("CMul: %dx%d by %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out := &CDense{r: a.r, c: b.c, data: make([]complex128, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			for j := 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// CEqualApprox reports whether a and b have the same shape and every entry is within eps.
// Complexity: O(r*c).
func CEqualApprox(a, b *CDense, eps float64) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if cmplx.Abs(a.data[i]-b.data[i]) > eps {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line.
func (m *CDense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
