// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense and CDense.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fundgroup/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewCDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 3.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrIndexOutOfBounds)
}

func TestDense_MulAndTranspose(t *testing.T) {
	a, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	b := a.Transpose()
	require.Equal(t, 3, b.Rows())

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	want, _ := matrix.NewDenseFrom(2, 2, []float64{14, 32, 32, 77})
	require.True(t, matrix.EqualApprox(p, want, 0))

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(2, 2, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_IdentityAndClone(t *testing.T) {
	id, err := matrix.Identity(4)
	require.NoError(t, err)
	cp := id.Clone()
	require.NoError(t, cp.Set(0, 0, 2))
	v, _ := id.At(0, 0)
	require.Equal(t, 1.0, v)
	require.Equal(t, "[1, 0]\n[0, 1]\n", mustIdentity(t, 2).String())
}

func mustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.Identity(n)
	require.NoError(t, err)

	return m
}

func TestCDense_MulTrace(t *testing.T) {
	a, err := matrix.NewCDenseFrom(2, 2, []complex128{1, 1i, 0, 1})
	require.NoError(t, err)
	id, err := matrix.CIdentity(2)
	require.NoError(t, err)

	p, err := matrix.CMul(a, id)
	require.NoError(t, err)
	require.True(t, matrix.CEqualApprox(p, a, 1e-12))

	tr, err := a.Trace()
	require.NoError(t, err)
	require.Equal(t, complex(2, 0), tr)

	rect, _ := matrix.NewCDense(1, 2)
	_, err = rect.Trace()
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = a.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.NoError(t, a.Clone().Set(0, 0, 5))
	v, _ := a.At(0, 0)
	require.Equal(t, complex128(1), v)
}
