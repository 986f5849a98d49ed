// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and constructors.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcache/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{4, 7},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			// immediately after creation all elements should be 0
			var i, j int // loop iterators
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					if v := MustAt(t, m, i, j); v != 0.0 {
						t.Fatalf("element [%d,%d] of a new Dense(%dx%d) must be 0", i, j, tc.rows, tc.cols)
					}
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{-1, 2},
		{2, -5},
	} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDense_AtSet_Bounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)

	_, err := m.At(-1, 0)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 3)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(2, 0, 1.0)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(0, -1, 1.0)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_Set_RejectsNaNInf(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := m.Set(0, 0, v)
		AssertErrorIs(t, err, matrix.ErrNaNInf)
	}
	// The rejected writes must not have touched the cell.
	require.Equal(t, 0.0, MustAt(t, m, 0, 0))
}

func TestDense_Clone_Independence(t *testing.T) {
	t.Parallel()

	orig := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	cp := orig.Clone()

	// Mutating the clone must not affect the original.
	MustSet(t, cp, 0, 0, 42)
	require.Equal(t, 1.0, MustAt(t, orig, 0, 0))
	require.Equal(t, 42.0, MustAt(t, cp, 0, 0))

	// The clone keeps the numeric policy of the original.
	AssertErrorIs(t, cp.Set(1, 1, math.NaN()), matrix.ErrNaNInf)
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	const n = 4
	I, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.Equal(t, want, MustAt(t, I, i, j))
		}
	}

	_, err = matrix.NewIdentity(0)
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)
}

func TestNewDenseFromRows_Errors(t *testing.T) {
	t.Parallel()

	// Empty data.
	_, err := matrix.NewDenseFromRows(nil)
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows([][]float64{{}})
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)

	// Ragged rows.
	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	AssertErrorIs(t, err, matrix.ErrRaggedRows)

	// Non-finite element under the default policy.
	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	AssertErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2.5, -3, 0})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
