// SPDX-License-Identifier: MIT
// Package memo_test contains test helpers.
//
// Purpose:
//   • Deterministic fixtures for the cached container and the accessor.
//   • A counting inverter to observe computations per epoch.

package memo_test

import (
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/matcache/matrix"
	"github.com/katalvlaran/matcache/memo"
)

// mustFromRows BUILDS a *matrix.Dense from 2-D row data or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// compareExact ASSERTS strict equality between a matrix and a 2D literal.
func compareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if m == nil {
		t.Fatalf("compareExact: got nil matrix")
	}
	if m.Rows() != len(want) || m.Cols() != len(want[0]) {
		t.Fatalf("compareExact: shape %dx%d; want %dx%d", m.Rows(), m.Cols(), len(want), len(want[0]))
	}
	var i, j int // loop iterators
	for i = 0; i < len(want); i++ {
		for j = 0; j < len(want[i]); j++ {
			v, err := m.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			if v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// countingInverter WRAPS matrix.Inverse and counts invocations atomically.
// The count is what makes "exactly one computation per epoch" testable.
func countingInverter(n *int32) memo.InverterFunc {
	return func(m matrix.Matrix) (matrix.Matrix, error) {
		atomic.AddInt32(n, 1)

		return matrix.Inverse(m)
	}
}
