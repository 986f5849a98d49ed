// SPDX-License-Identifier: MIT
package memo_test

import (
	"fmt"

	"github.com/katalvlaran/matcache/matrix"
	"github.com/katalvlaran/matcache/memo"
)

// ExampleInverse demonstrates the memoization lifecycle.
//
// Scenario:
//
//	Source = [[1,2],[3,4]]. The first access computes the inverse; the
//	second serves it from the cache without recomputation. Replacing the
//	source invalidates the cache, so the next access computes again.
//
// Use case:
//
//	Any pipeline that repeatedly needs A⁻¹ while A changes rarely — solvers,
//	preconditioners, covariance updates.
//
// Complexity: first access per epoch O(n³); every later access O(n²) copy.
func ExampleInverse() {
	src, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})

	computations := 0
	c := memo.New(src, memo.WithInverter(func(m matrix.Matrix) (matrix.Matrix, error) {
		computations++

		return matrix.Inverse(m)
	}))

	inv, _ := memo.Inverse(c) // computed
	_, _ = memo.Inverse(c)    // cache hit
	fmt.Printf("computations=%d\n%v", computations, inv)

	c.SetSource(mustIdentity(2)) // invalidates the cache
	inv, _ = memo.Inverse(c)     // computed for the new epoch
	fmt.Printf("computations=%d\n%v", computations, inv)
	// Output:
	// computations=1
	// [-2, 1]
	// [1.5, -0.5]
	// computations=2
	// [1, 0]
	// [0, 1]
}

// ExampleCachedMatrix_CachedInverse shows the explicit two-state cache slot.
func ExampleCachedMatrix_CachedInverse() {
	src, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})
	c := memo.New(src)

	_, ok := c.CachedInverse()
	fmt.Println("cached before first access:", ok)

	_, _ = memo.Inverse(c)
	_, ok = c.CachedInverse()
	fmt.Println("cached after first access:", ok)

	c.SetSource(mustIdentity(2))
	_, ok = c.CachedInverse()
	fmt.Println("cached after SetSource:", ok)
	// Output:
	// cached before first access: false
	// cached after first access: true
	// cached after SetSource: false
}

// mustIdentity builds I_n for examples; allocation cannot fail for n > 0.
func mustIdentity(n int) matrix.Matrix {
	I, err := matrix.NewIdentity(n)
	if err != nil {
		panic(err)
	}

	return I
}
