// Package memo implements the cached-matrix container and the memoizing
// inverse accessor: compute the inverse once, serve it from the cache until
// the source matrix changes.
//
// 🚀 What is memo?
//
//	A CachedMatrix pairs one mutable source matrix with one optional cached
//	derived value (its inverse). The cache slot is a strict two-state
//	variant: empty, or holding a matrix. It transitions empty→holding on a
//	successful computation (or explicit store) and holding→empty only when
//	the source is replaced.
//
// ✨ Key guarantees:
//   - invalidation invariant: SetSource replaces the source and clears the
//     cache in the same critical section — a stale inverse is never observable
//   - exclusive ownership: every setter deep-copies in and every getter
//     deep-copies out, so no caller can alias the container's fields
//   - failure does not poison: a singular source surfaces matrix.ErrSingular
//     unmodified and leaves the slot empty, so the next call retries
//   - at most one successful inversion per epoch (the span between two
//     SetSource calls), even with concurrent callers — one mutex per
//     container guards the whole check→compute→store sequence
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/matcache/matrix"
//	  "github.com/katalvlaran/matcache/memo"
//	)
//
//	src, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	c := memo.New(src)
//
//	inv, err := memo.Inverse(c) // first call: computes and stores
//	inv, err = memo.Inverse(c)  // cache hit: logs "getting cached data"
//
//	c.SetSource(next)           // invalidates; next call recomputes
//
// Observability: the cache-hit notification goes through an apex/log
// Interface configured with WithLogger; the default logger discards it, so
// the package is silent unless a caller opts in. WithInverter swaps the
// inversion primitive (matrix.Inverse by default).
//
// See examples in example_test.go.
package memo
