// Package matcache is a small, deterministic memoization layer for expensive
// matrix computations — compute once, reuse until the source changes.
//
// 🚀 What is matcache?
//
//	A container that pairs a mutable source matrix with a lazily computed,
//	cached derived value (its inverse):
//		• memo.CachedMatrix — owns the source and the single-slot cache
//		• memo.Inverse      — memoizing accessor: first call computes & stores,
//		  later calls return the stored value without recomputation
//		• replacing the source invalidates the cache in the same operation,
//		  so a stale inverse is never observable
//
// ✨ Why choose matcache?
//
//   - Strict invalidation – source and cache can never go out of sync
//   - No aliasing leaks – the container deep-copies on every set and get
//   - Failure-safe – a singular matrix raises matrix.ErrSingular and leaves
//     the cache empty, so the next call retries instead of serving garbage
//   - Safe under locks – one mutex per container guards the whole
//     check→compute→store sequence (at most one computation per epoch)
//
// Everything is organized under two subpackages:
//
//	matrix/ — dense float64 matrices + the LU-based inversion primitive
//	memo/   — the cached container and the memoizing accessor
//
// Quick taste:
//
//	src, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	c := memo.New(src)
//	inv, _ := memo.Inverse(c) // computed
//	inv, _ = memo.Inverse(c)  // served from cache ("getting cached data")
//	c.SetSource(other)        // cache cleared; next call recomputes
//
//	go get github.com/katalvlaran/matcache
package matcache
