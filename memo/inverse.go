// SPDX-License-Identifier: MIT

// Package memo - the memoizing inverse accessor.
//
// Purpose:
//   - Serve the cached inverse when present (with the observable cache-hit
//     notification), compute-and-store it when absent.
//   - Keep the whole check→compute→store sequence inside the container's
//     mutex, so at most one computation happens per epoch even with
//     concurrent callers.
//
// Failure semantics:
//   - Errors from the inversion primitive (matrix.ErrSingular for singular
//     input, matrix.ErrNilMatrix / matrix.ErrDimensionMismatch for malformed
//     input) are not caught, retried or wrapped — they surface verbatim, and
//     the cache slot stays empty so the next call retries.

package memo

import "github.com/katalvlaran/matcache/matrix"

// cacheHitMessage is the single diagnostic line this package ever emits.
// It fires exactly when a cache hit occurs; nothing else is logged.
const cacheHitMessage = "getting cached data"

// Inverse returns the inverse of c's source matrix, computing and caching it
// on first access and returning the cached value on subsequent accesses
// without recomputation.
//
// Implementation:
//   - Stage 1: validate the container; nil → ErrNilContainer.
//   - Stage 2 (under c.mu): slot holds a value → emit the cache-hit
//     notification and return a deep copy; no recomputation, no mutation.
//   - Stage 3 (still under c.mu): slot empty → run the configured inverter
//     on a private copy of the source; on failure return the error and leave
//     the slot empty; on success store the result and return it.
//
// Behavior highlights:
//   - At most one successful inversion per epoch (SetSource to SetSource),
//     regardless of how many calls land in between.
//   - The inverter never sees the container's own source instance, and the
//     caller never receives the slot's own instance — ownership stays with
//     the container.
//
// Errors:
//   - ErrNilContainer          (nil c).
//   - matrix.ErrNilMatrix      (container holds no source yet).
//   - matrix.ErrSingular and friends, propagated verbatim from the inverter.
//
// Complexity:
//   - Hit: O(r*c) for the returned copy. Miss: cost of the inverter (O(n³)
//     for the default LU primitive) plus O(n²) for the stored copy.
func Inverse(c *CachedMatrix) (matrix.Matrix, error) {
	// Validate the container itself; everything past this point owns the lock.
	if c == nil {
		return nil, ErrNilContainer
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Cache hit: notify and short-circuit.
	if c.inv != nil {
		c.opts.logger.Info(cacheHitMessage)

		return c.inv.Clone(), nil
	}

	// Cache miss: compute on a private copy of the source.
	inv, err := c.opts.inverter(cloneOrNil(c.src))
	if err != nil {
		return nil, err // propagate unmodified; slot stays empty
	}

	// Store-and-return. The direct assignment is SetCachedInverse's body
	// inlined because the lock is already held; the clone keeps the slot
	// independent from the value handed back to the caller.
	c.inv = inv.Clone()

	return inv, nil
}
