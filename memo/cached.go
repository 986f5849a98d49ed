// SPDX-License-Identifier: MIT

// Package memo - CachedMatrix container.
//
// Purpose:
//   - Hold one mutable source matrix and one optional cached inverse.
//   - Enforce the invalidation invariant: whenever the source is reassigned,
//     the cache slot is reset in the same critical section, so the two fields
//     can never go out of sync.
//   - Enforce exclusive ownership: the container deep-copies on every set and
//     get, so callers cannot mutate its fields through retained references.
//
// Concurrency:
//   - One mutex per container. Each accessor is a single critical section;
//     the memoizing accessor (inverse.go) holds the same mutex across its
//     whole check→compute→store sequence.

package memo

import (
	"sync"

	"github.com/katalvlaran/matcache/matrix"
)

// panicNilStore guards the explicit store against nil (programmer error):
// the slot leaves the "holds" state only through SetSource.
const panicNilStore = "memo: SetCachedInverse: value must be non-nil"

// CachedMatrix pairs a mutable source matrix with a single-slot cache for its
// inverse. The zero state of the slot is "empty" (inv == nil); it is
// populated only by Inverse or by an explicit SetCachedInverse, and cleared
// by construction and by every SetSource call.
//
// Construct via New; the zero value carries no logger or inverter and is
// not usable directly.
type CachedMatrix struct {
	mu   sync.Mutex    // guards src and inv as one unit
	src  matrix.Matrix // current source; nil until a source is supplied
	inv  matrix.Matrix // cached inverse of src; nil means "empty slot"
	opts Options       // resolved configuration (logger, inverter)
}

// New constructs a CachedMatrix holding a deep copy of src.
// A nil src is the "no source yet" placeholder: the container is valid, the
// cache slot is empty, and Inverse fails until SetSource supplies a matrix.
// A typed-nil *matrix.Dense counts as nil here and in SetSource.
//
// Options follow the functional pattern; see WithLogger and WithInverter.
// Complexity: O(r*c) for the defensive copy, O(1) otherwise.
func New(src matrix.Matrix, opts ...Option) *CachedMatrix {
	return &CachedMatrix{
		src:  cloneOrNil(src),
		opts: gatherOptions(opts...),
	}
}

// SetSource replaces the source matrix and unconditionally clears the cached
// inverse. No error conditions; always succeeds. Passing nil resets the
// container to the "no source yet" placeholder state.
//
// Both fields change inside one critical section, which is what keeps the
// invalidation invariant observable under concurrent use.
// Complexity: O(r*c) for the defensive copy.
func (c *CachedMatrix) SetSource(m matrix.Matrix) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.src = cloneOrNil(m) // own a private copy, never the caller's value
	c.inv = nil           // invalidate: same operation, never out of sync
}

// Source returns a deep copy of the current source matrix, or nil when the
// container holds no source. No side effects; mutating the returned value
// does not touch the container.
// Complexity: O(r*c) for the copy.
func (c *CachedMatrix) Source() matrix.Matrix {
	c.mu.Lock()
	defer c.mu.Unlock()

	return cloneOrNil(c.src)
}

// SetCachedInverse stores a precomputed value into the cache slot,
// overwriting any previous value. The container performs no validation that
// v is actually the inverse of the current source — this is a trust contract
// with the caller, and Inverse is the only intended caller.
//
// Panics when v is nil, typed-nil *matrix.Dense included (programmer error):
// the slot transitions back to empty only via SetSource.
// Complexity: O(r*c) for the defensive copy.
func (c *CachedMatrix) SetCachedInverse(v matrix.Matrix) {
	if isNilMatrix(v) {
		panic(panicNilStore)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.inv = v.Clone() // own a private copy
}

// CachedInverse returns the cache slot's current value and true, or
// (nil, false) when the slot is empty. No side effects; the returned matrix
// is a deep copy.
// Complexity: O(r*c) for the copy on a hit, O(1) on empty.
func (c *CachedMatrix) CachedInverse() (matrix.Matrix, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inv == nil {
		return nil, false
	}

	return c.inv.Clone(), true
}

// isNilMatrix reports whether m carries no matrix: a nil interface, or a
// typed-nil *matrix.Dense smuggled inside a non-nil interface (whose Clone
// would dereference a nil receiver).
func isNilMatrix(m matrix.Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*matrix.Dense)

	return ok && d == nil
}

// cloneOrNil deep-copies m, passing nil (interface or typed *Dense) through
// as nil.
func cloneOrNil(m matrix.Matrix) matrix.Matrix {
	if isNilMatrix(m) {
		return nil
	}

	return m.Clone()
}
