// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - No dead switches: each constant below impacts behavior and is covered
//     by tests.
//
// Notes:
//   - The NaN/Inf policy applies at ingestion time (Set, NewDenseFromRows):
//     a Dense built with the default policy rejects non-finite writes with
//     ErrNaNInf. Kernels never re-check finiteness; the policy is the gate.
//   - Tolerances: AllClose and the test helpers default to DefaultEpsilon.
package matrix

import "math"

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by closeness
	// checks (AllClose and friends).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and
	// on 2-D ingestion.
	DefaultValidateNaNInf = true
)

// isNonFinite reports whether v is NaN or ±Inf.
// Kept as a helper so the policy check reads identically at every call site.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
