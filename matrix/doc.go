// Package matrix provides the dense float64 matrix type and the numeric
// kernels that matcache memoizes — most importantly LU-based inversion.
//
// The matrix package provides:
//
//   - Matrix: a minimal mutable interface (Rows/Cols/At/Set/Clone) so callers
//     can plug alternative storages without touching the kernels.
//   - Dense: a row-major flat-slice implementation with O(1) safe accessors
//     and an opt-out NaN/Inf ingestion policy.
//   - Inverse / LU: deterministic Doolittle factorization without pivoting;
//     a zero pivot surfaces ErrSingular (the "not invertible" failure that
//     memo.Inverse propagates verbatim).
//   - Mul, Transpose, AllClose: the small algebra surface needed to verify
//     A·A⁻¹ ≈ I round-trips and to compare float results under tolerances.
//
// All kernels validate fail-fast through the central validators and return
// package sentinels wrapped with an operation tag, so errors.Is keeps working
// at every call site.
//
// See memo for the cached-container side of the story.
package matrix
