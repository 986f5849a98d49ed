// SPDX-License-Identifier: MIT
// Package memo: sentinel error set.
// Container operations are total (they always succeed on well-typed input),
// so the package adds exactly one sentinel of its own; everything the
// inversion primitive raises (matrix.ErrSingular, matrix.ErrNilMatrix, ...)
// passes through Inverse unmodified.

package memo

import "errors"

// ErrNilContainer indicates that a nil *CachedMatrix was passed to Inverse.
var ErrNilContainer = errors.New("memo: nil container")
