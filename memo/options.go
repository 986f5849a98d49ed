// SPDX-License-Identifier: MIT

// Package memo: functional configuration for the cached container.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package memo

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"github.com/katalvlaran/matcache/matrix"
)

// InverterFunc is the external inversion primitive: it must return the
// multiplicative inverse of a square invertible matrix and fail with
// matrix.ErrSingular (or an equivalent sentinel) otherwise. The input may be
// nil when the container holds no source yet; matrix.Inverse reports that as
// matrix.ErrNilMatrix.
type InverterFunc func(matrix.Matrix) (matrix.Matrix, error)

// Internal panic messages (no magic strings).
const (
	panicNilLogger   = "memo: WithLogger: logger must be non-nil"
	panicNilInverter = "memo: WithInverter: inverter must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported-by-field to prevent external mutation;
// public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	logger   log.Interface // destination of the cache-hit notification
	inverter InverterFunc  // inversion primitive (matrix.Inverse by default)
}

// defaultOptions returns the documented zero-configuration behavior:
// a silent logger (discard handler at Info level) and the package's own
// LU-based inversion primitive.
func defaultOptions() Options {
	return Options{
		logger:   &log.Logger{Handler: discard.New(), Level: log.InfoLevel},
		inverter: matrix.Inverse,
	}
}

// gatherOptions applies opts on top of the defaults and returns the effective
// configuration. Deterministic: application order is the caller's order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}

// WithLogger sets the apex/log destination for the cache-hit notification
// ("getting cached data"). The container emits exactly that one line and
// nothing else.
//
// Panics when l is nil (programmer error).
// Complexity: O(1).
func WithLogger(l log.Interface) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithInverter replaces the inversion primitive used on a cache miss.
// Useful to plug a pivoting implementation, or to observe computation counts
// in tests. The replacement inherits the primitive's contract: errors are
// propagated to the caller unmodified and nothing is cached on failure.
//
// Panics when fn is nil (programmer error).
// Complexity: O(1).
func WithInverter(fn InverterFunc) Option {
	if fn == nil {
		panic(panicNilInverter)
	}

	return func(o *Options) { o.inverter = fn }
}
