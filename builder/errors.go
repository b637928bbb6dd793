// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`: "<Method>: <detail>: %w".
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).
//
// Priority when several validations fail:
//   • ErrTooFewVertices     — size/domain checks first (n, rows, cols, extra).
//   • ErrInvalidProbability — then probability ranges.
//   • ErrNeedRandSource     — then RNG presence for stochastic builders.
package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, extra)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that BuildGraph could not run a constructor,
// e.g. a nil Constructor was passed.
var ErrConstructFailed = errors.New("builder: construction failed")
