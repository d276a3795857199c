// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers MUST use errors.Is(err, ErrX); constructors attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not complete
// (nil constructor, or an edge rejected by core).
var ErrConstructFailed = errors.New("builder: construction failed")
