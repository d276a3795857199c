// SPDX-License-Identifier: MIT
// Package: shortpath/graphio
//
// errors.go — sentinel errors for the graphio package.
//
// Error policy:
//   • Parsers return ErrSyntax for malformed text, wrapped with the line number.
//   • Structural problems (negative weight, self-loop, asymmetry, conflicting
//     weights) surface as the core sentinels, wrapped with the line number.
//   • Callers branch with errors.Is; never compare strings.

package graphio

import "errors"

var (
	// ErrSyntax indicates text that does not follow the selected format.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrUnknownFormat indicates an unsupported Format value.
	ErrUnknownFormat = errors.New("graphio: unknown format")
)
