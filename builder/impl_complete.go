// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_complete.go — K_n: every pair of n vertices joined once.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodComplete = "Complete"
	minCompleteN   = 1
)

// Complete returns a Constructor that builds K_n. Pairs are visited in
// (i<j) lexicographic index order.
//
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minCompleteN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteN, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddNode(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddNode(%d): %w", methodComplete, i, err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
