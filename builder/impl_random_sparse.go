// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_random_sparse.go — Erdős–Rényi G(n, p) over cfg.idFn(0..n-1).
//
// Contract:
//   - Requires a random source (WithSeed / WithRand), else ErrNeedRandSource.
//   - Pairs (i<j) are sampled in lexicographic order; with a fixed seed the
//     graph, weights included, is reproducible.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomSparseN   = 1
)

// RandomSparse returns a Constructor that adds n vertices and joins each
// unordered pair independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minRandomSparseN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseN, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			if err := g.AddNode(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddNode(%d): %w", methodRandomSparse, i, err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
