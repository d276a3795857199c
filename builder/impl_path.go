// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_path.go — Path(n) and Cycle(n) chains over cfg.idFn(0..n-1).

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	minPathN    = 1
	minCycleN   = 3
)

// Path returns a Constructor that chains n vertices: 0—1—…—(n-1).
func Path(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minPathN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathN, ErrTooFewVertices)
		}

		return chain(g, cfg, methodPath, n, false)
	}
}

// Cycle returns a Constructor that chains n vertices and closes (n-1)—0.
func Cycle(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minCycleN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleN, ErrTooFewVertices)
		}

		return chain(g, cfg, methodCycle, n, true)
	}
}

func chain(g core.Graph, cfg builderConfig, method string, n int, closed bool) error {
	for i := 0; i < n; i++ {
		if err := g.AddNode(cfg.idFn(i)); err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w", method, i, err)
		}
	}
	for i := 0; i+1 < n; i++ {
		if err := addEdge(g, cfg, method, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
			return err
		}
	}
	if closed {
		return addEdge(g, cfg, method, cfg.idFn(n-1), cfg.idFn(0))
	}

	return nil
}
