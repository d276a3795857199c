// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors return sentinel errors; option constructors panic on nil/invalid input.
//
// The package produces fixtures for tests and benchmarks of the shortest-path
// engine: grids, paths, cycles, complete graphs and random sparse graphs,
// all symmetric with non-negative integer weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Constructor applies a deterministic mutation to g using the resolved config.
type Constructor func(g core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves bopts and applies every
// constructor in order. The first error is wrapped with "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (core.Graph, error) {
	g := core.New()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge samples a weight and adds u—v, wrapping core errors with the
// constructor's method name and ErrConstructFailed.
func addEdge(g core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s, %s, %d): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
