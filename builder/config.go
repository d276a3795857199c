// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// config.go — builderConfig and the BuilderOption setters that fill it.

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig is the resolved, read-only configuration passed to constructors.
type builderConfig struct {
	idFn     func(int) string       // vertex index → ID
	rng      *rand.Rand             // nil unless WithSeed/WithRand
	weightFn func(*rand.Rand) int64 // edge weight sampler
}

// defaultConstWeight is the edge weight when no WeightFn is configured.
const defaultConstWeight = int64(1)

// BuilderOption customizes a builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID function used by index-based constructors.
// Panics if fn is nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand uses r as the random source. Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed uses a fresh rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight sampler. Panics if fn is nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: ConstantWeightFn(defaultConstWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// DefaultIDFn returns "V0", "V1", ...
func DefaultIDFn(idx int) string {
	return "V" + strconv.Itoa(idx)
}

// SymbolIDFn maps 0..25 to "A".."Z". Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic("SymbolIDFn: idx must be in [0,25], got " + strconv.Itoa(idx))
	}

	return string(rune('A' + idx))
}
