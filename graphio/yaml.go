// SPDX-License-Identifier: MIT
// Package: shortpath/graphio
//
// yaml.go — YAML document notation:
//
//	nodes: [X]            # optional; isolated nodes must be listed here
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: B, to: C, weight: 2}
//
// Unknown keys are rejected so typos ("wieght") do not silently become 0.

package graphio

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shortpath/core"
)

// document is the YAML shape of a graph.
type document struct {
	Nodes []string  `yaml:"nodes,omitempty"`
	Edges []edgeDoc `yaml:"edges,omitempty"`
}

// edgeDoc is one undirected edge. Weight is a pointer so that a missing
// weight can be told apart from an explicit 0.
type edgeDoc struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight *int64 `yaml:"weight"`
}

// ParseYAML reads the YAML document notation. An empty document yields an empty graph.
//
// Errors:
//   - ErrSyntax: malformed YAML, unknown keys, an edge without weight, or a
//     second document after "---".
//   - core sentinels from AddNode/AddEdge, wrapped with the edge index.
func ParseYAML(r io.Reader) (core.Graph, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	switch err := dec.Decode(&doc); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	default:
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: more than one YAML document", ErrSyntax)
		}
	}

	g := core.New()
	for i, n := range doc.Nodes {
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("nodes[%d]: %w", i, err)
		}
	}
	for i, e := range doc.Edges {
		if e.Weight == nil {
			return nil, fmt.Errorf("%w: edges[%d] %s—%s: weight is required", ErrSyntax, i, e.From, e.To)
		}
		if err := g.AddEdge(e.From, e.To, *e.Weight); err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
	}

	return g, nil
}

// WriteYAML writes g as a YAML document. Only isolated nodes are listed under
// "nodes"; every other node is implied by its edges.
func WriteYAML(w io.Writer, g core.Graph) error {
	var doc document
	for _, n := range g.Nodes() {
		if len(g[n]) == 0 {
			doc.Nodes = append(doc.Nodes, n)
		}
	}
	for _, e := range g.Edges() {
		wgt := e.Weight
		doc.Edges = append(doc.Edges, edgeDoc{From: e.From, To: e.To, Weight: &wgt})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}

	return enc.Close()
}
