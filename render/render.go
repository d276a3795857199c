// Package render draws a core.Graph as Graphviz DOT, optionally highlighting a
// dijkstra.Result. It is the presentation side of the tooling; the engine
// never depends on it.
//
// Output is deterministic: nodes and edges are emitted in sorted order,
// every edge once, labelled with its weight.
//
//	dot, _ := render.DOT(g, &res)
//	// graph G { "A" [ ... ]; "A"--"B" [ label="1", color="red", penwidth="3" ]; ... }
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

const (
	defaultName  = "G"
	defaultColor = "red"
	idleColor    = "gray40"
	pathWidth    = "3"
)

// Options configures DOT rendering.
type Options struct {
	Name           string // graph name
	HighlightColor string // color of path nodes and edges
}

// Option represents a functional option for configuring rendering.
type Option func(*Options)

// WithName sets the DOT graph name. Empty names are ignored.
func WithName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Name = name
		}
	}
}

// WithHighlightColor sets the color used for the path. Empty colors are ignored.
func WithHighlightColor(color string) Option {
	return func(o *Options) {
		if color != "" {
			o.HighlightColor = color
		}
	}
}

// DOT renders g as an undirected DOT graph. If res is non-nil its path is
// highlighted and the endpoints are drawn as double circles.
func DOT(g core.Graph, res *dijkstra.Result, opts ...Option) (string, error) {
	gv, err := Graph(g, res, opts...)
	if err != nil {
		return "", err
	}

	return gv.String(), nil
}

// Graph builds the gographviz model behind DOT, for callers that want to
// post-process it (add attributes, subgraphs, ...).
func Graph(g core.Graph, res *dijkstra.Result, opts ...Option) (*gographviz.Graph, error) {
	cfg := Options{Name: defaultName, HighlightColor: defaultColor}
	for _, opt := range opts {
		opt(&cfg)
	}

	onPath, pathEdges := pathSets(res)

	gv := gographviz.NewGraph()
	if err := gv.SetName(quote(cfg.Name)); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if err := gv.SetDir(false); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if err := gv.AddAttr(quote(cfg.Name), "rankdir", "LR"); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	for _, n := range g.Nodes() {
		attrs := map[string]string{
			"shape": "circle",
			"color": quote(idleColor),
		}
		if onPath[n] {
			attrs["color"] = quote(cfg.HighlightColor)
			attrs["penwidth"] = quote(pathWidth)
		}
		if res != nil && len(res.Path) > 0 && (n == res.Path[0] || n == res.Path[len(res.Path)-1]) {
			attrs["shape"] = "doublecircle"
		}
		if err := gv.AddNode(quote(cfg.Name), quote(n), attrs); err != nil {
			return nil, fmt.Errorf("render: node %q: %w", n, err)
		}
	}

	for _, e := range g.Edges() {
		attrs := map[string]string{
			"label": quote(strconv.FormatInt(e.Weight, 10)),
			"color": quote(idleColor),
		}
		if pathEdges[e.From+"\x00"+e.To] {
			attrs["color"] = quote(cfg.HighlightColor)
			attrs["penwidth"] = quote(pathWidth)
		}
		if err := gv.AddEdge(quote(e.From), quote(e.To), false, attrs); err != nil {
			return nil, fmt.Errorf("render: edge %s—%s: %w", e.From, e.To, err)
		}
	}

	return gv, nil
}

// pathSets returns the nodes on the path and its edges keyed as "from\x00to"
// with from < to, matching core.Edge normalization.
func pathSets(res *dijkstra.Result) (map[string]bool, map[string]bool) {
	nodes := make(map[string]bool)
	edges := make(map[string]bool)
	if res == nil {
		return nodes, edges
	}
	for i, n := range res.Path {
		nodes[n] = true
		if i == 0 {
			continue
		}
		a, b := res.Path[i-1], n
		if b < a {
			a, b = b, a
		}
		edges[a+"\x00"+b] = true
	}

	return nodes, edges
}

// quote turns s into a DOT double-quoted ID.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
