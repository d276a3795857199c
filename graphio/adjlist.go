// SPDX-License-Identifier: MIT
// Package: shortpath/graphio
//
// adjlist.go — adjacency-list notation.
//
// Grammar (one entry per line):
//
//	line    := node [":" [pair {sep pair}]]
//	pair    := neighbor "=" weight
//	sep     := "," | whitespace
//
// Every pair is mirrored. Listing the same pair from both sides is allowed as
// long as the weights agree.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/shortpath/core"
)

// ParseAdjacencyList reads the adjacency-list notation.
//
// Errors:
//   - ErrSyntax: missing "=", non-integer weight, or a node name containing
//     whitespace, ",", ":", "=" or "#".
//   - core.ErrNegativeWeight, core.ErrSelfLoop, core.ErrWeightConflict: wrapped with the line number.
func ParseAdjacencyList(r io.Reader) (core.Graph, error) {
	g := core.New()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := stripComment(sc.Text())
		if line == "" {
			continue
		}

		head, rest, _ := strings.Cut(line, ":")
		node := strings.TrimSpace(head)
		if node == "" || strings.ContainsFunc(node, isReserved) {
			return nil, syntaxErrorf(lineNo, "bad node name %q", node)
		}
		if err := g.AddNode(node); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		for _, tok := range strings.FieldsFunc(rest, isPairSep) {
			nbr, ws, ok := strings.Cut(tok, "=")
			if !ok || nbr == "" {
				return nil, syntaxErrorf(lineNo, "expected neighbor=weight, got %q", tok)
			}
			if strings.ContainsFunc(nbr, isReserved) {
				return nil, syntaxErrorf(lineNo, "bad neighbor name %q", nbr)
			}
			w, err := strconv.ParseInt(ws, 10, 64)
			if err != nil {
				return nil, syntaxErrorf(lineNo, "bad weight %q for %s—%s", ws, node, nbr)
			}
			if err = g.AddEdge(node, nbr, w); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

// WriteAdjacencyList writes g in the adjacency-list notation, nodes and
// neighbors in sorted order. Each edge appears on both endpoint lines.
// Node IDs containing separators, "=", "#" or whitespace are rejected with ErrSyntax.
func WriteAdjacencyList(w io.Writer, g core.Graph) error {
	for _, node := range g.Nodes() {
		if strings.ContainsFunc(node, isReserved) {
			return fmt.Errorf("%w: node %q cannot be written as an adjacency list", ErrSyntax, node)
		}
	}

	bw := bufio.NewWriter(w)
	for _, node := range g.Nodes() {
		nbrs, _ := g.NeighborIDs(node)
		pairs := make([]string, 0, len(nbrs))
		for _, v := range nbrs {
			pairs = append(pairs, v+"="+strconv.FormatInt(g[node][v], 10))
		}
		if _, err := fmt.Fprintf(bw, "%s: %s\n", node, strings.Join(pairs, ", ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func isPairSep(r rune) bool { return r == ',' || unicode.IsSpace(r) }

func isReserved(r rune) bool {
	return isPairSep(r) || r == ':' || r == '=' || r == '#'
}
