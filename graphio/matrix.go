// SPDX-License-Identifier: MIT
// Package: shortpath/graphio
//
// matrix.go — adjacency-matrix notation.
//
// The first line names the nodes; each following line is "NAME w1 ... wn",
// rows in header order. A cell of 0, "-" or "." means "no edge", so zero-weight
// edges cannot be expressed here (use the list or YAML notation). The matrix
// must be square with a zero diagonal and symmetric.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/shortpath/core"
)

// noEdge is the in-memory marker for an absent cell.
const noEdge int64 = -1

// ParseAdjacencyMatrix reads the adjacency-matrix notation.
//
// Errors:
//   - ErrSyntax: duplicate header names, wrong row name/order, wrong cell count,
//     non-integer or negative cells, missing rows.
//   - core.ErrSelfLoop: non-zero diagonal.
//   - core.ErrAsymmetric: cell (i,j) differs from (j,i).
func ParseAdjacencyMatrix(r io.Reader) (core.Graph, error) {
	sc := bufio.NewScanner(r)
	var (
		names  []string
		index  map[string]int
		cells  [][]int64
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := stripComment(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		if names == nil {
			index = make(map[string]int, len(fields))
			for i, name := range fields {
				if _, dup := index[name]; dup {
					return nil, syntaxErrorf(lineNo, "duplicate node %q in header", name)
				}
				index[name] = i
			}
			names = fields
			continue
		}

		row := len(cells)
		if row >= len(names) {
			return nil, syntaxErrorf(lineNo, "more rows than the %d header names", len(names))
		}
		if fields[0] != names[row] {
			return nil, syntaxErrorf(lineNo, "row %d must be %q, got %q", row+1, names[row], fields[0])
		}
		if len(fields)-1 != len(names) {
			return nil, syntaxErrorf(lineNo, "row %q has %d cells, want %d", fields[0], len(fields)-1, len(names))
		}

		vals := make([]int64, len(names))
		for j, cell := range fields[1:] {
			v, err := parseCell(cell)
			if err != nil {
				return nil, syntaxErrorf(lineNo, "cell %s/%s: %v", names[row], names[j], err)
			}
			vals[j] = v
		}
		if vals[row] != noEdge {
			return nil, fmt.Errorf("line %d: %w: %s has diagonal weight %d", lineNo, core.ErrSelfLoop, names[row], vals[row])
		}
		cells = append(cells, vals)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(cells) != len(names) {
		return nil, syntaxErrorf(lineNo, "got %d rows for %d header names", len(cells), len(names))
	}

	g := core.New()
	for i, a := range names {
		_ = g.AddNode(a)
		for j := i + 1; j < len(names); j++ {
			if cells[i][j] != cells[j][i] {
				return nil, fmt.Errorf("%w: %s/%s=%s but %s/%s=%s", core.ErrAsymmetric,
					a, names[j], cellString(cells[i][j]), names[j], a, cellString(cells[j][i]))
			}
			if cells[i][j] == noEdge {
				continue
			}
			if err := g.AddEdge(a, names[j], cells[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// WriteAdjacencyMatrix writes g as a matrix in sorted node order, columns
// padded for readability. Zero-weight edges have no matrix form and yield ErrSyntax.
func WriteAdjacencyMatrix(w io.Writer, g core.Graph) error {
	nodes := g.Nodes()
	for _, e := range g.Edges() {
		if e.Weight == 0 {
			return fmt.Errorf("%w: zero-weight edge %s—%s has no matrix form", ErrSyntax, e.From, e.To)
		}
	}

	width := 1
	for _, n := range nodes {
		width = max(width, len(n))
	}
	for _, e := range g.Edges() {
		width = max(width, len(strconv.FormatInt(e.Weight, 10)))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%*s", width, "")
	for _, n := range nodes {
		fmt.Fprintf(bw, " %*s", width, n)
	}
	bw.WriteByte('\n')
	for _, a := range nodes {
		fmt.Fprintf(bw, "%*s", width, a)
		for _, b := range nodes {
			cell := "0"
			if wgt, ok := g.Weight(a, b); ok {
				cell = strconv.FormatInt(wgt, 10)
			}
			fmt.Fprintf(bw, " %*s", width, cell)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// parseCell converts one matrix cell into a weight or noEdge.
func parseCell(cell string) (int64, error) {
	switch cell {
	case "-", ".", "0":
		return noEdge, nil
	}
	v, err := strconv.ParseInt(cell, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", cell)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative weight %d", v)
	}
	if v == 0 {
		return noEdge, nil
	}

	return v, nil
}

func cellString(v int64) string {
	if v == noEdge {
		return "-"
	}

	return strconv.FormatInt(v, 10)
}
