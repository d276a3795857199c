// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_grid.go — rows×cols 4-neighbour lattice with "r-c" vertex IDs.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridID returns the vertex ID of cell (r, c) as produced by Grid.
func GridID(r, c int) string {
	return strconv.Itoa(r) + "-" + strconv.Itoa(c)
}

// Grid returns a Constructor that builds a rows×cols lattice. Every cell is
// joined to its right and lower neighbour with a weight from cfg.weightFn.
// Cells are visited row-major, so a seeded weightFn is reproducible.
func Grid(rows, cols int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddNode(GridID(r, c)); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", methodGrid, GridID(r, c), err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, GridID(r, c), GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, GridID(r, c), GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
