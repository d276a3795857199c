// Package graphio turns textual graph descriptions into core.Graph values and
// back. It is the ingestion side of the shortest-path tooling: every graph it
// returns is symmetric, non-negative and passes core.Graph.Validate, so it can
// go straight to dijkstra.ShortestPath.
//
// Formats:
//
//	FormatList   — one node per line:   A: B=1, C=4
//	FormatMatrix — header of names, then one row per node:
//	                   A  B  C
//	               A   0  1  4
//	               B   1  0  2
//	               C   4  2  0
//	FormatYAML   — nodes: [...] / edges: [{from, to, weight}]
//
// Lines starting with '#' (and trailing "# ..." comments) are ignored in the
// list and matrix formats.
package graphio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/shortpath/core"
)

// Format selects a textual graph notation.
type Format string

const (
	// FormatList is the adjacency-list notation.
	FormatList Format = "list"

	// FormatMatrix is the adjacency-matrix notation.
	FormatMatrix Format = "matrix"

	// FormatYAML is the YAML document notation.
	FormatYAML Format = "yaml"
)

// Formats lists every supported format, in documentation order.
func Formats() []Format { return []Format{FormatList, FormatMatrix, FormatYAML} }

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatList, FormatMatrix, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath guesses the format from a file extension:
// .yaml/.yml → yaml, .matrix/.mtx → matrix, anything else → list.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".matrix", ".mtx":
		return FormatMatrix
	default:
		return FormatList
	}
}

// Parse reads a graph in the given format.
func Parse(format Format, r io.Reader) (core.Graph, error) {
	switch format {
	case FormatList:
		return ParseAdjacencyList(r)
	case FormatMatrix:
		return ParseAdjacencyMatrix(r)
	case FormatYAML:
		return ParseYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Write renders g in the given format.
func Write(format Format, w io.Writer, g core.Graph) error {
	switch format {
	case FormatList:
		return WriteAdjacencyList(w, g)
	case FormatMatrix:
		return WriteAdjacencyMatrix(w, g)
	case FormatYAML:
		return WriteYAML(w, g)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// stripComment removes a trailing "# ..." comment and surrounding space.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}

	return strings.TrimSpace(line)
}

// syntaxErrorf wraps ErrSyntax with a line number and message.
func syntaxErrorf(line int, format string, args ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, line, fmt.Sprintf(format, args...))
}
