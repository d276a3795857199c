package graphio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graphio"
)

const scenarioList = `
# reference graph
A: B=1, C=4
B: C=2 D=7
C: D=1, E=5
D: E=2, F=3
E: F=6
F
`

const scenarioMatrix = `
   A  B  C  D  E  F
A  0  1  4  -  -  -
B  1  0  2  7  -  -
C  4  2  0  1  5  -
D  -  7  1  0  2  3
E  -  -  5  2  0  6
F  -  -  -  3  6  0   # trailing comment
`

const scenarioYAML = `
edges:
  - {from: A, to: B, weight: 1}
  - {from: A, to: C, weight: 4}
  - {from: B, to: C, weight: 2}
  - {from: B, to: D, weight: 7}
  - {from: C, to: D, weight: 1}
  - {from: C, to: E, weight: 5}
  - {from: D, to: E, weight: 2}
  - {from: D, to: F, weight: 3}
  - {from: E, to: F, weight: 6}
`

// TestParse_AllFormatsAgree checks that the three notations of the same graph
// produce identical values and the expected shortest path.
func TestParse_AllFormatsAgree(t *testing.T) {
	inputs := map[graphio.Format]string{
		graphio.FormatList:   scenarioList,
		graphio.FormatMatrix: scenarioMatrix,
		graphio.FormatYAML:   scenarioYAML,
	}

	var ref core.Graph
	for _, f := range graphio.Formats() {
		g, err := graphio.Parse(f, strings.NewReader(inputs[f]))
		require.NoError(t, err, "format %s", f)
		require.NoError(t, g.Validate())
		assert.Equal(t, 6, g.NodeCount(), "format %s", f)
		assert.Equal(t, 9, g.EdgeCount(), "format %s", f)
		if ref == nil {
			ref = g
		} else {
			assert.Equal(t, ref, g, "format %s", f)
		}

		res, err := dijkstra.ShortestPath(g, "A", "F")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C", "D", "F"}, res.Path)
		assert.Equal(t, int64(7), res.Distance)
	}
}

func TestParseAdjacencyList_IsolatedAndMirrored(t *testing.T) {
	g, err := graphio.ParseAdjacencyList(strings.NewReader("A: B=0\nB: A=0\nX:\nY\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "X", "Y"}, g.Nodes())
	assert.Empty(t, g["X"])
	w, ok := g.Weight("B", "A")
	require.True(t, ok)
	assert.Zero(t, w)
}

func TestParseAdjacencyList_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"missing equals", "A: B", graphio.ErrSyntax},
		{"bad weight", "A: B=x", graphio.ErrSyntax},
		{"space in name", "A B: C=1", graphio.ErrSyntax},
		{"empty name", ": C=1", graphio.ErrSyntax},
		{"forgotten colon", "A=1", graphio.ErrSyntax},
		{"colon in neighbor", "A: B:C=1", graphio.ErrSyntax},
		{"equals in neighbor", "A: B=C=1", graphio.ErrSyntax},
		{"negative", "A: B=-3", core.ErrNegativeWeight},
		{"self loop", "A: A=1", core.ErrSelfLoop},
		{"conflict", "A: B=1\nB: A=2", core.ErrWeightConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.ParseAdjacencyList(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseAdjacencyMatrix_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"duplicate header", "A A\nA 0 1\nA 1 0", graphio.ErrSyntax},
		{"row order", "A B\nB 0 1\nA 1 0", graphio.ErrSyntax},
		{"short row", "A B\nA 0\nB 1 0", graphio.ErrSyntax},
		{"missing row", "A B\nA 0 1", graphio.ErrSyntax},
		{"extra row", "A\nA 0\nB 0", graphio.ErrSyntax},
		{"not integer", "A B\nA 0 x\nB x 0", graphio.ErrSyntax},
		{"negative", "A B\nA 0 -1\nB -1 0", graphio.ErrSyntax},
		{"diagonal", "A B\nA 5 1\nB 1 0", core.ErrSelfLoop},
		{"asymmetric", "A B\nA 0 1\nB 2 0", core.ErrAsymmetric},
		{"half edge", "A B\nA 0 1\nB - 0", core.ErrAsymmetric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.ParseAdjacencyMatrix(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseYAML_NodesAndErrors(t *testing.T) {
	g, err := graphio.ParseYAML(strings.NewReader("nodes: [X]\nedges:\n  - {from: A, to: B, weight: 0}\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "X"}, g.Nodes())

	g, err = graphio.ParseYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())

	_, err = graphio.ParseYAML(strings.NewReader("edges:\n  - {from: A, to: B}\n"))
	assert.ErrorIs(t, err, graphio.ErrSyntax)

	_, err = graphio.ParseYAML(strings.NewReader("edges:\n  - {from: A, to: B, wieght: 1}\n"))
	assert.ErrorIs(t, err, graphio.ErrSyntax)

	_, err = graphio.ParseYAML(strings.NewReader("edges: [oops"))
	assert.ErrorIs(t, err, graphio.ErrSyntax)

	_, err = graphio.ParseYAML(strings.NewReader("edges:\n  - {from: A, to: B, weight: -2}\n"))
	assert.ErrorIs(t, err, core.ErrNegativeWeight)

	_, err = graphio.ParseYAML(strings.NewReader("edges:\n  - {from: A, to: B, weight: 1}\n---\nedges:\n  - {from: B, to: C, weight: -4}\n"))
	assert.ErrorIs(t, err, graphio.ErrSyntax, "trailing documents are not dropped")

	_, err = graphio.ParseYAML(strings.NewReader("nodes: ['']\n"))
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
}

// TestWrite_RoundTrip writes a graph in every format and reads it back.
func TestWrite_RoundTrip(t *testing.T) {
	g, err := graphio.ParseAdjacencyList(strings.NewReader(scenarioList + "Z\n"))
	require.NoError(t, err)

	for _, f := range graphio.Formats() {
		var buf bytes.Buffer
		require.NoError(t, graphio.Write(f, &buf, g), "format %s", f)
		back, err := graphio.Parse(f, &buf)
		require.NoError(t, err, "format %s:\n%s", f, buf.String())
		assert.Equal(t, g, back, "format %s", f)
	}
}

func TestWriteAdjacencyMatrix_ZeroWeight(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("A", "B", 0))
	err := graphio.WriteAdjacencyMatrix(&bytes.Buffer{}, g)
	assert.ErrorIs(t, err, graphio.ErrSyntax)
}

func TestWriteAdjacencyList_ReservedID(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("0,0", "0,1", 1))
	err := graphio.WriteAdjacencyList(&bytes.Buffer{}, g)
	assert.ErrorIs(t, err, graphio.ErrSyntax)

	// YAML has no such restriction.
	require.NoError(t, graphio.WriteYAML(&bytes.Buffer{}, g))
}

func TestFormats(t *testing.T) {
	assert.Equal(t, graphio.FormatYAML, graphio.FormatFromPath("g.YML"))
	assert.Equal(t, graphio.FormatMatrix, graphio.FormatFromPath("dir/g.mtx"))
	assert.Equal(t, graphio.FormatList, graphio.FormatFromPath("g.txt"))

	f, err := graphio.ParseFormat(" Matrix ")
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatMatrix, f)
	f, err = graphio.ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatYAML, f)

	_, err = graphio.ParseFormat("dot")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
	_, err = graphio.Parse("dot", strings.NewReader(""))
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
	assert.ErrorIs(t, graphio.Write("dot", &bytes.Buffer{}, core.New()), graphio.ErrUnknownFormat)
}
