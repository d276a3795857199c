package render_test

import (
	"strings"
	"testing"

	"github.com/awalterschulze/gographviz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/render"
)

func buildTriangle(t *testing.T) core.Graph {
	t.Helper()
	g := core.New()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 5))
	require.NoError(t, g.AddNode("Z"))

	return g
}

// edgeAttrs finds the attributes of edge a—b in either orientation.
func edgeAttrs(t *testing.T, gv *gographviz.Graph, a, b string) gographviz.Attrs {
	t.Helper()
	qa, qb := `"`+a+`"`, `"`+b+`"`
	for _, e := range gv.Edges.Edges {
		if (e.Src == qa && e.Dst == qb) || (e.Src == qb && e.Dst == qa) {
			return e.Attrs
		}
	}
	t.Fatalf("edge %s—%s not rendered", a, b)

	return nil
}

func TestGraph_PlainStructure(t *testing.T) {
	gv, err := render.Graph(buildTriangle(t), nil)
	require.NoError(t, err)

	assert.False(t, gv.Directed)
	assert.Len(t, gv.Nodes.Nodes, 4)
	assert.Len(t, gv.Edges.Edges, 3)
	assert.Contains(t, gv.Nodes.Lookup, `"Z"`)

	attrs := edgeAttrs(t, gv, "A", "C")
	assert.Equal(t, `"5"`, attrs[gographviz.Attr("label")])
	_, highlighted := attrs[gographviz.Attr("penwidth")]
	assert.False(t, highlighted)
}

func TestGraph_HighlightsPath(t *testing.T) {
	g := buildTriangle(t)
	res, err := dijkstra.ShortestPath(g, "C", "A")
	require.NoError(t, err)
	require.Equal(t, []string{"C", "B", "A"}, res.Path)

	gv, err := render.Graph(g, &res, render.WithHighlightColor("blue"), render.WithName("route"))
	require.NoError(t, err)
	assert.Equal(t, `"route"`, gv.Name)

	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}} {
		attrs := edgeAttrs(t, gv, pair[0], pair[1])
		assert.Equal(t, `"blue"`, attrs[gographviz.Attr("color")], "%v", pair)
		assert.Equal(t, `"3"`, attrs[gographviz.Attr("penwidth")], "%v", pair)
	}
	assert.NotEqual(t, `"blue"`, edgeAttrs(t, gv, "A", "C")[gographviz.Attr("color")])

	assert.Equal(t, "doublecircle", gv.Nodes.Lookup[`"A"`].Attrs[gographviz.Attr("shape")])
	assert.Equal(t, "doublecircle", gv.Nodes.Lookup[`"C"`].Attrs[gographviz.Attr("shape")])
	assert.Equal(t, "circle", gv.Nodes.Lookup[`"B"`].Attrs[gographviz.Attr("shape")])
	assert.Equal(t, `"blue"`, gv.Nodes.Lookup[`"B"`].Attrs[gographviz.Attr("color")])
	assert.NotEqual(t, `"blue"`, gv.Nodes.Lookup[`"Z"`].Attrs[gographviz.Attr("color")])
}

func TestDOT_ParsesBack(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddEdge(`say "hi"`, "A", 4))
	res, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)

	out, err := render.DOT(g, &res)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "graph"))

	back, err := gographviz.Read([]byte(out))
	require.NoError(t, err)
	assert.Len(t, back.Nodes.Nodes, g.NodeCount())
	assert.Len(t, back.Edges.Edges, g.EdgeCount())
}

func TestDOT_Deterministic(t *testing.T) {
	g := buildTriangle(t)
	first, err := render.DOT(g, nil)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := render.DOT(g, nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
