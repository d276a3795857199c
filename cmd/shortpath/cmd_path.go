package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graphio"
	"github.com/katalvlaran/shortpath/render"
)

type pathFlags struct {
	from        string
	to          string
	maxDistance int64
	wallAt      int64
	dotFile     string
}

func newPathCmd(a *app) *cobra.Command {
	var f pathFlags

	cmd := &cobra.Command{
		Use:   "path FILE",
		Short: "Print the minimum-weight path between two nodes",
		Long: `Print the minimum-weight path between --from and --to and its total weight.

Exit codes:
  0  path found
  1  invalid input or usage
  2  no path (missing node or disconnected)

Examples:
  shortpath path roads.txt --from A --to F
  shortpath path roads.mtx --from A --to F --max-distance 100
  shortpath path roads.yaml --from A --to F --dot route.dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPath(args[0], f)
		},
	}
	cmd.Flags().StringVar(&f.from, "from", "", "start node (required)")
	cmd.Flags().StringVar(&f.to, "to", "", "end node (required)")
	cmd.Flags().Int64Var(&f.maxDistance, "max-distance", -1, "ignore routes longer than this (-1 = no cap)")
	cmd.Flags().Int64Var(&f.wallAt, "wall-at", 0, "treat edges with weight >= this as impassable (0 = none)")
	cmd.Flags().StringVar(&f.dotFile, "dot", "", "also write the graph with the path highlighted as Graphviz DOT")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (a *app) runPath(file string, f pathFlags) error {
	if f.maxDistance < -1 {
		return fmt.Errorf("--max-distance must be >= 0 or -1, got %d", f.maxDistance)
	}
	if f.wallAt < 0 {
		return fmt.Errorf("--wall-at must be >= 0, got %d", f.wallAt)
	}

	g, err := a.load(file)
	if err != nil {
		return err
	}

	var opts []dijkstra.Option
	if f.maxDistance >= 0 {
		opts = append(opts, dijkstra.WithMaxDistance(f.maxDistance))
	}
	if f.wallAt > 0 {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(f.wallAt))
	}

	started := time.Now()
	res, err := dijkstra.ShortestPath(g, f.from, f.to, opts...)
	a.log.Debug("search finished", "from", f.from, "to", f.to, "elapsed", time.Since(started), "error", err)
	switch {
	case errors.Is(err, dijkstra.ErrNotFound):
		fmt.Fprintf(a.stdout, "no path from %s to %s\n", f.from, f.to)
		a.log.Info("no path", "reason", err)
		return fmt.Errorf("%w: %v", errNoPath, err)
	case err != nil:
		return err
	}

	fmt.Fprintf(a.stdout, "path: %s\n", strings.Join(res.Path, " -> "))
	fmt.Fprintf(a.stdout, "distance: %d\n", res.Distance)

	if f.dotFile != "" {
		out, err := render.DOT(g, &res)
		if err != nil {
			return err
		}
		if err = os.WriteFile(f.dotFile, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write dot: %w", err)
		}
		a.log.Debug("dot written", "file", f.dotFile, "bytes", len(out))
	}

	return nil
}

// load reads and parses file, choosing the format from --format or the extension.
func (a *app) load(file string) (core.Graph, error) {
	format := graphio.FormatFromPath(file)
	if a.format != "" {
		var err error
		if format, err = graphio.ParseFormat(a.format); err != nil {
			return nil, err
		}
	}

	fh, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	g, err := graphio.Parse(format, fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	a.log.Debug("graph loaded", "file", file, "format", format, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return g, nil
}
