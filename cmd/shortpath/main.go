// Command shortpath reads a weighted, undirected graph from a file and prints
// the minimum-weight path between two nodes.
//
//	shortpath path roads.txt --from A --to F
//	shortpath path roads.yaml --from A --to F --dot route.dot
//	shortpath convert roads.txt --to-format matrix
//	shortpath generate --kind grid --rows 20 --cols 20
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// errNoPath marks the "no path" outcome so main can map it to exit code 2.
var errNoPath = errors.New("no path")

const (
	exitOK     = 0
	exitError  = 1
	exitNoPath = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errNoPath):
		return exitNoPath
	default:
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}
}

// app carries state shared by every subcommand.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
	format  string
	log     *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "shortpath",
		Short: "Minimum-weight paths in weighted, undirected graphs",
		Long: `shortpath loads a graph in adjacency-list, adjacency-matrix or YAML notation
and answers shortest-path queries over it.

Formats (--format, default: guessed from the file extension):
  list    A: B=1, C=4          (.txt and anything else)
  matrix  header row + rows    (.matrix, .mtx)
  yaml    nodes/edges document (.yaml, .yml)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log parsing and search details to stderr")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", "input format: list, matrix or yaml")

	root.AddCommand(newPathCmd(a), newConvertCmd(a), newGenerateCmd(a))

	return root
}
