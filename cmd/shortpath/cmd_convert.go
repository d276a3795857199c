package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortpath/graphio"
)

func newConvertCmd(a *app) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Rewrite a graph file in another notation",
		Long: `Read FILE and print it in the notation chosen by --to-format.

The matrix notation uses 0 for "no edge", so graphs with zero-weight edges
can only be written as list or yaml.

Examples:
  shortpath convert roads.txt --to-format yaml
  shortpath convert roads.yaml --to-format matrix > roads.mtx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := graphio.ParseFormat(target)
			if err != nil {
				return err
			}
			g, err := a.load(args[0])
			if err != nil {
				return err
			}

			return graphio.Write(out, a.stdout, g)
		},
	}
	cmd.Flags().StringVar(&target, "to-format", string(graphio.FormatList), "output format: list, matrix or yaml")

	return cmd
}
