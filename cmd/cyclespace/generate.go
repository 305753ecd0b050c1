package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cyclespace/config"
	"github.com/katalvlaran/cyclespace/matrix"
	"github.com/katalvlaran/cyclespace/pipeline"
	"github.com/katalvlaran/cyclespace/render"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	res, err := pipeline.Run(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch cfg.Output.Format {
	case config.FormatYAML:
		return render.WriteYAML(out, newReport(res))
	case config.FormatJSON:
		return render.WriteJSON(out, newReport(res))
	default:
		return writeText(out, res)
	}
}

func newReport(res *pipeline.Result) *render.Report {
	r := render.NewReport(res.RunID, res.Seed, res.Graph, res.Basis, res.Cycles, cfg.Output.Walks)
	r.Truncated = res.Truncated

	return r
}

// writeText prints the seed, the adjacency table, the fundamental basis and
// the full cycle list.
func writeText(w io.Writer, res *pipeline.Result) error {
	fmt.Fprintf(w, "Seed: %d\n", res.Seed)

	if cfg.Output.Matrix {
		adj, err := matrix.NewAdjacencyMatrix(res.Graph)
		if err != nil {
			return err
		}
		if err = adj.Format(w); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "\nFundamental cycles:")
	if err := render.Cycles(w, res.Basis); err != nil {
		return err
	}

	all := make([][]int, 0, len(res.Cycles))
	for _, c := range res.Cycles {
		nodes := c.Nodes
		if cfg.Output.Walks && !c.Basis {
			if walk, err := render.ClosedWalk(res.Graph, c.Nodes); err == nil {
				nodes = walk
			}
		}
		all = append(all, nodes)
	}

	fmt.Fprintln(w, "\nAll cycles:")
	if err := render.Cycles(w, all); err != nil {
		return err
	}
	if res.Truncated {
		fmt.Fprintf(w, "(stopped at %d cycles)\n", cfg.Enumerate.MaxCycles)
	}

	return nil
}
