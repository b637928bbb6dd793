package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spanforest/builder"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		vertices    int
		probability float64
		seed        int64
		connected   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random graph with distinct integer weights",
		Long: `Keeps every vertex pair with the given probability and assigns the kept
edges a shuffled permutation of 1..E as weights. The output can be piped
into the run command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			cons := builder.RandomSparse(vertices, probability)
			if connected {
				expected := int(probability * float64(vertices) * float64(vertices-1) / 2)
				cons = builder.RandomConnected(vertices, max(0, expected-(vertices-1)))
			}

			g, err := builder.BuildGraph(
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithDistinctWeights()},
				cons,
			)
			if err != nil {
				return errors.Wrap(err, "generate")
			}
			a.logger.Sugar().Debugf("generated %d vertices, %d edges (seed %d)", g.Vertices, len(g.Edges), seed)

			return writeEdges(cmd.OutOrStdout(), g.Edges)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&vertices, "vertices", "n", 100, "Number of vertices")
	fs.Float64VarP(&probability, "probability", "p", 0.1, "Edge probability in [0, 1]")
	fs.Int64Var(&seed, "seed", 0, "Random seed (default: current time)")
	fs.BoolVar(&connected, "connected", false, "Guarantee a connected graph with about the same edge count")

	return cmd
}
