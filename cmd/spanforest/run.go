package main

import (
	"os"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/spanforest/decision"
	"github.com/katalvlaran/spanforest/internal/config"
	"github.com/katalvlaran/spanforest/mst"
)

// runFlags mirrors the config keys that can be overridden per invocation.
type runFlags struct {
	precomputed      string
	errorRate        float64
	partitionSize    int
	requireConnected bool
}

func (f *runFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.precomputed, "precomputed", "p", "", "Collection written by the precompute command")
	fs.Float64Var(&f.errorRate, "error-rate", mst.DefaultErrorRate, "Soft heap error rate for pr, in (0, 1)")
	fs.IntVar(&f.partitionSize, "partition-size", 0, "Partition size for pr (0 = automatic)")
	fs.BoolVar(&f.requireConnected, "require-connected", false, "Fail when the input graph is disconnected")
}

// apply copies explicitly set flags over cfg.
func (f *runFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("precomputed") {
		cfg.Precomputed = f.precomputed
	}
	if fs.Changed("error-rate") {
		cfg.ErrorRate = f.errorRate
	}
	if fs.Changed("partition-size") {
		cfg.PartitionSize = f.partitionSize
	}
	if fs.Changed("require-connected") {
		cfg.RequireConnected = f.requireConnected
	}
}

func newRunCmd(a *app) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run [algorithm...] [log]",
		Short: "Compute the minimum spanning forest of the graph on stdin",
		Long: `Reads "from to weight" lines from stdin and runs each named algorithm
(prim, kruskal, boruvka, ft, pr) in turn. The extra argument "log" enables
debug logging. Without algorithms the configured ones run (pr by default).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			flags.apply(cmd.Flags(), cfg)

			algorithms := slices.DeleteFunc(slices.Clone(args), func(s string) bool { return s == "log" })
			if len(algorithms) != len(args) {
				cfg.Log = true
			}
			if len(algorithms) > 0 {
				cfg.Algorithms = algorithms
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Log {
				a.enableDebug()
			}

			return a.run(cmd, cfg)
		},
	}
	flags.register(cmd.Flags())

	return cmd
}

func (a *app) run(cmd *cobra.Command, cfg *config.Config) error {
	vertices, edges, err := readEdges(cmd.InOrStdin())
	if err != nil {
		return errors.Wrap(err, "parse input")
	}
	a.logger.Debug("graph read", zap.Int("vertices", vertices), zap.Int("edges", len(edges)))

	cache := decision.NewCache(decision.WithLogger(a.logger))
	if cfg.Precomputed != "" {
		col, err := loadCollection(cfg.Precomputed)
		if err != nil {
			return err
		}
		cache.Seed(col)
		a.logger.Debug("collection loaded", zap.String("path", cfg.Precomputed), zap.Int("max_vertices", col.MaxVertices()))
	}

	opts := append(cfg.Options(),
		mst.WithCache(cache),
		mst.WithLogger(a.logger),
		mst.WithContext(cmd.Context()),
	)
	for _, name := range cfg.Algorithms {
		fn, err := mst.Lookup[float64](name)
		if err != nil {
			return err
		}

		start := time.Now()
		forest, err := fn(vertices, edges, opts...)
		if err != nil {
			return errors.Wrapf(err, "run %s", name)
		}
		if err := writeForest(cmd.OutOrStdout(), forest, time.Since(start)); err != nil {
			return errors.Wrap(err, "write result")
		}
	}

	return nil
}

func loadCollection(path string) (*decision.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open precomputed collection")
	}
	defer f.Close()

	col, err := decision.Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	return col, nil
}
