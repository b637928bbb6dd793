package main

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/spanforest/decision"
)

const defaultCollectionFile = "precomputed-msts"

func newPrecomputeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "precompute <maxVertices> [file]",
		Short: "Build optimal decision trees for every graph up to maxVertices",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			maxVertices, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(err, "maxVertices")
			}
			path := defaultCollectionFile
			if len(args) == 2 {
				path = args[1]
			}

			a.logger.Info("precomputing decision trees", zap.Int("max_vertices", maxVertices), zap.String("file", path))
			start := time.Now()

			col, err := decision.Build(cmd.Context(), maxVertices, decision.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if err := saveCollection(path, col); err != nil {
				return err
			}

			a.logger.Info("precomputation finished",
				zap.Int("structures", col.Len()),
				zap.Duration("took", time.Since(start)))

			return nil
		},
	}
}

func saveCollection(path string, col *decision.Collection) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create collection file")
	}
	if err := decision.Save(f, col); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "save %s", path)
	}

	return errors.Wrap(f.Close(), "close collection file")
}
