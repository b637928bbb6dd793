package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/spanforest/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "config <file> [algorithm...]",
		Short: "Write the effective run configuration to a YAML file",
		Long: `Loads --config (or the defaults), applies SPANFOREST_* variables, the
given algorithms and run flags, validates the result and saves it to file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			flags.apply(cmd.Flags(), cfg)
			if len(args) > 1 {
				cfg.Algorithms = args[1:]
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.Save(args[0]); err != nil {
				return errors.Wrapf(err, "write %s", args[0])
			}
			a.logger.Info("configuration written", zap.String("file", args[0]), zap.Strings("algorithms", cfg.Algorithms))

			return nil
		},
	}
	flags.register(cmd.Flags())

	return cmd
}
