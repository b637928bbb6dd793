package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by all subcommands.
type app struct {
	verbose    bool
	configPath string

	level  zap.AtomicLevel
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "spanforest",
		Short: "Minimum spanning forests with five classic algorithms",
		Long: `spanforest computes the minimum spanning forest of an undirected weighted
graph with Prim, Kruskal, Borůvka, Fredman–Tarjan or Pettie–Ramachandran.

Input is read from stdin, one "from to weight" edge per line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML config file")

	root.AddCommand(newRunCmd(a), newPrecomputeCmd(a), newGenerateCmd(a), newConfigCmd(a))

	return root
}

func (a *app) initLogger() error {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if a.verbose {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	a.level = cfg.Level
	a.logger = logger

	return nil
}

// enableDebug lowers the log level after the logger has been built.
func (a *app) enableDebug() {
	a.level.SetLevel(zapcore.DebugLevel)
}
