package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"versiontag/internal/config"
	"versiontag/internal/logger"
	"versiontag/internal/stress"
)

type app struct {
	cfgPath  string
	logLevel string
	logEnv   string

	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:               "versiontag",
		Short:             "Exercise the process-wide version tag clock",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logEnv, "log-env", "", "log format: dev or prod")

	root.AddCommand(a.stressCmd(), a.demoCmd())
	return root
}

// setup loads the config file, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-env") {
		cfg.Log.Env = a.logEnv
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Logger())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	return nil
}

func (a *app) stressCmd() *cobra.Command {
	var workers, perWorker int

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Mint tags from many goroutines and check they are all distinct",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("workers") {
				a.cfg.Workers = workers
			}
			if cmd.Flags().Changed("per-worker") {
				a.cfg.PerWorker = perWorker
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			a.log.Debug("stress run starting",
				zap.Int("workers", a.cfg.Workers),
				zap.Int("per_worker", a.cfg.PerWorker))

			res, err := stress.Run(cmd.Context(), a.cfg.Workers, a.cfg.PerWorker)
			if err != nil {
				a.log.Error("stress run failed", zap.Error(err))
				return err
			}

			a.log.Info("stress run passed",
				zap.Int("workers", res.Workers),
				zap.Int("minted", res.Total()),
				zap.Int("distinct", res.Distinct),
				zap.Stringer("newest", res.Newest),
				zap.Duration("elapsed", res.Elapsed),
				zap.Float64("per_second", res.PerSecond()))
			fmt.Fprintf(cmd.OutOrStdout(), "%d tags minted by %d workers, %d distinct\n",
				res.Total(), res.Workers, res.Distinct)
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "number of goroutines (default GOMAXPROCS)")
	cmd.Flags().IntVar(&perWorker, "per-worker", 0, fmt.Sprintf("tags minted per goroutine (default %d)", config.DefaultPerWorker))
	return cmd
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through producers, a consumer and invalidation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.Context(), a.log, cmd.OutOrStdout())
		},
	}
}
