package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/finsight/internal/config"
	logpkg "github.com/kailas-cloud/finsight/internal/logger"
	"github.com/kailas-cloud/finsight/internal/metrics"
	"github.com/kailas-cloud/finsight/internal/version"
)

// appKey stores the loaded app in the command context.
type appKey struct{}

// app carries what every subcommand needs.
type app struct {
	cfg    config.Config
	logger *zap.Logger
}

func appFrom(cmd *cobra.Command) *app {
	a, _ := cmd.Context().Value(appKey{}).(*app)
	return a
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		env     string
	)

	root := &cobra.Command{
		Use:   "finsightctl",
		Short: "Manage finsight company data",
		Long: `finsightctl applies the database schema, fetches company profiles from the
upstream API, derives analysis rows from them and copies documents between stores.

Configuration is read from config/<ENV>.yaml unless --config is given.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			if env == "" {
				env = config.GetEnv()
			}

			var (
				cfg config.Config
				err error
			)
			if cfgFile != "" {
				cfg, err = config.LoadFile(cfgFile)
			} else {
				cfg, err = config.Load(env)
			}
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			metrics.RegisterDomainMetrics()

			ctx := context.WithValue(cmd.Context(), appKey{}, &app{cfg: cfg, logger: logger})
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a := appFrom(cmd); a != nil {
				_ = a.logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(fmt.Sprintf("{{.Name}} {{.Version}} (%s)\n", version.Commit))
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: config/<ENV>.yaml)")
	root.PersistentFlags().StringVar(&env, "env", "", "environment name: local, dev, docker, prod (default: $ENV or local)")

	root.AddCommand(
		newMigrateCmd(),
		newFetchCmd(),
		newAnalyzeCmd(),
		newSyncCmd(),
	)
	return root
}
