package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bridge-lending-backend/internal/config"
	"bridge-lending-backend/internal/infrastructure/logger"
)

type app struct {
	envFile  string
	logLevel string
	cfg      *config.Config
	log      *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "loanctl",
		Short:         "Bridge loan pricing and board maintenance",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cfg = config.LoadFile(a.envFile)
			level := a.cfg.LogLevel
			if a.logLevel != "" {
				level = a.logLevel
			}
			var err error
			a.log, err = logger.New(level, "console")
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "overrides LOG_LEVEL (debug, info, warn or error)")

	root.AddCommand(newQuoteCmd(a), newMigrateCmd(a))
	return root
}
