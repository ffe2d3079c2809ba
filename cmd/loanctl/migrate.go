package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bridge-lending-backend/internal/infrastructure/db"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the board tables on MySQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("config: %w", err)
			}
			gdb, err := db.OpenGorm(a.cfg.MySQLDSN(), a.log)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			if sqlDB, err := gdb.DB(); err == nil {
				defer sqlDB.Close()
			}
			if err := db.Migrate(gdb); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "kanban_columns is up to date")
			return nil
		},
	}
}
