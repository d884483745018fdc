package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"society-cms/app/server/inits"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := inits.Config()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if cfg.System.DBConnectionString == "" {
			return fmt.Errorf("DATABASE_URL environment variable not set")
		}

		// DB 会在连接后执行迁移
		db, err := inits.DB(cfg.System.DBConnectionString)
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		fmt.Fprintln(cmd.OutOrStdout(), "database migrated")
		return nil
	},
}
