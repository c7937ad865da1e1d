package main

import (
	"github.com/jaba-landing/config"
	"github.com/jaba-landing/database"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates the signup tables
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the farmers, buyers and consumers tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbURL, err := migrationURL()
		if err != nil {
			return err
		}

		db, err := database.Open(cmd.Context(), dbURL, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				logger.Warn("Failed to close database", zap.Error(err))
			}
		}()

		return database.Migrate(cmd.Context(), db, logger)
	},
}

// migrationURL resolves the database the same way serve does
func migrationURL() (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.DatabaseURL, nil
}
