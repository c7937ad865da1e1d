package database

import (
	"context"
	"fmt"

	"github.com/jaba-landing/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists the signup tables managed by migrate
func Models() []interface{} {
	return []interface{}{
		&models.FarmerRegistration{},
		&models.BuyerRegistration{},
		&models.ConsumerRegistration{},
	}
}

// Migrate migrates the signup tables. Production deployments on a hosted
// store usually own the schema already; this is for self-hosted Postgres.
func Migrate(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	log.Info("Migrating signup tables")
	if err := db.WithContext(ctx).Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		return fmt.Errorf("failed to enable pgcrypto: %w", err)
	}
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate signup tables: %w", err)
	}
	log.Info("Signup tables migrated", zap.Int("tables", len(Models())))
	return nil
}
