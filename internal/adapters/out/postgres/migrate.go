package postgres

import (
	"context"
	"fmt"

	"fulfillment/internal/adapters/out/postgres/migrations"

	"gorm.io/gorm"
)

// Migrate applies the embedded goose migrations through the gorm connection pool.
func Migrate(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return migrations.Up(ctx, sqlDB)
}
