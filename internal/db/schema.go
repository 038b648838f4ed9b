package db

import (
	"context"
	"fmt"

	"github.com/deepakbishnoi717/atm/internal/models"
)

// tables lists every persisted model in creation order.
var tables = []any{
	&models.Account{},
	&models.Transaction{},
	&models.IdempotencyKey{},
}

// Migrate creates missing tables, columns and indexes. Existing data is kept.
func (db *DB) Migrate(ctx context.Context) error {
	if err := db.WithContext(ctx).AutoMigrate(tables...); err != nil {
		db.logger.Error("schema migration failed", "error", err)
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	db.logger.Info("schema up to date", "tables", len(tables))
	return nil
}

// Reset drops every table and recreates it empty. There is no migration
// history: this is the only way to apply model changes that AutoMigrate
// cannot express.
func (db *DB) Reset(ctx context.Context) error {
	db.logger.Warn("dropping all tables")

	migrator := db.WithContext(ctx).Migrator()
	for i := len(tables) - 1; i >= 0; i-- {
		if err := migrator.DropTable(tables[i]); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}

	return db.Migrate(ctx)
}
