// database/migrate.go - Database Migration Runner
package database

import (
	"fmt"

	"devotional/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all application models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Devotional{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	createIndexes(db)

	return nil
}

func createIndexes(db *gorm.DB) {
	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)")

	// Devotional indexes: active-row lookups filter on deleted_at, the
	// listing orders newest first
	db.Exec("CREATE INDEX IF NOT EXISTS idx_devotionals_deleted ON devotionals(deleted_at)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_devotionals_created ON devotionals(created_at DESC)")
}
