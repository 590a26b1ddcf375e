package main

import (
	"fmt"
	"log/slog"

	"github.com/sabbir-mahmud/expense-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func initDB(cfg Config) (*gorm.DB, error) {
	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DB_DSN is not set; a Postgres DSN is required")
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if cfg.AutoMigrate {
		migrateModels(db)
	}
	return db, nil
}

// migrateModels runs AutoMigrate per model so a failure on one doesn't block
// the others. Permission errors are logged and ignored.
func migrateModels(db *gorm.DB) {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		slog.Warn("migration warning (users)", "error", err)
	}
	if err := db.AutoMigrate(&models.Expense{}); err != nil {
		slog.Warn("migration warning (expenses)", "error", err)
	}
}
