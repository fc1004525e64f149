package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"arena.backend/internal/config"
)

var (
	gormOpen = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	}
	dbPing = func(db *gorm.DB) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}
)

// NewConnection opens a gorm handle against postgres and verifies it.
func NewConnection(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gormOpen(cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := dbPing(db); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
