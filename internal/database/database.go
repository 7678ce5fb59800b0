package database

import (
	"fmt"

	"petwork_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres pool. TranslateError turns driver
// duplicate-key failures into gorm.ErrDuplicatedKey, which the
// repositories rely on.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 backs the primary key defaults.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("create uuid extension: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Location{},
		&models.Pet{},
		&models.Job{},
		&models.Application{},
	)
}
