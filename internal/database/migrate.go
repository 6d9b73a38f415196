package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/KohanaIshitsuka/recipe-atelier/internal/models"
)

// RunMigrations brings the schema up to date. The schema is two tables, so
// GORM auto-migration is sufficient on every dialect.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
