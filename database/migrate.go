package database

import (
	"workhive_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates all tables, indexes and constraints.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.SavedJob{},
		&models.Review{},
		&models.Notification{},
	)
}
