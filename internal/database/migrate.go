package database

import (
	"refspot_backend/internal/logger"
	"refspot_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates/updates all tables.
func Migrate(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.UserSkill{},
		&models.Experience{},
		&models.Education{},
		&models.Connection{},
		&models.Message{},
		&models.ReferralRequest{},
		&models.JobReferral{},
		&models.JobPosting{},
	)
	if err != nil {
		return err
	}

	logger.Info("Database migrations completed")
	return nil
}
