package database

import (
	"recipefinder/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("running database migrations")

	err := db.AutoMigrate(
		&models.User{},
		&models.Verification{},
		&models.Favourite{},
	)
	if err != nil {
		log.Error("database migration failed", zap.Error(err))
		return err
	}

	log.Info("database migrations completed")
	return nil
}
