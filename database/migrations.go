package database

import (
	"log"

	"taskwise/taskwise/models"

	"gorm.io/gorm"
)

// RunMigrations creates or updates the tasks table to match the model.
func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Task{},
	)

	if err != nil {
		log.Printf("Migration failed: %v", err)
		return err
	}

	return nil
}
