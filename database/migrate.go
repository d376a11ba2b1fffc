package database

import (
	"editorial/internal/models"
	"editorial/internal/storage"
	"log"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.Author{},
		&models.Censor{},
		&models.Journal{},
		&models.Category{},
		&models.Article{},
		&models.Attachment{},
		&storage.Blob{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
