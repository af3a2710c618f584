package db

import (
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"nexacart/models"
)

var DB *gorm.DB

func InitDatabase() {
	var err error
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "database.db"
	}

	// Ensure the directory exists (create if it doesn't)
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal("Failed to create database directory:", err)
		}
	}

	// Open the database (the driver creates the file when missing)
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connected successfully at", dbPath)

	// Auto migrate the schema
	if err := DB.AutoMigrate(
		&models.Category{}, &models.Article{}, &models.Admin{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := Seed(DB); err != nil {
		log.Fatal("Failed to seed database:", err)
	}
}
