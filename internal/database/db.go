package database

import (
	"fmt"
	"log"
	"os"

	"github.com/jobpilot/jobpilot/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs migrations. Connection
// parameters come from the environment (godotenv loads .env in main).
func Connect() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "postgres"),
		envOr("DB_PASSWORD", "password"),
		envOr("DB_NAME", "jobpilot"),
		envOr("DB_PORT", "5432"),
		envOr("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connection established")

	log.Println("Running Migrations...")
	if err := db.AutoMigrate(
		&models.Company{},
		&models.Application{},
		&models.StatusEvent{},
		&models.Sprint{},
		&models.User{},
		&models.ProcessedEvent{},
	); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
