package repositories_test

import (
	"testing"

	"petcare/internal/database"
	"petcare/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with the full schema
// migrated, so repository tests run against real SQL.
func setupTestDB(t *testing.T) database.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Pet{}, &models.ServiceRequest{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return database.DB{SQL: db}
}
