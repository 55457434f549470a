package testutil

import (
	"testing"

	"github.com/ajitashwath/dare-exchange/database"
	"github.com/ajitashwath/dare-exchange/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB replaces database.DB with an in-memory sqlite database seeded
// with the default categories, difficulty levels and configuration row
func SetupTestDB(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := gdb.AutoMigrate(
		&models.Category{},
		&models.DifficultyLevel{},
		&models.Dare{},
		&models.DareCompletion{},
		&models.DareLike{},
		&models.SiteConfiguration{},
		&models.NewsletterSubscriber{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	database.DB = gdb
	database.Populate()

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to access underlying DB: %v", err)
	}

	t.Cleanup(func() {
		if err := sqlDB.Close(); err != nil {
			t.Fatalf("failed to close database: %v", err)
		}
		database.DB = nil
	})
}
