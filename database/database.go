package database

import (
	"fmt"

	"github.com/yeremiapane/restaurant-dashboard/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryDSN keeps the journal in process memory only.
const MemoryDSN = "file::memory:"

// OpenJournal opens the SQLite database backing the change journal and
// migrates its schema.
func OpenJournal(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	// a single connection keeps one shared in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("journal pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Change{}); err != nil {
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return db, nil
}
