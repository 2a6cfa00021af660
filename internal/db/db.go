package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/onboardhq/onboardpath/internal/models"
)

// Store wraps the sqlite database. It is injected into the progress engine
// and submission workflow rather than held as a package global.
type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite database at path, creating the directory and
// schema as needed, and seeds the default catalog on first use.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &Store{db: gdb}

	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := store.SeedCatalog(); err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	return store, nil
}

// migrate creates/updates the database schema.
func (s *Store) migrate() error {
	return s.db.AutoMigrate(
		&models.TaskDefinition{},
		&models.Employee{},
		&models.TaskCompletion{},
		&models.Submission{},
		&models.Attachment{},
		&models.Ticket{},
	)
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
