package store

import (
	"testing"
	"time"

	"github.com/manusware/context-manager/internal/models"
	"github.com/manusware/context-manager/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore opens an in-memory sqlite database with the full schema.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get SQL DB: %v", err)
	}
	// A single connection keeps the :memory: database alive and shared.
	sqlDB.SetMaxOpenConns(1)

	if err := repository.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return New(db, nil)
}

// mustProject creates a project or fails the test.
func mustProject(t *testing.T, s *Store, name string) *models.Project {
	t.Helper()
	project, err := s.CreateProject(CreateProjectInput{Name: name})
	if err != nil {
		t.Fatalf("CreateProject(%q) error = %v", name, err)
	}
	return project
}

// backdate rewrites a row's created_at so ordering tests are deterministic.
func backdate(t *testing.T, s *Store, model interface{}, id uint, at time.Time) {
	t.Helper()
	if err := s.db.Model(model).Where("id = ?", id).Update("created_at", at).Error; err != nil {
		t.Fatalf("failed to backdate: %v", err)
	}
}
