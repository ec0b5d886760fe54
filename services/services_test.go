package services

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bruxa61/PortfolioRAFA/models"
)

// newTestDB opens an isolated in-memory database with the full schema.
// A single pooled connection keeps concurrent transactions serialized
// the way a real server relies on the datastore to do.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrapping test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrating test schema: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id string, admin bool) *models.User {
	t.Helper()

	email := id + "@example.com"
	name := "Test"
	user := &models.User{ID: id, Email: &email, FirstName: &name, IsAdmin: admin}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seeding user %s: %v", id, err)
	}
	return user
}

func seedProject(t *testing.T, db *gorm.DB, title, slugValue string) *models.Project {
	t.Helper()

	desc := "a seeded project"
	project := &models.Project{
		Title:       title,
		Description: &desc,
		Slug:        slugValue,
		IsPublished: true,
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("seeding project %s: %v", title, err)
	}
	return project
}

func countRows(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()

	var count int64
	if err := db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	return count
}

func reloadProject(t *testing.T, db *gorm.DB, id uuid.UUID) *models.Project {
	t.Helper()

	var project models.Project
	if err := db.First(&project, "id = ?", id).Error; err != nil {
		t.Fatalf("reloading project: %v", err)
	}
	return &project
}
