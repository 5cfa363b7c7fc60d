// Package testutil - общие хелперы для тестов на SQLite в памяти.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"jobboard_backend/database"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var seq atomic.Int64

// NewDB открывает отдельную базу в памяти и мигрирует схему.
// База закрывается по окончании теста.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	logger.Init(config.EnvTest)

	cfg := config.Default()
	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("Не удалось открыть тестовую БД: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Не удалось выполнить AutoMigrate для тестовой БД: %v", err)
	}
	return db
}

// CreateUser создает пользователя с уникальным email
func CreateUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := &models.User{
		Name:  name,
		Email: fmt.Sprintf("user_%d@jobboard.test", seq.Add(1)),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Не удалось создать пользователя %s: %v", name, err)
	}
	return user
}

// CreateJob создает открытую вакансию
func CreateJob(t *testing.T, db *gorm.DB, title string) *models.Job {
	t.Helper()

	job := &models.Job{
		Title:       title,
		Description: "Test description",
		PaymentType: "Hourly",
		JobStatus:   models.JobStatusOpen,
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("Не удалось создать вакансию %s: %v", title, err)
	}
	return job
}

// CreateLocation создает локацию
func CreateLocation(t *testing.T, db *gorm.DB, name string) *models.Location {
	t.Helper()

	location := &models.Location{Name: name}
	if err := db.Create(location).Error; err != nil {
		t.Fatalf("Не удалось создать локацию %s: %v", name, err)
	}
	return location
}

// Count возвращает число строк модели
func Count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("Не удалось посчитать строки: %v", err)
	}
	return n
}
