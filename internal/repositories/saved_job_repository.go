package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSavedJobExists = errors.New("job already saved")

// SavedJobQuery - пустые поля не участвуют в фильтре
type SavedJobQuery struct {
	UserID string
	JobID  string
}

type SavedJobRepository interface {
	Exists(db *gorm.DB, query SavedJobQuery) (bool, error)
	Create(db *gorm.DB, savedJob *models.SavedJob) error
	Delete(db *gorm.DB, query SavedJobQuery) (int64, error)
	FindByUser(db *gorm.DB, userID string) ([]models.SavedJob, error)
	DeleteByJob(db *gorm.DB, jobID string) error
}

type SavedJobRepositoryImpl struct{}

func NewSavedJobRepository() SavedJobRepository {
	return &SavedJobRepositoryImpl{}
}

func applySavedJobQuery(db *gorm.DB, query SavedJobQuery) *gorm.DB {
	if query.UserID != "" {
		db = db.Where("user_id = ?", query.UserID)
	}
	if query.JobID != "" {
		db = db.Where("job_id = ?", query.JobID)
	}
	return db
}

func (r *SavedJobRepositoryImpl) Exists(db *gorm.DB, query SavedJobQuery) (bool, error) {
	var count int64
	err := applySavedJobQuery(db.Model(&models.SavedJob{}), query).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create полагается на уникальный индекс (user_id, job_id) при гонке двух сохранений
func (r *SavedJobRepositoryImpl) Create(db *gorm.DB, savedJob *models.SavedJob) error {
	if err := db.Create(savedJob).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSavedJobExists
		}
		return err
	}
	return nil
}

// Delete возвращает число удаленных строк; ноль не ошибка
func (r *SavedJobRepositoryImpl) Delete(db *gorm.DB, query SavedJobQuery) (int64, error) {
	if query.UserID == "" && query.JobID == "" {
		return 0, errors.New("saved job query must not be empty")
	}
	result := applySavedJobQuery(db, query).Delete(&models.SavedJob{})
	return result.RowsAffected, result.Error
}

func (r *SavedJobRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.SavedJob, error) {
	savedJobs := make([]models.SavedJob, 0)
	err := db.Preload("Job").
		Where("user_id = ?", userID).
		Order("created_at DESC, id ASC").
		Find(&savedJobs).Error
	if err != nil {
		return nil, err
	}
	return savedJobs, nil
}

func (r *SavedJobRepositoryImpl) DeleteByJob(db *gorm.DB, jobID string) error {
	return db.Where("job_id = ?", jobID).Delete(&models.SavedJob{}).Error
}
