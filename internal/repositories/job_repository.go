package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobQuery - фильтры и пагинация списка вакансий
type JobQuery struct {
	Status     models.JobStatus
	LocationID string
	CategoryID string
	Page       int
	PageSize   int
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindJobs(db *gorm.DB, query JobQuery) ([]models.Job, int64, error)
	Update(db *gorm.DB, id string, updates map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
	FindAllLocations(db *gorm.DB) ([]models.Location, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Location").Preload("Category").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindJobs(db *gorm.DB, query JobQuery) ([]models.Job, int64, error) {
	q := db.Model(&models.Job{})
	if query.Status != "" {
		q = q.Where("job_status = ?", query.Status)
	}
	if query.LocationID != "" {
		q = q.Where("location_id = ?", query.LocationID)
	}
	if query.CategoryID != "" {
		q = q.Where("category_id = ?", query.CategoryID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 {
		query.PageSize = 10
	}
	offset := (query.Page - 1) * query.PageSize

	jobs := make([]models.Job, 0)
	err := q.Preload("Location").Preload("Category").
		Order("created_at DESC, id ASC").
		Limit(query.PageSize).
		Offset(offset).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// Update применяет только переданные поля
func (r *JobRepositoryImpl) Update(db *gorm.DB, id string, updates map[string]interface{}) error {
	result := db.Model(&models.Job{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.Job{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrJobNotFound
		}
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) FindAllLocations(db *gorm.DB) ([]models.Location, error) {
	locations := make([]models.Location, 0)
	if err := db.Order("name ASC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}
