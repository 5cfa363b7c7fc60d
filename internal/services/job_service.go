package services

import (
	"errors"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultJobPageSize = 10
	maxJobPageSize     = 100
)

type JobService interface {
	CreateJob(db *gorm.DB, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetJob(db *gorm.DB, jobID string) (*dto.JobResponse, error)
	GetJobs(db *gorm.DB, query *dto.JobListQuery) (*dto.JobListResponse, error)
	UpdateJob(db *gorm.DB, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	DeleteJob(db *gorm.DB, jobID string) error
	GetAllLocations(db *gorm.DB) ([]*dto.LocationResponse, error)
}

type jobService struct {
	jobRepo      repositories.JobRepository
	savedJobRepo repositories.SavedJobRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	savedJobRepo repositories.SavedJobRepository,
) JobService {
	return &jobService{
		jobRepo:      jobRepo,
		savedJobRepo: savedJobRepo,
	}
}

func (s *jobService) CreateJob(db *gorm.DB, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	status := models.JobStatusOpen
	if req.JobStatus != "" {
		status = models.JobStatus(req.JobStatus)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidJobStatus
		}
	}

	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		LocationID:  emptyToNil(req.LocationID),
		CategoryID:  emptyToNil(req.CategoryID),
		PaymentType: req.PaymentType,
		JobStatus:   status,
	}
	if req.Deadline != "" {
		deadline, err := parseDeadline(req.Deadline)
		if err != nil {
			return nil, err
		}
		job.Deadline = &deadline
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, handleJobError(err)
	}

	logger.CtxInfo(db.Statement.Context, "Job created", "job_id", job.ID, "status", job.JobStatus)
	return buildJobResponse(job), nil
}

func (s *jobService) GetJob(db *gorm.DB, jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, handleJobError(err)
	}
	return buildJobResponse(job), nil
}

func (s *jobService) GetJobs(db *gorm.DB, query *dto.JobListQuery) (*dto.JobListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultJobPageSize
	}
	if pageSize > maxJobPageSize {
		pageSize = maxJobPageSize
	}

	jobs, total, err := s.jobRepo.FindJobs(db, repositories.JobQuery{
		Status:     models.JobStatus(query.Status),
		LocationID: query.LocationID,
		CategoryID: query.CategoryID,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		return nil, handleJobError(err)
	}

	responses := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, buildJobResponse(&jobs[i]))
	}

	return &dto.JobListResponse{
		Jobs:       responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	}, nil
}

// UpdateJob меняет только переданные поля
func (s *jobService) UpdateJob(db *gorm.DB, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.LocationID != nil {
		updates["location_id"] = emptyToNil(req.LocationID)
	}
	if req.CategoryID != nil {
		updates["category_id"] = emptyToNil(req.CategoryID)
	}
	if req.PaymentType != nil {
		updates["payment_type"] = *req.PaymentType
	}
	if req.JobStatus != nil {
		status := models.JobStatus(*req.JobStatus)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidJobStatus
		}
		updates["job_status"] = status
	}
	if req.Deadline != nil {
		if *req.Deadline == "" {
			updates["deadline"] = nil
		} else {
			deadline, err := parseDeadline(*req.Deadline)
			if err != nil {
				return nil, err
			}
			updates["deadline"] = deadline
		}
	}

	if len(updates) > 0 {
		if err := s.jobRepo.Update(db, jobID, updates); err != nil {
			return nil, handleJobError(err)
		}
		logger.CtxInfo(db.Statement.Context, "Job updated", "job_id", jobID, "fields", len(updates))
	}

	return s.GetJob(db, jobID)
}

// DeleteJob удаляет вакансию вместе с ее закладками
func (s *jobService) DeleteJob(db *gorm.DB, jobID string) error {
	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if _, err := s.jobRepo.FindByID(tx, jobID); err != nil {
		return handleJobError(err)
	}
	if err := s.savedJobRepo.DeleteByJob(tx, jobID); err != nil {
		return handleJobError(err)
	}
	if err := s.jobRepo.Delete(tx, jobID); err != nil {
		return handleJobError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(db.Statement.Context, "Job deleted", "job_id", jobID)
	return nil
}

func (s *jobService) GetAllLocations(db *gorm.DB) ([]*dto.LocationResponse, error) {
	locations, err := s.jobRepo.FindAllLocations(db)
	if err != nil {
		return nil, handleJobError(err)
	}

	responses := make([]*dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		responses = append(responses, &dto.LocationResponse{ID: l.ID, Name: l.Name})
	}
	return responses, nil
}

func buildJobResponse(job *models.Job) *dto.JobResponse {
	response := &dto.JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		LocationID:  job.LocationID,
		CategoryID:  job.CategoryID,
		PaymentType: job.PaymentType,
		JobStatus:   string(job.JobStatus),
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
	if job.Deadline != nil {
		deadline := time.Time(*job.Deadline).Format(models.DateLayout)
		response.Deadline = &deadline
	}
	if job.Location != nil {
		response.Location = &dto.LocationResponse{ID: job.Location.ID, Name: job.Location.Name}
	}
	if job.Category != nil {
		response.Category = &dto.CategoryResponse{ID: job.Category.ID, Name: job.Category.Name}
	}
	return response
}

func parseDeadline(s string) (datatypes.Date, error) {
	t, err := models.ParseDate(s)
	if err != nil {
		return datatypes.Date{}, apperrors.NewBadRequestError("Invalid deadline format")
	}
	return datatypes.Date(t), nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func handleJobError(err error) error {
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, repositories.ErrJobNotFound) {
		return apperrors.ErrJobNotFound.WithError(err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperrors.NewBadRequestError("Unknown location or category").WithError(err)
	}
	return apperrors.InternalError(err)
}
