package services

import (
	"errors"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SavedJobService interface {
	SaveJob(db *gorm.DB, userID, jobID string) error
	UnsaveJob(db *gorm.DB, userID, jobID string) error
	ListSavedJobs(db *gorm.DB, userID string) ([]*dto.SavedJobResponse, error)
}

type savedJobService struct {
	savedJobRepo repositories.SavedJobRepository
}

func NewSavedJobService(savedJobRepo repositories.SavedJobRepository) SavedJobService {
	return &savedJobService{
		savedJobRepo: savedJobRepo,
	}
}

// SaveJob - существование пользователя и вакансии не проверяется
func (s *savedJobService) SaveJob(db *gorm.DB, userID, jobID string) error {
	query := repositories.SavedJobQuery{UserID: userID, JobID: jobID}
	exists, err := s.savedJobRepo.Exists(db, query)
	if err != nil {
		return handleSavedJobError(err)
	}
	if exists {
		return apperrors.ErrJobAlreadySaved
	}

	savedJob := &models.SavedJob{UserID: userID, JobID: jobID}
	if err := s.savedJobRepo.Create(db, savedJob); err != nil {
		return handleSavedJobError(err)
	}

	logger.CtxInfo(db.Statement.Context, "Job saved", "user_id", userID, "job_id", jobID)
	return nil
}

// UnsaveJob успешна, даже если удалять было нечего
func (s *savedJobService) UnsaveJob(db *gorm.DB, userID, jobID string) error {
	deleted, err := s.savedJobRepo.Delete(db, repositories.SavedJobQuery{UserID: userID, JobID: jobID})
	if err != nil {
		return handleSavedJobError(err)
	}

	logger.CtxDebug(db.Statement.Context, "Job unsaved", "user_id", userID, "job_id", jobID, "deleted", deleted)
	return nil
}

func (s *savedJobService) ListSavedJobs(db *gorm.DB, userID string) ([]*dto.SavedJobResponse, error) {
	savedJobs, err := s.savedJobRepo.FindByUser(db, userID)
	if err != nil {
		return nil, handleSavedJobError(err)
	}

	responses := make([]*dto.SavedJobResponse, 0, len(savedJobs))
	for i := range savedJobs {
		sj := &savedJobs[i]
		response := &dto.SavedJobResponse{
			ID:        sj.ID,
			UserID:    sj.UserID,
			JobID:     sj.JobID,
			CreatedAt: sj.CreatedAt,
		}
		if sj.Job != nil {
			response.Job = buildJobResponse(sj.Job)
		}
		responses = append(responses, response)
	}
	return responses, nil
}

func handleSavedJobError(err error) error {
	if errors.Is(err, repositories.ErrSavedJobExists) {
		return apperrors.ErrJobAlreadySaved.WithError(err)
	}
	return apperrors.InternalError(err)
}
