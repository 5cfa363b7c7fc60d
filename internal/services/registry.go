package services

import "jobboard_backend/internal/repositories"

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	MessageService  MessageService
	SavedJobService SavedJobService
	JobService      JobService
}

// NewServiceContainer собирает сервисы поверх репозиториев без состояния
func NewServiceContainer() *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	messageRepo := repositories.NewMessageRepository()
	savedJobRepo := repositories.NewSavedJobRepository()
	jobRepo := repositories.NewJobRepository()

	return &ServiceContainer{
		MessageService:  NewMessageService(messageRepo, userRepo),
		SavedJobService: NewSavedJobService(savedJobRepo),
		JobService:      NewJobService(jobRepo, savedJobRepo),
	}
}
