package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	HealthHandler   *HealthHandler
	MessageHandler  *MessageHandler
	SavedJobHandler *SavedJobHandler
	JobHandler      *JobHandler
}
