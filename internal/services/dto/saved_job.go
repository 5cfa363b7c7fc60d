package dto

import "time"

type SavedJobResponse struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	JobID     string       `json:"jobId"`
	CreatedAt time.Time    `json:"createdAt"`
	Job       *JobResponse `json:"job,omitempty"`
}

// MessageOnlyResponse - ответ без данных, только текст
type MessageOnlyResponse struct {
	Message string `json:"message"`
}
