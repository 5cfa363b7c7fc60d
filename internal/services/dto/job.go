package dto

import "time"

// ======================
// Request DTOs
// ======================

// CreateJobRequest - jobStatus проверяется в сервисе, чтобы вернуть отдельную ошибку
type CreateJobRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description"`
	LocationID  *string `json:"location_id,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`
	Deadline    string  `json:"deadline" validate:"omitempty,is-date"`
	PaymentType string  `json:"paymentType" validate:"max=50"`
	JobStatus   string  `json:"jobStatus"`
}

// UpdateJobRequest - nil означает "не менять"
type UpdateJobRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	LocationID  *string `json:"location_id,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`
	Deadline    *string `json:"deadline,omitempty" validate:"omitempty,is-date"`
	PaymentType *string `json:"paymentType,omitempty" validate:"omitempty,max=50"`
	JobStatus   *string `json:"jobStatus,omitempty"`
}

type JobListQuery struct {
	Status     string `form:"status" validate:"omitempty,is-job-status"`
	LocationID string `form:"location_id"`
	CategoryID string `form:"category_id"`
	Page       int    `form:"page" validate:"omitempty,min=1"`
	PageSize   int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// ======================
// Response DTOs
// ======================

type LocationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type JobResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	LocationID  *string   `json:"location_id"`
	CategoryID  *string   `json:"category_id"`
	Deadline    *string   `json:"deadline"`
	PaymentType string    `json:"paymentType"`
	JobStatus   string    `json:"jobStatus"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Location *LocationResponse `json:"location,omitempty"`
	Category *CategoryResponse `json:"category,omitempty"`
}

type JobListResponse struct {
	Jobs       []*JobResponse `json:"jobs"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}
