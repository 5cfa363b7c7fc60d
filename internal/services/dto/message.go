package dto

import "time"

// ======================
// Request DTOs
// ======================

type SendMessageRequest struct {
	SenderUserID    string `json:"senderUserId" validate:"required"`
	RecipientUserID string `json:"recipientUserId" validate:"required"`
	Subject         string `json:"subject" validate:"max=255"`
	// Пустая дата заменяется текущей
	Date    string `json:"date" validate:"omitempty,is-date"`
	Content string `json:"content"`
}

// ======================
// Response DTOs
// ======================

type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MessageResponse struct {
	ID              string    `json:"id"`
	SenderUserID    string    `json:"senderUserId"`
	RecipientUserID string    `json:"recipientUserId"`
	Subject         string    `json:"subject"`
	Date            string    `json:"date"`
	Content         string    `json:"content"`
	Read            bool      `json:"read"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	Sender *UserInfo `json:"sender,omitempty"`
}
