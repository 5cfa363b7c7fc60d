package apperrors

import "net/http"

// =========================================================================
// Предопределенные доменные ошибки
// =========================================================================

// --- Сообщения ---

var ErrMessageNotFound = New(CodeNotFound, "message", "Message not found", http.StatusNotFound)

// ErrSenderOrRecipientNotFound - один из участников переписки не существует
var ErrSenderOrRecipientNotFound = New(CodeNotFound, "message", "Sender or recipient user not found", http.StatusNotFound)

// ErrNotMessageRecipient - отметить прочитанным может только получатель
var ErrNotMessageRecipient = NewForbiddenError("message", "Access denied")

// --- Сохраненные вакансии ---

// ErrJobAlreadySaved отдается как 400, так клиенты получали его всегда
var ErrJobAlreadySaved = New(CodeConflict, "saved_job", "Job already saved", http.StatusBadRequest)

// --- Вакансии ---

var (
	ErrJobNotFound      = New(CodeNotFound, "job", "Job not found", http.StatusNotFound)
	ErrInvalidJobStatus = New(CodeInvalidStatus, "job", "Invalid jobStatus value", http.StatusBadRequest)
)
