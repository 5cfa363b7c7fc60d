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

type MessageService interface {
	SendMessage(db *gorm.DB, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	GetInbox(db *gorm.DB, userID string) ([]*dto.MessageResponse, error)
	GetUnreadMessages(db *gorm.DB, userID string) ([]*dto.MessageResponse, error)
	ViewMessage(db *gorm.DB, messageID string) (*dto.MessageResponse, error)
	MarkAsRead(db *gorm.DB, messageID, userID string) error
	DeleteMessage(db *gorm.DB, messageID string) error
}

type messageService struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// SendMessage проверяет обоих участников и создает сообщение.
// Если хотя бы одного нет, строка не создается.
func (s *messageService) SendMessage(db *gorm.DB, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	_, senderErr := s.userRepo.FindByID(db, req.SenderUserID)
	_, recipientErr := s.userRepo.FindByID(db, req.RecipientUserID)
	for _, err := range []error{senderErr, recipientErr} {
		if err != nil {
			return nil, handleMessageError(err)
		}
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := models.ParseDate(req.Date)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid date format")
		}
		date = parsed
	}

	message := &models.Message{
		SenderUserID:    req.SenderUserID,
		RecipientUserID: req.RecipientUserID,
		Subject:         req.Subject,
		Date:            datatypes.Date(date),
		Content:         req.Content,
	}
	if err := s.messageRepo.Create(db, message); err != nil {
		return nil, handleMessageError(err)
	}

	logger.CtxInfo(db.Statement.Context, "Message sent",
		"message_id", message.ID,
		"sender_id", message.SenderUserID,
		"recipient_id", message.RecipientUserID,
	)
	return buildMessageResponse(message), nil
}

func (s *messageService) GetInbox(db *gorm.DB, userID string) ([]*dto.MessageResponse, error) {
	return s.findMessages(db, repositories.MessageQuery{RecipientID: userID})
}

func (s *messageService) GetUnreadMessages(db *gorm.DB, userID string) ([]*dto.MessageResponse, error) {
	return s.findMessages(db, repositories.MessageQuery{RecipientID: userID, UnreadOnly: true})
}

func (s *messageService) findMessages(db *gorm.DB, query repositories.MessageQuery) ([]*dto.MessageResponse, error) {
	messages, err := s.messageRepo.FindMessages(db, query)
	if err != nil {
		return nil, handleMessageError(err)
	}

	responses := make([]*dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, buildMessageResponse(&messages[i]))
	}
	return responses, nil
}

// ViewMessage не проверяет владельца
func (s *messageService) ViewMessage(db *gorm.DB, messageID string) (*dto.MessageResponse, error) {
	message, err := s.messageRepo.FindByID(db, messageID)
	if err != nil {
		return nil, handleMessageError(err)
	}
	return buildMessageResponse(message), nil
}

// MarkAsRead доступна только получателю
func (s *messageService) MarkAsRead(db *gorm.DB, messageID, userID string) error {
	message, err := s.messageRepo.FindByID(db, messageID)
	if err != nil {
		return handleMessageError(err)
	}
	if message.RecipientUserID != userID {
		return apperrors.ErrNotMessageRecipient
	}
	if message.Read {
		return nil
	}

	if err := s.messageRepo.MarkAsRead(db, messageID); err != nil {
		return handleMessageError(err)
	}
	return nil
}

// DeleteMessage не проверяет владельца
func (s *messageService) DeleteMessage(db *gorm.DB, messageID string) error {
	if _, err := s.messageRepo.FindByID(db, messageID); err != nil {
		return handleMessageError(err)
	}
	if err := s.messageRepo.Delete(db, messageID); err != nil {
		return handleMessageError(err)
	}

	logger.CtxInfo(db.Statement.Context, "Message deleted", "message_id", messageID)
	return nil
}

func buildMessageResponse(message *models.Message) *dto.MessageResponse {
	response := &dto.MessageResponse{
		ID:              message.ID,
		SenderUserID:    message.SenderUserID,
		RecipientUserID: message.RecipientUserID,
		Subject:         message.Subject,
		Date:            time.Time(message.Date).Format(models.DateLayout),
		Content:         message.Content,
		Read:            message.Read,
		CreatedAt:       message.CreatedAt,
		UpdatedAt:       message.UpdatedAt,
	}
	if message.Sender != nil {
		response.Sender = &dto.UserInfo{
			ID:    message.Sender.ID,
			Name:  message.Sender.Name,
			Email: message.Sender.Email,
		}
	}
	return response
}

func handleMessageError(err error) error {
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	if errors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.ErrSenderOrRecipientNotFound.WithError(err)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, repositories.ErrMessageNotFound) {
		return apperrors.ErrMessageNotFound.WithError(err)
	}
	return apperrors.InternalError(err)
}
