package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMessageNotFound   = errors.New("message not found")
	ErrRecipientRequired = errors.New("message query requires a recipient")
)

// MessageQuery - фильтр выборки сообщений
type MessageQuery struct {
	RecipientID string
	UnreadOnly  bool
}

type MessageRepository interface {
	Create(db *gorm.DB, message *models.Message) error
	FindByID(db *gorm.DB, id string) (*models.Message, error)
	FindMessages(db *gorm.DB, query MessageQuery) ([]models.Message, error)
	MarkAsRead(db *gorm.DB, id string) error
	Delete(db *gorm.DB, id string) error
}

type MessageRepositoryImpl struct{}

func NewMessageRepository() MessageRepository {
	return &MessageRepositoryImpl{}
}

func (r *MessageRepositoryImpl) Create(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Message, error) {
	var message models.Message
	if err := db.First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

// FindMessages возвращает сообщения получателя вместе с отправителем
func (r *MessageRepositoryImpl) FindMessages(db *gorm.DB, query MessageQuery) ([]models.Message, error) {
	if query.RecipientID == "" {
		return nil, ErrRecipientRequired
	}

	q := db.Model(&models.Message{}).Preload("Sender").Where("recipient_user_id = ?", query.RecipientID)
	if query.UnreadOnly {
		q = q.Where("is_read = ?", false)
	}

	messages := make([]models.Message, 0)
	if err := q.Order("created_at ASC, id ASC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkAsRead идемпотентна: повторный вызов для прочитанного сообщения не ошибка
func (r *MessageRepositoryImpl) MarkAsRead(db *gorm.DB, id string) error {
	result := db.Model(&models.Message{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// MySQL не считает строку затронутой, если значение не изменилось
		var count int64
		if err := db.Model(&models.Message{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrMessageNotFound
		}
	}
	return nil
}

func (r *MessageRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Message{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
