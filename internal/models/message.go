package models

import "gorm.io/datatypes"

// Message - личное сообщение между пользователями
type Message struct {
	BaseModel
	SenderUserID    string         `gorm:"type:varchar(36);not null;index"`
	RecipientUserID string         `gorm:"type:varchar(36);not null;index:idx_messages_recipient_read"`
	Subject         string         `gorm:"size:255"`
	Date            datatypes.Date `gorm:"type:date"`
	Content         string         `gorm:"type:text"`
	// "read" зарезервировано в MySQL
	Read bool `gorm:"column:is_read;not null;default:false;index:idx_messages_recipient_read"`

	// Relations
	Sender    *User `gorm:"foreignKey:SenderUserID"`
	Recipient *User `gorm:"foreignKey:RecipientUserID"`
}
