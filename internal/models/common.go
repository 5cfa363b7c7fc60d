package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel - идентификатор и метки времени для всех таблиц.
// UUID генерируется на стороне приложения, чтобы не зависеть от расширений БД.
type BaseModel struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// DateLayout - формат дат в запросах и ответах
const DateLayout = "2006-01-02"

// ParseDate принимает дату вида 2006-01-02 или полный RFC3339
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
