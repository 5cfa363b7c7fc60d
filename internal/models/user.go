package models

// User - запись справочника пользователей. Здесь она только читается:
// существование отправителя/получателя и данные отправителя во входящих.
type User struct {
	BaseModel
	Name  string `gorm:"size:255"`
	Email string `gorm:"size:255;uniqueIndex"`
}
