package models

import "gorm.io/datatypes"

type Job struct {
	BaseModel
	Title       string          `gorm:"size:255;not null"`
	Description string          `gorm:"type:text"`
	LocationID  *string         `gorm:"type:varchar(36);index"`
	CategoryID  *string         `gorm:"type:varchar(36);index"`
	Deadline    *datatypes.Date `gorm:"type:date"`
	PaymentType string          `gorm:"size:50"`
	JobStatus   JobStatus       `gorm:"type:varchar(20);not null;default:'Open';index"`

	// Relations
	Location *Location `gorm:"foreignKey:LocationID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
}

type Location struct {
	BaseModel
	Name string `gorm:"size:255;not null;uniqueIndex"`
}

type Category struct {
	BaseModel
	Name string `gorm:"size:255;not null;uniqueIndex"`
}
