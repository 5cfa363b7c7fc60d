package models

// UserReview хранится в схеме, но ни одна ручка с ним пока не работает
type UserReview struct {
	BaseModel
	ReviewText string `gorm:"type:text;not null"`
	Rating     int    `gorm:"not null"`
}
