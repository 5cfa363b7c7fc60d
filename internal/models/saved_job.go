package models

// SavedJob - закладка пользователя на вакансию. Пара (user_id, job_id) уникальна.
type SavedJob struct {
	BaseModel
	UserID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_saved_jobs_user_job"`
	JobID  string `gorm:"type:varchar(36);not null;uniqueIndex:idx_saved_jobs_user_job;index"`

	// Relations
	User *User `gorm:"foreignKey:UserID"`
	Job  *Job  `gorm:"foreignKey:JobID"`
}
