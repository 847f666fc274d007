package models

import "time"

// SavedJob bookmarks a job for a user. At most one row per (user, job),
// enforced by the unique index; saving twice is a no-op.
type SavedJob struct {
	BaseModel
	UserID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_saved_jobs_user_job" json:"user_id"`
	JobID     string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_saved_jobs_user_job" json:"job_id"`
	SavedDate time.Time `json:"saved_date"`
}
