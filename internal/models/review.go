package models

// Review is left once by an employer about a jobseeker and is immutable
// afterwards. The unique index guarantees at most one review per pair.
type Review struct {
	BaseModel
	EmployerID  string  `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_employer_jobseeker" json:"employer_id"`
	JobseekerID string  `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_employer_jobseeker" json:"jobseeker_id"`
	JobID       *string `gorm:"type:uuid;index" json:"job_id,omitempty"`
	Rating      int     `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment     string  `json:"comment"`
}
