package models

import "time"

// Application links a jobseeker to a job. EmployerID and ApplicantName are
// snapshots taken at apply time so the record stays renderable after the
// employer edits the job or the applicant edits their profile.
// The compound unique index closes the duplicate-apply race at the store.
type Application struct {
	BaseModel
	JobID       string `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_job_applicant" json:"job_id"`
	ApplicantID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_job_applicant" json:"applicant_id"`
	EmployerID  string `gorm:"type:uuid;not null;index" json:"employer_id"`

	ApplicantName string            `json:"applicant_name"`
	CoverLetter   string            `json:"cover_letter"`
	Status        ApplicationStatus `gorm:"not null;default:'Pending'" json:"status"`
	ResumePath    string            `json:"resume_path,omitempty"`

	AppliedDate      time.Time  `json:"applied_date"`
	LastStatusUpdate *time.Time `json:"last_status_update,omitempty"`
}
