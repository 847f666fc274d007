package models

import (
	"time"

	"gorm.io/datatypes"
)

// Job is a posting owned by an employer. The applications for a job are
// always resolved by querying the applications table by job_id; no id list
// is cached on the job row.
type Job struct {
	BaseModel
	EmployerID     string         `gorm:"type:uuid;not null;index" json:"employer_id"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `json:"description"`
	Salary         float64        `json:"salary"`
	SalaryPeriod   string         `json:"salary_period"`
	EmploymentType string         `gorm:"index" json:"employment_type"`
	Location       string         `gorm:"index" json:"location"`
	Requirements   datatypes.JSON `gorm:"type:jsonb" json:"requirements"` // ordered list of strings
	PostedDate     time.Time      `gorm:"index" json:"posted_date"`
	Active         bool           `gorm:"default:true;index" json:"active"`

	Employer User `gorm:"foreignKey:EmployerID" json:"-"`
}
