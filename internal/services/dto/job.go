package dto

import "time"

type CreateJobRequest struct {
	Title          string   `json:"title" validate:"required,min=3,max=200"`
	Description    string   `json:"description" validate:"max=10000"`
	Salary         float64  `json:"salary" validate:"gte=0"`
	SalaryPeriod   string   `json:"salary_period" validate:"omitempty,oneof=hour day week month year"`
	EmploymentType string   `json:"employment_type" validate:"omitempty,oneof=full-time part-time contract temporary internship"`
	Location       string   `json:"location" validate:"max=100"`
	Requirements   []string `json:"requirements" validate:"max=50,dive,max=500"`
}

type UpdateJobRequest struct {
	Title          *string  `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description    *string  `json:"description,omitempty" validate:"omitempty,max=10000"`
	Salary         *float64 `json:"salary,omitempty" validate:"omitempty,gte=0"`
	SalaryPeriod   *string  `json:"salary_period,omitempty" validate:"omitempty,oneof=hour day week month year"`
	EmploymentType *string  `json:"employment_type,omitempty" validate:"omitempty,oneof=full-time part-time contract temporary internship"`
	Location       *string  `json:"location,omitempty" validate:"omitempty,max=100"`
	Requirements   []string `json:"requirements,omitempty" validate:"omitempty,max=50,dive,max=500"`
	Active         *bool    `json:"active,omitempty"`
}

type JobResponse struct {
	ID             string    `json:"id"`
	EmployerID     string    `json:"employer_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Salary         float64   `json:"salary"`
	SalaryPeriod   string    `json:"salary_period"`
	EmploymentType string    `json:"employment_type"`
	Location       string    `json:"location"`
	Requirements   []string  `json:"requirements"`
	PostedDate     time.Time `json:"posted_date"`
	Active         bool      `json:"active"`
	// ApplicationCount is recomputed from the applications table on read.
	ApplicationCount int64 `json:"application_count,omitempty"`
}

type JobListResponse struct {
	Jobs       []*JobResponse `json:"jobs"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

type SavedJobResponse struct {
	ID        string       `json:"id"`
	JobID     string       `json:"job_id"`
	SavedDate time.Time    `json:"saved_date"`
	Job       *JobResponse `json:"job,omitempty"`
}
