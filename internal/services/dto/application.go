package dto

import (
	"time"

	"workhive_backend/internal/models"
)

type CreateApplicationRequest struct {
	CoverLetter string `json:"cover_letter" form:"cover_letter" validate:"max=10000"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,application_status"`
}

type ApplicationResponse struct {
	ID               string                   `json:"id"`
	JobID            string                   `json:"job_id"`
	ApplicantID      string                   `json:"applicant_id"`
	EmployerID       string                   `json:"employer_id"`
	ApplicantName    string                   `json:"applicant_name"`
	CoverLetter      string                   `json:"cover_letter"`
	Status           models.ApplicationStatus `json:"status"`
	ResumePath       string                   `json:"resume_path,omitempty"`
	AppliedDate      time.Time                `json:"applied_date"`
	LastStatusUpdate *time.Time               `json:"last_status_update,omitempty"`

	// JobTitle is looked up per response; a deleted job degrades to a
	// placeholder instead of failing the listing.
	JobTitle string `json:"job_title"`
}

type ApplicationListResponse struct {
	Applications []*ApplicationResponse `json:"applications"`
	Total        int                    `json:"total"`
}
