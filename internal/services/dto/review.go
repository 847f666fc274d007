package dto

import "time"

type CreateReviewRequest struct {
	JobseekerID string  `json:"jobseeker_id" validate:"required,uuid"`
	Rating      int     `json:"rating" validate:"required,min=1,max=5"`
	Comment     string  `json:"comment" validate:"max=5000"`
	JobID       *string `json:"job_id,omitempty" validate:"omitempty,uuid"`
}

type ReviewResponse struct {
	ID          string    `json:"id"`
	EmployerID  string    `json:"employer_id"`
	JobseekerID string    `json:"jobseeker_id"`
	JobID       *string   `json:"job_id,omitempty"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

type JobseekerReviewsResponse struct {
	Reviews []*ReviewResponse `json:"reviews"`
	Average float64           `json:"average"`
	Count   int64             `json:"count"`
}
