package dto

import (
	"time"

	"workhive_backend/internal/models"
)

type UserResponse struct {
	ID               string          `json:"id"`
	Email            string          `json:"email"`
	Role             models.UserRole `json:"role"`
	Name             string          `json:"name"`
	Phone            string          `json:"phone,omitempty"`
	Location         string          `json:"location,omitempty"`
	Bio              string          `json:"bio,omitempty"`
	ProfileCompleted bool            `json:"profile_completed"`
	CreatedAt        time.Time       `json:"created_at"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=100"`
	Bio      *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		Role:             user.Role,
		Name:             user.Name,
		Phone:            user.Phone,
		Location:         user.Location,
		Bio:              user.Bio,
		ProfileCompleted: user.ProfileCompleted,
		CreatedAt:        user.CreatedAt,
	}
}
