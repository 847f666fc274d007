package handlers

import (
	"workhive_backend/internal/services"
	"workhive_backend/internal/validator"
)

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Job          *JobHandler
	Application  *ApplicationHandler
	Review       *ReviewHandler
	Notification *NotificationHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	return &AppHandlers{
		Auth:         NewAuthHandler(svc.AuthService, v),
		User:         NewUserHandler(svc.UserService, v),
		Job:          NewJobHandler(svc.JobService, v),
		Application:  NewApplicationHandler(svc.ApplicationService, v),
		Review:       NewReviewHandler(svc.ReviewService, v),
		Notification: NewNotificationHandler(svc.NotificationService, v),
	}
}
