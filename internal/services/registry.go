package services

// ServiceContainer bundles every service for dependency injection into
// the handler layer.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	JobService          JobService
	ApplicationService  ApplicationService
	ReviewService       ReviewService
	NotificationService NotificationService
}
