package models

// UserRole is the account type fixed at registration.
type UserRole string

const (
	UserRoleJobseeker UserRole = "jobseeker"
	UserRoleEmployer  UserRole = "employer"
)

func IsValidUserRole(r UserRole) bool {
	return r == UserRoleJobseeker || r == UserRoleEmployer
}

// ApplicationStatus is the closed set of states an application moves through.
// Only the owning employer transitions status; withdrawal is only legal
// while the application is still Pending.
type ApplicationStatus string

const (
	ApplicationStatusPending      ApplicationStatus = "Pending"
	ApplicationStatusReviewed     ApplicationStatus = "Reviewed"
	ApplicationStatusInterviewing ApplicationStatus = "Interviewing"
	ApplicationStatusHired        ApplicationStatus = "Hired"
	ApplicationStatusRejected     ApplicationStatus = "Rejected"
)

func IsValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending,
		ApplicationStatusReviewed,
		ApplicationStatusInterviewing,
		ApplicationStatusHired,
		ApplicationStatusRejected:
		return true
	}
	return false
}

// SalaryPeriod and EmploymentType are validated with oneof tags on the DTOs;
// the canonical sets live here so tests and seeds share them.

const (
	SalaryPeriodHour  = "hour"
	SalaryPeriodDay   = "day"
	SalaryPeriodWeek  = "week"
	SalaryPeriodMonth = "month"
	SalaryPeriodYear  = "year"
)

const (
	EmploymentFullTime   = "full-time"
	EmploymentPartTime   = "part-time"
	EmploymentContract   = "contract"
	EmploymentTemporary  = "temporary"
	EmploymentInternship = "internship"
)

// NotificationType tags what a notification was fanned out from.
type NotificationType string

const (
	NotificationTypeJobApplication    NotificationType = "job_application"
	NotificationTypeApplicationStatus NotificationType = "application_status"
)
