package services

import (
	"encoding/json"
	"fmt"
	"time"

	"workhive_backend/internal/email"
	"workhive_backend/internal/logger"
	"workhive_backend/internal/models"
	"workhive_backend/internal/repositories"
	"workhive_backend/internal/services/dto"
	"workhive_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// NotifyRequest describes one fan-out event.
type NotifyRequest struct {
	RecipientID string
	SenderID    *string
	Type        models.NotificationType
	Title       string
	Message     string
	RelatedID   string
	RelatedType string
	Data        map[string]interface{}
}

type NotificationService interface {
	// Notify persists a notification as a single insert. It is the only
	// way notifications come into existence.
	Notify(req *NotifyRequest) (*dto.NotificationResponse, error)

	// Fan-out factories. These are fired after a business operation has
	// already committed: a failure here is logged and swallowed, never
	// surfaced to the triggering caller.
	NotifyNewApplication(employerID string, job *models.Job, application *models.Application)
	NotifyApplicationStatus(application *models.Application, jobTitle string, oldStatus, newStatus models.ApplicationStatus)

	// Inbox operations, all recipient-gated.
	GetUserNotifications(recipientID string, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error)
	GetUnreadCount(recipientID string) (int64, error)
	MarkRead(recipientID, notificationID string) error
	MarkAllRead(recipientID string) error
	Delete(recipientID, notificationID string) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	emailProvider    email.Provider
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailProvider:    emailProvider,
	}
}

// ---------------- Fan-out ----------------

func (s *notificationService) Notify(req *NotifyRequest) (*dto.NotificationResponse, error) {
	var dataJSON datatypes.JSON
	if req.Data != nil {
		raw, err := json.Marshal(req.Data)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		dataJSON = datatypes.JSON(raw)
	}

	notification := &models.Notification{
		RecipientID: req.RecipientID,
		SenderID:    req.SenderID,
		Type:        req.Type,
		Title:       req.Title,
		Message:     req.Message,
		RelatedID:   req.RelatedID,
		RelatedType: req.RelatedType,
		Data:        dataJSON,
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Best-effort email mirror; the notification itself is already durable.
	go s.sendEmailCopy(notification)

	return buildNotificationResponse(notification), nil
}

func (s *notificationService) NotifyNewApplication(employerID string, job *models.Job, application *models.Application) {
	_, err := s.Notify(&NotifyRequest{
		RecipientID: employerID,
		SenderID:    &application.ApplicantID,
		Type:        models.NotificationTypeJobApplication,
		Title:       "New application",
		Message:     fmt.Sprintf("%s applied to your job \"%s\"", application.ApplicantName, job.Title),
		RelatedID:   application.ID,
		RelatedType: "application",
		Data: map[string]interface{}{
			"job_id":         job.ID,
			"application_id": application.ID,
		},
	})
	if err != nil {
		logger.Warn("notification fan-out failed",
			"type", models.NotificationTypeJobApplication,
			"recipient_id", employerID,
			"error", err.Error(),
		)
	}
}

func (s *notificationService) NotifyApplicationStatus(application *models.Application, jobTitle string, oldStatus, newStatus models.ApplicationStatus) {
	_, err := s.Notify(&NotifyRequest{
		RecipientID: application.ApplicantID,
		SenderID:    &application.EmployerID,
		Type:        models.NotificationTypeApplicationStatus,
		Title:       "Application status updated",
		Message:     BuildStatusMessage(jobTitle, oldStatus, newStatus),
		RelatedID:   application.ID,
		RelatedType: "application",
		Data: map[string]interface{}{
			"job_id":     application.JobID,
			"old_status": string(oldStatus),
			"new_status": string(newStatus),
		},
	})
	if err != nil {
		logger.Warn("notification fan-out failed",
			"type", models.NotificationTypeApplicationStatus,
			"recipient_id", application.ApplicantID,
			"error", err.Error(),
		)
	}
}

// BuildStatusMessage renders the applicant-facing status change text.
// The job title is looked up fresh by the caller so title edits are
// reflected; a deleted job arrives here as the "Unknown Job" placeholder.
func BuildStatusMessage(jobTitle string, oldStatus, newStatus models.ApplicationStatus) string {
	return fmt.Sprintf("Your application for \"%s\" moved from %s to %s", jobTitle, oldStatus, newStatus)
}

func (s *notificationService) sendEmailCopy(notification *models.Notification) {
	recipient, err := s.userRepo.FindByID(notification.RecipientID)
	if err != nil {
		logger.Warn("notification email skipped: recipient lookup failed",
			"recipient_id", notification.RecipientID, "error", err.Error())
		return
	}

	err = s.emailProvider.Send(&email.Email{
		To:      []string{recipient.Email},
		Subject: notification.Title,
		Body:    notification.Message,
	})
	if err != nil {
		logger.Warn("notification email failed",
			"recipient_id", notification.RecipientID, "error", err.Error())
	}
}

// ---------------- Inbox ----------------

func (s *notificationService) GetUserNotifications(recipientID string, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error) {
	notifications, total, err := s.notificationRepo.FindByRecipient(recipientID, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	unread, err := s.notificationRepo.CountUnread(recipientID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, buildNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: responses,
		Total:         total,
		UnreadCount:   unread,
		Page:          criteria.Page,
		PageSize:      criteria.PageSize,
	}, nil
}

func (s *notificationService) GetUnreadCount(recipientID string) (int64, error) {
	count, err := s.notificationRepo.CountUnread(recipientID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *notificationService) MarkRead(recipientID, notificationID string) error {
	if err := s.authorizeRecipient(recipientID, notificationID); err != nil {
		return err
	}

	if err := s.notificationRepo.MarkRead(notificationID, time.Now()); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) MarkAllRead(recipientID string) error {
	if err := s.notificationRepo.MarkAllRead(recipientID, time.Now()); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) Delete(recipientID, notificationID string) error {
	if err := s.authorizeRecipient(recipientID, notificationID); err != nil {
		return err
	}

	if err := s.notificationRepo.Delete(notificationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) authorizeRecipient(recipientID, notificationID string) error {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err, "notification", "Notification not found")
		}
		return apperrors.InternalError(err)
	}
	if notification.RecipientID != recipientID {
		return apperrors.NewForbiddenError("Not the recipient of this notification")
	}
	return nil
}

func buildNotificationResponse(n *models.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		SenderID:    n.SenderID,
		Type:        n.Type,
		Title:       n.Title,
		Message:     n.Message,
		RelatedID:   n.RelatedID,
		RelatedType: n.RelatedType,
		IsRead:      n.IsRead,
		ReadAt:      n.ReadAt,
		CreatedAt:   n.CreatedAt,
	}
}
