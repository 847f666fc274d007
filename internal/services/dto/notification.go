package dto

import (
	"time"

	"workhive_backend/internal/models"
)

type NotificationResponse struct {
	ID          string                  `json:"id"`
	RecipientID string                  `json:"recipient_id"`
	SenderID    *string                 `json:"sender_id,omitempty"`
	Type        models.NotificationType `json:"type"`
	Title       string                  `json:"title"`
	Message     string                  `json:"message"`
	RelatedID   string                  `json:"related_id,omitempty"`
	RelatedType string                  `json:"related_type,omitempty"`
	IsRead      bool                    `json:"is_read"`
	ReadAt      *time.Time              `json:"read_at,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	Total         int64                   `json:"total"`
	UnreadCount   int64                   `json:"unread_count"`
	Page          int                     `json:"page"`
	PageSize      int                     `json:"page_size"`
}
