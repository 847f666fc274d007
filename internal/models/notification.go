package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification is only ever created by the fan-out layer as a side effect
// of another entity's state change. RecipientID gates every mutation.
type Notification struct {
	BaseModel
	RecipientID string           `gorm:"type:uuid;not null;index" json:"recipient_id"`
	SenderID    *string          `gorm:"type:uuid" json:"sender_id,omitempty"`
	Type        NotificationType `gorm:"not null" json:"type"`
	Title       string           `gorm:"not null" json:"title"`
	Message     string           `json:"message"`
	RelatedID   string           `json:"related_id,omitempty"`
	RelatedType string           `json:"related_type,omitempty"`
	Data        datatypes.JSON   `gorm:"type:jsonb" json:"data,omitempty"`
	IsRead      bool             `gorm:"default:false;index" json:"is_read"`
	ReadAt      *time.Time       `json:"read_at,omitempty"`
}
