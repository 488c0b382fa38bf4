package models

import (
	"time"

	"gorm.io/gorm"
)

// NotificationKind distinguishes activity updates from announcements.
type NotificationKind string

const (
	NotificationActivity NotificationKind = "att"
	NotificationNew      NotificationKind = "new"
)

// Notification is created only as a side effect of reaction/bookmark writes.
// Delivery is best-effort; the feed composer never mutates these rows.
type Notification struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	GeneratorID uint             `gorm:"not null;index" json:"generator_id"`
	ReceiverID  uint             `gorm:"not null;index" json:"receiver_id"`
	PostID      uint             `gorm:"not null;index" json:"post_id"`
	Title       string           `gorm:"not null" json:"title"`
	Message     string           `gorm:"not null" json:"message"`
	Kind        NotificationKind `gorm:"type:varchar(8);not null" json:"kind"`
	Read        bool             `gorm:"default:false" json:"read"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}
