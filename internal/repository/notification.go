package repository

import (
	"context"
	"fmt"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification records.
type NotificationRepository interface {
	// Create validates that generator, receiver and post all exist before
	// inserting. Callers treat any error as non-fatal.
	Create(ctx context.Context, n *models.Notification) error
	// ListForReceiver returns the receiver's notifications newest first and
	// marks the returned rows as read.
	ListForReceiver(ctx context.Context, receiverID uint) ([]models.Notification, error)
	UnreadCount(ctx context.Context, receiverID uint) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *models.Notification) error {
	db := r.db.WithContext(ctx)

	for _, userID := range []uint{n.GeneratorID, n.ReceiverID} {
		var count int64
		if err := db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("notification user %d does not exist", userID)
		}
	}

	var postCount int64
	if err := db.Model(&models.Post{}).Where("id = ?", n.PostID).Count(&postCount).Error; err != nil {
		return err
	}
	if postCount == 0 {
		return fmt.Errorf("notification post %d does not exist", n.PostID)
	}

	if err := db.Create(n).Error; err != nil {
		return err
	}
	cache.InvalidateUnreadCount(ctx, n.ReceiverID)
	return nil
}

func (r *notificationRepository) ListForReceiver(ctx context.Context, receiverID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("receiver_id = ?", receiverID).
			Order("created_at DESC").
			Find(&notifications).Error; err != nil {
			return err
		}
		if len(notifications) == 0 {
			return nil
		}
		// fetching the list counts as reading it
		if err := tx.Model(&models.Notification{}).
			Where("receiver_id = ? AND read = ?", receiverID, false).
			Update("read", true).Error; err != nil {
			return err
		}
		for i := range notifications {
			notifications[i].Read = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	cache.InvalidateUnreadCount(ctx, receiverID)
	return notifications, nil
}

func (r *notificationRepository) UnreadCount(ctx context.Context, receiverID uint) (int64, error) {
	var count int64
	err := cache.Aside(ctx, cache.UnreadCountKey(receiverID), &count, cache.UnreadTTL, func() error {
		return readDB(r.db).WithContext(ctx).
			Model(&models.Notification{}).
			Where("receiver_id = ? AND read = ?", receiverID, false).
			Count(&count).Error
	})
	return count, err
}
