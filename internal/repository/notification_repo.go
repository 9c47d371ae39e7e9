package repository

import (
	"context"

	"gorm.io/gorm"

	"skybook/internal/domain"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// CreateForAll fans one message out to every user in a single insert;
// used for promotion announcements.
func (r *NotificationRepository) CreateForAll(ctx context.Context, title, message string) error {
	var userIDs []int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Pluck("id", &userIDs).Error; err != nil {
		return err
	}
	if len(userIDs) == 0 {
		return nil
	}

	rows := make([]domain.Notification, 0, len(userIDs))
	for _, id := range userIDs {
		rows = append(rows, domain.Notification{UserID: id, Title: title, Message: message})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	var notifs []domain.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifs).Error
	return notifs, err
}

// MarkRead flips one of the user's notifications to read. Returns the
// number of rows touched so callers can distinguish a miss.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return tx.RowsAffected, tx.Error
}
