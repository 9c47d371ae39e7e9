package notification

import (
	"context"

	"skybook/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	CreateForAll(ctx context.Context, title, message string) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) (int64, error)
}

type UserRepository interface {
	ListAll(ctx context.Context) ([]domain.User, error)
}

type Mailer interface {
	SendPromotionAnnouncement(to string, percent float64, start, end string) error
}
