package auth

import (
	"context"

	"skybook/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByResetToken(ctx context.Context, token string) (*domain.User, error)
}

type Mailer interface {
	SendOTP(to, otp string) error
	SendPasswordReset(to, link string) error
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID int64, title, message string) error
}
