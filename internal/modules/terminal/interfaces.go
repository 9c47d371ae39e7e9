package terminal

import (
	"context"

	"skybook/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, t *domain.Terminal) error
	Update(ctx context.Context, t *domain.Terminal) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Terminal, error)
	List(ctx context.Context, search string, page, limit int) ([]domain.Terminal, int64, error)
}

type AirportRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
}
