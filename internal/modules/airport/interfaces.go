package airport

import (
	"context"

	"skybook/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, a *domain.Airport) error
	Update(ctx context.Context, a *domain.Airport) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	List(ctx context.Context, search string, page, limit int) ([]domain.Airport, int64, error)
}
