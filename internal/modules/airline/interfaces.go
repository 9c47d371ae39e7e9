package airline

import (
	"context"

	"skybook/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, a *domain.Airline) error
	Update(ctx context.Context, a *domain.Airline) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Airline, error)
	List(ctx context.Context, search string, page, limit int) ([]domain.Airline, int64, error)
}
