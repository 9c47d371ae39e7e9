package seat

import (
	"context"

	"skybook/internal/domain"
)

type Repository interface {
	BulkCreate(ctx context.Context, flightID int64, totalRows int) ([]domain.Seat, error)
	ListByFlight(ctx context.Context, flightID int64) ([]domain.Seat, error)
	GetByID(ctx context.Context, id int64) (*domain.Seat, error)
	MarkBooked(ctx context.Context, id int64) error
	DeleteByFlight(ctx context.Context, flightID int64) (int64, error)
}
