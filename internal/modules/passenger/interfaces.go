package passenger

import (
	"context"

	"skybook/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, p *domain.Passenger) error
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Passenger, error)
	List(ctx context.Context, search string, page, limit int) ([]domain.Passenger, int64, error)
}

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
