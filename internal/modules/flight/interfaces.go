package flight

import (
	"context"

	"skybook/internal/domain"
	"skybook/internal/repository"
)

type FlightRepository interface {
	CreateWithSeats(ctx context.Context, f *domain.Flight, totalRows int) error
	Update(ctx context.Context, f *domain.Flight) error
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, s repository.FlightSearch, page, limit int) ([]domain.Flight, int64, error)
}

type SeatRepository interface {
	ListByFlight(ctx context.Context, flightID int64) ([]domain.Seat, error)
}

type AirlineRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Airline, error)
}

type TerminalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Terminal, error)
}

type PromotionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Promotion, error)
}
