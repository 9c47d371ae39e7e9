package seat

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"skybook/internal/domain"
)

type Service struct {
	seats Repository
}

func NewService(seats Repository) *Service {
	return &Service{seats: seats}
}

func (s *Service) ListByFlight(ctx context.Context, flightID int64) ([]domain.Seat, error) {
	return s.seats.ListByFlight(ctx, flightID)
}

// Reserve flags one seat as booked. The common path ties seats to a paid
// booking in one transaction; this standalone path exists for manual
// adjustments.
func (s *Service) Reserve(ctx context.Context, id int64) (*domain.Seat, error) {
	seat, err := s.seats.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if seat.IsBooked {
		return nil, ErrAlreadyBooked
	}

	if err := s.seats.MarkBooked(ctx, id); err != nil {
		return nil, err
	}
	seat.IsBooked = true
	return seat, nil
}

// Regenerate drops a flight's seat map and rebuilds it with the given row
// count. Returns the new seats.
func (s *Service) Regenerate(ctx context.Context, flightID int64, totalRows int) ([]domain.Seat, error) {
	if _, err := s.seats.DeleteByFlight(ctx, flightID); err != nil {
		return nil, err
	}
	return s.seats.BulkCreate(ctx, flightID, totalRows)
}
