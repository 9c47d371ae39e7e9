package passenger

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"skybook/internal/domain"
)

type Service struct {
	passengers Repository
	bookings   BookingRepository
}

func NewService(passengers Repository, bookings BookingRepository) *Service {
	return &Service{passengers: passengers, bookings: bookings}
}

func (s *Service) Create(ctx context.Context, req CreatePassengerRequest) (*domain.Passenger, error) {
	if _, err := s.bookings.GetByID(ctx, req.BookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	p := &domain.Passenger{
		BookingID:      req.BookingID,
		Title:          req.Title,
		FullName:       req.FullName,
		FamilyName:     req.FamilyName,
		BornDate:       req.BornDate,
		Citizen:        req.Citizen,
		IdentityNumber: req.IdentityNumber,
		IssuingCountry: req.IssuingCountry,
		ValidUntil:     req.ValidUntil,
	}
	if err := s.passengers.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Passenger, error) {
	return s.passengers.ListByBooking(ctx, bookingID)
}

func (s *Service) List(ctx context.Context, search string, page, limit int) ([]domain.Passenger, int64, error) {
	return s.passengers.List(ctx, search, page, limit)
}
