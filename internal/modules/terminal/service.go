package terminal

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"skybook/internal/domain"
)

type Service struct {
	terminals Repository
	airports  AirportRepository
}

func NewService(terminals Repository, airports AirportRepository) *Service {
	return &Service{terminals: terminals, airports: airports}
}

// checkAirport verifies the referenced airport exists before any write.
func (s *Service) checkAirport(ctx context.Context, airportID int64) error {
	if _, err := s.airports.GetByID(ctx, airportID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAirportNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req UpsertTerminalRequest) (*domain.Terminal, error) {
	if err := s.checkAirport(ctx, req.AirportID); err != nil {
		return nil, err
	}

	t := &domain.Terminal{Name: req.Name, AirportID: req.AirportID}
	if err := s.terminals.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpsertTerminalRequest) (*domain.Terminal, error) {
	if err := s.checkAirport(ctx, req.AirportID); err != nil {
		return nil, err
	}

	t, err := s.terminals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	t.Name = req.Name
	t.AirportID = req.AirportID
	t.Airport = nil
	if err := s.terminals.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.terminals.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.terminals.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Terminal, error) {
	t, err := s.terminals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) List(ctx context.Context, search string, page, limit int) ([]domain.Terminal, int64, error) {
	return s.terminals.List(ctx, search, page, limit)
}
