package airline

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"skybook/internal/domain"
)

type Service struct {
	airlines Repository
}

func NewService(airlines Repository) *Service {
	return &Service{airlines: airlines}
}

func (s *Service) Create(ctx context.Context, req UpsertAirlineRequest) (*domain.Airline, error) {
	a := &domain.Airline{Name: req.Name, Code: req.Code}
	if err := s.airlines.Create(ctx, a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCode
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpsertAirlineRequest) (*domain.Airline, error) {
	a, err := s.airlines.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	a.Name = req.Name
	a.Code = req.Code
	if err := s.airlines.Update(ctx, a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCode
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.airlines.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.airlines.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Airline, error) {
	a, err := s.airlines.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, search string, page, limit int) ([]domain.Airline, int64, error) {
	return s.airlines.List(ctx, search, page, limit)
}
