package airport

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"skybook/internal/domain"
)

type Service struct {
	airports Repository
}

func NewService(airports Repository) *Service {
	return &Service{airports: airports}
}

func (s *Service) Create(ctx context.Context, req UpsertAirportRequest) (*domain.Airport, error) {
	a := &domain.Airport{
		Name:      req.Name,
		Continent: req.Continent,
		Country:   req.Country,
		City:      req.City,
	}
	if err := s.airports.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpsertAirportRequest) (*domain.Airport, error) {
	a, err := s.airports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	a.Name = req.Name
	a.Continent = req.Continent
	a.Country = req.Country
	a.City = req.City
	if err := s.airports.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.airports.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.airports.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	a, err := s.airports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, search string, page, limit int) ([]domain.Airport, int64, error) {
	return s.airports.List(ctx, search, page, limit)
}
