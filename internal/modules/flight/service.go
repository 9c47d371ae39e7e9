package flight

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"skybook/internal/domain"
	"skybook/internal/repository"
)

type Service struct {
	flights    FlightRepository
	seats      SeatRepository
	airlines   AirlineRepository
	terminals  TerminalRepository
	promotions PromotionRepository
}

func NewService(
	flights FlightRepository,
	seats SeatRepository,
	airlines AirlineRepository,
	terminals TerminalRepository,
	promotions PromotionRepository,
) *Service {
	return &Service{
		flights:    flights,
		seats:      seats,
		airlines:   airlines,
		terminals:  terminals,
		promotions: promotions,
	}
}

// validateRefs checks that every foreign reference in the request exists.
func (s *Service) validateRefs(ctx context.Context, req UpsertFlightRequest) error {
	if _, err := s.airlines.GetByID(ctx, req.AirlineID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAirlineNotFound
		}
		return err
	}
	for _, id := range []int64{req.DepartureTerminalID, req.ArrivalTerminalID} {
		if _, err := s.terminals.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTerminalNotFound
			}
			return err
		}
	}
	return nil
}

// effectivePrice resolves the flight's live price from its base price and
// the (optional) promotion reference.
func (s *Service) effectivePrice(ctx context.Context, base float64, promotionID *int64) (float64, error) {
	if promotionID == nil {
		return base, nil
	}
	p, err := s.promotions.GetByID(ctx, *promotionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrPromotionNotFound
		}
		return 0, err
	}
	return p.EffectivePrice(base, time.Now()), nil
}

// Create persists the flight and bulk-creates its seat map (totalRows rows
// of six seats each).
func (s *Service) Create(ctx context.Context, req UpsertFlightRequest) (*domain.Flight, error) {
	if !req.ArrivalTime.After(req.DepartureTime) {
		return nil, ErrInvalidSchedule
	}
	if err := s.validateRefs(ctx, req); err != nil {
		return nil, err
	}

	price, err := s.effectivePrice(ctx, req.Price, req.PromotionID)
	if err != nil {
		return nil, err
	}

	f := &domain.Flight{
		Code:                req.FlightCode,
		SeatClass:           req.SeatClass,
		BasePrice:           req.Price,
		Price:               price,
		AirlineID:           req.AirlineID,
		DepartureTerminalID: req.DepartureTerminalID,
		ArrivalTerminalID:   req.ArrivalTerminalID,
		DepartureTime:       req.DepartureTime,
		ArrivalTime:         req.ArrivalTime,
		Duration:            domain.DurationMinutes(req.DepartureTime, req.ArrivalTime),
		PromotionID:         req.PromotionID,
		ImageURL:            req.ImageURL,
	}
	if err := s.flights.CreateWithSeats(ctx, f, req.TotalRows); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCode
		}
		return nil, err
	}
	return f, nil
}

// Update rewrites the flight in place. Duration is recomputed from the new
// timestamps and the price re-derived from the (possibly changed) promotion.
func (s *Service) Update(ctx context.Context, id int64, req UpsertFlightRequest) (*domain.Flight, error) {
	if !req.ArrivalTime.After(req.DepartureTime) {
		return nil, ErrInvalidSchedule
	}
	if err := s.validateRefs(ctx, req); err != nil {
		return nil, err
	}

	f, err := s.flights.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	price, err := s.effectivePrice(ctx, req.Price, req.PromotionID)
	if err != nil {
		return nil, err
	}

	f.Code = req.FlightCode
	f.SeatClass = req.SeatClass
	f.BasePrice = req.Price
	f.Price = price
	f.AirlineID = req.AirlineID
	f.DepartureTerminalID = req.DepartureTerminalID
	f.ArrivalTerminalID = req.ArrivalTerminalID
	f.DepartureTime = req.DepartureTime
	f.ArrivalTime = req.ArrivalTime
	f.Duration = domain.DurationMinutes(req.DepartureTime, req.ArrivalTime)
	f.PromotionID = req.PromotionID
	f.ImageURL = req.ImageURL
	f.Promotion = nil
	f.Airline = nil
	f.DepartureTerminal = nil
	f.ArrivalTerminal = nil

	if err := s.flights.Update(ctx, f); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCode
		}
		return nil, err
	}
	return f, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.flights.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.flights.Delete(ctx, id)
}

// Detail is a flight together with its seat map.
type Detail struct {
	Flight *domain.Flight `json:"flight"`
	Seats  []domain.Seat  `json:"seats"`
}

func (s *Service) GetDetail(ctx context.Context, id int64) (*Detail, error) {
	f, err := s.flights.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	seats, err := s.seats.ListByFlight(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Detail{Flight: f, Seats: seats}, nil
}

func (s *Service) Search(ctx context.Context, q repository.FlightSearch, page, limit int) ([]domain.Flight, int64, error) {
	return s.flights.Search(ctx, q, page, limit)
}
