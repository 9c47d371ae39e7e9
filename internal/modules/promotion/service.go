package promotion

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"skybook/internal/domain"
)

type Service struct {
	promotions PromotionRepository
	flights    FlightRepository
	announcer  Announcer
}

func NewService(promotions PromotionRepository, flights FlightRepository, announcer Announcer) *Service {
	return &Service{promotions: promotions, flights: flights, announcer: announcer}
}

func parsePeriod(req UpsertPromotionRequest) (start, end time.Time, err error) {
	start, err = time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return start, end, ErrInvalidPeriod
	}
	end, err = time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return start, end, ErrInvalidPeriod
	}
	if end.Before(start) {
		return start, end, ErrInvalidPeriod
	}
	return start, end, nil
}

func (s *Service) Create(ctx context.Context, req UpsertPromotionRequest) (*domain.Promotion, error) {
	if req.Discount <= 0 || req.Discount >= 1 {
		return nil, ErrInvalidDiscount
	}
	start, end, err := parsePeriod(req)
	if err != nil {
		return nil, err
	}

	p := &domain.Promotion{Discount: req.Discount, StartDate: start, EndDate: end}
	if err := s.promotions.Create(ctx, p); err != nil {
		return nil, err
	}

	if s.announcer != nil {
		s.announcer.AnnouncePromotion(ctx, p)
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpsertPromotionRequest) (*domain.Promotion, error) {
	if req.Discount <= 0 || req.Discount >= 1 {
		return nil, ErrInvalidDiscount
	}
	start, end, err := parsePeriod(req)
	if err != nil {
		return nil, err
	}

	p, err := s.promotions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p.Discount = req.Discount
	p.StartDate = start
	p.EndDate = end
	if err := s.promotions.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the promotion and reverts every flight that referenced it
// to its base price, so no flight is left pointing at a dead promotion.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.promotions.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.flights.ResetPromotionRefs(ctx, id); err != nil {
		return err
	}
	return s.promotions.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	p, err := s.promotions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, page, limit int) ([]domain.Promotion, int64, error) {
	return s.promotions.List(ctx, page, limit)
}

// Reconcile reverts every flight whose promotion has expired or vanished.
// Each flight is reset in its own row-scoped update, so a failure on one
// flight does not keep the rest discounted; the next run picks up whatever
// was missed.
func (s *Service) Reconcile(ctx context.Context, now time.Time) error {
	flights, err := s.flights.ListWithPromotion(ctx)
	if err != nil {
		return err
	}

	promos := make(map[int64]*domain.Promotion, len(flights))
	for _, f := range flights {
		if f.PromotionID == nil {
			continue
		}
		pid := *f.PromotionID

		p, seen := promos[pid]
		if !seen {
			p, err = s.promotions.GetByID(ctx, pid)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			promos[pid] = p // nil for a vanished promotion
		}

		if p != nil && !p.Expired(now) {
			continue
		}
		if err := s.flights.ResetPromotion(ctx, f.ID); err != nil {
			log.Printf("promotion reconcile: flight %d: %v", f.ID, err)
		}
	}
	return nil
}
