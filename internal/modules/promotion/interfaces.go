package promotion

import (
	"context"

	"skybook/internal/domain"
)

type PromotionRepository interface {
	Create(ctx context.Context, p *domain.Promotion) error
	Update(ctx context.Context, p *domain.Promotion) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Promotion, error)
	List(ctx context.Context, page, limit int) ([]domain.Promotion, int64, error)
}

type FlightRepository interface {
	ListWithPromotion(ctx context.Context) ([]domain.Flight, error)
	ResetPromotion(ctx context.Context, flightID int64) error
	ResetPromotionRefs(ctx context.Context, promotionID int64) error
}

// Announcer fans a new promotion out to users: an in-app notification row
// for everyone plus a best-effort email.
type Announcer interface {
	AnnouncePromotion(ctx context.Context, p *domain.Promotion)
}
