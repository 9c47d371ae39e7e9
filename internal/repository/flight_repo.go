package repository

import (
	"context"

	"gorm.io/gorm"

	"skybook/internal/domain"
)

type FlightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// CreateWithSeats inserts the flight and its seat map atomically; a failed
// seat insert rolls the flight back rather than leaving it seatless.
func (r *FlightRepository) CreateWithSeats(ctx context.Context, f *domain.Flight, totalRows int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(f).Error; err != nil {
			return err
		}
		seats := buildSeatRows(f.ID, totalRows)
		return tx.Create(&seats).Error
	})
}

func (r *FlightRepository) Update(ctx context.Context, f *domain.Flight) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *FlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	var f domain.Flight
	tx := r.db.WithContext(ctx).
		Preload("Airline").
		Preload("DepartureTerminal.Airport").
		Preload("ArrivalTerminal.Airport").
		Preload("Promotion").
		First(&f, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &f, nil
}

// Delete removes the flight together with its seats; seats are owned by
// the flight and never outlive it.
func (r *FlightRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("flight_id = ?", id).Delete(&domain.Seat{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Flight{}, id).Error
	})
}

func (r *FlightRepository) searchScope(ctx context.Context, p Predicate) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Flight{}).
		Joins("JOIN terminals AS dep_terminals ON dep_terminals.id = flights.departure_terminal_id").
		Joins("JOIN airports AS dep_airports ON dep_airports.id = dep_terminals.airport_id").
		Joins("JOIN terminals AS arr_terminals ON arr_terminals.id = flights.arrival_terminal_id").
		Joins("JOIN airports AS arr_airports ON arr_airports.id = arr_terminals.airport_id")

	if expr, args := p.SQL(); expr != "" {
		q = q.Where(expr, args...)
	}
	return q
}

// Search runs the composed predicate against the flight collection and
// returns one page plus the total count under the identical predicate.
func (r *FlightRepository) Search(ctx context.Context, s FlightSearch, page, limit int) ([]domain.Flight, int64, error) {
	p := BuildFlightPredicate(s)

	var total int64
	if err := r.searchScope(ctx, p).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.searchScope(ctx, p)
	if order := FlightOrder(s.SortBy); order != "" {
		q = q.Order(order)
	}

	var flights []domain.Flight
	err := q.
		Preload("Airline").
		Preload("DepartureTerminal.Airport").
		Preload("ArrivalTerminal.Airport").
		Preload("Promotion").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&flights).Error
	if err != nil {
		return nil, 0, err
	}
	return flights, total, nil
}

// ListWithPromotion returns only flights carrying a promotion reference —
// the indexed form of the reconciliation scan.
func (r *FlightRepository) ListWithPromotion(ctx context.Context) ([]domain.Flight, error) {
	var flights []domain.Flight
	err := r.db.WithContext(ctx).
		Where("promotion_id IS NOT NULL").
		Find(&flights).Error
	return flights, err
}

// ResetPromotion reverts one flight to its base price and clears the
// promotion reference. Row-scoped, so concurrent bookings and searches
// are never blocked; re-running on an already-reset flight matches zero
// rows and is a no-op.
func (r *FlightRepository) ResetPromotion(ctx context.Context, flightID int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Flight{}).
		Where("id = ? AND promotion_id IS NOT NULL", flightID).
		Updates(map[string]any{
			"price":        gorm.Expr("base_price"),
			"promotion_id": nil,
		}).Error
}

// ResetPromotionRefs reverts every flight referencing the given promotion;
// used when a promotion is deleted.
func (r *FlightRepository) ResetPromotionRefs(ctx context.Context, promotionID int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Flight{}).
		Where("promotion_id = ?", promotionID).
		Updates(map[string]any{
			"price":        gorm.Expr("base_price"),
			"promotion_id": nil,
		}).Error
}
