package repository

import (
	"context"

	"gorm.io/gorm"

	"skybook/internal/domain"
)

type PassengerRepository struct {
	db *gorm.DB
}

func NewPassengerRepository(db *gorm.DB) *PassengerRepository {
	return &PassengerRepository{db: db}
}

func (r *PassengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PassengerRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Passenger, error) {
	var passengers []domain.Passenger
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Find(&passengers).Error
	return passengers, err
}

func (r *PassengerRepository) List(ctx context.Context, search string, page, limit int) ([]domain.Passenger, int64, error) {
	scope := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&domain.Passenger{})
		if search != "" {
			c := containsFold("full_name", search)
			q = q.Where(c.Expr, c.Arg)
		}
		return q
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var passengers []domain.Passenger
	err := scope().
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&passengers).Error
	if err != nil {
		return nil, 0, err
	}
	return passengers, total, nil
}
