package repository

import (
	"context"

	"gorm.io/gorm"

	"skybook/internal/domain"
)

type AirportRepository struct {
	db *gorm.DB
}

func NewAirportRepository(db *gorm.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

func (r *AirportRepository) Create(ctx context.Context, a *domain.Airport) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AirportRepository) Update(ctx context.Context, a *domain.Airport) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AirportRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Airport{}, id).Error
}

func (r *AirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	var a domain.Airport
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AirportRepository) List(ctx context.Context, search string, page, limit int) ([]domain.Airport, int64, error) {
	scope := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&domain.Airport{})
		if search != "" {
			c := containsFold("name", search)
			q = q.Where(c.Expr, c.Arg)
		}
		return q
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var airports []domain.Airport
	err := scope().
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&airports).Error
	if err != nil {
		return nil, 0, err
	}
	return airports, total, nil
}
