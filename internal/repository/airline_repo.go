package repository

import (
	"context"

	"gorm.io/gorm"

	"skybook/internal/domain"
)

type AirlineRepository struct {
	db *gorm.DB
}

func NewAirlineRepository(db *gorm.DB) *AirlineRepository {
	return &AirlineRepository{db: db}
}

func (r *AirlineRepository) Create(ctx context.Context, a *domain.Airline) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AirlineRepository) Update(ctx context.Context, a *domain.Airline) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AirlineRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Airline{}, id).Error
}

func (r *AirlineRepository) GetByID(ctx context.Context, id int64) (*domain.Airline, error) {
	var a domain.Airline
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AirlineRepository) List(ctx context.Context, search string, page, limit int) ([]domain.Airline, int64, error) {
	scope := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&domain.Airline{})
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

	var airlines []domain.Airline
	err := scope().
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&airlines).Error
	if err != nil {
		return nil, 0, err
	}
	return airlines, total, nil
}
