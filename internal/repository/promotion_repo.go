package repository

import (
	"context"

	"gorm.io/gorm"

	"skybook/internal/domain"
)

type PromotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{db: db}
}

func (r *PromotionRepository) Create(ctx context.Context, p *domain.Promotion) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PromotionRepository) Update(ctx context.Context, p *domain.Promotion) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PromotionRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Promotion{}, id).Error
}

func (r *PromotionRepository) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	var p domain.Promotion
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromotionRepository) List(ctx context.Context, page, limit int) ([]domain.Promotion, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Promotion{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var promos []domain.Promotion
	err := r.db.WithContext(ctx).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&promos).Error
	if err != nil {
		return nil, 0, err
	}
	return promos, total, nil
}
