package repository

import (
	"context"

	"gorm.io/gorm"

	"skybook/internal/domain"
)

type TerminalRepository struct {
	db *gorm.DB
}

func NewTerminalRepository(db *gorm.DB) *TerminalRepository {
	return &TerminalRepository{db: db}
}

func (r *TerminalRepository) Create(ctx context.Context, t *domain.Terminal) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TerminalRepository) Update(ctx context.Context, t *domain.Terminal) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TerminalRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Terminal{}, id).Error
}

func (r *TerminalRepository) GetByID(ctx context.Context, id int64) (*domain.Terminal, error) {
	var t domain.Terminal
	if err := r.db.WithContext(ctx).Preload("Airport").First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TerminalRepository) List(ctx context.Context, search string, page, limit int) ([]domain.Terminal, int64, error) {
	scope := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&domain.Terminal{})
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

	var terminals []domain.Terminal
	err := scope().
		Preload("Airport").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&terminals).Error
	if err != nil {
		return nil, 0, err
	}
	return terminals, total, nil
}
