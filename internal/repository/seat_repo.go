package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"skybook/internal/domain"
)

type SeatRepository struct {
	db *gorm.DB
}

func NewSeatRepository(db *gorm.DB) *SeatRepository {
	return &SeatRepository{db: db}
}

// buildSeatRows expands rows 1..totalRows against the letter set A-F,
// yielding totalRows*6 seats named "{letter}-{row}".
func buildSeatRows(flightID int64, totalRows int) []domain.Seat {
	seats := make([]domain.Seat, 0, totalRows*len(domain.SeatLetters))
	for row := 1; row <= totalRows; row++ {
		for _, letter := range domain.SeatLetters {
			seats = append(seats, domain.Seat{
				FlightID:   flightID,
				SeatNumber: fmt.Sprintf("%s-%d", letter, row),
			})
		}
	}
	return seats
}

// BulkCreate inserts the full seat map for a flight in one insert.
func (r *SeatRepository) BulkCreate(ctx context.Context, flightID int64, totalRows int) ([]domain.Seat, error) {
	seats := buildSeatRows(flightID, totalRows)
	if err := r.db.WithContext(ctx).Create(&seats).Error; err != nil {
		return nil, err
	}
	return seats, nil
}

func (r *SeatRepository) ListByFlight(ctx context.Context, flightID int64) ([]domain.Seat, error) {
	var seats []domain.Seat
	err := r.db.WithContext(ctx).
		Where("flight_id = ?", flightID).
		Order("id").
		Find(&seats).Error
	return seats, err
}

func (r *SeatRepository) GetByID(ctx context.Context, id int64) (*domain.Seat, error) {
	var s domain.Seat
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SeatRepository) MarkBooked(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Seat{}).
		Where("id = ?", id).
		Update("is_booked", true).Error
}

func (r *SeatRepository) DeleteByFlight(ctx context.Context, flightID int64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("flight_id = ?", flightID).
		Delete(&domain.Seat{})
	return tx.RowsAffected, tx.Error
}
