package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"skybook/internal/domain"
)

var ErrSeatTaken = errors.New("seat already booked")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetByCode(ctx context.Context, code string, flightID int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Where("code = ? AND flight_id = ?", code, flightID).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// MarkPaid flips the booking to Paid, records the payment method and flags
// the reserved seats, all in one transaction: a seat is never marked booked
// without a paid booking and vice versa. Seats must belong to the booking's
// flight and still be free.
func (r *BookingRepository) MarkPaid(ctx context.Context, bookingID int64, method string, seatIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&domain.Booking{}).
			Where("id = ?", bookingID).
			Updates(map[string]any{
				"status":         domain.BookingPaid,
				"payment_method": method,
			}).Error
		if err != nil {
			return err
		}

		if len(seatIDs) == 0 {
			return nil
		}

		var booking domain.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			return err
		}

		res := tx.Model(&domain.Seat{}).
			Where("id IN ? AND flight_id = ? AND is_booked = ?", seatIDs, booking.FlightID, false).
			Update("is_booked", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(seatIDs)) {
			return ErrSeatTaken
		}
		return nil
	})
}

// ListAll returns a page of bookings, optionally narrowed by flight code.
func (r *BookingRepository) ListAll(ctx context.Context, search string, page, limit int) ([]domain.Booking, int64, error) {
	scope := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&domain.Booking{}).
			Joins("JOIN flights ON flights.id = bookings.flight_id")
		if search != "" {
			c := containsFold(colFlightCode, search)
			q = q.Where(c.Expr, c.Arg)
		}
		return q
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []domain.Booking
	err := scope().
		Preload("Flight.Airline").
		Preload("Flight.DepartureTerminal.Airport").
		Preload("Flight.ArrivalTerminal.Airport").
		Preload("Passengers").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// ListByUser returns the requesting user's bookings, optionally narrowed by
// an OR-combined match on flight code or either route city.
func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, search string) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Joins("JOIN flights ON flights.id = bookings.flight_id").
		Joins("JOIN terminals AS dep_terminals ON dep_terminals.id = flights.departure_terminal_id").
		Joins("JOIN airports AS dep_airports ON dep_airports.id = dep_terminals.airport_id").
		Joins("JOIN terminals AS arr_terminals ON arr_terminals.id = flights.arrival_terminal_id").
		Joins("JOIN airports AS arr_airports ON arr_airports.id = arr_terminals.airport_id").
		Where("bookings.user_id = ?", userID)

	if search != "" {
		p := Or(
			containsFold(colFlightCode, search),
			containsFold(colDepCity, search),
			containsFold(colArrCity, search),
		)
		expr, args := p.SQL()
		q = q.Where(expr, args...)
	}

	var bookings []domain.Booking
	err := q.
		Preload("Flight.Airline").
		Preload("Flight.DepartureTerminal.Airport").
		Preload("Flight.ArrivalTerminal.Airport").
		Preload("Passengers").
		Find(&bookings).Error
	return bookings, err
}
