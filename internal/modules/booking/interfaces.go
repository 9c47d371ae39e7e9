package booking

import (
	"context"

	"skybook/internal/domain"
	"skybook/internal/pkg/midtrans"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByCode(ctx context.Context, code string, flightID int64) (*domain.Booking, error)
	MarkPaid(ctx context.Context, bookingID int64, method string, seatIDs []int64) error
	ListAll(ctx context.Context, search string, page, limit int) ([]domain.Booking, int64, error)
	ListByUser(ctx context.Context, userID int64, search string) ([]domain.Booking, error)
}

type FlightRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type PassengerRepository interface {
	Create(ctx context.Context, p *domain.Passenger) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// PaymentGateway is the outbound provider surface; the production
// implementation is the Midtrans Core API client.
type PaymentGateway interface {
	TokenizeCard(ctx context.Context, card midtrans.CardDetails) (string, error)
	Charge(ctx context.Context, req midtrans.ChargeRequest) (*midtrans.ChargeResponse, error)
}

// Notifier records in-app notifications for domain events.
type Notifier interface {
	Notify(ctx context.Context, userID int64, title, message string) error
}
