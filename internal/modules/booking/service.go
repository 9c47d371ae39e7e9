package booking

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"skybook/internal/domain"
	"skybook/internal/pkg/midtrans"
	"skybook/internal/pkg/random"
	"skybook/internal/repository"
)

const codeLength = 12

// maxCodeRetries bounds the regenerate-on-collision loop for booking codes.
const maxCodeRetries = 3

type Service struct {
	bookings   BookingRepository
	flights    FlightRepository
	passengers PassengerRepository
	users      UserRepository
	gateway    PaymentGateway
	notifier   Notifier
}

func NewService(
	bookings BookingRepository,
	flights FlightRepository,
	passengers PassengerRepository,
	users UserRepository,
	gateway PaymentGateway,
	notifier Notifier,
) *Service {
	return &Service{
		bookings:   bookings,
		flights:    flights,
		passengers: passengers,
		users:      users,
		gateway:    gateway,
		notifier:   notifier,
	}
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create freezes the booking amount at the flight's current effective price
// times the party size; later promotion changes never touch it. The random
// booking code is regenerated on the rare unique-key collision.
func (s *Service) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	f, err := s.flights.GetByID(ctx, req.FlightID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}

	if req.Adult < 1 || req.Child < 1 || req.Infant < 1 {
		return nil, ErrEmptyParty
	}
	partySize := req.Adult + req.Child + req.Infant
	if len(req.Passengers) != partySize {
		return nil, ErrPartyMismatch
	}

	b := &domain.Booking{
		UserID:   userID,
		FlightID: f.ID,
		Adult:    req.Adult,
		Child:    req.Child,
		Infant:   req.Infant,
		Amount:   f.Price * float64(partySize),
		Status:   domain.BookingUnpaid,
	}

	for attempt := 0; ; attempt++ {
		b.Code = random.Code(codeLength)
		err = s.bookings.Create(ctx, b)
		if err == nil {
			break
		}
		if isDuplicateKey(err) && attempt < maxCodeRetries {
			continue
		}
		return nil, err
	}

	for _, p := range req.Passengers {
		err := s.passengers.Create(ctx, &domain.Passenger{
			BookingID:      b.ID,
			Title:          p.Title,
			FullName:       p.FullName,
			FamilyName:     p.FamilyName,
			BornDate:       p.BornDate,
			Citizen:        p.Citizen,
			IdentityNumber: p.IdentityNumber,
			IssuingCountry: p.IssuingCountry,
			ValidUntil:     p.ValidUntil,
		})
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Pay charges the provider first and only then marks the booking paid; a
// declined or failed charge leaves the booking Unpaid and the seats free.
func (s *Service) Pay(ctx context.Context, userID int64, req PayBookingRequest) (*domain.Booking, error) {
	if err := validateMethod(req); err != nil {
		return nil, err
	}

	b, err := s.bookings.GetByCode(ctx, req.BookingCode, req.FlightID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrBookingNotFound
	}
	if b.Status == domain.BookingPaid {
		return nil, ErrAlreadyPaid
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var tokenID string
	if req.PaymentMethod == MethodCreditCard {
		month, year, _ := splitExpiry(req.CardExpiry)
		tokenID, err = s.gateway.TokenizeCard(ctx, midtrans.CardDetails{
			Number:   req.CardNumber,
			CVV:      req.CardCVV,
			ExpMonth: month,
			ExpYear:  year,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrChargeFailed, err)
		}
	}

	charge := midtrans.NewChargeRequest(
		b.Code,
		int64(b.Amount),
		midtrans.CustomerDetails{FirstName: u.FullName, Email: u.Email, Phone: u.PhoneNumber},
		payloadFor(req, tokenID),
	)
	if _, err := s.gateway.Charge(ctx, charge); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChargeFailed, err)
	}

	if err := s.bookings.MarkPaid(ctx, b.ID, req.PaymentMethod, req.SeatIDs); err != nil {
		// The charge went through but the local state did not; surface the
		// conflict so support can reconcile against the provider order id.
		if errors.Is(err, repository.ErrSeatTaken) {
			return nil, ErrSeatTaken
		}
		return nil, err
	}

	if s.notifier != nil {
		err := s.notifier.Notify(ctx, userID,
			"Payment received",
			fmt.Sprintf("Your booking %s has been paid.", b.Code))
		if err != nil {
			log.Printf("payment notification for booking %s: %v", b.Code, err)
		}
	}

	b.Status = domain.BookingPaid
	b.PaymentMethod = req.PaymentMethod
	return b, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64, search string) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID, search)
}

func (s *Service) ListAll(ctx context.Context, search string, page, limit int) ([]domain.Booking, int64, error) {
	return s.bookings.ListAll(ctx, search, page, limit)
}
