package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"skybook/internal/domain"
	"skybook/internal/pkg/midtrans"
	"skybook/internal/repository"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 77
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByCode(ctx context.Context, code string, flightID int64) (*domain.Booking, error) {
	args := m.Called(ctx, code, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) MarkPaid(ctx context.Context, bookingID int64, method string, seatIDs []int64) error {
	args := m.Called(ctx, bookingID, method, seatIDs)
	return args.Error(0)
}

func (m *MockBookingRepository) ListAll(ctx context.Context, search string, page, limit int) ([]domain.Booking, int64, error) {
	args := m.Called(ctx, search, page, limit)
	return args.Get(0).([]domain.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64, search string) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, search)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

type MockPassengerRepository struct {
	mock.Mock
}

func (m *MockPassengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) TokenizeCard(ctx context.Context, card midtrans.CardDetails) (string, error) {
	args := m.Called(ctx, card)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) Charge(ctx context.Context, req midtrans.ChargeRequest) (*midtrans.ChargeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*midtrans.ChargeResponse), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, userID int64, title, message string) error {
	args := m.Called(ctx, userID, title, message)
	return args.Error(0)
}

func newTestService() (*Service, *MockBookingRepository, *MockFlightRepository, *MockPassengerRepository, *MockUserRepository, *MockGateway, *MockNotifier) {
	bookings := new(MockBookingRepository)
	flights := new(MockFlightRepository)
	passengers := new(MockPassengerRepository)
	users := new(MockUserRepository)
	gateway := new(MockGateway)
	notifier := new(MockNotifier)
	svc := NewService(bookings, flights, passengers, users, gateway, notifier)
	return svc, bookings, flights, passengers, users, gateway, notifier
}

func TestCreate_FreezesAmountAtEffectivePrice(t *testing.T) {
	svc, bookings, flights, passengers, _, _, _ := newTestService()

	flights.On("GetByID", mock.Anything, int64(1)).Return(&domain.Flight{ID: 1, Price: 400}, nil)
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	passengers.On("Create", mock.Anything, mock.AnythingOfType("*domain.Passenger")).Return(nil)

	b, err := svc.Create(context.Background(), 9, CreateBookingRequest{
		FlightID:   1,
		Adult:      1,
		Child:      1,
		Infant:     1,
		Passengers: []PassengerInput{{FullName: "A"}, {FullName: "B"}, {FullName: "C"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1200.0, b.Amount) // 400 * 3 travelers
	assert.Equal(t, domain.BookingUnpaid, b.Status)
	assert.Len(t, b.Code, 12)

	passengers.AssertNumberOfCalls(t, "Create", 3)
}

func TestCreate_RejectsZeroCounts(t *testing.T) {
	svc, bookings, flights, _, _, _, _ := newTestService()

	flights.On("GetByID", mock.Anything, int64(1)).Return(&domain.Flight{ID: 1, Price: 400}, nil)

	for _, req := range []CreateBookingRequest{
		{FlightID: 1, Adult: 0, Child: 1, Infant: 1},
		{FlightID: 1, Adult: 1, Child: 0, Infant: 1},
		{FlightID: 1, Adult: 1, Child: 1, Infant: 0},
	} {
		_, err := svc.Create(context.Background(), 9, req)
		assert.ErrorIs(t, err, ErrEmptyParty)
	}

	bookings.AssertNotCalled(t, "Create")
}

func TestCreate_PassengerCountMismatch(t *testing.T) {
	svc, bookings, flights, _, _, _, _ := newTestService()

	flights.On("GetByID", mock.Anything, int64(1)).Return(&domain.Flight{ID: 1, Price: 400}, nil)

	_, err := svc.Create(context.Background(), 9, CreateBookingRequest{
		FlightID:   1,
		Adult:      1,
		Child:      1,
		Infant:     1,
		Passengers: []PassengerInput{{FullName: "A"}, {FullName: "B"}},
	})
	assert.ErrorIs(t, err, ErrPartyMismatch)

	bookings.AssertNotCalled(t, "Create")
}

func TestCreate_RetriesOnCodeCollision(t *testing.T) {
	svc, bookings, flights, passengers, _, _, _ := newTestService()

	flights.On("GetByID", mock.Anything, int64(1)).Return(&domain.Flight{ID: 1, Price: 400}, nil)
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Return(gorm.ErrDuplicatedKey).Once()
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Return(nil).Once()
	passengers.On("Create", mock.Anything, mock.AnythingOfType("*domain.Passenger")).Return(nil)

	b, err := svc.Create(context.Background(), 9, CreateBookingRequest{
		FlightID:   1,
		Adult:      1,
		Child:      1,
		Infant:     1,
		Passengers: []PassengerInput{{FullName: "A"}, {FullName: "B"}, {FullName: "C"}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, b.Code)

	bookings.AssertNumberOfCalls(t, "Create", 2)
}

func TestCreate_MissingFlight(t *testing.T) {
	svc, _, flights, _, _, _, _ := newTestService()

	flights.On("GetByID", mock.Anything, int64(1)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), 9, CreateBookingRequest{FlightID: 1, Adult: 1})
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func unpaidBooking() *domain.Booking {
	return &domain.Booking{
		ID:       77,
		Code:     "AB12CD34EF56",
		UserID:   9,
		FlightID: 1,
		Amount:   1200,
		Status:   domain.BookingUnpaid,
	}
}

func gopayRequest() PayBookingRequest {
	return PayBookingRequest{
		BookingCode:   "AB12CD34EF56",
		FlightID:      1,
		PaymentMethod: MethodGopay,
		SeatIDs:       []int64{3, 4},
	}
}

func TestPay_ChargesThenMarksPaid(t *testing.T) {
	svc, bookings, _, _, users, gateway, notifier := newTestService()

	bookings.On("GetByCode", mock.Anything, "AB12CD34EF56", int64(1)).Return(unpaidBooking(), nil)
	users.On("GetByID", mock.Anything, int64(9)).Return(&domain.User{ID: 9, Email: "a@b.c"}, nil)
	gateway.On("Charge", mock.Anything, mock.MatchedBy(func(r midtrans.ChargeRequest) bool {
		return r.PaymentType == "gopay" &&
			r.TransactionDetails.OrderID == "AB12CD34EF56" &&
			r.TransactionDetails.GrossAmount == 1200
	})).Return(&midtrans.ChargeResponse{TransactionStatus: "settlement"}, nil)
	bookings.On("MarkPaid", mock.Anything, int64(77), MethodGopay, []int64{3, 4}).Return(nil)
	notifier.On("Notify", mock.Anything, int64(9), "Payment received", mock.AnythingOfType("string")).Return(nil)

	b, err := svc.Pay(context.Background(), 9, gopayRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.BookingPaid, b.Status)
	assert.Equal(t, MethodGopay, b.PaymentMethod)

	bookings.AssertExpectations(t)
	gateway.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestPay_DeclinedChargeLeavesBookingUnpaid(t *testing.T) {
	svc, bookings, _, _, users, gateway, _ := newTestService()

	bookings.On("GetByCode", mock.Anything, "AB12CD34EF56", int64(1)).Return(unpaidBooking(), nil)
	users.On("GetByID", mock.Anything, int64(9)).Return(&domain.User{ID: 9}, nil)
	gateway.On("Charge", mock.Anything, mock.Anything).Return(nil, errors.New("status 202: declined"))

	_, err := svc.Pay(context.Background(), 9, gopayRequest())
	assert.ErrorIs(t, err, ErrChargeFailed)

	bookings.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPay_InvalidMethodNeverReachesGateway(t *testing.T) {
	svc, bookings, _, _, _, gateway, _ := newTestService()

	req := gopayRequest()
	req.BankName = "bca" // foreign field for gopay

	_, err := svc.Pay(context.Background(), 9, req)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	gateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything)
	bookings.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything, mock.Anything)
}

func TestPay_TokenizesCardFirst(t *testing.T) {
	svc, bookings, _, _, users, gateway, notifier := newTestService()

	bookings.On("GetByCode", mock.Anything, "AB12CD34EF56", int64(1)).Return(unpaidBooking(), nil)
	users.On("GetByID", mock.Anything, int64(9)).Return(&domain.User{ID: 9}, nil)
	gateway.On("TokenizeCard", mock.Anything, midtrans.CardDetails{
		Number: "4811111111111114", CVV: "123", ExpMonth: "12", ExpYear: "2028",
	}).Return("tok-1", nil)
	gateway.On("Charge", mock.Anything, mock.MatchedBy(func(r midtrans.ChargeRequest) bool {
		return r.PaymentType == "credit_card"
	})).Return(&midtrans.ChargeResponse{}, nil)
	bookings.On("MarkPaid", mock.Anything, int64(77), MethodCreditCard, []int64(nil)).Return(nil)
	notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req := PayBookingRequest{
		BookingCode:   "AB12CD34EF56",
		FlightID:      1,
		PaymentMethod: MethodCreditCard,
		CardNumber:    "4811111111111114",
		CardCVV:       "123",
		CardExpiry:    "12/28",
	}
	_, err := svc.Pay(context.Background(), 9, req)
	require.NoError(t, err)

	gateway.AssertExpectations(t)
}

func TestPay_AlreadyPaid(t *testing.T) {
	svc, bookings, _, _, _, _, _ := newTestService()

	paid := unpaidBooking()
	paid.Status = domain.BookingPaid
	bookings.On("GetByCode", mock.Anything, "AB12CD34EF56", int64(1)).Return(paid, nil)

	_, err := svc.Pay(context.Background(), 9, gopayRequest())
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestPay_SomeoneElsesBookingIsNotFound(t *testing.T) {
	svc, bookings, _, _, _, _, _ := newTestService()

	bookings.On("GetByCode", mock.Anything, "AB12CD34EF56", int64(1)).Return(unpaidBooking(), nil)

	_, err := svc.Pay(context.Background(), 555, gopayRequest())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestPay_SeatConflictSurfaces(t *testing.T) {
	svc, bookings, _, _, users, gateway, _ := newTestService()

	bookings.On("GetByCode", mock.Anything, "AB12CD34EF56", int64(1)).Return(unpaidBooking(), nil)
	users.On("GetByID", mock.Anything, int64(9)).Return(&domain.User{ID: 9}, nil)
	gateway.On("Charge", mock.Anything, mock.Anything).Return(&midtrans.ChargeResponse{}, nil)
	bookings.On("MarkPaid", mock.Anything, int64(77), MethodGopay, []int64{3, 4}).
		Return(repository.ErrSeatTaken)

	_, err := svc.Pay(context.Background(), 9, gopayRequest())
	assert.ErrorIs(t, err, ErrSeatTaken)
}
