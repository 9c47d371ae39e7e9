package flight

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"skybook/internal/domain"
	"skybook/internal/repository"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) CreateWithSeats(ctx context.Context, f *domain.Flight, totalRows int) error {
	args := m.Called(ctx, f, totalRows)
	if f != nil {
		f.ID = 42
	}
	return args.Error(0)
}

func (m *MockFlightRepository) Update(ctx context.Context, f *domain.Flight) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlightRepository) Search(ctx context.Context, s repository.FlightSearch, page, limit int) ([]domain.Flight, int64, error) {
	args := m.Called(ctx, s, page, limit)
	return args.Get(0).([]domain.Flight), args.Get(1).(int64), args.Error(2)
}

type MockSeatRepository struct {
	mock.Mock
}

func (m *MockSeatRepository) ListByFlight(ctx context.Context, flightID int64) ([]domain.Seat, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).([]domain.Seat), args.Error(1)
}

type MockAirlineRepository struct {
	mock.Mock
}

func (m *MockAirlineRepository) GetByID(ctx context.Context, id int64) (*domain.Airline, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airline), args.Error(1)
}

type MockTerminalRepository struct {
	mock.Mock
}

func (m *MockTerminalRepository) GetByID(ctx context.Context, id int64) (*domain.Terminal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Terminal), args.Error(1)
}

type MockPromotionRepository struct {
	mock.Mock
}

func (m *MockPromotionRepository) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Promotion), args.Error(1)
}

func newTestService() (*Service, *MockFlightRepository, *MockSeatRepository, *MockAirlineRepository, *MockTerminalRepository, *MockPromotionRepository) {
	flights := new(MockFlightRepository)
	seats := new(MockSeatRepository)
	airlines := new(MockAirlineRepository)
	terminals := new(MockTerminalRepository)
	promos := new(MockPromotionRepository)
	return NewService(flights, seats, airlines, terminals, promos), flights, seats, airlines, terminals, promos
}

func validRequest() UpsertFlightRequest {
	departs := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	return UpsertFlightRequest{
		FlightCode:          "GA-100",
		SeatClass:           "economy",
		Price:               500,
		AirlineID:           1,
		DepartureTerminalID: 2,
		ArrivalTerminalID:   3,
		DepartureTime:       departs,
		ArrivalTime:         departs.Add(7 * time.Hour),
		TotalRows:           3,
	}
}

func TestCreate_RejectsInvertedSchedule(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	req := validRequest()
	req.ArrivalTime = req.DepartureTime.Add(-time.Hour)

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestCreate_MissingAirline(t *testing.T) {
	svc, _, _, airlines, _, _ := newTestService()

	airlines.On("GetByID", mock.Anything, int64(1)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAirlineNotFound)
}

func TestCreate_MissingTerminal(t *testing.T) {
	svc, _, _, airlines, terminals, _ := newTestService()

	airlines.On("GetByID", mock.Anything, int64(1)).Return(&domain.Airline{ID: 1}, nil)
	terminals.On("GetByID", mock.Anything, int64(2)).Return(&domain.Terminal{ID: 2}, nil)
	terminals.On("GetByID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTerminalNotFound)
}

func TestCreate_BuildsSeatMapAndDuration(t *testing.T) {
	svc, flights, _, airlines, terminals, _ := newTestService()

	airlines.On("GetByID", mock.Anything, int64(1)).Return(&domain.Airline{ID: 1}, nil)
	terminals.On("GetByID", mock.Anything, mock.AnythingOfType("int64")).Return(&domain.Terminal{}, nil)
	flights.On("CreateWithSeats", mock.Anything, mock.AnythingOfType("*domain.Flight"), 3).Return(nil)

	f, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 420, f.Duration) // 7 hours
	assert.Equal(t, 500.0, f.Price)
	assert.Equal(t, 500.0, f.BasePrice)

	flights.AssertExpectations(t)
}

func TestCreate_AppliesLivePromotion(t *testing.T) {
	svc, flights, _, airlines, terminals, promos := newTestService()

	airlines.On("GetByID", mock.Anything, int64(1)).Return(&domain.Airline{ID: 1}, nil)
	terminals.On("GetByID", mock.Anything, mock.AnythingOfType("int64")).Return(&domain.Terminal{}, nil)
	promos.On("GetByID", mock.Anything, int64(5)).Return(&domain.Promotion{
		ID:       5,
		Discount: 0.2,
		EndDate:  time.Now().Add(24 * time.Hour),
	}, nil)
	flights.On("CreateWithSeats", mock.Anything, mock.AnythingOfType("*domain.Flight"), 3).Return(nil)

	req := validRequest()
	pid := int64(5)
	req.PromotionID = &pid

	f, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.InDelta(t, 400.0, f.Price, 1e-9)
	assert.Equal(t, 500.0, f.BasePrice)
}

func TestCreate_DuplicateCode(t *testing.T) {
	svc, flights, _, airlines, terminals, _ := newTestService()

	airlines.On("GetByID", mock.Anything, int64(1)).Return(&domain.Airline{ID: 1}, nil)
	terminals.On("GetByID", mock.Anything, mock.AnythingOfType("int64")).Return(&domain.Terminal{}, nil)
	flights.On("CreateWithSeats", mock.Anything, mock.AnythingOfType("*domain.Flight"), 3).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDuplicateCode)
}

func TestUpdate_RecomputesDuration(t *testing.T) {
	svc, flights, _, airlines, terminals, _ := newTestService()

	airlines.On("GetByID", mock.Anything, int64(1)).Return(&domain.Airline{ID: 1}, nil)
	terminals.On("GetByID", mock.Anything, mock.AnythingOfType("int64")).Return(&domain.Terminal{}, nil)
	flights.On("GetByID", mock.Anything, int64(42)).Return(&domain.Flight{ID: 42, Duration: 420}, nil)
	flights.On("Update", mock.Anything, mock.AnythingOfType("*domain.Flight")).Return(nil)

	req := validRequest()
	req.ArrivalTime = req.DepartureTime.Add(5 * time.Hour)

	f, err := svc.Update(context.Background(), 42, req)
	require.NoError(t, err)
	assert.Equal(t, 300, f.Duration)
}

func TestGetDetail_MissingFlight(t *testing.T) {
	svc, flights, _, _, _, _ := newTestService()

	flights.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetDetail(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
