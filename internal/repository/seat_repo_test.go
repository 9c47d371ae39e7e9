package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatRepository_BulkCreate(t *testing.T) {
	db := testDB(t)
	fx := seedGeo(t, db)
	repo := NewSeatRepository(db)

	departs := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	f := addFlight(t, db, fx, "GA-100", "economy", 500, fx.nycTerminal.ID, fx.tyoTerminal.ID, departs)

	created, err := repo.BulkCreate(context.Background(), f.ID, 3)
	require.NoError(t, err)
	assert.Len(t, created, 18)

	seats, err := repo.ListByFlight(context.Background(), f.ID)
	require.NoError(t, err)
	require.Len(t, seats, 18)

	assert.Equal(t, "A-1", seats[0].SeatNumber)
	assert.Equal(t, "F-1", seats[5].SeatNumber)
	assert.Equal(t, "A-2", seats[6].SeatNumber)
	assert.Equal(t, "F-3", seats[17].SeatNumber)

	for _, s := range seats {
		assert.False(t, s.IsBooked)
		assert.Equal(t, f.ID, s.FlightID)
	}
}

func TestSeatRepository_MarkBooked(t *testing.T) {
	db := testDB(t)
	fx := seedGeo(t, db)
	repo := NewSeatRepository(db)

	departs := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	f := addFlight(t, db, fx, "GA-100", "economy", 500, fx.nycTerminal.ID, fx.tyoTerminal.ID, departs)
	created, err := repo.BulkCreate(context.Background(), f.ID, 1)
	require.NoError(t, err)

	require.NoError(t, repo.MarkBooked(context.Background(), created[0].ID))

	got, err := repo.GetByID(context.Background(), created[0].ID)
	require.NoError(t, err)
	assert.True(t, got.IsBooked)
}

func TestSeatRepository_DeleteByFlight(t *testing.T) {
	db := testDB(t)
	fx := seedGeo(t, db)
	repo := NewSeatRepository(db)

	departs := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	f := addFlight(t, db, fx, "GA-100", "economy", 500, fx.nycTerminal.ID, fx.tyoTerminal.ID, departs)
	_, err := repo.BulkCreate(context.Background(), f.ID, 2)
	require.NoError(t, err)

	n, err := repo.DeleteByFlight(context.Background(), f.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 12, n)

	seats, err := repo.ListByFlight(context.Background(), f.ID)
	require.NoError(t, err)
	assert.Empty(t, seats)
}
