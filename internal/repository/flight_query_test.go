package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFlightPredicate_TwoOrMoreTermsAnd(t *testing.T) {
	p := BuildFlightPredicate(FlightSearch{
		Search:        "GA",
		DepartureCity: "Jakarta",
		SeatClass:     "economy",
	})

	expr, args := p.SQL()
	assert.Equal(t,
		"(LOWER(flights.code) LIKE ? AND LOWER(dep_airports.city) LIKE ? AND LOWER(flights.seat_class) LIKE ?)",
		expr)
	assert.Equal(t, []any{"%ga%", "%jakarta%", "%economy%"}, args)
}

func TestBuildFlightPredicate_ContinentGoesToOrGroup(t *testing.T) {
	p := BuildFlightPredicate(FlightSearch{Continent: "Asia"})

	expr, args := p.SQL()
	assert.Equal(t,
		"(LOWER(dep_airports.continent) LIKE ? OR LOWER(arr_airports.continent) LIKE ?)",
		expr)
	assert.Equal(t, []any{"%asia%", "%asia%"}, args)
}

func TestBuildFlightPredicate_LoneTermJoinsOrGroup(t *testing.T) {
	p := BuildFlightPredicate(FlightSearch{
		SeatClass: "business",
		Continent: "Asia",
	})

	expr, _ := p.SQL()
	assert.Equal(t,
		"(LOWER(flights.seat_class) LIKE ? OR LOWER(dep_airports.continent) LIKE ? OR LOWER(arr_airports.continent) LIKE ?)",
		expr)
}

func TestBuildFlightPredicate_BothGroups(t *testing.T) {
	p := BuildFlightPredicate(FlightSearch{
		Search:        "GA",
		DepartureCity: "Jakarta",
		Continent:     "Asia",
	})

	expr, args := p.SQL()
	assert.Equal(t,
		"(LOWER(flights.code) LIKE ? AND LOWER(dep_airports.city) LIKE ?)"+
			" AND (LOWER(dep_airports.continent) LIKE ? OR LOWER(arr_airports.continent) LIKE ?)",
		expr)
	assert.Len(t, args, 4)
}

func TestBuildFlightPredicate_EmptyMatchesEverything(t *testing.T) {
	p := BuildFlightPredicate(FlightSearch{})
	assert.True(t, p.Empty())

	expr, args := p.SQL()
	assert.Empty(t, expr)
	assert.Nil(t, args)
}

func TestBuildFlightPredicate_DateUsesEquality(t *testing.T) {
	p := BuildFlightPredicate(FlightSearch{
		DepartureCity: "Jakarta",
		Date:          "2026-09-01",
	})

	expr, args := p.SQL()
	assert.Contains(t, expr, "date(flights.departure_time) = ?")
	assert.Contains(t, args, "2026-09-01")
}

func TestFlightOrder(t *testing.T) {
	assert.Equal(t, "flights.price ASC", FlightOrder("cheapest"))
	assert.Equal(t, "flights.duration ASC", FlightOrder("duration"))
	assert.Equal(t, "flights.departure_time ASC", FlightOrder("earliest_departure"))
	assert.Equal(t, "flights.departure_time DESC", FlightOrder("latest_departure"))
	assert.Equal(t, "flights.arrival_time ASC", FlightOrder("earliest_arrival"))
	assert.Equal(t, "flights.arrival_time DESC", FlightOrder("latest_arrival"))

	// Unrecognized keys are ignored rather than rejected.
	assert.Empty(t, FlightOrder("priciest"))
	assert.Empty(t, FlightOrder(""))
}
