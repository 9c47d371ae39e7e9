package repository

import "strings"

// FlightSearch carries the optional search/filter/sort parameters of the
// flight listing endpoint. Empty fields are simply not part of the query.
type FlightSearch struct {
	Search        string
	DepartureCity string
	ArrivalCity   string
	SeatClass     string
	Continent     string
	Date          string
	SortBy        string
}

// Cond is a leaf field-match condition: a SQL expression with one argument.
type Cond struct {
	Expr string
	Arg  any
}

func containsFold(column, value string) Cond {
	return Cond{
		Expr: "LOWER(" + column + ") LIKE ?",
		Arg:  "%" + strings.ToLower(value) + "%",
	}
}

func dateEq(column, value string) Cond {
	return Cond{Expr: "date(" + column + ") = ?", Arg: value}
}

// Predicate is an immutable tagged AND/OR node over leaf conditions. The
// zero value matches everything.
type Predicate struct {
	op     string
	conds  []Cond
	groups []Predicate
}

func And(conds ...Cond) Predicate { return Predicate{op: "AND", conds: conds} }
func Or(conds ...Cond) Predicate  { return Predicate{op: "OR", conds: conds} }

// AllOf nests predicates under a single AND.
func AllOf(groups ...Predicate) Predicate { return Predicate{op: "AND", groups: groups} }

func (p Predicate) Empty() bool {
	if len(p.conds) > 0 {
		return false
	}
	for _, g := range p.groups {
		if !g.Empty() {
			return false
		}
	}
	return true
}

// SQL renders the predicate to a WHERE fragment plus its arguments. The
// same fragment drives both the listing and the count query, so the two
// can never diverge.
func (p Predicate) SQL() (string, []any) {
	var parts []string
	var args []any

	for _, c := range p.conds {
		parts = append(parts, c.Expr)
		args = append(args, c.Arg)
	}
	for _, g := range p.groups {
		if g.Empty() {
			continue
		}
		expr, sub := g.SQL()
		parts = append(parts, "("+expr+")")
		args = append(args, sub...)
	}

	if len(parts) == 0 {
		return "", nil
	}
	return strings.Join(parts, " "+p.op+" "), args
}

// Joined column aliases used by the flight search; see FlightRepository.
const (
	colFlightCode    = "flights.code"
	colSeatClass     = "flights.seat_class"
	colDepartureTime = "flights.departure_time"
	colDepCity       = "dep_airports.city"
	colArrCity       = "arr_airports.city"
	colDepContinent  = "dep_airports.continent"
	colArrContinent  = "arr_airports.continent"
)

// BuildFlightPredicate composes the search parameters into one predicate.
//
// Terms from {search, departure, arrival, seat class, date} are combined
// with AND when two or more of them are supplied; with at most one of them
// they fall into the OR group instead. Continent always contributes a
// departure-continent and an arrival-continent term to the OR group. This
// asymmetry is deliberate, inherited policy — see DESIGN.md before
// "fixing" it.
func BuildFlightPredicate(s FlightSearch) Predicate {
	var primary []Cond
	if s.Search != "" {
		primary = append(primary, containsFold(colFlightCode, s.Search))
	}
	if s.DepartureCity != "" {
		primary = append(primary, containsFold(colDepCity, s.DepartureCity))
	}
	if s.ArrivalCity != "" {
		primary = append(primary, containsFold(colArrCity, s.ArrivalCity))
	}
	if s.SeatClass != "" {
		primary = append(primary, containsFold(colSeatClass, s.SeatClass))
	}
	if s.Date != "" {
		primary = append(primary, dateEq(colDepartureTime, s.Date))
	}

	var anded, ored []Cond
	if len(primary) >= 2 {
		anded = primary
	} else {
		ored = primary
	}
	if s.Continent != "" {
		ored = append(ored,
			containsFold(colDepContinent, s.Continent),
			containsFold(colArrContinent, s.Continent),
		)
	}

	return AllOf(And(anded...), Or(ored...))
}

// FlightOrder maps a sort key to an ORDER BY clause. Unrecognized keys
// are ignored (no error), falling back to insertion order.
func FlightOrder(sortBy string) string {
	switch sortBy {
	case "cheapest":
		return "flights.price ASC"
	case "duration":
		return "flights.duration ASC"
	case "earliest_departure":
		return "flights.departure_time ASC"
	case "latest_departure":
		return "flights.departure_time DESC"
	case "earliest_arrival":
		return "flights.arrival_time ASC"
	case "latest_arrival":
		return "flights.arrival_time DESC"
	default:
		return ""
	}
}
