package engine

import "github.com/flight-search/flight-result-engine/internal/domain"

// CheapestFlightID returns the ID of the lowest-priced flight.
// The first flight wins a tie. ok is false when flights is empty.
func CheapestFlightID(flights []domain.Flight) (id string, ok bool) {
	if len(flights) == 0 {
		return "", false
	}

	best := 0
	for i := 1; i < len(flights); i++ {
		// strict: a later equal price never replaces the holder
		if flights[i].Price < flights[best].Price {
			best = i
		}
	}
	return flights[best].ID, true
}

// Derived bundles every output computed from one (flights, filters) pair.
type Derived struct {
	// Flights is the filtered list in raw order
	Flights []domain.Flight

	// CheapestFlightID is empty when HasCheapest is false
	CheapestFlightID string
	HasCheapest      bool

	// Chart is the per-airline aggregation of Flights
	Chart []domain.ChartPoint
}

// Derive filters once and computes the cheapest flight and chart data
// from that single filtered list.
func Derive(flights []domain.Flight, cfg domain.FilterConfiguration) Derived {
	filtered := Filter(flights, cfg)
	id, ok := CheapestFlightID(filtered)

	return Derived{
		Flights:          filtered,
		CheapestFlightID: id,
		HasCheapest:      ok,
		Chart:            ChartData(filtered),
	}
}
