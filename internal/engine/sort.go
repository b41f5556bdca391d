package engine

import (
	"sort"

	"github.com/flight-search/flight-result-engine/internal/domain"
)

// SortFlights returns flights ordered for display.
//
// Sort options:
//   - SortByPrice (default): cheapest first
//   - SortByDuration: shortest first
//   - SortByDeparture: earliest departure first
//   - SortByArrival: earliest arrival first
//
// The sort is stable, so equal keys keep their raw order. An empty or unknown
// option falls back to SortByPrice. The input slice is never reordered.
func SortFlights(flights []domain.Flight, sortBy domain.SortOption) []domain.Flight {
	result := make([]domain.Flight, len(flights))
	copy(result, flights)

	if len(result) < 2 {
		return result
	}

	if !sortBy.IsValid() {
		sortBy = domain.SortByPrice
	}

	switch sortBy {
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case domain.SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Duration < result[j].Duration
		})
	case domain.SortByDeparture:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DepartureTime.Before(result[j].DepartureTime)
		})
	case domain.SortByArrival:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].ArrivalTime.Before(result[j].ArrivalTime)
		})
	}

	return result
}
