package engine

import (
	"sync"

	"github.com/flight-search/flight-result-engine/internal/domain"
)

// ResultStore owns the raw results and live filters of one search session.
//
// Mutations are serialized and every read sees a whole state. Derived
// outputs are recomputed on each read from the current (flights, filters)
// pair; use Snapshot when several outputs must agree with each other.
type ResultStore struct {
	mu sync.RWMutex

	flights  []domain.Flight
	carriers map[string]string

	availableAirlines []domain.AirlineFacet
	priceRange        domain.PriceRange
	filters           domain.FilterConfiguration

	params      domain.SearchParams
	hasSearched bool
	isLoading   bool
	err         string
}

// NewResultStore creates an empty store holding the static filter defaults.
func NewResultStore() *ResultStore {
	return &ResultStore{
		carriers:          map[string]string{},
		availableAirlines: []domain.AirlineFacet{},
		priceRange:        domain.DefaultPriceRange,
		filters:           domain.DefaultFilters(),
	}
}

// SetSearchResults replaces the raw list and carrier lookup, recomputes the
// facets and reseeds the filters to accept everything in the new result set.
// No filter choice survives from the previous search.
func (s *ResultStore) SetSearchResults(flights []domain.Flight, carriers map[string]string) {
	raw := append([]domain.Flight(nil), flights...)
	lookup := make(map[string]string, len(carriers))
	for code, name := range carriers {
		lookup[code] = name
	}

	facets := AirlineFacets(raw)
	bounds := PriceBounds(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.flights = raw
	s.carriers = lookup
	s.availableAirlines = facets
	s.priceRange = bounds
	s.filters = seedFilters(facets, bounds)
	s.hasSearched = true
	s.err = ""
}

// UpdateFilter applies each update in order. Values are stored as given.
func (s *ResultStore) UpdateFilter(updates ...FilterUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range updates {
		if u != nil {
			u.apply(&s.filters)
		}
	}
}

// ResetFilters reseeds the filters from the current facets.
func (s *ResultStore) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = seedFilters(s.availableAirlines, s.priceRange)
}

// ClearSearch drops the current result set and returns the store to its
// initial state. The loading flag is left to the caller.
func (s *ResultStore) ClearSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flights = nil
	s.carriers = map[string]string{}
	s.availableAirlines = []domain.AirlineFacet{}
	s.priceRange = domain.DefaultPriceRange
	s.filters = domain.DefaultFilters()
	s.params = domain.SearchParams{}
	s.hasSearched = false
	s.err = ""
}

// FilteredResults returns the raw flights accepted by the current filters
// in raw order.
func (s *ResultStore) FilteredResults() []domain.Flight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Filter(s.flights, s.filters)
}

// ChartData returns the per-airline chart points of the filtered flights.
func (s *ResultStore) ChartData() []domain.ChartPoint {
	return ChartData(s.FilteredResults())
}

// CheapestFlightID returns the cheapest filtered flight. ok is false when
// nothing passes the filters.
func (s *ResultStore) CheapestFlightID() (id string, ok bool) {
	return CheapestFlightID(s.FilteredResults())
}

// Snapshot derives every output from one consistent state.
func (s *ResultStore) Snapshot() Derived {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Derive(s.flights, s.filters)
}

// State is a consistent copy of everything a store holds plus its
// derived outputs.
type State struct {
	Derived

	AvailableAirlines []domain.AirlineFacet
	PriceRange        domain.PriceRange
	Filters           domain.FilterConfiguration
	Params            domain.SearchParams
	RawCount          int
	HasSearched       bool
	IsLoading         bool
	Error             string
}

// State reads the whole store under one lock.
func (s *ResultStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return State{
		Derived:           Derive(s.flights, s.filters),
		AvailableAirlines: append([]domain.AirlineFacet{}, s.availableAirlines...),
		PriceRange:        s.priceRange,
		Filters:           s.filters.Clone(),
		Params:            s.params,
		RawCount:          len(s.flights),
		HasSearched:       s.hasSearched,
		IsLoading:         s.isLoading,
		Error:             s.err,
	}
}

// SetLoading records whether a search is in flight.
func (s *ResultStore) SetLoading(loading bool) {
	s.mu.Lock()
	s.isLoading = loading
	s.mu.Unlock()
}

// SetError records the message of a failed search; "" clears it.
func (s *ResultStore) SetError(msg string) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
}

// SetSearchParams records the parameters of the search in progress.
func (s *ResultStore) SetSearchParams(params domain.SearchParams) {
	s.mu.Lock()
	s.params = params
	s.mu.Unlock()
}

// AvailableAirlines returns a copy of the airline facets.
func (s *ResultStore) AvailableAirlines() []domain.AirlineFacet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.AirlineFacet{}, s.availableAirlines...)
}

// PriceRange returns the observed price bounds of the raw list.
func (s *ResultStore) PriceRange() domain.PriceRange {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.priceRange
}

// Filters returns a copy of the live filter configuration.
func (s *ResultStore) Filters() domain.FilterConfiguration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filters.Clone()
}

func (s *ResultStore) HasSearched() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hasSearched
}

func (s *ResultStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.isLoading
}

func (s *ResultStore) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.err
}

func (s *ResultStore) SearchParams() domain.SearchParams {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.params
}

// RawCount returns the size of the unfiltered result set.
func (s *ResultStore) RawCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.flights)
}

// Carriers returns a copy of the carrier lookup of the current search.
func (s *ResultStore) Carriers() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.carriers))
	for code, name := range s.carriers {
		out[code] = name
	}
	return out
}

// seedFilters builds the "accept all" configuration for the given facets.
func seedFilters(facets []domain.AirlineFacet, bounds domain.PriceRange) domain.FilterConfiguration {
	cfg := domain.DefaultFilters()
	cfg.Airlines = AirlineCodes(facets)
	cfg.PriceRange = bounds
	return cfg
}
