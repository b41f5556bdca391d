// Package engine derives filtered flight lists, facets, chart data and the
// cheapest offer from one search result set and its filter configuration.
//
// Every function in this package is pure: given the same flights and
// configuration it returns the same output and never mutates its input.
// ResultStore wraps those functions with the per-session mutable state.
package engine

import (
	"time"

	"github.com/flight-search/flight-result-engine/internal/domain"
)

// Accepts reports whether a flight passes every active filter of cfg.
//
// The checks are conjunctive and their order does not change the outcome:
//   - DirectOnly rejects any flight with stops
//   - the stop category min(StopCount, 2) must be in cfg.Stops
//   - price must lie in cfg.PriceRange, both ends inclusive
//   - duration must not exceed cfg.MaxDuration unless it is 0
//   - carrier code must be in cfg.Airlines unless the list is empty
//   - the departure time slot must be in cfg.DepartureTimes
//
// A flight without a departure time is rejected.
func Accepts(f domain.Flight, cfg domain.FilterConfiguration) bool {
	return newMatcher(cfg).accepts(f)
}

// StopCategory buckets a stop count into 0, 1 or 2 ("2+").
func StopCategory(stopCount int) int {
	if stopCount >= domain.StopsTwoPlus {
		return domain.StopsTwoPlus
	}
	if stopCount < 0 {
		return domain.StopsNonstop
	}
	return stopCount
}

// TimeSlotOf buckets a timestamp by its hour in the timestamp's own location.
// No timezone conversion happens here; normalizers decide the location.
func TimeSlotOf(t time.Time) domain.TimeSlot {
	hour := t.Hour()
	switch {
	case hour >= 6 && hour < 12:
		return domain.SlotMorning
	case hour >= 12 && hour < 18:
		return domain.SlotAfternoon
	case hour >= 18:
		return domain.SlotEvening
	default:
		return domain.SlotNight
	}
}

// matcher holds the set lookups of one configuration so a list can be
// filtered without rebuilding them per flight.
type matcher struct {
	cfg       domain.FilterConfiguration
	stops     map[int]struct{}
	airlines  map[string]struct{}
	timeSlots map[domain.TimeSlot]struct{}
}

func newMatcher(cfg domain.FilterConfiguration) *matcher {
	m := &matcher{
		cfg:       cfg,
		stops:     make(map[int]struct{}, len(cfg.Stops)),
		timeSlots: make(map[domain.TimeSlot]struct{}, len(cfg.DepartureTimes)),
	}
	for _, s := range cfg.Stops {
		m.stops[s] = struct{}{}
	}
	for _, slot := range cfg.DepartureTimes {
		m.timeSlots[slot] = struct{}{}
	}
	if len(cfg.Airlines) > 0 {
		m.airlines = make(map[string]struct{}, len(cfg.Airlines))
		for _, code := range cfg.Airlines {
			m.airlines[code] = struct{}{}
		}
	}
	return m
}

func (m *matcher) accepts(f domain.Flight) bool {
	if m.cfg.DirectOnly && f.StopCount > 0 {
		return false
	}

	if _, ok := m.stops[StopCategory(f.StopCount)]; !ok {
		return false
	}

	if !m.cfg.PriceRange.Contains(f.Price) {
		return false
	}

	if m.cfg.MaxDuration > 0 && f.Duration > m.cfg.MaxDuration {
		return false
	}

	// nil set means the airline filter is off
	if m.airlines != nil {
		if _, ok := m.airlines[f.CarrierCode]; !ok {
			return false
		}
	}

	if f.DepartureTime.IsZero() {
		return false
	}
	if _, ok := m.timeSlots[TimeSlotOf(f.DepartureTime)]; !ok {
		return false
	}

	return true
}

// Filter returns the flights accepted by cfg, preserving input order.
// The result is a new slice; flights is not modified.
func Filter(flights []domain.Flight, cfg domain.FilterConfiguration) []domain.Flight {
	m := newMatcher(cfg)

	result := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if m.accepts(f) {
			result = append(result, f)
		}
	}
	return result
}
