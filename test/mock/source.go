// Package mock provides test doubles for the flight result engine.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flight-search/flight-result-engine/internal/domain"
)

// Source is a configurable mock implementation of domain.FlightSource.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and partial failures.
type Source struct {
	name       string
	flights    []domain.Flight
	carriers   map[string]string
	err        error
	delay      time.Duration
	callCount  int
	lastParams domain.SearchParams
	mu         sync.Mutex
}

// NewSource creates a new mock source with the given name.
// The source is configured using the builder pattern methods.
func NewSource(name string) *Source {
	return &Source{name: name}
}

// WithFlights configures the source to return the given flights.
func (s *Source) WithFlights(flights []domain.Flight) *Source {
	s.flights = flights
	return s
}

// WithCarriers configures the carrier dictionary returned with the flights.
func (s *Source) WithCarriers(carriers map[string]string) *Source {
	s.carriers = carriers
	return s
}

// WithError configures the source to return the given error.
func (s *Source) WithError(err error) *Source {
	s.err = err
	return s
}

// WithDelay configures the source to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.delay = d
	return s
}

// Name returns the source's unique identifier.
func (s *Source) Name() string {
	return s.name
}

// Search implements domain.FlightSource.Search.
// It respects context cancellation, applies configured delay,
// and returns configured flights or error.
func (s *Source) Search(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
	s.mu.Lock()
	s.callCount++
	s.lastParams = params
	s.mu.Unlock()

	// Apply delay if configured
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	// Check context after delay
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if s.err != nil {
		return nil, s.err
	}

	return &domain.SearchResult{
		Flights:  append([]domain.Flight(nil), s.flights...),
		Carriers: s.carriers,
	}, nil
}

// CallCount returns the number of times Search was called.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// LastParams returns the parameters of the most recent search.
func (s *Source) LastParams() domain.SearchParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastParams
}

// Reset resets the call count to zero.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
}

// Ensure Source implements domain.FlightSource at compile time.
var _ domain.FlightSource = (*Source)(nil)

// sampleCarriers are cycled through by SampleFlights.
var sampleCarriers = []struct{ code, name string }{
	{"AA", "American Airlines"},
	{"DL", "Delta Air Lines"},
	{"UA", "United Airlines"},
}

// SampleFlights returns count JFK to LAX flights with all fields
// populated. Flight i departs 2i hours after 06:00, costs 200+25i USD,
// has i%3 stops and flies with the i%3-th sample carrier.
func SampleFlights(count int) []domain.Flight {
	flights := make([]domain.Flight, count)
	baseTime := time.Date(2025, 12, 15, 6, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		carrier := sampleCarriers[i%len(sampleCarriers)]
		duration := 330 + 60*(i%3)
		departure := baseTime.Add(time.Duration(i*2) * time.Hour)
		arrival := departure.Add(time.Duration(duration) * time.Minute)

		flights[i] = domain.Flight{
			ID:                 fmt.Sprintf("%d", i+1),
			CarrierCode:        carrier.code,
			CarrierName:        carrier.name,
			Price:              200 + float64(i*25),
			Currency:           "USD",
			DepartureTime:      departure,
			ArrivalTime:        arrival,
			Duration:           duration,
			DurationFormatted:  domain.FormatDuration(duration),
			StopCount:          i % 3,
			OriginAirport:      "JFK",
			DestinationAirport: "LAX",
			Segments: []domain.Segment{{
				CarrierCode:  carrier.code,
				FlightNumber: fmt.Sprintf("%d", 100+i),
				Departure:    domain.SegmentPoint{AirportCode: "JFK", At: departure},
				Arrival:      domain.SegmentPoint{AirportCode: "LAX", At: arrival},
				Duration:     duration,
			}},
		}
	}

	return flights
}

// SampleCarriers returns the carrier dictionary matching SampleFlights.
func SampleCarriers() map[string]string {
	out := make(map[string]string, len(sampleCarriers))
	for _, c := range sampleCarriers {
		out[c.code] = c.name
	}
	return out
}
