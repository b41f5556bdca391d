// Package domain contains the core business entities for the flight result engine.
// These entities are provider-agnostic: every flight source normalizes into them,
// and the engine only ever reads them.
package domain

import (
	"strconv"
	"time"
)

// Flight represents a single normalized flight offer.
// A Flight is immutable once produced by a normalizer; the engine never
// modifies one and consumers must not either.
type Flight struct {
	// ID distinguishes offers within one search result set only
	ID string `json:"id"`

	// CarrierCode is the validating airline code (e.g., "AA")
	CarrierCode string `json:"carrierCode"`

	// CarrierName is the human-readable airline name, or CarrierCode when unresolved
	CarrierName string `json:"carrierName"`

	// Price is the total price in Currency
	Price float64 `json:"price"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`

	// DepartureTime is the local wall-clock departure of the first segment
	DepartureTime time.Time `json:"departureTime"`

	// ArrivalTime is the local wall-clock arrival of the last segment
	ArrivalTime time.Time `json:"arrivalTime"`

	// Duration is the total elapsed itinerary time in minutes
	Duration int `json:"duration"`

	// DurationFormatted is a human-readable duration (e.g., "2h 5m")
	DurationFormatted string `json:"durationFormatted"`

	// StopCount is the number of intermediate stops (segments - 1)
	StopCount int `json:"stopCount"`

	// OriginAirport is the IATA code of the first departure
	OriginAirport string `json:"originAirport"`

	// DestinationAirport is the IATA code of the final arrival
	DestinationAirport string `json:"destinationAirport"`

	// Segments are the physical legs of the itinerary in travel order
	Segments []Segment `json:"segments"`
}

// Segment is one physical flight within an itinerary.
type Segment struct {
	CarrierCode  string       `json:"carrierCode"`
	FlightNumber string       `json:"number"`
	Departure    SegmentPoint `json:"departure"`
	Arrival      SegmentPoint `json:"arrival"`
	AircraftCode string       `json:"aircraftCode,omitempty"`

	// Duration is the leg duration in minutes
	Duration int `json:"duration"`
}

// SegmentPoint is the departure or arrival end of a segment.
type SegmentPoint struct {
	AirportCode string    `json:"iataCode"`
	Terminal    string    `json:"terminal,omitempty"`
	At          time.Time `json:"at"`
}

// IsDirect reports whether the flight has no intermediate stops.
func (f Flight) IsDirect() bool {
	return f.StopCount == 0
}

// FormatDuration renders minutes as "Xh Ym". Hours are always shown, even when zero.
func FormatDuration(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return strconv.Itoa(totalMinutes/60) + "h " + strconv.Itoa(totalMinutes%60) + "m"
}
