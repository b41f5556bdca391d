package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TripType distinguishes one-way from round-trip searches.
type TripType string

// Available trip types.
const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
)

// SearchParams defines the parameters for a flight search request.
type SearchParams struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LAX")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the return date for round trips in YYYY-MM-DD format
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the number of adult passengers (default: 1)
	Passengers int `json:"passengers"`

	// TripType is one-way or round-trip (default: one-way)
	TripType TripType `json:"tripType"`
}

// SearchResult is the normalized output of one flight source query.
type SearchResult struct {
	// Flights are in provider order
	Flights []Flight `json:"flights"`

	// Carriers maps carrier codes to names from the provider dictionary
	Carriers map[string]string `json:"carriers"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

const dateLayout = "2006-01-02"

// SetDefaults applies default values to empty optional fields and
// normalizes airport codes to upper case.
func (p *SearchParams) SetDefaults() {
	p.Origin = strings.ToUpper(strings.TrimSpace(p.Origin))
	p.Destination = strings.ToUpper(strings.TrimSpace(p.Destination))
	if p.Passengers == 0 {
		p.Passengers = 1
	}
	if p.TripType == "" {
		p.TripType = TripOneWay
	}
	if p.TripType == TripOneWay {
		p.ReturnDate = ""
	}
}

// Validate checks if the search params are valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (p *SearchParams) Validate() error {
	if !airportCodeRegex.MatchString(p.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, p.Origin)
	}
	if !airportCodeRegex.MatchString(p.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, p.Destination)
	}
	if p.Origin == p.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	departure, err := time.Parse(dateLayout, p.DepartureDate)
	if err != nil {
		return fmt.Errorf("%w: departureDate must be a valid YYYY-MM-DD date, got %q", ErrInvalidRequest, p.DepartureDate)
	}

	if p.Passengers < 1 || p.Passengers > 9 {
		return fmt.Errorf("%w: passengers must be between 1 and 9, got %d", ErrInvalidRequest, p.Passengers)
	}

	switch p.TripType {
	case TripOneWay:
	case TripRoundTrip:
		ret, err := time.Parse(dateLayout, p.ReturnDate)
		if err != nil {
			return fmt.Errorf("%w: returnDate is required for round trips, got %q", ErrInvalidRequest, p.ReturnDate)
		}
		if ret.Before(departure) {
			return fmt.Errorf("%w: returnDate must not be before departureDate", ErrInvalidRequest)
		}
	default:
		return fmt.Errorf("%w: tripType must be one of: one-way, round-trip; got %q", ErrInvalidRequest, p.TripType)
	}

	return nil
}

// IsRoundTrip reports whether a return leg should be requested.
func (p SearchParams) IsRoundTrip() bool {
	return p.TripType == TripRoundTrip && p.ReturnDate != ""
}
