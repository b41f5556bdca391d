package http

import (
	"strings"
)

// SearchRequest represents the request body for a session search.
type SearchRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin" validate:"required,iata" example:"JFK"`

	// Destination is the IATA code of the arrival airport (e.g., "LAX")
	Destination string `json:"destination" validate:"required,iata,nefield=Origin" example:"LAX"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate" validate:"required,datetime=2006-01-02" example:"2025-12-15"`

	// ReturnDate is required for round trips, YYYY-MM-DD
	ReturnDate string `json:"returnDate,omitempty" validate:"required_if=TripType round-trip,omitempty,datetime=2006-01-02" example:"2025-12-20"`

	// Passengers is the number of adult passengers (1-9, default 1)
	Passengers int `json:"passengers,omitempty" validate:"omitempty,min=1,max=9" example:"1"`

	// TripType is one-way (default) or round-trip
	TripType string `json:"tripType,omitempty" validate:"omitempty,oneof=one-way round-trip" example:"one-way"`
}

// Normalize upper-cases and trims the airport codes before validation.
func (r *SearchRequest) Normalize() {
	r.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))
	r.TripType = strings.ToLower(strings.TrimSpace(r.TripType))
}

// PriceRangeDTO is an inclusive price window.
type PriceRangeDTO struct {
	Min float64 `json:"min" example:"150"`
	Max float64 `json:"max" example:"450"`
}

// FilterPatchRequest is a partial filter update. Omitted fields keep their
// current value. Price range and max duration are stored as given.
type FilterPatchRequest struct {
	// Stops lists accepted stop categories: 0 nonstop, 1 one stop, 2 two or more
	Stops *[]int `json:"stops,omitempty" validate:"omitempty,dive,min=0,max=2" example:"0,1"`

	// PriceRange is the accepted price window
	PriceRange *PriceRangeDTO `json:"priceRange,omitempty"`

	// Airlines lists accepted carrier codes
	Airlines *[]string `json:"airlines,omitempty" validate:"omitempty,dive,alphanum,min=2,max=3" example:"AA,DL"`

	// DepartureTimes lists accepted slots: morning, afternoon, evening, night
	DepartureTimes *[]string `json:"departureTimes,omitempty" validate:"omitempty,dive,timeslot" example:"morning"`

	// MaxDuration is the longest accepted itinerary in minutes, 0 for no limit
	MaxDuration *int `json:"maxDuration,omitempty" example:"360"`

	// DirectOnly rejects every flight with stops
	DirectOnly *bool `json:"directOnly,omitempty" example:"false"`

	// SortBy is the display order: price, duration, departure or arrival
	SortBy *string `json:"sortBy,omitempty" validate:"omitempty,sortby" example:"price"`
}
