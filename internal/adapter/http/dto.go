package http

// ResultsResponse is the results view of a search session.
// It matches the expected API output format with snake_case fields.
type ResultsResponse struct {
	SessionID         string            `json:"session_id" example:"6f1c1f9e-3c1b-4f7e-9a43-3d8e0f3b2a10"`
	SearchParams      *SearchParamsDTO  `json:"search_params"`
	Flights           []FlightDTO       `json:"flights"`
	CheapestFlightID  string            `json:"cheapest_flight_id,omitempty" example:"4"`
	HasCheapest       bool              `json:"has_cheapest"`
	Chart             []ChartPointDTO   `json:"chart"`
	AvailableAirlines []AirlineFacetDTO `json:"available_airlines"`
	PriceRange        PriceRangeDTO     `json:"price_range"`
	Filters           FiltersDTO        `json:"filters"`
	SortBy            string            `json:"sort_by" example:"price"`
	HasSearched       bool              `json:"has_searched"`
	IsLoading         bool              `json:"is_loading"`
	Error             string            `json:"error,omitempty"`
	Metadata          MetadataDTO       `json:"metadata"`
}

// SearchParamsDTO represents the parameters of the session's search.
type SearchParamsDTO struct {
	Origin        string `json:"origin" example:"JFK"`
	Destination   string `json:"destination" example:"LAX"`
	DepartureDate string `json:"departure_date" example:"2025-12-15"`
	ReturnDate    string `json:"return_date,omitempty"`
	Passengers    int    `json:"passengers" example:"1"`
	TripType      string `json:"trip_type" example:"one-way"`
}

// MetadataDTO contains metadata about the last search.
type MetadataDTO struct {
	TotalResults    int      `json:"total_results" example:"8"`
	FilteredResults int      `json:"filtered_results" example:"5"`
	SourcesQueried  []string `json:"sources_queried"`
	SourcesFailed   []string `json:"sources_failed"`
	SearchTimeMs    int64    `json:"search_time_ms" example:"412"`
	CacheHit        bool     `json:"cache_hit"`
}

// FlightDTO is the data transfer object for flight responses.
type FlightDTO struct {
	ID         string         `json:"id" example:"4"`
	Airline    AirlineDTO     `json:"airline"`
	Departure  FlightPointDTO `json:"departure"`
	Arrival    FlightPointDTO `json:"arrival"`
	Duration   DurationDTO    `json:"duration"`
	Stops      int            `json:"stops" example:"0"`
	Price      PriceDTO       `json:"price"`
	IsCheapest bool           `json:"is_cheapest"`
	Segments   []SegmentDTO   `json:"segments"`
}

// AirlineDTO represents airline information.
type AirlineDTO struct {
	Name string `json:"name" example:"JetBlue Airways"`
	Code string `json:"code" example:"B6"`
}

// FlightPointDTO represents a departure or arrival point.
type FlightPointDTO struct {
	Airport  string `json:"airport" example:"JFK"`
	Terminal string `json:"terminal,omitempty" example:"5"`
	DateTime string `json:"datetime" example:"2025-12-15T07:05:00"`
	Date     string `json:"date" example:"2025-12-15"`
	Time     string `json:"time" example:"07:05"`
}

// DurationDTO represents flight duration.
type DurationDTO struct {
	TotalMinutes int    `json:"total_minutes" example:"385"`
	Formatted    string `json:"formatted" example:"6h 25m"`
}

// PriceDTO represents price information.
type PriceDTO struct {
	Amount    float64 `json:"amount" example:"199.99"`
	Currency  string  `json:"currency" example:"USD"`
	Formatted string  `json:"formatted" example:"USD 199.99"`
}

// SegmentDTO is one physical leg of an itinerary.
type SegmentDTO struct {
	CarrierCode  string         `json:"carrier_code" example:"B6"`
	FlightNumber string         `json:"flight_number" example:"623"`
	Aircraft     string         `json:"aircraft,omitempty" example:"320"`
	Departure    FlightPointDTO `json:"departure"`
	Arrival      FlightPointDTO `json:"arrival"`
	Duration     DurationDTO    `json:"duration"`
}

// ChartPointDTO is the cheapest price of one airline in the filtered list.
type ChartPointDTO struct {
	Name           string  `json:"name" example:"JetBlue Airways"`
	CarrierCode    string  `json:"carrier_code" example:"B6"`
	Price          float64 `json:"price" example:"199.99"`
	PriceFormatted string  `json:"price_formatted" example:"USD 199.99"`
	Count          int     `json:"count" example:"1"`
}

// ChartResponse wraps the chart points of a session.
type ChartResponse struct {
	Chart []ChartPointDTO `json:"chart"`
}

// AirlineFacetDTO is one airline filter option.
type AirlineFacetDTO struct {
	Code  string `json:"code" example:"DL"`
	Name  string `json:"name" example:"Delta Air Lines"`
	Count int    `json:"count" example:"3"`
}

// FiltersDTO is the live filter configuration.
type FiltersDTO struct {
	Stops          []int         `json:"stops"`
	PriceRange     PriceRangeDTO `json:"price_range"`
	Airlines       []string      `json:"airlines"`
	DepartureTimes []string      `json:"departure_times"`
	MaxDuration    int           `json:"max_duration" example:"0"`
	DirectOnly     bool          `json:"direct_only"`
	SortBy         string        `json:"sort_by" example:"price"`
}

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	ID string `json:"id" example:"6f1c1f9e-3c1b-4f7e-9a43-3d8e0f3b2a10"`
}

// AirportDTO is one airport autocomplete suggestion.
type AirportDTO struct {
	Code    string `json:"code" example:"LHR"`
	Name    string `json:"name" example:"Heathrow Airport"`
	City    string `json:"city" example:"London"`
	Country string `json:"country" example:"United Kingdom"`
}

// AirportsResponse wraps airport suggestions.
type AirportsResponse struct {
	Airports []AirportDTO `json:"airports"`
}
