package domain

import "context"

//go:generate mockgen -source=source.go -destination=mock_source.go -package=domain

// FlightSource is implemented by anything that can answer a flight search
// with normalized flights (a live provider API, a fixture file, a cache).
type FlightSource interface {
	// Name returns the unique identifier of the source.
	Name() string

	// Search runs one search and returns flights in provider order.
	// Implementations must respect context cancellation.
	Search(ctx context.Context, params SearchParams) (*SearchResult, error)
}

// Airport is one entry of the airport autocomplete directory.
type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}
