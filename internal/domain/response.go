package domain

// ResultsView is one consistent read of a search session: the display list,
// the derived outputs and the session state they were computed from.
type ResultsView struct {
	// SessionID identifies the session the view belongs to
	SessionID string

	// SearchParams is nil until a search has been started
	SearchParams *SearchParams

	// Flights is the filtered list in display order
	Flights []Flight

	// CheapestFlightID is empty when HasCheapest is false
	CheapestFlightID string
	HasCheapest      bool

	// Chart is the per-airline minimum price of the filtered flights
	Chart []ChartPoint

	// AvailableAirlines and PriceRange are the facets of the raw result set
	AvailableAirlines []AirlineFacet
	PriceRange        PriceRange

	// Filters is the live filter configuration
	Filters FilterConfiguration

	// SortBy is the order Flights are in
	SortBy SortOption

	HasSearched bool
	IsLoading   bool

	// Error is the message of the last failed search, if any
	Error string

	Metadata SearchMetadata
}

// SearchMetadata contains metadata about the last search of a session.
type SearchMetadata struct {
	// TotalResults is the size of the raw result set
	TotalResults int

	// FilteredResults is the number of flights passing the filters
	FilteredResults int

	// SourcesQueried lists the flight sources asked, in registration order
	SourcesQueried []string

	// SourcesFailed lists the sources that returned an error
	SourcesFailed []string

	// CacheHit indicates whether the results came from the search cache
	CacheHit bool

	// SearchTimeMs is the duration of the last search in milliseconds
	SearchTimeMs int64
}

// NewResultsView fills the nil slices of a view so it always encodes as
// empty lists.
func NewResultsView(view ResultsView) ResultsView {
	if view.Flights == nil {
		view.Flights = []Flight{}
	}
	if view.Chart == nil {
		view.Chart = []ChartPoint{}
	}
	if view.AvailableAirlines == nil {
		view.AvailableAirlines = []AirlineFacet{}
	}
	view.Metadata.FilteredResults = len(view.Flights)
	return view
}
