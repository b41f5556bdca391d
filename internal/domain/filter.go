package domain

// TimeSlot is a time-of-day bucket derived from the local departure hour.
type TimeSlot string

// Available time slots.
const (
	// SlotMorning covers departures in [06:00, 12:00)
	SlotMorning TimeSlot = "morning"

	// SlotAfternoon covers departures in [12:00, 18:00)
	SlotAfternoon TimeSlot = "afternoon"

	// SlotEvening covers departures in [18:00, 24:00)
	SlotEvening TimeSlot = "evening"

	// SlotNight covers departures in [00:00, 06:00)
	SlotNight TimeSlot = "night"
)

// AllTimeSlots returns every time slot in display order.
func AllTimeSlots() []TimeSlot {
	return []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening, SlotNight}
}

// IsValid checks if the time slot is one of the known buckets.
func (s TimeSlot) IsValid() bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotEvening, SlotNight:
		return true
	default:
		return false
	}
}

// Stop categories. A flight's category is min(StopCount, StopsTwoPlus).
const (
	StopsNonstop = 0
	StopsOne     = 1
	StopsTwoPlus = 2
)

// AllStopCategories returns every stop category.
func AllStopCategories() []int {
	return []int{StopsNonstop, StopsOne, StopsTwoPlus}
}

// SortOption defines how a result list is ordered for display.
type SortOption string

// Available sort options.
const (
	// SortByPrice sorts by price ascending (default)
	SortByPrice SortOption = "price"

	// SortByDuration sorts by total duration ascending
	SortByDuration SortOption = "duration"

	// SortByDeparture sorts by departure time ascending
	SortByDeparture SortOption = "departure"

	// SortByArrival sorts by arrival time ascending
	SortByArrival SortOption = "arrival"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByPrice, SortByDuration, SortByDeparture, SortByArrival:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByPrice if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortByPrice
}

// PriceRange is an inclusive [Min, Max] price bound.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether price lies within the range, both ends inclusive.
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// Default price bounds.
var (
	// EmptyResultPriceRange is the observed range reported for an empty result set.
	EmptyResultPriceRange = PriceRange{Min: 0, Max: 1000}

	// DefaultPriceRange is the price filter before any search has happened.
	DefaultPriceRange = PriceRange{Min: 0, Max: 10000}
)

// FilterConfiguration is the live filter state of one search session.
type FilterConfiguration struct {
	// Stops lists the accepted stop categories (0, 1, 2 meaning "2+")
	Stops []int `json:"stops"`

	// PriceRange is the inclusive accepted price window
	PriceRange PriceRange `json:"priceRange"`

	// Airlines lists accepted carrier codes.
	// An empty list means no airline filter is applied.
	Airlines []string `json:"airlines"`

	// DepartureTimes lists the accepted departure time slots
	DepartureTimes []TimeSlot `json:"departureTimes"`

	// MaxDuration is the inclusive upper bound in minutes; 0 means unbounded
	MaxDuration int `json:"maxDuration"`

	// DirectOnly rejects every flight with stops, before the Stops filter runs
	DirectOnly bool `json:"directOnly"`

	// SortBy is the display order. It is never consulted when filtering.
	SortBy SortOption `json:"sortBy"`
}

// DefaultFilters returns the static filter defaults used before any search.
func DefaultFilters() FilterConfiguration {
	return FilterConfiguration{
		Stops:          AllStopCategories(),
		PriceRange:     DefaultPriceRange,
		Airlines:       []string{},
		DepartureTimes: AllTimeSlots(),
		MaxDuration:    0,
		DirectOnly:     false,
		SortBy:         SortByPrice,
	}
}

// Clone returns a deep copy so callers can't alias the live slices.
func (c FilterConfiguration) Clone() FilterConfiguration {
	out := c
	out.Stops = append([]int(nil), c.Stops...)
	out.Airlines = append([]string(nil), c.Airlines...)
	out.DepartureTimes = append([]TimeSlot(nil), c.DepartureTimes...)
	if out.Stops == nil {
		out.Stops = []int{}
	}
	if out.Airlines == nil {
		out.Airlines = []string{}
	}
	if out.DepartureTimes == nil {
		out.DepartureTimes = []TimeSlot{}
	}
	return out
}

// AirlineFacet is one airline offered as a filter option.
type AirlineFacet struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ChartPoint is the cheapest price of one airline among the filtered flights.
type ChartPoint struct {
	Name        string  `json:"name"`
	CarrierCode string  `json:"carrierCode"`
	Price       float64 `json:"price"`
	Count       int     `json:"count"`
}
