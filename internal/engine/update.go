package engine

import "github.com/flight-search/flight-result-engine/internal/domain"

// FilterUpdate replaces exactly one field of a FilterConfiguration.
// The set of updates is closed; build them with the Set* constructors.
// No update validates or clamps its value.
type FilterUpdate interface {
	apply(cfg *domain.FilterConfiguration)
}

type filterUpdateFunc func(cfg *domain.FilterConfiguration)

func (fn filterUpdateFunc) apply(cfg *domain.FilterConfiguration) { fn(cfg) }

// SetStops replaces the accepted stop categories.
func SetStops(stops ...int) FilterUpdate {
	v := append([]int{}, stops...)
	return filterUpdateFunc(func(cfg *domain.FilterConfiguration) {
		cfg.Stops = v
	})
}

// SetPriceRange replaces the inclusive price window. Out-of-facet and
// inverted ranges are accepted as-is and simply match nothing.
func SetPriceRange(lo, hi float64) FilterUpdate {
	return filterUpdateFunc(func(cfg *domain.FilterConfiguration) {
		cfg.PriceRange = domain.PriceRange{Min: lo, Max: hi}
	})
}

// SetAirlines replaces the accepted carrier codes. An empty list turns the
// airline filter off.
func SetAirlines(codes ...string) FilterUpdate {
	v := append([]string{}, codes...)
	return filterUpdateFunc(func(cfg *domain.FilterConfiguration) {
		cfg.Airlines = v
	})
}

// SetDepartureTimes replaces the accepted departure time slots.
func SetDepartureTimes(slots ...domain.TimeSlot) FilterUpdate {
	v := append([]domain.TimeSlot{}, slots...)
	return filterUpdateFunc(func(cfg *domain.FilterConfiguration) {
		cfg.DepartureTimes = v
	})
}

// SetMaxDuration replaces the duration cap in minutes; 0 removes it.
func SetMaxDuration(minutes int) FilterUpdate {
	return filterUpdateFunc(func(cfg *domain.FilterConfiguration) {
		cfg.MaxDuration = minutes
	})
}

// SetDirectOnly toggles the direct-flights-only filter.
func SetDirectOnly(directOnly bool) FilterUpdate {
	return filterUpdateFunc(func(cfg *domain.FilterConfiguration) {
		cfg.DirectOnly = directOnly
	})
}

// SetSortBy replaces the display order.
func SetSortBy(sortBy domain.SortOption) FilterUpdate {
	return filterUpdateFunc(func(cfg *domain.FilterConfiguration) {
		cfg.SortBy = sortBy
	})
}

// Apply returns a copy of cfg with updates applied in order.
func Apply(cfg domain.FilterConfiguration, updates ...FilterUpdate) domain.FilterConfiguration {
	out := cfg.Clone()
	for _, u := range updates {
		if u != nil {
			u.apply(&out)
		}
	}
	return out
}

// FilterPatch is a partial FilterConfiguration: every non-nil field
// replaces the matching field, the rest are left untouched.
type FilterPatch struct {
	Stops          *[]int             `json:"stops,omitempty"`
	PriceRange     *domain.PriceRange `json:"priceRange,omitempty"`
	Airlines       *[]string          `json:"airlines,omitempty"`
	DepartureTimes *[]domain.TimeSlot `json:"departureTimes,omitempty"`
	MaxDuration    *int               `json:"maxDuration,omitempty"`
	DirectOnly     *bool              `json:"directOnly,omitempty"`
	SortBy         *domain.SortOption `json:"sortBy,omitempty"`
}

// Updates expands the patch into single-field updates in field order.
func (p FilterPatch) Updates() []FilterUpdate {
	var updates []FilterUpdate
	if p.Stops != nil {
		updates = append(updates, SetStops(*p.Stops...))
	}
	if p.PriceRange != nil {
		updates = append(updates, SetPriceRange(p.PriceRange.Min, p.PriceRange.Max))
	}
	if p.Airlines != nil {
		updates = append(updates, SetAirlines(*p.Airlines...))
	}
	if p.DepartureTimes != nil {
		updates = append(updates, SetDepartureTimes(*p.DepartureTimes...))
	}
	if p.MaxDuration != nil {
		updates = append(updates, SetMaxDuration(*p.MaxDuration))
	}
	if p.DirectOnly != nil {
		updates = append(updates, SetDirectOnly(*p.DirectOnly))
	}
	if p.SortBy != nil {
		updates = append(updates, SetSortBy(*p.SortBy))
	}
	return updates
}

// IsEmpty reports whether the patch changes nothing.
func (p FilterPatch) IsEmpty() bool {
	return len(p.Updates()) == 0
}
