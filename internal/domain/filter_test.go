package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortOption_IsValid(t *testing.T) {
	tests := []struct {
		option SortOption
		want   bool
	}{
		{SortByPrice, true},
		{SortByDuration, true},
		{SortByDeparture, true},
		{SortByArrival, true},
		{"best", false},
		{"", false},
		{"PRICE", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.option), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.option.IsValid())
		})
	}
}

func TestParseSortOption(t *testing.T) {
	tests := []struct {
		input string
		want  SortOption
	}{
		{"price", SortByPrice},
		{"duration", SortByDuration},
		{"departure", SortByDeparture},
		{"arrival", SortByArrival},
		{"", SortByPrice},
		{"invalid", SortByPrice},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortOption(tt.input))
		})
	}
}

func TestTimeSlot_IsValid(t *testing.T) {
	for _, slot := range AllTimeSlots() {
		assert.True(t, slot.IsValid(), slot)
	}
	assert.False(t, TimeSlot("midnight").IsValid())
	assert.False(t, TimeSlot("").IsValid())
}

func TestPriceRange_Contains(t *testing.T) {
	r := PriceRange{Min: 100, Max: 200}

	tests := []struct {
		name  string
		price float64
		want  bool
	}{
		{"below", 99.99, false},
		{"lower bound inclusive", 100, true},
		{"inside", 150.5, true},
		{"upper bound inclusive", 200, true},
		{"above", 200.01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.price))
		})
	}

	assert.False(t, PriceRange{Min: 300, Max: 100}.Contains(200), "inverted range accepts nothing")
}

func TestDefaultFilters(t *testing.T) {
	cfg := DefaultFilters()

	assert.Equal(t, []int{0, 1, 2}, cfg.Stops)
	assert.Equal(t, PriceRange{Min: 0, Max: 10000}, cfg.PriceRange)
	assert.NotNil(t, cfg.Airlines)
	assert.Empty(t, cfg.Airlines)
	assert.Equal(t, []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening, SlotNight}, cfg.DepartureTimes)
	assert.Zero(t, cfg.MaxDuration)
	assert.False(t, cfg.DirectOnly)
	assert.Equal(t, SortByPrice, cfg.SortBy)
}

func TestFilterConfiguration_Clone(t *testing.T) {
	orig := DefaultFilters()
	orig.Airlines = []string{"AA", "UA"}

	clone := orig.Clone()
	clone.Stops[0] = 2
	clone.Airlines[0] = "DL"
	clone.DepartureTimes[0] = SlotNight

	assert.Equal(t, []int{0, 1, 2}, orig.Stops)
	assert.Equal(t, []string{"AA", "UA"}, orig.Airlines)
	assert.Equal(t, SlotMorning, orig.DepartureTimes[0])
}

func TestFilterConfiguration_CloneNilSlices(t *testing.T) {
	clone := FilterConfiguration{}.Clone()

	assert.NotNil(t, clone.Stops)
	assert.NotNil(t, clone.Airlines)
	assert.NotNil(t, clone.DepartureTimes)
}
