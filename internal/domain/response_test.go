package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResultsView_FillsNilSlices(t *testing.T) {
	view := NewResultsView(ResultsView{SessionID: "abc"})

	assert.NotNil(t, view.Flights)
	assert.NotNil(t, view.Chart)
	assert.NotNil(t, view.AvailableAirlines)
	assert.Equal(t, 0, view.Metadata.FilteredResults)
	assert.Equal(t, "abc", view.SessionID)
}

func TestNewResultsView_CountsFilteredFlights(t *testing.T) {
	view := NewResultsView(ResultsView{
		Flights:  []Flight{{ID: "1"}, {ID: "2"}},
		Metadata: SearchMetadata{TotalResults: 5, FilteredResults: 99},
	})

	assert.Equal(t, 5, view.Metadata.TotalResults)
	assert.Equal(t, 2, view.Metadata.FilteredResults)
}
