package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSearchRequest() SearchRequest {
	return SearchRequest{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2025-12-15",
		Passengers:    1,
	}
}

func TestSearchRequest_Validate(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name      string
		modify    func(r *SearchRequest)
		wantField string
	}{
		{
			name:   "valid one-way",
			modify: func(r *SearchRequest) {},
		},
		{
			name:   "passengers omitted",
			modify: func(r *SearchRequest) { r.Passengers = 0 },
		},
		{
			name: "valid round trip",
			modify: func(r *SearchRequest) {
				r.TripType = "round-trip"
				r.ReturnDate = "2025-12-20"
			},
		},
		{
			name:      "missing origin",
			modify:    func(r *SearchRequest) { r.Origin = "" },
			wantField: "origin",
		},
		{
			name:      "origin too long",
			modify:    func(r *SearchRequest) { r.Origin = "JFKX" },
			wantField: "origin",
		},
		{
			name:      "destination with digits",
			modify:    func(r *SearchRequest) { r.Destination = "L4X" },
			wantField: "destination",
		},
		{
			name:      "same origin and destination",
			modify:    func(r *SearchRequest) { r.Destination = "JFK" },
			wantField: "destination",
		},
		{
			name:      "bad date format",
			modify:    func(r *SearchRequest) { r.DepartureDate = "12/15/2025" },
			wantField: "departureDate",
		},
		{
			name:      "too many passengers",
			modify:    func(r *SearchRequest) { r.Passengers = 10 },
			wantField: "passengers",
		},
		{
			name:      "negative passengers",
			modify:    func(r *SearchRequest) { r.Passengers = -1 },
			wantField: "passengers",
		},
		{
			name:      "unknown trip type",
			modify:    func(r *SearchRequest) { r.TripType = "multi-city" },
			wantField: "tripType",
		},
		{
			name:      "round trip without return date",
			modify:    func(r *SearchRequest) { r.TripType = "round-trip" },
			wantField: "returnDate",
		},
		{
			name: "bad return date",
			modify: func(r *SearchRequest) {
				r.TripType = "round-trip"
				r.ReturnDate = "2025-12-32"
			},
			wantField: "returnDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSearchRequest()
			tt.modify(&req)

			err := v.Validate(&req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
			assert.NotEmpty(t, verrs.ToMap()[tt.wantField])
		})
	}
}

func TestSearchRequest_Messages(t *testing.T) {
	v := NewRequestValidator()
	req := validSearchRequest()
	req.Origin = "NYC1"
	req.Passengers = 12

	var verrs *ValidationErrors
	require.ErrorAs(t, v.Validate(&req), &verrs)

	details := verrs.ToMap()
	assert.Equal(t, "origin must be a 3-letter IATA airport code", details["origin"])
	assert.Equal(t, "passengers must be at most 9", details["passengers"])
}

func TestSearchRequest_Normalize(t *testing.T) {
	req := SearchRequest{Origin: " jfk ", Destination: "lax", TripType: " Round-Trip"}
	req.Normalize()

	assert.Equal(t, "JFK", req.Origin)
	assert.Equal(t, "LAX", req.Destination)
	assert.Equal(t, "round-trip", req.TripType)
}

func TestFilterPatchRequest_Validate(t *testing.T) {
	v := NewRequestValidator()

	ints := func(v ...int) *[]int { return &v }
	strs := func(v ...string) *[]string { return &v }
	str := func(s string) *string { return &s }

	tests := []struct {
		name      string
		req       FilterPatchRequest
		wantField string
	}{
		{name: "empty patch", req: FilterPatchRequest{}},
		{name: "valid stops", req: FilterPatchRequest{Stops: ints(0, 2)}},
		{name: "empty stops list", req: FilterPatchRequest{Stops: ints()}},
		{name: "stop category out of range", req: FilterPatchRequest{Stops: ints(0, 3)}, wantField: "stops[1]"},
		{name: "negative stop category", req: FilterPatchRequest{Stops: ints(-1)}, wantField: "stops[0]"},
		{name: "valid airlines", req: FilterPatchRequest{Airlines: strs("AA", "B6")}},
		{name: "bad airline code", req: FilterPatchRequest{Airlines: strs("A-A")}, wantField: "airlines[0]"},
		{name: "valid slots", req: FilterPatchRequest{DepartureTimes: strs("morning", "night")}},
		{name: "unknown slot", req: FilterPatchRequest{DepartureTimes: strs("midnight")}, wantField: "departureTimes[0]"},
		{name: "valid sort", req: FilterPatchRequest{SortBy: str("arrival")}},
		{name: "unknown sort", req: FilterPatchRequest{SortBy: str("best")}, wantField: "sortBy"},
		{
			name: "inverted price range is stored as given",
			req:  FilterPatchRequest{PriceRange: &PriceRangeDTO{Min: 500, Max: 100}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}

func TestValidationErrors(t *testing.T) {
	v := &ValidationErrors{}
	assert.False(t, v.HasErrors())
	assert.Equal(t, "validation failed", v.Error())

	v.Add("origin", "origin is required")
	v.Add("origin", "second message")
	v.Add("passengers", "passengers must be at most 9")

	assert.True(t, v.HasErrors())
	assert.Equal(t, "origin is required", v.Error())
	assert.Equal(t, map[string]string{
		"origin":     "origin is required",
		"passengers": "passengers must be at most 9",
	}, v.ToMap())
}
