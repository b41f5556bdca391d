package http

import (
	"time"

	"github.com/flight-search/flight-result-engine/internal/domain"
	"github.com/flight-search/flight-result-engine/internal/engine"
	"github.com/flight-search/flight-result-engine/internal/infrastructure/format"
	"github.com/flight-search/flight-result-engine/internal/infrastructure/timeutil"
)

// ToDomainParams converts a normalized SearchRequest to domain.SearchParams.
func ToDomainParams(req *SearchRequest) domain.SearchParams {
	return domain.SearchParams{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Passengers:    req.Passengers,
		TripType:      domain.TripType(req.TripType),
	}
}

// ToFilterPatch converts a FilterPatchRequest to an engine.FilterPatch.
func ToFilterPatch(req *FilterPatchRequest) engine.FilterPatch {
	patch := engine.FilterPatch{
		Stops:       req.Stops,
		Airlines:    req.Airlines,
		MaxDuration: req.MaxDuration,
		DirectOnly:  req.DirectOnly,
	}

	if req.PriceRange != nil {
		patch.PriceRange = &domain.PriceRange{Min: req.PriceRange.Min, Max: req.PriceRange.Max}
	}

	if req.DepartureTimes != nil {
		slots := make([]domain.TimeSlot, len(*req.DepartureTimes))
		for i, s := range *req.DepartureTimes {
			slots[i] = domain.TimeSlot(s)
		}
		patch.DepartureTimes = &slots
	}

	if req.SortBy != nil {
		sortBy := domain.SortOption(*req.SortBy)
		patch.SortBy = &sortBy
	}

	return patch
}

// ToResultsResponse converts a domain.ResultsView to the API response format.
func ToResultsResponse(view domain.ResultsView) ResultsResponse {
	flights := make([]FlightDTO, len(view.Flights))
	for i, f := range view.Flights {
		flights[i] = toFlightDTO(f, view.HasCheapest && f.ID == view.CheapestFlightID)
	}

	facets := make([]AirlineFacetDTO, len(view.AvailableAirlines))
	for i, a := range view.AvailableAirlines {
		facets[i] = AirlineFacetDTO{Code: a.Code, Name: a.Name, Count: a.Count}
	}

	resp := ResultsResponse{
		SessionID:         view.SessionID,
		Flights:           flights,
		CheapestFlightID:  view.CheapestFlightID,
		HasCheapest:       view.HasCheapest,
		Chart:             ToChartDTOs(view.Chart, resultCurrency(view.Flights)),
		AvailableAirlines: facets,
		PriceRange:        PriceRangeDTO{Min: view.PriceRange.Min, Max: view.PriceRange.Max},
		Filters:           toFiltersDTO(view.Filters),
		SortBy:            string(view.SortBy),
		HasSearched:       view.HasSearched,
		IsLoading:         view.IsLoading,
		Error:             view.Error,
		Metadata: MetadataDTO{
			TotalResults:    view.Metadata.TotalResults,
			FilteredResults: view.Metadata.FilteredResults,
			SourcesQueried:  nonNil(view.Metadata.SourcesQueried),
			SourcesFailed:   nonNil(view.Metadata.SourcesFailed),
			SearchTimeMs:    view.Metadata.SearchTimeMs,
			CacheHit:        view.Metadata.CacheHit,
		},
	}

	if p := view.SearchParams; p != nil {
		resp.SearchParams = &SearchParamsDTO{
			Origin:        p.Origin,
			Destination:   p.Destination,
			DepartureDate: p.DepartureDate,
			ReturnDate:    p.ReturnDate,
			Passengers:    p.Passengers,
			TripType:      string(p.TripType),
		}
	}

	return resp
}

// ToChartDTOs converts chart points, formatting prices in currency.
func ToChartDTOs(points []domain.ChartPoint, currency string) []ChartPointDTO {
	out := make([]ChartPointDTO, len(points))
	for i, p := range points {
		out[i] = ChartPointDTO{
			Name:           p.Name,
			CarrierCode:    p.CarrierCode,
			Price:          p.Price,
			PriceFormatted: format.Price(p.Price, currency),
			Count:          p.Count,
		}
	}
	return out
}

// ToAirportDTOs converts airport suggestions.
func ToAirportDTOs(airports []domain.Airport) []AirportDTO {
	out := make([]AirportDTO, len(airports))
	for i, a := range airports {
		out[i] = AirportDTO{Code: a.Code, Name: a.Name, City: a.City, Country: a.Country}
	}
	return out
}

func toFlightDTO(f domain.Flight, cheapest bool) FlightDTO {
	segments := make([]SegmentDTO, len(f.Segments))
	for i, s := range f.Segments {
		segments[i] = SegmentDTO{
			CarrierCode:  s.CarrierCode,
			FlightNumber: s.FlightNumber,
			Aircraft:     s.AircraftCode,
			Departure:    toPointDTO(s.Departure.AirportCode, s.Departure.Terminal, s.Departure.At),
			Arrival:      toPointDTO(s.Arrival.AirportCode, s.Arrival.Terminal, s.Arrival.At),
			Duration:     DurationDTO{TotalMinutes: s.Duration, Formatted: domain.FormatDuration(s.Duration)},
		}
	}

	durationText := f.DurationFormatted
	if durationText == "" {
		durationText = domain.FormatDuration(f.Duration)
	}

	return FlightDTO{
		ID: f.ID,
		Airline: AirlineDTO{
			Name: f.CarrierName,
			Code: f.CarrierCode,
		},
		Departure: toPointDTO(f.OriginAirport, "", f.DepartureTime),
		Arrival:   toPointDTO(f.DestinationAirport, "", f.ArrivalTime),
		Duration: DurationDTO{
			TotalMinutes: f.Duration,
			Formatted:    durationText,
		},
		Stops: f.StopCount,
		Price: PriceDTO{
			Amount:    f.Price,
			Currency:  f.Currency,
			Formatted: format.Price(f.Price, f.Currency),
		},
		IsCheapest: cheapest,
		Segments:   segments,
	}
}

// toPointDTO renders the wall clock of t; the zero time renders as empty strings.
func toPointDTO(airport, terminal string, t time.Time) FlightPointDTO {
	p := FlightPointDTO{Airport: airport, Terminal: terminal}
	if t.IsZero() {
		return p
	}
	p.DateTime = timeutil.FormatLocalDateTime(t)
	p.Date = timeutil.FormatDate(t)
	p.Time = timeutil.FormatClock(t)
	return p
}

func toFiltersDTO(cfg domain.FilterConfiguration) FiltersDTO {
	slots := make([]string, len(cfg.DepartureTimes))
	for i, s := range cfg.DepartureTimes {
		slots[i] = string(s)
	}
	return FiltersDTO{
		Stops:          append([]int{}, cfg.Stops...),
		PriceRange:     PriceRangeDTO{Min: cfg.PriceRange.Min, Max: cfg.PriceRange.Max},
		Airlines:       append([]string{}, cfg.Airlines...),
		DepartureTimes: slots,
		MaxDuration:    cfg.MaxDuration,
		DirectOnly:     cfg.DirectOnly,
		SortBy:         string(cfg.SortBy),
	}
}

// resultCurrency is the currency of the first flight; results of one
// search share a currency.
func resultCurrency(flights []domain.Flight) string {
	if len(flights) == 0 {
		return ""
	}
	return flights[0].Currency
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
