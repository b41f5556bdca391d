package amadeus

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-search/flight-result-engine/internal/domain"
)

// SourceName is the unique identifier of the Amadeus flight source.
const SourceName = "amadeus"

// localLayout is the Amadeus timestamp format. It carries no UTC offset.
const localLayout = "2006-01-02T15:04:05"

var (
	errNoItinerary = errors.New("offer has no itinerary")
	errNoSegments  = errors.New("itinerary has no segments")
)

var isoDurationRegex = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?)?`)

// Normalizer converts Amadeus offers into domain flights.
type Normalizer struct {
	loc    *time.Location
	logger zerolog.Logger
}

// NewNormalizer creates a normalizer that reads offset-less timestamps as
// wall-clock time in loc. A nil loc means time.Local.
func NewNormalizer(loc *time.Location, logger zerolog.Logger) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{loc: loc, logger: logger}
}

// Normalize converts every usable offer of resp in provider order.
// Offers that cannot be normalized are skipped and logged.
func (n *Normalizer) Normalize(resp *FlightOffersResponse) *domain.SearchResult {
	carriers := make(map[string]string, len(resp.Dictionaries.Carriers))
	for code, name := range resp.Dictionaries.Carriers {
		carriers[code] = name
	}

	flights := make([]domain.Flight, 0, len(resp.Data))
	for _, offer := range resp.Data {
		f, err := n.NormalizeOffer(offer, carriers)
		if err != nil {
			n.logger.Warn().
				Err(err).
				Str("offer_id", offer.ID).
				Msg("Skipping offer")
			continue
		}
		flights = append(flights, f)
	}

	return &domain.SearchResult{Flights: flights, Carriers: carriers}
}

// NormalizeOffer converts one offer using its outbound itinerary.
func (n *Normalizer) NormalizeOffer(offer FlightOffer, carriers map[string]string) (domain.Flight, error) {
	if len(offer.Itineraries) == 0 {
		return domain.Flight{}, errNoItinerary
	}
	itinerary := offer.Itineraries[0]
	if len(itinerary.Segments) == 0 {
		return domain.Flight{}, errNoSegments
	}

	price, err := strconv.ParseFloat(offer.Price.GrandTotal, 64)
	if err != nil || price < 0 {
		return domain.Flight{}, fmt.Errorf("invalid grandTotal %q", offer.Price.GrandTotal)
	}

	first := itinerary.Segments[0]
	last := itinerary.Segments[len(itinerary.Segments)-1]

	carrierCode := first.CarrierCode
	if len(offer.ValidatingAirlineCodes) > 0 && offer.ValidatingAirlineCodes[0] != "" {
		carrierCode = offer.ValidatingAirlineCodes[0]
	}
	carrierName := carriers[carrierCode]
	if carrierName == "" {
		carrierName = carrierCode
	}

	duration := ParseISODuration(itinerary.Duration)

	segments := make([]domain.Segment, len(itinerary.Segments))
	for i, s := range itinerary.Segments {
		segments[i] = domain.Segment{
			CarrierCode:  s.CarrierCode,
			FlightNumber: s.Number,
			Departure: domain.SegmentPoint{
				AirportCode: s.Departure.IATACode,
				Terminal:    s.Departure.Terminal,
				At:          n.parseDateTime(s.Departure.At),
			},
			Arrival: domain.SegmentPoint{
				AirportCode: s.Arrival.IATACode,
				Terminal:    s.Arrival.Terminal,
				At:          n.parseDateTime(s.Arrival.At),
			},
			AircraftCode: s.Aircraft.Code,
			Duration:     ParseISODuration(s.Duration),
		}
	}

	return domain.Flight{
		ID:                 offer.ID,
		CarrierCode:        carrierCode,
		CarrierName:        carrierName,
		Price:              price,
		Currency:           offer.Price.Currency,
		DepartureTime:      segments[0].Departure.At,
		ArrivalTime:        segments[len(segments)-1].Arrival.At,
		Duration:           duration,
		DurationFormatted:  domain.FormatDuration(duration),
		StopCount:          len(segments) - 1,
		OriginAirport:      first.Departure.IATACode,
		DestinationAirport: last.Arrival.IATACode,
		Segments:           segments,
	}, nil
}

// parseDateTime reads an Amadeus timestamp as wall-clock time in the
// normalizer's location. Timestamps with an offset keep it.
// Unparseable values yield the zero time.
func (n *Normalizer) parseDateTime(value string) time.Time {
	if t, err := time.ParseInLocation(localLayout, value, n.loc); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	return time.Time{}
}

// ParseISODuration converts an ISO 8601 duration ("PT5H30M", "P1DT2H")
// to minutes. Unrecognized input yields 0.
func ParseISODuration(value string) int {
	m := isoDurationRegex.FindStringSubmatch(value)
	if m == nil {
		return 0
	}

	days, _ := strconv.Atoi(m[1])
	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])

	return days*24*60 + hours*60 + minutes
}
