package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-search/flight-result-engine/internal/domain"
)

// FileSource answers every search from an Amadeus-shaped JSON file.
// It is used for local development when no API credentials are configured.
type FileSource struct {
	path       string
	normalizer *Normalizer
	logger     zerolog.Logger
}

// NewFileSource creates a fixture source reading path on every search.
func NewFileSource(path string, loc *time.Location, logger zerolog.Logger) *FileSource {
	return &FileSource{
		path:       path,
		normalizer: NewNormalizer(loc, logger),
		logger:     logger.With().Str("source", "amadeus_fixture").Logger(),
	}
}

// Name returns the unique identifier of this source.
func (s *FileSource) Name() string {
	return "amadeus_fixture"
}

// Search returns the fixture offers whose route matches params. An
// unknown route yields no flights.
func (s *FileSource) Search(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, domain.NewSourceError(s.Name(), fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err))
	}

	var body FlightOffersResponse
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, domain.NewSourceError(s.Name(), fmt.Errorf("%w: parse fixture: %v", domain.ErrSourceUnavailable, err))
	}

	result := s.normalizer.Normalize(&body)

	matching := make([]domain.Flight, 0, len(result.Flights))
	for _, f := range result.Flights {
		if f.OriginAirport == params.Origin && f.DestinationAirport == params.Destination {
			matching = append(matching, f)
		}
	}
	result.Flights = matching

	s.logger.Debug().
		Str("path", s.path).
		Int("flights", len(result.Flights)).
		Msg("Served fixture search")

	return result, nil
}

var _ domain.FlightSource = (*FileSource)(nil)
