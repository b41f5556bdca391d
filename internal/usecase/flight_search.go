// Package usecase contains the business logic for flight search sessions.
// It queries flight sources with the Scatter-Gather concurrency pattern and
// feeds the results into each session's result store.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-search/flight-result-engine/internal/cache"
	"github.com/flight-search/flight-result-engine/internal/domain"
	"github.com/flight-search/flight-result-engine/internal/engine"
)

// Default timeout values.
const (
	DefaultGlobalTimeout = 15 * time.Second
	DefaultSourceTimeout = 10 * time.Second
)

// FlightSearchUseCase defines the operations of a search session.
type FlightSearchUseCase interface {
	// CreateSession starts an empty session and returns its id.
	CreateSession() string

	// DeleteSession clears and forgets a session.
	DeleteSession(sessionID string) error

	// Search queries the flight sources and replaces the session's results.
	Search(ctx context.Context, sessionID string, params domain.SearchParams) (domain.ResultsView, error)

	// Results returns the session's current view. An empty sortBy uses the
	// session's filter sort option.
	Results(sessionID string, sortBy domain.SortOption) (domain.ResultsView, error)

	// ChartData returns the per-airline minimum prices of the filtered flights.
	ChartData(sessionID string) ([]domain.ChartPoint, error)

	// UpdateFilters applies a partial filter update.
	UpdateFilters(sessionID string, patch engine.FilterPatch) (domain.ResultsView, error)

	// ResetFilters reseeds the filters from the current result set.
	ResetFilters(sessionID string) (domain.ResultsView, error)

	// ClearSearch drops the session's results and search parameters.
	ClearSearch(sessionID string) (domain.ResultsView, error)
}

// Config contains configuration options for the use case.
type Config struct {
	GlobalTimeout time.Duration
	SourceTimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		GlobalTimeout: DefaultGlobalTimeout,
		SourceTimeout: DefaultSourceTimeout,
	}
}

type flightSearchUseCase struct {
	sources       []domain.FlightSource
	sessions      *SessionManager
	cache         cache.SearchCache
	logger        zerolog.Logger
	globalTimeout time.Duration
	sourceTimeout time.Duration
}

// NewFlightSearchUseCase creates a FlightSearchUseCase over the given sources.
// If config is nil, default timeout values are used. A nil searchCache
// disables caching.
func NewFlightSearchUseCase(
	sources []domain.FlightSource,
	sessions *SessionManager,
	searchCache cache.SearchCache,
	logger zerolog.Logger,
	config *Config,
) FlightSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.SourceTimeout > 0 {
			cfg.SourceTimeout = config.SourceTimeout
		}
	}
	if searchCache == nil {
		searchCache = cache.NewNoOpCache()
	}

	return &flightSearchUseCase{
		sources:       sources,
		sessions:      sessions,
		cache:         searchCache,
		logger:        logger.With().Str("component", "flight_search").Logger(),
		globalTimeout: cfg.GlobalTimeout,
		sourceTimeout: cfg.SourceTimeout,
	}
}

func (uc *flightSearchUseCase) CreateSession() string {
	return uc.sessions.Create().ID
}

func (uc *flightSearchUseCase) DeleteSession(sessionID string) error {
	return uc.sessions.Delete(sessionID)
}

// sourceResult holds the result from a single source query.
type sourceResult struct {
	index    int
	source   string
	result   *domain.SearchResult
	err      error
	duration time.Duration
}

// Search implements FlightSearchUseCase.Search.
func (uc *flightSearchUseCase) Search(ctx context.Context, sessionID string, params domain.SearchParams) (domain.ResultsView, error) {
	session, err := uc.sessions.Get(sessionID)
	if err != nil {
		return domain.ResultsView{}, err
	}

	params.SetDefaults()
	if err := params.Validate(); err != nil {
		return domain.ResultsView{}, err
	}

	startTime := time.Now()
	store := session.Store
	store.SetSearchParams(params)
	store.SetLoading(true)
	store.SetError("")
	defer store.SetLoading(false)

	log := uc.requestLogger(ctx).With().
		Str("session_id", sessionID).
		Str("origin", params.Origin).
		Str("destination", params.Destination).
		Str("departure_date", params.DepartureDate).
		Logger()

	result, hit := uc.cached(ctx, params, log)
	md := domain.SearchMetadata{CacheHit: hit}

	if !hit {
		var gatherErr error
		result, md.SourcesQueried, md.SourcesFailed, gatherErr = uc.gather(ctx, params, log)
		if gatherErr != nil {
			store.SetError(userMessage(gatherErr))
			log.Error().Err(gatherErr).Msg("search failed")
			return domain.ResultsView{}, gatherErr
		}
		if len(md.SourcesFailed) == 0 {
			if err := uc.cache.Set(ctx, params, result); err != nil {
				log.Warn().Err(err).Msg("search cache write failed")
			}
		}
	}

	store.SetSearchResults(result.Flights, result.Carriers)
	md.TotalResults = len(result.Flights)
	md.SearchTimeMs = time.Since(startTime).Milliseconds()
	session.setMetadata(md)

	log.Info().
		Int("results", md.TotalResults).
		Bool("cache_hit", hit).
		Int64("duration_ms", md.SearchTimeMs).
		Msg("search completed")

	// The deferred SetLoading runs after the view is built.
	view := uc.view(session, "")
	view.IsLoading = false
	return view, nil
}

func (uc *flightSearchUseCase) cached(ctx context.Context, params domain.SearchParams, log zerolog.Logger) (*domain.SearchResult, bool) {
	result, ok, err := uc.cache.Get(ctx, params)
	if err != nil {
		log.Warn().Err(err).Msg("search cache read failed")
		return nil, false
	}
	if !ok || result == nil {
		return nil, false
	}
	return result, true
}

// gather queries every source concurrently and merges the answers in
// source registration order. It fails only when every source failed.
func (uc *flightSearchUseCase) gather(ctx context.Context, params domain.SearchParams, log zerolog.Logger) (*domain.SearchResult, []string, []string, error) {
	if len(uc.sources) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: no flight sources configured", domain.ErrSourceUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.globalTimeout)
	defer cancel()

	// Buffered channel to prevent goroutine blocking
	resultsChan := make(chan sourceResult, len(uc.sources))

	var wg sync.WaitGroup
	for i, source := range uc.sources {
		wg.Add(1)
		go func(i int, s domain.FlightSource) {
			defer wg.Done()
			uc.querySource(ctx, i, s, params, resultsChan)
		}(i, source)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	results := make([]sourceResult, len(uc.sources))
	for r := range resultsChan {
		results[r.index] = r
	}

	merged := &domain.SearchResult{Carriers: map[string]string{}}
	queried := make([]string, 0, len(results))
	var failed []string
	var firstErr error
	qualify := len(uc.sources) > 1

	for _, r := range results {
		queried = append(queried, r.source)
		if r.err != nil {
			failed = append(failed, r.source)
			if firstErr == nil {
				firstErr = r.err
			}
			log.Warn().Err(r.err).Str("source", r.source).Dur("duration", r.duration).Msg("flight source failed")
			continue
		}
		log.Debug().Str("source", r.source).Int("flights", len(r.result.Flights)).Dur("duration", r.duration).Msg("flight source answered")

		for _, f := range r.result.Flights {
			if qualify {
				f.ID = r.source + "-" + f.ID
			}
			merged.Flights = append(merged.Flights, f)
		}
		for code, name := range r.result.Carriers {
			if _, ok := merged.Carriers[code]; !ok {
				merged.Carriers[code] = name
			}
		}
	}

	if len(failed) == len(results) {
		return nil, queried, failed, firstErr
	}
	return merged, queried, failed, nil
}

// querySource queries a single source with timeout and panic recovery.
func (uc *flightSearchUseCase) querySource(ctx context.Context, index int, source domain.FlightSource, params domain.SearchParams, results chan<- sourceResult) {
	ctx, cancel := context.WithTimeout(ctx, uc.sourceTimeout)
	defer cancel()

	start := time.Now()
	name := source.Name()

	// Panic recovery to prevent one source from crashing the whole search
	defer func() {
		if r := recover(); r != nil {
			results <- sourceResult{
				index:    index,
				source:   name,
				err:      domain.NewSourceError(name, fmt.Errorf("source panic: %v", r)),
				duration: time.Since(start),
			}
		}
	}()

	result, err := source.Search(ctx, params)
	if err == nil && result == nil {
		result = &domain.SearchResult{}
	}
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		err = domain.NewSourceTimeoutError(name)
	}

	results <- sourceResult{
		index:    index,
		source:   name,
		result:   result,
		err:      err,
		duration: time.Since(start),
	}
}

// requestLogger prefers the request-scoped logger bound by the HTTP
// middleware so search entries carry the request id.
func (uc *flightSearchUseCase) requestLogger(ctx context.Context) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l.With().Str("component", "flight_search").Logger()
	}
	return uc.logger
}

// userMessage is the error text shown in the session state.
func userMessage(err error) string {
	if domain.IsRateLimited(err) {
		return domain.ErrRateLimited.Error()
	}
	return err.Error()
}

func (uc *flightSearchUseCase) Results(sessionID string, sortBy domain.SortOption) (domain.ResultsView, error) {
	session, err := uc.sessions.Get(sessionID)
	if err != nil {
		return domain.ResultsView{}, err
	}
	return uc.view(session, sortBy), nil
}

func (uc *flightSearchUseCase) ChartData(sessionID string) ([]domain.ChartPoint, error) {
	session, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return session.Store.ChartData(), nil
}

func (uc *flightSearchUseCase) UpdateFilters(sessionID string, patch engine.FilterPatch) (domain.ResultsView, error) {
	session, err := uc.sessions.Get(sessionID)
	if err != nil {
		return domain.ResultsView{}, err
	}
	session.Store.UpdateFilter(patch.Updates()...)
	return uc.view(session, ""), nil
}

func (uc *flightSearchUseCase) ResetFilters(sessionID string) (domain.ResultsView, error) {
	session, err := uc.sessions.Get(sessionID)
	if err != nil {
		return domain.ResultsView{}, err
	}
	session.Store.ResetFilters()
	return uc.view(session, ""), nil
}

func (uc *flightSearchUseCase) ClearSearch(sessionID string) (domain.ResultsView, error) {
	session, err := uc.sessions.Get(sessionID)
	if err != nil {
		return domain.ResultsView{}, err
	}
	session.Store.ClearSearch()
	session.setMetadata(domain.SearchMetadata{})
	return uc.view(session, ""), nil
}

// view builds the results view from one consistent store state.
func (uc *flightSearchUseCase) view(session *Session, sortBy domain.SortOption) domain.ResultsView {
	st := session.Store.State()
	if !sortBy.IsValid() {
		sortBy = st.Filters.SortBy
	}
	if !sortBy.IsValid() {
		sortBy = domain.SortByPrice
	}

	var params *domain.SearchParams
	if st.Params.Origin != "" {
		p := st.Params
		params = &p
	}

	md := session.Metadata()
	md.TotalResults = st.RawCount

	return domain.NewResultsView(domain.ResultsView{
		SessionID:         session.ID,
		SearchParams:      params,
		Flights:           engine.SortFlights(st.Flights, sortBy),
		CheapestFlightID:  st.CheapestFlightID,
		HasCheapest:       st.HasCheapest,
		Chart:             st.Chart,
		AvailableAirlines: st.AvailableAirlines,
		PriceRange:        st.PriceRange,
		Filters:           st.Filters,
		SortBy:            sortBy,
		HasSearched:       st.HasSearched,
		IsLoading:         st.IsLoading,
		Error:             st.Error,
		Metadata:          md,
	})
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
