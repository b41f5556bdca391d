package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/flight-search/flight-result-engine/internal/domain"
	"github.com/flight-search/flight-result-engine/internal/infrastructure/retry"
)

const (
	tokenPath        = "/v1/security/oauth2/token"
	flightOffersPath = "/v2/shopping/flight-offers"

	// maxErrorBody caps how much of an error response is read for logging
	maxErrorBody = 4 << 10
)

// Config holds the Amadeus client settings.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string

	// MaxResults is sent as the "max" query parameter
	MaxResults int

	// Currency is sent as the "currencyCode" query parameter
	Currency string

	// RequestsPerSecond limits outgoing calls; 0 disables limiting
	RequestsPerSecond float64
	Burst             int

	// Timeout bounds a single HTTP round trip
	Timeout time.Duration

	Retry retry.Config

	// Location is used for timestamps without a UTC offset
	Location *time.Location
}

// Client queries the Amadeus flight offers API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	normalizer *Normalizer
	logger     zerolog.Logger

	tokenConfig *clientcredentials.Config

	mu     sync.Mutex
	tokens oauth2.TokenSource
}

// NewClient creates an Amadeus client. Tokens are fetched lazily on the
// first search and reused until they expire.
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 50
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry = retry.SourceConfig
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, burst),
		normalizer: NewNormalizer(cfg.Location, logger),
		logger:     logger.With().Str("source", SourceName).Logger(),
		tokenConfig: &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.BaseURL + tokenPath,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
	}
	c.tokens = c.newTokenSource()
	return c
}

// Name returns the unique identifier of this source.
func (c *Client) Name() string {
	return SourceName
}

// Search fetches and normalizes flight offers. Server errors are retried
// with backoff; an expired token is refreshed once per attempt.
func (c *Client) Search(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
	start := time.Now()

	cfg := c.cfg.Retry.
		WithRetryIf(func(err error) bool {
			return retry.SkipPermanent(err) && domain.IsRetryable(err)
		}).
		WithOnRetry(func(attempt int, err error, wait time.Duration) {
			c.logger.Warn().
				Err(err).
				Int("attempt", attempt).
				Dur("wait", wait).
				Msg("Retrying flight offers search")
		})

	result, err := retry.DoWithResult(ctx, func() (*domain.SearchResult, error) {
		return c.searchOnce(ctx, params)
	}, cfg)

	if err != nil {
		err = retry.Unwrap(err)
		if errors.Is(err, context.DeadlineExceeded) {
			err = domain.NewSourceTimeoutError(SourceName)
		}
		c.logger.Error().
			Err(err).
			Str("origin", params.Origin).
			Str("destination", params.Destination).
			Dur("elapsed", time.Since(start)).
			Msg("Flight offers search failed")
		return nil, err
	}

	c.logger.Debug().
		Int("flights", len(result.Flights)).
		Dur("elapsed", time.Since(start)).
		Msg("Flight offers search completed")

	return result, nil
}

func (c *Client) searchOnce(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
	resp, err := c.do(ctx, params)
	if err != nil {
		return nil, err
	}

	// the token may have been revoked server-side before its expiry
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		c.resetToken()

		resp, err = c.do(ctx, params)
		if err != nil {
			return nil, err
		}
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var body FlightOffersResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, retry.NewPermanent(domain.NewSourceError(SourceName,
			fmt.Errorf("%w: decode response: %v", domain.ErrSourceUnavailable, err)))
	}

	return c.normalizer.Normalize(&body), nil
}

func (c *Client) do(ctx context.Context, params domain.SearchParams) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, retry.NewPermanent(c.limiterError(ctx, err))
	}

	token, err := c.token()
	if err != nil {
		return nil, c.tokenError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(params), nil)
	if err != nil {
		return nil, retry.NewPermanent(err)
	}
	req.Header.Set("Accept", "application/json")
	token.SetAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, retry.NewPermanent(ctx.Err())
		}
		return nil, domain.NewRetryableSourceError(SourceName,
			fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err))
	}
	return resp, nil
}

// limiterError maps a failed limiter wait. Wait fails early, with ctx
// still live, when the next token is due after the deadline.
func (c *Client) limiterError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if _, ok := ctx.Deadline(); ok {
		return domain.NewSourceTimeoutError(SourceName)
	}
	return domain.NewSourceError(SourceName, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err))
}

// searchURL builds the flight offers query. returnDate is only sent for
// round trips.
func (c *Client) searchURL(params domain.SearchParams) string {
	q := url.Values{}
	q.Set("originLocationCode", params.Origin)
	q.Set("destinationLocationCode", params.Destination)
	q.Set("departureDate", params.DepartureDate)
	if params.IsRoundTrip() {
		q.Set("returnDate", params.ReturnDate)
	}
	q.Set("adults", strconv.Itoa(params.Passengers))
	q.Set("max", strconv.Itoa(c.cfg.MaxResults))
	q.Set("currencyCode", c.cfg.Currency)

	return c.cfg.BaseURL + flightOffersPath + "?" + q.Encode()
}

// checkStatus maps a non-2xx response to a domain error.
func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	detail := readErrorDetail(resp.Body)
	c.logger.Warn().
		Int("status", resp.StatusCode).
		Str("detail", detail).
		Msg("Flight offers request rejected")

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return retry.NewPermanent(domain.NewSourceError(SourceName, domain.ErrSourceUnauthorized))
	case resp.StatusCode == http.StatusTooManyRequests:
		return retry.NewPermanent(domain.NewSourceError(SourceName, domain.ErrRateLimited))
	case resp.StatusCode >= 500:
		return domain.NewRetryableSourceError(SourceName,
			fmt.Errorf("%w: status %d", domain.ErrSourceUnavailable, resp.StatusCode))
	default:
		return retry.NewPermanent(domain.NewSourceError(SourceName,
			fmt.Errorf("%w: status %d: %s", domain.ErrInvalidRequest, resp.StatusCode, detail)))
	}
}

func (c *Client) tokenError(err error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) && re.Response != nil {
		switch {
		case re.Response.StatusCode == http.StatusUnauthorized || re.Response.StatusCode == http.StatusBadRequest:
			return retry.NewPermanent(domain.NewSourceError(SourceName, domain.ErrSourceUnauthorized))
		case re.Response.StatusCode == http.StatusTooManyRequests:
			return retry.NewPermanent(domain.NewSourceError(SourceName, domain.ErrRateLimited))
		}
	}
	return domain.NewRetryableSourceError(SourceName,
		fmt.Errorf("%w: token: %v", domain.ErrSourceUnavailable, err))
}

func (c *Client) token() (*oauth2.Token, error) {
	c.mu.Lock()
	tokens := c.tokens
	c.mu.Unlock()

	return tokens.Token()
}

func (c *Client) resetToken() {
	c.mu.Lock()
	c.tokens = c.newTokenSource()
	c.mu.Unlock()
}

// newTokenSource builds a caching token source on the client's transport.
// The context outlives any single search because refreshes reuse it.
func (c *Client) newTokenSource() oauth2.TokenSource {
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, c.httpClient)
	return c.tokenConfig.TokenSource(ctx)
}

// readErrorDetail extracts the first error detail of an Amadeus error body.
func readErrorDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return ""
	}

	var envelope errorResponse
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Errors) > 0 {
		e := envelope.Errors[0]
		if e.Detail != "" {
			return e.Title + ": " + e.Detail
		}
		return e.Title
	}
	return strings.TrimSpace(string(raw))
}

var _ domain.FlightSource = (*Client)(nil)
