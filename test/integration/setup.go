// Package integration provides helpers and integration tests for the flight result engine.
// Integration tests verify that components work together correctly, including
// HTTP handlers, middleware, sessions, the use case and flight sources.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-result-engine/internal/adapter/airport"
	httpAdapter "github.com/flight-search/flight-result-engine/internal/adapter/http"
	"github.com/flight-search/flight-result-engine/internal/adapter/http/middleware"
	"github.com/flight-search/flight-result-engine/internal/adapter/provider/amadeus"
	"github.com/flight-search/flight-result-engine/internal/cache"
	"github.com/flight-search/flight-result-engine/internal/domain"
	"github.com/flight-search/flight-result-engine/internal/usecase"
	"github.com/flight-search/flight-result-engine/test/testutil"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo     *echo.Echo
	Handler  *httpAdapter.FlightHandler
	Sessions *usecase.SessionManager
	UseCase  usecase.FlightSearchUseCase
}

// NewTestServer creates a test server over the given sources with the full
// middleware stack. A nil searchCache disables caching.
func NewTestServer(t *testing.T, sources []domain.FlightSource, searchCache cache.SearchCache, config *usecase.Config) *TestServer {
	t.Helper()

	airports, err := airport.LoadDefault()
	require.NoError(t, err)

	sessions := usecase.NewSessionManager(nil, zerolog.Nop())
	uc := usecase.NewFlightSearchUseCase(sources, sessions, searchCache, zerolog.Nop(), config)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, zerolog.Nop())

	handler := httpAdapter.NewFlightHandler(uc, airports)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:     e,
		Handler:  handler,
		Sessions: sessions,
		UseCase:  uc,
	}
}

// NewFixtureServer creates a test server answering searches from the
// bundled Amadeus fixture, the way the service runs without credentials.
func NewFixtureServer(t *testing.T) *TestServer {
	t.Helper()
	source := amadeus.NewFileSource(testutil.FixturePath(t), time.UTC, zerolog.Nop())
	return NewTestServer(t, []domain.FlightSource{source}, nil, nil)
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// CreateSession creates a session and returns its id.
func (ts *TestServer) CreateSession(t *testing.T) string {
	t.Helper()
	resp := ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/sessions"})
	require.Equal(t, http.StatusCreated, resp.Code, string(resp.Body))

	var session httpAdapter.SessionResponse
	require.NoError(t, json.Unmarshal(resp.Body, &session))
	require.NotEmpty(t, session.ID)
	return session.ID
}

// Search runs a search in the session.
func (ts *TestServer) Search(sessionID string, body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   sessionPath(sessionID, "/search"),
		Body:   body,
	})
}

// Results fetches the session's results view, optionally re-sorted.
func (ts *TestServer) Results(sessionID, sortBy string) Response {
	path := sessionPath(sessionID, "/results")
	if sortBy != "" {
		path += "?sortBy=" + sortBy
	}
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// Chart fetches the session's chart points.
func (ts *TestServer) Chart(sessionID string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: sessionPath(sessionID, "/chart")})
}

// UpdateFilters applies a partial filter update.
func (ts *TestServer) UpdateFilters(sessionID string, body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPatch,
		Path:   sessionPath(sessionID, "/filters"),
		Body:   body,
	})
}

// ResetFilters reseeds the session's filters.
func (ts *TestServer) ResetFilters(sessionID string) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: sessionPath(sessionID, "/filters/reset")})
}

// ClearSearch clears the session's search.
func (ts *TestServer) ClearSearch(sessionID string) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: sessionPath(sessionID, "/clear")})
}

// DeleteSession deletes the session.
func (ts *TestServer) DeleteSession(sessionID string) Response {
	return ts.Do(Request{Method: http.MethodDelete, Path: sessionPath(sessionID, "")})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

func sessionPath(sessionID, suffix string) string {
	return "/api/v1/sessions/" + sessionID + suffix
}

// ParseResults parses the response body as a results view.
func (r Response) ParseResults(t *testing.T) httpAdapter.ResultsResponse {
	t.Helper()
	var resp httpAdapter.ResultsResponse
	require.NoError(t, json.Unmarshal(r.Body, &resp), string(r.Body))
	return resp
}

// ParseError parses the response body to extract error information.
func (r Response) ParseError(t *testing.T) map[string]interface{} {
	t.Helper()
	var errResp map[string]interface{}
	require.NoError(t, json.Unmarshal(r.Body, &errResp), string(r.Body))
	return errResp
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Passengers    int    `json:"passengers,omitempty"`
	TripType      string `json:"tripType,omitempty"`
}

// DefaultSearchRequest returns the fixture's JFK to LAX search.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2025-12-15",
		Passengers:    1,
	}
}

// DefaultSearchParams returns the fixture's JFK to LAX search for calling
// the use case directly.
func DefaultSearchParams() domain.SearchParams {
	return domain.SearchParams{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2025-12-15",
		Passengers:    1,
	}
}

// FlightIDs returns the ids of a results view in display order.
func FlightIDs(resp httpAdapter.ResultsResponse) []string {
	ids := make([]string, len(resp.Flights))
	for i, f := range resp.Flights {
		ids[i] = f.ID
	}
	return ids
}
