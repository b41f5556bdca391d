// Package http provides the HTTP handler layer for the flight search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-result-engine/internal/adapter/http/response"
	"github.com/flight-search/flight-result-engine/internal/domain"
	"github.com/flight-search/flight-result-engine/internal/usecase"
)

// AirportSearcher answers airport autocomplete queries.
type AirportSearcher interface {
	Search(keyword string) []domain.Airport
}

// FlightHandler handles HTTP requests for search sessions and airports.
type FlightHandler struct {
	useCase   usecase.FlightSearchUseCase
	airports  AirportSearcher
	validator *RequestValidator
}

// NewFlightHandler creates a new FlightHandler with the given use case and
// airport directory.
func NewFlightHandler(uc usecase.FlightSearchUseCase, airports AirportSearcher) *FlightHandler {
	return &FlightHandler{
		useCase:   uc,
		airports:  airports,
		validator: NewRequestValidator(),
	}
}

// Validator returns the request validator so it can be installed as the
// Echo validator.
func (h *FlightHandler) Validator() *RequestValidator {
	return h.validator
}

// CreateSession handles POST /api/v1/sessions
//
// @Summary Create a search session
// @Description Start an empty search session. Each session keeps its own results and filters.
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Router /sessions [post]
func (h *FlightHandler) CreateSession(c echo.Context) error {
	return response.Created(c, SessionResponse{ID: h.useCase.CreateSession()})
}

// DeleteSession handles DELETE /api/v1/sessions/:id
//
// @Summary Delete a search session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /sessions/{id} [delete]
func (h *FlightHandler) DeleteSession(c echo.Context) error {
	if err := h.useCase.DeleteSession(c.Param("id")); err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}

// Search handles POST /api/v1/sessions/:id/search
//
// @Summary Search for flights
// @Description Query the flight sources and replace the session's result set. Filters are reseeded to accept every result.
// @Tags search
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SearchRequest true "Search parameters"
// @Success 200 {object} ResultsResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Failure 429 {object} response.ErrorDetail "Provider rate limit"
// @Failure 502 {object} response.ErrorDetail "Provider rejected credentials"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /sessions/{id}/search [post]
func (h *FlightHandler) Search(c echo.Context) error {
	var req SearchRequest

	// Bind request body
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	req.Normalize()
	if err := c.Validate(&req); err != nil {
		return h.handleValidationError(c, err)
	}

	view, err := h.useCase.Search(c.Request().Context(), c.Param("id"), ToDomainParams(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToResultsResponse(view))
}

// Results handles GET /api/v1/sessions/:id/results
//
// @Summary Get the session's results
// @Description Filtered flights in display order with the cheapest flight, chart data, facets and filters.
// @Tags search
// @Produce json
// @Param id path string true "Session ID"
// @Param sortBy query string false "price, duration, departure or arrival; defaults to the session's sort"
// @Success 200 {object} ResultsResponse
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /sessions/{id}/results [get]
func (h *FlightHandler) Results(c echo.Context) error {
	view, err := h.useCase.Results(c.Param("id"), domain.SortOption(c.QueryParam("sortBy")))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToResultsResponse(view))
}

// Chart handles GET /api/v1/sessions/:id/chart
//
// @Summary Get price chart data
// @Description Cheapest price per airline among the filtered flights, cheapest first.
// @Tags search
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ChartResponse
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /sessions/{id}/chart [get]
func (h *FlightHandler) Chart(c echo.Context) error {
	// Points and currency come from one view so they describe the same state.
	view, err := h.useCase.Results(c.Param("id"), "")
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ChartResponse{Chart: ToChartDTOs(view.Chart, resultCurrency(view.Flights))})
}

// UpdateFilters handles PATCH /api/v1/sessions/:id/filters
//
// @Summary Update filters
// @Description Replace the given filter fields; omitted fields keep their value.
// @Tags filters
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body FilterPatchRequest true "Filter fields to replace"
// @Success 200 {object} ResultsResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /sessions/{id}/filters [patch]
func (h *FlightHandler) UpdateFilters(c echo.Context) error {
	var req FilterPatchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := c.Validate(&req); err != nil {
		return h.handleValidationError(c, err)
	}

	view, err := h.useCase.UpdateFilters(c.Param("id"), ToFilterPatch(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToResultsResponse(view))
}

// ResetFilters handles POST /api/v1/sessions/:id/filters/reset
//
// @Summary Reset filters
// @Description Reseed the filters so every flight of the current result set passes.
// @Tags filters
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ResultsResponse
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /sessions/{id}/filters/reset [post]
func (h *FlightHandler) ResetFilters(c echo.Context) error {
	view, err := h.useCase.ResetFilters(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToResultsResponse(view))
}

// ClearSearch handles POST /api/v1/sessions/:id/clear
//
// @Summary Clear the search
// @Description Drop the result set and search parameters and restore the default filters.
// @Tags search
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ResultsResponse
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /sessions/{id}/clear [post]
func (h *FlightHandler) ClearSearch(c echo.Context) error {
	view, err := h.useCase.ClearSearch(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToResultsResponse(view))
}

// SearchAirports handles GET /api/v1/airports
//
// @Summary Airport autocomplete
// @Description Match airports by code, city, country or name. Queries shorter than two characters return nothing.
// @Tags airports
// @Produce json
// @Param q query string true "Search keyword"
// @Success 200 {object} AirportsResponse
// @Router /airports [get]
func (h *FlightHandler) SearchAirports(c echo.Context) error {
	return response.OK(c, AirportsResponse{Airports: ToAirportDTOs(h.airports.Search(c.QueryParam("q")))})
}

// Health handles GET /health
// Simple health check endpoint.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError renders field errors as a 400 with details.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.Error(c, http.StatusBadRequest, response.CodeValidationError, err.Error())
}

// handleError maps domain errors to HTTP responses.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	return response.FromError(c, err)
}
