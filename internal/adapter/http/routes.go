package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all flight search API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware on
// the versioned API group. The health check never gets the middleware.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *FlightHandler, middleware ...echo.MiddlewareFunc) {
	e.Validator = h.Validator()

	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1", middleware...)

	api.GET("/airports", h.SearchAirports)

	sessions := api.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.DELETE("/:id", h.DeleteSession)
	sessions.POST("/:id/search", h.Search)
	sessions.GET("/:id/results", h.Results)
	sessions.GET("/:id/chart", h.Chart)
	sessions.PATCH("/:id/filters", h.UpdateFilters)
	sessions.POST("/:id/filters/reset", h.ResetFilters)
	sessions.POST("/:id/clear", h.ClearSearch)
}
