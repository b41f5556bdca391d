package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-result-engine/internal/domain"
)

// errorMapping ties a domain error to its HTTP rendering. An empty message
// means the error's own text is shown.
type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// errorMappings is checked in order; the first errors.Is match wins.
var errorMappings = []errorMapping{
	{domain.ErrInvalidRequest, http.StatusBadRequest, CodeValidationError, ""},
	{domain.ErrSessionNotFound, http.StatusNotFound, CodeNotFound, MsgSessionNotFound},
	{domain.ErrRateLimited, http.StatusTooManyRequests, CodeRateLimited, domain.ErrRateLimited.Error()},
	{domain.ErrSourceUnauthorized, http.StatusBadGateway, CodeUpstreamError, MsgUpstreamRejected},
	{domain.ErrSourceTimeout, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout},
	{context.Canceled, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled},
	{domain.ErrSourceUnavailable, http.StatusServiceUnavailable, CodeServiceUnavailable, MsgServiceUnavailable},
}

// FromError renders err using the first matching mapping, or a generic 500.
func FromError(c echo.Context, err error) error {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			msg := m.message
			if msg == "" {
				msg = err.Error()
			}
			return Error(c, m.status, m.code, msg)
		}
	}
	return InternalServerError(c)
}

// InvalidRequestBody is the 400 for bodies that are not valid JSON.
func InvalidRequestBody(c echo.Context) error {
	return Error(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody)
}

// ValidationError is the 400 listing the message of each invalid field.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: MsgValidationFailed,
		Details: details,
	})
}

// InternalServerError never exposes the underlying error.
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError)
}
