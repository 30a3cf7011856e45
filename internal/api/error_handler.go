package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dicri/evidencetrack/internal/api/metrics"
	"github.com/dicri/evidencetrack/internal/core/domain"
)

// errorEnvelope is the canonical failure shape. Data is always present and
// null so callers can discriminate solely on the success flag.
type errorEnvelope struct {
	Success          bool                         `json:"success"`
	Message          string                       `json:"message"`
	ErrorCode        string                       `json:"errorCode,omitempty"`
	Data             any                          `json:"data"`
	ValidationErrors []domain.ValidationErrorItem `json:"validationErrors,omitempty"`
}

// NewHTTPErrorHandler returns the echo.HTTPErrorHandler that is the single
// terminal stage for every failure raised by gates, validation, or domain
// operations:
//   - Classified *domain.APIError values keep their status, message, code,
//     and validation items; 5xx ones are logged before responding.
//   - Echo's own errors (router 404/405, bind failures outside the
//     validator) keep their status and message with no machine code.
//   - Anything else is logged in full and collapses to a generic 500 that
//     leaks nothing about the underlying fault.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var apiErr *domain.APIError
		if errors.As(err, &apiErr) {
			if apiErr.Status >= http.StatusInternalServerError {
				log.Error().
					Str("error_code", apiErr.Code).
					Str("method", c.Request().Method).
					Str("path", c.Path()).
					Msg(apiErr.Message)
			}
			metrics.RequestErrorsTotal.WithLabelValues(apiErr.Code).Inc()
			_ = c.JSON(apiErr.Status, errorEnvelope{
				Success:          false,
				Message:          apiErr.Message,
				ErrorCode:        apiErr.Code,
				Data:             nil,
				ValidationErrors: apiErr.ValidationErrors,
			})
			return
		}

		// Echo's own errors: unknown route, wrong method, transport-level
		// bind failures. These never carry a machine code.
		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorEnvelope{
				Success: false,
				Message: fmt.Sprintf("%v", he.Message),
				Data:    nil,
			})
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		metrics.RequestErrorsTotal.WithLabelValues("UNEXPECTED_ERROR").Inc()
		_ = c.JSON(http.StatusInternalServerError, errorEnvelope{
			Success:   false,
			Message:   "An unexpected error occurred.",
			ErrorCode: "UNEXPECTED_ERROR",
			Data:      nil,
		})
	}
}
