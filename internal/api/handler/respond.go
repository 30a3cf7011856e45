package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// successEnvelope is the canonical success shape. Failures never go through
// here; they are rendered by the HTTP error handler with the same envelope
// keys, so callers discriminate solely on the success flag.
type successEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respondSuccess(c echo.Context, status int, data any, message string) error {
	return c.JSON(status, successEnvelope{Success: true, Message: message, Data: data})
}

// Welcome handles GET / with the service banner.
func Welcome(c echo.Context) error {
	return respondSuccess(c, http.StatusOK,
		echo.Map{"service": "EvidenceTrack API"}, "Welcome to EvidenceTrack API")
}
