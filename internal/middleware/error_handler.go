package middleware

import (
	"net/http"

	"clientCompass/pkg/logger"

	jsonres "clientCompass/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo HTTPErrorHandler, it normalizes uncaught errors
// into the standard JSON envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", "method", c.Request().Method, "path", c.Path(), "error", err)
	}

	if jsonErr := c.JSON(code, jsonres.Error(http.StatusText(code), message, nil)); jsonErr != nil {
		logger.Error("Failed to write error response", "error", jsonErr)
	}
}
