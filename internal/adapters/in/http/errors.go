package http

import (
	"errors"
	"log/slog"
	"net/http"

	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// statusOf maps error kinds to HTTP status codes. Capacity is tested before
// validation since both describe a bad request.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrCapacityExceeded):
		return http.StatusUnprocessableEntity
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders every error as {"error": message}. Internal errors
// are logged and hidden behind a generic message.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := http.StatusText(he.Code)
			if m, ok := he.Message.(string); ok {
				msg = m
			}
			_ = c.JSON(he.Code, ErrorResponse{Error: msg})
			return
		}

		status := statusOf(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Request().Method, "path", c.Path(), "error", err)
			msg = "internal server error"
		}
		_ = c.JSON(status, ErrorResponse{Error: msg})
	}
}

func badRequest(msg string) error {
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}
