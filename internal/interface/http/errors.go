package http

import (
	"errors"
	"net/http"

	"offbeat-travels/pkg/apperrors"

	"github.com/labstack/echo/v4"
)

// httpError maps a service error to an HTTP response. Validation,
// auth, not-found and conflict errors carry their own safe messages;
// anything else collapses to a generic body so driver text never
// reaches the client.
func (h *Handler) httpError(c echo.Context, operation string, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	case errors.Is(err, apperrors.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, apperrors.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, "already exists")
	case errors.Is(err, apperrors.ErrShardUnavailable):
		h.logger.Error("Shard unavailable", "operation", operation, "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "service temporarily unavailable")
	default:
		h.logger.Error("Operation failed", "operation", operation, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong, please retry")
	}
}
