package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/cardsmith/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
// InvalidTransitionError keeps its exact message: the board UI shows it
// verbatim.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	var transErr *services.InvalidTransitionError
	if errors.As(err, &transErr) {
		return echo.NewHTTPError(http.StatusBadRequest, transErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrGoalTerminal) {
		return echo.NewHTTPError(http.StatusConflict, "goal is in a terminal state")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
