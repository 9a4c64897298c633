package api

import (
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/cardsmith/pkg/models"
	"github.com/codeready-toolchain/cardsmith/pkg/services"
)

// cardLogsHandler handles GET /api/logs/:cardId.
// Returns the card's active execution with its ordered logs; when nothing
// is running, the most recent execution is returned instead.
func (s *Server) cardLogsHandler(c *echo.Context) error {
	cardID := c.Param("cardId")
	if cardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card id is required")
	}
	ctx := c.Request().Context()

	if _, err := s.cards.Get(ctx, cardID); err != nil {
		return mapServiceError(err)
	}

	exec, err := s.executions.ActiveExecution(ctx, cardID)
	if errors.Is(err, services.ErrNotFound) {
		history, herr := s.executions.History(ctx, cardID)
		if herr != nil {
			return mapServiceError(herr)
		}
		if len(history) == 0 {
			return echo.NewHTTPError(http.StatusNotFound, "resource not found")
		}
		exec = history[0]
	} else if err != nil {
		return mapServiceError(err)
	}

	logs, err := s.executions.Logs(ctx, exec.ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, models.NewExecutionResponse(exec, logs))
}

// cardLogHistoryHandler handles GET /api/logs/:cardId/history.
// Returns every execution of the card, newest first, each with its logs.
func (s *Server) cardLogHistoryHandler(c *echo.Context) error {
	cardID := c.Param("cardId")
	if cardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card id is required")
	}
	ctx := c.Request().Context()

	if _, err := s.cards.Get(ctx, cardID); err != nil {
		return mapServiceError(err)
	}

	history, err := s.executions.History(ctx, cardID)
	if err != nil {
		return mapServiceError(err)
	}

	resp := &models.ExecutionHistoryResponse{
		CardID:     cardID,
		Executions: make([]*models.ExecutionResponse, 0, len(history)),
	}
	for _, exec := range history {
		logs, err := s.executions.Logs(ctx, exec.ID)
		if err != nil {
			return mapServiceError(err)
		}
		resp.Executions = append(resp.Executions, models.NewExecutionResponse(exec, logs))
	}
	return c.JSON(http.StatusOK, resp)
}
