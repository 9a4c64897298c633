package api

import (
	"log/slog"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/cardsmith/pkg/events"
	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// listCardsHandler handles GET /api/cards.
// Cards come back in board order: column position, then creation time.
func (s *Server) listCardsHandler(c *echo.Context) error {
	cards, err := s.cards.List(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &models.CardListResponse{
		Cards:      models.NewCardResponses(cards),
		TotalCount: len(cards),
	})
}

// getCardHandler handles GET /api/cards/:id.
func (s *Server) getCardHandler(c *echo.Context) error {
	cardID := c.Param("id")
	if cardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card id is required")
	}

	card, err := s.cards.Get(c.Request().Context(), cardID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, models.NewCardResponse(card))
}

// moveCardHandler handles PATCH /api/cards/:id/move.
// An illegal edge returns 400 with the transition error message verbatim.
func (s *Server) moveCardHandler(c *echo.Context) error {
	cardID := c.Param("id")
	if cardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card id is required")
	}

	var req MoveCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	column := models.Column(strings.TrimSpace(req.ColumnID))
	if column == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "columnId is required")
	}
	if !models.IsValidColumn(column) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown column: "+string(column))
	}

	ctx := c.Request().Context()
	card, from, err := s.cards.Move(ctx, cardID, column)
	if err != nil {
		return mapServiceError(err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishCardMoved(ctx, events.NewCardMovedPayload(card, from, column)); err != nil {
			// Broadcast failure must not undo a committed move.
			slog.Warn("Failed to publish card move", "card_id", cardID, "error", err)
		}
	}

	return c.JSON(http.StatusOK, models.NewCardResponse(card))
}
