package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

// createGoalHandler handles POST /api/goals.
// New goals start pending; the orchestrator loop activates and decomposes
// them on its next tick.
func (s *Server) createGoalHandler(c *echo.Context) error {
	var req models.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Description) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}

	goal, err := s.goals.Create(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, &CreateGoalResponse{
		Success: true,
		Goal:    models.NewGoalResponse(goal),
	})
}

// listGoalsHandler handles GET /api/goals.
func (s *Server) listGoalsHandler(c *echo.Context) error {
	goals, err := s.goals.List(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	resp := &models.GoalListResponse{Goals: make([]*models.GoalResponse, 0, len(goals))}
	for _, g := range goals {
		resp.Goals = append(resp.Goals, models.NewGoalResponse(g))
	}
	resp.TotalCount = len(resp.Goals)
	return c.JSON(http.StatusOK, resp)
}

// getGoalHandler handles GET /api/goals/:id.
// Returns the goal together with the cards its decomposition created.
func (s *Server) getGoalHandler(c *echo.Context) error {
	goalID := c.Param("id")
	if goalID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "goal id is required")
	}
	ctx := c.Request().Context()

	goal, err := s.goals.Get(ctx, goalID)
	if err != nil {
		return mapServiceError(err)
	}
	cards, err := s.cards.ListByGoal(ctx, goalID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &GoalDetailResponse{
		Goal:  models.NewGoalResponse(goal),
		Cards: models.NewCardResponses(cards),
	})
}
