package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/cardsmith/pkg/models"
	"github.com/codeready-toolchain/cardsmith/pkg/services"
	"github.com/codeready-toolchain/cardsmith/pkg/workflow"
)

// executePlanHandler handles POST /api/execute-plan.
// Runs the planning stage synchronously and returns the produced spec path.
func (s *Server) executePlanHandler(c *echo.Context) error {
	req, err := bindExecuteRequest(c)
	if err != nil {
		return err
	}
	if strings.TrimSpace(req.Title) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	return s.runStage(c, req, models.StagePlanning)
}

// executeImplementHandler handles POST /api/execute-implement.
func (s *Server) executeImplementHandler(c *echo.Context) error {
	req, err := bindExecuteRequest(c)
	if err != nil {
		return err
	}
	if err := s.requireSpecPath(c.Request().Context(), req); err != nil {
		return err
	}
	return s.runStage(c, req, models.StageImplementing)
}

// executeTestHandler handles POST /api/execute-test.
// A detected test failure is not a transport error: the response reports
// success=false with the spawned fix-card.
func (s *Server) executeTestHandler(c *echo.Context) error {
	req, err := bindExecuteRequest(c)
	if err != nil {
		return err
	}
	if err := s.requireSpecPath(c.Request().Context(), req); err != nil {
		return err
	}
	return s.runStage(c, req, models.StageTesting)
}

// executeReviewHandler handles POST /api/execute-review.
func (s *Server) executeReviewHandler(c *echo.Context) error {
	req, err := bindExecuteRequest(c)
	if err != nil {
		return err
	}
	if err := s.requireSpecPath(c.Request().Context(), req); err != nil {
		return err
	}
	return s.runStage(c, req, models.StageReviewing)
}

func bindExecuteRequest(c *echo.Context) (*ExecuteStageRequest, error) {
	var req ExecuteStageRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.CardID) == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "cardId is required")
	}
	return &req, nil
}

// requireSpecPath enforces the later-stage precondition: a spec path from
// the request body, or one the planning stage stored on the card.
func (s *Server) requireSpecPath(ctx context.Context, req *ExecuteStageRequest) error {
	if req.SpecPath != "" {
		return nil
	}
	card, err := s.cards.Get(ctx, req.CardID)
	if err != nil {
		return mapServiceError(err)
	}
	if card.SpecPath == nil || *card.SpecPath == "" {
		return echo.NewHTTPError(http.StatusBadRequest,
			"specPath is required: the card has no stored spec, run the plan stage first")
	}
	return nil
}

// runStage executes one stage synchronously and renders the outcome with
// whatever logs the execution appended, also on failure.
func (s *Server) runStage(c *echo.Context, req *ExecuteStageRequest, stage models.Stage) error {
	if s.runner.IsActive(req.CardID) {
		return echo.NewHTTPError(http.StatusConflict, "card is already executing")
	}

	ov := &workflow.StageOverrides{
		Title:       req.Title,
		Description: req.Description,
		SpecPath:    req.SpecPath,
		Model:       req.Model,
	}

	ctx := c.Request().Context()
	res := s.engine.ExecuteStage(ctx, req.CardID, stage, ov)

	resp := &ExecuteResponse{
		Success:  res.Success,
		CardID:   req.CardID,
		Result:   res.Result,
		SpecPath: res.SpecPath,
		Logs:     s.executionLogs(ctx, res.ExecutionID),
	}
	if res.TestFailed {
		resp.Error = "Tests failed"
		resp.FixCardCreated = res.FixCardID != ""
		resp.FixCardID = res.FixCardID
	}

	if res.Err != nil {
		if he := executionHTTPError(res.Err); he != nil {
			return he
		}
		resp.Error = res.Err.Error()
		return c.JSON(http.StatusInternalServerError, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// executionHTTPError classifies stage errors that are the caller's fault
// (unknown card, illegal column transition) as 4xx. Agent-side failures,
// including a plan that produced no spec, are rendered by runStage with
// the in-progress logs attached.
func executionHTTPError(err error) *echo.HTTPError {
	var transErr *services.InvalidTransitionError
	if errors.As(err, &transErr) {
		return echo.NewHTTPError(http.StatusBadRequest, transErr.Error())
	}
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	return nil
}

// executionLogs loads the ordered logs of an execution; best effort.
func (s *Server) executionLogs(ctx context.Context, executionID string) []*models.ExecutionLogResponse {
	out := []*models.ExecutionLogResponse{}
	if executionID == "" {
		return out
	}
	logs, err := s.executions.Logs(ctx, executionID)
	if err != nil {
		return out
	}
	for _, l := range logs {
		out = append(out, models.NewExecutionLogResponse(l))
	}
	return out
}
