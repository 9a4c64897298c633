package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/cardsmith/pkg/database"
	"github.com/codeready-toolchain/cardsmith/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// The database is the only hard dependency; an unreachable vector store
// only degrades the status, since the loop runs without long-term memory.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if _, err := database.Health(reqCtx, s.dbClient.DB()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.vectorStore != nil {
		if err := s.vectorStore.HealthCheck(reqCtx); err != nil {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["vector_store"] = HealthCheck{Status: healthStatusDegraded, Message: err.Error()}
		} else {
			checks["vector_store"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}

// orchestratorStatusHandler handles GET /api/orchestrator/status.
func (s *Server) orchestratorStatusHandler(c *echo.Context) error {
	resp := &OrchestratorStatusResponse{
		Enabled: s.cfg.Orchestrator.Enabled,
	}

	if s.loop != nil {
		st := s.loop.Status()
		resp.Running = st.Running
		resp.TickInFlight = st.TickInFlight
		resp.LastTickAt = st.LastTickAt
		resp.LastDecision = st.LastDecision
		resp.LastReason = st.LastReason
		resp.Usage = st.Usage
	} else if s.budget != nil {
		resp.Usage = s.budget.Last()
	}

	if s.worktrees != nil {
		active, err := s.worktrees.Count(c.Request().Context())
		if err == nil {
			resp.Worktrees.Active = active
		}
		resp.Worktrees.Max = s.worktrees.MaxConcurrent()
	}

	return c.JSON(http.StatusOK, resp)
}
