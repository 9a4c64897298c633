// Package api exposes the board, execution, goal and orchestrator
// surfaces over HTTP (echo/v5, camelCase JSON) plus the WebSocket
// streaming endpoint.
package api

import (
	"context"
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/cardsmith/pkg/config"
	"github.com/codeready-toolchain/cardsmith/pkg/database"
	"github.com/codeready-toolchain/cardsmith/pkg/events"
	"github.com/codeready-toolchain/cardsmith/pkg/orchestrator"
	"github.com/codeready-toolchain/cardsmith/pkg/services"
	"github.com/codeready-toolchain/cardsmith/pkg/usage"
	"github.com/codeready-toolchain/cardsmith/pkg/workflow"
	"github.com/codeready-toolchain/cardsmith/pkg/worktree"
)

// VectorHealth is the optional long-term memory health probe. Nil when
// no vector store is configured; the health endpoint then skips the check.
type VectorHealth interface {
	HealthCheck(ctx context.Context) error
}

// ServerDeps bundles everything the HTTP surface needs. Loop, Budget,
// VectorStore and ConnManager may be nil; the corresponding endpoints
// degrade instead of failing.
type ServerDeps struct {
	Config      *config.Config
	DB          *database.Client
	Cards       *services.CardService
	Goals       *services.GoalService
	Executions  *services.ExecutionService
	Engine      *workflow.Engine
	Runner      *workflow.Runner
	Loop        *orchestrator.Loop
	Budget      *usage.Budget
	Worktrees   *worktree.Manager
	Publisher   workflow.EventSink
	ConnManager *events.ConnectionManager
	VectorStore VectorHealth
}

// Server is the HTTP server. Handlers hang off it as methods.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server

	cfg         *config.Config
	dbClient    *database.Client
	cards       *services.CardService
	goals       *services.GoalService
	executions  *services.ExecutionService
	engine      *workflow.Engine
	runner      *workflow.Runner
	loop        *orchestrator.Loop
	budget      *usage.Budget
	worktrees   *worktree.Manager
	publisher   workflow.EventSink
	connManager *events.ConnectionManager
	vectorStore VectorHealth
}

// NewServer builds the server and registers all routes.
func NewServer(d ServerDeps) *Server {
	s := &Server{
		echo:        echo.New(),
		cfg:         d.Config,
		dbClient:    d.DB,
		cards:       d.Cards,
		goals:       d.Goals,
		executions:  d.Executions,
		engine:      d.Engine,
		runner:      d.Runner,
		loop:        d.Loop,
		budget:      d.Budget,
		worktrees:   d.Worktrees,
		publisher:   d.Publisher,
		connManager: d.ConnManager,
		vectorStore: d.VectorStore,
	}

	s.echo.HTTPErrorHandler = errorEnvelopeHandler
	s.echo.Use(securityHeaders())
	s.echo.Use(requestLogger())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo

	e.GET("/health", s.healthHandler)

	e.POST("/api/execute-plan", s.executePlanHandler)
	e.POST("/api/execute-implement", s.executeImplementHandler)
	e.POST("/api/execute-test", s.executeTestHandler)
	e.POST("/api/execute-review", s.executeReviewHandler)

	e.GET("/api/logs/:cardId", s.cardLogsHandler)
	e.GET("/api/logs/:cardId/history", s.cardLogHistoryHandler)

	e.GET("/api/cards", s.listCardsHandler)
	e.GET("/api/cards/:id", s.getCardHandler)
	e.PATCH("/api/cards/:id/move", s.moveCardHandler)
	e.POST("/api/cards/:id/workspace", s.createWorkspaceHandler)

	e.GET("/api/branches", s.listBranchesHandler)
	e.POST("/api/cleanup-orphan-worktrees", s.cleanupOrphanWorktreesHandler)

	e.POST("/api/goals", s.createGoalHandler)
	e.GET("/api/goals", s.listGoalsHandler)
	e.GET("/api/goals/:id", s.getGoalHandler)

	e.GET("/api/orchestrator/status", s.orchestratorStatusHandler)

	e.GET("/api/cards/ws", s.wsHandler)
	e.GET("/api/execution/ws/:cardId", s.wsHandler)
}

// ServeHTTP dispatches a request through the router, making the server
// mountable as a plain http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start runs the HTTP server on addr. It blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// errorEnvelopeHandler renders every handler error as the
// {success:false, error:...} envelope the frontend expects.
func errorEnvelopeHandler(c *echo.Context, err error) {
	if res, resErr := echo.UnwrapResponse(c.Response()); resErr == nil && res.Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if he.Message != "" {
			message = he.Message
		}
	}

	_ = c.JSON(code, &ErrorResponse{Success: false, Error: message})
}
