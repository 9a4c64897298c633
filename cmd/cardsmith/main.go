// Cardsmith orchestrator server — exposes the board HTTP API, runs the
// autonomous goal loop, and drives per-card agent workflows.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/codeready-toolchain/cardsmith/pkg/agent"
	"github.com/codeready-toolchain/cardsmith/pkg/api"
	"github.com/codeready-toolchain/cardsmith/pkg/cleanup"
	"github.com/codeready-toolchain/cardsmith/pkg/config"
	"github.com/codeready-toolchain/cardsmith/pkg/database"
	"github.com/codeready-toolchain/cardsmith/pkg/events"
	"github.com/codeready-toolchain/cardsmith/pkg/masking"
	"github.com/codeready-toolchain/cardsmith/pkg/orchestrator"
	"github.com/codeready-toolchain/cardsmith/pkg/services"
	"github.com/codeready-toolchain/cardsmith/pkg/usage"
	"github.com/codeready-toolchain/cardsmith/pkg/vector"
	"github.com/codeready-toolchain/cardsmith/pkg/version"
	"github.com/codeready-toolchain/cardsmith/pkg/workflow"
	"github.com/codeready-toolchain/cardsmith/pkg/worktree"
)

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	cfg := config.Load()
	setupLogging(cfg.Server.LogLevel)

	slog.Info("Starting cardsmith",
		"version", version.Full(),
		"port", cfg.Server.Port,
		"orchestrator_enabled", cfg.Orchestrator.Enabled)

	ctx := context.Background()

	// Database (runs migrations).
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Domain services.
	masker := masking.NewMasker()
	cards := services.NewCardService(dbClient.Client)
	goals := services.NewGoalService(dbClient.Client)
	executions := services.NewExecutionService(dbClient.Client, masker)
	memory := services.NewMemoryService(dbClient.Client, cfg.Memory.Retention)
	recorder := services.NewOrchestratorRecorder(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)

	// Streaming infrastructure.
	publisher := events.NewEventPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(events.NewEventServiceAdapter(eventService), 10*time.Second)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// Worktrees: reconcile leftover checkouts from a previous run.
	worktrees := worktree.NewManager(cfg.Worktree)
	if err := worktrees.RecoverState(ctx); err != nil {
		slog.Warn("Worktree state recovery failed", "error", err)
	}

	// Usage budget.
	tracker := usage.NewTracker(cfg.Usage)
	budget := usage.NewBudget(cfg.Usage, cfg.Orchestrator.UsageLimitPercent, tracker)

	// Agent back-ends. The Anthropic adapter is primary; the Gemini CLI
	// covers the gemini-* profiles.
	var primary agent.Adapter
	if cfg.Agent.AnthropicAPIKey != "" {
		primary = agent.NewClaudeAdapter(agent.NewMessagesClient(cfg.Agent.AnthropicAPIKey), cfg.Agent.MaxTurns)
	} else {
		slog.Warn("ANTHROPIC_API_KEY not set; opus/sonnet/haiku profiles are unavailable")
	}
	router := agent.NewRouter(primary, agent.NewGeminiAdapter(cfg.Agent.GeminiCLIPath))

	// Workflow engine + runner.
	engine := workflow.NewEngine(workflow.EngineDeps{
		Cards:        cards,
		Goals:        goals,
		Executions:   executions,
		Adapter:      router,
		Worktrees:    worktrees,
		Publisher:    publisher,
		Tracker:      tracker,
		StageTimeout: cfg.Orchestrator.StageTimeout,
	})
	runner := workflow.NewRunner(engine, worktrees.MaxConcurrent())

	// Long-term memory is optional: without qdrant the loop still runs,
	// it just stops learning across goals.
	var learnings orchestrator.LearningStore
	var vectorHealth api.VectorHealth
	store, err := vector.NewStore(cfg.Vector, vector.NewOllamaEmbedder(cfg.Vector))
	if err != nil {
		slog.Warn("Vector store unavailable; long-term memory disabled", "error", err)
	} else {
		defer func() {
			if err := store.Close(); err != nil {
				slog.Error("Error closing vector store", "error", err)
			}
		}()
		learnings = store
		vectorHealth = store
	}

	// Orchestrator loop.
	var loop *orchestrator.Loop
	if cfg.Orchestrator.Enabled {
		var decomposer orchestrator.Decomposer
		if cfg.Agent.AnthropicAPIKey != "" {
			decomposer = orchestrator.NewClaudeDecomposer(agent.NewMessagesClient(cfg.Agent.AnthropicAPIKey), "")
		} else {
			slog.Warn("Orchestrator runs without a decomposer; pending goals will not activate")
		}
		loop = orchestrator.NewLoop(orchestrator.LoopDeps{
			Config:     cfg.Orchestrator,
			Memory:     memory,
			Recorder:   recorder,
			Goals:      goals,
			Cards:      cards,
			Executions: executions,
			Budget:     budget,
			Runner:     runner,
			Decomposer: decomposer,
			Learnings:  learnings,
			Publisher:  publisher,
			Worktrees:  worktrees,
		})
		loop.Start(ctx)
	}

	// Cleanup service.
	cleanupService := cleanup.NewService(cfg.Cleanup, memory, cards, eventService, publisher)
	cleanupService.Start(ctx)

	// HTTP server.
	httpServer := api.NewServer(api.ServerDeps{
		Config:      cfg,
		DB:          dbClient,
		Cards:       cards,
		Goals:       goals,
		Executions:  executions,
		Engine:      engine,
		Runner:      runner,
		Loop:        loop,
		Budget:      budget,
		Worktrees:   worktrees,
		Publisher:   publisher,
		ConnManager: connManager,
		VectorStore: vectorHealth,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Cardsmith started successfully")

	// Wait for shutdown signal or server error.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: stop accepting HTTP, finish the current tick,
	// cancel in-flight stages, then tear down the rest.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	if loop != nil {
		loop.Stop()
	}
	runner.Stop()
	cleanupService.Stop()
	notifyListener.Stop(ctx)

	if err := tracker.Save(); err != nil {
		slog.Warn("Failed to persist usage state", "error", err)
	}

	slog.Info("Shutdown complete")
}
