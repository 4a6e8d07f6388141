// Muniscope server: provides the HTTP API, runs the cron scheduler,
// and executes summary snapshots.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/muniscope/muniscope/pkg/api"
	"github.com/muniscope/muniscope/pkg/cleanup"
	"github.com/muniscope/muniscope/pkg/config"
	"github.com/muniscope/muniscope/pkg/database"
	"github.com/muniscope/muniscope/pkg/expand"
	"github.com/muniscope/muniscope/pkg/llm"
	"github.com/muniscope/muniscope/pkg/relevance"
	"github.com/muniscope/muniscope/pkg/schedule"
	"github.com/muniscope/muniscope/pkg/services"
	"github.com/muniscope/muniscope/pkg/summaries"
	"github.com/muniscope/muniscope/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting muniscope", "version", version.Full(), "http_port", httpPort)

	ctx := context.Background()

	// 1. Configuration
	cfg := config.Load()

	// 2. Database
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

	// 3. Domain services
	summaryService := services.NewSummaryService(dbClient.Client)
	executionService := services.NewExecutionService(dbClient.Client)
	entityService := services.NewEntityService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. LLM client for relevance and expansion analysis.
	// grpc.NewClient dials lazily; actual connection happens on first RPC.
	var checker summaries.RelevanceChecker
	var expander summaries.ExpansionAnalyzer
	llmAddr := getEnv("LLM_SERVICE_ADDR", "")
	if llmAddr != "" {
		llmClient, err := llm.NewClient(llmAddr)
		if err != nil {
			slog.Error("Failed to initialize LLM client", "addr", llmAddr, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := llmClient.Close(); err != nil {
				slog.Error("Error closing LLM client", "error", err)
			}
		}()
		checker = relevance.NewChecker(llmClient)
		expander = expand.NewExpander(llmClient)
		slog.Info("LLM client initialized", "addr", llmAddr)
	} else {
		checker = relevance.NewChecker(nil)
		slog.Info("LLM service not configured, using heuristic relevance only")
	}

	// 5. Summary executor
	executor := summaries.NewExecutor(dbClient.Client, cfg.Executor, checker, expander)

	// 6. Cron scheduler
	scheduler := schedule.NewScheduler(dbClient.Client, cfg.Scheduler, executor)
	scheduler.Start(ctx)

	// 7. Retention
	cleanupService := cleanup.NewService(cfg.Retention, executionService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 8. HTTP server
	server := api.NewServer(dbClient, summaryService, executionService, entityService, executor)
	router := gin.Default()
	server.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Muniscope started successfully", "scheduler_workers", cfg.Scheduler.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: let in-flight executions finish
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Scheduler.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		scheduler.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Scheduler stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, abandoning in-flight executions")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
