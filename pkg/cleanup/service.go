// Package cleanup provides data retention for execution history.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/muniscope/muniscope/pkg/config"
	"github.com/muniscope/muniscope/pkg/services"
)

// Service periodically prunes old execution rows. The latest completed
// execution of each summary is always kept so a snapshot remains
// available. Idempotent and safe to run from multiple pods.
type Service struct {
	config           *config.RetentionConfig
	executionService *services.ExecutionService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, executionService *services.ExecutionService) *Service {
	return &Service{
		config:           cfg,
		executionService: executionService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"execution_retention_days", s.config.ExecutionRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.pruneOldExecutions()

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pruneOldExecutions()
		}
	}
}

func (s *Service) pruneOldExecutions() {
	count, err := s.executionService.PruneOldExecutions(context.Background(), s.config.ExecutionRetentionDays)
	if err != nil {
		slog.Error("Retention: execution prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned old executions", "count", count)
	}
}
