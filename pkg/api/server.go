// Package api exposes the HTTP surface: summary and widget management,
// execution control and history, the entity browse endpoints, and the
// crawl-completed webhook.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/muniscope/muniscope/ent"
	"github.com/muniscope/muniscope/pkg/database"
	"github.com/muniscope/muniscope/pkg/services"
)

// SummaryRunner executes one summary on demand. The summary executor
// satisfies it.
type SummaryRunner interface {
	ExecuteSummary(ctx context.Context, summaryID, triggeredBy string, triggerDetails map[string]any, force bool) (*ent.Execution, error)
}

// Server wires HTTP handlers to the service layer.
type Server struct {
	db               *database.Client
	summaryService   *services.SummaryService
	executionService *services.ExecutionService
	entityService    *services.EntityService
	runner           SummaryRunner
}

// NewServer creates the API server.
func NewServer(
	db *database.Client,
	summaryService *services.SummaryService,
	executionService *services.ExecutionService,
	entityService *services.EntityService,
	runner SummaryRunner,
) *Server {
	return &Server{
		db:               db,
		summaryService:   summaryService,
		executionService: executionService,
		entityService:    entityService,
		runner:           runner,
	}
}

// RegisterRoutes attaches all endpoints to the router.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")

	v1.POST("/summaries", s.createSummaryHandler)
	v1.GET("/summaries", s.listSummariesHandler)
	v1.GET("/summaries/:id", s.getSummaryHandler)
	v1.PATCH("/summaries/:id", s.updateSummaryHandler)
	v1.DELETE("/summaries/:id", s.deleteSummaryHandler)

	v1.POST("/summaries/:id/widgets", s.addWidgetHandler)
	v1.GET("/summaries/:id/widgets", s.listWidgetsHandler)
	v1.PUT("/widgets/:id", s.updateWidgetHandler)
	v1.DELETE("/widgets/:id", s.deleteWidgetHandler)

	v1.POST("/summaries/:id/execute", s.executeSummaryHandler)
	v1.GET("/summaries/:id/executions", s.listExecutionsHandler)
	v1.GET("/summaries/:id/data", s.latestDataHandler)
	v1.GET("/executions/:id", s.getExecutionHandler)

	v1.GET("/entities", s.listEntitiesHandler)
	v1.GET("/entities/:id", s.getEntityHandler)

	v1.POST("/events/crawl-completed", s.crawlCompletedHandler)
}

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}
