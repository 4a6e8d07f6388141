package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muniscope/muniscope/pkg/models"
)

// executeRequest is the optional body of a manual execution trigger.
type executeRequest struct {
	Force          bool           `json:"force,omitempty"`
	TriggerDetails map[string]any `json:"trigger_details,omitempty"`
}

// executeSummaryHandler handles POST /api/v1/summaries/:id/execute.
// The execution runs synchronously; the response carries the terminal
// execution record, including skipped outcomes from concurrency or
// relevance gating.
func (s *Server) executeSummaryHandler(c *gin.Context) {
	var req executeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
	}

	exec, err := s.runner.ExecuteSummary(c.Request.Context(), c.Param("id"), "manual", req.TriggerDetails, req.Force)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, exec)
}

// listExecutionsHandler handles GET /api/v1/summaries/:id/executions.
func (s *Server) listExecutionsHandler(c *gin.Context) {
	limit, offset := parsePagination(c)
	filters := models.ExecutionFilters{
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	}

	result, err := s.executionService.ListExecutions(c.Request.Context(), c.Param("id"), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// getExecutionHandler handles GET /api/v1/executions/:id. Unlike the
// list view, this includes the cached snapshot.
func (s *Server) getExecutionHandler(c *gin.Context) {
	exec, err := s.executionService.GetExecution(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, exec)
}

// latestDataHandler handles GET /api/v1/summaries/:id/data: the cached
// snapshot of the most recent completed execution.
func (s *Server) latestDataHandler(c *gin.Context) {
	exec, err := s.executionService.LatestCompleted(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"execution_id": exec.ID,
		"summary_id":   exec.SummaryID,
		"data":         exec.CachedData,
		"data_hash":    exec.DataHash,
		"has_changes":  exec.HasChanges,
		"executed_at":  exec.StartedAt,
	})
}
