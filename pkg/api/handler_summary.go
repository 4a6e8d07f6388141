package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/muniscope/muniscope/pkg/models"
)

// createSummaryHandler handles POST /api/v1/summaries.
func (s *Server) createSummaryHandler(c *gin.Context) {
	var req models.CreateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	sum, err := s.summaryService.CreateSummary(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sum)
}

// listSummariesHandler handles GET /api/v1/summaries.
func (s *Server) listSummariesHandler(c *gin.Context) {
	ownerID := c.Query("owner_id")
	limit, offset := parsePagination(c)

	summaries, total, err := s.summaryService.ListSummaries(c.Request.Context(), ownerID, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summaries":   summaries,
		"total_count": total,
		"limit":       limit,
		"offset":      offset,
	})
}

// getSummaryHandler handles GET /api/v1/summaries/:id.
func (s *Server) getSummaryHandler(c *gin.Context) {
	withWidgets := c.Query("include_widgets") == "true"

	sum, err := s.summaryService.GetSummary(c.Request.Context(), c.Param("id"), withWidgets)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sum)
}

// updateSummaryHandler handles PATCH /api/v1/summaries/:id.
func (s *Server) updateSummaryHandler(c *gin.Context) {
	var req models.UpdateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	sum, err := s.summaryService.UpdateSummary(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sum)
}

// deleteSummaryHandler handles DELETE /api/v1/summaries/:id.
func (s *Server) deleteSummaryHandler(c *gin.Context) {
	if err := s.summaryService.DeleteSummary(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// addWidgetHandler handles POST /api/v1/summaries/:id/widgets.
func (s *Server) addWidgetHandler(c *gin.Context) {
	var req models.CreateWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	w, err := s.summaryService.AddWidget(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, w)
}

// listWidgetsHandler handles GET /api/v1/summaries/:id/widgets.
func (s *Server) listWidgetsHandler(c *gin.Context) {
	widgets, err := s.summaryService.ListWidgets(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"widgets": widgets})
}

// updateWidgetHandler handles PUT /api/v1/widgets/:id.
func (s *Server) updateWidgetHandler(c *gin.Context) {
	var req models.CreateWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	w, err := s.summaryService.UpdateWidget(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, w)
}

// deleteWidgetHandler handles DELETE /api/v1/widgets/:id.
func (s *Server) deleteWidgetHandler(c *gin.Context) {
	if err := s.summaryService.DeleteWidget(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parsePagination extracts limit/offset query params with defaults.
func parsePagination(c *gin.Context) (limit, offset int) {
	limit = 25
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
