package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"
)

// crawlCompletedSchema validates the webhook payload from the crawl
// pipeline before anything is triggered off it.
var crawlCompletedSchema = gojsonschema.NewGoLoader(map[string]any{
	"type":     "object",
	"required": []any{"crawl_id"},
	"properties": map[string]any{
		"crawl_id":    map[string]any{"type": "string", "minLength": 1},
		"entity_type": map[string]any{"type": "string"},
		"summary_ids": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
	"additionalProperties": true,
})

// crawlTriggerTimeout bounds each webhook-triggered execution.
const crawlTriggerTimeout = 10 * time.Minute

type crawlCompletedEvent struct {
	CrawlID    string   `json:"crawl_id"`
	EntityType string   `json:"entity_type,omitempty"`
	SummaryIDs []string `json:"summary_ids,omitempty"`
}

// crawlCompletedHandler handles POST /api/v1/events/crawl-completed.
// Matching crawl-triggered summaries execute in the background; the
// webhook returns as soon as they are dispatched.
func (s *Server) crawlCompletedHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	result, err := gojsonschema.Validate(crawlCompletedSchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if !result.Valid() {
		errs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			errs = append(errs, e.String())
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event payload", "details": errs})
		return
	}

	var event crawlCompletedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	summaries, err := s.summaryService.ListCrawlTriggered(c.Request.Context(), event.SummaryIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	details := map[string]any{"crawl_id": event.CrawlID}
	if event.EntityType != "" {
		details["entity_type"] = event.EntityType
	}

	for _, sum := range summaries {
		summaryID := sum.ID
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), crawlTriggerTimeout)
			defer cancel()
			if _, err := s.runner.ExecuteSummary(ctx, summaryID, "crawl", details, false); err != nil {
				slog.Error("Crawl-triggered execution failed",
					"summary_id", summaryID, "crawl_id", event.CrawlID, "error", err)
			}
		}()
	}

	c.JSON(http.StatusAccepted, gin.H{
		"crawl_id":  event.CrawlID,
		"triggered": len(summaries),
	})
}
