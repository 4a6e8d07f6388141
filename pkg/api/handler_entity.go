package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muniscope/muniscope/pkg/models"
)

// listEntitiesHandler handles GET /api/v1/entities.
func (s *Server) listEntitiesHandler(c *gin.Context) {
	limit, offset := parsePagination(c)
	filters := models.EntityFilters{
		EntityType: c.Query("entity_type"),
		RegionCode: c.Query("region_code"),
		Country:    c.Query("country"),
		Search:     c.Query("search"),
		Limit:      limit,
		Offset:     offset,
	}

	entities, total, err := s.entityService.ListEntities(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entities":    entities,
		"total_count": total,
		"limit":       limit,
		"offset":      offset,
	})
}

// getEntityHandler handles GET /api/v1/entities/:id, including the
// entity's facet values.
func (s *Server) getEntityHandler(c *gin.Context) {
	entity, err := s.entityService.GetEntity(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}
