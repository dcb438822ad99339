package handler

import (
	"net/http"
	"strconv"

	"aqarsearch/internal/service"

	"github.com/gin-gonic/gin"
)

// InsightsHandler serves the derived market views
type InsightsHandler struct {
	insights *service.InsightsService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insights *service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insights: insights}
}

// BestValue handles GET /api/v1/insights/best-value
func (h *InsightsHandler) BestValue(c *gin.Context) {
	city := c.Query("city")
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	results, err := h.insights.BestValue(c.Request.Context(), city, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rank properties: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "total": len(results)})
}

// Districts handles GET /api/v1/insights/districts
func (h *InsightsHandler) Districts(c *gin.Context) {
	stats, err := h.insights.DistrictHeatmap(c.Request.Context(), c.Query("city"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate districts: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"districts": stats, "total": len(stats)})
}
