package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/tourism-backend-go/internal/service"
	"github.com/jengzang/tourism-backend-go/pkg/response"
)

// AnalyticsHandler handles HTTP requests for catalog-wide analytics
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Overview handles GET /api/analytics/overview
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	overview, err := h.analytics.Overview(c.Request.Context(), c.Query("scenario"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, overview)
}

// Scenario handles GET /api/analytics/scenario
func (h *AnalyticsHandler) Scenario(c *gin.Context) {
	report, err := h.analytics.Scenario(c.Request.Context(), c.Query("mode"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, report)
}

// Impact handles GET /api/analytics/impact
func (h *AnalyticsHandler) Impact(c *gin.Context) {
	report, err := h.analytics.Impact(c.Request.Context(), c.Query("scenario"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, report)
}

// Trends handles GET /api/analytics/trends
func (h *AnalyticsHandler) Trends(c *gin.Context) {
	report, err := h.analytics.Trends(c.Request.Context(), queryInt(c, "days"), c.Query("scenario"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, report)
}

// Hourly handles GET /api/analytics/places/:placeId/hourly
func (h *AnalyticsHandler) Hourly(c *gin.Context) {
	id, ok := placeIDParam(c)
	if !ok {
		return
	}

	report, err := h.analytics.Hourly(c.Request.Context(), id, queryInt(c, "days"), c.Query("scenario"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, report)
}
