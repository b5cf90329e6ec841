package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/tourism-backend-go/internal/service"
	"github.com/jengzang/tourism-backend-go/pkg/response"
)

// CheckInHandler handles HTTP requests for visitor check-ins
type CheckInHandler struct {
	checkIns *service.CheckInService
}

// NewCheckInHandler creates a new check-in handler
func NewCheckInHandler(checkIns *service.CheckInService) *CheckInHandler {
	return &CheckInHandler{checkIns: checkIns}
}

type checkInRequest struct {
	PlaceID      string `json:"place_id"`
	VisitorAlias string `json:"visitor_alias"`
}

// Create handles POST /api/checkins
func (h *CheckInHandler) Create(c *gin.Context) {
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.checkIns.Create(c.Request.Context(), req.PlaceID, req.VisitorAlias)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, "Check-in recorded", result)
}

// Recent handles GET /api/checkins/recent
func (h *CheckInHandler) Recent(c *gin.Context) {
	checkIns, err := h.checkIns.Recent(c.Request.Context(), queryInt(c, "limit"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{
		"total":     len(checkIns),
		"check_ins": checkIns,
	})
}
