package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/tourism-backend-go/internal/service"
	"github.com/jengzang/tourism-backend-go/pkg/response"
)

// GuideHandler handles HTTP requests for the tour guide directory
type GuideHandler struct {
	guides *service.GuideService
}

// NewGuideHandler creates a new guide handler
func NewGuideHandler(guides *service.GuideService) *GuideHandler {
	return &GuideHandler{guides: guides}
}

// List handles GET /api/guides
func (h *GuideHandler) List(c *gin.Context) {
	response.Success(c, h.guides.List(c.Query("city")))
}

type bookGuideRequest struct {
	GuideID       string `json:"guide_id"`
	TouristName   string `json:"tourist_name"`
	TouristPhone  string `json:"tourist_phone"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	DurationHours int    `json:"duration_hours"`
	Notes         string `json:"notes"`
}

// Book handles POST /api/guides/bookings
func (h *GuideHandler) Book(c *gin.Context) {
	var req bookGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	booking, err := h.guides.Book(c.Request.Context(), service.BookGuideInput{
		GuideID:       req.GuideID,
		TouristName:   req.TouristName,
		TouristPhone:  req.TouristPhone,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		DurationHours: req.DurationHours,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, "Booking received", booking)
}
