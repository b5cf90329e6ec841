package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/tourism-backend-go/internal/crowd"
	"github.com/jengzang/tourism-backend-go/internal/models"
	"github.com/jengzang/tourism-backend-go/internal/service"
	"github.com/jengzang/tourism-backend-go/pkg/response"
)

// PlaceHandler handles HTTP requests for the place catalog and its
// crowd-intelligence endpoints
type PlaceHandler struct {
	service *service.PlaceService
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(service *service.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

type createPlaceRequest struct {
	Name                        string          `json:"name"`
	Description                 string          `json:"description"`
	History                     string          `json:"history"`
	Category                    string          `json:"category"`
	City                        string          `json:"city"`
	Location                    models.Location `json:"location"`
	Tags                        []string        `json:"tags"`
	AverageVisitDurationMinutes int             `json:"average_visit_duration_minutes"`
	BasePopularity              int             `json:"base_popularity"`
}

// Create handles POST /api/places
func (h *PlaceHandler) Create(c *gin.Context) {
	var req createPlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	place, err := h.service.CreatePlace(c.Request.Context(), service.CreatePlaceInput{
		Name:                        req.Name,
		Description:                 req.Description,
		History:                     req.History,
		Category:                    req.Category,
		City:                        req.City,
		Location:                    req.Location,
		Tags:                        req.Tags,
		AverageVisitDurationMinutes: req.AverageVisitDurationMinutes,
		BasePopularity:              req.BasePopularity,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, "Place created", place)
}

// List handles GET /api/places
func (h *PlaceHandler) List(c *gin.Context) {
	scenario := crowd.NormalizeScenario(c.Query("scenario"))

	places, err := h.service.EnrichedPlaces(c.Request.Context(), scenario)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{
		"total":    len(places),
		"scenario": scenario,
		"places":   places,
	})
}

// Cities handles GET /api/places/cities
func (h *PlaceHandler) Cities(c *gin.Context) {
	cities, err := h.service.Cities(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{
		"total":  len(cities),
		"cities": cities,
	})
}

// Detail handles GET /api/places/:placeId
func (h *PlaceHandler) Detail(c *gin.Context) {
	id, ok := placeIDParam(c)
	if !ok {
		return
	}
	scenario := c.Query("scenario")

	place, reviews, err := h.service.Detail(c.Request.Context(), id, scenario)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{
		"place":   place,
		"reviews": reviews,
	})
}

// Forecast handles GET /api/places/:placeId/forecast
func (h *PlaceHandler) Forecast(c *gin.Context) {
	id, ok := placeIDParam(c)
	if !ok {
		return
	}

	place, forecast, err := h.service.Forecast(
		c.Request.Context(), id, c.Query("scenario"), queryInt(c, "hours_ahead"),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{
		"place":    place,
		"forecast": forecast,
	})
}

// Alternatives handles GET /api/places/:placeId/alternatives
func (h *PlaceHandler) Alternatives(c *gin.Context) {
	id, ok := placeIDParam(c)
	if !ok {
		return
	}

	result, err := h.service.Alternatives(
		c.Request.Context(), id, c.Query("scenario"),
		queryFloat(c, "max_distance_km"), queryInt(c, "max_results"),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, result)
}

type itineraryRequest struct {
	City            string  `json:"city"`
	Scenario        string  `json:"scenario"`
	MaxPlaces       int     `json:"max_places"`
	StartHour       *int    `json:"start_hour"`
	TimeBudgetHours float64 `json:"time_budget_hours"`
}

// Itinerary handles POST /api/places/itinerary
func (h *PlaceHandler) Itinerary(c *gin.Context) {
	var req itineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	// Midnight is a legal start, so only a missing field means the default
	startHour := crowd.DefaultStartHour
	if req.StartHour != nil {
		startHour = *req.StartHour
	}

	result, err := h.service.PlanItinerary(c.Request.Context(), service.ItineraryRequest{
		City:            req.City,
		Scenario:        req.Scenario,
		MaxPlaces:       req.MaxPlaces,
		StartHour:       startHour,
		TimeBudgetHours: req.TimeBudgetHours,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, result)
}
