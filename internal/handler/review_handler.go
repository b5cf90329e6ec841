package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/tourism-backend-go/internal/service"
	"github.com/jengzang/tourism-backend-go/pkg/response"
)

// ReviewHandler handles HTTP requests for place reviews
type ReviewHandler struct {
	reviews *service.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type submitReviewRequest struct {
	Rating        int      `json:"rating"`
	Comment       string   `json:"comment"`
	ReviewerAlias string   `json:"reviewer_alias"`
	Photos        []string `json:"photos"`
}

// Submit handles POST /api/places/:placeId/reviews
func (h *ReviewHandler) Submit(c *gin.Context) {
	id, ok := placeIDParam(c)
	if !ok {
		return
	}

	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.reviews.Submit(c.Request.Context(), service.SubmitReviewInput{
		PlaceID:       id,
		Rating:        req.Rating,
		Comment:       req.Comment,
		ReviewerAlias: req.ReviewerAlias,
		Photos:        req.Photos,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, "Review submitted", result)
}

// List handles GET /api/places/:placeId/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	id, ok := placeIDParam(c)
	if !ok {
		return
	}

	place, bundle, err := h.reviews.Bundle(c.Request.Context(), id, queryInt(c, "limit"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{
		"place":   place,
		"reviews": bundle,
	})
}
