package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jengzang/tourism-backend-go/internal/repository"
	"github.com/jengzang/tourism-backend-go/internal/service"
	"github.com/jengzang/tourism-backend-go/pkg/response"
)

// writeError maps service errors onto HTTP responses
func writeError(c *gin.Context, err error) {
	var validation *service.ValidationError
	switch {
	case errors.As(err, &validation):
		response.BadRequest(c, validation.Message)
	case errors.Is(err, repository.ErrNotFound):
		response.NotFound(c, "Record not found")
	case errors.Is(err, service.ErrNoActivePlaces):
		response.NotFound(c, "No active places available")
	default:
		// Anything else on these paths came out of the store
		response.StoreUnavailable(c, "Upstream store unavailable")
	}
}

// placeIDParam validates the placeId path parameter. A malformed ID is
// reported as 400 rather than a lookup miss.
func placeIDParam(c *gin.Context) (string, bool) {
	id := c.Param("placeId")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, "Invalid placeId")
		return "", false
	}
	return id, true
}
