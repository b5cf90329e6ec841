package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/tourism-backend-go/internal/service"
	"github.com/jengzang/tourism-backend-go/pkg/response"
)

// AuthHandler handles admin authentication requests
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	AccessKey string `json:"access_key"`
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	token, err := h.auth.Login(req.AccessKey)
	if err != nil {
		if service.IsValidation(err) {
			response.Unauthorized(c, "Invalid access key")
			return
		}
		response.InternalError(c, "Failed to issue token")
		return
	}

	response.Success(c, gin.H{
		"token":              token,
		"expires_in_seconds": int(h.auth.TokenTTL().Seconds()),
	})
}
