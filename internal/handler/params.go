package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// queryInt parses an optional integer query parameter; blank or malformed
// values fall back to zero so the services apply their defaults
func queryInt(c *gin.Context, name string) int {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

// queryFloat parses an optional float query parameter the same way
func queryFloat(c *gin.Context, name string) float64 {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}
