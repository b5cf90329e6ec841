package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/tourism-backend-go/internal/handler"
	"github.com/jengzang/tourism-backend-go/internal/middleware"
	"github.com/jengzang/tourism-backend-go/internal/service"
)

// Handlers bundles the handler set the router mounts
type Handlers struct {
	Auth      *handler.AuthHandler
	Places    *handler.PlaceHandler
	Reviews   *handler.ReviewHandler
	CheckIns  *handler.CheckInHandler
	Analytics *handler.AnalyticsHandler
	Guides    *handler.GuideHandler
}

// SetupRouter wires middleware and routes
func SetupRouter(h Handlers, auth *service.AuthService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Tourism Backend API is running",
		})
	})

	admin := r.Group("/api/admin")
	{
		admin.POST("/login", h.Auth.Login)
	}

	places := r.Group("/api/places")
	{
		places.POST("", middleware.RequireAdmin(auth), h.Places.Create)
		places.GET("", h.Places.List)
		places.GET("/cities", h.Places.Cities)
		places.POST("/itinerary", h.Places.Itinerary)
		places.GET("/:placeId", h.Places.Detail)
		places.GET("/:placeId/forecast", h.Places.Forecast)
		places.GET("/:placeId/alternatives", h.Places.Alternatives)
		places.GET("/:placeId/reviews", h.Reviews.List)
		places.POST("/:placeId/reviews", h.Reviews.Submit)
	}

	checkIns := r.Group("/api/checkins")
	{
		checkIns.POST("", h.CheckIns.Create)
		checkIns.GET("/recent", h.CheckIns.Recent)
	}

	analytics := r.Group("/api/analytics")
	{
		analytics.GET("/overview", h.Analytics.Overview)
		analytics.GET("/scenario", h.Analytics.Scenario)
		analytics.GET("/impact", h.Analytics.Impact)
		analytics.GET("/trends", h.Analytics.Trends)
		analytics.GET("/places/:placeId/hourly", h.Analytics.Hourly)
	}

	guides := r.Group("/api/guides")
	{
		guides.GET("", h.Guides.List)
		guides.POST("/bookings", h.Guides.Book)
	}

	return r
}
