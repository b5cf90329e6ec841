package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/jengzang/tourism-backend-go/internal/api"
	"github.com/jengzang/tourism-backend-go/internal/config"
	"github.com/jengzang/tourism-backend-go/internal/database"
	"github.com/jengzang/tourism-backend-go/internal/handler"
	"github.com/jengzang/tourism-backend-go/internal/repository"
	"github.com/jengzang/tourism-backend-go/internal/service"
)

func main() {
	// A missing .env is fine; the environment wins either way
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	placeRepo := repository.NewPlaceRepository(db)
	checkInRepo := repository.NewCheckInRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	placeService := service.NewPlaceService(placeRepo, checkInRepo, reviewRepo, cfg.PlannerDistancePenaltyPerKm)
	checkInService := service.NewCheckInService(checkInRepo, placeRepo)
	reviewService := service.NewReviewService(reviewRepo, placeRepo)
	analyticsService := service.NewAnalyticsService(placeRepo, checkInRepo, reviewRepo)
	guideService := service.NewGuideService(bookingRepo)
	authService := service.NewAuthService(cfg.JWTSecret, cfg.AdminAccessKey, cfg.TokenTTL)

	router := api.SetupRouter(api.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Places:    handler.NewPlaceHandler(placeService),
		Reviews:   handler.NewReviewHandler(reviewService),
		CheckIns:  handler.NewCheckInHandler(checkInService),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Guides:    handler.NewGuideHandler(guideService),
	}, authService)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
