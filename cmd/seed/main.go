package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/jengzang/tourism-backend-go/internal/config"
	"github.com/jengzang/tourism-backend-go/internal/database"
	"github.com/jengzang/tourism-backend-go/internal/models"
	"github.com/jengzang/tourism-backend-go/internal/repository"
)

type placeSeed struct {
	name        string
	description string
	history     string
	category    string
	city        string
	lat, lng    float64
	visitMins   int
	popularity  int
	tags        []string
	recentBurst int
}

var placesSeed = []placeSeed{
	{
		name:        "India Gate, New Delhi",
		description: "Historic war memorial boulevard known for evening walks and city events.",
		category:    "Landmark",
		city:        "New Delhi",
		lat:         28.6129, lng: 77.2295,
		visitMins: 65, popularity: 92,
		tags:        []string{"heritage", "city-center", "night-view"},
		recentBurst: 59,
	},
	{
		name:        "Humayun Tomb, New Delhi",
		description: "UNESCO-listed Mughal monument with gardens and red sandstone architecture.",
		category:    "Historic",
		city:        "New Delhi",
		lat:         28.5933, lng: 77.2507,
		visitMins: 95, popularity: 76,
		tags:        []string{"unesco", "architecture", "history"},
		recentBurst: 28,
	},
	{
		name:        "Lodhi Garden, New Delhi",
		description: "Large urban park with tombs, walking tracks, and low-crowd morning sessions.",
		category:    "Nature",
		city:        "New Delhi",
		lat:         28.5931, lng: 77.2197,
		visitMins: 70, popularity: 68,
		tags:        []string{"park", "walking", "sunrise"},
		recentBurst: 17,
	},
	{
		name:        "Gateway of India, Mumbai",
		description: "Iconic waterfront arch and ferry point with heavy tourist activity.",
		category:    "Landmark",
		city:        "Mumbai",
		lat:         18.922, lng: 72.8347,
		visitMins: 80, popularity: 90,
		tags:        []string{"waterfront", "colonial", "photos"},
		recentBurst: 54,
	},
	{
		name:        "Marine Drive, Mumbai",
		description: "Sea-facing promenade popular for sunsets and late-evening leisure crowds.",
		category:    "Waterfront",
		city:        "Mumbai",
		lat:         18.943, lng: 72.8238,
		visitMins: 75, popularity: 82,
		tags:        []string{"sunset", "promenade", "sea-view"},
		recentBurst: 31,
	},
	{
		name:        "CSMVS Museum, Mumbai",
		description: "Major museum with art and cultural collections near Fort district.",
		category:    "Museum",
		city:        "Mumbai",
		lat:         18.926, lng: 72.8322,
		visitMins: 130, popularity: 72,
		tags:        []string{"museum", "history", "indoor"},
		recentBurst: 22,
	},
	{
		name:        "Lalbagh Botanical Garden, Bengaluru",
		description: "Historic botanical garden with glasshouse and broad green landscapes.",
		category:    "Nature",
		city:        "Bengaluru",
		lat:         12.9507, lng: 77.5848,
		visitMins: 95, popularity: 74,
		tags:        []string{"garden", "family", "morning"},
		recentBurst: 26,
	},
	{
		name:        "Cubbon Park, Bengaluru",
		description: "Central city green zone with low-noise walking loops and open lawns.",
		category:    "Nature",
		city:        "Bengaluru",
		lat:         12.9763, lng: 77.5929,
		visitMins: 80, popularity: 70,
		tags:        []string{"greenery", "jogging", "relax"},
		recentBurst: 18,
	},
	{
		name:        "Bangalore Palace",
		description: "Heritage palace attraction known for architecture and interior tours.",
		category:    "Historic",
		city:        "Bengaluru",
		lat:         12.9987, lng: 77.592,
		visitMins: 90, popularity: 66,
		tags:        []string{"palace", "architecture", "heritage"},
		recentBurst: 14,
	},
	{
		name:        "Amber Fort, Jaipur",
		description: "Hilltop fort complex with palace courtyards and panoramic city views.",
		history:     "Built in the late 16th century by Raja Man Singh, Amber Fort was the capital seat of the Kachwaha Rajputs before Jaipur city was founded.",
		category:    "Historic",
		city:        "Jaipur",
		lat:         26.9855, lng: 75.8513,
		visitMins: 150, popularity: 78,
		tags:        []string{"fort", "hilltop", "heritage"},
		recentBurst: 47,
	},
	{
		name:        "Jal Mahal Viewpoint, Jaipur",
		description: "Lakeside viewpoint with scenic skyline and evening photo traffic.",
		history:     "Jal Mahal is an 18th-century palace built in the middle of Man Sagar Lake, known for its Rajput and Mughal architectural blend.",
		category:    "Waterfront",
		city:        "Jaipur",
		lat:         26.9536, lng: 75.8468,
		visitMins: 55, popularity: 63,
		tags:        []string{"lake", "sunset", "photography"},
		recentBurst: 19,
	},
	{
		name:        "City Palace Jaipur",
		description: "Royal palace museum zone blending architecture, galleries, and courtyards.",
		history:     "City Palace was established in 1727 by Maharaja Sawai Jai Singh II and remains one of Jaipur's most important royal heritage complexes.",
		category:    "Museum",
		city:        "Jaipur",
		lat:         26.9258, lng: 75.8237,
		visitMins: 110, popularity: 69,
		tags:        []string{"royal", "museum", "culture"},
		recentBurst: 24,
	},
	{
		name:        "Hawa Mahal, Jaipur",
		description: "Iconic pink sandstone facade with jharokha windows in Jaipur's old city.",
		history:     "Constructed in 1799 by Maharaja Sawai Pratap Singh, Hawa Mahal allowed royal women to observe street festivals without being seen.",
		category:    "Historic",
		city:        "Jaipur",
		lat:         26.9239, lng: 75.8267,
		visitMins: 75, popularity: 81,
		tags:        []string{"palace", "pink-city", "architecture"},
		recentBurst: 41,
	},
	{
		name:        "Jantar Mantar, Jaipur",
		description: "UNESCO astronomical observatory with monumental stone instruments.",
		history:     "Commissioned by Sawai Jai Singh II in 1734, Jantar Mantar is the largest stone observatory in the world and a UNESCO World Heritage site.",
		category:    "Historic",
		city:        "Jaipur",
		lat:         26.9248, lng: 75.8246,
		visitMins: 95, popularity: 74,
		tags:        []string{"unesco", "astronomy", "heritage"},
		recentBurst: 29,
	},
	{
		name:        "Nahargarh Fort, Jaipur",
		description: "Ridge-top fort with citywide sunset views and historic ramparts.",
		history:     "Built in 1734 by Sawai Jai Singh II, Nahargarh Fort formed part of Jaipur's defensive ring along with Amber and Jaigarh forts.",
		category:    "Historic",
		city:        "Jaipur",
		lat:         26.9373, lng: 75.8152,
		visitMins: 120, popularity: 72,
		tags:        []string{"fort", "sunset", "viewpoint"},
		recentBurst: 23,
	},
	{
		name:        "Jaigarh Fort, Jaipur",
		description: "Massive hill fort known for military architecture and panoramic routes.",
		history:     "Completed in 1726, Jaigarh Fort protected Amber Fort and houses Jaivana, once considered the world's largest cannon on wheels.",
		category:    "Historic",
		city:        "Jaipur",
		lat:         26.9854, lng: 75.8479,
		visitMins: 120, popularity: 68,
		tags:        []string{"fort", "cannon", "heritage"},
		recentBurst: 18,
	},
	{
		name:        "Albert Hall Museum, Jaipur",
		description: "Indo-Saracenic museum with art collections, artifacts, and evening lights.",
		history:     "Opened to the public in 1887, Albert Hall is Rajasthan's oldest museum and an important symbol of Jaipur's colonial-era architecture.",
		category:    "Museum",
		city:        "Jaipur",
		lat:         26.9125, lng: 75.8198,
		visitMins: 100, popularity: 66,
		tags:        []string{"museum", "art", "history"},
		recentBurst: 26,
	},
}

var reviewCommentPool = map[int][]string{
	5: {
		"Excellent experience, clean surroundings, and very good atmosphere.",
		"One of my favorite places so far. Great views and easy access.",
		"Worth the visit, well maintained and highly enjoyable.",
	},
	4: {
		"Good place to visit. Slight crowd but still manageable.",
		"Nice location and overall good experience.",
		"Beautiful landmark with decent facilities nearby.",
	},
	3: {
		"Average visit. Good place but can improve management.",
		"Decent location, not bad for a short stop.",
		"Okay experience. Better during non-peak hours.",
	},
	2: {
		"Too crowded at the time of visit and waiting time was high.",
		"Expected better organization and cleanliness.",
		"Not very comfortable during peak hours.",
	},
	1: {
		"Very congested and difficult to enjoy the place.",
		"Poor crowd management at this time.",
		"Visit quality was low due to heavy rush.",
	},
}

var reviewPhotoPool = []string{
	"https://picsum.photos/id/1015/900/560",
	"https://picsum.photos/id/1035/900/560",
	"https://picsum.photos/id/1040/900/560",
	"https://picsum.photos/id/1043/900/560",
	"https://picsum.photos/id/1066/900/560",
	"https://picsum.photos/id/1074/900/560",
	"https://picsum.photos/id/1078/900/560",
	"https://picsum.photos/id/1084/900/560",
	"https://picsum.photos/id/1080/900/560",
	"https://picsum.photos/id/1082/900/560",
	"https://picsum.photos/id/1047/900/560",
	"https://picsum.photos/id/1056/900/560",
}

func randomInt(min, max int) int {
	return rand.Intn(max-min+1) + min
}

func hourlyDemandMultiplier(hour int) float64 {
	switch {
	case hour >= 7 && hour <= 10:
		return 1.2
	case hour >= 11 && hour <= 16:
		return 2.2
	case hour >= 17 && hour <= 21:
		return 1.8
	default:
		return 0.55
	}
}

func isWeekend(day time.Time) bool {
	weekday := day.Weekday()
	return weekday == time.Sunday || weekday == time.Saturday
}

func weightedRating(popularity int) int {
	switch {
	case popularity >= 85:
		return pick([]int{5, 5, 4, 5, 4, 3})
	case popularity >= 70:
		return pick([]int{4, 4, 5, 3, 4, 3, 5})
	default:
		return pick([]int{3, 4, 3, 2, 4, 3})
	}
}

func pick[T any](values []T) T {
	return values[rand.Intn(len(values))]
}

func randomPhotos() []string {
	if rand.Float64() >= 0.58 {
		return nil
	}
	count := randomInt(1, 3)
	chosen := make(map[string]struct{}, count)
	for len(chosen) < count {
		chosen[pick(reviewPhotoPool)] = struct{}{}
	}
	photos := make([]string, 0, count)
	for url := range chosen {
		photos = append(photos, url)
	}
	return photos
}

func main() {
	godotenv.Load()
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	ctx := context.Background()

	clearExisting := true
	if raw := os.Getenv("SEED_CLEAR_EXISTING"); raw != "" {
		clearExisting = strings.EqualFold(raw, "true")
	}
	if clearExisting {
		// All three tables or none, so an interrupted run never leaves a
		// half-cleared catalog behind
		err := database.Transaction(ctx, func(tx *sql.Tx) error {
			for _, table := range []string{"reviews", "check_ins", "places"} {
				if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
					return fmt.Errorf("failed to clear %s: %w", table, err)
				}
			}
			return nil
		})
		if err != nil {
			log.Fatal("Failed to clear existing data:", err)
		}
		log.Println("Cleared existing places, check-ins, and reviews.")
	}
	placeRepo := repository.NewPlaceRepository(db)
	checkInRepo := repository.NewCheckInRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	now := time.Now()
	totalCheckIns := 0
	totalReviews := 0

	for _, seed := range placesSeed {
		place := &models.Place{
			ID:                          uuid.NewString(),
			Name:                        seed.name,
			Description:                 seed.description,
			History:                     seed.history,
			Category:                    seed.category,
			City:                        seed.city,
			Location:                    models.Location{Lat: seed.lat, Lng: seed.lng},
			AverageVisitDurationMinutes: seed.visitMins,
			BasePopularity:              seed.popularity,
			Tags:                        seed.tags,
			IsActive:                    true,
			CreatedAt:                   now.Unix(),
			UpdatedAt:                   now.Unix(),
		}
		if err := placeRepo.Create(ctx, place); err != nil {
			log.Fatalf("Failed to insert place %s: %v", seed.name, err)
		}

		// Two weeks of hourly history shaped by popularity and time of day
		placeBase := float64(seed.popularity) / 28
		for dayOffset := 14; dayOffset >= 1; dayOffset-- {
			day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local).
				AddDate(0, 0, -dayOffset)

			weekendMultiplier := 1.0
			if isWeekend(day) {
				weekendMultiplier = 1.25
			}

			for hour := 0; hour < 24; hour++ {
				demand := placeBase * hourlyDemandMultiplier(hour) * weekendMultiplier
				noisy := demand + float64(randomInt(-2, 2))
				if rand.Float64() < 0.07 {
					noisy += float64(randomInt(3, 8))
				}
				count := int(noisy + 0.5)
				if count < 0 {
					count = 0
				}

				for i := 0; i < count; i++ {
					at := day.Add(time.Duration(hour)*time.Hour +
						time.Duration(randomInt(0, 59))*time.Minute +
						time.Duration(randomInt(0, 59))*time.Second)
					err := checkInRepo.Create(ctx, &models.CheckIn{
						ID:           uuid.NewString(),
						PlaceID:      place.ID,
						VisitorAlias: fmt.Sprintf("Seed-%d", randomInt(1000, 9999)),
						Source:       models.SourceSeed,
						CreatedAt:    at.Unix(),
					})
					if err != nil {
						log.Fatalf("Failed to insert check-in: %v", err)
					}
					totalCheckIns++
				}
			}
		}

		// Fresh burst so the live crowd levels land on a believable spread
		for i := 0; i < seed.recentBurst; i++ {
			at := now.Add(-time.Duration(randomInt(0, 55)) * time.Minute)
			err := checkInRepo.Create(ctx, &models.CheckIn{
				ID:           uuid.NewString(),
				PlaceID:      place.ID,
				VisitorAlias: fmt.Sprintf("Live-%d", randomInt(1000, 9999)),
				Source:       models.SourceSimulated,
				CreatedAt:    at.Unix(),
			})
			if err != nil {
				log.Fatalf("Failed to insert check-in: %v", err)
			}
			totalCheckIns++
		}

		reviewCount := randomInt(4, 18)
		for i := 0; i < reviewCount; i++ {
			rating := weightedRating(seed.popularity)
			at := now.AddDate(0, 0, -randomInt(0, 24))
			at = time.Date(at.Year(), at.Month(), at.Day(),
				randomInt(7, 22), randomInt(0, 59), randomInt(0, 59), 0, time.Local)

			err := reviewRepo.Create(ctx, &models.Review{
				ID:            uuid.NewString(),
				PlaceID:       place.ID,
				ReviewerAlias: fmt.Sprintf("Reviewer-%d", randomInt(1000, 9999)),
				Rating:        rating,
				Comment:       pick(reviewCommentPool[rating]),
				Photos:        randomPhotos(),
				CreatedAt:     at.Unix(),
			})
			if err != nil {
				log.Fatalf("Failed to insert review: %v", err)
			}
			totalReviews++
		}
	}

	log.Printf("Inserted %d places.", len(placesSeed))
	log.Printf("Inserted %d check-ins.", totalCheckIns)
	log.Printf("Inserted %d reviews.", totalReviews)
	log.Println("Seeding completed.")
}
