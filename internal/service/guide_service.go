package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/tourism-backend-go/internal/crowd"
	"github.com/jengzang/tourism-backend-go/internal/models"
	"github.com/jengzang/tourism-backend-go/internal/repository"
)

// Booking bounds
const (
	minBookingHours     = 1
	maxBookingHours     = 12
	defaultBookingHours = 4
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern  = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-\s]{8,20}$`)
)

// GuideService serves the static guide directory and records bookings
type GuideService struct {
	bookings *repository.BookingRepository
}

// NewGuideService creates a new guide service
func NewGuideService(bookings *repository.BookingRepository) *GuideService {
	return &GuideService{bookings: bookings}
}

// GuideDirectory is the guide listing payload
type GuideDirectory struct {
	City   string         `json:"city"`
	Total  int            `json:"total"`
	Guides []models.Guide `json:"guides"`
}

// List filters the static catalog by city; blank or "all" returns everyone
func (s *GuideService) List(cityInput string) *GuideDirectory {
	city := strings.TrimSpace(cityInput)
	normalized := strings.ToLower(city)

	catalog := models.GuideCatalog()
	if normalized == "" || normalized == "all" {
		return &GuideDirectory{
			City:   "All Cities",
			Total:  len(catalog),
			Guides: catalog,
		}
	}

	filtered := make([]models.Guide, 0, len(catalog))
	for _, guide := range catalog {
		if strings.ToLower(guide.City) == normalized {
			filtered = append(filtered, guide)
		}
	}
	return &GuideDirectory{
		City:   titleCase(city),
		Total:  len(filtered),
		Guides: filtered,
	}
}

// BookGuideInput carries a booking submission
type BookGuideInput struct {
	GuideID       string
	TouristName   string
	TouristPhone  string
	PreferredDate string
	PreferredTime string
	DurationHours int
	Notes         string
}

// Book validates a booking against the catalog and stores it
func (s *GuideService) Book(ctx context.Context, input BookGuideInput) (*models.GuideBooking, error) {
	var guide *models.Guide
	for _, entry := range models.GuideCatalog() {
		if entry.ID == strings.TrimSpace(input.GuideID) {
			guide = &entry
			break
		}
	}
	if guide == nil {
		return nil, invalidf("please select a valid tour guide")
	}

	touristName := strings.TrimSpace(input.TouristName)
	if len(touristName) < 2 {
		return nil, invalidf("tourist name must be at least 2 characters")
	}

	touristPhone := strings.TrimSpace(input.TouristPhone)
	if !phonePattern.MatchString(touristPhone) {
		return nil, invalidf("please enter a valid phone number")
	}

	preferredDate := strings.TrimSpace(input.PreferredDate)
	if !datePattern.MatchString(preferredDate) {
		return nil, invalidf("please provide a valid preferred date (YYYY-MM-DD)")
	}

	preferredTime := strings.TrimSpace(input.PreferredTime)
	if !timePattern.MatchString(preferredTime) {
		return nil, invalidf("please provide a valid preferred time (HH:mm)")
	}

	requested, err := time.ParseInLocation("2006-01-02 15:04", preferredDate+" "+preferredTime, time.Local)
	if err != nil {
		return nil, invalidf("preferred date/time is invalid")
	}
	if requested.Before(time.Now()) {
		return nil, invalidf("preferred date/time must be in the future")
	}

	duration := input.DurationHours
	if duration == 0 {
		duration = defaultBookingHours
	}
	duration = crowd.ClampInt(duration, minBookingHours, maxBookingHours)

	booking := &models.GuideBooking{
		ID:            uuid.NewString(),
		GuideID:       guide.ID,
		GuideName:     guide.Name,
		GuideCity:     guide.City,
		TouristName:   touristName,
		TouristPhone:  touristPhone,
		PreferredDate: preferredDate,
		PreferredTime: preferredTime,
		DurationHours: duration,
		Notes:         strings.TrimSpace(input.Notes),
		Status:        "pending",
		CreatedAt:     time.Now().Unix(),
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}
