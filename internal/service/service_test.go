package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jengzang/tourism-backend-go/internal/database"
	"github.com/jengzang/tourism-backend-go/internal/models"
	"github.com/jengzang/tourism-backend-go/internal/repository"
)

type fixtures struct {
	conn     *sql.DB
	places   *repository.PlaceRepository
	checkIns *repository.CheckInRepository
	reviews  *repository.ReviewRepository
	bookings *repository.BookingRepository
}

func setup(t *testing.T) *fixtures {
	t.Helper()
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetMaxOpenConns(1)

	if err := database.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return &fixtures{
		conn:     conn,
		places:   repository.NewPlaceRepository(conn),
		checkIns: repository.NewCheckInRepository(conn),
		reviews:  repository.NewReviewRepository(conn),
		bookings: repository.NewBookingRepository(conn),
	}
}

func (f *fixtures) placeService() *PlaceService {
	return NewPlaceService(f.places, f.checkIns, f.reviews, 0)
}

func (f *fixtures) addPlace(t *testing.T, name, city string, lat, lng float64) *models.Place {
	t.Helper()
	now := time.Now().Unix()
	place := &models.Place{
		ID:                          uuid.NewString(),
		Name:                        name,
		Category:                    "Attraction",
		City:                        city,
		Location:                    models.Location{Lat: lat, Lng: lng},
		AverageVisitDurationMinutes: 60,
		BasePopularity:              52,
		IsActive:                    true,
		CreatedAt:                   now,
		UpdatedAt:                   now,
	}
	if err := f.places.Create(context.Background(), place); err != nil {
		t.Fatalf("create place: %v", err)
	}
	return place
}

func (f *fixtures) addCheckIns(t *testing.T, placeID string, n int, age time.Duration) {
	t.Helper()
	at := time.Now().Add(-age).Unix()
	for i := 0; i < n; i++ {
		err := f.checkIns.Create(context.Background(), &models.CheckIn{
			ID:           uuid.NewString(),
			PlaceID:      placeID,
			VisitorAlias: "Guest-0001",
			Source:       models.SourceSimulated,
			CreatedAt:    at,
		})
		if err != nil {
			t.Fatalf("create check-in: %v", err)
		}
	}
}

func TestCreatePlaceValidation(t *testing.T) {
	svc := setup(t).placeService()
	ctx := context.Background()

	_, err := svc.CreatePlace(ctx, CreatePlaceInput{Location: models.Location{Lat: 10, Lng: 10}})
	if !IsValidation(err) {
		t.Errorf("missing name: err = %v, want validation error", err)
	}

	_, err = svc.CreatePlace(ctx, CreatePlaceInput{Name: "Fort", Location: models.Location{Lat: 120, Lng: 10}})
	if !IsValidation(err) {
		t.Errorf("bad latitude: err = %v, want validation error", err)
	}
}

func TestCreatePlaceDefaultsAndClamps(t *testing.T) {
	svc := setup(t).placeService()

	created, err := svc.CreatePlace(context.Background(), CreatePlaceInput{
		Name:                        "  Amber Fort  ",
		City:                        "jaipur",
		Location:                    models.Location{Lat: 26.98, Lng: 75.85},
		Tags:                        []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
		AverageVisitDurationMinutes: 900,
	})
	if err != nil {
		t.Fatalf("CreatePlace: %v", err)
	}
	if created.Name != "Amber Fort" {
		t.Errorf("name = %q", created.Name)
	}
	if created.City != "Jaipur" {
		t.Errorf("city = %q, want normalized Jaipur", created.City)
	}
	if created.AverageVisitDurationMinutes != 480 {
		t.Errorf("duration = %d, want clamped 480", created.AverageVisitDurationMinutes)
	}
	if len(created.Tags) != 8 {
		t.Errorf("tag count = %d, want 8", len(created.Tags))
	}
	if created.Crowd.CrowdLevel != models.CrowdLow || created.Crowd.VisitScore != 90 {
		t.Errorf("fresh place crowd = %+v", created.Crowd)
	}
}

func TestEnrichedPlaces(t *testing.T) {
	f := setup(t)
	svc := f.placeService()
	busy := f.addPlace(t, "Busy Fort", "Jaipur", 26.9, 75.8)
	f.addPlace(t, "Quiet Garden", "Jaipur", 26.91, 75.81)
	f.addCheckIns(t, busy.ID, 25, 10*time.Minute)

	enriched, err := svc.EnrichedPlaces(context.Background(), "normal")
	if err != nil {
		t.Fatalf("EnrichedPlaces: %v", err)
	}
	if len(enriched) != 2 {
		t.Fatalf("count = %d, want 2", len(enriched))
	}

	byName := map[string]models.EnrichedPlace{}
	for _, entry := range enriched {
		byName[entry.Name] = entry
	}
	if byName["Busy Fort"].Crowd.CrowdLevel != models.CrowdMedium {
		t.Errorf("busy level = %s, want Medium", byName["Busy Fort"].Crowd.CrowdLevel)
	}
	if byName["Quiet Garden"].Crowd.CrowdLevel != models.CrowdLow {
		t.Errorf("quiet level = %s, want Low", byName["Quiet Garden"].Crowd.CrowdLevel)
	}
	if byName["Busy Fort"].BestTime == nil {
		t.Error("best time missing")
	} else if byName["Busy Fort"].BestTime.HourlyPattern != nil {
		t.Error("list enrichment should omit the hourly pattern")
	}
}

func TestAlternativesShortCircuitsOnLowTarget(t *testing.T) {
	f := setup(t)
	svc := f.placeService()
	target := f.addPlace(t, "Quiet Fort", "Jaipur", 26.9, 75.8)
	f.addPlace(t, "Nearby Garden", "Jaipur", 26.905, 75.805)

	result, err := svc.Alternatives(context.Background(), target.ID, "normal", 0, 0)
	if err != nil {
		t.Fatalf("Alternatives: %v", err)
	}
	if !result.TargetAlreadyLow {
		t.Error("expected target_already_low flag")
	}
	if len(result.Alternatives) != 0 {
		t.Errorf("alternatives = %+v, want empty", result.Alternatives)
	}
}

func TestAlternativesFindsQuieterNeighbors(t *testing.T) {
	f := setup(t)
	svc := f.placeService()
	target := f.addPlace(t, "Busy Fort", "Jaipur", 26.9, 75.8)
	quiet := f.addPlace(t, "Quiet Garden", "Jaipur", 26.905, 75.805)
	f.addCheckIns(t, target.ID, 60, 10*time.Minute)

	result, err := svc.Alternatives(context.Background(), target.ID, "normal", 0, 0)
	if err != nil {
		t.Fatalf("Alternatives: %v", err)
	}
	if result.TargetAlreadyLow {
		t.Error("target should not be Low")
	}
	if result.Target.CrowdLevel != models.CrowdHigh {
		t.Errorf("target level = %s, want High", result.Target.CrowdLevel)
	}
	if len(result.Alternatives) != 1 || result.Alternatives[0].PlaceID != quiet.ID {
		t.Errorf("alternatives = %+v, want the quiet garden", result.Alternatives)
	}
}

func TestAlternativesUnknownPlace(t *testing.T) {
	f := setup(t)
	f.addPlace(t, "Busy Fort", "Jaipur", 26.9, 75.8)

	_, err := f.placeService().Alternatives(context.Background(), uuid.NewString(), "normal", 0, 0)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestPlanItineraryCityFallback(t *testing.T) {
	f := setup(t)
	svc := f.placeService()
	f.addPlace(t, "Amber Fort", "Jaipur", 26.98, 75.85)
	f.addPlace(t, "Hawa Mahal", "Jaipur", 26.92, 75.82)

	result, err := svc.PlanItinerary(context.Background(), ItineraryRequest{
		City: "mumbai", Scenario: "normal", MaxPlaces: 2, StartHour: 9, TimeBudgetHours: 6,
	})
	if err != nil {
		t.Fatalf("PlanItinerary: %v", err)
	}
	if !result.Filters.FallbackToAllCities {
		t.Error("expected fallback to all cities")
	}
	if result.Filters.City != "Mumbai" {
		t.Errorf("filter city = %q", result.Filters.City)
	}
	if len(result.Itinerary) == 0 {
		t.Error("expected stops from the full catalog")
	}
}

func TestPlanItineraryCityFilter(t *testing.T) {
	f := setup(t)
	svc := f.placeService()
	f.addPlace(t, "Amber Fort", "Jaipur", 26.98, 75.85)
	f.addPlace(t, "Gateway of India", "Mumbai", 18.92, 72.83)

	result, err := svc.PlanItinerary(context.Background(), ItineraryRequest{
		City: "Jaipur", Scenario: "normal", MaxPlaces: 2, StartHour: 9, TimeBudgetHours: 6,
	})
	if err != nil {
		t.Fatalf("PlanItinerary: %v", err)
	}
	if result.Filters.FallbackToAllCities {
		t.Error("fallback should not trigger")
	}
	for _, stop := range result.Itinerary {
		if stop.Place.City != "Jaipur" {
			t.Errorf("stop outside city filter: %+v", stop.Place)
		}
	}
}

func TestPlanItineraryNoPlaces(t *testing.T) {
	f := setup(t)
	_, err := f.placeService().PlanItinerary(context.Background(), ItineraryRequest{})
	if !errors.Is(err, ErrNoActivePlaces) {
		t.Errorf("err = %v, want ErrNoActivePlaces", err)
	}
}

func TestCitiesCacheInvalidatedByCreate(t *testing.T) {
	f := setup(t)
	svc := f.placeService()
	ctx := context.Background()

	cities, err := svc.Cities(ctx)
	if err != nil {
		t.Fatalf("Cities: %v", err)
	}
	if len(cities) != 0 {
		t.Errorf("cities = %v, want empty", cities)
	}

	_, err = svc.CreatePlace(ctx, CreatePlaceInput{
		Name: "Amber Fort", City: "Jaipur",
		Location: models.Location{Lat: 26.98, Lng: 75.85},
	})
	if err != nil {
		t.Fatalf("CreatePlace: %v", err)
	}

	cities, err = svc.Cities(ctx)
	if err != nil {
		t.Fatalf("Cities: %v", err)
	}
	if len(cities) != 1 || cities[0] != "Jaipur" {
		t.Errorf("cities = %v, want [Jaipur]", cities)
	}
}

func TestCheckInCreate(t *testing.T) {
	f := setup(t)
	svc := NewCheckInService(f.checkIns, f.places)
	place := f.addPlace(t, "Amber Fort", "Jaipur", 26.98, 75.85)

	result, err := svc.Create(context.Background(), place.ID, "  ")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(result.CheckIn.VisitorAlias, "Guest-") {
		t.Errorf("alias = %q, want generated Guest-NNNN", result.CheckIn.VisitorAlias)
	}
	if result.Crowd.CurrentVisitors != 1 {
		t.Errorf("current = %d, want 1 (the fresh check-in)", result.Crowd.CurrentVisitors)
	}
	if result.BestTime == nil || result.BestTime.HourlyPattern != nil {
		t.Errorf("best time = %+v", result.BestTime)
	}

	_, err = svc.Create(context.Background(), uuid.NewString(), "Guest-1")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("unknown place err = %v, want ErrNotFound", err)
	}

	_, err = svc.Create(context.Background(), "", "")
	if !IsValidation(err) {
		t.Errorf("blank place err = %v, want validation error", err)
	}
}

func TestReviewSubmitValidation(t *testing.T) {
	f := setup(t)
	svc := NewReviewService(f.reviews, f.places)
	place := f.addPlace(t, "Amber Fort", "Jaipur", 26.98, 75.85)
	ctx := context.Background()

	cases := []struct {
		name  string
		input SubmitReviewInput
	}{
		{"rating too low", SubmitReviewInput{PlaceID: place.ID, Rating: 0, Comment: "nice place"}},
		{"rating too high", SubmitReviewInput{PlaceID: place.ID, Rating: 6, Comment: "nice place"}},
		{"comment too short", SubmitReviewInput{PlaceID: place.ID, Rating: 4, Comment: "ok"}},
		{"bad photo scheme", SubmitReviewInput{PlaceID: place.ID, Rating: 4, Comment: "nice place", Photos: []string{"ftp://example.com/a.jpg"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Submit(ctx, tc.input); !IsValidation(err) {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}

	result, err := svc.Submit(ctx, SubmitReviewInput{
		PlaceID: place.ID,
		Rating:  5,
		Comment: "Beautiful at sunrise, almost empty.",
		Photos:  []string{"https://example.com/a.jpg"},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !strings.HasPrefix(result.Review.ReviewerAlias, "Traveler-") {
		t.Errorf("alias = %q", result.Review.ReviewerAlias)
	}
	if result.Summary.TotalReviews != 1 || result.Summary.AverageRating != 5 {
		t.Errorf("summary = %+v", result.Summary)
	}
}

func TestGuideList(t *testing.T) {
	svc := NewGuideService(setup(t).bookings)

	all := svc.List("")
	if all.City != "All Cities" || all.Total != len(models.GuideCatalog()) {
		t.Errorf("all = %+v", all)
	}

	jaipur := svc.List("JAIPUR")
	if jaipur.City != "Jaipur" || jaipur.Total != 4 {
		t.Errorf("jaipur = %+v", jaipur)
	}

	none := svc.List("Atlantis")
	if none.Total != 0 {
		t.Errorf("unknown city total = %d", none.Total)
	}
}

func TestGuideBookValidation(t *testing.T) {
	svc := NewGuideService(setup(t).bookings)
	ctx := context.Background()
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	valid := BookGuideInput{
		GuideID:       "guide_jaipur_raj",
		TouristName:   "Jordan Lee",
		TouristPhone:  "+91 98765 43210",
		PreferredDate: tomorrow,
		PreferredTime: "09:30",
		DurationHours: 30,
	}

	booking, err := svc.Book(ctx, valid)
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if booking.DurationHours != 12 {
		t.Errorf("duration = %d, want clamped 12", booking.DurationHours)
	}
	if booking.Status != "pending" || booking.GuideCity != "Jaipur" {
		t.Errorf("booking = %+v", booking)
	}

	bad := valid
	bad.GuideID = "guide_nowhere"
	if _, err := svc.Book(ctx, bad); !IsValidation(err) {
		t.Errorf("unknown guide err = %v", err)
	}

	bad = valid
	bad.TouristPhone = "abc"
	if _, err := svc.Book(ctx, bad); !IsValidation(err) {
		t.Errorf("bad phone err = %v", err)
	}

	bad = valid
	bad.PreferredDate = "2020-01-01"
	if _, err := svc.Book(ctx, bad); !IsValidation(err) {
		t.Errorf("past date err = %v", err)
	}

	bad = valid
	bad.PreferredTime = "25:00"
	if _, err := svc.Book(ctx, bad); !IsValidation(err) {
		t.Errorf("bad time err = %v", err)
	}
}

func TestAuthLoginAndVerify(t *testing.T) {
	svc := NewAuthService("test-secret", "local-admin", time.Hour)

	if _, err := svc.Login("wrong-key"); !IsValidation(err) {
		t.Errorf("wrong key err = %v, want validation error", err)
	}

	token, err := svc.Login("local-admin")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	subject, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != "admin" {
		t.Errorf("subject = %q", subject)
	}

	if _, err := svc.Verify(token + "tampered"); err == nil {
		t.Error("tampered token verified")
	}
}

func TestAnalyticsOverviewAndImpact(t *testing.T) {
	f := setup(t)
	svc := NewAnalyticsService(f.places, f.checkIns, f.reviews)
	busy := f.addPlace(t, "Busy Fort", "Jaipur", 26.9, 75.8)
	f.addPlace(t, "Quiet Garden", "Jaipur", 26.91, 75.81)
	f.addCheckIns(t, busy.ID, 60, 10*time.Minute)

	overview, err := svc.Overview(context.Background(), "normal")
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if overview.Totals.Places != 2 || overview.Totals.TotalCheckIns != 60 {
		t.Errorf("totals = %+v", overview.Totals)
	}
	if overview.ByCrowdLevel.High != 1 || overview.ByCrowdLevel.Low != 1 {
		t.Errorf("distribution = %+v", overview.ByCrowdLevel)
	}
	if len(overview.TopCrowdedPlaces) == 0 || overview.TopCrowdedPlaces[0].Name != "Busy Fort" {
		t.Errorf("top crowded = %+v", overview.TopCrowdedPlaces)
	}

	impact, err := svc.Impact(context.Background(), "normal")
	if err != nil {
		t.Fatalf("Impact: %v", err)
	}
	if impact.CheckInsLast24Hours != 60 {
		t.Errorf("24h = %d", impact.CheckInsLast24Hours)
	}
	if impact.BaselineAverageWaitMinutes != 40 {
		// All visitors sit in one High place, so the share-weighted
		// baseline is the High wait
		t.Errorf("baseline = %v, want 40", impact.BaselineAverageWaitMinutes)
	}
	if impact.ExperienceStabilityScore < 20 || impact.ExperienceStabilityScore > 99 {
		t.Errorf("stability = %d", impact.ExperienceStabilityScore)
	}
}

func TestAnalyticsScenarioAndTrends(t *testing.T) {
	f := setup(t)
	svc := NewAnalyticsService(f.places, f.checkIns, f.reviews)
	place := f.addPlace(t, "Amber Fort", "Jaipur", 26.98, 75.85)
	f.addCheckIns(t, place.ID, 10, 10*time.Minute)

	report, err := svc.Scenario(context.Background(), "festival")
	if err != nil {
		t.Fatalf("Scenario: %v", err)
	}
	if report.Multiplier != 1.58 {
		t.Errorf("multiplier = %v", report.Multiplier)
	}
	// 10 current visitors scale to round(10*1.58) = 16
	if report.ProjectedCurrentVisitors != 16 {
		t.Errorf("projected = %d, want 16", report.ProjectedCurrentVisitors)
	}
	if len(report.TopProjectedHotspots) != 1 || report.TopProjectedHotspots[0].ProjectedVisitors != 16 {
		t.Errorf("hotspots = %+v", report.TopProjectedHotspots)
	}

	trends, err := svc.Trends(context.Background(), 0, "weekend")
	if err != nil {
		t.Fatalf("Trends: %v", err)
	}
	if trends.Days != 7 {
		t.Errorf("days = %d, want default 7", trends.Days)
	}
	if len(trends.Daily) != 1 {
		t.Fatalf("daily count = %d, want 1", len(trends.Daily))
	}
	if trends.Daily[0].TotalCheckIns != 10 || trends.Daily[0].ProjectedTotalCheckIns != 12 {
		t.Errorf("daily = %+v", trends.Daily[0])
	}

	if _, err := svc.Trends(context.Background(), 500, "normal"); err != nil {
		t.Fatalf("Trends clamp: %v", err)
	}
}

func TestAnalyticsHourly(t *testing.T) {
	f := setup(t)
	svc := NewAnalyticsService(f.places, f.checkIns, f.reviews)
	place := f.addPlace(t, "Amber Fort", "Jaipur", 26.98, 75.85)

	at := time.Date(2026, 8, 30, 9, 30, 0, 0, time.Local)
	for i := 0; i < 4; i++ {
		err := f.checkIns.Create(context.Background(), &models.CheckIn{
			ID: uuid.NewString(), PlaceID: place.ID,
			VisitorAlias: "Guest-0001", Source: models.SourceSeed,
			CreatedAt: at.Unix(),
		})
		if err != nil {
			t.Fatalf("create check-in: %v", err)
		}
	}

	report, err := svc.Hourly(context.Background(), place.ID, 0, "weekend")
	if err != nil {
		t.Fatalf("Hourly: %v", err)
	}
	if report.LookbackDays != 14 {
		t.Errorf("lookback = %d, want default 14", report.LookbackDays)
	}
	if len(report.HourlyPattern) != 24 {
		t.Fatalf("pattern length = %d", len(report.HourlyPattern))
	}
	// 4 check-ins at hour 9 scale to round(4*1.24) = 5
	if report.HourlyPattern[9].Count != 5 {
		t.Errorf("hour 9 = %d, want 5", report.HourlyPattern[9].Count)
	}
	if len(report.BestSlots) != 3 {
		t.Errorf("best slots = %+v", report.BestSlots)
	}

	if _, err := svc.Hourly(context.Background(), uuid.NewString(), 0, "normal"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("unknown place err = %v", err)
	}
}
