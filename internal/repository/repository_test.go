package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jengzang/tourism-backend-go/internal/database"
	"github.com/jengzang/tourism-backend-go/internal/models"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// :memory: gives every connection its own database
	conn.SetMaxOpenConns(1)

	if err := database.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func seedPlace(t *testing.T, repo *PlaceRepository, name, city string) *models.Place {
	t.Helper()
	now := time.Now().Unix()
	place := &models.Place{
		ID:                          uuid.NewString(),
		Name:                        name,
		Category:                    "Attraction",
		City:                        city,
		Location:                    models.Location{Lat: 26.92, Lng: 75.82},
		AverageVisitDurationMinutes: 60,
		BasePopularity:              52,
		Tags:                        []string{"heritage", "fort"},
		IsActive:                    true,
		CreatedAt:                   now,
		UpdatedAt:                   now,
	}
	if err := repo.Create(context.Background(), place); err != nil {
		t.Fatalf("create place: %v", err)
	}
	return place
}

func TestPlaceRepositoryRoundTrip(t *testing.T) {
	repo := NewPlaceRepository(testDB(t))
	created := seedPlace(t, repo, "Amber Fort", "Jaipur")

	got, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Amber Fort" || got.City != "Jaipur" {
		t.Errorf("got %s/%s", got.Name, got.City)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "heritage" {
		t.Errorf("tags = %v", got.Tags)
	}
	if !got.IsActive {
		t.Error("place should be active")
	}
}

func TestPlaceRepositoryNotFound(t *testing.T) {
	repo := NewPlaceRepository(testDB(t))
	_, err := repo.GetByID(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestPlaceRepositoryCityFiltering(t *testing.T) {
	repo := NewPlaceRepository(testDB(t))
	seedPlace(t, repo, "Amber Fort", "Jaipur")
	seedPlace(t, repo, "Hawa Mahal", "Jaipur")
	seedPlace(t, repo, "Fort Kochi Beach", "Kochi")

	jaipur, err := repo.ListActiveByCity(context.Background(), "Jaipur")
	if err != nil {
		t.Fatalf("ListActiveByCity: %v", err)
	}
	if len(jaipur) != 2 {
		t.Errorf("jaipur count = %d, want 2", len(jaipur))
	}

	// Exact match only
	partial, err := repo.ListActiveByCity(context.Background(), "Jai")
	if err != nil {
		t.Fatalf("ListActiveByCity: %v", err)
	}
	if len(partial) != 0 {
		t.Errorf("partial match returned %d places", len(partial))
	}

	cities, err := repo.DistinctCities(context.Background())
	if err != nil {
		t.Fatalf("DistinctCities: %v", err)
	}
	if len(cities) != 2 || cities[0] != "Jaipur" || cities[1] != "Kochi" {
		t.Errorf("cities = %v", cities)
	}
}

func seedCheckIn(t *testing.T, repo *CheckInRepository, placeID string, at time.Time) {
	t.Helper()
	err := repo.Create(context.Background(), &models.CheckIn{
		ID:           uuid.NewString(),
		PlaceID:      placeID,
		VisitorAlias: "Guest-0001",
		Source:       models.SourceManual,
		CreatedAt:    at.Unix(),
	})
	if err != nil {
		t.Fatalf("create check-in: %v", err)
	}
}

func TestCheckInRepositoryCounts(t *testing.T) {
	conn := testDB(t)
	places := NewPlaceRepository(conn)
	checkIns := NewCheckInRepository(conn)
	place := seedPlace(t, places, "Amber Fort", "Jaipur")
	other := seedPlace(t, places, "Hawa Mahal", "Jaipur")

	now := time.Now()
	seedCheckIn(t, checkIns, place.ID, now.Add(-10*time.Minute))
	seedCheckIn(t, checkIns, place.ID, now.Add(-30*time.Minute))
	seedCheckIn(t, checkIns, place.ID, now.Add(-3*time.Hour))
	seedCheckIn(t, checkIns, place.ID, now.Add(-20*time.Hour))
	seedCheckIn(t, checkIns, other.ID, now.Add(-5*time.Minute))

	ctx := context.Background()
	lastHour, err := checkIns.CountSince(ctx, place.ID, now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("CountSince: %v", err)
	}
	if lastHour != 2 {
		t.Errorf("last hour = %d, want 2", lastHour)
	}

	last24h, err := checkIns.CountSince(ctx, place.ID, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("CountSince: %v", err)
	}
	if last24h != 4 {
		t.Errorf("last 24h = %d, want 4", last24h)
	}

	all, err := checkIns.CountAll(ctx)
	if err != nil {
		t.Fatalf("CountAll: %v", err)
	}
	if all != 5 {
		t.Errorf("total = %d, want 5", all)
	}
}

func TestCheckInRepositoryHourBuckets(t *testing.T) {
	conn := testDB(t)
	places := NewPlaceRepository(conn)
	checkIns := NewCheckInRepository(conn)
	place := seedPlace(t, places, "Amber Fort", "Jaipur")

	// Two check-ins at local 09:xx yesterday, one at 14:xx
	yesterday := time.Now().AddDate(0, 0, -1)
	nine := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 9, 15, 0, 0, time.Local)
	fourteen := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 14, 40, 0, 0, time.Local)
	seedCheckIn(t, checkIns, place.ID, nine)
	seedCheckIn(t, checkIns, place.ID, nine.Add(20*time.Minute))
	seedCheckIn(t, checkIns, place.ID, fourteen)

	byHour, err := checkIns.CountByHourOfDay(context.Background(), place.ID, time.Now().AddDate(0, 0, -14), time.Now())
	if err != nil {
		t.Fatalf("CountByHourOfDay: %v", err)
	}
	if byHour[9] != 2 {
		t.Errorf("hour 9 = %d, want 2", byHour[9])
	}
	if byHour[14] != 1 {
		t.Errorf("hour 14 = %d, want 1", byHour[14])
	}
	if _, ok := byHour[3]; ok {
		t.Error("empty hour should be absent")
	}
}

func TestCheckInRepositoryRecent(t *testing.T) {
	conn := testDB(t)
	places := NewPlaceRepository(conn)
	checkIns := NewCheckInRepository(conn)
	place := seedPlace(t, places, "Amber Fort", "Jaipur")

	now := time.Now()
	seedCheckIn(t, checkIns, place.ID, now.Add(-2*time.Minute))
	seedCheckIn(t, checkIns, place.ID, now.Add(-1*time.Minute))

	recent, err := checkIns.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent count = %d, want 2", len(recent))
	}
	if recent[0].CreatedAt < recent[1].CreatedAt {
		t.Error("recent not sorted newest first")
	}
	if recent[0].Place == nil || recent[0].Place.Name != "Amber Fort" {
		t.Errorf("place join missing: %+v", recent[0].Place)
	}
}

func TestReviewRepositorySummaries(t *testing.T) {
	conn := testDB(t)
	places := NewPlaceRepository(conn)
	reviews := NewReviewRepository(conn)
	place := seedPlace(t, places, "Amber Fort", "Jaipur")

	ctx := context.Background()
	for i, rating := range []int{5, 4, 4} {
		err := reviews.Create(ctx, &models.Review{
			ID:            uuid.NewString(),
			PlaceID:       place.ID,
			ReviewerAlias: "Traveler-0001",
			Rating:        rating,
			Comment:       "Lovely and quiet in the morning",
			Photos:        []string{"https://example.com/a.jpg"},
			CreatedAt:     time.Now().Add(time.Duration(i) * time.Second).Unix(),
		})
		if err != nil {
			t.Fatalf("create review: %v", err)
		}
	}

	summary, err := reviews.SummaryForPlace(ctx, place.ID)
	if err != nil {
		t.Fatalf("SummaryForPlace: %v", err)
	}
	if summary.TotalReviews != 3 {
		t.Errorf("total = %d, want 3", summary.TotalReviews)
	}
	if summary.AverageRating < 4.3 || summary.AverageRating > 4.4 {
		t.Errorf("average = %v, want ~4.33", summary.AverageRating)
	}

	breakdown, err := reviews.RatingBreakdown(ctx, place.ID)
	if err != nil {
		t.Fatalf("RatingBreakdown: %v", err)
	}
	if breakdown[4] != 2 || breakdown[5] != 1 {
		t.Errorf("breakdown = %v", breakdown)
	}

	latest, err := reviews.Latest(ctx, place.ID, 2)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if len(latest) != 2 {
		t.Fatalf("latest count = %d, want 2", len(latest))
	}
	if len(latest[0].Photos) != 1 {
		t.Errorf("photos = %v", latest[0].Photos)
	}

	// Unreviewed places produce a zero summary, not an error
	empty, err := reviews.SummaryForPlace(ctx, uuid.NewString())
	if err != nil {
		t.Fatalf("SummaryForPlace empty: %v", err)
	}
	if empty.TotalReviews != 0 || empty.AverageRating != 0 {
		t.Errorf("empty summary = %+v", empty)
	}
}

func TestBookingRepositoryRoundTrip(t *testing.T) {
	repo := NewBookingRepository(testDB(t))

	booking := &models.GuideBooking{
		ID:            uuid.NewString(),
		GuideID:       "guide_jaipur_raj",
		GuideName:     "Raj Singh",
		GuideCity:     "Jaipur",
		TouristName:   "Jordan Lee",
		TouristPhone:  "+91 98765 43210",
		PreferredDate: "2026-09-15",
		PreferredTime: "09:30",
		DurationHours: 4,
		Status:        "pending",
		CreatedAt:     time.Now().Unix(),
	}
	if err := repo.Create(context.Background(), booking); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	bookings, err := repo.ListRecent(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(bookings) != 1 || bookings[0].GuideID != "guide_jaipur_raj" || bookings[0].Status != "pending" {
		t.Errorf("bookings = %+v", bookings)
	}
}
