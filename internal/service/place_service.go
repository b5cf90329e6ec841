package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jengzang/tourism-backend-go/internal/catalog"
	"github.com/jengzang/tourism-backend-go/internal/crowd"
	"github.com/jengzang/tourism-backend-go/internal/models"
	"github.com/jengzang/tourism-backend-go/internal/repository"
)

const enrichConcurrency = 8

// PlaceService implements the catalog and crowd-intelligence operations
type PlaceService struct {
	places   *repository.PlaceRepository
	checkIns *repository.CheckInRepository
	reviews  *repository.ReviewRepository
	cities   *catalog.CityCache

	distancePenaltyPerKm float64
}

// NewPlaceService creates a new place service. distancePenaltyPerKm tunes
// the itinerary planner; zero selects the default.
func NewPlaceService(
	places *repository.PlaceRepository,
	checkIns *repository.CheckInRepository,
	reviews *repository.ReviewRepository,
	distancePenaltyPerKm float64,
) *PlaceService {
	s := &PlaceService{
		places:               places,
		checkIns:             checkIns,
		reviews:              reviews,
		distancePenaltyPerKm: distancePenaltyPerKm,
	}
	s.cities = catalog.NewCityCache(places.DistinctCities)
	return s
}

// CreatePlaceInput carries a new place submission
type CreatePlaceInput struct {
	Name                        string
	Description                 string
	History                     string
	Category                    string
	City                        string
	Location                    models.Location
	Tags                        []string
	AverageVisitDurationMinutes int
	BasePopularity              int
}

// Create place bounds
const (
	minVisitMinutes     = 15
	maxVisitMinutes     = 480
	defaultVisitMinutes = 60

	defaultBasePopularity = 52
	maxPlaceTags          = 8
)

// CreatePlace validates and stores a new place and returns it enriched
func (s *PlaceService) CreatePlace(ctx context.Context, input CreatePlaceInput) (*models.EnrichedPlace, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, invalidf("name is required")
	}
	if !input.Location.Valid() {
		return nil, invalidf("valid latitude and longitude are required")
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = "Attraction"
	}

	duration := input.AverageVisitDurationMinutes
	if duration == 0 {
		duration = defaultVisitMinutes
	}
	duration = crowd.ClampInt(duration, minVisitMinutes, maxVisitMinutes)

	popularity := input.BasePopularity
	if popularity == 0 {
		popularity = defaultBasePopularity
	}
	popularity = crowd.ClampInt(popularity, 1, 100)

	tags := make([]string, 0, maxPlaceTags)
	for _, tag := range input.Tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
		if len(tags) == maxPlaceTags {
			break
		}
	}

	now := time.Now().Unix()
	place := &models.Place{
		ID:                          uuid.NewString(),
		Name:                        name,
		Description:                 strings.TrimSpace(input.Description),
		History:                     strings.TrimSpace(input.History),
		Category:                    category,
		City:                        titleCase(input.City),
		Location:                    input.Location,
		AverageVisitDurationMinutes: duration,
		BasePopularity:              popularity,
		Tags:                        tags,
		IsActive:                    true,
		CreatedAt:                   now,
		UpdatedAt:                   now,
	}

	if err := s.places.Create(ctx, place); err != nil {
		return nil, err
	}
	s.cities.Invalidate()

	enriched, err := s.enrichPlace(ctx, *place, models.ReviewSummary{}, crowd.ScenarioNormal, false)
	if err != nil {
		return nil, err
	}
	return enriched, nil
}

// EnrichedPlaces lists all active places with crowd, best-time, and review
// data under the given scenario, name-sorted
func (s *PlaceService) EnrichedPlaces(ctx context.Context, scenario string) ([]models.EnrichedPlace, error) {
	places, err := s.places.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrichPlaces(ctx, places, scenario, false)
}

func (s *PlaceService) enrichPlaces(ctx context.Context, places []models.Place, scenario string, includePattern bool) ([]models.EnrichedPlace, error) {
	summaries, err := s.reviews.SummariesByPlace(ctx)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedPlace, len(places))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i := range places {
		i := i
		g.Go(func() error {
			entry, err := s.enrichPlace(gctx, places[i], summaries[places[i].ID], scenario, includePattern)
			if err != nil {
				return err
			}
			enriched[i] = *entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return enriched, nil
}

func (s *PlaceService) enrichPlace(ctx context.Context, place models.Place, reviews models.ReviewSummary, scenario string, includePattern bool) (*models.EnrichedPlace, error) {
	now := time.Now()

	var (
		metric   models.CrowdMetric
		bestTime *models.BestTimeRecommendation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		metric, err = crowd.ComputeMetrics(gctx, s.checkIns, place.ID, now)
		return err
	})
	g.Go(func() error {
		var err error
		bestTime, err = crowd.BestTimeRecommendation(gctx, s.checkIns, place.ID, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !includePattern {
		bestTime.HourlyPattern = nil
	}

	return &models.EnrichedPlace{
		ID:                          place.ID,
		Name:                        place.Name,
		Description:                 place.Description,
		History:                     place.History,
		Category:                    place.Category,
		City:                        place.City,
		Location:                    place.Location,
		Tags:                        place.Tags,
		AverageVisitDurationMinutes: place.AverageVisitDurationMinutes,
		Crowd:                       crowd.ApplyScenario(metric, scenario),
		Reviews:                     reviews,
		BestTime:                    bestTime,
	}, nil
}

// activePlace loads a place and maps inactive ones to ErrNotFound
func (s *PlaceService) activePlace(ctx context.Context, id string) (*models.Place, error) {
	place, err := s.places.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !place.IsActive {
		return nil, repository.ErrNotFound
	}
	return place, nil
}

// Detail returns a place with its full enrichment: crowd under scenario,
// best time including the hourly pattern, and the review bundle
func (s *PlaceService) Detail(ctx context.Context, id, scenario string) (*models.EnrichedPlace, *models.ReviewBundle, error) {
	place, err := s.activePlace(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	bundle, err := s.reviewBundle(ctx, place.ID, 6)
	if err != nil {
		return nil, nil, err
	}

	enriched, err := s.enrichPlace(ctx, *place, bundle.Summary, scenario, true)
	if err != nil {
		return nil, nil, err
	}
	return enriched, bundle, nil
}

func (s *PlaceService) reviewBundle(ctx context.Context, placeID string, limit int) (*models.ReviewBundle, error) {
	bundle := &models.ReviewBundle{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bundle.Summary, err = s.reviews.SummaryForPlace(gctx, placeID)
		return err
	})
	g.Go(func() error {
		var err error
		bundle.Breakdown, err = s.reviews.RatingBreakdown(gctx, placeID)
		return err
	})
	g.Go(func() error {
		var err error
		bundle.Latest, err = s.reviews.Latest(gctx, placeID, limit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bundle, nil
}

// Forecast projects a place's crowd through the horizon
func (s *PlaceService) Forecast(ctx context.Context, id, scenario string, hoursAhead int) (*models.PlaceSummary, *models.CrowdForecast, error) {
	place, err := s.activePlace(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	forecast, err := crowd.Forecast(ctx, s.checkIns, place.ID, crowd.ForecastOptions{
		Scenario:   scenario,
		HoursAhead: hoursAhead,
	})
	if err != nil {
		return nil, nil, err
	}

	summary := place.Summary()
	return &summary, forecast, nil
}

// AlternativeTarget is the crowd snapshot of the place being diverted from
type AlternativeTarget struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	CrowdLevel      models.CrowdLevel `json:"crowd_level"`
	CurrentVisitors int               `json:"current_visitors"`
}

// AlternativesResult is the alternative-finder payload
type AlternativesResult struct {
	Target           AlternativeTarget         `json:"target"`
	Scenario         string                    `json:"scenario"`
	TargetAlreadyLow bool                      `json:"target_already_low"`
	Alternatives     []models.AlternativePlace `json:"alternatives"`
}

// Alternatives finds nearby less-crowded diversions for a place. When the
// target is already Low it short-circuits with an empty list instead of
// scoring the rest of the catalog.
func (s *PlaceService) Alternatives(ctx context.Context, id, scenarioInput string, maxDistanceKm float64, maxResults int) (*AlternativesResult, error) {
	scenario := crowd.NormalizeScenario(scenarioInput)
	if maxDistanceKm <= 0 {
		maxDistanceKm = crowd.DefaultAlternativeRadiusKm
	}
	if maxResults <= 0 {
		maxResults = crowd.DefaultAlternativeResults
	}

	places, err := s.places.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	var target *models.Place
	for i := range places {
		if places[i].ID == id {
			target = &places[i]
			break
		}
	}
	if target == nil {
		return nil, repository.ErrNotFound
	}

	targetMetric, err := crowd.ComputeMetrics(ctx, s.checkIns, target.ID, time.Now())
	if err != nil {
		return nil, err
	}
	targetStats := crowd.ApplyScenario(targetMetric, scenario)

	result := &AlternativesResult{
		Target: AlternativeTarget{
			ID:              target.ID,
			Name:            target.Name,
			CrowdLevel:      targetStats.CrowdLevel,
			CurrentVisitors: targetStats.CurrentVisitors,
		},
		Scenario:     scenario,
		Alternatives: []models.AlternativePlace{},
	}

	if targetStats.CrowdLevel == models.CrowdLow {
		result.TargetAlreadyLow = true
		return result, nil
	}

	stats, err := s.scenarioStats(ctx, places, scenario)
	if err != nil {
		return nil, err
	}
	result.Alternatives = crowd.FindAlternatives(*target, places, stats, maxDistanceKm, maxResults)
	return result, nil
}

// scenarioStats computes scenario-projected crowd snapshots for a batch of
// places, keyed by place ID
func (s *PlaceService) scenarioStats(ctx context.Context, places []models.Place, scenario string) (map[string]models.ScenarioProjection, error) {
	now := time.Now()
	stats := make(map[string]models.ScenarioProjection, len(places))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i := range places {
		place := places[i]
		g.Go(func() error {
			metric, err := crowd.ComputeMetrics(gctx, s.checkIns, place.ID, now)
			if err != nil {
				return err
			}
			projection := crowd.ApplyScenario(metric, scenario)
			mu.Lock()
			stats[place.ID] = projection
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// ItineraryRequest carries an itinerary submission
type ItineraryRequest struct {
	City            string
	Scenario        string
	MaxPlaces       int
	StartHour       int
	TimeBudgetHours float64
}

// ItineraryFilters echoes the filters an itinerary was built under
type ItineraryFilters struct {
	City                string `json:"city"`
	FallbackToAllCities bool   `json:"fallback_to_all_cities"`
	Scenario            string `json:"scenario"`
}

// ItineraryResult is the itinerary endpoint payload
type ItineraryResult struct {
	Filters ItineraryFilters `json:"filters"`
	models.ItineraryPlan
}

// PlanItinerary builds a crowd-aware day plan. A city filter matches the
// normalized city column exactly; when it empties the pool the planner falls
// back to the whole catalog and flags the fallback.
func (s *PlaceService) PlanItinerary(ctx context.Context, req ItineraryRequest) (*ItineraryResult, error) {
	city := titleCase(req.City)

	all, err := s.places.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, ErrNoActivePlaces
	}

	source := all
	fallback := false
	if city != "" {
		filtered := make([]models.Place, 0, len(all))
		for _, place := range all {
			if place.City == city {
				filtered = append(filtered, place)
			}
		}
		if len(filtered) == 0 {
			fallback = true
		} else {
			source = filtered
		}
	}

	enriched, err := s.enrichPlaces(ctx, source, req.Scenario, false)
	if err != nil {
		return nil, err
	}

	plan := crowd.BuildItinerary(enriched, crowd.PlannerConfig{
		MaxPlaces:            req.MaxPlaces,
		StartHour:            req.StartHour,
		TimeBudgetHours:      req.TimeBudgetHours,
		Scenario:             req.Scenario,
		DistancePenaltyPerKm: s.distancePenaltyPerKm,
	})

	return &ItineraryResult{
		Filters: ItineraryFilters{
			City:                city,
			FallbackToAllCities: fallback,
			Scenario:            crowd.NormalizeScenario(req.Scenario),
		},
		ItineraryPlan: plan,
	}, nil
}

// Cities lists the distinct cities of active places from the catalog cache
func (s *PlaceService) Cities(ctx context.Context) ([]string, error) {
	return s.cities.Names(ctx)
}

func titleCase(value string) string {
	text := strings.TrimSpace(value)
	if text == "" {
		return ""
	}
	tokens := strings.Fields(text)
	for i, token := range tokens {
		tokens[i] = strings.ToUpper(token[:1]) + strings.ToLower(token[1:])
	}
	return strings.Join(tokens, " ")
}
