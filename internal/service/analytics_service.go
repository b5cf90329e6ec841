package service

import (
	"context"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jengzang/tourism-backend-go/internal/crowd"
	"github.com/jengzang/tourism-backend-go/internal/models"
	"github.com/jengzang/tourism-backend-go/internal/repository"
)

// Trend window bounds
const (
	defaultTrendDays = 7
	maxTrendDays     = 30
)

// Per-level average wait estimates in minutes
const (
	waitMinutesLow    = 8.0
	waitMinutesMedium = 22.0
	waitMinutesHigh   = 40.0
)

// AnalyticsService aggregates catalog-wide crowd and engagement metrics
type AnalyticsService struct {
	places   *repository.PlaceRepository
	checkIns *repository.CheckInRepository
	reviews  *repository.ReviewRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	places *repository.PlaceRepository,
	checkIns *repository.CheckInRepository,
	reviews *repository.ReviewRepository,
) *AnalyticsService {
	return &AnalyticsService{places: places, checkIns: checkIns, reviews: reviews}
}

// placeStats computes the scenario-projected per-place stat rows the
// aggregate endpoints share
func (s *AnalyticsService) placeStats(ctx context.Context, scenario string) ([]models.PlaceStat, error) {
	places, err := s.places.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	summaries, err := s.reviews.SummariesByPlace(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stats := make([]models.PlaceStat, len(places))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i := range places {
		i := i
		g.Go(func() error {
			metric, err := crowd.ComputeMetrics(gctx, s.checkIns, places[i].ID, now)
			if err != nil {
				return err
			}
			projection := crowd.ApplyScenario(metric, scenario)
			summary := summaries[places[i].ID]
			stats[i] = models.PlaceStat{
				PlaceID:         places[i].ID,
				Name:            places[i].Name,
				Category:        places[i].Category,
				CrowdLevel:      projection.CrowdLevel,
				CurrentVisitors: projection.CurrentVisitors,
				VisitScore:      projection.VisitScore,
				AverageRating:   summary.AverageRating,
				TotalReviews:    summary.TotalReviews,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func distribution(stats []models.PlaceStat) models.CrowdDistribution {
	var dist models.CrowdDistribution
	for _, stat := range stats {
		switch stat.CrowdLevel {
		case models.CrowdLow:
			dist.Low++
		case models.CrowdMedium:
			dist.Medium++
		default:
			dist.High++
		}
	}
	return dist
}

// buildImpactMetrics estimates how much crowd-aware guidance smooths demand
// from the current visitor distribution across crowd levels
func buildImpactMetrics(stats []models.PlaceStat, checkInsLast24h int, scenario string) models.ImpactMetrics {
	var total, low, medium, high int
	for _, stat := range stats {
		total += stat.CurrentVisitors
		switch stat.CrowdLevel {
		case models.CrowdLow:
			low += stat.CurrentVisitors
		case models.CrowdMedium:
			medium += stat.CurrentVisitors
		default:
			high += stat.CurrentVisitors
		}
	}

	var lowShare, mediumShare, highShare float64
	if total > 0 {
		lowShare = float64(low) / float64(total)
		mediumShare = float64(medium) / float64(total)
		highShare = float64(high) / float64(total)
	}

	diversionFactor := math.Max(0.1, 0.48*lowShare+0.24*mediumShare+0.08*highShare)
	avoided := crowd.RoundHalfUp(float64(checkInsLast24h) * diversionFactor)

	baselineWait := lowShare*waitMinutesLow + mediumShare*waitMinutesMedium + highShare*waitMinutesHigh
	projectedWait := math.Max(4, baselineWait-float64(avoided)*0.12)

	waitReduction := math.Max(0, crowd.Round1(baselineWait-projectedWait))
	waitReductionPercent := 0
	if baselineWait > 0 {
		waitReductionPercent = crowd.RoundHalfUp((baselineWait - projectedWait) / baselineWait * 100)
	}

	diversionSuccessRate := 0
	if checkInsLast24h > 0 {
		diversionSuccessRate = crowd.RoundHalfUp(float64(avoided) / float64(checkInsLast24h) * 100)
		if diversionSuccessRate > 96 {
			diversionSuccessRate = 96
		}
	}

	crowdBalanceScore := crowd.RoundHalfUp(100 - math.Min(75, highShare*100+mediumShare*45))
	stability := crowd.ClampInt(crowd.RoundHalfUp(
		float64(crowdBalanceScore)*0.5+
			float64(diversionSuccessRate)*0.25+
			math.Max(0, 100-projectedWait*2.2)*0.25,
	), 20, 99)

	return models.ImpactMetrics{
		Scenario:                      scenario,
		AvoidedOvercrowdedSpots:       avoided,
		EstimatedWaitTimeSavedMinutes: avoided * 14,
		WaitReductionMinutes:          waitReduction,
		WaitReductionPercent:          waitReductionPercent,
		DiversionSuccessRate:          diversionSuccessRate,
		CrowdBalanceScore:             crowdBalanceScore,
		ExperienceStabilityScore:      stability,
		ProjectedAverageWaitMinutes:   crowd.Round1(projectedWait),
		BaselineAverageWaitMinutes:    crowd.Round1(baselineWait),
	}
}

// Overview returns the analytics dashboard payload
func (s *AnalyticsService) Overview(ctx context.Context, scenarioInput string) (*models.AnalyticsOverview, error) {
	scenario := crowd.NormalizeScenario(scenarioInput)

	var (
		stats        []models.PlaceStat
		totalCheckIn int
		last24h      int
		totalReviews int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.placeStats(gctx, scenario)
		return err
	})
	g.Go(func() error {
		var err error
		totalCheckIn, err = s.checkIns.CountAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		last24h, err = s.checkIns.CountAllSince(gctx, time.Now().Add(-24*time.Hour))
		return err
	})
	g.Go(func() error {
		var err error
		totalReviews, err = s.reviews.CountAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	topCrowded := make([]models.PlaceStat, len(stats))
	copy(topCrowded, stats)
	sort.SliceStable(topCrowded, func(i, j int) bool {
		return topCrowded[i].CurrentVisitors > topCrowded[j].CurrentVisitors
	})
	if len(topCrowded) > 5 {
		topCrowded = topCrowded[:5]
	}

	topRated := make([]models.PlaceStat, 0, len(stats))
	for _, stat := range stats {
		if stat.TotalReviews > 0 {
			topRated = append(topRated, stat)
		}
	}
	sort.SliceStable(topRated, func(i, j int) bool {
		if topRated[i].AverageRating != topRated[j].AverageRating {
			return topRated[i].AverageRating > topRated[j].AverageRating
		}
		return topRated[i].TotalReviews > topRated[j].TotalReviews
	})
	if len(topRated) > 5 {
		topRated = topRated[:5]
	}

	return &models.AnalyticsOverview{
		Scenario:           scenario,
		ScenarioMultiplier: crowd.ScenarioMultiplier(scenario),
		Totals: models.OverviewTotals{
			Places:              len(stats),
			TotalCheckIns:       totalCheckIn,
			CheckInsLast24Hours: last24h,
			TotalReviews:        totalReviews,
		},
		ByCrowdLevel:     distribution(stats),
		TopCrowdedPlaces: topCrowded,
		TopRatedPlaces:   topRated,
		ImpactPreview:    buildImpactMetrics(stats, last24h, scenario),
	}, nil
}

// Impact returns the diversion and wait-reduction estimate
func (s *AnalyticsService) Impact(ctx context.Context, scenarioInput string) (*models.ImpactReport, error) {
	scenario := crowd.NormalizeScenario(scenarioInput)

	var (
		stats   []models.PlaceStat
		last24h int
		last6h  int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.placeStats(gctx, scenario)
		return err
	})
	g.Go(func() error {
		var err error
		last24h, err = s.checkIns.CountAllSince(gctx, time.Now().Add(-24*time.Hour))
		return err
	})
	g.Go(func() error {
		var err error
		last6h, err = s.checkIns.CountAllSince(gctx, time.Now().Add(-6*time.Hour))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.ImpactReport{
		ImpactMetrics:       buildImpactMetrics(stats, last24h, scenario),
		TotalPlaces:         len(stats),
		CheckInsLast24Hours: last24h,
		CheckInsLast6Hours:  last6h,
	}, nil
}

// Scenario simulates the whole catalog under a demand scenario
func (s *AnalyticsService) Scenario(ctx context.Context, scenarioInput string) (*models.ScenarioReport, error) {
	scenario := crowd.NormalizeScenario(scenarioInput)

	stats, err := s.placeStats(ctx, scenario)
	if err != nil {
		return nil, err
	}

	totalVisitors := 0
	for _, stat := range stats {
		totalVisitors += stat.CurrentVisitors
	}

	ranked := make([]models.PlaceStat, len(stats))
	copy(ranked, stats)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CurrentVisitors > ranked[j].CurrentVisitors
	})
	if len(ranked) > 6 {
		ranked = ranked[:6]
	}

	hotspots := make([]models.ProjectedHotspot, 0, len(ranked))
	for _, stat := range ranked {
		hotspots = append(hotspots, models.ProjectedHotspot{
			PlaceID:           stat.PlaceID,
			Name:              stat.Name,
			Category:          stat.Category,
			CrowdLevel:        stat.CrowdLevel,
			ProjectedVisitors: stat.CurrentVisitors,
		})
	}

	return &models.ScenarioReport{
		Scenario:                 scenario,
		Multiplier:               crowd.ScenarioMultiplier(scenario),
		TotalPlaces:              len(stats),
		ByCrowdLevel:             distribution(stats),
		ProjectedCurrentVisitors: totalVisitors,
		TopProjectedHotspots:     hotspots,
	}, nil
}

// Trends returns the daily check-in series with scenario-projected counts.
// The window is clamped to [1, 30] days; zero means the default week.
func (s *AnalyticsService) Trends(ctx context.Context, days int, scenarioInput string) (*models.TrendReport, error) {
	if days == 0 {
		days = defaultTrendDays
	}
	days = crowd.ClampInt(days, 1, maxTrendDays)
	scenario := crowd.NormalizeScenario(scenarioInput)
	multiplier := crowd.ScenarioMultiplier(scenario)

	totals, err := s.checkIns.DailyTotals(ctx, time.Now().Add(-time.Duration(days)*24*time.Hour))
	if err != nil {
		return nil, err
	}

	daily := make([]models.DailyTrend, 0, len(totals))
	for _, day := range totals {
		daily = append(daily, models.DailyTrend{
			Date:                   day.Date,
			TotalCheckIns:          day.Total,
			ProjectedTotalCheckIns: crowd.RoundHalfUp(float64(day.Total) * multiplier),
		})
	}

	return &models.TrendReport{
		Days:               days,
		Scenario:           scenario,
		ScenarioMultiplier: multiplier,
		Daily:              daily,
	}, nil
}

// Hourly returns a place's scenario-scaled hourly pattern with its quiet
// slots
func (s *AnalyticsService) Hourly(ctx context.Context, placeID string, days int, scenarioInput string) (*models.HourlyReport, error) {
	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if !place.IsActive {
		return nil, repository.ErrNotFound
	}

	scenario := crowd.NormalizeScenario(scenarioInput)
	multiplier := crowd.ScenarioMultiplier(scenario)
	if days == 0 {
		days = crowd.DefaultLookbackDays
	}
	days = crowd.ClampInt(days, crowd.MinLookbackDays, crowd.MaxLookbackDays)

	pattern, err := crowd.HourlyPattern(ctx, s.checkIns, place.ID, days, time.Now())
	if err != nil {
		return nil, err
	}
	for i := range pattern {
		pattern[i].Count = crowd.RoundHalfUp(float64(pattern[i].Count) * multiplier)
	}

	return &models.HourlyReport{
		Place:              place.Summary(),
		LookbackDays:       days,
		Scenario:           scenario,
		ScenarioMultiplier: multiplier,
		BestSlots:          crowd.BestVisitTimes(pattern, 3),
		HourlyPattern:      pattern,
	}, nil
}
