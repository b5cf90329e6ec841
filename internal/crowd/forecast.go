package crowd

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jengzang/tourism-backend-go/internal/models"
)

// Forecast defaults and bounds
const (
	DefaultForecastHours  = 3
	MinForecastHours      = 1
	MaxForecastHours      = 12
	forecastLookbackDays  = 21
	minForecastConfidence = 58
	maxForecastConfidence = 92
)

// ForecastOptions tune a crowd forecast request. Zero values select the
// defaults.
type ForecastOptions struct {
	Scenario   string
	HoursAhead int
	Now        time.Time
}

// forecastConfidence decays with forecast distance: 88 minus 8 per step,
// clamped to [58, 92]
func forecastConfidence(stepHours int) int {
	return ClampInt(88-stepHours*8, minForecastConfidence, maxForecastConfidence)
}

// Forecast projects expected visitors for each hour from now through the
// horizon. Each slot blends the historical count for its hour of day with a
// trend factor describing how today compares to a typical day, then applies
// the scenario multiplier.
func Forecast(ctx context.Context, store EventStore, placeID string, opts ForecastOptions) (*models.CrowdForecast, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	scenario := NormalizeScenario(opts.Scenario)
	multiplier := ScenarioMultiplier(scenario)

	hoursAhead := opts.HoursAhead
	if hoursAhead == 0 {
		hoursAhead = DefaultForecastHours
	}
	hoursAhead = ClampInt(hoursAhead, MinForecastHours, MaxForecastHours)

	var (
		metric  models.CrowdMetric
		pattern []models.HourlyPatternEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		metric, err = ComputeMetrics(gctx, store, placeID, now)
		return err
	})
	g.Go(func() error {
		var err error
		pattern, err = HourlyPattern(gctx, store, placeID, forecastLookbackDays, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byHour := make(map[int]int, len(pattern))
	for _, entry := range pattern {
		byHour[entry.Hour] = entry.Count
	}

	currentHourBase := byHour[now.Hour()]
	if currentHourBase < 1 {
		currentHourBase = 1
	}
	trendFactor := ClampFloat(float64(metric.CurrentVisitors)/float64(currentHourBase), 0.6, 2.4)

	forecast := make([]models.ForecastSlot, 0, hoursAhead+1)
	var peak *models.ForecastSlot

	for step := 0; step <= hoursAhead; step++ {
		hour := now.Add(time.Duration(step) * time.Hour).Hour()

		historical := byHour[hour]
		if historical == 0 {
			historical = RoundHalfUp(float64(metric.CurrentVisitors) * 0.72)
		}
		if historical < 1 {
			historical = 1
		}

		weighted := metric.CurrentVisitors
		if step > 0 {
			weighted = RoundHalfUp(float64(historical) * (0.56 + 0.44*trendFactor))
		}
		expected := RoundHalfUp(float64(weighted) * multiplier)
		if expected < 0 {
			expected = 0
		}

		label := "Now"
		if step > 0 {
			label = fmt.Sprintf("+%dh", step)
		}

		slot := models.ForecastSlot{
			StepHours:        step,
			Label:            label,
			Hour:             hour,
			Window:           HourWindowLabel(hour),
			ExpectedVisitors: expected,
			CrowdLevel:       ClassifyCrowd(expected),
			Confidence:       forecastConfidence(step),
		}
		forecast = append(forecast, slot)
		if peak == nil || slot.ExpectedVisitors > peak.ExpectedVisitors {
			copied := slot
			peak = &copied
		}
	}

	return &models.CrowdForecast{
		Scenario:           scenario,
		ScenarioMultiplier: multiplier,
		GeneratedAt:        now.UTC().Format(time.RFC3339),
		TrendFactor:        Round2(trendFactor),
		Current:            ApplyScenario(metric, scenario),
		Forecast:           forecast,
		PeakSlot:           peak,
	}, nil
}
