package crowd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jengzang/tourism-backend-go/internal/models"
)

// Hourly pattern defaults and bounds
const (
	DefaultLookbackDays = 14
	MinLookbackDays     = 1
	MaxLookbackDays     = 60

	bestSlotCount = 3
)

// HourWindowLabel formats an hour of day as its one-hour window, e.g.
// "09:00-10:00" or "23:00-00:00"
func HourWindowLabel(hour int) string {
	return fmt.Sprintf("%02d:00-%02d:00", hour, (hour+1)%24)
}

// HourlyPattern aggregates check-ins over the lookback window into a full
// 24-entry hour-of-day histogram. Hours without data appear with a zero
// count. The lookback is clamped to [1, 60] days; zero means the default.
func HourlyPattern(ctx context.Context, store EventStore, placeID string, lookbackDays int, now time.Time) ([]models.HourlyPatternEntry, error) {
	if lookbackDays == 0 {
		lookbackDays = DefaultLookbackDays
	}
	lookbackDays = ClampInt(lookbackDays, MinLookbackDays, MaxLookbackDays)

	from := now.Add(-time.Duration(lookbackDays) * 24 * time.Hour)
	byHour, err := store.CountByHourOfDay(ctx, placeID, from, now)
	if err != nil {
		return nil, err
	}

	pattern := make([]models.HourlyPatternEntry, 24)
	for hour := 0; hour < 24; hour++ {
		pattern[hour] = models.HourlyPatternEntry{
			Hour:  hour,
			Label: HourWindowLabel(hour),
			Count: byHour[hour],
		}
	}
	return pattern, nil
}

// BestVisitTimes ranks the quietest hours of a pattern: ascending by count
// with the earlier hour winning ties
func BestVisitTimes(pattern []models.HourlyPatternEntry, count int) []models.BestTimeSlot {
	sorted := make([]models.HourlyPatternEntry, len(pattern))
	copy(sorted, pattern)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count < sorted[j].Count
		}
		return sorted[i].Hour < sorted[j].Hour
	})

	count = ClampInt(count, 0, len(sorted))
	slots := make([]models.BestTimeSlot, 0, count)
	for _, entry := range sorted[:count] {
		slots = append(slots, models.BestTimeSlot{
			Hour:             entry.Hour,
			Label:            entry.Label,
			ExpectedVisitors: entry.Count,
		})
	}
	return slots
}

// BestTimeText renders ranked slots as a human-readable recommendation
func BestTimeText(slots []models.BestTimeSlot) string {
	if len(slots) == 0 {
		return "No historical data available yet."
	}
	labels := make([]string, len(slots))
	for i, slot := range slots {
		labels[i] = slot.Label
	}
	return strings.Join(labels, ", ")
}

// BestTimeRecommendation builds the full quiet-hours recommendation for a
// place from its default-lookback hourly pattern
func BestTimeRecommendation(ctx context.Context, store EventStore, placeID string, now time.Time) (*models.BestTimeRecommendation, error) {
	pattern, err := HourlyPattern(ctx, store, placeID, DefaultLookbackDays, now)
	if err != nil {
		return nil, err
	}
	slots := BestVisitTimes(pattern, bestSlotCount)
	return &models.BestTimeRecommendation{
		BestSlots:           slots,
		RecommendedTimeText: BestTimeText(slots),
		HourlyPattern:       pattern,
	}, nil
}
