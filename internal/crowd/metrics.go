package crowd

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jengzang/tourism-backend-go/internal/models"
)

// EventStore is the check-in query surface the crowd core depends on
type EventStore interface {
	// CountSince counts check-ins for a place created at or after since
	CountSince(ctx context.Context, placeID string, since time.Time) (int, error)
	// CountByHourOfDay buckets check-ins for a place by local hour of day
	// within [from, to]. Hours with no check-ins are absent from the map.
	CountByHourOfDay(ctx context.Context, placeID string, from, to time.Time) (map[int]int, error)
}

// ComputeMetrics builds the live crowd snapshot for a place. The three
// rolling-window counts run concurrently and the call fails as a whole if
// any of them fails.
func ComputeMetrics(ctx context.Context, store EventStore, placeID string, now time.Time) (models.CrowdMetric, error) {
	var lastHour, last6h, last24h int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lastHour, err = store.CountSince(gctx, placeID, now.Add(-time.Hour))
		return err
	})
	g.Go(func() error {
		var err error
		last6h, err = store.CountSince(gctx, placeID, now.Add(-6*time.Hour))
		return err
	})
	g.Go(func() error {
		var err error
		last24h, err = store.CountSince(gctx, placeID, now.Add(-24*time.Hour))
		return err
	})
	if err := g.Wait(); err != nil {
		return models.CrowdMetric{}, err
	}

	level := ClassifyCrowd(lastHour)
	return models.CrowdMetric{
		CurrentVisitors:     lastHour,
		Last6HoursVisitors:  last6h,
		Last24HoursVisitors: last24h,
		CrowdLevel:          level,
		VisitScore:          VisitScore(level, lastHour),
	}, nil
}
