package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jengzang/tourism-backend-go/internal/crowd"
	"github.com/jengzang/tourism-backend-go/internal/models"
	"github.com/jengzang/tourism-backend-go/internal/repository"
)

// Recent feed bounds
const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// CheckInService records visits and serves the activity feed
type CheckInService struct {
	checkIns *repository.CheckInRepository
	places   *repository.PlaceRepository
}

// NewCheckInService creates a new check-in service
func NewCheckInService(checkIns *repository.CheckInRepository, places *repository.PlaceRepository) *CheckInService {
	return &CheckInService{checkIns: checkIns, places: places}
}

// CheckInReceipt confirms a recorded check-in
type CheckInReceipt struct {
	ID           string `json:"id"`
	PlaceID      string `json:"place_id"`
	PlaceName    string `json:"place_name"`
	VisitorAlias string `json:"visitor_alias"`
	CreatedAt    int64  `json:"created_at"`
}

// CheckInResult bundles the receipt with the fresh crowd snapshot so the
// caller sees the effect of their own check-in
type CheckInResult struct {
	CheckIn  CheckInReceipt                 `json:"check_in"`
	Crowd    models.CrowdMetric             `json:"crowd"`
	BestTime *models.BestTimeRecommendation `json:"best_time"`
}

// Create records a manual check-in for an active place. A blank alias gets
// an anonymous Guest-NNNN one.
func (s *CheckInService) Create(ctx context.Context, placeID, visitorAlias string) (*CheckInResult, error) {
	if strings.TrimSpace(placeID) == "" {
		return nil, invalidf("place_id is required")
	}

	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if !place.IsActive {
		return nil, repository.ErrNotFound
	}

	alias := strings.TrimSpace(visitorAlias)
	if alias == "" {
		alias = generateVisitorAlias()
	}

	checkIn := &models.CheckIn{
		ID:           uuid.NewString(),
		PlaceID:      place.ID,
		VisitorAlias: alias,
		Source:       models.SourceManual,
		CreatedAt:    time.Now().Unix(),
	}
	if err := s.checkIns.Create(ctx, checkIn); err != nil {
		return nil, err
	}

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
	bestTime.HourlyPattern = nil

	return &CheckInResult{
		CheckIn: CheckInReceipt{
			ID:           checkIn.ID,
			PlaceID:      place.ID,
			PlaceName:    place.Name,
			VisitorAlias: checkIn.VisitorAlias,
			CreatedAt:    checkIn.CreatedAt,
		},
		Crowd:    metric,
		BestTime: bestTime,
	}, nil
}

// Recent lists the latest check-ins joined with their places
func (s *CheckInService) Recent(ctx context.Context, limit int) ([]models.RecentCheckIn, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return s.checkIns.Recent(ctx, limit)
}

func generateVisitorAlias() string {
	return fmt.Sprintf("Guest-%d", 1000+rand.Intn(9000))
}
