package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/jengzang/tourism-backend-go/internal/models"
)

// CheckInRepository handles database operations for check-ins
type CheckInRepository struct {
	db *sql.DB
}

// NewCheckInRepository creates a new check-in repository
func NewCheckInRepository(db *sql.DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

// Create inserts a new check-in
func (r *CheckInRepository) Create(ctx context.Context, checkIn *models.CheckIn) error {
	query := `
		INSERT INTO check_ins (id, place_id, visitor_alias, source, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		checkIn.ID,
		checkIn.PlaceID,
		checkIn.VisitorAlias,
		checkIn.Source,
		checkIn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create check-in: %w", err)
	}
	return nil
}

// CountSince counts check-ins for a place created at or after since
func (r *CheckInRepository) CountSince(ctx context.Context, placeID string, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM check_ins WHERE place_id = ? AND created_at >= ?`

	var count int
	err := r.db.QueryRowContext(ctx, query, placeID, since.Unix()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count check-ins: %w", err)
	}
	return count, nil
}

// CountByHourOfDay buckets a place's check-ins by local hour of day within
// [from, to]. Hours without check-ins are absent from the map.
func (r *CheckInRepository) CountByHourOfDay(ctx context.Context, placeID string, from, to time.Time) (map[int]int, error) {
	query := `
		SELECT strftime('%H', datetime(created_at, 'unixepoch', 'localtime')) AS hour, COUNT(*) AS total
		FROM check_ins
		WHERE place_id = ? AND created_at >= ? AND created_at <= ?
		GROUP BY hour
	`

	rows, err := r.db.QueryContext(ctx, query, placeID, from.Unix(), to.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to group check-ins by hour: %w", err)
	}
	defer rows.Close()

	byHour := make(map[int]int)
	for rows.Next() {
		var hourStr string
		var total int
		if err := rows.Scan(&hourStr, &total); err != nil {
			return nil, fmt.Errorf("failed to scan hour bucket: %w", err)
		}
		hour, err := strconv.Atoi(hourStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse hour %q: %w", hourStr, err)
		}
		byHour[hour] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hour buckets: %w", err)
	}
	return byHour, nil
}

// CountAll counts all check-ins
func (r *CheckInRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM check_ins").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count check-ins: %w", err)
	}
	return count, nil
}

// CountAllSince counts check-ins across all places created at or after since
func (r *CheckInRepository) CountAllSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM check_ins WHERE created_at >= ?", since.Unix()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent check-ins: %w", err)
	}
	return count, nil
}

// Recent lists the latest check-ins joined with their place summaries
func (r *CheckInRepository) Recent(ctx context.Context, limit int) ([]models.RecentCheckIn, error) {
	query := `
		SELECT c.id, c.visitor_alias, c.source, c.created_at,
			   p.id, p.name, p.category, p.city, p.lat, p.lng
		FROM check_ins c
		JOIN places p ON p.id = c.place_id
		ORDER BY c.created_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent check-ins: %w", err)
	}
	defer rows.Close()

	checkIns := make([]models.RecentCheckIn, 0, limit)
	for rows.Next() {
		var item models.RecentCheckIn
		place := &models.PlaceSummary{}
		err := rows.Scan(
			&item.ID,
			&item.VisitorAlias,
			&item.Source,
			&item.CreatedAt,
			&place.ID,
			&place.Name,
			&place.Category,
			&place.City,
			&place.Location.Lat,
			&place.Location.Lng,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recent check-in: %w", err)
		}
		item.Place = place
		checkIns = append(checkIns, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recent check-ins: %w", err)
	}
	return checkIns, nil
}

// DailyTotals lists per-day check-in totals for the trailing window in
// chronological order
func (r *CheckInRepository) DailyTotals(ctx context.Context, from time.Time) ([]models.DailyCheckInCount, error) {
	query := `
		SELECT date(created_at, 'unixepoch', 'localtime') AS day, COUNT(*) AS total
		FROM check_ins
		WHERE created_at >= ?
		GROUP BY day
		ORDER BY day
	`

	rows, err := r.db.QueryContext(ctx, query, from.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to list daily totals: %w", err)
	}
	defer rows.Close()

	totals := make([]models.DailyCheckInCount, 0)
	for rows.Next() {
		var item models.DailyCheckInCount
		if err := rows.Scan(&item.Date, &item.Total); err != nil {
			return nil, fmt.Errorf("failed to scan daily total: %w", err)
		}
		totals = append(totals, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily totals: %w", err)
	}
	return totals, nil
}
