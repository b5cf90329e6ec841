package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jengzang/tourism-backend-go/internal/models"
)

// PlaceRepository handles database operations for places
type PlaceRepository struct {
	db *sql.DB
}

// NewPlaceRepository creates a new place repository
func NewPlaceRepository(db *sql.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

const placeColumns = `
	id, name, description, history, category, city, lat, lng,
	avg_visit_minutes, base_popularity, tags, is_active, created_at, updated_at
`

// Create inserts a new place
func (r *PlaceRepository) Create(ctx context.Context, place *models.Place) error {
	query := `
		INSERT INTO places (
			id, name, description, history, category, city, lat, lng,
			avg_visit_minutes, base_popularity, tags, is_active, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		place.ID,
		place.Name,
		place.Description,
		place.History,
		place.Category,
		place.City,
		place.Location.Lat,
		place.Location.Lng,
		place.AverageVisitDurationMinutes,
		place.BasePopularity,
		joinTags(place.Tags),
		boolToInt(place.IsActive),
		place.CreatedAt,
		place.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create place: %w", err)
	}
	return nil
}

// GetByID retrieves a place by ID. Returns ErrNotFound when it does not
// exist.
func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*models.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE id = ?`

	place, err := scanPlace(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get place: %w", err)
	}
	return place, nil
}

// ListActive retrieves all active places ordered by name
func (r *PlaceRepository) ListActive(ctx context.Context) ([]models.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE is_active = 1 ORDER BY name`
	return r.listPlaces(ctx, query)
}

// ListActiveByCity retrieves active places in a city, exact match, ordered
// by name
func (r *PlaceRepository) ListActiveByCity(ctx context.Context, city string) ([]models.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE is_active = 1 AND city = ? ORDER BY name`
	return r.listPlaces(ctx, query, city)
}

func (r *PlaceRepository) listPlaces(ctx context.Context, query string, args ...interface{}) ([]models.Place, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	defer rows.Close()

	places := make([]models.Place, 0)
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}
		places = append(places, *place)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate places: %w", err)
	}
	return places, nil
}

// DistinctCities lists the distinct non-empty cities of active places
func (r *PlaceRepository) DistinctCities(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT city FROM places
		WHERE is_active = 1 AND city != ''
		ORDER BY city
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	defer rows.Close()

	cities := make([]string, 0)
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cities: %w", err)
	}
	return cities, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlace(row rowScanner) (*models.Place, error) {
	place := &models.Place{}
	var tags string
	var isActive int

	err := row.Scan(
		&place.ID,
		&place.Name,
		&place.Description,
		&place.History,
		&place.Category,
		&place.City,
		&place.Location.Lat,
		&place.Location.Lng,
		&place.AverageVisitDurationMinutes,
		&place.BasePopularity,
		&tags,
		&isActive,
		&place.CreatedAt,
		&place.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	place.Tags = splitTags(tags)
	place.IsActive = isActive != 0
	return place, nil
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
