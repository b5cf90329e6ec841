package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jengzang/tourism-backend-go/internal/models"
)

// BookingRepository handles database operations for guide bookings
type BookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a new guide booking
func (r *BookingRepository) Create(ctx context.Context, booking *models.GuideBooking) error {
	query := `
		INSERT INTO guide_bookings (
			id, guide_id, guide_name, guide_city, tourist_name, tourist_phone,
			preferred_date, preferred_time, duration_hours, notes, status, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.GuideID,
		booking.GuideName,
		booking.GuideCity,
		booking.TouristName,
		booking.TouristPhone,
		booking.PreferredDate,
		booking.PreferredTime,
		booking.DurationHours,
		booking.Notes,
		booking.Status,
		booking.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// ListRecent lists the latest bookings
func (r *BookingRepository) ListRecent(ctx context.Context, limit int) ([]models.GuideBooking, error) {
	query := `
		SELECT id, guide_id, guide_name, guide_city, tourist_name, tourist_phone,
			   preferred_date, preferred_time, duration_hours, notes, status, created_at
		FROM guide_bookings
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]models.GuideBooking, 0, limit)
	for rows.Next() {
		var booking models.GuideBooking
		err := rows.Scan(
			&booking.ID,
			&booking.GuideID,
			&booking.GuideName,
			&booking.GuideCity,
			&booking.TouristName,
			&booking.TouristPhone,
			&booking.PreferredDate,
			&booking.PreferredTime,
			&booking.DurationHours,
			&booking.Notes,
			&booking.Status,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}
	return bookings, nil
}
