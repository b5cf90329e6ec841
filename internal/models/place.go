package models

// Location is a WGS84 coordinate pair
type Location struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}

// Valid reports whether the coordinate lies inside the WGS84 envelope
func (l Location) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// Place represents a point of interest in the catalog
type Place struct {
	ID          string   `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Description string   `json:"description" db:"description"`
	History     string   `json:"history,omitempty" db:"history"`
	Category    string   `json:"category" db:"category"`
	City        string   `json:"city" db:"city"`
	Location    Location `json:"location"`

	AverageVisitDurationMinutes int      `json:"average_visit_duration_minutes" db:"avg_visit_minutes"`
	BasePopularity              int      `json:"base_popularity" db:"base_popularity"`
	Tags                        []string `json:"tags"`
	IsActive                    bool     `json:"is_active" db:"is_active"`

	CreatedAt int64 `json:"created_at" db:"created_at"`
	UpdatedAt int64 `json:"updated_at" db:"updated_at"`
}

// PlaceSummary is the compact place reference embedded in derived payloads
type PlaceSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	City     string   `json:"city,omitempty"`
	Location Location `json:"location"`
}

// Summary returns the compact reference for a place
func (p Place) Summary() PlaceSummary {
	return PlaceSummary{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		City:     p.City,
		Location: p.Location,
	}
}
