package models

// Check-in sources
const (
	SourceManual    = "manual"
	SourceSeed      = "seed"
	SourceSimulated = "simulated"
)

// CheckIn represents a single observed visit at a place
type CheckIn struct {
	ID           string `json:"id" db:"id"`
	PlaceID      string `json:"place_id" db:"place_id"`
	VisitorAlias string `json:"visitor_alias" db:"visitor_alias"`
	Source       string `json:"source" db:"source"`
	CreatedAt    int64  `json:"created_at" db:"created_at"`
}

// RecentCheckIn is a check-in joined with its place for the activity feed
type RecentCheckIn struct {
	ID           string        `json:"id"`
	VisitorAlias string        `json:"visitor_alias"`
	Source       string        `json:"source"`
	CreatedAt    int64         `json:"created_at"`
	Place        *PlaceSummary `json:"place,omitempty"`
}

// DailyCheckInCount is one day of check-in totals for trend analytics
type DailyCheckInCount struct {
	Date  string `json:"date" db:"date"`
	Total int    `json:"total_check_ins" db:"total"`
}
