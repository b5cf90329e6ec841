package models

// Review represents a visitor review for a place
type Review struct {
	ID            string   `json:"id" db:"id"`
	PlaceID       string   `json:"place_id" db:"place_id"`
	ReviewerAlias string   `json:"reviewer_alias" db:"reviewer_alias"`
	Rating        int      `json:"rating" db:"rating"`
	Comment       string   `json:"comment" db:"comment"`
	Photos        []string `json:"photos"`
	CreatedAt     int64    `json:"created_at" db:"created_at"`
}

// ReviewSummary is the precomputed rating aggregate the crowd core consumes
type ReviewSummary struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}

// ReviewBundle groups everything the place detail view needs about reviews
type ReviewBundle struct {
	Summary   ReviewSummary `json:"summary"`
	Breakdown map[int]int   `json:"breakdown"`
	Latest    []Review      `json:"latest"`
}
