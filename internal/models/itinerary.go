package models

// EnrichedPlace is a place joined with everything the itinerary planner
// scores on: its scenario-projected crowd snapshot, rating summary, and
// best-time recommendation.
type EnrichedPlace struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	History     string   `json:"history,omitempty"`
	Category    string   `json:"category"`
	City        string   `json:"city,omitempty"`
	Location    Location `json:"location"`
	Tags        []string `json:"tags,omitempty"`

	AverageVisitDurationMinutes int `json:"average_visit_duration_minutes"`

	Crowd    ScenarioProjection      `json:"crowd"`
	Reviews  ReviewSummary           `json:"reviews"`
	BestTime *BestTimeRecommendation `json:"best_time,omitempty"`
}

// StopTiming carries the clock bookkeeping for one itinerary stop
type StopTiming struct {
	ArrivalTime               string  `json:"arrival_time"`
	DepartureTime             string  `json:"departure_time"`
	StayMinutes               int     `json:"stay_minutes"`
	TravelFromPreviousMinutes int     `json:"travel_from_previous_minutes"`
	TravelFromPreviousKm      float64 `json:"travel_from_previous_km"`
	RecommendedStartHour      *int    `json:"recommended_start_hour,omitempty"`
}

// ItineraryStop is one accepted stop in an itinerary plan
type ItineraryStop struct {
	Order            int                     `json:"order"`
	Place            PlaceSummary            `json:"place"`
	Crowd            ScenarioProjection      `json:"crowd"`
	Reviews          ReviewSummary           `json:"reviews"`
	BestTime         *BestTimeRecommendation `json:"best_time,omitempty"`
	SuitabilityScore float64                 `json:"suitability_score"`
	Timing           StopTiming              `json:"timing"`
}

// ItineraryAlternative is a leftover non-High-crowd candidate surfaced
// alongside the plan
type ItineraryAlternative struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	CrowdLevel      CrowdLevel `json:"crowd_level"`
	CurrentVisitors int        `json:"current_visitors"`
	Rating          float64    `json:"rating"`
}

// ItinerarySummary aggregates a plan's totals
type ItinerarySummary struct {
	TotalPlaces          int     `json:"total_places"`
	TotalDurationMinutes int     `json:"total_duration_minutes"`
	TravelMinutes        int     `json:"travel_minutes"`
	AvgVisitScore        float64 `json:"avg_visit_score"`
	StartTime            string  `json:"start_time,omitempty"`
	EndTime              string  `json:"end_time,omitempty"`
	Scenario             string  `json:"scenario"`
}

// ItineraryPlan is the planner output: ordered stops, totals, and leftovers
type ItineraryPlan struct {
	Itinerary    []ItineraryStop        `json:"itinerary"`
	Summary      ItinerarySummary       `json:"summary"`
	Alternatives []ItineraryAlternative `json:"alternatives"`
}
