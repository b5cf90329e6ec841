package models

// CrowdLevel is the three-tier crowd intensity classification
type CrowdLevel string

// Crowd levels ordered from least to most crowded
const (
	CrowdLow    CrowdLevel = "Low"
	CrowdMedium CrowdLevel = "Medium"
	CrowdHigh   CrowdLevel = "High"
)

// Priority returns the sort priority of a crowd level (Low first)
func (l CrowdLevel) Priority() int {
	switch l {
	case CrowdLow:
		return 1
	case CrowdMedium:
		return 2
	default:
		return 3
	}
}

// CrowdMetric is the live crowd snapshot for a place, recomputed per request
// and never persisted.
type CrowdMetric struct {
	CurrentVisitors     int        `json:"current_visitors"`
	Last6HoursVisitors  int        `json:"last_6_hours_visitors"`
	Last24HoursVisitors int        `json:"last_24_hours_visitors"`
	CrowdLevel          CrowdLevel `json:"crowd_level"`
	VisitScore          int        `json:"visit_score"`
}

// ScenarioProjection is a crowd metric rescaled by a named demand scenario.
// The classification fields are recomputed from the rescaled current count.
type ScenarioProjection struct {
	CrowdMetric
	Scenario           string  `json:"scenario"`
	ScenarioMultiplier float64 `json:"scenario_multiplier"`
}

// HourlyPatternEntry is one hour-of-day bucket of the historical footfall
// pattern. A pattern is always a 24-entry sequence, hours 0-23, zero-filled.
type HourlyPatternEntry struct {
	Hour  int    `json:"hour"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// BestTimeSlot is a ranked low-traffic hour recommendation
type BestTimeSlot struct {
	Hour             int    `json:"hour"`
	Label            string `json:"label"`
	ExpectedVisitors int    `json:"expected_visitors"`
}

// BestTimeRecommendation bundles the ranked slots with their source pattern
type BestTimeRecommendation struct {
	BestSlots           []BestTimeSlot       `json:"best_slots"`
	RecommendedTimeText string               `json:"recommended_time_text"`
	HourlyPattern       []HourlyPatternEntry `json:"hourly_pattern,omitempty"`
}

// AlternativePlace is a ranked low-crowd diversion target
type AlternativePlace struct {
	PlaceID         string     `json:"place_id"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	DistanceKm      float64    `json:"distance_km"`
	CrowdLevel      CrowdLevel `json:"crowd_level"`
	CurrentVisitors int        `json:"current_visitors"`
}
