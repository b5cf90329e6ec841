package models

// CrowdDistribution counts places per crowd level
type CrowdDistribution struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// PlaceStat is the per-place row analytics endpoints aggregate over: the
// scenario-projected crowd fields plus the review aggregate.
type PlaceStat struct {
	PlaceID         string     `json:"place_id"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	CrowdLevel      CrowdLevel `json:"crowd_level"`
	CurrentVisitors int        `json:"current_visitors"`
	VisitScore      int        `json:"visit_score"`
	AverageRating   float64    `json:"average_rating"`
	TotalReviews    int        `json:"total_reviews"`
}

// OverviewTotals is the headline counter block of the analytics overview
type OverviewTotals struct {
	Places              int `json:"places"`
	TotalCheckIns       int `json:"total_check_ins"`
	CheckInsLast24Hours int `json:"check_ins_last_24h"`
	TotalReviews        int `json:"total_reviews"`
}

// AnalyticsOverview is the dashboard payload
type AnalyticsOverview struct {
	Scenario           string            `json:"scenario"`
	ScenarioMultiplier float64           `json:"scenario_multiplier"`
	Totals             OverviewTotals    `json:"totals"`
	ByCrowdLevel       CrowdDistribution `json:"by_crowd_level"`
	TopCrowdedPlaces   []PlaceStat       `json:"top_crowded_places"`
	TopRatedPlaces     []PlaceStat       `json:"top_rated_places"`
	ImpactPreview      ImpactMetrics     `json:"impact_preview"`
}

// ImpactMetrics estimates how much crowd-aware guidance smooths demand
type ImpactMetrics struct {
	Scenario                      string  `json:"scenario"`
	AvoidedOvercrowdedSpots       int     `json:"avoided_overcrowded_spots"`
	EstimatedWaitTimeSavedMinutes int     `json:"estimated_wait_time_saved_minutes"`
	WaitReductionMinutes          float64 `json:"wait_reduction_minutes"`
	WaitReductionPercent          int     `json:"wait_reduction_percent"`
	DiversionSuccessRate          int     `json:"diversion_success_rate"`
	CrowdBalanceScore             int     `json:"crowd_balance_score"`
	ExperienceStabilityScore      int     `json:"experience_stability_score"`
	ProjectedAverageWaitMinutes   float64 `json:"projected_average_wait_minutes"`
	BaselineAverageWaitMinutes    float64 `json:"baseline_average_wait_minutes"`
}

// ImpactReport is the impact endpoint payload: the metrics plus context
// counters
type ImpactReport struct {
	ImpactMetrics
	TotalPlaces         int `json:"total_places"`
	CheckInsLast24Hours int `json:"check_ins_last_24h"`
	CheckInsLast6Hours  int `json:"check_ins_last_6h"`
}

// ProjectedHotspot is a place ranked by projected demand under a scenario
type ProjectedHotspot struct {
	PlaceID           string     `json:"place_id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	CrowdLevel        CrowdLevel `json:"crowd_level"`
	ProjectedVisitors int        `json:"projected_visitors"`
}

// ScenarioReport simulates the whole catalog under a demand scenario
type ScenarioReport struct {
	Scenario                 string             `json:"scenario"`
	Multiplier               float64            `json:"multiplier"`
	TotalPlaces              int                `json:"total_places"`
	ByCrowdLevel             CrowdDistribution  `json:"by_crowd_level"`
	ProjectedCurrentVisitors int                `json:"projected_current_visitors"`
	TopProjectedHotspots     []ProjectedHotspot `json:"top_projected_hotspots"`
}

// DailyTrend is one day of the check-in trend series
type DailyTrend struct {
	Date                   string `json:"date"`
	TotalCheckIns          int    `json:"total_check_ins"`
	ProjectedTotalCheckIns int    `json:"projected_total_check_ins"`
}

// TrendReport is the daily check-in series over the requested window
type TrendReport struct {
	Days               int          `json:"days"`
	Scenario           string       `json:"scenario"`
	ScenarioMultiplier float64      `json:"scenario_multiplier"`
	Daily              []DailyTrend `json:"daily"`
}

// HourlyReport is a place's scenario-scaled hourly pattern with its quiet
// slots
type HourlyReport struct {
	Place              PlaceSummary         `json:"place"`
	LookbackDays       int                  `json:"lookback_days"`
	Scenario           string               `json:"scenario"`
	ScenarioMultiplier float64              `json:"scenario_multiplier"`
	BestSlots          []BestTimeSlot       `json:"best_slots"`
	HourlyPattern      []HourlyPatternEntry `json:"hourly_pattern"`
}
