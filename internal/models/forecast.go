package models

// ForecastSlot is one projected step of the short-horizon forecast
type ForecastSlot struct {
	StepHours        int        `json:"step_hours"`
	Label            string     `json:"label"`
	Hour             int        `json:"hour"`
	Window           string     `json:"window"`
	ExpectedVisitors int        `json:"expected_visitors"`
	CrowdLevel       CrowdLevel `json:"crowd_level"`
	Confidence       int        `json:"confidence"`
}

// CrowdForecast is the full forecast payload: the current scenario-projected
// snapshot, the slot sequence from "now" through the horizon, the peak slot,
// and the trend factor used (kept for explainability and testing).
type CrowdForecast struct {
	Scenario           string             `json:"scenario"`
	ScenarioMultiplier float64            `json:"scenario_multiplier"`
	GeneratedAt        string             `json:"generated_at"`
	TrendFactor        float64            `json:"trend_factor"`
	Current            ScenarioProjection `json:"current"`
	Forecast           []ForecastSlot     `json:"forecast"`
	PeakSlot           *ForecastSlot      `json:"peak_slot"`
}
