package crowd

import "strings"

// Supported demand scenarios
const (
	ScenarioNormal   = "normal"
	ScenarioWeekend  = "weekend"
	ScenarioFestival = "festival"
)

var scenarioMultipliers = map[string]float64{
	ScenarioNormal:   1.0,
	ScenarioWeekend:  1.24,
	ScenarioFestival: 1.58,
}

// Scenarios lists the supported scenario names in display order
func Scenarios() []string {
	return []string{ScenarioNormal, ScenarioWeekend, ScenarioFestival}
}

// NormalizeScenario maps arbitrary input to a supported scenario name.
// Matching is case-insensitive and unknown values fall back to normal.
func NormalizeScenario(input string) string {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case ScenarioWeekend:
		return ScenarioWeekend
	case ScenarioFestival:
		return ScenarioFestival
	default:
		return ScenarioNormal
	}
}

// ScenarioMultiplier returns the demand multiplier for a scenario input
func ScenarioMultiplier(input string) float64 {
	return scenarioMultipliers[NormalizeScenario(input)]
}
