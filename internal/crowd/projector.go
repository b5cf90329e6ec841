package crowd

import "github.com/jengzang/tourism-backend-go/internal/models"

// ApplyScenario rescales a crowd metric by the named scenario's demand
// multiplier. The crowd level and visit score are recomputed from the
// rescaled current count; a normal scenario passes the metric through
// unchanged.
func ApplyScenario(metric models.CrowdMetric, scenarioInput string) models.ScenarioProjection {
	scenario := NormalizeScenario(scenarioInput)
	multiplier := ScenarioMultiplier(scenario)

	projection := models.ScenarioProjection{
		CrowdMetric:        metric,
		Scenario:           scenario,
		ScenarioMultiplier: multiplier,
	}
	if multiplier == 1 {
		return projection
	}

	scale := func(count int) int {
		scaled := RoundHalfUp(float64(count) * multiplier)
		if scaled < 0 {
			return 0
		}
		return scaled
	}

	projection.CurrentVisitors = scale(metric.CurrentVisitors)
	projection.Last6HoursVisitors = scale(metric.Last6HoursVisitors)
	projection.Last24HoursVisitors = scale(metric.Last24HoursVisitors)
	projection.CrowdLevel = ClassifyCrowd(projection.CurrentVisitors)
	projection.VisitScore = VisitScore(projection.CrowdLevel, projection.CurrentVisitors)
	return projection
}
