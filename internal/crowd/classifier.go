package crowd

import "github.com/jengzang/tourism-backend-go/internal/models"

// Crowd level thresholds on the last-hour visitor count
const (
	LowMaxVisitors    = 20
	MediumMaxVisitors = 50
)

// ClassifyCrowd maps a last-hour visitor count to a crowd level
func ClassifyCrowd(currentVisitors int) models.CrowdLevel {
	if currentVisitors <= LowMaxVisitors {
		return models.CrowdLow
	}
	if currentVisitors <= MediumMaxVisitors {
		return models.CrowdMedium
	}
	return models.CrowdHigh
}

// VisitScore rates how pleasant a visit is right now on a 10-90 scale.
// The level sets the base score and density erodes it, capped at 20 points.
func VisitScore(level models.CrowdLevel, currentVisitors int) int {
	base := 35
	switch level {
	case models.CrowdLow:
		base = 90
	case models.CrowdMedium:
		base = 65
	}
	penalty := currentVisitors / 5
	if penalty > 20 {
		penalty = 20
	}
	score := base - penalty
	if score < 10 {
		return 10
	}
	return score
}
