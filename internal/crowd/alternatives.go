package crowd

import (
	"sort"

	"github.com/jengzang/tourism-backend-go/internal/models"
	"github.com/jengzang/tourism-backend-go/internal/spatial"
)

// Alternative search defaults
const (
	DefaultAlternativeRadiusKm = 5.0
	DefaultAlternativeResults  = 3
)

// FindAlternatives ranks nearby, less crowded places a visitor could divert
// to. The target itself, High-crowd places, places beyond maxDistanceKm, and
// places with no crowd snapshot are excluded. Results sort by crowd level
// first, then by distance, truncated to maxResults.
func FindAlternatives(target models.Place, candidates []models.Place, stats map[string]models.ScenarioProjection, maxDistanceKm float64, maxResults int) []models.AlternativePlace {
	alternatives := make([]models.AlternativePlace, 0, len(candidates))

	for _, place := range candidates {
		if place.ID == target.ID {
			continue
		}
		projection, ok := stats[place.ID]
		if !ok {
			continue
		}
		if projection.CrowdLevel == models.CrowdHigh {
			continue
		}

		distanceKm := spatial.DistanceKm(target.Location.Lat, target.Location.Lng, place.Location.Lat, place.Location.Lng)
		if distanceKm > maxDistanceKm {
			continue
		}

		alternatives = append(alternatives, models.AlternativePlace{
			PlaceID:         place.ID,
			Name:            place.Name,
			Category:        place.Category,
			DistanceKm:      Round2(distanceKm),
			CrowdLevel:      projection.CrowdLevel,
			CurrentVisitors: projection.CurrentVisitors,
		})
	}

	sort.Slice(alternatives, func(i, j int) bool {
		if alternatives[i].CrowdLevel != alternatives[j].CrowdLevel {
			return alternatives[i].CrowdLevel.Priority() < alternatives[j].CrowdLevel.Priority()
		}
		return alternatives[i].DistanceKm < alternatives[j].DistanceKm
	})

	if len(alternatives) > maxResults {
		alternatives = alternatives[:maxResults]
	}
	return alternatives
}
