package crowd

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jengzang/tourism-backend-go/internal/models"
	"github.com/jengzang/tourism-backend-go/internal/spatial"
)

// Planner defaults and bounds
const (
	DefaultMaxPlaces = 4
	MinMaxPlaces     = 2
	MaxMaxPlaces     = 8

	DefaultStartHour = 9

	DefaultTimeBudgetHours = 6.0
	MinTimeBudgetHours     = 2.0
	MaxTimeBudgetHours     = 12.0

	DefaultDistancePenaltyPerKm = 2.1

	minStayMinutes     = 35
	maxStayMinutes     = 170
	defaultStayMinutes = 70

	maxLeftoverAlternatives = 4
)

// PlannerConfig tunes an itinerary build. Zero values select the defaults
// and out-of-range values are clamped.
type PlannerConfig struct {
	MaxPlaces       int
	StartHour       int
	TimeBudgetHours float64
	Scenario        string
	// DistancePenaltyPerKm trades suitability against travel distance when
	// choosing the next hop
	DistancePenaltyPerKm float64
}

func (c PlannerConfig) normalized() PlannerConfig {
	if c.MaxPlaces == 0 {
		c.MaxPlaces = DefaultMaxPlaces
	}
	c.MaxPlaces = ClampInt(c.MaxPlaces, MinMaxPlaces, MaxMaxPlaces)
	c.StartHour = ClampInt(c.StartHour, 0, 23)
	if c.TimeBudgetHours == 0 {
		c.TimeBudgetHours = DefaultTimeBudgetHours
	}
	c.TimeBudgetHours = ClampFloat(c.TimeBudgetHours, MinTimeBudgetHours, MaxTimeBudgetHours)
	if c.DistancePenaltyPerKm <= 0 {
		c.DistancePenaltyPerKm = DefaultDistancePenaltyPerKm
	}
	c.Scenario = NormalizeScenario(c.Scenario)
	return c
}

type itineraryCandidate struct {
	models.EnrichedPlace
	suitability float64
}

// suitabilityScore rates how good a candidate is for the plan: a crowd-level
// bonus, the visit score and rating weighted in, and current density
// weighted against
func suitabilityScore(entry models.EnrichedPlace) float64 {
	crowdBonus := -20.0
	switch entry.Crowd.CrowdLevel {
	case models.CrowdLow:
		crowdBonus = 30
	case models.CrowdMedium:
		crowdBonus = 12
	}
	score := crowdBonus +
		float64(entry.Crowd.VisitScore)*0.36 +
		entry.Reviews.AverageRating*4.5 -
		float64(entry.Crowd.CurrentVisitors)*0.45
	return Round2(score)
}

// parseHourFromSlotLabel extracts the starting hour from a window label like
// "09:00-10:00". Returns nil when the label does not carry a valid hour.
func parseHourFromSlotLabel(label string) *int {
	raw := strings.TrimSpace(label)
	if raw == "" {
		return nil
	}
	head := strings.SplitN(raw, ":", 2)[0]
	hour, err := strconv.Atoi(head)
	if err != nil || hour < 0 || hour > 23 {
		return nil
	}
	return &hour
}

// toClockLabel renders minutes since midnight as "HH:MM", wrapping at
// midnight
func toClockLabel(totalMinutes int) string {
	safe := ((totalMinutes % 1440) + 1440) % 1440
	h := safe / 60
	m := safe % 60
	return pad2(h) + ":" + pad2(m)
}

func pad2(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// travelMinutesFor estimates door-to-door travel time for a hop
func travelMinutesFor(distanceKm float64) int {
	minutes := RoundHalfUp(distanceKm*5.6 + 8)
	if minutes < 6 {
		return 6
	}
	return minutes
}

// selectNextByDistance picks the pool candidate maximizing suitability minus
// the distance penalty from the previous stop
func selectNextByDistance(origin models.Location, pool []itineraryCandidate, penaltyPerKm float64) (index int, distanceKm float64) {
	index = -1
	bestScore := 0.0
	for i, candidate := range pool {
		km := spatial.DistanceKm(origin.Lat, origin.Lng, candidate.Location.Lat, candidate.Location.Lng)
		score := candidate.suitability - km*penaltyPerKm
		if index == -1 || score > bestScore {
			index = i
			bestScore = score
			distanceKm = km
		}
	}
	return index, distanceKm
}

// BuildItinerary assembles a crowd-aware day plan from scored candidates.
// The first stop is the most suitable candidate overall; each later stop is
// the best remaining candidate after the distance penalty from the previous
// one. A candidate whose travel plus stay would blow the time budget is
// rejected outright and never revisited. An empty candidate list yields an
// empty plan, not an error.
func BuildItinerary(enriched []models.EnrichedPlace, cfg PlannerConfig) models.ItineraryPlan {
	cfg = cfg.normalized()

	if len(enriched) == 0 {
		return models.ItineraryPlan{
			Itinerary: []models.ItineraryStop{},
			Summary: models.ItinerarySummary{
				Scenario: cfg.Scenario,
			},
			Alternatives: []models.ItineraryAlternative{},
		}
	}

	budgetMinutes := RoundHalfUp(cfg.TimeBudgetHours * 60)

	candidates := make([]itineraryCandidate, 0, len(enriched))
	for _, entry := range enriched {
		candidates = append(candidates, itineraryCandidate{
			EnrichedPlace: entry,
			suitability:   suitabilityScore(entry),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].suitability > candidates[j].suitability
	})

	poolSize := cfg.MaxPlaces * 3
	if poolSize < cfg.MaxPlaces {
		poolSize = cfg.MaxPlaces
	}
	if poolSize > len(candidates) {
		poolSize = len(candidates)
	}
	pool := candidates[:poolSize]

	chosen := make([]models.ItineraryStop, 0, cfg.MaxPlaces)
	minutesCursor := cfg.StartHour * 60
	consumedMinutes := 0
	travelMinutes := 0

	for len(pool) > 0 && len(chosen) < cfg.MaxPlaces {
		pickIndex := 0
		hopKm := 0.0
		hopMinutes := 0

		if len(chosen) > 0 {
			previous := chosen[len(chosen)-1]
			pickIndex, hopKm = selectNextByDistance(previous.Place.Location, pool, cfg.DistancePenaltyPerKm)
			if pickIndex < 0 {
				break
			}
			hopMinutes = travelMinutesFor(hopKm)
		}

		selected := pool[pickIndex]
		pool = append(pool[:pickIndex], pool[pickIndex+1:]...)

		stayMinutes := selected.AverageVisitDurationMinutes
		if stayMinutes == 0 {
			stayMinutes = defaultStayMinutes
		}
		stayMinutes = ClampInt(stayMinutes, minStayMinutes, maxStayMinutes)

		prospectiveTotal := consumedMinutes + hopMinutes + stayMinutes
		if prospectiveTotal > budgetMinutes {
			continue
		}

		minutesCursor += hopMinutes
		arrivalMinutes := minutesCursor
		departureMinutes := arrivalMinutes + stayMinutes

		consumedMinutes = prospectiveTotal
		travelMinutes += hopMinutes
		minutesCursor = departureMinutes

		var recommendedStartHour *int
		if selected.BestTime != nil && len(selected.BestTime.BestSlots) > 0 {
			recommendedStartHour = parseHourFromSlotLabel(selected.BestTime.BestSlots[0].Label)
		}

		chosen = append(chosen, models.ItineraryStop{
			Order: len(chosen) + 1,
			Place: models.PlaceSummary{
				ID:       selected.ID,
				Name:     selected.Name,
				Category: selected.Category,
				City:     selected.City,
				Location: selected.Location,
			},
			Crowd:            selected.Crowd,
			Reviews:          selected.Reviews,
			BestTime:         selected.BestTime,
			SuitabilityScore: selected.suitability,
			Timing: models.StopTiming{
				ArrivalTime:               toClockLabel(arrivalMinutes),
				DepartureTime:             toClockLabel(departureMinutes),
				StayMinutes:               stayMinutes,
				TravelFromPreviousMinutes: hopMinutes,
				TravelFromPreviousKm:      Round2(hopKm),
				RecommendedStartHour:      recommendedStartHour,
			},
		})
	}

	alternatives := make([]models.ItineraryAlternative, 0, maxLeftoverAlternatives)
	for _, entry := range pool {
		if entry.Crowd.CrowdLevel == models.CrowdHigh {
			continue
		}
		if len(alternatives) == maxLeftoverAlternatives {
			break
		}
		alternatives = append(alternatives, models.ItineraryAlternative{
			ID:              entry.ID,
			Name:            entry.Name,
			Category:        entry.Category,
			CrowdLevel:      entry.Crowd.CrowdLevel,
			CurrentVisitors: entry.Crowd.CurrentVisitors,
			Rating:          entry.Reviews.AverageRating,
		})
	}

	avgVisitScore := 0.0
	if len(chosen) > 0 {
		sum := 0
		for _, stop := range chosen {
			sum += stop.Crowd.VisitScore
		}
		avgVisitScore = Round1(float64(sum) / float64(len(chosen)))
	}

	return models.ItineraryPlan{
		Itinerary: chosen,
		Summary: models.ItinerarySummary{
			TotalPlaces:          len(chosen),
			TotalDurationMinutes: consumedMinutes,
			TravelMinutes:        travelMinutes,
			AvgVisitScore:        avgVisitScore,
			StartTime:            toClockLabel(cfg.StartHour * 60),
			EndTime:              toClockLabel(cfg.StartHour*60 + consumedMinutes),
			Scenario:             cfg.Scenario,
		},
		Alternatives: alternatives,
	}
}
