package optimizer

import (
	"sort"

	"github.com/fantasyedge/fantasy-edge/internal/models"
)

// OptimizeLineup fills position quotas greedily from the highest projected
// players. Within a position the sort is stable, so equal-point players keep
// their pool order and the result is deterministic. Positions missing from
// the pool yield empty slots, not errors. Only starters count toward the
// point total; everyone else at a required position lands on the bench.
func OptimizeLineup(pool []models.PlayerAnalysis, requirements models.LineupRequirement) (*models.LineupResult, error) {
	if err := requirements.Validate(); err != nil {
		return nil, err
	}

	byPosition := groupProjected(pool)

	result := &models.LineupResult{
		Starters: make(map[models.Position][]models.PlayerAnalysis, len(requirements)),
	}
	for _, pos := range models.AllPositions {
		need, required := requirements[pos]
		if !required {
			continue
		}
		candidates := byPosition[pos]
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].ProjectedPoints() > candidates[j].ProjectedPoints()
		})

		take := need
		if take > len(candidates) {
			take = len(candidates)
		}
		starters := candidates[:take]
		result.Starters[pos] = starters
		result.Bench = append(result.Bench, candidates[take:]...)
		for _, p := range starters {
			result.TotalPoints += p.ProjectedPoints()
		}
	}
	return result, nil
}

// groupProjected buckets players with a resolved projection by position,
// preserving pool order within each bucket.
func groupProjected(pool []models.PlayerAnalysis) map[models.Position][]models.PlayerAnalysis {
	byPosition := make(map[models.Position][]models.PlayerAnalysis)
	for _, p := range pool {
		if p.Projection == nil {
			continue
		}
		byPosition[p.Position] = append(byPosition[p.Position], p)
	}
	return byPosition
}
