package analysis

import (
	"fmt"
	"math/rand"

	"github.com/fantasyedge/fantasy-edge/internal/models"
	"github.com/fantasyedge/fantasy-edge/internal/optimizer"
)

// winningScoreThreshold is the weekly total that typically wins a matchup
// in a standard 12-team league.
const winningScoreThreshold = 110.0

// weeklyVariance is the standard deviation of the weekly performance
// multiplier.
const weeklyVariance = 0.2

// SeasonSimulation summarizes a Monte Carlo run of a roster's season.
type SeasonSimulation struct {
	Weeks         int                `json:"weeks"`
	TotalPoints   float64            `json:"total_points"`
	ProjectedWins int                `json:"projected_wins"`
	AverageScore  float64            `json:"average_score"`
	BestWeek      float64            `json:"best_week"`
	WorstWeek     float64            `json:"worst_week"`
	WeeklyScores  []float64          `json:"weekly_scores"`
	PlayerTotals  map[string]float64 `json:"player_totals"`
}

// SimulateSeason plays out a season week by week. Each week the optimal
// starting lineup is fielded and its projected total is scaled by a normal
// multiplier (mean 1.0, sd 0.2); bench players never score. A week counts
// as a win when the total clears the winning threshold. The same seed
// always reproduces the same season.
func SimulateSeason(roster []models.PlayerAnalysis, requirements models.LineupRequirement, weeks int, seed int64) (*SeasonSimulation, error) {
	if weeks <= 0 {
		return nil, fmt.Errorf("weeks must be positive, got %d", weeks)
	}

	lineup, err := optimizer.OptimizeLineup(roster, requirements)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	sim := &SeasonSimulation{
		Weeks:        weeks,
		WeeklyScores: make([]float64, 0, weeks),
		PlayerTotals: make(map[string]float64),
	}
	for week := 0; week < weeks; week++ {
		multiplier := 1.0 + rng.NormFloat64()*weeklyVariance
		score := lineup.TotalPoints * multiplier

		for _, starters := range lineup.Starters {
			for _, p := range starters {
				sim.PlayerTotals[p.Name] += p.ProjectedPoints() * multiplier
			}
		}

		sim.WeeklyScores = append(sim.WeeklyScores, score)
		sim.TotalPoints += score
		if score > winningScoreThreshold {
			sim.ProjectedWins++
		}
		if week == 0 || score > sim.BestWeek {
			sim.BestWeek = score
		}
		if week == 0 || score < sim.WorstWeek {
			sim.WorstWeek = score
		}
	}
	sim.AverageScore = sim.TotalPoints / float64(weeks)
	return sim, nil
}
