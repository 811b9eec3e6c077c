package analysis

import (
	"sort"

	"github.com/fantasyedge/fantasy-edge/internal/models"
)

// breakoutCutoff is the minimum composite score for a breakout candidate.
const breakoutCutoff = 7.0

// Breakdown bonuses: heavy usage in a single category signals expanding
// roles that season-long managers have not priced in yet.
const (
	rushingYardsBonusAbove   = 30.0
	receivingYardsBonusAbove = 60.0
	receivingTDBonusAbove    = 0.5
	yardageBonus             = 2.0
	touchdownBonus           = 3.0
)

// BreakoutCandidates scores a pool for breakout potential: projection
// weighted by confidence, with bonuses for outsized category usage. Players
// below the caller's confidence floor or the fixed score cutoff are dropped.
// Ties keep pool order.
func BreakoutCandidates(pool []models.PlayerAnalysis, minConfidence float64) []models.BreakoutCandidate {
	candidates := make([]models.BreakoutCandidate, 0, len(pool))
	for _, p := range pool {
		if p.Projection == nil || p.Projection.Confidence < minConfidence {
			continue
		}

		score := p.Projection.Points * p.Projection.Confidence
		breakdown := p.Projection.Breakdown
		if breakdown["rushing_yards"] > rushingYardsBonusAbove {
			score += yardageBonus
		}
		if breakdown["receiving_yards"] > receivingYardsBonusAbove {
			score += yardageBonus
		}
		if breakdown["receiving_tds"] > receivingTDBonusAbove {
			score += touchdownBonus
		}
		if score <= breakoutCutoff {
			continue
		}

		candidates = append(candidates, models.BreakoutCandidate{
			Player: p,
			Score:  score,
			Reason: breakoutReason(score),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}

func breakoutReason(score float64) string {
	switch {
	case score > 15:
		return "Elite projection across the market"
	case score > 12:
		return "Strong multi-category involvement"
	case score > 9:
		return "Solid upside in the current role"
	default:
		return "Speculative breakout profile"
	}
}
