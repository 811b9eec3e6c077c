package analysis

import (
	"sort"

	"github.com/fantasyedge/fantasy-edge/internal/models"
)

// ValuePlays filters a pool to projections whose confidence clears the
// threshold (given on a 0-10 scale) and ranks them by confidence-weighted
// points. Ties keep pool order.
func ValuePlays(pool []models.PlayerAnalysis, minConfidenceThreshold float64) []models.ValuePlay {
	floor := minConfidenceThreshold / 10

	plays := make([]models.ValuePlay, 0, len(pool))
	for _, p := range pool {
		if p.Projection == nil || p.Projection.Confidence < floor {
			continue
		}
		plays = append(plays, models.ValuePlay{
			Player: p,
			Value:  p.Projection.Points * p.Projection.Confidence,
		})
	}

	sort.SliceStable(plays, func(i, j int) bool {
		return plays[i].Value > plays[j].Value
	})
	return plays
}
