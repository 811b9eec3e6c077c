package analysis

import (
	"sort"

	"github.com/fantasyedge/fantasy-edge/internal/models"
)

// defaultOwnership applies when the slate carries no ownership estimate.
const defaultOwnership = 25.0

// WaiverTargets ranks unrostered players at the needed positions by a
// composite of projection, scarcity, and confidence:
//
//	priority = points + (100 - ownership)/100*5 + confidence*3
//
// Players without roster info, above the ownership ceiling, or outside the
// need list are dropped. Ties keep pool order.
func WaiverTargets(pool []models.PlayerAnalysis, needs []models.Position, maxOwnership float64) []models.WaiverTarget {
	needed := make(map[models.Position]bool, len(needs))
	for _, pos := range needs {
		needed[pos] = true
	}

	targets := make([]models.WaiverTarget, 0, len(pool))
	for _, p := range pool {
		if p.Projection == nil || p.Roster == nil || !needed[p.Position] {
			continue
		}
		ownership := defaultOwnership
		if p.Roster.Ownership != nil {
			ownership = *p.Roster.Ownership
		}
		if ownership > maxOwnership {
			continue
		}

		points := p.Projection.Points
		confidence := p.Projection.Confidence
		targets = append(targets, models.WaiverTarget{
			Player:    p,
			Priority:  points + (100-ownership)/100*5 + confidence*3,
			Ownership: ownership,
			Reason:    waiverReason(points, confidence),
		})
	}

	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].Priority > targets[j].Priority
	})
	return targets
}

func waiverReason(points, confidence float64) string {
	switch {
	case points > 15 && confidence > 0.7:
		return "High-upside play with strong market backing"
	case points > 12:
		return "Solid weekly starter potential"
	case confidence > 0.8:
		return "Low-risk add with a reliable floor"
	default:
		return "Speculative add worth a bench spot"
	}
}
