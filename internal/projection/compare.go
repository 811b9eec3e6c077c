package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/fantasyedge/fantasy-edge/internal/models"
)

// ErrMissingProjection is returned when a comparison side has no projection.
var ErrMissingProjection = errors.New("player has no projection")

// tooCloseMargin is the strict point-delta boundary below which a comparison
// is declared too close to call. A delta of exactly the margin is decisive.
const tooCloseMargin = 1.0

// Comparison is the pairwise delta between two projections.
type Comparison struct {
	DeltaPoints     float64 `json:"delta_points"`
	DeltaConfidence float64 `json:"delta_confidence"`
	Recommendation  string  `json:"recommendation"`
}

// Compare computes the point and confidence delta between two projections
// and recommends a side. The delta is a.Points - b.Points.
func Compare(a, b *models.Projection) (*Comparison, error) {
	if a == nil || b == nil {
		return nil, ErrMissingProjection
	}

	delta := a.Points - b.Points
	cmp := &Comparison{
		DeltaPoints:     delta,
		DeltaConfidence: a.Confidence - b.Confidence,
	}

	switch {
	case math.Abs(delta) < tooCloseMargin:
		cmp.Recommendation = "too close to call"
	case delta > 0:
		cmp.Recommendation = fmt.Sprintf("start %s over %s (+%.1f points)", a.Player, b.Player, delta)
	default:
		cmp.Recommendation = fmt.Sprintf("start %s over %s (+%.1f points)", b.Player, a.Player, -delta)
	}
	return cmp, nil
}
