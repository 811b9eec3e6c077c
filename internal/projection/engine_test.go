package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fantasyedge/fantasy-edge/internal/models"
)

func TestProject_QBPassingYardsOnly(t *testing.T) {
	lines := map[string]float64{models.MarketPassYards: 275}

	proj := Project("Josh Allen", models.PositionQB, lines, models.StandardPPR())

	require.NotNil(t, proj)
	assert.InDelta(t, 11.0, proj.Points, 1e-9)
	assert.Equal(t, map[string]float64{"passing_yards": 11.0}, proj.Breakdown)
	assert.InDelta(t, 0.8, proj.Confidence, 1e-9)
}

func TestProject_WRFullPPR(t *testing.T) {
	lines := map[string]float64{
		models.MarketReceptions:     6,
		models.MarketReceptionYards: 80,
	}

	proj := Project("CeeDee Lamb", models.PositionWR, lines, models.StandardPPR())

	require.NotNil(t, proj)
	assert.InDelta(t, 14.0, proj.Points, 1e-9)
	assert.InDelta(t, 6.0, proj.Breakdown["receptions"], 1e-9)
	assert.InDelta(t, 8.0, proj.Breakdown["receiving_yards"], 1e-9)
	assert.InDelta(t, 0.8, proj.Confidence, 1e-9)
}

func TestProject_TEUsesWRTable(t *testing.T) {
	lines := map[string]float64{
		models.MarketReceptions:     6,
		models.MarketReceptionYards: 80,
	}

	wr := Project("A", models.PositionWR, lines, models.StandardPPR())
	te := Project("A", models.PositionTE, lines, models.StandardPPR())

	require.NotNil(t, wr)
	require.NotNil(t, te)
	assert.Equal(t, wr.Points, te.Points)
	assert.Equal(t, wr.Confidence, te.Confidence)
	assert.Equal(t, wr.Breakdown, te.Breakdown)
}

func TestProject_QBAllCategories(t *testing.T) {
	lines := map[string]float64{
		models.MarketPassYards: 275,
		models.MarketPassTDs:   2.0,
		models.MarketRushYards: 30,
		models.MarketRushTDs:   0.5,
	}

	proj := Project("Jalen Hurts", models.PositionQB, lines, models.StandardPPR())

	require.NotNil(t, proj)
	// 275/25 + 2*4 + 30/10 + 0.5*6
	assert.InDelta(t, 25.0, proj.Points, 1e-9)
	assert.Len(t, proj.Breakdown, 4)
	assert.InDelta(t, (0.8+0.7+0.6+0.5)/4, proj.Confidence, 1e-9)
}

func TestProject_RBReceivingWork(t *testing.T) {
	lines := map[string]float64{
		models.MarketRushYards:      85,
		models.MarketReceptions:     4,
		models.MarketReceptionYards: 30,
	}

	proj := Project("CMC", models.PositionRB, lines, models.HalfPPR())

	require.NotNil(t, proj)
	// 85/10 + 4*0.5 + 30/10
	assert.InDelta(t, 13.5, proj.Points, 1e-9)
	assert.InDelta(t, (0.8+0.7+0.7)/3, proj.Confidence, 1e-9)
}

func TestProject_NoLines(t *testing.T) {
	assert.Nil(t, Project("X", models.PositionQB, nil, models.StandardPPR()))
	assert.Nil(t, Project("X", models.PositionQB, map[string]float64{}, models.StandardPPR()))
}

func TestProject_UnknownAndUnprojectablePositions(t *testing.T) {
	lines := map[string]float64{models.MarketPassYards: 250}

	assert.Nil(t, Project("X", models.Position("FB"), lines, models.StandardPPR()))
	assert.Nil(t, Project("X", models.PositionK, lines, models.StandardPPR()))
	assert.Nil(t, Project("X", models.PositionDST, lines, models.StandardPPR()))
}

func TestProject_ForeignMarketsOnly(t *testing.T) {
	// A QB handed only receiving markets scores nothing but still projects,
	// with the fallback confidence.
	lines := map[string]float64{models.MarketReceptions: 5}

	proj := Project("X", models.PositionQB, lines, models.StandardPPR())

	require.NotNil(t, proj)
	assert.Zero(t, proj.Points)
	assert.Empty(t, proj.Breakdown)
	assert.InDelta(t, 0.5, proj.Confidence, 1e-9)
}

func TestProject_Pure(t *testing.T) {
	lines := map[string]float64{
		models.MarketPassYards: 287.5,
		models.MarketPassTDs:   1.5,
	}
	rule := models.DraftKingsDFS()

	first := Project("X", models.PositionQB, lines, rule)
	for i := 0; i < 10; i++ {
		again := Project("X", models.PositionQB, lines, rule)
		assert.Equal(t, first, again)
	}
}

func TestProject_RuleSwapChangesPointsNotConfidence(t *testing.T) {
	lines := map[string]float64{models.MarketReceptions: 6}

	full := Project("X", models.PositionWR, lines, models.StandardPPR())
	half := Project("X", models.PositionWR, lines, models.HalfPPR())

	require.NotNil(t, full)
	require.NotNil(t, half)
	assert.InDelta(t, 6.0, full.Points, 1e-9)
	assert.InDelta(t, 3.0, half.Points, 1e-9)
	assert.Equal(t, full.Confidence, half.Confidence)
}
