package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fantasyedge/fantasy-edge/internal/models"
)

func projected(name string, pos models.Position, points float64) models.PlayerAnalysis {
	return models.PlayerAnalysis{
		Name:     name,
		Position: pos,
		Projection: &models.Projection{
			Player:     name,
			Position:   pos,
			Points:     points,
			Confidence: 0.7,
		},
	}
}

func unprojected(name string, pos models.Position) models.PlayerAnalysis {
	return models.PlayerAnalysis{Name: name, Position: pos}
}

func TestOptimizeLineup_FillsQuotas(t *testing.T) {
	pool := []models.PlayerAnalysis{
		projected("QB1", models.PositionQB, 22.0),
		projected("QB2", models.PositionQB, 18.0),
		projected("RB1", models.PositionRB, 16.0),
		projected("RB2", models.PositionRB, 14.0),
		projected("RB3", models.PositionRB, 12.0),
		projected("WR1", models.PositionWR, 15.0),
		projected("WR2", models.PositionWR, 13.0),
	}
	req := models.LineupRequirement{
		models.PositionQB: 1,
		models.PositionRB: 2,
		models.PositionWR: 2,
	}

	result, err := OptimizeLineup(pool, req)

	require.NoError(t, err)
	require.Len(t, result.Starters[models.PositionQB], 1)
	require.Len(t, result.Starters[models.PositionRB], 2)
	require.Len(t, result.Starters[models.PositionWR], 2)
	assert.Equal(t, "QB1", result.Starters[models.PositionQB][0].Name)
	assert.Equal(t, "RB1", result.Starters[models.PositionRB][0].Name)
	assert.Equal(t, "RB2", result.Starters[models.PositionRB][1].Name)
	assert.InDelta(t, 22.0+16.0+14.0+15.0+13.0, result.TotalPoints, 1e-9)

	require.Len(t, result.Bench, 2)
	assert.Equal(t, "QB2", result.Bench[0].Name)
	assert.Equal(t, "RB3", result.Bench[1].Name)
}

func TestOptimizeLineup_TiesKeepPoolOrder(t *testing.T) {
	pool := []models.PlayerAnalysis{
		projected("First", models.PositionWR, 12.0),
		projected("Second", models.PositionWR, 12.0),
		projected("Third", models.PositionWR, 12.0),
	}
	req := models.LineupRequirement{models.PositionWR: 2}

	result, err := OptimizeLineup(pool, req)

	require.NoError(t, err)
	starters := result.Starters[models.PositionWR]
	require.Len(t, starters, 2)
	assert.Equal(t, "First", starters[0].Name)
	assert.Equal(t, "Second", starters[1].Name)
	assert.Equal(t, "Third", result.Bench[0].Name)
}

func TestOptimizeLineup_MissingPositionLeavesSlotEmpty(t *testing.T) {
	pool := []models.PlayerAnalysis{
		projected("QB1", models.PositionQB, 20.0),
	}
	req := models.LineupRequirement{
		models.PositionQB: 1,
		models.PositionK:  1,
	}

	result, err := OptimizeLineup(pool, req)

	require.NoError(t, err)
	assert.Len(t, result.Starters[models.PositionQB], 1)
	assert.Empty(t, result.Starters[models.PositionK])
	assert.InDelta(t, 20.0, result.TotalPoints, 1e-9)
}

func TestOptimizeLineup_NeverOverOrUnderFills(t *testing.T) {
	pool := []models.PlayerAnalysis{
		projected("RB1", models.PositionRB, 15.0),
		projected("RB2", models.PositionRB, 14.0),
		projected("RB3", models.PositionRB, 13.0),
		projected("WR1", models.PositionWR, 12.0),
	}
	req := models.LineupRequirement{
		models.PositionRB: 2,
		models.PositionWR: 3,
	}

	result, err := OptimizeLineup(pool, req)

	require.NoError(t, err)
	assert.Len(t, result.Starters[models.PositionRB], 2)
	// Only one WR available for three slots.
	assert.Len(t, result.Starters[models.PositionWR], 1)
}

func TestOptimizeLineup_SkipsUnprojectedPlayers(t *testing.T) {
	pool := []models.PlayerAnalysis{
		unprojected("NoData", models.PositionQB),
		projected("QB1", models.PositionQB, 17.0),
	}
	req := models.LineupRequirement{models.PositionQB: 1}

	result, err := OptimizeLineup(pool, req)

	require.NoError(t, err)
	require.Len(t, result.Starters[models.PositionQB], 1)
	assert.Equal(t, "QB1", result.Starters[models.PositionQB][0].Name)
}

func TestOptimizeLineup_InvalidRequirements(t *testing.T) {
	pool := []models.PlayerAnalysis{projected("QB1", models.PositionQB, 17.0)}

	_, err := OptimizeLineup(pool, models.LineupRequirement{})
	assert.Error(t, err)

	_, err = OptimizeLineup(pool, models.LineupRequirement{models.Position("FB"): 1})
	assert.Error(t, err)

	_, err = OptimizeLineup(pool, models.LineupRequirement{models.PositionQB: 0})
	assert.Error(t, err)
}
