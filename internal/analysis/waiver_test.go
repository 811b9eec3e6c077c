package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fantasyedge/fantasy-edge/internal/models"
)

func owned(name string, pos models.Position, points, confidence, ownership float64) models.PlayerAnalysis {
	p := player(name, pos, points, confidence)
	p.Roster = &models.RosterInfo{Active: true, Ownership: &ownership}
	return p
}

func TestWaiverTargets_PriorityFormula(t *testing.T) {
	pool := []models.PlayerAnalysis{
		owned("A", models.PositionRB, 14.0, 0.7, 10.0),
	}

	targets := WaiverTargets(pool, []models.Position{models.PositionRB}, 50.0)

	require.Len(t, targets, 1)
	// 14 + (100-10)/100*5 + 0.7*3
	assert.InDelta(t, 14.0+4.5+2.1, targets[0].Priority, 1e-9)
	assert.Equal(t, 10.0, targets[0].Ownership)
}

func TestWaiverTargets_DefaultOwnership(t *testing.T) {
	p := player("NoEstimate", models.PositionWR, 10.0, 0.6)
	p.Roster = &models.RosterInfo{Active: true}
	pool := []models.PlayerAnalysis{p}

	targets := WaiverTargets(pool, []models.Position{models.PositionWR}, 50.0)

	require.Len(t, targets, 1)
	assert.Equal(t, 25.0, targets[0].Ownership)
	assert.InDelta(t, 10.0+(100-25.0)/100*5+0.6*3, targets[0].Priority, 1e-9)
}

func TestWaiverTargets_DropsPlayersWithoutRosterInfo(t *testing.T) {
	pool := []models.PlayerAnalysis{
		player("NoRoster", models.PositionWR, 10.0, 0.6),
		owned("Rostered", models.PositionWR, 10.0, 0.6, 20.0),
	}

	targets := WaiverTargets(pool, []models.Position{models.PositionWR}, 50.0)

	require.Len(t, targets, 1)
	assert.Equal(t, "Rostered", targets[0].Player.Name)
}

func TestWaiverTargets_FiltersByNeedAndOwnership(t *testing.T) {
	pool := []models.PlayerAnalysis{
		owned("WrongPos", models.PositionQB, 20.0, 0.8, 5.0),
		owned("TooOwned", models.PositionRB, 18.0, 0.8, 80.0),
		owned("Keeper", models.PositionRB, 12.0, 0.7, 15.0),
		noProjection("NoData", models.PositionRB),
	}

	targets := WaiverTargets(pool, []models.Position{models.PositionRB}, 50.0)

	require.Len(t, targets, 1)
	assert.Equal(t, "Keeper", targets[0].Player.Name)
}

func TestWaiverTargets_SortsDescendingTiesKeepOrder(t *testing.T) {
	pool := []models.PlayerAnalysis{
		owned("Low", models.PositionWR, 8.0, 0.6, 20.0),
		owned("TieFirst", models.PositionWR, 12.0, 0.7, 20.0),
		owned("TieSecond", models.PositionWR, 12.0, 0.7, 20.0),
	}

	targets := WaiverTargets(pool, []models.Position{models.PositionWR}, 50.0)

	require.Len(t, targets, 3)
	assert.Equal(t, "TieFirst", targets[0].Player.Name)
	assert.Equal(t, "TieSecond", targets[1].Player.Name)
	assert.Equal(t, "Low", targets[2].Player.Name)
}

func TestWaiverTargets_Reasons(t *testing.T) {
	tests := []struct {
		points     float64
		confidence float64
		reason     string
	}{
		{16.0, 0.8, "High-upside play with strong market backing"},
		{13.0, 0.5, "Solid weekly starter potential"},
		{8.0, 0.85, "Low-risk add with a reliable floor"},
		{8.0, 0.5, "Speculative add worth a bench spot"},
	}

	for _, tt := range tests {
		pool := []models.PlayerAnalysis{owned("P", models.PositionRB, tt.points, tt.confidence, 10.0)}
		targets := WaiverTargets(pool, []models.Position{models.PositionRB}, 50.0)
		require.Len(t, targets, 1)
		assert.Equal(t, tt.reason, targets[0].Reason)
	}
}
