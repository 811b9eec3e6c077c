package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fantasyedge/fantasy-edge/internal/models"
)

func player(name string, pos models.Position, points, confidence float64) models.PlayerAnalysis {
	return models.PlayerAnalysis{
		Name:     name,
		Position: pos,
		Projection: &models.Projection{
			Player:     name,
			Position:   pos,
			Points:     points,
			Confidence: confidence,
		},
	}
}

func noProjection(name string, pos models.Position) models.PlayerAnalysis {
	return models.PlayerAnalysis{Name: name, Position: pos}
}

func TestEvaluateTrade_Verdicts(t *testing.T) {
	tests := []struct {
		name          string
		givePoints    float64
		receivePoints float64
		verdict       models.TradeVerdict
	}{
		{"strongly favorable", 10, 16, models.TradeStronglyFavorable},
		{"favorable", 10, 13, models.TradeFavorable},
		{"fair", 10, 10.5, models.TradeFair},
		{"unfavorable", 13, 10, models.TradeUnfavorable},
		{"strongly unfavorable", 16, 10, models.TradeStronglyUnfavorable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			give := []models.PlayerAnalysis{player("G", models.PositionRB, tt.givePoints, 0.7)}
			receive := []models.PlayerAnalysis{player("R", models.PositionRB, tt.receivePoints, 0.7)}

			proposal, err := EvaluateTrade(give, receive, models.LeagueRedraft)

			require.NoError(t, err)
			assert.Equal(t, tt.verdict, proposal.Verdict)
			assert.InDelta(t, tt.receivePoints-tt.givePoints, proposal.NetValue, 1e-9)
			assert.NotEmpty(t, proposal.Explanation)
		})
	}
}

func TestEvaluateTrade_AntiSymmetricUnderRedraft(t *testing.T) {
	sideA := []models.PlayerAnalysis{
		player("A1", models.PositionQB, 22.0, 0.8),
		player("A2", models.PositionWR, 13.5, 0.6),
	}
	sideB := []models.PlayerAnalysis{
		player("B1", models.PositionRB, 17.0, 0.7),
	}

	forward, err := EvaluateTrade(sideA, sideB, models.LeagueRedraft)
	require.NoError(t, err)
	reverse, err := EvaluateTrade(sideB, sideA, models.LeagueRedraft)
	require.NoError(t, err)

	assert.InDelta(t, forward.NetValue, -reverse.NetValue, 1e-9)
}

func TestEvaluateTrade_DynastyMultiplier(t *testing.T) {
	give := []models.PlayerAnalysis{player("G", models.PositionRB, 10.0, 0.7)}
	receive := []models.PlayerAnalysis{player("R", models.PositionWR, 10.0, 0.7)}

	proposal, err := EvaluateTrade(give, receive, models.LeagueDynasty)

	require.NoError(t, err)
	assert.InDelta(t, 12.0, proposal.GiveValue, 1e-9)
	assert.InDelta(t, 12.0, proposal.ReceiveValue, 1e-9)
}

func TestEvaluateTrade_DFSWeighsByConfidence(t *testing.T) {
	give := []models.PlayerAnalysis{player("G", models.PositionRB, 20.0, 0.5)}
	receive := []models.PlayerAnalysis{player("R", models.PositionWR, 15.0, 0.8)}

	proposal, err := EvaluateTrade(give, receive, models.LeagueDFS)

	require.NoError(t, err)
	assert.InDelta(t, 10.0, proposal.GiveValue, 1e-9)
	assert.InDelta(t, 12.0, proposal.ReceiveValue, 1e-9)
	assert.Equal(t, models.TradeFavorable, proposal.Verdict)
}

func TestEvaluateTrade_UnprojectedPlayersContributeZero(t *testing.T) {
	give := []models.PlayerAnalysis{
		player("G1", models.PositionRB, 12.0, 0.7),
		noProjection("G2", models.PositionWR),
	}
	receive := []models.PlayerAnalysis{player("R", models.PositionRB, 14.0, 0.7)}

	proposal, err := EvaluateTrade(give, receive, models.LeagueRedraft)

	require.NoError(t, err)
	assert.InDelta(t, 12.0, proposal.GiveValue, 1e-9)
	assert.InDelta(t, 2.0, proposal.NetValue, 1e-9)
}

func TestEvaluateTrade_ConfidenceIsMeanOfSides(t *testing.T) {
	give := []models.PlayerAnalysis{
		player("G1", models.PositionRB, 12.0, 0.6),
		player("G2", models.PositionWR, 10.0, 0.8),
	}
	receive := []models.PlayerAnalysis{player("R", models.PositionRB, 14.0, 0.5)}

	proposal, err := EvaluateTrade(give, receive, models.LeagueRedraft)

	require.NoError(t, err)
	assert.InDelta(t, (0.7+0.5)/2, proposal.Confidence, 1e-9)
}

func TestEvaluateTrade_RejectsUnknownLeagueType(t *testing.T) {
	_, err := EvaluateTrade(nil, nil, models.LeagueType("superflex"))
	assert.Error(t, err)
}
