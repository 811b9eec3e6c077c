package analysis

import (
	"fmt"

	"github.com/fantasyedge/fantasy-edge/internal/models"
)

// Trade classification thresholds on net value, evaluated top down.
const (
	stronglyFavorableAbove = 5.0
	favorableAbove         = 1.0
	fairAbove              = -1.0
	unfavorableAbove       = -5.0
)

// dynastyMultiplier inflates player value in dynasty leagues, where youth
// and long-term production matter beyond this week's projection.
const dynastyMultiplier = 1.2

// EvaluateTrade sums projected value on each side of a trade and classifies
// the net from the evaluating side's perspective. Players without a
// projection contribute zero value; they never abort the evaluation.
func EvaluateTrade(give, receive []models.PlayerAnalysis, leagueType models.LeagueType) (*models.TradeProposal, error) {
	if _, err := models.ParseLeagueType(string(leagueType)); err != nil {
		return nil, err
	}

	giveValue, giveConfidence := sideValue(give, leagueType)
	receiveValue, receiveConfidence := sideValue(receive, leagueType)
	net := receiveValue - giveValue

	proposal := &models.TradeProposal{
		GiveValue:    giveValue,
		ReceiveValue: receiveValue,
		NetValue:     net,
		Confidence:   (giveConfidence + receiveConfidence) / 2,
	}

	switch {
	case net > stronglyFavorableAbove:
		proposal.Verdict = models.TradeStronglyFavorable
		proposal.Explanation = fmt.Sprintf("Accept: you gain %.1f points of projected value", net)
	case net > favorableAbove:
		proposal.Verdict = models.TradeFavorable
		proposal.Explanation = fmt.Sprintf("Lean accept: modest gain of %.1f points", net)
	case net > fairAbove:
		proposal.Verdict = models.TradeFair
		proposal.Explanation = "Fair trade: projected value is roughly even"
	case net > unfavorableAbove:
		proposal.Verdict = models.TradeUnfavorable
		proposal.Explanation = fmt.Sprintf("Lean reject: you give up %.1f points", -net)
	default:
		proposal.Verdict = models.TradeStronglyUnfavorable
		proposal.Explanation = fmt.Sprintf("Reject: you give up %.1f points of projected value", -net)
	}
	return proposal, nil
}

// sideValue totals one side's player values under the league-type scaling
// and returns the mean confidence of the players that projected.
func sideValue(players []models.PlayerAnalysis, leagueType models.LeagueType) (value, confidence float64) {
	projected := 0
	for _, p := range players {
		if p.Projection == nil {
			continue
		}
		value += playerValue(p.Projection, leagueType)
		confidence += p.Projection.Confidence
		projected++
	}
	if projected > 0 {
		confidence /= float64(projected)
	}
	return value, confidence
}

// playerValue scales projected points by the league type: dynasty leagues
// inflate everyone, DFS weights by confidence, redraft and keeper take
// points at face value.
func playerValue(proj *models.Projection, leagueType models.LeagueType) float64 {
	switch leagueType {
	case models.LeagueDynasty:
		return proj.Points * dynastyMultiplier
	case models.LeagueDFS:
		return proj.Points * proj.Confidence
	default:
		return proj.Points
	}
}
