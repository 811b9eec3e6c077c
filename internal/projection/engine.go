package projection

import "github.com/fantasyedge/fantasy-edge/internal/models"

// defaultConfidence applies when a projection is requested against consensus
// lines that contain no market the position scores on.
const defaultConfidence = 0.5

// category is one row of a position's scoring table: the market it reads,
// the breakdown key it writes, the transform from line to points, and the
// fixed confidence weight it contributes when present.
type category struct {
	market     string
	name       string
	points     func(line float64, rule models.ScoringRule) float64
	confidence float64
}

// categoryTables maps each position to its ordered scoring categories.
// Adding a position or category is a data change here, not new control flow.
// TE intentionally shares the WR table. K and DST have no prop markets in
// the feed, so they carry no table and never project.
var categoryTables = map[models.Position][]category{
	models.PositionQB: {
		{models.MarketPassYards, "passing_yards", func(l float64, r models.ScoringRule) float64 { return l / r.PassYardsPerPoint }, 0.8},
		{models.MarketPassTDs, "passing_tds", func(l float64, r models.ScoringRule) float64 { return l * r.PassTDPoints }, 0.7},
		{models.MarketRushYards, "rushing_yards", func(l float64, r models.ScoringRule) float64 { return l / r.RushYardsPerPoint }, 0.6},
		{models.MarketRushTDs, "rushing_tds", func(l float64, r models.ScoringRule) float64 { return l * r.RushTDPoints }, 0.5},
	},
	models.PositionRB: {
		{models.MarketRushYards, "rushing_yards", func(l float64, r models.ScoringRule) float64 { return l / r.RushYardsPerPoint }, 0.8},
		{models.MarketRushTDs, "rushing_tds", func(l float64, r models.ScoringRule) float64 { return l * r.RushTDPoints }, 0.6},
		{models.MarketReceptions, "receptions", func(l float64, r models.ScoringRule) float64 { return l * r.ReceptionPoints }, 0.7},
		{models.MarketReceptionYards, "receiving_yards", func(l float64, r models.ScoringRule) float64 { return l / r.ReceivingYardsPerPoint }, 0.7},
	},
	models.PositionWR: wrTable,
	models.PositionTE: wrTable,
}

var wrTable = []category{
	{models.MarketReceptions, "receptions", func(l float64, r models.ScoringRule) float64 { return l * r.ReceptionPoints }, 0.8},
	{models.MarketReceptionYards, "receiving_yards", func(l float64, r models.ScoringRule) float64 { return l / r.ReceivingYardsPerPoint }, 0.8},
	{models.MarketReceptionTDs, "receiving_tds", func(l float64, r models.ScoringRule) float64 { return l * r.ReceivingTDPoints }, 0.6},
}

// Project maps consensus market lines to a fantasy point projection under
// the given scoring rule. It returns nil when the position has no scoring
// table or when no consensus lines exist: no market data means no
// projection, never a zero-point one.
//
// Each table category contributes points and its fixed confidence weight
// only when its market is present in the consensus map. The projection's
// confidence is the unweighted mean of the contributing categories'
// weights.
func Project(player string, position models.Position, lines map[string]float64, rule models.ScoringRule) *models.Projection {
	table, ok := categoryTables[position]
	if !ok || len(lines) == 0 {
		return nil
	}

	points := 0.0
	confidenceSum := 0.0
	breakdown := make(map[string]float64)
	contributed := 0
	for _, cat := range table {
		line, present := lines[cat.market]
		if !present {
			continue
		}
		catPoints := cat.points(line, rule)
		points += catPoints
		breakdown[cat.name] = catPoints
		confidenceSum += cat.confidence
		contributed++
	}

	confidence := defaultConfidence
	if contributed > 0 {
		confidence = confidenceSum / float64(contributed)
	}

	return &models.Projection{
		Player:     player,
		Position:   position,
		Points:     points,
		Breakdown:  breakdown,
		Confidence: confidence,
	}
}
